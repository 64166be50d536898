package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	apppublisher "github.com/gpmendes7/bookstoremanager-course/internal/application/publisher"
)

// PublisherRequest 创建/更新出版社
type PublisherRequest struct {
	Name           string `json:"name" binding:"required,max=255" example:"Peleias Editora"`
	Code           string `json:"code" binding:"required,max=100" example:"PELE1234"`
	FoundationDate string `json:"foundationDate" binding:"required" example:"2020-06-01"`
}

// Validate 成立日期格式与范围（binding tag无法表达）
func (r PublisherRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FoundationDate, validation.Required, notInFuture),
	)
}

// ToApp 调用前需已通过Validate
func (r PublisherRequest) ToApp() apppublisher.PublisherDTO {
	foundation, _ := ParseDate(r.FoundationDate)
	return apppublisher.PublisherDTO{
		Name:           r.Name,
		Code:           r.Code,
		FoundationDate: foundation,
	}
}

// PublisherResponse 出版社响应
type PublisherResponse struct {
	ID             uint      `json:"id" example:"1"`
	Name           string    `json:"name" example:"Peleias Editora"`
	Code           string    `json:"code" example:"PELE1234"`
	FoundationDate string    `json:"foundationDate" example:"2020-06-01"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func NewPublisherResponse(p apppublisher.PublisherDTO) PublisherResponse {
	return PublisherResponse{
		ID:             p.ID,
		Name:           p.Name,
		Code:           p.Code,
		FoundationDate: FormatDate(p.FoundationDate),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func NewPublisherListResponse(publishers []apppublisher.PublisherDTO) []PublisherResponse {
	list := make([]PublisherResponse, 0, len(publishers))
	for _, p := range publishers {
		list = append(list, NewPublisherResponse(p))
	}
	return list
}
