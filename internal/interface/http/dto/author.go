package dto

import (
	"time"

	appauthor "github.com/gpmendes7/bookstoremanager-course/internal/application/author"
)

// AuthorRequest 创建/更新作者
type AuthorRequest struct {
	Name string `json:"name" binding:"required,max=255" example:"Jane Doe"`
	Age  int    `json:"age" binding:"required,min=1,max=120" example:"40"`
}

// ToApp HTTP请求 → 应用层传输对象
func (r AuthorRequest) ToApp() appauthor.AuthorDTO {
	return appauthor.AuthorDTO{Name: r.Name, Age: r.Age}
}

// AuthorResponse 作者响应
type AuthorResponse struct {
	ID        uint      `json:"id" example:"1"`
	Name      string    `json:"name" example:"Jane Doe"`
	Age       int       `json:"age" example:"40"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewAuthorResponse(a appauthor.AuthorDTO) AuthorResponse {
	return AuthorResponse{
		ID:        a.ID,
		Name:      a.Name,
		Age:       a.Age,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func NewAuthorListResponse(authors []appauthor.AuthorDTO) []AuthorResponse {
	list := make([]AuthorResponse, 0, len(authors))
	for _, a := range authors {
		list = append(list, NewAuthorResponse(a))
	}
	return list
}
