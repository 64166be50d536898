package publisher

import (
	"time"

	"github.com/gpmendes7/bookstoremanager-course/internal/domain/publisher"
)

// PublisherDTO 出版社传输对象
type PublisherDTO struct {
	ID             uint
	Name           string
	Code           string
	FoundationDate time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func ToModel(dto PublisherDTO) *publisher.Publisher {
	return &publisher.Publisher{
		ID:             dto.ID,
		Name:           dto.Name,
		Code:           dto.Code,
		FoundationDate: dto.FoundationDate,
	}
}

func ToDTO(p *publisher.Publisher) PublisherDTO {
	return PublisherDTO{
		ID:             p.ID,
		Name:           p.Name,
		Code:           p.Code,
		FoundationDate: p.FoundationDate,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
