package author

import (
	"time"

	"github.com/gpmendes7/bookstoremanager-course/internal/domain/author"
)

// AuthorDTO 作者传输对象
type AuthorDTO struct {
	ID        uint
	Name      string
	Age       int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ToModel 传输对象 → 领域实体
func ToModel(dto AuthorDTO) *author.Author {
	return &author.Author{
		ID:   dto.ID,
		Name: dto.Name,
		Age:  dto.Age,
	}
}

// ToDTO 领域实体 → 传输对象
func ToDTO(a *author.Author) AuthorDTO {
	return AuthorDTO{
		ID:        a.ID,
		Name:      a.Name,
		Age:       a.Age,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
