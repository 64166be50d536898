package sqlstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/gpmendes7/bookstoremanager-course/internal/domain/author"
)

type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository 创建作者仓储
func NewAuthorRepository(db *gorm.DB) author.Repository {
	return &authorRepository{db: db}
}

// Save ID为0时插入，否则全量覆盖
// 名称唯一索引冲突转换为ErrAuthorAlreadyExists
func (r *authorRepository) Save(ctx context.Context, a *author.Author) error {
	model := &AuthorModel{
		ID:        a.ID,
		Name:      a.Name,
		Age:       a.Age,
		CreatedAt: a.CreatedAt,
	}

	db := r.db.WithContext(ctx)
	var err error
	if model.ID == 0 {
		err = db.Create(model).Error
	} else {
		err = db.Save(model).Error
	}
	if err != nil {
		if isDuplicateError(err) {
			return author.AlreadyExistsError(a.Name)
		}
		return dbError(err, "Failed to save author")
	}

	a.ID = model.ID
	a.CreatedAt = model.CreatedAt
	a.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *authorRepository) FindByID(ctx context.Context, id uint) (*author.Author, error) {
	var model AuthorModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if isNotFound(err) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, dbError(err, "Failed to query author")
	}
	return toAuthor(&model), nil
}

func (r *authorRepository) FindByName(ctx context.Context, name string) (*author.Author, error) {
	var model AuthorModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		if isNotFound(err) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, dbError(err, "Failed to query author")
	}
	return toAuthor(&model), nil
}

func (r *authorRepository) FindAll(ctx context.Context) ([]*author.Author, error) {
	var models []AuthorModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, dbError(err, "Failed to list authors")
	}

	authors := make([]*author.Author, 0, len(models))
	for i := range models {
		authors = append(authors, toAuthor(&models[i]))
	}
	return authors, nil
}

func (r *authorRepository) DeleteByID(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&AuthorModel{}, id)
	if result.Error != nil {
		return dbError(result.Error, "Failed to delete author")
	}
	if result.RowsAffected == 0 {
		return author.ErrAuthorNotFound
	}
	return nil
}

func toAuthor(model *AuthorModel) *author.Author {
	return &author.Author{
		ID:        model.ID,
		Name:      model.Name,
		Age:       model.Age,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
