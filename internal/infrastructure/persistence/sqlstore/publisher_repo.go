package sqlstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/gpmendes7/bookstoremanager-course/internal/domain/publisher"
)

type publisherRepository struct {
	db *gorm.DB
}

// NewPublisherRepository 创建出版社仓储
func NewPublisherRepository(db *gorm.DB) publisher.Repository {
	return &publisherRepository{db: db}
}

func (r *publisherRepository) Save(ctx context.Context, p *publisher.Publisher) error {
	model := &PublisherModel{
		ID:             p.ID,
		Name:           p.Name,
		Code:           p.Code,
		FoundationDate: p.FoundationDate,
		CreatedAt:      p.CreatedAt,
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
			return publisher.AlreadyExistsError(p.Name, p.Code)
		}
		return dbError(err, "Failed to save publisher")
	}

	p.ID = model.ID
	p.CreatedAt = model.CreatedAt
	p.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *publisherRepository) FindByID(ctx context.Context, id uint) (*publisher.Publisher, error) {
	var model PublisherModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if isNotFound(err) {
			return nil, publisher.ErrPublisherNotFound
		}
		return nil, dbError(err, "Failed to query publisher")
	}
	return toPublisher(&model), nil
}

// FindByNameOrCode name或code任一匹配即返回，最多两条
func (r *publisherRepository) FindByNameOrCode(ctx context.Context, name, code string) ([]*publisher.Publisher, error) {
	var models []PublisherModel
	err := r.db.WithContext(ctx).
		Where("name = ? OR code = ?", name, code).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, dbError(err, "Failed to query publisher")
	}
	return toPublishers(models), nil
}

func (r *publisherRepository) FindAll(ctx context.Context) ([]*publisher.Publisher, error) {
	var models []PublisherModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, dbError(err, "Failed to list publishers")
	}
	return toPublishers(models), nil
}

func (r *publisherRepository) DeleteByID(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&PublisherModel{}, id)
	if result.Error != nil {
		return dbError(result.Error, "Failed to delete publisher")
	}
	if result.RowsAffected == 0 {
		return publisher.ErrPublisherNotFound
	}
	return nil
}

func toPublisher(model *PublisherModel) *publisher.Publisher {
	return &publisher.Publisher{
		ID:             model.ID,
		Name:           model.Name,
		Code:           model.Code,
		FoundationDate: model.FoundationDate,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}

func toPublishers(models []PublisherModel) []*publisher.Publisher {
	publishers := make([]*publisher.Publisher, 0, len(models))
	for i := range models {
		publishers = append(publishers, toPublisher(&models[i]))
	}
	return publishers
}
