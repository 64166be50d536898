package publisher

import (
	"context"

	"github.com/gpmendes7/bookstoremanager-course/internal/application/instrument"
	"github.com/gpmendes7/bookstoremanager-course/internal/domain/event"
	"github.com/gpmendes7/bookstoremanager-course/internal/domain/guard"
	"github.com/gpmendes7/bookstoremanager-course/internal/domain/publisher"
)

// Service 出版社Record Service
// 唯一性规则：name或code任一与其他出版社相同即冲突
type Service struct {
	repo   publisher.Repository
	events event.Publisher
}

func NewService(repo publisher.Repository, events event.Publisher) *Service {
	return &Service{repo: repo, events: events}
}

// Create 创建出版社
func (s *Service) Create(ctx context.Context, dto PublisherDTO) (_ *PublisherDTO, err error) {
	ctx, finish := instrument.Start(ctx, event.EntityPublisher, "create")
	defer func() { finish(err) }()

	if err = s.ensureUnique(ctx, dto.Name, dto.Code, 0); err != nil {
		return nil, err
	}

	model := ToModel(dto)
	model.ID = 0
	if err = s.repo.Save(ctx, model); err != nil {
		return nil, err
	}

	instrument.Publish(ctx, s.events, event.New(event.EntityPublisher, event.ActionCreated, model.ID))

	created := ToDTO(model)
	return &created, nil
}

func (s *Service) FindByID(ctx context.Context, id uint) (_ *PublisherDTO, err error) {
	ctx, finish := instrument.Start(ctx, event.EntityPublisher, "find")
	defer func() { finish(err) }()

	found, err := s.mustExist(ctx, id)
	if err != nil {
		return nil, err
	}

	result := ToDTO(found)
	return &result, nil
}

// FindAll 没有记录时返回空切片
func (s *Service) FindAll(ctx context.Context) (_ []PublisherDTO, err error) {
	ctx, finish := instrument.Start(ctx, event.EntityPublisher, "list")
	defer func() { finish(err) }()

	found, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]PublisherDTO, 0, len(found))
	for _, p := range found {
		result = append(result, ToDTO(p))
	}
	return result, nil
}

// Update 全量更新（保留ID与创建时间）
func (s *Service) Update(ctx context.Context, id uint, dto PublisherDTO) (_ *PublisherDTO, err error) {
	ctx, finish := instrument.Start(ctx, event.EntityPublisher, "update")
	defer func() { finish(err) }()

	found, err := s.mustExist(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = s.ensureUnique(ctx, dto.Name, dto.Code, found.ID); err != nil {
		return nil, err
	}

	model := ToModel(dto)
	model.ID = found.ID
	model.CreatedAt = found.CreatedAt
	if err = s.repo.Save(ctx, model); err != nil {
		return nil, err
	}

	instrument.Publish(ctx, s.events, event.New(event.EntityPublisher, event.ActionUpdated, model.ID))

	updated := ToDTO(model)
	return &updated, nil
}

func (s *Service) Delete(ctx context.Context, id uint) (err error) {
	ctx, finish := instrument.Start(ctx, event.EntityPublisher, "delete")
	defer func() { finish(err) }()

	if _, err = s.mustExist(ctx, id); err != nil {
		return err
	}

	if err = s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	instrument.Publish(ctx, s.events, event.New(event.EntityPublisher, event.ActionDeleted, id))
	return nil
}

func (s *Service) mustExist(ctx context.Context, id uint) (*publisher.Publisher, error) {
	return guard.MustExist(ctx,
		func(ctx context.Context) (*publisher.Publisher, error) { return s.repo.FindByID(ctx, id) },
		func() error { return publisher.NotFoundError(id) },
	)
}

func (s *Service) ensureUnique(ctx context.Context, name, code string, exceptID uint) error {
	return guard.EnsureUnique(ctx,
		func(ctx context.Context) ([]*publisher.Publisher, error) { return s.repo.FindByNameOrCode(ctx, name, code) },
		exceptID,
		func() error { return publisher.AlreadyExistsError(name, code) },
	)
}
