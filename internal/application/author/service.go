package author

import (
	"context"

	"github.com/gpmendes7/bookstoremanager-course/internal/application/instrument"
	"github.com/gpmendes7/bookstoremanager-course/internal/domain/author"
	"github.com/gpmendes7/bookstoremanager-course/internal/domain/event"
	"github.com/gpmendes7/bookstoremanager-course/internal/domain/guard"
)

// Service 作者Record Service
// 写操作前先做存在性/唯一性校验，成功后发布领域事件
type Service struct {
	repo   author.Repository
	events event.Publisher
}

// NewService 创建作者服务
func NewService(repo author.Repository, events event.Publisher) *Service {
	return &Service{repo: repo, events: events}
}

// Create 创建作者，名称已存在时返回AlreadyExists
func (s *Service) Create(ctx context.Context, dto AuthorDTO) (_ *AuthorDTO, err error) {
	ctx, finish := instrument.Start(ctx, event.EntityAuthor, "create")
	defer func() { finish(err) }()

	// 1. 名称唯一性校验
	if err = s.ensureUnique(ctx, dto.Name, 0); err != nil {
		return nil, err
	}

	// 2. 转换并保存（ID由存储生成）
	model := ToModel(dto)
	model.ID = 0
	if err = s.repo.Save(ctx, model); err != nil {
		return nil, err
	}

	instrument.Publish(ctx, s.events, event.New(event.EntityAuthor, event.ActionCreated, model.ID))

	created := ToDTO(model)
	return &created, nil
}

// FindByID 按ID查找
func (s *Service) FindByID(ctx context.Context, id uint) (_ *AuthorDTO, err error) {
	ctx, finish := instrument.Start(ctx, event.EntityAuthor, "find")
	defer func() { finish(err) }()

	found, err := s.mustExist(ctx, id)
	if err != nil {
		return nil, err
	}

	result := ToDTO(found)
	return &result, nil
}

// FindAll 全部作者（ID升序），没有记录时返回空切片
func (s *Service) FindAll(ctx context.Context) (_ []AuthorDTO, err error) {
	ctx, finish := instrument.Start(ctx, event.EntityAuthor, "list")
	defer func() { finish(err) }()

	found, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]AuthorDTO, 0, len(found))
	for _, a := range found {
		result = append(result, ToDTO(a))
	}
	return result, nil
}

// Update 全量更新，只保留原记录的ID与创建时间
func (s *Service) Update(ctx context.Context, id uint, dto AuthorDTO) (_ *AuthorDTO, err error) {
	ctx, finish := instrument.Start(ctx, event.EntityAuthor, "update")
	defer func() { finish(err) }()

	// 1. 存在性校验
	found, err := s.mustExist(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. 唯一性校验（排除自身）
	if err = s.ensureUnique(ctx, dto.Name, found.ID); err != nil {
		return nil, err
	}

	// 3. 覆盖保存
	model := ToModel(dto)
	model.ID = found.ID
	model.CreatedAt = found.CreatedAt
	if err = s.repo.Save(ctx, model); err != nil {
		return nil, err
	}

	instrument.Publish(ctx, s.events, event.New(event.EntityAuthor, event.ActionUpdated, model.ID))

	updated := ToDTO(model)
	return &updated, nil
}

// Delete 删除作者
func (s *Service) Delete(ctx context.Context, id uint) (err error) {
	ctx, finish := instrument.Start(ctx, event.EntityAuthor, "delete")
	defer func() { finish(err) }()

	if _, err = s.mustExist(ctx, id); err != nil {
		return err
	}

	if err = s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	instrument.Publish(ctx, s.events, event.New(event.EntityAuthor, event.ActionDeleted, id))
	return nil
}

func (s *Service) mustExist(ctx context.Context, id uint) (*author.Author, error) {
	return guard.MustExist(ctx,
		func(ctx context.Context) (*author.Author, error) { return s.repo.FindByID(ctx, id) },
		func() error { return author.NotFoundError(id) },
	)
}

func (s *Service) ensureUnique(ctx context.Context, name string, exceptID uint) error {
	return guard.EnsureUnique(ctx,
		guard.Single(func(ctx context.Context) (*author.Author, error) { return s.repo.FindByName(ctx, name) }),
		exceptID,
		func() error { return author.AlreadyExistsError(name) },
	)
}
