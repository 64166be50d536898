package user

import (
	"context"

	"github.com/gpmendes7/bookstoremanager-course/internal/application/instrument"
	"github.com/gpmendes7/bookstoremanager-course/internal/domain/event"
	"github.com/gpmendes7/bookstoremanager-course/internal/domain/guard"
	"github.com/gpmendes7/bookstoremanager-course/internal/domain/user"
)

// Service 用户Record Service
// 1. email或username任一与其他用户相同即冲突
// 2. 密码加密后保存，返回值中不包含密码
// 3. 创建/更新返回MessageDTO而不是用户数据
type Service struct {
	repo    user.Repository
	encoder user.PasswordEncoder
	events  event.Publisher
}

func NewService(repo user.Repository, encoder user.PasswordEncoder, events event.Publisher) *Service {
	return &Service{
		repo:    repo,
		encoder: encoder,
		events:  events,
	}
}

// Create 创建用户
func (s *Service) Create(ctx context.Context, dto UserDTO) (_ *MessageDTO, err error) {
	ctx, finish := instrument.Start(ctx, event.EntityUser, "create")
	defer func() { finish(err) }()

	// 1. email/username唯一性校验
	if err = s.ensureUnique(ctx, dto.Email, dto.Username, 0); err != nil {
		return nil, err
	}

	// 2. 转换、加密密码
	model := ToModel(dto)
	model.ID = 0
	if model.Password, err = s.encoder.Encode(dto.Password); err != nil {
		return nil, err
	}

	// 3. 保存
	if err = s.repo.Save(ctx, model); err != nil {
		return nil, err
	}

	instrument.Publish(ctx, s.events, event.New(event.EntityUser, event.ActionCreated, model.ID))
	return creationMessage(model), nil
}

// FindByID 按ID查找（不含密码）
func (s *Service) FindByID(ctx context.Context, id uint) (_ *UserDTO, err error) {
	ctx, finish := instrument.Start(ctx, event.EntityUser, "find")
	defer func() { finish(err) }()

	found, err := s.mustExist(ctx, id)
	if err != nil {
		return nil, err
	}

	result := ToDTO(found)
	return &result, nil
}

// FindAll 没有记录时返回空切片
func (s *Service) FindAll(ctx context.Context) (_ []UserDTO, err error) {
	ctx, finish := instrument.Start(ctx, event.EntityUser, "list")
	defer func() { finish(err) }()

	found, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]UserDTO, 0, len(found))
	for _, u := range found {
		result = append(result, ToDTO(u))
	}
	return result, nil
}

// Update 全量更新（保留ID与创建时间，密码重新加密）
func (s *Service) Update(ctx context.Context, id uint, dto UserDTO) (_ *MessageDTO, err error) {
	ctx, finish := instrument.Start(ctx, event.EntityUser, "update")
	defer func() { finish(err) }()

	// 1. 存在性校验
	found, err := s.mustExist(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. 唯一性校验（排除自身）
	if err = s.ensureUnique(ctx, dto.Email, dto.Username, found.ID); err != nil {
		return nil, err
	}

	// 3. 覆盖保存
	model := ToModel(dto)
	model.ID = found.ID
	model.CreatedAt = found.CreatedAt
	if model.Password, err = s.encoder.Encode(dto.Password); err != nil {
		return nil, err
	}
	if err = s.repo.Save(ctx, model); err != nil {
		return nil, err
	}

	instrument.Publish(ctx, s.events, event.New(event.EntityUser, event.ActionUpdated, model.ID))
	return updatedMessage(model), nil
}

// Delete 删除用户
func (s *Service) Delete(ctx context.Context, id uint) (err error) {
	ctx, finish := instrument.Start(ctx, event.EntityUser, "delete")
	defer func() { finish(err) }()

	if _, err = s.mustExist(ctx, id); err != nil {
		return err
	}

	if err = s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	instrument.Publish(ctx, s.events, event.New(event.EntityUser, event.ActionDeleted, id))
	return nil
}

// EnsureAdmin 启动时创建初始管理员
// email或username已被占用时跳过，返回false
func (s *Service) EnsureAdmin(ctx context.Context, dto UserDTO) (bool, error) {
	existing, err := s.repo.FindByEmailOrUsername(ctx, dto.Email, dto.Username)
	if err != nil {
		return false, err
	}
	if len(existing) > 0 {
		return false, nil
	}

	dto.Role = user.RoleAdmin
	if _, err := s.Create(ctx, dto); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) mustExist(ctx context.Context, id uint) (*user.User, error) {
	return guard.MustExist(ctx,
		func(ctx context.Context) (*user.User, error) { return s.repo.FindByID(ctx, id) },
		func() error { return user.NotFoundError(id) },
	)
}

func (s *Service) ensureUnique(ctx context.Context, email, username string, exceptID uint) error {
	return guard.EnsureUnique(ctx,
		func(ctx context.Context) ([]*user.User, error) { return s.repo.FindByEmailOrUsername(ctx, email, username) },
		exceptID,
		func() error { return user.AlreadyExistsError(email, username) },
	)
}
