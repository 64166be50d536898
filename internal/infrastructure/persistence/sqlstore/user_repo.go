package sqlstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/gpmendes7/bookstoremanager-course/internal/domain/user"
)

// userRepository 用户仓储实现
// 1. 实现domain/user/repository.go定义的接口
// 2. 负责领域实体与GORM模型之间的转换
// 3. email/username唯一索引冲突转换为ErrUserAlreadyExists
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓储
// 返回domain层接口（依赖倒置）
func NewUserRepository(db *gorm.DB) user.Repository {
	return &userRepository{db: db}
}

func (r *userRepository) Save(ctx context.Context, u *user.User) error {
	// 1. 领域实体 → GORM模型
	model := toUserModel(u)

	// 2. 插入或覆盖
	db := r.db.WithContext(ctx)
	var err error
	if model.ID == 0 {
		err = db.Create(model).Error
	} else {
		err = db.Save(model).Error
	}
	if err != nil {
		if isDuplicateError(err) {
			return user.AlreadyExistsError(u.Email, u.Username)
		}
		return dbError(err, "Failed to save user")
	}

	// 3. 回填自增ID与时间戳
	u.ID = model.ID
	u.CreatedAt = model.CreatedAt
	u.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var model UserModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if isNotFound(err) {
			return nil, user.ErrUserNotFound
		}
		return nil, dbError(err, "Failed to query user")
	}
	return toUser(&model), nil
}

func (r *userRepository) FindByEmailOrUsername(ctx context.Context, email, username string) ([]*user.User, error) {
	var models []UserModel
	err := r.db.WithContext(ctx).
		Where("email = ? OR username = ?", email, username).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, dbError(err, "Failed to query user")
	}
	return toUsers(models), nil
}

// FindByUsername username有唯一索引，使用First
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	var model UserModel
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&model).Error; err != nil {
		if isNotFound(err) {
			return nil, user.ErrUserNotFound
		}
		return nil, dbError(err, "Failed to query user")
	}
	return toUser(&model), nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]*user.User, error) {
	var models []UserModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, dbError(err, "Failed to list users")
	}
	return toUsers(models), nil
}

func (r *userRepository) DeleteByID(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&UserModel{}, id)
	if result.Error != nil {
		return dbError(result.Error, "Failed to delete user")
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// =========================================
// 模型转换
// =========================================

func toUserModel(u *user.User) *UserModel {
	return &UserModel{
		ID:        u.ID,
		Name:      u.Name,
		Age:       u.Age,
		Gender:    string(u.Gender),
		Email:     u.Email,
		Username:  u.Username,
		Password:  u.Password,
		BirthDate: u.BirthDate,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func toUser(model *UserModel) *user.User {
	return &user.User{
		ID:        model.ID,
		Name:      model.Name,
		Age:       model.Age,
		Gender:    user.Gender(model.Gender),
		Email:     model.Email,
		Username:  model.Username,
		Password:  model.Password,
		BirthDate: model.BirthDate,
		Role:      user.Role(model.Role),
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func toUsers(models []UserModel) []*user.User {
	users := make([]*user.User, 0, len(models))
	for i := range models {
		users = append(users, toUser(&models[i]))
	}
	return users
}
