package user

import (
	"time"

	"github.com/gpmendes7/bookstoremanager-course/internal/domain/user"
)

// UserDTO 用户传输对象
// 入参时Password为明文；出参时始终为空
type UserDTO struct {
	ID        uint
	Name      string
	Age       int
	Gender    user.Gender
	Email     string
	Username  string
	Password  string
	BirthDate time.Time
	Role      user.Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ToModel 传输对象 → 领域实体（密码由Service加密后再写入）
func ToModel(dto UserDTO) *user.User {
	return &user.User{
		ID:        dto.ID,
		Name:      dto.Name,
		Age:       dto.Age,
		Gender:    dto.Gender,
		Email:     dto.Email,
		Username:  dto.Username,
		Password:  dto.Password,
		BirthDate: dto.BirthDate,
		Role:      dto.Role,
	}
}

// ToDTO 领域实体 → 传输对象（不带密码哈希）
func ToDTO(u *user.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		Age:       u.Age,
		Gender:    u.Gender,
		Email:     u.Email,
		Username:  u.Username,
		BirthDate: u.BirthDate,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
