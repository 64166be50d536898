package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	appuser "github.com/gpmendes7/bookstoremanager-course/internal/application/user"
	"github.com/gpmendes7/bookstoremanager-course/internal/domain/user"
)

// UserRequest 创建/更新用户
// 说明：HTTP层的DTO，包含参数验证tag
type UserRequest struct {
	Name      string `json:"name" binding:"required,max=255" example:"Rodrigo Peleias"`
	Age       int    `json:"age" binding:"required,min=1,max=120" example:"32"`
	Gender    string `json:"gender" binding:"required" example:"MALE"`
	Email     string `json:"email" binding:"required,email,max=255" example:"rodrigo@teste.com"`
	Username  string `json:"username" binding:"required,max=255" example:"rodrigopeleias"`
	Password  string `json:"password" binding:"required,max=255" example:"123456"`
	BirthDate string `json:"birthDate" binding:"required" example:"1988-03-23"`
	Role      string `json:"role" binding:"required" example:"USER"`
}

// Validate 枚举取值与出生日期
func (r UserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Gender, validation.Required,
			validation.In(string(user.GenderMale), string(user.GenderFemale))),
		validation.Field(&r.Role, validation.Required,
			validation.In(string(user.RoleUser), string(user.RoleAdmin))),
		validation.Field(&r.BirthDate, validation.Required, notInFuture),
	)
}

// ToApp 调用前需已通过Validate
func (r UserRequest) ToApp() appuser.UserDTO {
	birthDate, _ := ParseDate(r.BirthDate)
	return appuser.UserDTO{
		Name:      r.Name,
		Age:       r.Age,
		Gender:    user.Gender(r.Gender),
		Email:     r.Email,
		Username:  r.Username,
		Password:  r.Password,
		BirthDate: birthDate,
		Role:      user.Role(r.Role),
	}
}

// UserResponse 用户响应（不包含密码）
type UserResponse struct {
	ID        uint      `json:"id" example:"1"`
	Name      string    `json:"name" example:"Rodrigo Peleias"`
	Age       int       `json:"age" example:"32"`
	Gender    string    `json:"gender" example:"MALE"`
	Email     string    `json:"email" example:"rodrigo@teste.com"`
	Username  string    `json:"username" example:"rodrigopeleias"`
	BirthDate string    `json:"birthDate" example:"1988-03-23"`
	Role      string    `json:"role" example:"USER"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewUserResponse(u appuser.UserDTO) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Age:       u.Age,
		Gender:    string(u.Gender),
		Email:     u.Email,
		Username:  u.Username,
		BirthDate: FormatDate(u.BirthDate),
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func NewUserListResponse(users []appuser.UserDTO) []UserResponse {
	list := make([]UserResponse, 0, len(users))
	for _, u := range users {
		list = append(list, NewUserResponse(u))
	}
	return list
}

// AuthenticationRequest 登录请求
type AuthenticationRequest struct {
	Username string `json:"username" binding:"required" example:"rodrigopeleias"`
	Password string `json:"password" binding:"required" example:"123456"`
}

// RefreshRequest 刷新Token请求
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// MessageResponse 写操作提示
type MessageResponse struct {
	Message string `json:"message" example:"User rodrigopeleias with ID 1 successfully created"`
}
