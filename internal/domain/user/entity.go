package user

import (
	"strings"
	"time"
)

// Gender 性别
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// IsValid 是否为已知取值
func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

// Role 角色
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// IsValid 是否为已知取值
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Description 角色描述（"user"/"admin"），权限声明由它派生
func (r Role) Description() string {
	return strings.ToLower(string(r))
}

// Authority 权限声明：ROLE_ + 大写的角色描述
func (r Role) Authority() string {
	return "ROLE_" + strings.ToUpper(r.Description())
}

// User 用户实体
// email与username各自唯一；Password只保存bcrypt哈希，不保存明文
type User struct {
	ID        uint
	Name      string
	Age       int
	Gender    Gender
	Email     string
	Username  string
	Password  string
	BirthDate time.Time
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Identity 主键
func (u *User) Identity() uint {
	return u.ID
}
