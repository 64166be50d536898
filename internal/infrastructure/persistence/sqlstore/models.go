package sqlstore

import "time"

// 数据模型带GORM tag，领域实体不依赖GORM，仓储负责两者转换
// 删除为物理删除：唯一索引不能被软删除的记录占用

// AuthorModel 作者表
type AuthorModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:255;not null"`
	Age       int    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AuthorModel) TableName() string {
	return "authors"
}

// PublisherModel 出版社表
type PublisherModel struct {
	ID             uint      `gorm:"primaryKey"`
	Name           string    `gorm:"uniqueIndex;size:255;not null"`
	Code           string    `gorm:"uniqueIndex;size:100;not null"`
	FoundationDate time.Time `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (PublisherModel) TableName() string {
	return "publishers"
}

// UserModel 用户表
type UserModel struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:255;not null"`
	Age       int       `gorm:"not null"`
	Gender    string    `gorm:"size:20;not null"`
	Email     string    `gorm:"uniqueIndex;size:255;not null"`
	Username  string    `gorm:"uniqueIndex;size:255;not null"`
	Password  string    `gorm:"size:255;not null;comment:bcrypt哈希"`
	BirthDate time.Time `gorm:"not null"`
	Role      string    `gorm:"size:20;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserModel) TableName() string {
	return "users"
}
