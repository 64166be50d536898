package author

import "time"

// Author 作者实体
// 名称全局唯一（由Record Service的唯一性校验与数据库唯一索引共同保证）
type Author struct {
	ID        uint
	Name      string
	Age       int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Identity 主键
func (a *Author) Identity() uint {
	return a.ID
}
