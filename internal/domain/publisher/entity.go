package publisher

import "time"

// Publisher 出版社实体
// name与code各自唯一：任一与已有记录相同即视为冲突
type Publisher struct {
	ID             uint
	Name           string
	Code           string
	FoundationDate time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Identity 主键
func (p *Publisher) Identity() uint {
	return p.ID
}
