package publisher

import "context"

// Repository 出版社仓储接口
type Repository interface {
	Save(ctx context.Context, publisher *Publisher) error

	// FindByID 不存在时返回ErrPublisherNotFound
	FindByID(ctx context.Context, id uint) (*Publisher, error)

	// FindByNameOrCode 返回name或code匹配的所有出版社（可能为空）
	FindByNameOrCode(ctx context.Context, name, code string) ([]*Publisher, error)

	FindAll(ctx context.Context) ([]*Publisher, error)

	DeleteByID(ctx context.Context, id uint) error
}
