package author

import "context"

// Repository 作者仓储接口
// 查不到记录时返回ErrAuthorNotFound
type Repository interface {
	// Save 新增（ID为0）或全量覆盖（ID非0），回填ID与时间戳
	Save(ctx context.Context, author *Author) error

	FindByID(ctx context.Context, id uint) (*Author, error)

	// FindByName 按名称精确查找
	FindByName(ctx context.Context, name string) (*Author, error)

	// FindAll 按ID升序返回全部作者，没有记录时返回空切片
	FindAll(ctx context.Context) ([]*Author, error)

	DeleteByID(ctx context.Context, id uint) error
}
