// Package event 领域事件
package event

import (
	"context"
	"time"
)

// 实体名
const (
	EntityAuthor    = "author"
	EntityPublisher = "publisher"
	EntityUser      = "user"
)

// 动作
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Event 记录变更事件，Type即消息routing key（如author.created）
type Event struct {
	Type       string    `json:"type"`
	Entity     string    `json:"entity"`
	ID         uint      `json:"id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// New 创建事件
func New(entity, action string, id uint) Event {
	return Event{
		Type:       entity + "." + action,
		Entity:     entity,
		ID:         id,
		OccurredAt: time.Now().UTC(),
	}
}

// Publisher 事件发布者
// 发布失败不影响业务结果，调用方只记录日志
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// NopPublisher 未启用消息队列时使用
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
