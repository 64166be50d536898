// Package messaging 领域事件的消息代理实现
package messaging

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/gpmendes7/bookstoremanager-course/internal/domain/event"
	"github.com/gpmendes7/bookstoremanager-course/pkg/circuitbreaker"
	apperrors "github.com/gpmendes7/bookstoremanager-course/pkg/errors"
	"github.com/gpmendes7/bookstoremanager-course/pkg/metrics"
)

const breakerName = "event-publisher"

// Broker 消息发布通道（*mq.Publisher）
type Broker interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// EventPublisher 通过熔断器把领域事件投递到消息代理
// routing key即事件类型
type EventPublisher struct {
	broker  Broker
	breaker *circuitbreaker.CircuitBreaker
	timeout time.Duration
}

// Options 熔断参数，零值使用默认
type Options struct {
	MaxFailures    uint32
	BreakerTimeout time.Duration
	PublishTimeout time.Duration
}

// NewEventPublisher 创建事件发布者
func NewEventPublisher(broker Broker, opts Options) *EventPublisher {
	if opts.MaxFailures == 0 {
		opts.MaxFailures = 5
	}
	if opts.PublishTimeout <= 0 {
		opts.PublishTimeout = 3 * time.Second
	}
	maxFailures := opts.MaxFailures

	breaker := circuitbreaker.New(breakerName, circuitbreaker.Settings{
		Timeout: opts.BreakerTimeout,
		ReadyToTrip: func(counts circuitbreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to circuitbreaker.State) {
			metrics.SetCircuitBreakerState(name, int(to))
			log.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state changed")
		},
	})
	metrics.SetCircuitBreakerState(breakerName, int(circuitbreaker.StateClosed))

	return &EventPublisher{
		broker:  broker,
		breaker: breaker,
		timeout: opts.PublishTimeout,
	}
}

var _ event.Publisher = (*EventPublisher)(nil)

// Publish 发布事件
// 熔断打开时直接返回，不访问消息代理
func (p *EventPublisher) Publish(ctx context.Context, e event.Event) error {
	err := p.breaker.Execute(func() error {
		ctx, cancel := context.WithTimeout(ctx, p.timeout)
		defer cancel()
		return p.broker.Publish(ctx, e.Type, e)
	})

	switch {
	case err == nil:
		metrics.RecordEvent(e.Type, metrics.ResultSuccess)
		return nil
	case errors.Is(err, circuitbreaker.ErrOpenState):
		metrics.RecordEvent(e.Type, metrics.ResultRejected)
	default:
		metrics.RecordEvent(e.Type, metrics.ResultFailure)
	}

	appErr := apperrors.Wrapf(err, "Failed to publish event %s", e.Type)
	appErr.Code = apperrors.ErrCodeBrokerError
	return appErr
}

// State 熔断器当前状态
func (p *EventPublisher) State() circuitbreaker.State {
	return p.breaker.State()
}
