// Package instrument Record Service操作的链路、指标、日志与事件发布
package instrument

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/gpmendes7/bookstoremanager-course/internal/domain/event"
	"github.com/gpmendes7/bookstoremanager-course/pkg/metrics"
	"github.com/gpmendes7/bookstoremanager-course/pkg/tracing"
)

const tracerName = "bookstoremanager/record-service"

// Start 开启一次操作
// 返回的finish在操作结束时调用：结束Span、记录指标、输出日志
//
//	ctx, finish := instrument.Start(ctx, event.EntityAuthor, "create")
//	defer func() { finish(err) }()
func Start(ctx context.Context, entity, operation string) (context.Context, func(err error)) {
	ctx, span := tracing.StartSpan(ctx, tracerName, entity+"."+operation)

	return ctx, func(err error) {
		tracing.EndSpan(span, err)
		metrics.RecordOperation(entity, operation, err)

		logEvent := log.Debug()
		if err != nil {
			logEvent = log.Info().Err(err)
		}
		logEvent.
			Str("entity", entity).
			Str("operation", operation).
			Str("trace_id", tracing.ExtractTraceID(ctx)).
			Msg("record operation finished")
	}
}

// Publish 发布领域事件
// 失败只记录日志，不影响业务结果
func Publish(ctx context.Context, publisher event.Publisher, e event.Event) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, e); err != nil {
		log.Warn().
			Err(err).
			Str("type", e.Type).
			Uint("id", e.ID).
			Msg("failed to publish domain event")
	}
}
