package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func useRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	prev := otel.GetTracerProvider()
	recorder := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	return recorder
}

func TestInitTracer(t *testing.T) {
	t.Run("collector不可用时仍可初始化", func(t *testing.T) {
		shutdown, err := InitTracer("test-service", "localhost:4317", 1)
		require.NoError(t, err)

		_ = shutdown(context.Background())
	})
}

func TestStartSpan(t *testing.T) {
	recorder := useRecorder(t)

	t.Run("子Span继承TraceID", func(t *testing.T) {
		ctx, parent := StartSpan(context.Background(), "test", "parent")
		traceID := ExtractTraceID(ctx)
		assert.NotEmpty(t, traceID)

		childCtx, child := StartSpan(ctx, "test", "child")
		assert.Equal(t, traceID, ExtractTraceID(childCtx))

		child.End()
		parent.End()
	})

	t.Run("EndSpan记录错误状态", func(t *testing.T) {
		_, span := StartSpan(context.Background(), "test", "failing")
		EndSpan(span, errors.New("boom"))

		ended := recorder.Ended()
		last := ended[len(ended)-1]
		assert.Equal(t, "failing", last.Name())
		assert.Equal(t, codes.Error, last.Status().Code)
	})

	t.Run("无Span时TraceID为空", func(t *testing.T) {
		assert.Empty(t, ExtractTraceID(context.Background()))
	})
}
