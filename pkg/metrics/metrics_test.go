package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitMetrics(t *testing.T) {
	InitMetrics()
	// 重复初始化不应panic（promauto重复注册会panic）
	require.NotPanics(t, InitMetrics)

	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsInProgress)
	assert.NotNil(t, RecordOperationsTotal)
	assert.NotNil(t, AuthenticationsTotal)
	assert.NotNil(t, EventsPublishedTotal)
	assert.NotNil(t, CircuitBreakerState)
}

func TestRecordOperation(t *testing.T) {
	InitMetrics()

	before := testutil.ToFloat64(RecordOperationsTotal.WithLabelValues("author", "create", ResultSuccess))
	RecordOperation("author", "create", nil)
	RecordOperation("author", "create", nil)
	RecordOperation("author", "create", errors.New("duplicate"))

	assert.Equal(t, before+2, testutil.ToFloat64(RecordOperationsTotal.WithLabelValues("author", "create", ResultSuccess)))
	assert.GreaterOrEqual(t, testutil.ToFloat64(RecordOperationsTotal.WithLabelValues("author", "create", ResultFailure)), 1.0)
}

func TestRecordEventAndBreakerState(t *testing.T) {
	InitMetrics()

	RecordEvent("publisher.deleted", ResultRejected)
	assert.GreaterOrEqual(t, testutil.ToFloat64(EventsPublishedTotal.WithLabelValues("publisher.deleted", ResultRejected)), 1.0)

	SetCircuitBreakerState("event-publisher", 1)
	assert.Equal(t, 1.0, testutil.ToFloat64(CircuitBreakerState.WithLabelValues("event-publisher")))
}

func TestResult(t *testing.T) {
	assert.Equal(t, ResultSuccess, Result(nil))
	assert.Equal(t, ResultFailure, Result(errors.New("x")))
}
