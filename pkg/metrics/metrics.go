// Package metrics 提供基于Prometheus的指标收集
//
// 指标分三类：
//   - HTTP请求：请求数、耗时、并发数（由middleware.Metrics采集）
//   - 记录操作：作者/出版社/用户的增删改查结果（由各Record Service采集）
//   - 事件与熔断：领域事件发布结果、熔断器状态
//
// 所有指标通过promauto注册到默认Registry，/metrics端点由promhttp暴露。
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultSuccess  = "success"
	ResultFailure  = "failure"
	ResultRejected = "rejected"
)

var (
	initOnce sync.Once

	// HTTPRequestsTotal HTTP请求总数
	// 标签：method、path（路由模板，如/api/v1/authors/:id）、status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数
	HTTPRequestsInProgress prometheus.Gauge

	// RecordOperationsTotal 记录操作总数
	// 标签：entity（author/publisher/user）、operation（create/update/delete/find）、result
	RecordOperationsTotal *prometheus.CounterVec

	// AuthenticationsTotal 登录认证次数
	// 标签：result（success/failure）
	AuthenticationsTotal *prometheus.CounterVec

	// EventsPublishedTotal 领域事件发布总数
	// 标签：type（如author.created）、result（success/failure/rejected）
	EventsPublishedTotal *prometheus.CounterVec

	// CircuitBreakerState 熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）
	CircuitBreakerState *prometheus.GaugeVec
)

// InitMetrics 初始化所有指标（重复调用安全）
func InitMetrics() {
	initOnce.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
			},
			[]string{"method", "path"},
		)

		HTTPRequestsInProgress = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_progress",
				Help: "Number of HTTP requests being served",
			},
		)

		RecordOperationsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "record_operations_total",
				Help: "Total number of record service operations",
			},
			[]string{"entity", "operation", "result"},
		)

		AuthenticationsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentications_total",
				Help: "Total number of authentication attempts",
			},
			[]string{"result"},
		)

		EventsPublishedTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "events_published_total",
				Help: "Total number of domain events handed to the broker",
			},
			[]string{"type", "result"},
		)

		CircuitBreakerState = promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=CLOSED, 1=OPEN, 2=HALF_OPEN)",
			},
			[]string{"name"},
		)
	})
}

// Result 根据错误返回结果标签
func Result(err error) string {
	if err != nil {
		return ResultFailure
	}
	return ResultSuccess
}

// RecordOperation 记录一次Record Service操作
func RecordOperation(entity, operation string, err error) {
	InitMetrics()
	RecordOperationsTotal.WithLabelValues(entity, operation, Result(err)).Inc()
}

// RecordAuthentication 记录一次登录认证
func RecordAuthentication(err error) {
	InitMetrics()
	AuthenticationsTotal.WithLabelValues(Result(err)).Inc()
}

// RecordEvent 记录一次事件发布
func RecordEvent(eventType, result string) {
	InitMetrics()
	EventsPublishedTotal.WithLabelValues(eventType, result).Inc()
}

// SetCircuitBreakerState 更新熔断器状态
func SetCircuitBreakerState(name string, state int) {
	InitMetrics()
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
