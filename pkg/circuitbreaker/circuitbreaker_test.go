package circuitbreaker

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBroker = errors.New("broker unavailable")

// newTestBreaker 使用可控时钟的熔断器
func newTestBreaker(st Settings) (*CircuitBreaker, *time.Time) {
	cb := New("test", st)
	clock := time.Now()
	cb.now = func() time.Time { return clock }
	return cb, &clock
}

func TestCircuitBreaker_Closed(t *testing.T) {
	cb, _ := newTestBreaker(Settings{})

	for i := 0; i < 10; i++ {
		require.NoError(t, cb.Execute(func() error { return nil }))
	}

	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, uint32(10), cb.Counts().TotalSuccesses)
}

func TestCircuitBreaker_Trip(t *testing.T) {
	cb, _ := newTestBreaker(Settings{
		ReadyToTrip: func(c Counts) bool { return c.ConsecutiveFailures >= 3 },
	})

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, cb.Execute(func() error { return errBroker }), errBroker)
	}
	assert.Equal(t, StateOpen, cb.State())

	t.Run("打开状态不调用请求", func(t *testing.T) {
		called := false
		err := cb.Execute(func() error {
			called = true
			return nil
		})

		assert.ErrorIs(t, err, ErrOpenState)
		assert.False(t, called)
	})
}

func TestCircuitBreaker_HalfOpen(t *testing.T) {
	var transitions []string
	cb, clock := newTestBreaker(Settings{
		Timeout:     10 * time.Second,
		ReadyToTrip: func(c Counts) bool { return c.ConsecutiveFailures >= 1 },
		OnStateChange: func(_ string, from, to State) {
			transitions = append(transitions, from.String()+"->"+to.String())
		},
	})

	_ = cb.Execute(func() error { return errBroker })
	require.Equal(t, StateOpen, cb.State())

	t.Run("超时后进入半开", func(t *testing.T) {
		*clock = clock.Add(11 * time.Second)
		assert.Equal(t, StateHalfOpen, cb.State())
	})

	t.Run("探测失败回到打开", func(t *testing.T) {
		_ = cb.Execute(func() error { return errBroker })
		assert.Equal(t, StateOpen, cb.State())
	})

	t.Run("探测成功关闭", func(t *testing.T) {
		*clock = clock.Add(11 * time.Second)
		require.NoError(t, cb.Execute(func() error { return nil }))
		assert.Equal(t, StateClosed, cb.State())
	})

	assert.Equal(t, []string{
		"CLOSED->OPEN",
		"OPEN->HALF_OPEN",
		"HALF_OPEN->OPEN",
		"OPEN->HALF_OPEN",
		"HALF_OPEN->CLOSED",
	}, transitions)
}

func TestCircuitBreaker_IntervalReset(t *testing.T) {
	cb, clock := newTestBreaker(Settings{
		Interval:    time.Minute,
		ReadyToTrip: func(c Counts) bool { return c.ConsecutiveFailures >= 3 },
	})

	_ = cb.Execute(func() error { return errBroker })
	_ = cb.Execute(func() error { return errBroker })

	*clock = clock.Add(2 * time.Minute)
	_ = cb.Execute(func() error { return errBroker })

	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, uint32(1), cb.Counts().ConsecutiveFailures)
}

func TestCircuitBreaker_Concurrent(t *testing.T) {
	cb := New("concurrent", Settings{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = cb.Execute(func() error { return nil })
		}()
	}
	wg.Wait()

	assert.Equal(t, uint32(50), cb.Counts().TotalSuccesses)
}

func TestCounts_FailureRate(t *testing.T) {
	assert.Equal(t, 0.0, Counts{}.FailureRate())
	assert.Equal(t, 0.25, Counts{Requests: 4, TotalFailures: 1}.FailureRate())
}
