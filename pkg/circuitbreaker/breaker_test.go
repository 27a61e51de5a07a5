package circuitbreaker

import (
	"errors"
	"testing"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute_NilBreakerCallsThrough(t *testing.T) {
	value, err := Execute(nil, func() (string, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", value)
}

func TestExecute_PassesErrorsThrough(t *testing.T) {
	boom := errors.New("boom")
	cb := NewCircuitBreaker(DefaultConfig("test"))

	_, err := Execute(cb, func() (int, error) { return 0, boom })
	assert.Same(t, boom, err)
}

func TestExecute_OpensAfterRepeatedFailures(t *testing.T) {
	cb := NewCircuitBreaker(DefaultConfig("test"))
	boom := errors.New("boom")

	for i := 0; i < 3; i++ {
		_, _ = Execute(cb, func() (int, error) { return 0, boom })
	}
	assert.True(t, IsCircuitOpen(cb))

	calls := 0
	_, err := Execute(cb, func() (int, error) {
		calls++
		return 1, nil
	})
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Contains(t, err.Error(), "circuit breaker 'test' is open")
	assert.Zero(t, calls)
}

func TestExecute_IsSuccessfulKeepsBreakerClosed(t *testing.T) {
	notFound := errors.New("not found")
	cfg := DefaultConfig("test")
	cfg.IsSuccessful = func(err error) bool { return err == nil || errors.Is(err, notFound) }
	cb := NewCircuitBreaker(cfg)

	for i := 0; i < 5; i++ {
		_, err := Execute(cb, func() (int, error) { return 0, notFound })
		assert.ErrorIs(t, err, notFound)
	}
	assert.False(t, IsCircuitOpen(cb))
}
