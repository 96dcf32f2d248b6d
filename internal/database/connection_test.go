package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsConnectionError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"canceled", context.Canceled, true},
		{"deadline", context.DeadlineExceeded, true},
		{"refused", errors.New("dial tcp: Connection refused"), true},
		{"eof", errors.New("read: unexpected EOF"), true},
		{"query error", errors.New("Parse error: unexpected token"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isConnectionError(tt.err))
		})
	}
}

func TestRedactDBURL(t *testing.T) {
	assert.Equal(t, "ws://root:xxxxx@localhost:8000/rpc", redactDBURL("ws://root:secret@localhost:8000/rpc"))
	assert.Equal(t, "ws://localhost:8000/rpc", redactDBURL("ws://localhost:8000/rpc"))
	assert.Equal(t, "invalid-url", redactDBURL("ws://[::1"))
}

func TestBackoffRetryer_CalculateDelay(t *testing.T) {
	r := newBackoffRetryer()

	for attempt := 0; attempt < 10; attempt++ {
		base := float64(r.baseDelay) * float64(int(1)<<attempt)
		if base > float64(r.maxDelay) {
			base = float64(r.maxDelay)
		}
		d := r.calculateDelay(attempt)
		assert.GreaterOrEqual(t, d, time.Duration(base))
		assert.LessOrEqual(t, d, time.Duration(base*1.25))
	}
}

func TestBackoffRetryer_Retry(t *testing.T) {
	r := newBackoffRetryer()
	r.baseDelay = time.Millisecond
	r.maxRetries = 2

	calls := 0
	err := r.Retry(context.Background(), func() error {
		calls++
		if calls < 2 {
			return errors.New("connection refused")
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)

	calls = 0
	err = r.Retry(context.Background(), func() error {
		calls++
		return errors.New("still down")
	})
	assert.ErrorContains(t, err, "operation failed after 3 attempts")
	assert.Equal(t, 3, calls)
}
