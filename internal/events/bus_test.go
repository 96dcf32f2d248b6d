package events

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatermillBus_PublishSubscribe(t *testing.T) {
	bus := NewWatermillBus()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan Message, 1)
	require.NoError(t, bus.Subscribe(ctx, "demo.topic", func(ctx context.Context, msg Message) error {
		received <- msg
		return nil
	}))

	err := bus.Publish(ctx, Message{
		Topic:    "demo.topic",
		UserID:   "alice",
		Payload:  []byte("hello"),
		Metadata: map[string]string{"source": "test"},
	})
	require.NoError(t, err)

	select {
	case msg := <-received:
		assert.Equal(t, "demo.topic", msg.Topic)
		assert.Equal(t, "alice", msg.UserID)
		assert.Equal(t, []byte("hello"), msg.Payload)
		assert.Equal(t, map[string]string{"source": "test"}, msg.Metadata)
	case <-time.After(2 * time.Second):
		t.Fatal("message was not delivered")
	}
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestAudit(t *testing.T) {
	bus := NewWatermillBus()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out syncBuffer
	logger := slog.New(slog.NewTextHandler(&out, nil))
	require.NoError(t, Audit(ctx, bus, logger))

	require.NoError(t, PublishCourseUpdated(ctx, bus, "alice", CourseUpdated{
		CourseID: "go101",
		Name:     "Go 101",
		State:    "published",
	}))

	assert.Eventually(t, func() bool {
		return bytes.Contains([]byte(out.String()), []byte("course_id=go101"))
	}, 2*time.Second, 10*time.Millisecond)
	assert.Contains(t, out.String(), "user_id=alice")
}
