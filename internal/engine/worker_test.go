package engine

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskQueue(t *testing.T) {
	logger := slog.Default()

	t.Run("executes enqueued tasks", func(t *testing.T) {
		q := NewTaskQueue(8, logger)

		done := make(chan struct{})
		q.Enqueue(func(context.Context) { close(done) })
		<-done

		q.Close()
	})

	t.Run("close drains queued tasks", func(t *testing.T) {
		q := NewTaskQueue(16, logger)

		var executed atomic.Int32
		for i := 0; i < 10; i++ {
			q.Enqueue(func(context.Context) { executed.Add(1) })
		}

		q.Close()
		assert.Equal(t, int32(10), executed.Load())
	})

	t.Run("recovers from a panicking task", func(t *testing.T) {
		q := NewTaskQueue(8, logger)

		var executed atomic.Int32
		q.Enqueue(func(context.Context) { panic("boom") })
		q.Enqueue(func(context.Context) { executed.Add(1) })

		q.Close()
		assert.Equal(t, int32(1), executed.Load())
	})

	t.Run("full queue drops instead of blocking", func(t *testing.T) {
		q := NewTaskQueue(1, logger)

		started := make(chan struct{})
		release := make(chan struct{})
		q.Enqueue(func(context.Context) {
			close(started)
			<-release
		})
		<-started

		var executed atomic.Int32
		q.Enqueue(func(context.Context) { executed.Add(1) }) // fills the buffer
		q.Enqueue(func(context.Context) { executed.Add(1) }) // dropped

		close(release)
		q.Close()
		assert.Equal(t, int32(1), executed.Load())
	})

	t.Run("close is idempotent", func(t *testing.T) {
		q := NewTaskQueue(4, logger)
		q.Close()
		q.Close()
	})

	t.Run("tasks receive a live context", func(t *testing.T) {
		q := NewTaskQueue(4, logger)

		errCh := make(chan error, 1)
		q.Enqueue(func(ctx context.Context) { errCh <- ctx.Err() })

		q.Close()
		assert.NoError(t, <-errCh)
	})
}
