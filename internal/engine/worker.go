package engine

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Task is a unit of background work handed off after the reply is sent.
type Task func(ctx context.Context)

// TaskQueue runs fire-and-forget work on a single background worker so
// persistence latency never delays the user-visible answer. Failures are
// the task's responsibility to log; the queue only guarantees execution.
type TaskQueue struct {
	tasks  chan Task
	done   chan struct{}
	logger *slog.Logger
	wg     sync.WaitGroup
	once   sync.Once
}

// NewTaskQueue creates a queue with the given buffer and starts its worker.
func NewTaskQueue(buffer int, logger *slog.Logger) *TaskQueue {
	if buffer <= 0 {
		buffer = 64
	}

	q := &TaskQueue{
		tasks:  make(chan Task, buffer),
		done:   make(chan struct{}),
		logger: logger,
	}

	q.wg.Add(1)
	go q.run()

	return q
}

func (q *TaskQueue) run() {
	defer q.wg.Done()

	for {
		select {
		case task, ok := <-q.tasks:
			if !ok {
				return
			}
			q.execute(task)
		case <-q.done:
			// Drain whatever is already queued before exiting.
			for {
				select {
				case task := <-q.tasks:
					q.execute(task)
				default:
					return
				}
			}
		}
	}
}

func (q *TaskQueue) execute(task Task) {
	defer func() {
		if r := recover(); r != nil {
			q.logger.Error("background task panicked", "panic", r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	task(ctx)
}

// Enqueue schedules a task. A full queue drops the task with a logged
// warning rather than blocking the response path.
func (q *TaskQueue) Enqueue(task Task) {
	select {
	case q.tasks <- task:
	default:
		q.logger.Warn("background queue full, dropping task")
	}
}

// Close stops the worker after draining queued tasks.
func (q *TaskQueue) Close() {
	q.once.Do(func() {
		close(q.done)
	})
	q.wg.Wait()
}
