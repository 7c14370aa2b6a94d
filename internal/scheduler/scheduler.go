// Package scheduler runs worker jobs on fixed intervals.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/wynnforge/wynnforge/internal/logger"
	"github.com/wynnforge/wynnforge/internal/worker"
)

// LogMsgScheduledJobSkipped is logged when a tick finds the pool queue full
const LogMsgScheduledJobSkipped = "Scheduled job skipped, worker queue full"

// Scheduler feeds recurring jobs into a worker pool
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	wg         sync.WaitGroup
}

// New creates a scheduler backed by the given pool
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule enqueues job every interval until Stop is called. A tick that
// finds the queue full is dropped rather than letting refresh runs pile
// up behind a slow one.
func (s *Scheduler) Schedule(ctx context.Context, interval time.Duration, job worker.Job) {
	log := logger.FromContext(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if !s.workerPool.Enqueue(job) {
					log.Warn(LogMsgScheduledJobSkipped, "interval", interval)
				}
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop halts all schedules and waits for their goroutines to exit
func (s *Scheduler) Stop() {
	close(s.quit)
	s.wg.Wait()
}
