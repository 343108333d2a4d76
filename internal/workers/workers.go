package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-chain-keeper/internal/config"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
)

const defaultInterval = 30 * time.Second

// Workers starts and stops a set of workers together.
type Workers struct {
	workers []Worker
}

// NewWorkers wires the auto-lock and approval sweep jobs.
func NewWorkers(locker AutoLocker, sweeper ApprovalSweeper, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{workers: []Worker{
		NewAutoLockWorker(locker, cfg.AutoLockInterval, logger),
		NewApprovalSweepWorker(sweeper, cfg.ApprovalSweepInterval, logger),
	}}
}

// Add appends worker to the set. It must be called before Start.
func (w *Workers) Add(worker Worker) *Workers {
	w.workers = append(w.workers, worker)
	return w
}

// Start starts every worker in order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops every worker in reverse order and waits for each.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

// NewAutoLockWorker returns a worker that locks an idle wallet every interval.
func NewAutoLockWorker(locker AutoLocker, interval time.Duration, log *logger.Logger) Worker {
	return newTickerJob("auto-lock", interval, log, func(ctx context.Context) error {
		locked, err := locker.CheckAutoLock(ctx)
		if locked {
			logger.FromContext(ctx).Info().Msg("wallet auto-locked")
		}
		return err
	})
}

// NewApprovalSweepWorker returns a worker that rejects timed-out approvals
// every interval.
func NewApprovalSweepWorker(sweeper ApprovalSweeper, interval time.Duration, log *logger.Logger) Worker {
	return newTickerJob("approval-sweep", interval, log, func(ctx context.Context) error {
		n, err := sweeper.ExpireStale(ctx)
		if n > 0 {
			logger.FromContext(ctx).Info().Int("expired", n).Msg("stale approvals rejected")
		}
		return err
	})
}

// tickerJob calls run on a ticker. It is idle until Start is called.
type tickerJob struct {
	name     string
	interval time.Duration
	run      func(ctx context.Context) error
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func newTickerJob(name string, interval time.Duration, log *logger.Logger, run func(ctx context.Context) error) *tickerJob {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &tickerJob{
		name:     name,
		interval: interval,
		run:      run,
		logger:   &logger.Logger{Logger: log.With().Str("worker", name).Logger()},
	}
}

// Start stops a previous run, then launches the ticker goroutine.
func (j *tickerJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(j.logger.WithContext(ctx))
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	j.logger.Debug().Dur("interval", j.interval).Msg("worker started")

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.run(jobCtx); err != nil && jobCtx.Err() == nil {
					j.logger.Err(err).Msg("worker tick failed")
				}
			}
		}
	}()
}

// Stop cancels the goroutine and waits for it. It is a no-op when the job
// is not running.
func (j *tickerJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
