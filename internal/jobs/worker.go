package jobs

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sjperalta/rental-desk/pkg/logger"
)

// Job represents a background task
type Job func(ctx context.Context) error

// DefaultShutdownGrace bounds how long Shutdown waits for running jobs before
// cancelling their context.
const DefaultShutdownGrace = 10 * time.Second

// Worker runs queued jobs on a fixed pool, fire-and-forget jobs on bounded
// goroutines and scheduled jobs on tickers.
type Worker struct {
	ctx           context.Context
	cancel        context.CancelFunc
	stop          chan struct{}
	wg            sync.WaitGroup
	queueMu       sync.RWMutex
	queue         chan Job
	closed        atomic.Bool
	asyncSem      chan struct{}
	maxConcurrent int
	stats         WorkerStats
	statsMu       sync.RWMutex
}

// WorkerStats holds statistics about the worker. CompletedJobs counts every
// finished job; FailedJobs is the subset that returned an error or panicked.
type WorkerStats struct {
	ActiveJobs    int   `json:"active_jobs"`
	CompletedJobs int64 `json:"completed_jobs"`
	FailedJobs    int64 `json:"failed_jobs"`
	QueueLength   int   `json:"queue_length"`
	MaxConcurrent int   `json:"max_concurrent"`
}

// NewWorker creates a worker with N concurrent processors
func NewWorker(numWorkers int) *Worker {
	if numWorkers < 1 {
		numWorkers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	asyncLimit := numWorkers * 2
	if asyncLimit < 10 {
		asyncLimit = 10
	}

	w := &Worker{
		ctx:           ctx,
		cancel:        cancel,
		stop:          make(chan struct{}),
		queue:         make(chan Job, 100),
		asyncSem:      make(chan struct{}, asyncLimit),
		maxConcurrent: asyncLimit,
	}

	for i := 0; i < numWorkers; i++ {
		w.wg.Add(1)
		go w.process(i)
	}

	return w
}

// Enqueue adds a job to the pool. A full queue runs the job inline.
func (w *Worker) Enqueue(job Job) {
	w.queueMu.RLock()
	defer w.queueMu.RUnlock()
	if w.closed.Load() {
		logger.Warn("Worker stopped, dropping job")
		return
	}

	select {
	case w.queue <- job:
	default:
		logger.Warn("Worker queue full, running job inline")
		w.run("inline", job)
	}
}

// EnqueueAsync runs a job in its own goroutine, bounded by a semaphore
func (w *Worker) EnqueueAsync(job Job) {
	w.queueMu.RLock()
	defer w.queueMu.RUnlock()
	if w.closed.Load() {
		logger.Warn("Worker stopped, dropping async job")
		return
	}
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		select {
		case w.asyncSem <- struct{}{}:
		case <-w.ctx.Done():
			return
		}
		defer func() { <-w.asyncSem }()

		w.run("async", job)
	}()
}

// ScheduleEvery runs a job at fixed intervals. The first run happens after
// one interval.
func (w *Worker) ScheduleEvery(interval time.Duration, job Job) {
	w.queueMu.RLock()
	defer w.queueMu.RUnlock()
	if w.closed.Load() {
		return
	}
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-w.stop:
				return
			case <-ticker.C:
				w.run("scheduled", job)
			}
		}
	}()
}

// Shutdown stops accepting jobs and waits up to DefaultShutdownGrace for
// queued and running jobs to finish.
func (w *Worker) Shutdown() {
	w.ShutdownWithin(DefaultShutdownGrace)
}

// ShutdownWithin stops accepting jobs and lets queued and running jobs
// finish. Jobs still running after grace have their context cancelled; it
// returns once all of them have returned.
func (w *Worker) ShutdownWithin(grace time.Duration) {
	w.queueMu.Lock()
	if w.closed.Swap(true) {
		w.queueMu.Unlock()
		return
	}
	close(w.queue)
	close(w.stop)
	w.queueMu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(grace):
		logger.Warn("Background jobs still running, cancelling", "grace", grace)
		w.cancel()
		<-done
	}
	w.cancel()
}

// Context returns the worker's context for checking cancellation
func (w *Worker) Context() context.Context {
	return w.ctx
}

// GetStats returns the current worker statistics
func (w *Worker) GetStats() WorkerStats {
	w.statsMu.RLock()
	defer w.statsMu.RUnlock()
	stats := w.stats
	stats.QueueLength = len(w.queue)
	stats.MaxConcurrent = w.maxConcurrent
	return stats
}

func (w *Worker) process(workerID int) {
	defer w.wg.Done()
	for job := range w.queue {
		w.run("queued", job, "worker", workerID)
	}
}

// run executes a job with panic recovery and bookkeeping
func (w *Worker) run(kind string, job Job, attrs ...any) {
	w.trackJobStart()
	start := time.Now()
	failed := false

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panic", append(attrs, "kind", kind, "panic", r)...)
			failed = true
		}
		w.trackJobEnd(failed)
	}()

	if err := job(w.ctx); err != nil {
		logger.Error("Job failed", append(attrs, "kind", kind, "error", err)...)
		failed = true
		return
	}
	logger.Debug("Job completed", append(attrs, "kind", kind, "duration", time.Since(start))...)
}

func (w *Worker) trackJobStart() {
	w.statsMu.Lock()
	defer w.statsMu.Unlock()
	w.stats.ActiveJobs++
}

func (w *Worker) trackJobEnd(failed bool) {
	w.statsMu.Lock()
	defer w.statsMu.Unlock()
	w.stats.ActiveJobs--
	w.stats.CompletedJobs++
	if failed {
		w.stats.FailedJobs++
	}
}
