package services

import (
	"github.com/sjperalta/rental-desk/internal/jobs"
	"github.com/sjperalta/rental-desk/internal/session"
)

type JobService struct {
	worker *jobs.Worker
	store  *session.Store
}

func NewJobService(worker *jobs.Worker, store *session.Store) *JobService {
	return &JobService{
		worker: worker,
		store:  store,
	}
}

func (s *JobService) GetStatus() map[string]interface{} {
	stats := s.worker.GetStats()
	return map[string]interface{}{
		"active_jobs":    stats.ActiveJobs,
		"completed_jobs": stats.CompletedJobs,
		"failed_jobs":    stats.FailedJobs,
		"queue_length":   stats.QueueLength,
		"max_concurrent": stats.MaxConcurrent,
		"open_sessions":  s.store.Len(),
	}
}
