package workers

import (
	"context"
	"time"

	"github.com/AI-Engineer-Skool/your-ai-lab/internal/config"
	"github.com/AI-Engineer-Skool/your-ai-lab/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the client's background workers. Currently that is
// only the model catalog refresh job; new workers are appended here.
func NewWorkers(cfg config.ClientWorkers, services *service.ClientServices) *Workers {
	return &Workers{
		workers: []Worker{
			newRefreshWorker(services.RefreshJob, cfg.RefreshInterval),
		},
	}
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

func (w *Workers) Stop() {
	for _, worker := range w.workers {
		worker.Stop()
	}
}

// refreshWorker adapts the model catalog refresh job to the Worker interface.
type refreshWorker struct {
	job      service.ClientRefreshJob
	interval time.Duration
}

func newRefreshWorker(job service.ClientRefreshJob, interval time.Duration) *refreshWorker {
	return &refreshWorker{job: job, interval: interval}
}

func (r *refreshWorker) Run(ctx context.Context) {
	r.job.Start(ctx, r.interval)
}

func (r *refreshWorker) Stop() {
	r.job.Stop()
}
