package worker

import (
	"context"
	"purger/internal/purge"
	"purger/pkg/logger"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// timeoutSlack is added to the delivery timeout so River never cancels a job
// before the ban request had the chance to time out by itself.
const timeoutSlack = time.Second

// BanWorker is a River worker that posts queued ban expressions to the proxy.
type BanWorker struct {
	river.WorkerDefaults[BanJobArgs]

	deliverer *purge.Deliverer
}

// NewBanWorker constructs a BanWorker delivering through deliverer.
func NewBanWorker(deliverer *purge.Deliverer) *BanWorker {
	return &BanWorker{deliverer: deliverer}
}

// Timeout bounds a single job run.
func (w *BanWorker) Timeout(*river.Job[BanJobArgs]) time.Duration {
	return w.deliverer.Timeout() + timeoutSlack
}

// Work delivers the job's expression. A failed delivery cancels the job.
func (w *BanWorker) Work(ctx context.Context, job *river.Job[BanJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))

	if err := w.deliverer.Deliver(ctx, job.Args.Expr); err != nil {
		return river.JobCancel(err) //nolint: wrapcheck
	}

	logger.Debug(ctx, "ban delivered")

	return nil
}
