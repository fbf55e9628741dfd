package worker

import (
	"context"
	"purger/internal/purge"
	"purger/pkg/logger"
	"purger/pkg/storage"

	"go.uber.org/zap"
)

// QueueSender hands ban expressions to River instead of posting them in
// process. Enqueue failures are logged and dropped.
type QueueSender struct {
	jobs storage.JobStorage
}

var _ purge.Sender = (*QueueSender)(nil)

// NewQueueSender constructs a QueueSender.
func NewQueueSender(jobs storage.JobStorage) *QueueSender {
	return &QueueSender{jobs: jobs}
}

// Send enqueues expr.
func (s *QueueSender) Send(ctx context.Context, expr string) {
	if _, err := s.jobs.AddJob(ctx, BanJobArgs{Expr: expr}, nil); err != nil {
		logger.Warn(ctx, "could not enqueue ban", zap.String("expr", expr), zap.Error(err))
	}
}
