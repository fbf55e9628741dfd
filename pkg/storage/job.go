package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs. It backs the queue dispatch mode where
// ban requests are delivered by River workers instead of in-process
// goroutines.
type JobStorage interface {
	// AddJob enqueues a job. The returned bool is false when River skipped the
	// insert as a duplicate of an existing unique job.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
