package worker

import (
	"github.com/riverqueue/river"
)

// BanJobArgs carries one ban expression to a BanWorker.
type BanJobArgs struct {
	// Expr is the complete ban expression, host clause included.
	Expr string `json:"expr"`
}

// Kind returns the River job kind used to register and dispatch the ban worker.
func (args BanJobArgs) Kind() string { return "BanJob" }

// InsertOpts returns the River options for ban jobs. Bans are attempted once:
// a failed ban is logged and dropped, never retried.
func (args BanJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 1,
	}
}
