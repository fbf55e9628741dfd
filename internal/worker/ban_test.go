package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"purger/internal/purge"
	"purger/internal/worker"
	"purger/pkg/serrors"
	mockstorage "purger/pkg/storage/mock"
	mockvarnish "purger/pkg/varnish/mock"
)

const expr = `obj.http.X-Purge-Host ~ (^(www\.)?example\.com$) && obj.http.X-Purge-URL ~ /feed/`

func makeJob(id int64, expr string) *river.Job[worker.BanJobArgs] {
	return &river.Job[worker.BanJobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   worker.BanJobArgs{Expr: expr},
	}
}

func newDeliverer(t *testing.T, client *mockvarnish.MockClient) *purge.Deliverer {
	t.Helper()

	d, err := purge.NewDeliverer(client, purge.DeliveryOptions{Timeout: 200 * time.Millisecond})
	require.NoError(t, err)

	return d
}

func TestBanJobArgs(t *testing.T) {
	args := worker.BanJobArgs{Expr: expr}

	require.Equal(t, "BanJob", args.Kind())
	require.Equal(t, 1, args.InsertOpts().MaxAttempts)
}

func TestBanWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockvarnish.NewMockClient(ctrl)
	w := worker.NewBanWorker(newDeliverer(t, client))

	client.EXPECT().Ban(gomock.Any(), expr).Return(nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1, expr)))
}

func TestBanWorker_Work_FailureCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockvarnish.NewMockClient(ctrl)
	w := worker.NewBanWorker(newDeliverer(t, client))

	client.EXPECT().Ban(gomock.Any(), expr).Return(serrors.With(serrors.ErrUnavailable, "ban rejected"))

	err := w.Work(context.Background(), makeJob(2, expr))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestBanWorker_Timeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := worker.NewBanWorker(newDeliverer(t, mockvarnish.NewMockClient(ctrl)))

	require.Greater(t, w.Timeout(makeJob(3, expr)), 200*time.Millisecond)
}

func TestQueueSender_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	jobs := mockstorage.NewMockStorage(ctrl)

	jobs.EXPECT().AddJob(gomock.Any(), worker.BanJobArgs{Expr: expr}, gomock.Nil()).Return(true, nil)

	worker.NewQueueSender(jobs).Send(context.Background(), expr)
}

func TestQueueSender_Send_SwallowsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	jobs := mockstorage.NewMockStorage(ctrl)

	jobs.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, errors.New("db down"))

	worker.NewQueueSender(jobs).Send(context.Background(), expr)
}
