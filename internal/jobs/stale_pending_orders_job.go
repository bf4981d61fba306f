package jobs

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// stalePendingBatch bounds how many pending orders one sweep inspects.
const stalePendingBatch = 100

// StalePendingOrdersJob periodically sweeps pending orders and flags those
// waiting on supplier confirmation longer than the configured age. The job
// only observes and logs; suppliers confirm or reject through the API.
type StalePendingOrdersJob struct {
	handler queries.GetRecentOrdersQueryHandler
	maxAge  time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStalePendingOrdersJob creates a job that sweeps every minute.
func NewStalePendingOrdersJob(
	handler queries.GetRecentOrdersQueryHandler,
	maxAge time.Duration,
	logger *slog.Logger,
) *StalePendingOrdersJob {
	return &StalePendingOrdersJob{
		handler: handler,
		maxAge:  maxAge,
		cron:    cron.New(),
		logger:  logger.With("component", "stale_pending_orders_job"),
	}
}

// Start schedules the sweep to run every minute.
func (j *StalePendingOrdersJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", j.sweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale pending orders job started (running every minute)")
	return nil
}

// Stop stops the sweep.
func (j *StalePendingOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale pending orders job stopped")
}

func (j *StalePendingOrdersJob) sweep() {
	ctx := context.Background()

	pending := order.Pending
	query, err := queries.NewGetRecentOrdersQuery(stalePendingBatch, &pending)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale pending orders sweep failed", "error", err)
		return
	}

	summaries, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale pending orders sweep failed", "error", err)
		return
	}

	cutoff := time.Now().Add(-j.maxAge)
	for _, summary := range summaries {
		if summary.CreatedAt.After(cutoff) {
			continue
		}
		j.logger.WarnContext(ctx, "Order pending beyond confirmation window",
			"order", summary.Number,
			"supplier_id", summary.SupplierID,
			"age", time.Since(summary.CreatedAt).Round(time.Second).String(),
		)
	}
}
