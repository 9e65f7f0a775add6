package jobs

import (
	"context"
	"log/slog"

	"penguinadmin/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// LegacyOrderPurger is satisfied by commands.PurgeLegacyOrdersCommandHandler.
type LegacyOrderPurger interface {
	Handle(ctx context.Context, cmd commands.PurgeLegacyOrdersCommand) (int64, error)
}

// LegacyOrderPurgeJob removes orders that still carry items without a product
// reference. It only runs when a schedule is configured.
type LegacyOrderPurgeJob struct {
	handler  LegacyOrderPurger
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewLegacyOrderPurgeJob takes a standard five-field cron schedule, e.g.
// "30 3 * * *". An empty schedule disables the job.
func NewLegacyOrderPurgeJob(handler LegacyOrderPurger, schedule string, logger *slog.Logger) *LegacyOrderPurgeJob {
	return &LegacyOrderPurgeJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "legacy_order_purge_job"),
	}
}

func (j *LegacyOrderPurgeJob) Start() error {
	if j.schedule == "" {
		j.logger.InfoContext(context.Background(), "Legacy order purge job disabled")
		return nil
	}

	if _, err := j.cron.AddFunc(j.schedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Legacy order purge job started", "schedule", j.schedule)
	return nil
}

func (j *LegacyOrderPurgeJob) Stop() {
	<-j.cron.Stop().Done()
}

func (j *LegacyOrderPurgeJob) run(ctx context.Context) {
	removed, err := j.handler.Handle(ctx, commands.NewPurgeLegacyOrdersCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Legacy order purge failed", "error", err)
		return
	}
	j.logger.InfoContext(ctx, "Legacy orders purged", "count", removed)
}
