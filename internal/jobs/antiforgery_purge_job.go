package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// TokenPurger drops expired anti-forgery tokens.
type TokenPurger interface {
	Purge(ctx context.Context) (int, error)
}

// AntiForgeryPurgeJob keeps the in-memory token store from growing with tokens
// that were issued but never submitted. Runs once a minute.
type AntiForgeryPurgeJob struct {
	purger TokenPurger
	cron   *cron.Cron
	logger *slog.Logger
}

func NewAntiForgeryPurgeJob(purger TokenPurger, logger *slog.Logger) *AntiForgeryPurgeJob {
	return &AntiForgeryPurgeJob{
		purger: purger,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "antiforgery_purge_job"),
	}
}

func (j *AntiForgeryPurgeJob) Start() error {
	if _, err := j.cron.AddFunc("0 * * * * *", func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Anti-forgery purge job started (running every minute)")
	return nil
}

func (j *AntiForgeryPurgeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Anti-forgery purge job stopped")
}

func (j *AntiForgeryPurgeJob) run(ctx context.Context) {
	removed, err := j.purger.Purge(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Anti-forgery purge failed", "error", err)
		return
	}
	if removed > 0 {
		j.logger.DebugContext(ctx, "Expired anti-forgery tokens removed", "count", removed)
	}
}
