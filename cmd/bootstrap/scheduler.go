package bootstrap

import (
	"context"
	"log/slog"

	"famboard/internal/pkg/config"
	"famboard/internal/usecase/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(RegisterJobs),
)

// RegisterJobs hooks the temperature monitor tick and the daily presents
// digest into a cron scheduler tied to the fx lifecycle.
func RegisterJobs(
	lc fx.Lifecycle,
	cfg config.Config,
	waterTemp commands.WaterTempCommands,
	summary commands.SummaryCommands,
	logger *slog.Logger,
) error {
	if cfg.Monitor.JobsDisabled {
		logger.Info("scheduled jobs disabled by configuration")
		return nil
	}

	c := cron.New()

	if _, err := c.AddFunc(cfg.Monitor.CheckSpec, func() {
		waterTemp.CheckWaterTemp(context.Background())
	}); err != nil {
		return err
	}

	if _, err := c.AddFunc(cfg.Monitor.SummarySpec, func() {
		summary.SendPresentsSummary(context.Background())
	}); err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			c.Start()
			logger.Info("scheduler started",
				"check_spec", cfg.Monitor.CheckSpec,
				"summary_spec", cfg.Monitor.SummarySpec,
			)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopped := c.Stop()
			select {
			case <-stopped.Done():
			case <-ctx.Done():
			}
			return nil
		},
	})

	return nil
}
