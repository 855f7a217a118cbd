package bootstrap

import (
	"famboard/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.MonitorConfig { return cfg.Monitor },
		func(cfg config.Config) config.SensorConfig { return cfg.Sensor },
		func(cfg config.Config) config.PushConfig { return cfg.Push },
	),
)
