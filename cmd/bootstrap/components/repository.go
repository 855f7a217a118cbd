package components

import (
	"famboard/internal/infra/db"
	"famboard/internal/infra/energyface"
	"famboard/internal/infra/push"
	"famboard/internal/infra/readstore"
	"famboard/internal/infra/repository"
	"famboard/internal/usecase/commands"
	"famboard/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		// Write side
		fx.Annotate(
			repository.NewPresentRepository,
			fx.As(new(commands.PresentRepository)),
		),
		fx.Annotate(
			repository.NewWaterTempStateRepository,
			fx.As(new(commands.WaterTempStateRepository)),
		),
		fx.Annotate(
			repository.NewPushEndpointRepository,
			fx.As(new(commands.PushEndpointRepository)),
			fx.As(new(push.EndpointStore)),
		),
		fx.Annotate(
			repository.NewTempAlertSubscriberRepository,
			fx.As(new(commands.TempAlertSubscriberRepository)),
			fx.As(new(commands.TempAlertSubscribers)),
		),
		// Read side
		fx.Annotate(
			readstore.NewPresentReadStore,
			fx.As(new(queries.PresentReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Outbound adapters
		fx.Annotate(
			energyface.NewClient,
			fx.As(new(commands.SensorFeed)),
			fx.As(new(queries.SensorFeed)),
		),
		fx.Annotate(
			push.NewDispatcher,
			fx.As(new(commands.Dispatcher)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
