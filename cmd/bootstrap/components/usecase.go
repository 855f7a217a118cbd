package components

import (
	"famboard/internal/pkg/clock"
	"famboard/internal/usecase"
	"famboard/internal/usecase/commands"
	"famboard/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewPresentCommands,
		commands.NewWaterTempCommands,
		commands.NewSummaryCommands,
		commands.NewPushCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPresentQueries,
		queries.NewUserQueries,
		queries.NewWaterTempQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
