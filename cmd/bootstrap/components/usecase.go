package components

import (
	"lounge-pos/internal/pkg/clock"
	"lounge-pos/internal/pkg/config"
	"lounge-pos/internal/usecase"
	"lounge-pos/internal/usecase/commands"
	"lounge-pos/internal/usecase/queries"

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
	func(cfg config.Config) config.AdminConfig {
		return cfg.Admin
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewDeviceCommands,
		commands.NewCatalogCommands,
		commands.NewSettingsCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewDeviceQueries,
		queries.NewCatalogQueries,
		queries.NewSettingsQueries,
		queries.NewHistoryQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
