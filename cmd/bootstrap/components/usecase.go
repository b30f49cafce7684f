package components

import (
	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/pkg/clock"
	"workspace-booking/internal/pkg/config"
	"workspace-booking/internal/pkg/jwt"
	"workspace-booking/internal/usecase"
	"workspace-booking/internal/usecase/commands"
	"workspace-booking/internal/usecase/queries"

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
	fx.Annotate(
		booking.NewDefaultPriceCalculator,
		fx.As(new(booking.PriceCalculator)),
	),
	booking.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(cfg config.Config, svc *jwt.Service) commands.AuthCommands {
			return commands.NewAuthCommands(cfg.Admin, svc)
		},
		commands.NewBookingCommands,
		commands.NewOfficeCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOfficeQueries,
		queries.NewBookingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
