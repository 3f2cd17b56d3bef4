package components

import (
	"fieldbook/internal/pkg/clock"
	"fieldbook/internal/usecase"
	"fieldbook/internal/usecase/commands"
	"fieldbook/internal/usecase/queries"
	"fieldbook/internal/usecase/wizard"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
	usecaseWizardModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewFieldQueries,
		queries.NewAvailabilityQueries,
		queries.NewBookingQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

var usecaseWizardModule = fx.Module("usecase/wizard",
	fx.Provide(
		wizard.NewWizard,
	),
)
