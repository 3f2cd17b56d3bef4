package components

import (
	"fieldbook/internal/infra/proofstore"
	"fieldbook/internal/infra/repository"
	"fieldbook/internal/pkg/config"
	"fieldbook/internal/usecase/commands"
	"fieldbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		repository.NewFieldRepository,
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(queries.BookedIntervalReadStore)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			NewProofStore,
			fx.As(new(commands.ProofStore)),
		),
	),
)

func NewProofStore(cfg config.Config) (*proofstore.LocalStore, error) {
	return proofstore.NewLocalStore(cfg.Upload)
}
