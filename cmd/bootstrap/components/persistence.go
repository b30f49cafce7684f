package components

import (
	"workspace-booking/internal/infra/pgq"
	"workspace-booking/internal/infra/readstore"
	"workspace-booking/internal/infra/uow"
	"workspace-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Office: the concrete store is wrapped by the catalog cache
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.OfficeReadQueries)),
		),
		readstore.NewOfficeReadStore,
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
	),
)

// Write repositories are created per transaction inside the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *pgq.Queries {
	return pgq.New()
}

func NewDBTX(pool *pgxpool.Pool) pgq.DBTX {
	return pool
}
