package repository

import (
	"context"

	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/infra"
	"workspace-booking/internal/infra/pgq"
	"workspace-booking/internal/infra/repository/converter"
	"workspace-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db pgq.DBTX, arg pgq.CreateBookingParams) (uuid.UUID, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      pgq.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db pgq.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, tx pgq.DBTX, b *booking.Booking) (uuid.UUID, error) {
	params, err := converter.BookingToInfra(b)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("invalid booking row", err, infra.KindCheckViolated)
	}

	resultID, err := r.queries.CreateBooking(ctx, tx, params)
	if err != nil {
		switch {
		case pgconv.IsForeignKeyViolation(err):
			return uuid.Nil, infra.WrapRepoErr("office does not exist", err, infra.KindForeignKeyViolated)
		case pgconv.IsUniqueViolation(err):
			return uuid.Nil, infra.WrapRepoErr("booking already exists", err, infra.KindDuplicateKey)
		case pgconv.IsCheckViolation(err):
			return uuid.Nil, infra.WrapRepoErr("booking violates a table constraint", err, infra.KindCheckViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return resultID, nil
}
