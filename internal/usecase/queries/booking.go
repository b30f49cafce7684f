package queries

import (
	"context"

	"workspace-booking/internal/infra"
	"workspace-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultBookingListLimit = 50
	MaxBookingListLimit     = 100
)

var (
	ErrBookingNotFound = errs.ErrBookingNotFound
	ErrBookingLoad     = errs.New("failed to load bookings")
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, limit int32) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, limit int) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrBookingLoad)
	}
	return v, nil
}

// List returns the newest bookings first.
func (q *bookingQueriesImpl) List(ctx context.Context, limit int) ([]*BookingView, error) {
	rows, err := q.store.List(ctx, int32(ClampLimit(limit)))
	if err != nil {
		return nil, errs.Mark(err, ErrBookingLoad)
	}
	return rows, nil
}

// ClampLimit maps non-positive values to the default and caps at the maximum.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultBookingListLimit
	}
	if limit > MaxBookingListLimit {
		return MaxBookingListLimit
	}
	return limit
}
