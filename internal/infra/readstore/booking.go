package readstore

import (
	"context"

	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/infra"
	"workspace-booking/internal/infra/pgq"
	"workspace-booking/internal/pkg/pgconv"
	"workspace-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingViewQueries interface {
	GetBookingByID(ctx context.Context, db pgq.DBTX, id uuid.UUID) (pgq.BookingViewRow, error)
	ListBookings(ctx context.Context, db pgq.DBTX, limit int32) ([]pgq.BookingViewRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      pgq.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db pgq.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return rowToBookingView(row), nil
}

func (r *BookingReadStore) List(ctx context.Context, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookings(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}

	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		result[i] = rowToBookingView(row)
	}
	return result, nil
}

func rowToBookingView(row pgq.BookingViewRow) *queries.BookingView {
	return &queries.BookingView{
		ID:                 row.ID,
		OfficeID:           row.OfficeID,
		OfficeName:         row.OfficeName,
		OfficeLocation:     row.OfficeLocation,
		FullName:           row.FullName,
		Email:              row.Email,
		Phone:              row.Phone,
		CompanyName:        row.CompanyName,
		Purpose:            row.Purpose,
		BookingDate:        pgconv.DateFromPgtype(row.BookingDate),
		StartTime:          formatTimeOfDay(row.StartTime),
		EndTime:            formatTimeOfDay(row.EndTime),
		DurationPackage:    pgconv.StringPtrFromPgtype(row.DurationPackage),
		NumberOfPeople:     int(row.NumberOfPeople),
		TotalPrice:         int64(row.TotalPrice),
		PreferredAmenities: pgconv.StringSliceOrEmpty(row.PreferredAmenities),
		Status:             row.Status,
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

func formatTimeOfDay(pt pgtype.Time) *string {
	minutes := pgconv.MinutesFromPgTime(pt)
	if minutes == nil {
		return nil
	}
	t, err := booking.TimeOfDayFromMinutes(*minutes)
	if err != nil {
		return nil
	}
	s := t.String()
	return &s
}
