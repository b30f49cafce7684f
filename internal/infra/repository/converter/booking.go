package converter

import (
	"fmt"
	"math"

	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/infra/pgq"
	"workspace-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// BookingToInfra stores a time range as start/end columns and a package as
// duration_package; the unused side stays NULL.
func BookingToInfra(b *booking.Booking) (pgq.CreateBookingParams, error) {
	total := b.TotalPrice()
	if total > math.MaxInt32 || total < 0 {
		return pgq.CreateBookingParams{}, fmt.Errorf("total price out of int32 range: %d", total)
	}

	contact := b.Contact()
	params := pgq.CreateBookingParams{
		ID:                 b.ID(),
		OfficeID:           b.OfficeID(),
		FullName:           contact.FullName(),
		Email:              contact.Email(),
		Phone:              contact.Phone(),
		CompanyName:        contact.CompanyName(),
		Purpose:            b.Purpose().String(),
		BookingDate:        pgconv.DateToPgtype(b.BookingDate()),
		NumberOfPeople:     int32(b.NumberOfPeople()), // #nosec G115 -- bounded by office capacity
		TotalPrice:         int32(total),
		PreferredAmenities: pgconv.StringSliceOrEmpty(b.PreferredAmenities()),
		Status:             b.Status().String(),
		CreatedAt:          pgconv.TimeToPgtype(b.CreatedAt()),
	}

	switch d := b.Duration().(type) {
	case booking.TimeRange:
		start, end := d.Start.Minutes(), d.End.Minutes()
		params.StartTime = pgconv.MinutesToPgTime(&start)
		params.EndTime = pgconv.MinutesToPgTime(&end)
		params.DurationPackage = pgtype.Text{String: string(booking.PackageCustom), Valid: true}
	case booking.Package:
		params.DurationPackage = pgtype.Text{String: string(d.ID), Valid: true}
	}

	return params, nil
}
