package pgq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const createBooking = `INSERT INTO bookings (
    id, office_id, full_name, email, phone, company_name, purpose, booking_date,
    start_time, end_time, duration_package, number_of_people, total_price,
    preferred_amenities, status, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
RETURNING id`

type CreateBookingParams struct {
	ID                 uuid.UUID
	OfficeID           uuid.UUID
	FullName           string
	Email              string
	Phone              string
	CompanyName        string
	Purpose            string
	BookingDate        pgtype.Date
	StartTime          pgtype.Time
	EndTime            pgtype.Time
	DurationPackage    pgtype.Text
	NumberOfPeople     int32
	TotalPrice         int32
	PreferredAmenities []string
	Status             string
	CreatedAt          pgtype.Timestamptz
}

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx, createBooking,
		arg.ID,
		arg.OfficeID,
		arg.FullName,
		arg.Email,
		arg.Phone,
		arg.CompanyName,
		arg.Purpose,
		arg.BookingDate,
		arg.StartTime,
		arg.EndTime,
		arg.DurationPackage,
		arg.NumberOfPeople,
		arg.TotalPrice,
		arg.PreferredAmenities,
		arg.Status,
		arg.CreatedAt,
	).Scan(&id)
	return id, err
}

const bookingViewColumns = `b.id, b.office_id, o.name, o.location, b.full_name, b.email, b.phone,
       b.company_name, b.purpose, b.booking_date, b.start_time, b.end_time,
       b.duration_package, b.number_of_people, b.total_price, b.preferred_amenities,
       b.status, b.created_at`

type BookingViewRow struct {
	ID                 uuid.UUID
	OfficeID           uuid.UUID
	OfficeName         string
	OfficeLocation     string
	FullName           string
	Email              string
	Phone              string
	CompanyName        string
	Purpose            string
	BookingDate        pgtype.Date
	StartTime          pgtype.Time
	EndTime            pgtype.Time
	DurationPackage    pgtype.Text
	NumberOfPeople     int32
	TotalPrice         int32
	PreferredAmenities []string
	Status             string
	CreatedAt          pgtype.Timestamptz
}

func scanBookingView(row pgx.Row) (BookingViewRow, error) {
	var b BookingViewRow
	err := row.Scan(
		&b.ID,
		&b.OfficeID,
		&b.OfficeName,
		&b.OfficeLocation,
		&b.FullName,
		&b.Email,
		&b.Phone,
		&b.CompanyName,
		&b.Purpose,
		&b.BookingDate,
		&b.StartTime,
		&b.EndTime,
		&b.DurationPackage,
		&b.NumberOfPeople,
		&b.TotalPrice,
		&b.PreferredAmenities,
		&b.Status,
		&b.CreatedAt,
	)
	return b, err
}

const getBookingByID = `SELECT ` + bookingViewColumns + `
FROM bookings b
JOIN offices o ON o.id = b.office_id
WHERE b.id = $1`

func (q *Queries) GetBookingByID(ctx context.Context, db DBTX, id uuid.UUID) (BookingViewRow, error) {
	return scanBookingView(db.QueryRow(ctx, getBookingByID, id))
}

const listBookings = `SELECT ` + bookingViewColumns + `
FROM bookings b
JOIN offices o ON o.id = b.office_id
ORDER BY b.created_at DESC, b.id DESC
LIMIT $1`

func (q *Queries) ListBookings(ctx context.Context, db DBTX, limit int32) ([]BookingViewRow, error) {
	rows, err := db.Query(ctx, listBookings, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []BookingViewRow
	for rows.Next() {
		b, err := scanBookingView(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}
