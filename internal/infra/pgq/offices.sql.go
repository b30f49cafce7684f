package pgq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const officeColumns = `id, name, type, location, address, latitude, longitude,
       base_price_per_hour, capacity, amenities, description, availability_status,
       created_at, updated_at`

func scanOffice(row pgx.Row) (Offices, error) {
	var o Offices
	err := row.Scan(
		&o.ID,
		&o.Name,
		&o.Type,
		&o.Location,
		&o.Address,
		&o.Latitude,
		&o.Longitude,
		&o.BasePricePerHour,
		&o.Capacity,
		&o.Amenities,
		&o.Description,
		&o.AvailabilityStatus,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	return o, err
}

const listOffices = `SELECT ` + officeColumns + `
FROM offices
ORDER BY location, id`

func (q *Queries) ListOffices(ctx context.Context, db DBTX) ([]Offices, error) {
	rows, err := db.Query(ctx, listOffices)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Offices
	for rows.Next() {
		o, err := scanOffice(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, o)
	}
	return items, rows.Err()
}

const getOfficeByID = `SELECT ` + officeColumns + `
FROM offices
WHERE id = $1`

func (q *Queries) GetOfficeByID(ctx context.Context, db DBTX, id uuid.UUID) (Offices, error) {
	return scanOffice(db.QueryRow(ctx, getOfficeByID, id))
}

const countOffices = `SELECT count(*) FROM offices`

func (q *Queries) CountOffices(ctx context.Context, db DBTX) (int64, error) {
	var n int64
	err := db.QueryRow(ctx, countOffices).Scan(&n)
	return n, err
}

const createOffice = `INSERT INTO offices (
    id, name, type, location, address, latitude, longitude,
    base_price_per_hour, capacity, amenities, description, availability_status
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id`

type CreateOfficeParams struct {
	ID                 uuid.UUID
	Name               string
	Type               string
	Location           string
	Address            string
	Latitude           float64
	Longitude          float64
	BasePricePerHour   int32
	Capacity           int32
	Amenities          []string
	Description        string
	AvailabilityStatus string
}

func (q *Queries) CreateOffice(ctx context.Context, db DBTX, arg CreateOfficeParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx, createOffice,
		arg.ID,
		arg.Name,
		arg.Type,
		arg.Location,
		arg.Address,
		arg.Latitude,
		arg.Longitude,
		arg.BasePricePerHour,
		arg.Capacity,
		arg.Amenities,
		arg.Description,
		arg.AvailabilityStatus,
	).Scan(&id)
	return id, err
}
