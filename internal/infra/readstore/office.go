package readstore

import (
	"context"

	"workspace-booking/internal/domain/office"
	"workspace-booking/internal/infra"
	"workspace-booking/internal/infra/pgq"
	"workspace-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OfficeReadQueries interface {
	ListOffices(ctx context.Context, db pgq.DBTX) ([]pgq.Offices, error)
	GetOfficeByID(ctx context.Context, db pgq.DBTX, id uuid.UUID) (pgq.Offices, error)
	CountOffices(ctx context.Context, db pgq.DBTX) (int64, error)
}

type OfficeReadStore struct {
	queries OfficeReadQueries
	db      pgq.DBTX
}

func NewOfficeReadStore(queries OfficeReadQueries, db pgq.DBTX) *OfficeReadStore {
	return &OfficeReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OfficeReadStore) List(ctx context.Context) ([]*office.Office, error) {
	rows, err := r.queries.ListOffices(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offices", err)
	}

	result := make([]*office.Office, len(rows))
	for i, row := range rows {
		result[i] = ToOfficeDomain(row)
	}
	return result, nil
}

func (r *OfficeReadStore) FindByID(ctx context.Context, id uuid.UUID) (*office.Office, error) {
	row, err := r.queries.GetOfficeByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("office not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find office by ID", err)
	}
	return ToOfficeDomain(row), nil
}

func (r *OfficeReadStore) Count(ctx context.Context) (int64, error) {
	n, err := r.queries.CountOffices(ctx, r.db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count offices", err)
	}
	return n, nil
}

func ToOfficeDomain(row pgq.Offices) *office.Office {
	return office.ReconstructOffice(office.Params{
		ID:                 row.ID,
		Name:               row.Name,
		Type:               office.Type(row.Type),
		Location:           row.Location,
		Address:            row.Address,
		Latitude:           row.Latitude,
		Longitude:          row.Longitude,
		BasePricePerHour:   int64(row.BasePricePerHour),
		Capacity:           int(row.Capacity),
		Amenities:          pgconv.StringSliceOrEmpty(row.Amenities),
		Description:        row.Description,
		AvailabilityStatus: office.AvailabilityStatus(row.AvailabilityStatus),
	}, pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt))
}
