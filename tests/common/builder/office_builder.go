//go:build unit || e2e

package builder

import (
	"time"

	"workspace-booking/internal/domain/office"
	"workspace-booking/internal/handler/dto/request"
	"workspace-booking/internal/infra/pgq"
	"workspace-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OfficeBuilder struct {
	ID                 uuid.UUID
	Name               string
	Type               office.Type
	Location           string
	Address            string
	Latitude           float64
	Longitude          float64
	BasePricePerHour   int64
	Capacity           int
	Amenities          []string
	Description        string
	AvailabilityStatus office.AvailabilityStatus
	CreatedAt          time.Time
}

func NewOfficeBuilder() *OfficeBuilder {
	return &OfficeBuilder{
		ID:                 uuid.New(),
		Name:               "Executive Meeting Room - Connaught Place",
		Type:               office.TypeMeetingRoom,
		Location:           "Connaught Place, Delhi",
		Address:            "Block A, Connaught Place, New Delhi 110001",
		Latitude:           28.6315,
		Longitude:          77.2167,
		BasePricePerHour:   500,
		Capacity:           10,
		Amenities:          []string{office.AmenityWiFi, office.AmenityProjector},
		Description:        "Premium meeting room",
		AvailabilityStatus: office.AvailabilityAvailable,
		CreatedAt:          time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *OfficeBuilder) With(mutate func(*OfficeBuilder)) *OfficeBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *OfficeBuilder) BuildParams() office.Params {
	return office.Params{
		ID:                 b.ID,
		Name:               b.Name,
		Type:               b.Type,
		Location:           b.Location,
		Address:            b.Address,
		Latitude:           b.Latitude,
		Longitude:          b.Longitude,
		BasePricePerHour:   b.BasePricePerHour,
		Capacity:           b.Capacity,
		Amenities:          append([]string(nil), b.Amenities...),
		Description:        b.Description,
		AvailabilityStatus: b.AvailabilityStatus,
	}
}

func (b *OfficeBuilder) BuildDomain() (*office.Office, error) {
	return office.NewOffice(b.BuildParams())
}

// BuildReconstructed skips validation, for catalogs holding odd persisted rows.
func (b *OfficeBuilder) BuildReconstructed() *office.Office {
	return office.ReconstructOffice(b.BuildParams(), b.CreatedAt, b.CreatedAt)
}

func (b *OfficeBuilder) BuildInfra() pgq.Offices {
	ts := pgtype.Timestamptz{Time: b.CreatedAt, Valid: true}
	return pgq.Offices{
		ID:                 b.ID,
		Name:               b.Name,
		Type:               b.Type.String(),
		Location:           b.Location,
		Address:            b.Address,
		Latitude:           b.Latitude,
		Longitude:          b.Longitude,
		BasePricePerHour:   int32(b.BasePricePerHour), // #nosec G115 -- test data
		Capacity:           int32(b.Capacity),         // #nosec G115 -- test data
		Amenities:          append([]string(nil), b.Amenities...),
		Description:        b.Description,
		AvailabilityStatus: b.AvailabilityStatus.String(),
		CreatedAt:          ts,
		UpdatedAt:          ts,
	}
}

func (b *OfficeBuilder) BuildView() *queries.OfficeView {
	return &queries.OfficeView{
		ID:                 b.ID,
		Name:               b.Name,
		Type:               b.Type.String(),
		Location:           b.Location,
		Address:            b.Address,
		City:               office.CityOf(b.Location),
		Latitude:           b.Latitude,
		Longitude:          b.Longitude,
		BasePricePerHour:   b.BasePricePerHour,
		Capacity:           b.Capacity,
		Amenities:          append([]string(nil), b.Amenities...),
		Description:        b.Description,
		AvailabilityStatus: b.AvailabilityStatus.String(),
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.CreatedAt,
	}
}

func (b *OfficeBuilder) BuildCreateRequestDTO() request.CreateOfficeRequest {
	return request.CreateOfficeRequest{
		Name:               b.Name,
		Type:               b.Type.String(),
		Location:           b.Location,
		Address:            b.Address,
		Latitude:           b.Latitude,
		Longitude:          b.Longitude,
		BasePricePerHour:   b.BasePricePerHour,
		Capacity:           b.Capacity,
		Amenities:          append([]string(nil), b.Amenities...),
		Description:        b.Description,
		AvailabilityStatus: b.AvailabilityStatus.String(),
	}
}
