package office

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName          = errors.New("office name cannot be empty")
	ErrNameTooLong        = errors.New("office name is too long (max 255 characters)")
	ErrInvalidType        = errors.New("invalid office type")
	ErrEmptyLocation      = errors.New("office location cannot be empty")
	ErrEmptyAddress       = errors.New("office address cannot be empty")
	ErrNonPositivePrice   = errors.New("base price per hour must be positive")
	ErrPriceTooHigh       = errors.New("base price per hour exceeds the maximum")
	ErrInvalidCapacity    = errors.New("capacity must be at least 1")
	ErrInvalidCoordinates = errors.New("coordinates out of range")
	ErrInvalidStatus      = errors.New("invalid availability status")
)

const (
	MaxNameLength       = 255
	MaxBasePricePerHour = 1_000_000
)

// Office is read-only reference data; all fields are exposed through getters.
type Office struct {
	id                 uuid.UUID
	name               string
	officeType         Type
	location           string
	address            string
	latitude           float64
	longitude          float64
	basePricePerHour   int64
	capacity           int
	amenities          []string
	description        string
	availabilityStatus AvailabilityStatus
	createdAt          time.Time
	updatedAt          time.Time
}

type Params struct {
	ID                 uuid.UUID
	Name               string
	Type               Type
	Location           string
	Address            string
	Latitude           float64
	Longitude          float64
	BasePricePerHour   int64
	Capacity           int
	Amenities          []string
	Description        string
	AvailabilityStatus AvailabilityStatus
}

func NewOffice(p Params) (*Office, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	if !p.Type.IsValid() {
		return nil, ErrInvalidType
	}
	location := strings.TrimSpace(p.Location)
	if location == "" {
		return nil, ErrEmptyLocation
	}
	address := strings.TrimSpace(p.Address)
	if address == "" {
		return nil, ErrEmptyAddress
	}
	if p.BasePricePerHour <= 0 {
		return nil, ErrNonPositivePrice
	}
	if p.BasePricePerHour > MaxBasePricePerHour {
		return nil, ErrPriceTooHigh
	}
	if p.Capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if p.Latitude < -90 || p.Latitude > 90 || p.Longitude < -180 || p.Longitude > 180 {
		return nil, ErrInvalidCoordinates
	}

	status := p.AvailabilityStatus
	if status == "" {
		status = AvailabilityAvailable
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Office{
		id:                 id,
		name:               name,
		officeType:         p.Type,
		location:           location,
		address:            address,
		latitude:           p.Latitude,
		longitude:          p.Longitude,
		basePricePerHour:   p.BasePricePerHour,
		capacity:           p.Capacity,
		amenities:          normalizeAmenities(p.Amenities),
		description:        strings.TrimSpace(p.Description),
		availabilityStatus: status,
	}, nil
}

// ReconstructOffice rebuilds an office from persisted state without validation.
func ReconstructOffice(p Params, createdAt, updatedAt time.Time) *Office {
	return &Office{
		id:                 p.ID,
		name:               p.Name,
		officeType:         p.Type,
		location:           p.Location,
		address:            p.Address,
		latitude:           p.Latitude,
		longitude:          p.Longitude,
		basePricePerHour:   p.BasePricePerHour,
		capacity:           p.Capacity,
		amenities:          slices.Clone(p.Amenities),
		description:        p.Description,
		availabilityStatus: p.AvailabilityStatus,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

func normalizeAmenities(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, a := range in {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		if _, dup := seen[a]; dup {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}

// City is the last comma-separated segment of the "area, city" location.
func (o *Office) City() string {
	return CityOf(o.location)
}

func CityOf(location string) string {
	parts := strings.Split(location, ",")
	return strings.TrimSpace(parts[len(parts)-1])
}

func (o *Office) IsAvailable() bool {
	return o.availabilityStatus == AvailabilityAvailable
}

func (o *Office) ID() uuid.UUID                          { return o.id }
func (o *Office) Name() string                           { return o.name }
func (o *Office) Type() Type                             { return o.officeType }
func (o *Office) Location() string                       { return o.location }
func (o *Office) Address() string                        { return o.address }
func (o *Office) Latitude() float64                      { return o.latitude }
func (o *Office) Longitude() float64                     { return o.longitude }
func (o *Office) BasePricePerHour() int64                { return o.basePricePerHour }
func (o *Office) Capacity() int                          { return o.capacity }
func (o *Office) Amenities() []string                    { return slices.Clone(o.amenities) }
func (o *Office) Description() string                    { return o.description }
func (o *Office) AvailabilityStatus() AvailabilityStatus { return o.availabilityStatus }
func (o *Office) CreatedAt() time.Time                   { return o.createdAt }
func (o *Office) UpdatedAt() time.Time                   { return o.updatedAt }
