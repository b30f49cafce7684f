package response

import (
	"time"

	"workspace-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type OfficeResponse struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Type               string    `json:"type"`
	Location           string    `json:"location"`
	Address            string    `json:"address"`
	City               string    `json:"city"`
	Latitude           float64   `json:"latitude"`
	Longitude          float64   `json:"longitude"`
	BasePricePerHour   int64     `json:"basePricePerHour"`
	Capacity           int       `json:"capacity"`
	Amenities          []string  `json:"amenities"`
	Description        string    `json:"description"`
	AvailabilityStatus string    `json:"availabilityStatus"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

type OfficeListResponse struct {
	Offices []*OfficeResponse `json:"offices"`
	Total   int               `json:"total"`
}

type CitiesResponse struct {
	Cities []string `json:"cities"`
}

type QuoteResponse struct {
	OfficeID         uuid.UUID `json:"officeId"`
	BasePricePerHour int64     `json:"basePricePerHour"`
	DurationKind     string    `json:"durationKind"`
	Duration         string    `json:"duration"`
	TotalPrice       int64     `json:"totalPrice"`
	Priceable        bool      `json:"priceable"`
}

type DurationPackageResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Hours       int     `json:"hours"`
	Multiplier  float64 `json:"multiplier"`
	Description string  `json:"description"`
}

func FromOfficeView(v *queries.OfficeView) (*OfficeResponse, error) {
	res := &OfficeResponse{}
	if err := copier.CopyWithOption(res, v, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	if res.Amenities == nil {
		res.Amenities = []string{}
	}
	return res, nil
}

func FromOfficeViews(views []*queries.OfficeView) (*OfficeListResponse, error) {
	items := make([]*OfficeResponse, len(views))
	for i, v := range views {
		item, err := FromOfficeView(v)
		if err != nil {
			return nil, err
		}
		items[i] = item
	}
	return &OfficeListResponse{Offices: items, Total: len(items)}, nil
}

func FromQuoteView(v *queries.QuoteView) *QuoteResponse {
	return &QuoteResponse{
		OfficeID:         v.OfficeID,
		BasePricePerHour: v.BasePricePerHour,
		DurationKind:     v.DurationKind,
		Duration:         v.Duration,
		TotalPrice:       v.TotalPrice,
		Priceable:        v.Priceable,
	}
}

func FromDurationPackages(views []*queries.DurationPackageView) []*DurationPackageResponse {
	res := make([]*DurationPackageResponse, len(views))
	for i, v := range views {
		res[i] = &DurationPackageResponse{
			ID:          v.ID,
			Name:        v.Name,
			Hours:       v.Hours,
			Multiplier:  v.Multiplier,
			Description: v.Description,
		}
	}
	return res
}
