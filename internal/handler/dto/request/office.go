package request

import (
	"strconv"
	"strings"

	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/domain/office"
)

// SearchOfficesQuery never rejects input: unknown types match nothing and a
// malformed min_capacity imposes no filter.
type SearchOfficesQuery struct {
	Type        string `form:"type"`
	Location    string `form:"location"`
	MinCapacity string `form:"min_capacity"`
}

func (q *SearchOfficesQuery) ToCriteria() office.SearchCriteria {
	minCapacity, err := strconv.Atoi(strings.TrimSpace(q.MinCapacity))
	if err != nil {
		minCapacity = 0
	}
	return office.SearchCriteria{
		Type:          office.Type(strings.TrimSpace(q.Type)),
		LocationQuery: q.Location,
		MinCapacity:   minCapacity,
	}
}

type QuoteQuery struct {
	Start   string `form:"start" binding:"omitempty,timeofday"`
	End     string `form:"end" binding:"omitempty,timeofday"`
	Package string `form:"package" binding:"omitempty,durationpkg"`
}

func (q *QuoteQuery) ToDuration() (booking.Duration, error) {
	return booking.NewDuration(q.Package, q.Start, q.End)
}

type CreateOfficeRequest struct {
	Name               string   `json:"name" binding:"required,max=255"`
	Type               string   `json:"type" binding:"required,officetype"`
	Location           string   `json:"location" binding:"required,max=255"`
	Address            string   `json:"address" binding:"required,max=500"`
	Latitude           float64  `json:"latitude" binding:"min=-90,max=90"`
	Longitude          float64  `json:"longitude" binding:"min=-180,max=180"`
	BasePricePerHour   int64    `json:"base_price_per_hour" binding:"required,gt=0"`
	Capacity           int      `json:"capacity" binding:"required,min=1"`
	Amenities          []string `json:"amenities" binding:"omitempty,max=30,dive,required,max=100"`
	Description        string   `json:"description" binding:"max=2000"`
	AvailabilityStatus string   `json:"availability_status" binding:"omitempty,oneof=available unavailable"`
}

func (r *CreateOfficeRequest) ToParams() office.Params {
	return office.Params{
		Name:               r.Name,
		Type:               office.Type(r.Type),
		Location:           r.Location,
		Address:            r.Address,
		Latitude:           r.Latitude,
		Longitude:          r.Longitude,
		BasePricePerHour:   r.BasePricePerHour,
		Capacity:           r.Capacity,
		Amenities:          r.Amenities,
		Description:        r.Description,
		AvailabilityStatus: office.AvailabilityStatus(r.AvailabilityStatus),
	}
}
