package converter

import (
	"fmt"
	"math"

	"workspace-booking/internal/domain/office"
	"workspace-booking/internal/infra/pgq"
	"workspace-booking/internal/pkg/pgconv"
)

func OfficeToInfra(o *office.Office) (pgq.CreateOfficeParams, error) {
	price := o.BasePricePerHour()
	if price > math.MaxInt32 {
		return pgq.CreateOfficeParams{}, fmt.Errorf("base price out of int32 range: %d", price)
	}

	return pgq.CreateOfficeParams{
		ID:                 o.ID(),
		Name:               o.Name(),
		Type:               o.Type().String(),
		Location:           o.Location(),
		Address:            o.Address(),
		Latitude:           o.Latitude(),
		Longitude:          o.Longitude(),
		BasePricePerHour:   int32(price),
		Capacity:           int32(o.Capacity()), // #nosec G115 -- validated by the domain
		Amenities:          pgconv.StringSliceOrEmpty(o.Amenities()),
		Description:        o.Description(),
		AvailabilityStatus: o.AvailabilityStatus().String(),
	}, nil
}
