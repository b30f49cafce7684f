package booking

// PackageInfo describes a named duration package. Multiplier is in tenths.
type PackageInfo struct {
	ID               PackageID
	Name             string
	Hours            int
	MultiplierTenths int64
	Description      string
}

// Multiplier returns the price multiplier as a float for display.
func (p PackageInfo) Multiplier() float64 {
	return float64(p.MultiplierTenths) / 10
}

var packageTable = map[PackageID]PackageInfo{
	PackageOneHour:     {ID: PackageOneHour, Name: "1 Hour", Hours: 1, MultiplierTenths: 10, Description: "Quick meeting"},
	PackageHalfDay:     {ID: PackageHalfDay, Name: "Half Day", Hours: 4, MultiplierTenths: 35, Description: "4 hours (9 AM - 1 PM or 2 PM - 6 PM)"},
	PackageBusinessDay: {ID: PackageBusinessDay, Name: "10 AM - 7 PM", Hours: 9, MultiplierTenths: 70, Description: "Business hours (9 hours)"},
	PackageFullDay:     {ID: PackageFullDay, Name: "Full Day", Hours: 12, MultiplierTenths: 90, Description: "12 hours (8 AM - 8 PM)"},
	PackageCustom:      {ID: PackageCustom, Name: "Custom Duration", Hours: 0, MultiplierTenths: 10, Description: "Set your own start and end time"},
}

var packageOrder = []PackageID{PackageOneHour, PackageHalfDay, PackageBusinessDay, PackageFullDay, PackageCustom}

// Packages lists the duration packages in display order.
func Packages() []PackageInfo {
	out := make([]PackageInfo, 0, len(packageOrder))
	for _, id := range packageOrder {
		out = append(out, packageTable[id])
	}
	return out
}

func LookupPackage(id PackageID) (PackageInfo, bool) {
	info, ok := packageTable[id]
	return info, ok
}

type PriceCalculator interface {
	CalculatePrice(basePricePerHour int64, d Duration) int64
}

type DefaultPriceCalculator struct{}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{}
}

func (DefaultPriceCalculator) CalculatePrice(basePricePerHour int64, d Duration) int64 {
	return CalculatePrice(basePricePerHour, d)
}

// CalculatePrice never fails: degenerate input (non-positive rate, end not after
// start, unknown package, custom package without times, nil duration) yields 0,
// meaning "not yet priceable".
// Rounding is half-up on exact integer arithmetic.
func CalculatePrice(basePricePerHour int64, d Duration) int64 {
	if basePricePerHour <= 0 || d == nil {
		return 0
	}

	switch v := d.(type) {
	case TimeRange:
		minutes := int64(v.Minutes())
		if minutes <= 0 {
			return 0
		}
		return roundHalfUpDiv(basePricePerHour*minutes, 60)
	case Package:
		// custom is only priced through its time range
		if v.ID == PackageCustom {
			return 0
		}
		info, ok := packageTable[v.ID]
		if !ok {
			return 0
		}
		return roundHalfUpDiv(basePricePerHour*info.MultiplierTenths, 10)
	default:
		return 0
	}
}

// roundHalfUpDiv computes round(n/d) for n >= 0, d > 0 with ties going up.
func roundHalfUpDiv(n, d int64) int64 {
	return (2*n + d) / (2 * d)
}
