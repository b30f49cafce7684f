package booking

import "strings"

type DurationKind string

const (
	KindTimeRange DurationKind = "time-range"
	KindPackage   DurationKind = "package"
)

// Duration is either a TimeRange or a Package. The set is closed.
type Duration interface {
	Kind() DurationKind
	String() string
	sealed()
}

type TimeRange struct {
	Start TimeOfDay
	End   TimeOfDay
}

func NewTimeRange(start, end TimeOfDay) TimeRange {
	return TimeRange{Start: start, End: end}
}

func (TimeRange) Kind() DurationKind { return KindTimeRange }
func (TimeRange) sealed()            {}

// Minutes is end minus start; zero or negative for wrapped or empty ranges.
func (r TimeRange) Minutes() int {
	return r.End.Minutes() - r.Start.Minutes()
}

// IsBillable reports whether end is strictly after start.
func (r TimeRange) IsBillable() bool {
	return r.Minutes() > 0
}

func (r TimeRange) String() string {
	return r.Start.String() + "-" + r.End.String()
}

type PackageID string

const (
	PackageOneHour     PackageID = "1-hour"
	PackageHalfDay     PackageID = "half-day"
	PackageBusinessDay PackageID = "10am-7pm"
	PackageFullDay     PackageID = "full-day"
	PackageCustom      PackageID = "custom"
)

type Package struct {
	ID PackageID
}

func (Package) Kind() DurationKind { return KindPackage }
func (Package) sealed()            {}

func (p Package) String() string { return string(p.ID) }

// IsKnown reports whether the package id appears in the package table.
func (p Package) IsKnown() bool {
	_, ok := packageTable[p.ID]
	return ok
}

// NewDuration resolves request fields into a Duration.
// A custom package with both times, or no package at all, becomes a TimeRange.
// Missing times leave the selection incomplete: it resolves to the custom
// package, which prices to zero. Unknown package ids are kept as-is and also
// price to zero. Only malformed times are an error.
func NewDuration(packageID, start, end string) (Duration, error) {
	id := PackageID(strings.TrimSpace(packageID))
	if id != "" && id != PackageCustom {
		return Package{ID: id}, nil
	}

	s, hasStart, err := parseOptionalTimeOfDay(start)
	if err != nil {
		return nil, err
	}
	e, hasEnd, err := parseOptionalTimeOfDay(end)
	if err != nil {
		return nil, err
	}
	if !hasStart || !hasEnd {
		return Package{ID: PackageCustom}, nil
	}
	return NewTimeRange(s, e), nil
}

func parseOptionalTimeOfDay(s string) (TimeOfDay, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return TimeOfDay{}, false, nil
	}
	t, err := ParseTimeOfDay(s)
	if err != nil {
		return TimeOfDay{}, false, err
	}
	return t, true, nil
}
