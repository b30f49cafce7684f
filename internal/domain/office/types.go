package office

type Type string

const (
	TypeMeetingRoom   Type = "meeting-room"
	TypeDayOffice     Type = "day-office"
	TypeDayCoworking  Type = "day-coworking"
	TypePrivateOffice Type = "private-office"
	TypeCustomOffice  Type = "custom-office"

	// TypeAll is the search sentinel meaning "no type filter".
	TypeAll Type = "all"
)

var allTypes = []Type{
	TypeMeetingRoom,
	TypeDayOffice,
	TypeDayCoworking,
	TypePrivateOffice,
	TypeCustomOffice,
}

func Types() []Type {
	out := make([]Type, len(allTypes))
	copy(out, allTypes)
	return out
}

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeMeetingRoom, TypeDayOffice, TypeDayCoworking, TypePrivateOffice, TypeCustomOffice:
		return true
	default:
		return false
	}
}

type AvailabilityStatus string

const (
	AvailabilityAvailable   AvailabilityStatus = "available"
	AvailabilityUnavailable AvailabilityStatus = "unavailable"
)

func (s AvailabilityStatus) String() string {
	return string(s)
}

func (s AvailabilityStatus) IsValid() bool {
	switch s {
	case AvailabilityAvailable, AvailabilityUnavailable:
		return true
	default:
		return false
	}
}

const (
	AmenityWiFi              = "High-Speed Wi-Fi"
	AmenityProjector         = "Projector"
	AmenityWhiteboard        = "Whiteboard"
	AmenityVideoConferencing = "Video Conferencing"
	AmenityPrinterScanner    = "Printer/Scanner"
	AmenityCoffeeTea         = "Coffee/Tea"
	AmenityAirConditioning   = "Air Conditioning"
	AmenityParking           = "Parking"
)

// KnownAmenities lists the amenities offered across the catalog.
func KnownAmenities() []string {
	return []string{
		AmenityWiFi,
		AmenityProjector,
		AmenityWhiteboard,
		AmenityVideoConferencing,
		AmenityPrinterScanner,
		AmenityCoffeeTea,
		AmenityAirConditioning,
		AmenityParking,
	}
}
