package queries

import (
	"time"

	"github.com/google/uuid"
)

// OfficeView is the read model for a catalog entry.
type OfficeView struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Type               string    `json:"type"`
	Location           string    `json:"location"`
	Address            string    `json:"address"`
	City               string    `json:"city"`
	Latitude           float64   `json:"latitude"`
	Longitude          float64   `json:"longitude"`
	BasePricePerHour   int64     `json:"base_price_per_hour"`
	Capacity           int       `json:"capacity"`
	Amenities          []string  `json:"amenities"`
	Description        string    `json:"description"`
	AvailabilityStatus string    `json:"availability_status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// BookingView joins a booking with the office it was made for.
type BookingView struct {
	ID                 uuid.UUID `json:"id"`
	OfficeID           uuid.UUID `json:"office_id"`
	OfficeName         string    `json:"office_name"`
	OfficeLocation     string    `json:"office_location"`
	FullName           string    `json:"full_name"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	CompanyName        string    `json:"company_name"`
	Purpose            string    `json:"purpose"`
	BookingDate        time.Time `json:"booking_date"`
	StartTime          *string   `json:"start_time,omitempty"`
	EndTime            *string   `json:"end_time,omitempty"`
	DurationPackage    *string   `json:"duration_package,omitempty"`
	NumberOfPeople     int       `json:"number_of_people"`
	TotalPrice         int64     `json:"total_price"`
	PreferredAmenities []string  `json:"preferred_amenities"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
}

type QuoteView struct {
	OfficeID         uuid.UUID `json:"office_id"`
	BasePricePerHour int64     `json:"base_price_per_hour"`
	DurationKind     string    `json:"duration_kind"`
	Duration         string    `json:"duration"`
	TotalPrice       int64     `json:"total_price"`
	Priceable        bool      `json:"priceable"`
}

type DurationPackageView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Hours       int     `json:"hours"`
	Multiplier  float64 `json:"multiplier"`
	Description string  `json:"description"`
}

type NotificationJobView struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Topic     string    `json:"topic"`
	Payload   []byte    `json:"payload"`
	RunAt     time.Time `json:"run_at"`
	Attempts  int32     `json:"attempts"`
	Status    string    `json:"status"`
	LastError *string   `json:"last_error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
