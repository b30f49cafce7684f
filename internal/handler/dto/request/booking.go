package request

import (
	"time"

	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	OfficeID           uuid.UUID `json:"office_id" binding:"required"`
	FullName           string    `json:"full_name" binding:"required,max=255"`
	Email              string    `json:"email" binding:"required,email,max=255"`
	Phone              string    `json:"phone" binding:"required,max=32"`
	CompanyName        string    `json:"company_name" binding:"max=255"`
	Purpose            string    `json:"purpose" binding:"required,max=2000"`
	BookingDate        string    `json:"booking_date" binding:"required,datetime=2006-01-02"`
	StartTime          string    `json:"start_time" binding:"omitempty,timeofday"`
	EndTime            string    `json:"end_time" binding:"omitempty,timeofday"`
	DurationPackage    string    `json:"duration_package" binding:"omitempty,durationpkg"`
	NumberOfPeople     int       `json:"number_of_people" binding:"required,min=1"`
	PreferredAmenities []string  `json:"preferred_amenities" binding:"omitempty,max=30,dive,max=100"`
	// Accepted for client compatibility and ignored; the server prices the booking.
	TotalPrice *float64 `json:"total_price,omitempty"`
}

func (r *CreateBookingRequest) ToInput() (commands.CreateBookingInput, error) {
	date, err := time.Parse(time.DateOnly, r.BookingDate)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}

	duration, err := booking.NewDuration(r.DurationPackage, r.StartTime, r.EndTime)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}

	return commands.CreateBookingInput{
		OfficeID:           r.OfficeID,
		FullName:           r.FullName,
		Email:              r.Email,
		Phone:              r.Phone,
		CompanyName:        r.CompanyName,
		Purpose:            r.Purpose,
		BookingDate:        date,
		Duration:           duration,
		NumberOfPeople:     r.NumberOfPeople,
		PreferredAmenities: r.PreferredAmenities,
	}, nil
}
