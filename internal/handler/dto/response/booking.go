package response

import (
	"time"

	"workspace-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID                 uuid.UUID `json:"id"`
	OfficeID           uuid.UUID `json:"officeId"`
	OfficeName         string    `json:"officeName"`
	OfficeLocation     string    `json:"officeLocation"`
	FullName           string    `json:"fullName"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	CompanyName        string    `json:"companyName,omitempty"`
	Purpose            string    `json:"purpose"`
	BookingDate        string    `json:"bookingDate"`
	StartTime          *string   `json:"startTime,omitempty"`
	EndTime            *string   `json:"endTime,omitempty"`
	DurationPackage    *string   `json:"durationPackage,omitempty"`
	NumberOfPeople     int       `json:"numberOfPeople"`
	TotalPrice         int64     `json:"totalPrice"`
	PreferredAmenities []string  `json:"preferredAmenities"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"createdAt"`
}

type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	amenities := v.PreferredAmenities
	if amenities == nil {
		amenities = []string{}
	}
	return &BookingResponse{
		ID:                 v.ID,
		OfficeID:           v.OfficeID,
		OfficeName:         v.OfficeName,
		OfficeLocation:     v.OfficeLocation,
		FullName:           v.FullName,
		Email:              v.Email,
		Phone:              v.Phone,
		CompanyName:        v.CompanyName,
		Purpose:            v.Purpose,
		BookingDate:        v.BookingDate.Format(time.DateOnly),
		StartTime:          v.StartTime,
		EndTime:            v.EndTime,
		DurationPackage:    v.DurationPackage,
		NumberOfPeople:     v.NumberOfPeople,
		TotalPrice:         v.TotalPrice,
		PreferredAmenities: amenities,
		Status:             v.Status,
		CreatedAt:          v.CreatedAt,
	}
}

func FromBookingViews(views []*queries.BookingView) *BookingListResponse {
	items := make([]*BookingResponse, len(views))
	for i, v := range views {
		items[i] = FromBookingView(v)
	}
	return &BookingListResponse{Bookings: items}
}
