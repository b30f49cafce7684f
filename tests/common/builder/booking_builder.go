//go:build unit || e2e

package builder

import (
	"time"

	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/handler/dto/request"
	"workspace-booking/internal/infra/pgq"
	"workspace-booking/internal/pkg/pgconv"
	"workspace-booking/internal/usecase/commands"
	"workspace-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// BookingBuilder describes a booking request. Leave DurationPackage empty and
// set StartTime/EndTime for an explicit time range.
type BookingBuilder struct {
	ID                 uuid.UUID
	OfficeID           uuid.UUID
	OfficeName         string
	OfficeLocation     string
	FullName           string
	Email              string
	Phone              string
	CompanyName        string
	Purpose            string
	BookingDate        time.Time
	StartTime          string
	EndTime            string
	DurationPackage    string
	NumberOfPeople     int
	TotalPrice         int64
	PreferredAmenities []string
	Status             string
	CreatedAt          time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:                 uuid.New(),
		OfficeID:           uuid.New(),
		OfficeName:         "Executive Meeting Room - Connaught Place",
		OfficeLocation:     "Connaught Place, Delhi",
		FullName:           "Asha Verma",
		Email:              "asha@example.com",
		Phone:              "+91 98765 43210",
		CompanyName:        "Acme Pvt Ltd",
		Purpose:            "Quarterly planning",
		BookingDate:        time.Date(2030, 6, 15, 0, 0, 0, 0, time.UTC),
		StartTime:          "09:00",
		EndTime:            "10:30",
		NumberOfPeople:     4,
		TotalPrice:         750,
		PreferredAmenities: []string{"Projector"},
		Status:             booking.StatusConfirmed.String(),
		CreatedAt:          time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDuration() (booking.Duration, error) {
	return booking.NewDuration(b.DurationPackage, b.StartTime, b.EndTime)
}

func (b *BookingBuilder) BuildParams() (booking.Params, error) {
	contact, err := booking.NewContact(b.FullName, b.Email, b.Phone, b.CompanyName)
	if err != nil {
		return booking.Params{}, err
	}
	purpose, err := booking.NewPurpose(b.Purpose)
	if err != nil {
		return booking.Params{}, err
	}
	duration, err := b.BuildDuration()
	if err != nil {
		return booking.Params{}, err
	}
	return booking.Params{
		Contact:            contact,
		Purpose:            purpose,
		BookingDate:        b.BookingDate,
		Duration:           duration,
		NumberOfPeople:     b.NumberOfPeople,
		PreferredAmenities: append([]string(nil), b.PreferredAmenities...),
	}, nil
}

func (b *BookingBuilder) BuildInput() (commands.CreateBookingInput, error) {
	duration, err := b.BuildDuration()
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	return commands.CreateBookingInput{
		OfficeID:           b.OfficeID,
		FullName:           b.FullName,
		Email:              b.Email,
		Phone:              b.Phone,
		CompanyName:        b.CompanyName,
		Purpose:            b.Purpose,
		BookingDate:        b.BookingDate,
		Duration:           duration,
		NumberOfPeople:     b.NumberOfPeople,
		PreferredAmenities: append([]string(nil), b.PreferredAmenities...),
	}, nil
}

// BuildDomain reconstructs a persisted booking without running the factory.
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	params, err := b.BuildParams()
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(
		b.ID, b.OfficeID,
		params.Contact, params.Purpose,
		b.BookingDate, params.Duration,
		b.NumberOfPeople, b.TotalPrice,
		params.PreferredAmenities,
		booking.Status(b.Status),
		b.CreatedAt,
	), nil
}

func (b *BookingBuilder) BuildCreateRequestDTO() request.CreateBookingRequest {
	return request.CreateBookingRequest{
		OfficeID:           b.OfficeID,
		FullName:           b.FullName,
		Email:              b.Email,
		Phone:              b.Phone,
		CompanyName:        b.CompanyName,
		Purpose:            b.Purpose,
		BookingDate:        b.BookingDate.Format(time.DateOnly),
		StartTime:          b.StartTime,
		EndTime:            b.EndTime,
		DurationPackage:    b.DurationPackage,
		NumberOfPeople:     b.NumberOfPeople,
		PreferredAmenities: append([]string(nil), b.PreferredAmenities...),
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	view := &queries.BookingView{
		ID:                 b.ID,
		OfficeID:           b.OfficeID,
		OfficeName:         b.OfficeName,
		OfficeLocation:     b.OfficeLocation,
		FullName:           b.FullName,
		Email:              b.Email,
		Phone:              b.Phone,
		CompanyName:        b.CompanyName,
		Purpose:            b.Purpose,
		BookingDate:        b.BookingDate,
		NumberOfPeople:     b.NumberOfPeople,
		TotalPrice:         b.TotalPrice,
		PreferredAmenities: append([]string(nil), b.PreferredAmenities...),
		Status:             b.Status,
		CreatedAt:          b.CreatedAt,
	}
	if b.StartTime != "" {
		start, end := b.StartTime, b.EndTime
		view.StartTime = &start
		view.EndTime = &end
	}
	pkg := b.DurationPackage
	if pkg == "" {
		pkg = string(booking.PackageCustom)
	}
	view.DurationPackage = &pkg
	return view
}

func (b *BookingBuilder) BuildViewRow() pgq.BookingViewRow {
	row := pgq.BookingViewRow{
		ID:                 b.ID,
		OfficeID:           b.OfficeID,
		OfficeName:         b.OfficeName,
		OfficeLocation:     b.OfficeLocation,
		FullName:           b.FullName,
		Email:              b.Email,
		Phone:              b.Phone,
		CompanyName:        b.CompanyName,
		Purpose:            b.Purpose,
		BookingDate:        pgtype.Date{Time: b.BookingDate, Valid: true},
		NumberOfPeople:     int32(b.NumberOfPeople), // #nosec G115 -- test data
		TotalPrice:         int32(b.TotalPrice),     // #nosec G115 -- test data
		PreferredAmenities: append([]string(nil), b.PreferredAmenities...),
		Status:             b.Status,
		CreatedAt:          pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
	if b.StartTime != "" {
		start := booking.MustParseTimeOfDay(b.StartTime).Minutes()
		end := booking.MustParseTimeOfDay(b.EndTime).Minutes()
		row.StartTime = pgconv.MinutesToPgTime(&start)
		row.EndTime = pgconv.MinutesToPgTime(&end)
	}
	pkg := b.DurationPackage
	if pkg == "" {
		pkg = string(booking.PackageCustom)
	}
	row.DurationPackage = pgtype.Text{String: pkg, Valid: true}
	return row
}
