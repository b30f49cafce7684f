package booking

import (
	"slices"
	"time"

	"workspace-booking/internal/domain/office"
	"workspace-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

type Booking struct {
	id                 uuid.UUID
	officeID           uuid.UUID
	contact            Contact
	purpose            Purpose
	bookingDate        time.Time
	duration           Duration
	numberOfPeople     int
	totalPrice         int64
	preferredAmenities []string
	status             Status
	createdAt          time.Time
}

// Params carries the already-parsed request values for a new booking.
type Params struct {
	Contact            Contact
	Purpose            Purpose
	BookingDate        time.Time
	Duration           Duration
	NumberOfPeople     int
	PreferredAmenities []string
}

type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

func NewFactory(clock clock.Clock, priceCalculator PriceCalculator) *Factory {
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
	}
}

// CreateBooking validates p against the office and prices it on the server.
func (f *Factory) CreateBooking(officeEntity *office.Office, p Params) (*Booking, error) {
	if !officeEntity.IsAvailable() {
		return nil, ErrOfficeUnavailable
	}
	if p.Duration == nil {
		return nil, ErrMissingDuration
	}
	if p.NumberOfPeople < 1 {
		return nil, ErrInvalidPartySize
	}
	if p.NumberOfPeople > officeEntity.Capacity() {
		return nil, ErrCapacityExceeded
	}

	today := clock.Today(f.Clock)
	date := dateIn(p.BookingDate, today.Location())
	if date.Before(today) {
		return nil, ErrBookingDateInPast
	}

	total := f.PriceCalculator.CalculatePrice(officeEntity.BasePricePerHour(), p.Duration)
	if total <= 0 {
		return nil, ErrNotPriceable
	}

	return &Booking{
		id:                 uuid.New(),
		officeID:           officeEntity.ID(),
		contact:            p.Contact,
		purpose:            p.Purpose,
		bookingDate:        date,
		duration:           p.Duration,
		numberOfPeople:     p.NumberOfPeople,
		totalPrice:         total,
		preferredAmenities: slices.Clone(p.PreferredAmenities),
		status:             StatusConfirmed,
		createdAt:          f.Clock.Now(),
	}, nil
}

func ReconstructBooking(
	id, officeID uuid.UUID,
	contact Contact,
	purpose Purpose,
	bookingDate time.Time,
	duration Duration,
	numberOfPeople int,
	totalPrice int64,
	preferredAmenities []string,
	status Status,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:                 id,
		officeID:           officeID,
		contact:            contact,
		purpose:            purpose,
		bookingDate:        bookingDate,
		duration:           duration,
		numberOfPeople:     numberOfPeople,
		totalPrice:         totalPrice,
		preferredAmenities: slices.Clone(preferredAmenities),
		status:             status,
		createdAt:          createdAt,
	}
}

// ReconstructContact skips validation for persisted rows.
func ReconstructContact(fullName, email, phone, companyName string) Contact {
	return Contact{fullName: fullName, email: email, phone: phone, companyName: companyName}
}

func ReconstructPurpose(s string) Purpose {
	return Purpose{value: s}
}

// dateIn keeps the calendar date of t and moves it to midnight in loc.
func dateIn(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func (b *Booking) IsConfirmed() bool {
	return b.status == StatusConfirmed
}

// TimeRange returns the explicit start and end, if the booking was made that way.
func (b *Booking) TimeRange() (TimeRange, bool) {
	r, ok := b.duration.(TimeRange)
	return r, ok
}

// PackageID returns the duration package, if the booking was made with one.
func (b *Booking) PackageID() (PackageID, bool) {
	p, ok := b.duration.(Package)
	return p.ID, ok
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) OfficeID() uuid.UUID          { return b.officeID }
func (b *Booking) Contact() Contact             { return b.contact }
func (b *Booking) Purpose() Purpose             { return b.purpose }
func (b *Booking) BookingDate() time.Time       { return b.bookingDate }
func (b *Booking) Duration() Duration           { return b.duration }
func (b *Booking) NumberOfPeople() int          { return b.numberOfPeople }
func (b *Booking) TotalPrice() int64            { return b.totalPrice }
func (b *Booking) PreferredAmenities() []string { return slices.Clone(b.preferredAmenities) }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
