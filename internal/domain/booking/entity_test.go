//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/domain/office"
	"workspace-booking/internal/pkg/clock"
	"workspace-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)

func newFactory() *booking.Factory {
	return booking.NewFactory(clock.NewMockClock(now), booking.NewDefaultPriceCalculator())
}

type factoryCase struct {
	name         string
	mutate       func(*builder.BookingBuilder)
	mutateOffice func(*builder.OfficeBuilder)
	errIs        error
}

func TestFactoryCreateBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		officeEntity := builder.NewOfficeBuilder().BuildReconstructed()
		params, err := builder.NewBookingBuilder().BuildParams()
		require.NoError(t, err)

		actual, err := newFactory().CreateBooking(officeEntity, params)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, officeEntity.ID(), actual.OfficeID())
		assert.Equal(t, int64(750), actual.TotalPrice())
		assert.Equal(t, booking.StatusConfirmed, actual.Status())
		assert.True(t, actual.IsConfirmed())
		assert.Equal(t, now, actual.CreatedAt())
		assert.Equal(t, "Asha Verma", actual.Contact().FullName())

		r, ok := actual.TimeRange()
		require.True(t, ok)
		assert.Equal(t, "09:00-10:30", r.String())
		_, ok = actual.PackageID()
		assert.False(t, ok)
	})

	t.Run("package booking", func(t *testing.T) {
		officeEntity := builder.NewOfficeBuilder().With(func(b *builder.OfficeBuilder) {
			b.BasePricePerHour = 400
		}).BuildReconstructed()
		params, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.DurationPackage = "half-day"
			b.StartTime, b.EndTime = "", ""
		}).BuildParams()
		require.NoError(t, err)

		actual, err := newFactory().CreateBooking(officeEntity, params)
		require.NoError(t, err)

		assert.Equal(t, int64(1400), actual.TotalPrice())
		id, ok := actual.PackageID()
		require.True(t, ok)
		assert.Equal(t, booking.PackageHalfDay, id)
	})

	t.Run("booking today is allowed", func(t *testing.T) {
		params, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.BookingDate = time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)
		}).BuildParams()
		require.NoError(t, err)

		actual, err := newFactory().CreateBooking(builder.NewOfficeBuilder().BuildReconstructed(), params)
		require.NoError(t, err)
		assert.Equal(t, "2030-06-01", actual.BookingDate().Format(time.DateOnly))
	})

	t.Run("amenities are copied", func(t *testing.T) {
		params, err := builder.NewBookingBuilder().BuildParams()
		require.NoError(t, err)

		actual, err := newFactory().CreateBooking(builder.NewOfficeBuilder().BuildReconstructed(), params)
		require.NoError(t, err)

		params.PreferredAmenities[0] = "changed"
		assert.Equal(t, []string{"Projector"}, actual.PreferredAmenities())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []factoryCase{
			{
				name:         "office unavailable",
				mutateOffice: func(b *builder.OfficeBuilder) { b.AvailabilityStatus = office.AvailabilityUnavailable },
				errIs:        booking.ErrOfficeUnavailable,
			},
			{
				name:   "zero people",
				mutate: func(b *builder.BookingBuilder) { b.NumberOfPeople = 0 },
				errIs:  booking.ErrInvalidPartySize,
			},
			{
				name:   "party larger than capacity",
				mutate: func(b *builder.BookingBuilder) { b.NumberOfPeople = 11 },
				errIs:  booking.ErrCapacityExceeded,
			},
			{
				name:   "party equal to capacity",
				mutate: func(b *builder.BookingBuilder) { b.NumberOfPeople = 10 },
			},
			{
				name:   "date in the past",
				mutate: func(b *builder.BookingBuilder) { b.BookingDate = time.Date(2030, 5, 31, 0, 0, 0, 0, time.UTC) },
				errIs:  booking.ErrBookingDateInPast,
			},
			{
				name:   "end before start",
				mutate: func(b *builder.BookingBuilder) { b.StartTime, b.EndTime = "14:00", "13:00" },
				errIs:  booking.ErrNotPriceable,
			},
			{
				name: "unknown package",
				mutate: func(b *builder.BookingBuilder) {
					b.DurationPackage = "weekend"
					b.StartTime, b.EndTime = "", ""
				},
				errIs: booking.ErrNotPriceable,
			},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				ob := builder.NewOfficeBuilder()
				if c.mutateOffice != nil {
					ob.With(c.mutateOffice)
				}
				bb := builder.NewBookingBuilder()
				if c.mutate != nil {
					bb.With(c.mutate)
				}
				params, err := bb.BuildParams()
				require.NoError(t, err)

				actual, err := newFactory().CreateBooking(ob.BuildReconstructed(), params)
				if c.errIs == nil {
					require.NoError(t, err)
					require.NotNil(t, actual)
					return
				}
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			})
		}
	})

	t.Run("missing duration", func(t *testing.T) {
		params, err := builder.NewBookingBuilder().BuildParams()
		require.NoError(t, err)
		params.Duration = nil

		_, err = newFactory().CreateBooking(builder.NewOfficeBuilder().BuildReconstructed(), params)
		require.ErrorIs(t, err, booking.ErrMissingDuration)
	})
}

func TestNewContact(t *testing.T) {
	tests := []struct {
		name    string
		full    string
		email   string
		phone   string
		company string
		errIs   error
	}{
		{name: "valid", full: "Asha Verma", email: "asha@example.com", phone: "+91 98765 43210", company: "Acme"},
		{name: "company is optional", full: "Asha", email: "a@b.io", phone: "9876543210"},
		{name: "empty name", full: "  ", email: "a@b.io", phone: "9876543210", errIs: booking.ErrEmptyFullName},
		{name: "name too long", full: strings.Repeat("a", booking.MaxNameLength+1), email: "a@b.io", phone: "9876543210", errIs: booking.ErrFieldTooLong},
		{name: "bad email", full: "Asha", email: "asha.example.com", phone: "9876543210", errIs: booking.ErrInvalidEmail},
		{name: "bad phone", full: "Asha", email: "a@b.io", phone: "call me", errIs: booking.ErrInvalidPhone},
		{name: "short phone", full: "Asha", email: "a@b.io", phone: "12345", errIs: booking.ErrInvalidPhone},
		{name: "company too long", full: "Asha", email: "a@b.io", phone: "9876543210", company: strings.Repeat("c", booking.MaxCompanyLength+1), errIs: booking.ErrFieldTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := booking.NewContact(tt.full, tt.email, tt.phone, tt.company)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(tt.full), c.FullName())
			assert.Equal(t, tt.email, c.Email())
		})
	}
}

func TestNewPurpose(t *testing.T) {
	p, err := booking.NewPurpose("  Team offsite  ")
	require.NoError(t, err)
	assert.Equal(t, "Team offsite", p.String())

	_, err = booking.NewPurpose(" ")
	assert.ErrorIs(t, err, booking.ErrEmptyPurpose)

	_, err = booking.NewPurpose(strings.Repeat("p", booking.MaxPurposeLength+1))
	assert.ErrorIs(t, err, booking.ErrFieldTooLong)
}

func TestStatus(t *testing.T) {
	assert.True(t, booking.StatusConfirmed.IsValid())
	assert.True(t, booking.StatusCanceled.IsValid())
	assert.False(t, booking.Status("pending").IsValid())
}
