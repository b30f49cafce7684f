//go:build unit

package request_test

import (
	"testing"
	"time"

	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/domain/office"
	"workspace-booking/internal/handler/dto/request"
	"workspace-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingRequest_ToInput(t *testing.T) {
	t.Run("time range request", func(t *testing.T) {
		req := builder.NewBookingBuilder().BuildCreateRequestDTO()

		in, err := req.ToInput()
		require.NoError(t, err)
		assert.Equal(t, req.OfficeID, in.OfficeID)
		assert.Equal(t, time.Date(2030, 6, 15, 0, 0, 0, 0, time.UTC), in.BookingDate)
		assert.Equal(t, booking.NewTimeRange(booking.MustParseTimeOfDay("09:00"), booking.MustParseTimeOfDay("10:30")), in.Duration)
		assert.Equal(t, 4, in.NumberOfPeople)
	})

	t.Run("client total price does not reach the input", func(t *testing.T) {
		price := 1.0
		req := builder.NewBookingBuilder().BuildCreateRequestDTO()
		req.TotalPrice = &price

		in, err := req.ToInput()
		require.NoError(t, err)

		want, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.OfficeID = req.OfficeID
		}).BuildInput()
		require.NoError(t, err)
		assert.Equal(t, want, in)
	})

	t.Run("package with times keeps the package", func(t *testing.T) {
		req := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.DurationPackage = string(booking.PackageHalfDay)
		}).BuildCreateRequestDTO()

		in, err := req.ToInput()
		require.NoError(t, err)
		assert.Equal(t, booking.Package{ID: booking.PackageHalfDay}, in.Duration)
	})

	t.Run("custom package with times becomes a time range", func(t *testing.T) {
		req := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.DurationPackage = string(booking.PackageCustom)
		}).BuildCreateRequestDTO()

		in, err := req.ToInput()
		require.NoError(t, err)
		assert.Equal(t, booking.KindTimeRange, in.Duration.Kind())
	})

	t.Run("bad date", func(t *testing.T) {
		req := builder.NewBookingBuilder().BuildCreateRequestDTO()
		req.BookingDate = "2030-13-01"

		_, err := req.ToInput()
		assert.Error(t, err)
	})

	t.Run("no duration is an incomplete custom selection", func(t *testing.T) {
		req := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.StartTime = ""
			b.EndTime = ""
		}).BuildCreateRequestDTO()

		in, err := req.ToInput()
		require.NoError(t, err)
		assert.Equal(t, booking.Package{ID: booking.PackageCustom}, in.Duration)
	})
}

func TestSearchOfficesQuery_ToCriteria(t *testing.T) {
	tests := []struct {
		name string
		q    request.SearchOfficesQuery
		want office.SearchCriteria
	}{
		{
			name: "all fields",
			q:    request.SearchOfficesQuery{Type: "meeting-room", Location: "Delhi", MinCapacity: "5"},
			want: office.SearchCriteria{Type: office.TypeMeetingRoom, LocationQuery: "Delhi", MinCapacity: 5},
		},
		{
			name: "type is trimmed, location is left for the filter",
			q:    request.SearchOfficesQuery{Type: " day-office ", Location: "  mumbai "},
			want: office.SearchCriteria{Type: office.TypeDayOffice, LocationQuery: "  mumbai "},
		},
		{
			name: "non-numeric capacity disables the filter",
			q:    request.SearchOfficesQuery{MinCapacity: "many"},
			want: office.SearchCriteria{},
		},
		{
			name: "negative capacity is passed through",
			q:    request.SearchOfficesQuery{MinCapacity: "-3"},
			want: office.SearchCriteria{MinCapacity: -3},
		},
		{
			name: "unknown type is passed through",
			q:    request.SearchOfficesQuery{Type: "castle"},
			want: office.SearchCriteria{Type: office.Type("castle")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.q.ToCriteria())
		})
	}
}

func TestQuoteQuery_ToDuration(t *testing.T) {
	d, err := (&request.QuoteQuery{Package: "1-hour"}).ToDuration()
	require.NoError(t, err)
	assert.Equal(t, booking.Package{ID: booking.PackageOneHour}, d)

	d, err = (&request.QuoteQuery{Start: "14:00", End: "18:00"}).ToDuration()
	require.NoError(t, err)
	assert.Equal(t, booking.KindTimeRange, d.Kind())

	d, err = (&request.QuoteQuery{}).ToDuration()
	require.NoError(t, err)
	assert.Equal(t, booking.Package{ID: booking.PackageCustom}, d)

	d, err = (&request.QuoteQuery{Start: "09:00"}).ToDuration()
	require.NoError(t, err)
	assert.Zero(t, booking.CalculatePrice(500, d))

	_, err = (&request.QuoteQuery{Start: "9am"}).ToDuration()
	assert.ErrorIs(t, err, booking.ErrInvalidTimeOfDay)
}

func TestCreateOfficeRequest_ToParams(t *testing.T) {
	b := builder.NewOfficeBuilder()
	req := b.BuildCreateRequestDTO()

	// ids are assigned by the domain, never by the request
	want := b.With(func(b *builder.OfficeBuilder) { b.ID = uuid.Nil }).BuildParams()
	assert.Equal(t, want, req.ToParams())
}
