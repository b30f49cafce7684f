//go:build unit

package booking_test

import (
	"testing"

	"workspace-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timeRange(start, end string) booking.TimeRange {
	return booking.NewTimeRange(booking.MustParseTimeOfDay(start), booking.MustParseTimeOfDay(end))
}

func TestCalculatePrice(t *testing.T) {
	tests := []struct {
		name     string
		base     int64
		duration booking.Duration
		expected int64
	}{
		{
			name:     "ninety minutes",
			base:     500,
			duration: timeRange("09:00", "10:30"),
			expected: 750,
		},
		{
			name:     "whole hours",
			base:     450,
			duration: timeRange("14:00", "17:00"),
			expected: 1350,
		},
		{
			name:     "end before start",
			base:     450,
			duration: timeRange("14:00", "13:00"),
			expected: 0,
		},
		{
			name:     "end equals start",
			base:     450,
			duration: timeRange("09:00", "09:00"),
			expected: 0,
		},
		{
			name:     "rounds half up",
			base:     30,
			duration: timeRange("09:00", "09:01"),
			expected: 1,
		},
		{
			name:     "rounds up above half",
			base:     100,
			duration: timeRange("09:00", "09:01"),
			expected: 2,
		},
		{
			name:     "rounds down below half",
			base:     80,
			duration: timeRange("09:00", "09:01"),
			expected: 1,
		},
		{
			name:     "one hour package",
			base:     500,
			duration: booking.Package{ID: booking.PackageOneHour},
			expected: 500,
		},
		{
			name:     "half day package",
			base:     400,
			duration: booking.Package{ID: booking.PackageHalfDay},
			expected: 1400,
		},
		{
			name:     "business day package",
			base:     450,
			duration: booking.Package{ID: booking.PackageBusinessDay},
			expected: 3150,
		},
		{
			name:     "full day package",
			base:     160,
			duration: booking.Package{ID: booking.PackageFullDay},
			expected: 1440,
		},
		{
			name:     "half day package rounds half up",
			base:     101,
			duration: booking.Package{ID: booking.PackageHalfDay},
			expected: 354,
		},
		{
			name:     "custom package without times",
			base:     500,
			duration: booking.Package{ID: booking.PackageCustom},
			expected: 0,
		},
		{
			name:     "unknown package",
			base:     500,
			duration: booking.Package{ID: "two-weeks"},
			expected: 0,
		},
		{
			name:     "nil duration",
			base:     500,
			duration: nil,
			expected: 0,
		},
		{
			name:     "zero base price",
			base:     0,
			duration: booking.Package{ID: booking.PackageFullDay},
			expected: 0,
		},
		{
			name:     "negative base price",
			base:     -100,
			duration: timeRange("09:00", "10:00"),
			expected: 0,
		},
	}

	calc := booking.NewDefaultPriceCalculator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, booking.CalculatePrice(tt.base, tt.duration))
			assert.Equal(t, tt.expected, calc.CalculatePrice(tt.base, tt.duration))
		})
	}
}

func TestCalculatePriceMonotonic(t *testing.T) {
	t.Run("longer ranges never cost less", func(t *testing.T) {
		start := booking.MustParseTimeOfDay("08:00")
		prev := int64(0)
		for m := start.Minutes() + 1; m < 24*60; m += 7 {
			end, err := booking.TimeOfDayFromMinutes(m)
			require.NoError(t, err)
			price := booking.CalculatePrice(333, booking.NewTimeRange(start, end))
			assert.GreaterOrEqual(t, price, prev)
			prev = price
		}
	})

	t.Run("higher rates never cost less", func(t *testing.T) {
		for _, info := range booking.Packages() {
			prev := int64(0)
			for base := int64(1); base <= 1000; base += 37 {
				price := booking.CalculatePrice(base, booking.Package{ID: info.ID})
				assert.GreaterOrEqual(t, price, prev, info.ID)
				prev = price
			}
		}
	})
}

func TestPackages(t *testing.T) {
	pkgs := booking.Packages()
	require.Len(t, pkgs, 5)

	ids := make([]booking.PackageID, len(pkgs))
	for i, p := range pkgs {
		ids[i] = p.ID
	}
	assert.Equal(t, []booking.PackageID{
		booking.PackageOneHour,
		booking.PackageHalfDay,
		booking.PackageBusinessDay,
		booking.PackageFullDay,
		booking.PackageCustom,
	}, ids)

	info, ok := booking.LookupPackage(booking.PackageHalfDay)
	require.True(t, ok)
	assert.InDelta(t, 3.5, info.Multiplier(), 1e-9)
	assert.Equal(t, 4, info.Hours)

	_, ok = booking.LookupPackage("weekend")
	assert.False(t, ok)
}
