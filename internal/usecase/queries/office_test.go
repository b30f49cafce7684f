//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/domain/office"
	"workspace-booking/internal/infra"
	"workspace-booking/internal/pkg/errs"
	"workspace-booking/internal/usecase/queries"
	"workspace-booking/tests/common/builder"
	queriesmock "workspace-booking/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func catalog() []*office.Office {
	return []*office.Office{
		builder.NewOfficeBuilder().BuildReconstructed(),
		builder.NewOfficeBuilder().With(func(b *builder.OfficeBuilder) {
			b.ID = uuid.New()
			b.Name = "Startup Hub - Koramangala"
			b.Type = office.TypeDayCoworking
			b.Location = "Koramangala, Bangalore"
			b.Address = "80 Feet Road, Koramangala"
			b.Capacity = 50
			b.BasePricePerHour = 160
		}).BuildReconstructed(),
		builder.NewOfficeBuilder().With(func(b *builder.OfficeBuilder) {
			b.ID = uuid.New()
			b.Name = "Conference Center - Nehru Place"
			b.Location = "Nehru Place, Delhi"
			b.Capacity = 8
		}).BuildReconstructed(),
	}
}

func newOfficeQueries(t *testing.T) (queries.OfficeQueries, *queriesmock.MockOfficeReadStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockOfficeReadStore(ctrl)
	return queries.NewOfficeQueries(store, booking.NewDefaultPriceCalculator()), store
}

func TestOfficeQueries_Search(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		criteria office.SearchCriteria
		expected []string
	}{
		{
			name:     "no criteria returns the whole catalog",
			expected: []string{"Executive Meeting Room - Connaught Place", "Startup Hub - Koramangala", "Conference Center - Nehru Place"},
		},
		{
			name:     "type filter",
			criteria: office.SearchCriteria{Type: office.TypeMeetingRoom},
			expected: []string{"Executive Meeting Room - Connaught Place", "Conference Center - Nehru Place"},
		},
		{
			name:     "location filter",
			criteria: office.SearchCriteria{LocationQuery: "BANGALORE"},
			expected: []string{"Startup Hub - Koramangala"},
		},
		{
			name:     "capacity filter",
			criteria: office.SearchCriteria{MinCapacity: 20},
			expected: []string{"Startup Hub - Koramangala"},
		},
		{
			name:     "no match",
			criteria: office.SearchCriteria{Type: "penthouse"},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, store := newOfficeQueries(t)
			store.EXPECT().List(ctx).Return(catalog(), nil)

			views, err := q.Search(ctx, tt.criteria)
			require.NoError(t, err)

			names := make([]string, len(views))
			for i, v := range views {
				names[i] = v.Name
			}
			assert.Equal(t, tt.expected, names)
		})
	}

	t.Run("store failure is marked", func(t *testing.T) {
		q, store := newOfficeQueries(t)
		store.EXPECT().List(ctx).Return(nil, errors.New("db down"))

		_, err := q.List(ctx)
		require.Error(t, err)
		assert.True(t, errs.Is(err, queries.ErrOfficeLoad))
	})
}

func TestOfficeQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	b := builder.NewOfficeBuilder()

	t.Run("found", func(t *testing.T) {
		q, store := newOfficeQueries(t)
		store.EXPECT().FindByID(ctx, b.ID).Return(b.BuildReconstructed(), nil)

		actual, err := q.GetByID(ctx, b.ID)
		require.NoError(t, err)
		if diff := cmp.Diff(b.BuildView(), actual); diff != "" {
			t.Errorf("office view mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("not found", func(t *testing.T) {
		q, store := newOfficeQueries(t)
		store.EXPECT().FindByID(ctx, b.ID).Return(nil, infra.WrapRepoErr("office not found", nil, infra.KindNotFound))

		_, err := q.GetByID(ctx, b.ID)
		assert.True(t, errs.Is(err, queries.ErrOfficeNotFound))
	})

	t.Run("store failure", func(t *testing.T) {
		q, store := newOfficeQueries(t)
		store.EXPECT().FindByID(ctx, b.ID).Return(nil, errors.New("db down"))

		_, err := q.GetByID(ctx, b.ID)
		assert.True(t, errs.Is(err, queries.ErrOfficeLoad))
		assert.False(t, errs.Is(err, queries.ErrOfficeNotFound))
	})
}

func TestOfficeQueries_Cities(t *testing.T) {
	ctx := context.Background()
	q, store := newOfficeQueries(t)

	offices := append(catalog(), builder.NewOfficeBuilder().With(func(b *builder.OfficeBuilder) {
		b.ID = uuid.New()
		b.Location = "Andheri East, Mumbai"
	}).BuildReconstructed())
	store.EXPECT().List(ctx).Return(offices, nil)

	cities, err := q.Cities(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bangalore", "Delhi", "Mumbai"}, cities)
}

func TestOfficeQueries_Quote(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		base      int64
		duration  booking.Duration
		total     int64
		priceable bool
	}{
		{
			name:      "time range",
			base:      500,
			duration:  booking.NewTimeRange(booking.MustParseTimeOfDay("09:00"), booking.MustParseTimeOfDay("10:30")),
			total:     750,
			priceable: true,
		},
		{
			name:      "package",
			base:      400,
			duration:  booking.Package{ID: booking.PackageHalfDay},
			total:     1400,
			priceable: true,
		},
		{
			name:     "wrapped range",
			base:     450,
			duration: booking.NewTimeRange(booking.MustParseTimeOfDay("14:00"), booking.MustParseTimeOfDay("13:00")),
			total:    0,
		},
		{
			name:     "unknown package",
			base:     450,
			duration: booking.Package{ID: "weekend"},
			total:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, store := newOfficeQueries(t)
			o := builder.NewOfficeBuilder().With(func(b *builder.OfficeBuilder) {
				b.BasePricePerHour = tt.base
			}).BuildReconstructed()
			store.EXPECT().FindByID(ctx, o.ID()).Return(o, nil)

			actual, err := q.Quote(ctx, o.ID(), tt.duration)
			require.NoError(t, err)
			assert.Equal(t, tt.total, actual.TotalPrice)
			assert.Equal(t, tt.priceable, actual.Priceable)
			assert.Equal(t, tt.base, actual.BasePricePerHour)
			assert.Equal(t, string(tt.duration.Kind()), actual.DurationKind)
		})
	}

	t.Run("office not found", func(t *testing.T) {
		q, store := newOfficeQueries(t)
		id := uuid.New()
		store.EXPECT().FindByID(ctx, id).Return(nil, infra.WrapRepoErr("office not found", nil, infra.KindNotFound))

		_, err := q.Quote(ctx, id, booking.Package{ID: booking.PackageOneHour})
		assert.True(t, errs.Is(err, queries.ErrOfficeNotFound))
	})
}

func TestOfficeQueries_DurationPackages(t *testing.T) {
	q, _ := newOfficeQueries(t)

	pkgs := q.DurationPackages(context.Background())
	require.Len(t, pkgs, 5)
	assert.Equal(t, "1-hour", pkgs[0].ID)
	assert.InDelta(t, 9.0, pkgs[3].Multiplier, 1e-9)
	assert.Equal(t, "custom", pkgs[4].ID)
}
