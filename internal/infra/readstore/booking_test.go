//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"workspace-booking/internal/infra"
	"workspace-booking/internal/infra/pgq"
	"workspace-booking/internal/infra/readstore"
	"workspace-booking/tests/common/builder"
	readstoremock "workspace-booking/tests/mock/readstore"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingReadStore_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("time range booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		b := builder.NewBookingBuilder()
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		mockQueries.EXPECT().GetBookingByID(ctx, gomock.Any(), b.ID).Return(b.BuildViewRow(), nil)

		actual, err := readstore.NewBookingReadStore(mockQueries, &mockDBTX{}).FindByID(ctx, b.ID)
		require.NoError(t, err)

		if diff := cmp.Diff(b.BuildView(), actual); diff != "" {
			t.Errorf("booking view mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("package booking has no times", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.DurationPackage = "full-day"
			b.StartTime, b.EndTime = "", ""
		})
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		mockQueries.EXPECT().GetBookingByID(ctx, gomock.Any(), b.ID).Return(b.BuildViewRow(), nil)

		actual, err := readstore.NewBookingReadStore(mockQueries, &mockDBTX{}).FindByID(ctx, b.ID)
		require.NoError(t, err)

		assert.Nil(t, actual.StartTime)
		assert.Nil(t, actual.EndTime)
		require.NotNil(t, actual.DurationPackage)
		assert.Equal(t, "full-day", *actual.DurationPackage)
		assert.Equal(t, "2030-06-15", actual.BookingDate.Format(time.DateOnly))
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		b := builder.NewBookingBuilder()
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		mockQueries.EXPECT().GetBookingByID(ctx, gomock.Any(), b.ID).Return(pgq.BookingViewRow{}, pgx.ErrNoRows)

		actual, err := readstore.NewBookingReadStore(mockQueries, &mockDBTX{}).FindByID(ctx, b.ID)
		require.Error(t, err)
		assert.Nil(t, actual)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		b := builder.NewBookingBuilder()
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		mockQueries.EXPECT().GetBookingByID(ctx, gomock.Any(), b.ID).Return(pgq.BookingViewRow{}, errDBConnectionLost)

		_, err := readstore.NewBookingReadStore(mockQueries, &mockDBTX{}).FindByID(ctx, b.ID)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestBookingReadStore_List(t *testing.T) {
	ctx := context.Background()

	t.Run("passes the limit through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rows := []pgq.BookingViewRow{
			builder.NewBookingBuilder().BuildViewRow(),
			builder.NewBookingBuilder().BuildViewRow(),
		}
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		mockQueries.EXPECT().ListBookings(ctx, gomock.Any(), int32(2)).Return(rows, nil)

		actual, err := readstore.NewBookingReadStore(mockQueries, &mockDBTX{}).List(ctx, 2)
		require.NoError(t, err)
		require.Len(t, actual, 2)
		assert.Equal(t, rows[0].ID, actual[0].ID)
		assert.Equal(t, rows[1].ID, actual[1].ID)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		mockQueries.EXPECT().ListBookings(ctx, gomock.Any(), int32(50)).Return(nil, errDBConnectionLost)

		actual, err := readstore.NewBookingReadStore(mockQueries, &mockDBTX{}).List(ctx, 50)
		assert.Nil(t, actual)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
