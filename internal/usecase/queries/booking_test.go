//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"workspace-booking/internal/infra"
	"workspace-booking/internal/pkg/errs"
	"workspace-booking/internal/usecase/queries"
	"workspace-booking/tests/common/builder"
	queriesmock "workspace-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	view := builder.NewBookingBuilder().BuildView()

	tests := []struct {
		name     string
		storeErr error
		errIs    error
	}{
		{name: "found"},
		{name: "not found", storeErr: infra.WrapRepoErr("booking not found", nil, infra.KindNotFound), errIs: queries.ErrBookingNotFound},
		{name: "store failure", storeErr: errors.New("db down"), errIs: queries.ErrBookingLoad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockBookingReadStore(ctrl)
			if tt.storeErr != nil {
				store.EXPECT().FindByID(ctx, view.ID).Return(nil, tt.storeErr)
			} else {
				store.EXPECT().FindByID(ctx, view.ID).Return(view, nil)
			}

			actual, err := queries.NewBookingQueries(store).GetByID(ctx, view.ID)
			if tt.errIs != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tt.errIs))
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view, actual)
		})
	}
}

func TestBookingQueries_List(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		limit         int
		expectedLimit int32
	}{
		{name: "default for zero", limit: 0, expectedLimit: queries.DefaultBookingListLimit},
		{name: "default for negative", limit: -5, expectedLimit: queries.DefaultBookingListLimit},
		{name: "passes through", limit: 10, expectedLimit: 10},
		{name: "capped", limit: 1000, expectedLimit: queries.MaxBookingListLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockBookingReadStore(ctrl)
			rows := []*queries.BookingView{{ID: uuid.New()}}
			store.EXPECT().List(ctx, tt.expectedLimit).Return(rows, nil)

			actual, err := queries.NewBookingQueries(store).List(ctx, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, rows, actual)
		})
	}

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().List(ctx, gomock.Any()).Return(nil, errors.New("db down"))

		_, err := queries.NewBookingQueries(store).List(ctx, 10)
		assert.True(t, errs.Is(err, queries.ErrBookingLoad))
	})
}
