//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"workspace-booking/internal/infra"
	"workspace-booking/internal/infra/pgq"
	"workspace-booking/internal/infra/readstore"
	readstoremock "workspace-booking/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationReadStore_ListByTopic(t *testing.T) {
	ctx := context.Background()
	ts := pgtype.Timestamptz{Time: time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC), Valid: true}

	t.Run("maps rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rows := []pgq.NotificationJobs{
			{ID: uuid.New(), Kind: "email", Topic: "booking_created", Payload: []byte(`{}`), RunAt: ts, Status: "queued", CreatedAt: ts, UpdatedAt: ts},
			{ID: uuid.New(), Kind: "email", Topic: "booking_created", Payload: []byte(`{}`), RunAt: ts, Attempts: 3, Status: "failed", LastError: pgtype.Text{String: "smtp timeout", Valid: true}, CreatedAt: ts, UpdatedAt: ts},
		}
		mockQueries := readstoremock.NewMockNotificationReadQueries(ctrl)
		mockQueries.EXPECT().ListNotificationJobsByTopic(ctx, gomock.Any(), "booking_created").Return(rows, nil)

		actual, err := readstore.NewNotificationReadStore(mockQueries, &mockDBTX{}).ListByTopic(ctx, "booking_created")
		require.NoError(t, err)
		require.Len(t, actual, 2)

		assert.Nil(t, actual[0].LastError)
		assert.Equal(t, ts.Time, actual[0].RunAt)
		require.NotNil(t, actual[1].LastError)
		assert.Equal(t, "smtp timeout", *actual[1].LastError)
		assert.Equal(t, int32(3), actual[1].Attempts)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockNotificationReadQueries(ctrl)
		mockQueries.EXPECT().ListNotificationJobsByTopic(ctx, gomock.Any(), "booking_created").Return(nil, errDBConnectionLost)

		_, err := readstore.NewNotificationReadStore(mockQueries, &mockDBTX{}).ListByTopic(ctx, "booking_created")
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
