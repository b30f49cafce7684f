//go:build unit

package repository_test

import (
	"context"
	"testing"

	"workspace-booking/internal/infra"
	"workspace-booking/internal/infra/pgq"
	"workspace-booking/internal/infra/repository"
	"workspace-booking/tests/common/builder"
	repositorymock "workspace-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOfficeRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success: converts the entity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		entity, err := builder.NewOfficeBuilder().BuildDomain()
		require.NoError(t, err)

		mockQueries := repositorymock.NewMockOfficeWriteQueries(ctrl)
		mockQueries.EXPECT().CreateOffice(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ pgq.DBTX, arg pgq.CreateOfficeParams) (uuid.UUID, error) {
				assert.Equal(t, entity.ID(), arg.ID)
				assert.Equal(t, "meeting-room", arg.Type)
				assert.Equal(t, int32(500), arg.BasePricePerHour)
				assert.Equal(t, int32(10), arg.Capacity)
				assert.Equal(t, "available", arg.AvailabilityStatus)
				return arg.ID, nil
			})

		id, err := repository.NewOfficeRepository(mockQueries, &mockDBTX{}).Create(ctx, &mockDBTX{}, entity)
		require.NoError(t, err)
		assert.Equal(t, entity.ID(), id)
	})

	errorCases := []struct {
		name       string
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "duplicate", queryErr: &pgconn.PgError{Code: "23505"}, expectKind: infra.KindDuplicateKey},
		{name: "check violation", queryErr: &pgconn.PgError{Code: "23514"}, expectKind: infra.KindCheckViolated},
		{name: "database error", queryErr: errDBConnectionLost, expectKind: infra.KindDBFailure},
	}

	for _, tc := range errorCases {
		t.Run("error: "+tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			entity, err := builder.NewOfficeBuilder().BuildDomain()
			require.NoError(t, err)

			mockQueries := repositorymock.NewMockOfficeWriteQueries(ctrl)
			mockQueries.EXPECT().CreateOffice(ctx, gomock.Any(), gomock.Any()).Return(uuid.Nil, tc.queryErr)

			_, err = repository.NewOfficeRepository(mockQueries, &mockDBTX{}).Create(ctx, &mockDBTX{}, entity)
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
		})
	}
}
