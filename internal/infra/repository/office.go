package repository

import (
	"context"

	"workspace-booking/internal/domain/office"
	"workspace-booking/internal/infra"
	"workspace-booking/internal/infra/pgq"
	"workspace-booking/internal/infra/repository/converter"
	"workspace-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OfficeWriteQueries interface {
	CreateOffice(ctx context.Context, db pgq.DBTX, arg pgq.CreateOfficeParams) (uuid.UUID, error)
}

type OfficeRepository struct {
	queries OfficeWriteQueries
	db      pgq.DBTX
}

func NewOfficeRepository(queries OfficeWriteQueries, db pgq.DBTX) *OfficeRepository {
	return &OfficeRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OfficeRepository) Create(ctx context.Context, tx pgq.DBTX, o *office.Office) (uuid.UUID, error) {
	params, err := converter.OfficeToInfra(o)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("invalid office row", err, infra.KindCheckViolated)
	}

	id, err := r.queries.CreateOffice(ctx, tx, params)
	if err != nil {
		switch {
		case pgconv.IsUniqueViolation(err):
			return uuid.Nil, infra.WrapRepoErr("office already exists", err, infra.KindDuplicateKey)
		case pgconv.IsCheckViolation(err):
			return uuid.Nil, infra.WrapRepoErr("office violates a table constraint", err, infra.KindCheckViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create office", err)
	}

	return id, nil
}
