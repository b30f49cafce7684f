package commands

import (
	"context"
	"log/slog"

	"workspace-booking/internal/domain/office"
	"workspace-booking/internal/infra"
	"workspace-booking/internal/pkg/errs"
	"workspace-booking/internal/usecase/queries"
	"workspace-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrDuplicateOffice = errs.New("office already exists")

// CatalogInvalidator drops cached catalog reads after a write.
type CatalogInvalidator interface {
	Invalidate(ctx context.Context) error
}

type SeedResult struct {
	Inserted int
	Skipped  bool
}

type OfficeCommands interface {
	Create(ctx context.Context, p office.Params) (*queries.OfficeView, error)
	// Seed loads the reference catalog only into an empty offices table.
	Seed(ctx context.Context, catalog []office.Params) (*SeedResult, error)
}

type officeCommandsImpl struct {
	uow           shared.UnitOfWork
	officeQueries queries.OfficeQueries
	invalidator   CatalogInvalidator
}

func NewOfficeCommands(uow shared.UnitOfWork, officeQueries queries.OfficeQueries, invalidator CatalogInvalidator) OfficeCommands {
	return &officeCommandsImpl{
		uow:           uow,
		officeQueries: officeQueries,
		invalidator:   invalidator,
	}
}

func (c *officeCommandsImpl) Create(ctx context.Context, p office.Params) (*queries.OfficeView, error) {
	p.ID = uuid.Nil
	entity, err := office.NewOffice(p)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var terr error
		id, terr = tx.Offices().Create(ctx, tx.DB(), entity)
		return terr
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, errs.Mark(err, ErrDuplicateOffice)
		case infra.IsKind(err, infra.KindCheckViolated):
			return nil, errs.Mark(err, ErrDomainValidation)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	c.invalidate(ctx)

	view, err := c.officeQueries.GetByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *officeCommandsImpl) Seed(ctx context.Context, catalog []office.Params) (*SeedResult, error) {
	entities := make([]*office.Office, 0, len(catalog))
	for _, p := range catalog {
		entity, err := office.NewOffice(p)
		if err != nil {
			return nil, errs.Mark(errs.Wrapf(err, "invalid seed office %q", p.Name), ErrDomainValidation)
		}
		entities = append(entities, entity)
	}

	result := &SeedResult{}
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		count, terr := tx.Reads().OfficeCount(ctx)
		if terr != nil {
			return terr
		}
		if count > 0 {
			result.Skipped = true
			return nil
		}

		for _, entity := range entities {
			if _, terr = tx.Offices().Create(ctx, tx.DB(), entity); terr != nil {
				return terr
			}
		}
		result.Inserted = len(entities)
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if result.Inserted > 0 {
		c.invalidate(ctx)
	}
	return result, nil
}

func (c *officeCommandsImpl) invalidate(ctx context.Context) {
	if err := c.invalidator.Invalidate(ctx); err != nil {
		slog.Warn("failed to invalidate catalog cache", "error", err.Error())
	}
}
