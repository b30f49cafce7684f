package readstore

import (
	"context"
	"time"

	"workspace-booking/internal/infra"
	"workspace-booking/internal/infra/pgq"
	"workspace-booking/internal/pkg/pgconv"
	"workspace-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyReadQueries interface {
	GetIdempotencyKey(ctx context.Context, db pgq.DBTX, arg pgq.GetIdempotencyKeyParams) (pgq.IdempotencyKeys, error)
}

type IdempotencyReadStore struct {
	queries IdempotencyReadQueries
	now     func() time.Time
}

func NewIdempotencyReadStore(queries IdempotencyReadQueries) *IdempotencyReadStore {
	return &IdempotencyReadStore{
		queries: queries,
		now:     time.Now,
	}
}

// Get treats expired keys as missing.
func (r *IdempotencyReadStore) Get(ctx context.Context, tx pgq.DBTX, key uuid.UUID, endpoint string) (*shared.IdempotencyRecord, error) {
	params := pgq.GetIdempotencyKeyParams{
		Key:      key,
		Endpoint: endpoint,
	}

	row, err := r.queries.GetIdempotencyKey(ctx, tx, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	record := &shared.IdempotencyRecord{
		Key:             row.Key,
		Endpoint:        row.Endpoint,
		Status:          row.Status,
		RequestHash:     row.RequestHash,
		ResultBookingID: pgconv.UUIDPtrFromPgtype(row.ResultBookingID),
		ExpiresAt:       pgconv.TimeFromPgtype(row.ExpiresAt),
	}

	if r.now().After(record.ExpiresAt) {
		return nil, infra.WrapRepoErr("idempotency key expired", nil, infra.KindNotFound)
	}

	return record, nil
}
