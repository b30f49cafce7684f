package repository

import (
	"context"
	"time"

	"workspace-booking/internal/infra"
	"workspace-booking/internal/infra/pgq"
	"workspace-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type IdempotencyWriteQueries interface {
	TryInsertIdempotencyKey(ctx context.Context, db pgq.DBTX, arg pgq.TryInsertIdempotencyKeyParams) (int64, error)
	UpdateIdempotencyKeyCompleted(ctx context.Context, db pgq.DBTX, arg pgq.UpdateIdempotencyKeyCompletedParams) error
	DeleteProcessingIdempotencyKey(ctx context.Context, db pgq.DBTX, arg pgq.DeleteProcessingIdempotencyKeyParams) error
	DeleteExpiredIdempotencyKeys(ctx context.Context, db pgq.DBTX) (int64, error)
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
	db      pgq.DBTX
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries, db pgq.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{
		queries: queries,
		db:      db,
	}
}

// TryInsert reports whether this caller now owns the key. It is false when a
// live key already exists for the endpoint.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, tx pgq.DBTX, key uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	params := pgq.TryInsertIdempotencyKeyParams{
		Key:         key,
		Endpoint:    endpoint,
		RequestHash: requestHash,
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
	}

	n, err := r.queries.TryInsertIdempotencyKey(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err)
	}

	return n > 0, nil
}

func (r *IdempotencyRepository) UpdateStatusCompleted(ctx context.Context, tx pgq.DBTX, key uuid.UUID, endpoint string, bookingID uuid.UUID) error {
	params := pgq.UpdateIdempotencyKeyCompletedParams{
		Key:             key,
		Endpoint:        endpoint,
		ResultBookingID: pgconv.UUIDPtrToPgtype(&bookingID),
	}

	if err := r.queries.UpdateIdempotencyKeyCompleted(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update idempotency key status", err)
	}

	return nil
}

// Release drops a key that never completed so the client can retry with it.
func (r *IdempotencyRepository) Release(ctx context.Context, tx pgq.DBTX, key uuid.UUID, endpoint string) error {
	params := pgq.DeleteProcessingIdempotencyKeyParams{
		Key:      key,
		Endpoint: endpoint,
	}

	if err := r.queries.DeleteProcessingIdempotencyKey(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to release idempotency key", err)
	}

	return nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context) (int64, error) {
	count, err := r.queries.DeleteExpiredIdempotencyKeys(ctx, r.db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}

	return count, nil
}
