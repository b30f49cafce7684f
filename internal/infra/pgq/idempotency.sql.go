package pgq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Expired keys are reclaimed in place.
const tryInsertIdempotencyKey = `INSERT INTO idempotency_keys (key, endpoint, request_hash, status, expires_at)
VALUES ($1, $2, $3, 'processing', $4)
ON CONFLICT (key, endpoint) DO UPDATE
SET request_hash = EXCLUDED.request_hash,
    status = 'processing',
    result_booking_id = NULL,
    expires_at = EXCLUDED.expires_at,
    updated_at = now()
WHERE idempotency_keys.expires_at < now()`

type TryInsertIdempotencyKeyParams struct {
	Key         uuid.UUID
	Endpoint    string
	RequestHash string
	ExpiresAt   pgtype.Timestamptz
}

func (q *Queries) TryInsertIdempotencyKey(ctx context.Context, db DBTX, arg TryInsertIdempotencyKeyParams) (int64, error) {
	tag, err := db.Exec(ctx, tryInsertIdempotencyKey, arg.Key, arg.Endpoint, arg.RequestHash, arg.ExpiresAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getIdempotencyKey = `SELECT key, endpoint, request_hash, status, result_booking_id, expires_at, created_at, updated_at
FROM idempotency_keys
WHERE key = $1 AND endpoint = $2`

type GetIdempotencyKeyParams struct {
	Key      uuid.UUID
	Endpoint string
}

func (q *Queries) GetIdempotencyKey(ctx context.Context, db DBTX, arg GetIdempotencyKeyParams) (IdempotencyKeys, error) {
	var k IdempotencyKeys
	err := db.QueryRow(ctx, getIdempotencyKey, arg.Key, arg.Endpoint).Scan(
		&k.Key,
		&k.Endpoint,
		&k.RequestHash,
		&k.Status,
		&k.ResultBookingID,
		&k.ExpiresAt,
		&k.CreatedAt,
		&k.UpdatedAt,
	)
	return k, err
}

const updateIdempotencyKeyCompleted = `UPDATE idempotency_keys
SET status = 'completed', result_booking_id = $3, updated_at = now()
WHERE key = $1 AND endpoint = $2`

type UpdateIdempotencyKeyCompletedParams struct {
	Key             uuid.UUID
	Endpoint        string
	ResultBookingID pgtype.UUID
}

func (q *Queries) UpdateIdempotencyKeyCompleted(ctx context.Context, db DBTX, arg UpdateIdempotencyKeyCompletedParams) error {
	_, err := db.Exec(ctx, updateIdempotencyKeyCompleted, arg.Key, arg.Endpoint, arg.ResultBookingID)
	return err
}

const deleteProcessingIdempotencyKey = `DELETE FROM idempotency_keys
WHERE key = $1 AND endpoint = $2 AND status = 'processing'`

type DeleteProcessingIdempotencyKeyParams struct {
	Key      uuid.UUID
	Endpoint string
}

func (q *Queries) DeleteProcessingIdempotencyKey(ctx context.Context, db DBTX, arg DeleteProcessingIdempotencyKeyParams) error {
	_, err := db.Exec(ctx, deleteProcessingIdempotencyKey, arg.Key, arg.Endpoint)
	return err
}

const deleteExpiredIdempotencyKeys = `DELETE FROM idempotency_keys WHERE expires_at < now()`

func (q *Queries) DeleteExpiredIdempotencyKeys(ctx context.Context, db DBTX) (int64, error) {
	tag, err := db.Exec(ctx, deleteExpiredIdempotencyKeys)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
