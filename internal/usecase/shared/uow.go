package shared

import (
	"context"
	"time"

	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/domain/office"
	"workspace-booking/internal/infra/pgq"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db pgq.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db pgq.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Offices() OfficeRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() pgq.DBTX
}

type CommandReads interface {
	OfficeByID(ctx context.Context, id uuid.UUID) (*office.Office, error)
	OfficeCount(ctx context.Context) (int64, error)
	IdempotencyByKey(ctx context.Context, key uuid.UUID, endpoint string) (*IdempotencyRecord, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx pgq.DBTX, b *booking.Booking) (uuid.UUID, error)
}

type OfficeRepository interface {
	Create(ctx context.Context, tx pgq.DBTX, o *office.Office) (uuid.UUID, error)
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, tx pgq.DBTX, key uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	UpdateStatusCompleted(ctx context.Context, tx pgq.DBTX, key uuid.UUID, endpoint string, bookingID uuid.UUID) error
	Release(ctx context.Context, tx pgq.DBTX, key uuid.UUID, endpoint string) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx pgq.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
