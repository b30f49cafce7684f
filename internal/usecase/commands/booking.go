package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/domain/office"
	"workspace-booking/internal/infra"
	"workspace-booking/internal/pkg/clock"
	"workspace-booking/internal/pkg/errs"
	"workspace-booking/internal/usecase/queries"
	"workspace-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	CreateBookingEndpoint = "POST /api/bookings"
	idempotencyTTL        = 24 * time.Hour

	NotificationKindEmail      = "email"
	NotificationBookingCreated = "booking_created"
)

var (
	ErrOfficeNotFound          = errs.ErrOfficeNotFound
	ErrNotPriceable            = errs.ErrNotPriceable
	ErrDuplicateBooking        = errs.ErrDuplicateBooking
	ErrIdempotencyInProgress   = errs.ErrIdempotencyInProgress
	ErrIdempotencyCheckFailed  = errs.ErrIdempotencyCheckFailed
	ErrDomainValidation        = errs.ErrDomainValidation
	ErrDatabaseOperationFailed = errs.ErrDatabaseOperationFailed
)

// CreateBookingInput carries parsed request fields. Any client-side price is
// not part of it; the total is always recomputed.
type CreateBookingInput struct {
	OfficeID           uuid.UUID
	FullName           string
	Email              string
	Phone              string
	CompanyName        string
	Purpose            string
	BookingDate        time.Time
	Duration           booking.Duration
	NumberOfPeople     int
	PreferredAmenities []string
}

type CreateBookingResult struct {
	Booking    *queries.BookingView
	IsReplayed bool
}

type BookingCommands interface {
	Create(ctx context.Context, in CreateBookingInput, idempotencyKey *uuid.UUID) (*CreateBookingResult, error)
}

type bookingCommandsImpl struct {
	uow            shared.UnitOfWork
	factory        *booking.Factory
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	factory *booking.Factory,
	bookingQueries queries.BookingQueries,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:            uow,
		factory:        factory,
		bookingQueries: bookingQueries,
		clock:          clk,
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, in CreateBookingInput, idempotencyKey *uuid.UUID) (*CreateBookingResult, error) {
	if idempotencyKey != nil {
		replayed, err := c.claimIdempotencyKey(ctx, *idempotencyKey, requestHash(in))
		if err != nil {
			return nil, err
		}
		if replayed != nil {
			return &CreateBookingResult{Booking: replayed, IsReplayed: true}, nil
		}
	}

	view, err := c.createNewBooking(ctx, in, idempotencyKey)
	if err != nil {
		if idempotencyKey != nil {
			c.releaseIdempotencyKey(ctx, *idempotencyKey)
		}
		return nil, err
	}

	return &CreateBookingResult{Booking: view, IsReplayed: false}, nil
}

// claimIdempotencyKey returns the stored booking when the key was already
// completed with the same request, and nil when this call owns the key.
func (c *bookingCommandsImpl) claimIdempotencyKey(ctx context.Context, key uuid.UUID, hash string) (*queries.BookingView, error) {
	var claimed bool
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var ierr error
		claimed, ierr = tx.Idempotency().TryInsert(ctx, tx.DB(), key, CreateBookingEndpoint, hash, c.clock.Now().Add(idempotencyTTL))
		return ierr
	})
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if claimed {
		return nil, nil
	}

	existing, err := c.uow.CommandReads().IdempotencyByKey(ctx, key, CreateBookingEndpoint)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	if existing.RequestHash != hash {
		return nil, ErrDuplicateBooking
	}

	switch existing.Status {
	case shared.IdempotencyStatusCompleted:
		if existing.ResultBookingID == nil {
			return nil, errs.Mark(errs.New("completed request missing result booking ID"), ErrIdempotencyCheckFailed)
		}
		view, err := c.bookingQueries.GetByID(ctx, *existing.ResultBookingID)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return view, nil
	case shared.IdempotencyStatusProcessing:
		return nil, ErrIdempotencyInProgress
	default:
		return nil, errs.Mark(errs.Newf("invalid idempotency key status %q", existing.Status), ErrIdempotencyCheckFailed)
	}
}

func (c *bookingCommandsImpl) releaseIdempotencyKey(ctx context.Context, key uuid.UUID) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Idempotency().Release(ctx, tx.DB(), key, CreateBookingEndpoint)
	})
	if err != nil {
		slog.Warn("failed to release idempotency key", "key", key, "error", err.Error())
	}
}

func (c *bookingCommandsImpl) createNewBooking(ctx context.Context, in CreateBookingInput, idempotencyKey *uuid.UUID) (*queries.BookingView, error) {
	officeEntity, err := c.loadOffice(ctx, in.OfficeID)
	if err != nil {
		return nil, err
	}

	entity, err := c.buildBooking(officeEntity, in)
	if err != nil {
		return nil, err
	}

	var bookingID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, terr := tx.Bookings().Create(ctx, tx.DB(), entity)
		if terr != nil {
			return terr
		}
		bookingID = id

		if terr = c.enqueueNotification(ctx, tx, entity, officeEntity); terr != nil {
			return terr
		}

		if idempotencyKey != nil {
			return tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), *idempotencyKey, CreateBookingEndpoint, id)
		}
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.Mark(err, ErrOfficeNotFound)
		}
		if infra.IsKind(err, infra.KindCheckViolated) {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Read-after-write: return the joined view from the read store
	view, err := c.bookingQueries.GetByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *bookingCommandsImpl) loadOffice(ctx context.Context, id uuid.UUID) (*office.Office, error) {
	o, err := c.uow.CommandReads().OfficeByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfficeNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return o, nil
}

func (c *bookingCommandsImpl) buildBooking(officeEntity *office.Office, in CreateBookingInput) (*booking.Booking, error) {
	contact, err := booking.NewContact(in.FullName, in.Email, in.Phone, in.CompanyName)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	purpose, err := booking.NewPurpose(in.Purpose)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	entity, err := c.factory.CreateBooking(officeEntity, booking.Params{
		Contact:            contact,
		Purpose:            purpose,
		BookingDate:        in.BookingDate,
		Duration:           in.Duration,
		NumberOfPeople:     in.NumberOfPeople,
		PreferredAmenities: in.PreferredAmenities,
	})
	if err != nil {
		if errors.Is(err, booking.ErrNotPriceable) {
			return nil, errs.Mark(err, ErrNotPriceable)
		}
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	return entity, nil
}

func (c *bookingCommandsImpl) enqueueNotification(ctx context.Context, tx shared.Tx, b *booking.Booking, o *office.Office) error {
	payload, err := json.Marshal(map[string]any{
		"booking_id":   b.ID(),
		"office_id":    o.ID(),
		"office_name":  o.Name(),
		"email":        b.Contact().Email(),
		"full_name":    b.Contact().FullName(),
		"booking_date": b.BookingDate().Format(time.DateOnly),
		"duration":     b.Duration().String(),
		"total_price":  b.TotalPrice(),
		"type":         NotificationBookingCreated,
	})
	if err != nil {
		return err
	}

	return tx.Notifications().CreateJob(ctx, tx.DB(), NotificationKindEmail, NotificationBookingCreated, payload, c.clock.Now())
}

type hashableBooking struct {
	OfficeID           uuid.UUID `json:"office_id"`
	FullName           string    `json:"full_name"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	CompanyName        string    `json:"company_name"`
	Purpose            string    `json:"purpose"`
	BookingDate        string    `json:"booking_date"`
	DurationKind       string    `json:"duration_kind"`
	Duration           string    `json:"duration"`
	NumberOfPeople     int       `json:"number_of_people"`
	PreferredAmenities []string  `json:"preferred_amenities"`
}

func requestHash(in CreateBookingInput) string {
	h := hashableBooking{
		OfficeID:           in.OfficeID,
		FullName:           in.FullName,
		Email:              in.Email,
		Phone:              in.Phone,
		CompanyName:        in.CompanyName,
		Purpose:            in.Purpose,
		BookingDate:        in.BookingDate.Format(time.DateOnly),
		NumberOfPeople:     in.NumberOfPeople,
		PreferredAmenities: in.PreferredAmenities,
	}
	if in.Duration != nil {
		h.DurationKind = string(in.Duration.Kind())
		h.Duration = in.Duration.String()
	}

	data, _ := json.Marshal(h)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
