package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"workspace-booking/internal/domain/office"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const CatalogKey = "catalog:offices:v1"

// OfficeSource is the read store the cache sits in front of.
type OfficeSource interface {
	List(ctx context.Context) ([]*office.Office, error)
	FindByID(ctx context.Context, id uuid.UUID) (*office.Office, error)
}

type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// CatalogCache is a read-through cache of the whole office list.
// Redis errors degrade to the source; they are never returned.
type CatalogCache struct {
	rc     redisClient
	source OfficeSource
	ttl    time.Duration
}

func NewCatalogCache(rc redisClient, source OfficeSource, ttl time.Duration) *CatalogCache {
	return &CatalogCache{
		rc:     rc,
		source: source,
		ttl:    ttl,
	}
}

func (c *CatalogCache) List(ctx context.Context) ([]*office.Office, error) {
	if cached, ok := c.load(ctx); ok {
		return cached, nil
	}

	offices, err := c.source.List(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, offices)
	return offices, nil
}

func (c *CatalogCache) FindByID(ctx context.Context, id uuid.UUID) (*office.Office, error) {
	if cached, ok := c.load(ctx); ok {
		for _, o := range cached {
			if o.ID() == id {
				return o, nil
			}
		}
	}
	return c.source.FindByID(ctx, id)
}

func (c *CatalogCache) Invalidate(ctx context.Context) error {
	return c.rc.Del(ctx, CatalogKey).Err()
}

func (c *CatalogCache) load(ctx context.Context) ([]*office.Office, bool) {
	raw, err := c.rc.Get(ctx, CatalogKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("catalog cache read failed", "error", err)
		}
		return nil, false
	}

	var snaps []officeSnapshot
	if err := json.Unmarshal(raw, &snaps); err != nil {
		slog.Warn("catalog cache entry is corrupt", "error", err)
		return nil, false
	}

	offices := make([]*office.Office, len(snaps))
	for i, s := range snaps {
		offices[i] = s.toDomain()
	}
	return offices, true
}

func (c *CatalogCache) store(ctx context.Context, offices []*office.Office) {
	snaps := make([]officeSnapshot, len(offices))
	for i, o := range offices {
		snaps[i] = snapshotOf(o)
	}

	raw, err := json.Marshal(snaps)
	if err != nil {
		slog.Warn("failed to encode catalog cache entry", "error", err)
		return
	}
	if err := c.rc.Set(ctx, CatalogKey, raw, c.ttl).Err(); err != nil {
		slog.Warn("catalog cache write failed", "error", err)
	}
}

type officeSnapshot struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Type               string    `json:"type"`
	Location           string    `json:"location"`
	Address            string    `json:"address"`
	Latitude           float64   `json:"latitude"`
	Longitude          float64   `json:"longitude"`
	BasePricePerHour   int64     `json:"base_price_per_hour"`
	Capacity           int       `json:"capacity"`
	Amenities          []string  `json:"amenities"`
	Description        string    `json:"description"`
	AvailabilityStatus string    `json:"availability_status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func snapshotOf(o *office.Office) officeSnapshot {
	return officeSnapshot{
		ID:                 o.ID(),
		Name:               o.Name(),
		Type:               o.Type().String(),
		Location:           o.Location(),
		Address:            o.Address(),
		Latitude:           o.Latitude(),
		Longitude:          o.Longitude(),
		BasePricePerHour:   o.BasePricePerHour(),
		Capacity:           o.Capacity(),
		Amenities:          o.Amenities(),
		Description:        o.Description(),
		AvailabilityStatus: o.AvailabilityStatus().String(),
		CreatedAt:          o.CreatedAt(),
		UpdatedAt:          o.UpdatedAt(),
	}
}

func (s officeSnapshot) toDomain() *office.Office {
	return office.ReconstructOffice(office.Params{
		ID:                 s.ID,
		Name:               s.Name,
		Type:               office.Type(s.Type),
		Location:           s.Location,
		Address:            s.Address,
		Latitude:           s.Latitude,
		Longitude:          s.Longitude,
		BasePricePerHour:   s.BasePricePerHour,
		Capacity:           s.Capacity,
		Amenities:          s.Amenities,
		Description:        s.Description,
		AvailabilityStatus: office.AvailabilityStatus(s.AvailabilityStatus),
	}, s.CreatedAt, s.UpdatedAt)
}

// NoopInvalidator is used when the cache is disabled.
type NoopInvalidator struct{}

func (NoopInvalidator) Invalidate(context.Context) error { return nil }
