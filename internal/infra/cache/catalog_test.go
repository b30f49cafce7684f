//go:build unit

package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"workspace-booking/internal/domain/office"
	"workspace-booking/tests/common/builder"
	queriesmock "workspace-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeRedis struct {
	data    map[string][]byte
	ttl     map[string]time.Duration
	failGet error
	failSet error
	sets    int
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string][]byte{}, ttl: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.failGet != nil {
		return redis.NewStringResult("", f.failGet)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(string(v), nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	f.sets++
	if f.failSet != nil {
		return redis.NewStatusResult("", f.failSet)
	}
	f.data[key] = value.([]byte)
	f.ttl[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func testCatalog() []*office.Office {
	return []*office.Office{
		builder.NewOfficeBuilder().BuildReconstructed(),
		builder.NewOfficeBuilder().With(func(b *builder.OfficeBuilder) {
			b.ID = uuid.New()
			b.Name = "Startup Hub - Koramangala"
			b.Type = office.TypeDayCoworking
			b.Location = "Koramangala, Bangalore"
		}).BuildReconstructed(),
	}
}

func TestCatalogCache_List(t *testing.T) {
	ctx := context.Background()

	t.Run("miss loads from source and stores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := queriesmock.NewMockOfficeReadStore(ctrl)
		rc := newFakeRedis()
		c := NewCatalogCache(rc, source, time.Minute)

		offices := testCatalog()
		source.EXPECT().List(ctx).Return(offices, nil).Times(1)

		first, err := c.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, offices, first)
		assert.Equal(t, time.Minute, rc.ttl[CatalogKey])

		second, err := c.List(ctx)
		require.NoError(t, err)
		require.Len(t, second, 2)
		assert.Equal(t, offices[1].Name(), second[1].Name())
		assert.Equal(t, offices[0].BasePricePerHour(), second[0].BasePricePerHour())
		assert.Equal(t, offices[0].Amenities(), second[0].Amenities())
		assert.True(t, offices[0].CreatedAt().Equal(second[0].CreatedAt()))
	})

	t.Run("redis failure falls back to source", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := queriesmock.NewMockOfficeReadStore(ctrl)
		rc := newFakeRedis()
		rc.failGet = errors.New("connection refused")
		rc.failSet = errors.New("connection refused")
		c := NewCatalogCache(rc, source, time.Minute)

		source.EXPECT().List(ctx).Return(testCatalog(), nil).Times(2)

		for range 2 {
			actual, err := c.List(ctx)
			require.NoError(t, err)
			assert.Len(t, actual, 2)
		}
	})

	t.Run("corrupt entry is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := queriesmock.NewMockOfficeReadStore(ctrl)
		rc := newFakeRedis()
		rc.data[CatalogKey] = []byte("{not json")
		c := NewCatalogCache(rc, source, time.Minute)

		source.EXPECT().List(ctx).Return(testCatalog(), nil)

		actual, err := c.List(ctx)
		require.NoError(t, err)
		assert.Len(t, actual, 2)
	})

	t.Run("source error is returned and nothing is stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := queriesmock.NewMockOfficeReadStore(ctrl)
		rc := newFakeRedis()
		c := NewCatalogCache(rc, source, time.Minute)

		source.EXPECT().List(ctx).Return(nil, errors.New("db down"))

		_, err := c.List(ctx)
		require.Error(t, err)
		assert.Equal(t, 0, rc.sets)
	})
}

func TestCatalogCache_FindByID(t *testing.T) {
	ctx := context.Background()
	offices := testCatalog()

	t.Run("hit is served from the cached list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := queriesmock.NewMockOfficeReadStore(ctrl)
		rc := newFakeRedis()
		c := NewCatalogCache(rc, source, time.Minute)
		c.store(ctx, offices)

		actual, err := c.FindByID(ctx, offices[1].ID())
		require.NoError(t, err)
		assert.Equal(t, offices[1].Name(), actual.Name())
	})

	t.Run("unknown id goes to the source", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := queriesmock.NewMockOfficeReadStore(ctrl)
		rc := newFakeRedis()
		c := NewCatalogCache(rc, source, time.Minute)
		c.store(ctx, offices)

		id := uuid.New()
		source.EXPECT().FindByID(ctx, id).Return(nil, errors.New("not found"))

		_, err := c.FindByID(ctx, id)
		assert.Error(t, err)
	})
}

func TestCatalogCache_Invalidate(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	source := queriesmock.NewMockOfficeReadStore(ctrl)
	rc := newFakeRedis()
	c := NewCatalogCache(rc, source, time.Minute)
	c.store(ctx, testCatalog())

	require.NoError(t, c.Invalidate(ctx))
	_, ok := rc.data[CatalogKey]
	assert.False(t, ok)

	require.NoError(t, NoopInvalidator{}.Invalidate(ctx))
}
