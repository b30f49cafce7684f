//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"workspace-booking/internal/domain/office"
	"workspace-booking/internal/infra/seed"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestOffice inserts o directly and returns its id.
func CreateTestOffice(t *testing.T, db DBLike, o office.Params) uuid.UUID {
	t.Helper()

	id := o.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	status := o.AvailabilityStatus
	if status == "" {
		status = office.AvailabilityAvailable
	}
	amenities := o.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	_, err := db.Exec(context.Background(), `
		INSERT INTO offices (id, name, type, location, address, latitude, longitude,
		    base_price_per_hour, capacity, amenities, description, availability_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		id, o.Name, string(o.Type), o.Location, o.Address, o.Latitude, o.Longitude,
		o.BasePricePerHour, o.Capacity, amenities, o.Description, string(status))
	require.NoError(t, err)

	return id
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+pgx.Identifier{table}.Sanitize()).Scan(&n)
	require.NoError(t, err)
	return n
}

// SeedReferenceData loads the reference office catalog.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	for _, p := range seed.Offices() {
		_, err := pool.Exec(ctx, `
			INSERT INTO offices (name, type, location, address, latitude, longitude,
			    base_price_per_hour, capacity, amenities, description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			p.Name, string(p.Type), p.Location, p.Address, p.Latitude, p.Longitude,
			p.BasePricePerHour, p.Capacity, p.Amenities, p.Description)
		if err != nil {
			return err
		}
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
