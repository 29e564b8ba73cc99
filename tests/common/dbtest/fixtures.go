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

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestStaff(t *testing.T, db DBLike, fullName, role string, active bool) uuid.UUID {
	t.Helper()

	staffID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO staff_members (id, full_name, role, is_active) VALUES ($1, $2, $3, $4)",
		staffID, fullName, role, active)
	require.NoError(t, err)

	return staffID
}

func CreateTestHoliday(t *testing.T, db DBLike, date time.Time, label string) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx,
		"INSERT INTO holidays (holiday_date, label) VALUES ($1::date, $2) ON CONFLICT (holiday_date) DO NOTHING",
		date, label)
	require.NoError(t, err)
}

func CreateTestBooking(t *testing.T, db DBLike, email string, slotStart time.Time) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO bookings (
			id, full_name, email, whatsapp_number, categories,
			business_timeline, investment_ready, seen_elyscents,
			booking_datetime, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 'confirmed')`,
		bookingID, "Test Contact", email, "+923000000000",
		[]string{"perfume"}, "asap", true, false, slotStart)
	require.NoError(t, err)

	return bookingID
}

// inserts the default roster every booking test assumes
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO staff_members (id, full_name, role, is_active) VALUES
		    (gen_random_uuid(), 'Sana Tariq', 'consultant', TRUE),
		    (gen_random_uuid(), 'Bilal Ahmed', 'consultant', TRUE),
		    (gen_random_uuid(), 'Hira Qureshi', 'brand_strategist', TRUE),
		    (gen_random_uuid(), 'Omar Siddiqui', 'operations', TRUE);
	`)
	return err
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
