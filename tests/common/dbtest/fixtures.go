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

// bcrypt hash of "password123", precomputed to keep test setup fast
const TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, name, role, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING",
		userID, email, TestPasswordHash, "Test User", role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestField(t *testing.T, db DBLike, name, sport string, pricePerHour int64) uuid.UUID {
	t.Helper()

	fieldID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO fields (id, name, sport, price_per_hour, is_active) VALUES ($1, $2, $3, $4, true)",
		fieldID, name, sport, pricePerHour)
	require.NoError(t, err)

	for weekday := 0; weekday <= 6; weekday++ {
		_, err := db.Exec(ctx,
			"INSERT INTO field_availability (field_id, weekday, open_time, close_time) VALUES ($1, $2, '06:00', '23:00')",
			fieldID, weekday)
		require.NoError(t, err)
	}

	return fieldID
}

// inserts the reference fields every suite expects to exist
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	fields := []struct {
		name  string
		sport string
		price int64
	}{
		{"Lapangan Mini Soccer", "mini_soccer", 200000},
		{"Lapangan Futsal 1", "futsal", 150000},
		{"Lapangan Badminton 1", "badminton", 50000},
		{"Lapangan Padel", "padel", 130000},
	}

	for _, f := range fields {
		var fieldID uuid.UUID
		err := pool.QueryRow(ctx,
			"INSERT INTO fields (name, sport, price_per_hour, is_active) VALUES ($1, $2, $3, true) RETURNING id",
			f.name, f.sport, f.price).Scan(&fieldID)
		if err != nil {
			return err
		}

		for weekday := 0; weekday <= 6; weekday++ {
			_, err := pool.Exec(ctx,
				"INSERT INTO field_availability (field_id, weekday, open_time, close_time) VALUES ($1, $2, '06:00', '23:00')",
				fieldID, weekday)
			if err != nil {
				return err
			}
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
