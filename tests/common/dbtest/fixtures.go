//go:build e2e

package dbtest

import (
	"context"
	"fmt"
	"time"

	"majestic-manor/internal/pkg/password"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	AdminEmail    = "admin@majestic-manor.test"
	AdminPassword = "correct-horse-battery"
	StaffEmail    = "staff@majestic-manor.test"
	StaffPassword = "front-desk-pass-1"
)

// SeedReferenceData inserts the back-office accounts every e2e scenario needs.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	accounts := []struct {
		email    string
		password string
		role     string
	}{
		{AdminEmail, AdminPassword, "admin"},
		{StaffEmail, StaffPassword, "staff"},
	}

	for _, a := range accounts {
		hash, err := password.HashPassword(a.password)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}
		_, err = pool.Exec(ctx, `
			INSERT INTO users (email, password_hash, role, is_active)
			VALUES ($1, $2, $3, true)
			ON CONFLICT (email) DO NOTHING`,
			a.email, hash, a.role)
		if err != nil {
			return fmt.Errorf("failed to seed user %s: %w", a.email, err)
		}
	}

	return nil
}

// ResetDB truncates mutable tables and reseeds reference data so each subtest
// starts from a known state.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, `TRUNCATE bookings, customers, rooms, users RESTART IDENTITY CASCADE`)
	if err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}

	return SeedReferenceData(pool)
}
