package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// attendanceSchema is the DDL for the attendance service tables. It mirrors
// the production schema and is applied once per integration suite.
const attendanceSchema = `
	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) UNIQUE NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		role VARCHAR(20) NOT NULL CHECK (role IN ('manager', 'employee')),
		manager_id UUID REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS clients (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(255) NOT NULL,
		address TEXT,
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		created_by UUID REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS client_assignments (
		client_id UUID NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
		employee_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (client_id, employee_id)
	);

	CREATE TABLE IF NOT EXISTS checkins (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		employee_id UUID NOT NULL REFERENCES users(id),
		client_id UUID NOT NULL REFERENCES clients(id),
		checkin_time TIMESTAMPTZ NOT NULL,
		checkout_time TIMESTAMPTZ,
		distance_from_client DOUBLE PRECISION,
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_users_manager_id ON users(manager_id);
	CREATE INDEX IF NOT EXISTS idx_checkins_employee_time ON checkins(employee_id, checkin_time);
	CREATE INDEX IF NOT EXISTS idx_checkins_client ON checkins(client_id);
`

// ApplyAttendanceSchema creates the attendance tables in the test database
func ApplyAttendanceSchema(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, attendanceSchema)
	return err
}

// SeedManager inserts a manager user and returns its ID
func SeedManager(t *testing.T, ctx context.Context, db *sqlx.DB, name, email string) string {
	t.Helper()
	id := uuid.New().String()
	_, err := db.ExecContext(ctx,
		`INSERT INTO users (id, name, email, password_hash, role) VALUES ($1, $2, $3, 'x', 'manager')`,
		id, name, email)
	if err != nil {
		t.Fatalf("failed to seed manager: %v", err)
	}
	return id
}

// SeedEmployee inserts an employee reporting to the given manager and
// returns its ID
func SeedEmployee(t *testing.T, ctx context.Context, db *sqlx.DB, managerID, name, email string) string {
	t.Helper()
	id := uuid.New().String()
	_, err := db.ExecContext(ctx,
		`INSERT INTO users (id, name, email, password_hash, role, manager_id) VALUES ($1, $2, $3, 'x', 'employee', $4)`,
		id, name, email, managerID)
	if err != nil {
		t.Fatalf("failed to seed employee: %v", err)
	}
	return id
}

// SeedClient inserts a client site and returns its ID
func SeedClient(t *testing.T, ctx context.Context, db *sqlx.DB, createdBy, name string) string {
	t.Helper()
	id := uuid.New().String()
	_, err := db.ExecContext(ctx,
		`INSERT INTO clients (id, name, created_by) VALUES ($1, $2, $3)`,
		id, name, createdBy)
	if err != nil {
		t.Fatalf("failed to seed client: %v", err)
	}
	return id
}

// SeedCheckin inserts a check-in row and returns its ID. Pass a nil checkout
// for an open session.
func SeedCheckin(t *testing.T, ctx context.Context, db *sqlx.DB, employeeID, clientID string, checkin time.Time, checkout *time.Time) string {
	t.Helper()
	id := uuid.New().String()
	_, err := db.ExecContext(ctx,
		`INSERT INTO checkins (id, employee_id, client_id, checkin_time, checkout_time) VALUES ($1, $2, $3, $4, $5)`,
		id, employeeID, clientID, checkin, checkout)
	if err != nil {
		t.Fatalf("failed to seed checkin: %v", err)
	}
	return id
}
