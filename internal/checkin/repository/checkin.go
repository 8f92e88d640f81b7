package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/fieldtrack/fieldtrack-backend/internal/checkin/domain"
	"github.com/fieldtrack/fieldtrack-backend/pkg/database"
	"github.com/fieldtrack/fieldtrack-backend/pkg/errors"
)

// CheckinRepository handles check-in persistence
type CheckinRepository struct {
	db *database.DB
}

// NewCheckinRepository creates a new check-in repository
func NewCheckinRepository(db *database.DB) *CheckinRepository {
	return &CheckinRepository{db: db}
}

// Create records a new check-in
func (r *CheckinRepository) Create(ctx context.Context, checkin *domain.Checkin) error {
	if checkin.ID == "" {
		checkin.ID = uuid.New().String()
	}

	query := `
		INSERT INTO checkins (id, employee_id, client_id, checkin_time, distance_from_client, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	return r.db.QueryRowxContext(ctx, query,
		checkin.ID,
		checkin.EmployeeID,
		checkin.ClientID,
		checkin.CheckinTime,
		checkin.DistanceFromClient,
		checkin.Notes,
	).Scan(&checkin.CreatedAt)
}

// GetActiveByEmployee returns the employee's open session, if any
func (r *CheckinRepository) GetActiveByEmployee(ctx context.Context, employeeID string) (*domain.Checkin, error) {
	var checkin domain.Checkin
	query := `
		SELECT id, employee_id, client_id, checkin_time, checkout_time,
		       distance_from_client, notes, created_at
		FROM checkins
		WHERE employee_id = $1 AND checkout_time IS NULL
		ORDER BY checkin_time DESC
		LIMIT 1
	`

	err := r.db.GetContext(ctx, &checkin, query, employeeID)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("active check-in")
	}
	if err != nil {
		return nil, err
	}

	return &checkin, nil
}

// Close sets the checkout time (and optionally appends notes) on a session
func (r *CheckinRepository) Close(ctx context.Context, id string, checkoutTime time.Time, notes *string) (*domain.Checkin, error) {
	var checkin domain.Checkin
	query := `
		UPDATE checkins
		SET checkout_time = $1,
		    notes = COALESCE($2, notes)
		WHERE id = $3 AND checkout_time IS NULL
		RETURNING id, employee_id, client_id, checkin_time, checkout_time,
		          distance_from_client, notes, created_at
	`

	err := r.db.GetContext(ctx, &checkin, query, checkoutTime, notes, id)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("active check-in")
	}
	if err != nil {
		return nil, err
	}

	return &checkin, nil
}

// ListByEmployee returns the employee's check-in history, most recent first
func (r *CheckinRepository) ListByEmployee(ctx context.Context, employeeID string, limit int) ([]*domain.CheckinWithClient, error) {
	checkins := make([]*domain.CheckinWithClient, 0)
	query := `
		SELECT ch.id, ch.employee_id, ch.client_id, ch.checkin_time, ch.checkout_time,
		       ch.distance_from_client, ch.notes, ch.created_at,
		       c.name AS client_name
		FROM checkins ch
		JOIN clients c ON c.id = ch.client_id
		WHERE ch.employee_id = $1
		ORDER BY ch.checkin_time DESC
		LIMIT $2
	`

	if err := r.db.SelectContext(ctx, &checkins, query, employeeID, limit); err != nil {
		return nil, err
	}

	return checkins, nil
}
