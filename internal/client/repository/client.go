package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/fieldtrack/fieldtrack-backend/internal/client/domain"
	"github.com/fieldtrack/fieldtrack-backend/pkg/database"
	"github.com/fieldtrack/fieldtrack-backend/pkg/errors"
)

// ClientRepository handles client site persistence
type ClientRepository struct {
	db *database.DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *database.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// Create creates a new client site
func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) error {
	if client.ID == "" {
		client.ID = uuid.New().String()
	}

	query := `
		INSERT INTO clients (id, name, address, latitude, longitude, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	return r.db.QueryRowxContext(ctx, query,
		client.ID,
		client.Name,
		client.Address,
		client.Latitude,
		client.Longitude,
		client.CreatedBy,
	).Scan(&client.CreatedAt, &client.UpdatedAt)
}

// GetByID gets a client site by ID
func (r *ClientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	var client domain.Client
	query := `
		SELECT id, name, address, latitude, longitude, created_by, created_at, updated_at
		FROM clients
		WHERE id = $1
	`

	err := r.db.GetContext(ctx, &client, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("client")
	}
	if err != nil {
		return nil, err
	}

	return &client, nil
}

// List lists all client sites
func (r *ClientRepository) List(ctx context.Context) ([]*domain.Client, error) {
	clients := make([]*domain.Client, 0)
	query := `
		SELECT id, name, address, latitude, longitude, created_by, created_at, updated_at
		FROM clients
		ORDER BY name
	`

	if err := r.db.SelectContext(ctx, &clients, query); err != nil {
		return nil, err
	}

	return clients, nil
}

// ListByEmployee lists the client sites assigned to an employee
func (r *ClientRepository) ListByEmployee(ctx context.Context, employeeID string) ([]*domain.Client, error) {
	clients := make([]*domain.Client, 0)
	query := `
		SELECT c.id, c.name, c.address, c.latitude, c.longitude, c.created_by, c.created_at, c.updated_at
		FROM clients c
		JOIN client_assignments ca ON ca.client_id = c.id
		WHERE ca.employee_id = $1
		ORDER BY c.name
	`

	if err := r.db.SelectContext(ctx, &clients, query, employeeID); err != nil {
		return nil, err
	}

	return clients, nil
}

// Update updates a client site
func (r *ClientRepository) Update(ctx context.Context, client *domain.Client) error {
	query := `
		UPDATE clients
		SET name = $1, address = $2, latitude = $3, longitude = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		client.Name,
		client.Address,
		client.Latitude,
		client.Longitude,
		client.ID,
	).Scan(&client.UpdatedAt)

	if err == sql.ErrNoRows {
		return errors.NotFound("client")
	}

	return err
}

// Delete removes a client site
func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.NotFound("client")
	}

	return nil
}

// Assign links an employee to a client site
func (r *ClientRepository) Assign(ctx context.Context, clientID, employeeID string) error {
	query := `
		INSERT INTO client_assignments (client_id, employee_id)
		VALUES ($1, $2)
	`

	_, err := r.db.ExecContext(ctx, query, clientID, employeeID)
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code {
		case "23505":
			return errors.Conflict("employee is already assigned to this client")
		case "23503":
			return errors.NotFound("client or employee")
		}
	}

	return err
}

// Unassign removes an employee's assignment to a client site
func (r *ClientRepository) Unassign(ctx context.Context, clientID, employeeID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM client_assignments WHERE client_id = $1 AND employee_id = $2`,
		clientID, employeeID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.NotFound("assignment")
	}

	return nil
}

// IsAssigned reports whether an employee is assigned to a client site
func (r *ClientRepository) IsAssigned(ctx context.Context, clientID, employeeID string) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM client_assignments
			WHERE client_id = $1 AND employee_id = $2
		)
	`

	if err := r.db.GetContext(ctx, &exists, query, clientID, employeeID); err != nil {
		return false, err
	}

	return exists, nil
}
