package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/fieldtrack/fieldtrack-backend/internal/user/domain"
	"github.com/fieldtrack/fieldtrack-backend/pkg/database"
	"github.com/fieldtrack/fieldtrack-backend/pkg/errors"
)

// UserRepository handles user persistence
type UserRepository struct {
	db *database.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	query := `
		INSERT INTO users (id, name, email, password_hash, role, manager_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.ManagerID,
	).Scan(&user.CreatedAt, &user.UpdatedAt)

	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
		return errors.Conflict("a user with this email already exists")
	}

	return err
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	query := `
		SELECT id, name, email, password_hash, role, manager_id, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	err := r.db.GetContext(ctx, &user, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("user")
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByEmail gets a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	query := `
		SELECT id, name, email, password_hash, role, manager_id, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	err := r.db.GetContext(ctx, &user, query, email)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("user")
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// ListByManager lists all employees reporting to a manager
func (r *UserRepository) ListByManager(ctx context.Context, managerID string) ([]*domain.User, error) {
	users := make([]*domain.User, 0)
	query := `
		SELECT id, name, email, password_hash, role, manager_id, created_at, updated_at
		FROM users
		WHERE manager_id = $1
		ORDER BY name
	`

	if err := r.db.SelectContext(ctx, &users, query, managerID); err != nil {
		return nil, err
	}

	return users, nil
}

// Update updates a user's name and email
func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET name = $1, email = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at
	`

	err := r.db.QueryRowxContext(ctx, query, user.Name, user.Email, user.ID).Scan(&user.UpdatedAt)
	if err == sql.ErrNoRows {
		return errors.NotFound("user")
	}
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
		return errors.Conflict("a user with this email already exists")
	}

	return err
}

// Delete removes a user
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.NotFound("user")
	}

	return nil
}
