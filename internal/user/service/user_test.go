package service_test

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/fieldtrack/fieldtrack-backend/internal/user/events"
	"github.com/fieldtrack/fieldtrack-backend/internal/user/repository"
	"github.com/fieldtrack/fieldtrack-backend/internal/user/service"
	"github.com/fieldtrack/fieldtrack-backend/pkg/errors"
	"github.com/fieldtrack/fieldtrack-backend/pkg/logger"
	"github.com/fieldtrack/fieldtrack-backend/pkg/messaging"
	"github.com/fieldtrack/fieldtrack-backend/pkg/testutil"
)

var userColumns = []string{
	"id", "name", "email", "password_hash", "role", "manager_id", "created_at", "updated_at",
}

func newUserService(t *testing.T) (*service.UserService, *testutil.MockDB, *testutil.MockPublisher) {
	t.Helper()
	mockDB := testutil.NewMockDB(t)
	mockPub := testutil.NewMockPublisher()
	log := logger.New("test", "test")

	svc := service.NewUserService(
		repository.NewUserRepository(mockDB.DB),
		events.NewPublisher(mockPub, log),
		log,
	)

	return svc, mockDB, mockPub
}

func TestCreateEmployee_HashesPasswordAndPublishes(t *testing.T) {
	svc, mockDB, mockPub := newUserService(t)
	defer mockDB.Close()

	now := time.Now()
	var capturedHash string

	mockDB.Mock.ExpectQuery("INSERT INTO users").
		WithArgs(
			testutil.AnyUUID{},
			"Alice",
			"alice@example.com",
			hashCaptor{&capturedHash},
			"employee",
			"mgr-1",
		).
		WillReturnRows(testutil.MockRows("created_at", "updated_at").AddRow(now, now))

	user, err := svc.CreateEmployee(context.Background(), "mgr-1", &service.CreateEmployeeRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.Equal(t, "employee", user.Role)
	require.NotNil(t, user.ManagerID)
	assert.Equal(t, "mgr-1", *user.ManagerID)

	assert.NotEqual(t, "password123", capturedHash, "password is never stored in the clear")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(capturedHash), []byte("password123")))

	mockPub.AssertEventPublished(t, messaging.EventEmployeeCreated)
	mockDB.ExpectationsWereMet(t)
}

func TestCreateEmployee_ValidationFailure(t *testing.T) {
	svc, mockDB, mockPub := newUserService(t)
	defer mockDB.Close()

	_, err := svc.CreateEmployee(context.Background(), "mgr-1", &service.CreateEmployeeRequest{
		Name:     "Alice",
		Email:    "not-an-email",
		Password: "short",
	})
	require.Error(t, err)

	var appErr *errors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)

	mockPub.AssertNoEventsPublished(t)
	mockDB.ExpectationsWereMet(t)
}

func TestGetTeamMember_OutsideTeamIsNotFound(t *testing.T) {
	svc, mockDB, _ := newUserService(t)
	defer mockDB.Close()

	now := time.Now()
	rows := testutil.MockRows(userColumns...).
		AddRow("e1", "Alice", "alice@example.com", "x", "employee", "another-manager", now, now)

	mockDB.ExpectQuery("WHERE id = $1").
		WithArgs("e1").
		WillReturnRows(rows)

	_, err := svc.GetTeamMember(context.Background(), "mgr-1", "e1")
	require.Error(t, err)

	var appErr *errors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "NOT_FOUND", appErr.Code, "other teams' employees look like they don't exist")
}

func TestDeleteEmployee_PublishesDeletedEvent(t *testing.T) {
	svc, mockDB, mockPub := newUserService(t)
	defer mockDB.Close()

	now := time.Now()
	rows := testutil.MockRows(userColumns...).
		AddRow("e1", "Alice", "alice@example.com", "x", "employee", "mgr-1", now, now)

	mockDB.ExpectQuery("WHERE id = $1").
		WithArgs("e1").
		WillReturnRows(rows)

	mockDB.ExpectExec("DELETE FROM users").
		WithArgs("e1").
		WillReturnResult(testutil.RowsAffected(1))

	err := svc.DeleteEmployee(context.Background(), "mgr-1", "e1")
	require.NoError(t, err)

	mockPub.AssertEventPublished(t, messaging.EventEmployeeDeleted)
	mockDB.ExpectationsWereMet(t)
}

// hashCaptor matches any bcrypt-looking argument and records it
type hashCaptor struct {
	dst *string
}

func (h hashCaptor) Match(v driver.Value) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	*h.dst = s
	return len(s) > 0
}
