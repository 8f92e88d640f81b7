package events

import (
	"context"

	"github.com/fieldtrack/fieldtrack-backend/internal/user/domain"
	"github.com/fieldtrack/fieldtrack-backend/pkg/logger"
	"github.com/fieldtrack/fieldtrack-backend/pkg/messaging"
)

// Sink is the transport half of event publishing. Satisfied by
// messaging.Publisher in production and by mocks in tests.
type Sink interface {
	Publish(ctx context.Context, eventType string, data interface{}) error
}

// Publisher emits directory events for user lifecycle changes. A nil
// Publisher is valid and publishes nothing, so the service can run without
// a broker (tests, local development).
type Publisher struct {
	sink   Sink
	logger *logger.Logger
}

// NewPublisher creates a new directory event publisher
func NewPublisher(sink Sink, log *logger.Logger) *Publisher {
	return &Publisher{
		sink:   sink,
		logger: log.WithComponent("user-events"),
	}
}

// EmployeeCreated publishes a directory.employee.created event. Publish
// failures are logged and swallowed: event emission never fails the
// operation that triggered it.
func (p *Publisher) EmployeeCreated(ctx context.Context, user *domain.User) {
	if p == nil || p.sink == nil {
		return
	}

	managerID := ""
	if user.ManagerID != nil {
		managerID = *user.ManagerID
	}

	err := p.sink.Publish(ctx, messaging.EventEmployeeCreated, messaging.EmployeeCreatedEvent{
		EmployeeID: user.ID,
		ManagerID:  managerID,
		Name:       user.Name,
		Email:      user.Email,
	})
	if err != nil {
		p.logger.Error().Err(err).Str("employee_id", user.ID).Msg("failed to publish employee created event")
	}
}

// EmployeeUpdated publishes a directory.employee.updated event
func (p *Publisher) EmployeeUpdated(ctx context.Context, user *domain.User) {
	if p == nil || p.sink == nil {
		return
	}

	managerID := ""
	if user.ManagerID != nil {
		managerID = *user.ManagerID
	}

	err := p.sink.Publish(ctx, messaging.EventEmployeeUpdated, messaging.EmployeeCreatedEvent{
		EmployeeID: user.ID,
		ManagerID:  managerID,
		Name:       user.Name,
		Email:      user.Email,
	})
	if err != nil {
		p.logger.Error().Err(err).Str("employee_id", user.ID).Msg("failed to publish employee updated event")
	}
}

// EmployeeDeleted publishes a directory.employee.deleted event
func (p *Publisher) EmployeeDeleted(ctx context.Context, employeeID string) {
	if p == nil || p.sink == nil {
		return
	}

	err := p.sink.Publish(ctx, messaging.EventEmployeeDeleted, messaging.EmployeeDeletedEvent{
		EmployeeID: employeeID,
	})
	if err != nil {
		p.logger.Error().Err(err).Str("employee_id", employeeID).Msg("failed to publish employee deleted event")
	}
}
