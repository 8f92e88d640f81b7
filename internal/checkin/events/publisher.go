package events

import (
	"context"

	"github.com/fieldtrack/fieldtrack-backend/internal/checkin/domain"
	"github.com/fieldtrack/fieldtrack-backend/pkg/logger"
	"github.com/fieldtrack/fieldtrack-backend/pkg/messaging"
)

// Sink is the transport half of event publishing
type Sink interface {
	Publish(ctx context.Context, eventType string, data interface{}) error
}

// Publisher emits attendance events for check-in lifecycle changes. A nil
// Publisher publishes nothing; the check-in flow never depends on the
// broker being up.
type Publisher struct {
	sink   Sink
	logger *logger.Logger
}

// NewPublisher creates a new attendance event publisher
func NewPublisher(sink Sink, log *logger.Logger) *Publisher {
	return &Publisher{
		sink:   sink,
		logger: log.WithComponent("checkin-events"),
	}
}

// CheckinCreated publishes an attendance.checkin.created event
func (p *Publisher) CheckinCreated(ctx context.Context, checkin *domain.Checkin) {
	if p == nil || p.sink == nil {
		return
	}

	err := p.sink.Publish(ctx, messaging.EventCheckinCreated, messaging.CheckinCreatedEvent{
		CheckinID:          checkin.ID,
		EmployeeID:         checkin.EmployeeID,
		ClientID:           checkin.ClientID,
		CheckinTime:        checkin.CheckinTime,
		DistanceFromClient: checkin.DistanceFromClient,
	})
	if err != nil {
		p.logger.Error().Err(err).Str("checkin_id", checkin.ID).Msg("failed to publish checkin created event")
	}
}

// CheckinCompleted publishes an attendance.checkin.completed event
func (p *Publisher) CheckinCompleted(ctx context.Context, checkin *domain.Checkin) {
	if p == nil || p.sink == nil {
		return
	}
	if checkin.CheckoutTime == nil {
		return
	}

	err := p.sink.Publish(ctx, messaging.EventCheckinCompleted, messaging.CheckinCompletedEvent{
		CheckinID:    checkin.ID,
		EmployeeID:   checkin.EmployeeID,
		ClientID:     checkin.ClientID,
		CheckinTime:  checkin.CheckinTime,
		CheckoutTime: *checkin.CheckoutTime,
	})
	if err != nil {
		p.logger.Error().Err(err).Str("checkin_id", checkin.ID).Msg("failed to publish checkin completed event")
	}
}
