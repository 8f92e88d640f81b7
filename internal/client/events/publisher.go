package events

import (
	"context"

	"github.com/fieldtrack/fieldtrack-backend/internal/client/domain"
	"github.com/fieldtrack/fieldtrack-backend/pkg/logger"
	"github.com/fieldtrack/fieldtrack-backend/pkg/messaging"
)

// Sink is the transport half of event publishing
type Sink interface {
	Publish(ctx context.Context, eventType string, data interface{}) error
}

// Publisher emits directory events for client site changes. A nil Publisher
// publishes nothing.
type Publisher struct {
	sink   Sink
	logger *logger.Logger
}

// NewPublisher creates a new client event publisher
func NewPublisher(sink Sink, log *logger.Logger) *Publisher {
	return &Publisher{
		sink:   sink,
		logger: log.WithComponent("client-events"),
	}
}

// ClientCreated publishes a directory.client.created event
func (p *Publisher) ClientCreated(ctx context.Context, client *domain.Client) {
	if p == nil || p.sink == nil {
		return
	}

	err := p.sink.Publish(ctx, messaging.EventClientCreated, messaging.ClientCreatedEvent{
		ClientID: client.ID,
		Name:     client.Name,
	})
	if err != nil {
		p.logger.Error().Err(err).Str("client_id", client.ID).Msg("failed to publish client created event")
	}
}

// ClientUpdated publishes a directory.client.updated event
func (p *Publisher) ClientUpdated(ctx context.Context, client *domain.Client) {
	if p == nil || p.sink == nil {
		return
	}

	err := p.sink.Publish(ctx, messaging.EventClientUpdated, messaging.ClientCreatedEvent{
		ClientID: client.ID,
		Name:     client.Name,
	})
	if err != nil {
		p.logger.Error().Err(err).Str("client_id", client.ID).Msg("failed to publish client updated event")
	}
}

// ClientDeleted publishes a directory.client.deleted event
func (p *Publisher) ClientDeleted(ctx context.Context, clientID string) {
	if p == nil || p.sink == nil {
		return
	}

	err := p.sink.Publish(ctx, messaging.EventClientDeleted, messaging.ClientDeletedEvent{
		ClientID: clientID,
	})
	if err != nil {
		p.logger.Error().Err(err).Str("client_id", clientID).Msg("failed to publish client deleted event")
	}
}
