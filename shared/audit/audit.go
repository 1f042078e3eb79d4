package audit

//go:generate go run go.uber.org/mock/mockgen -source=./audit.go -destination=./mocks/audit_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/yamanfurkan353-eng/lumina/config"
	"github.com/yamanfurkan353-eng/lumina/infras/kafka"
	"github.com/yamanfurkan353-eng/lumina/shared/timezone"
)

// Event records a state-changing action performed through the API.
type Event struct {
	Action     string    `json:"action"`
	Entity     string    `json:"entity"`
	EntityID   string    `json:"entity_id"`
	ActorID    string    `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Detail     any       `json:"detail,omitempty"`
}

type Publisher interface {
	Publish(ctx context.Context, event Event)
}

type kafkaPublisher struct {
	client kafka.Client
	topic  string
}

func NewPublisher(cfg *config.Config, client kafka.Client) Publisher {
	if !cfg.Kafka.Enable {
		log.Info().Msg("Audit publishing disabled")

		return &nopPublisher{}
	}

	return &kafkaPublisher{
		client: client,
		topic:  cfg.Kafka.Topics.Audit,
	}
}

// Publish sends the event asynchronously. Audit delivery never blocks or
// fails the request that produced it.
func (p *kafkaPublisher) Publish(ctx context.Context, event Event) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = timezone.Now()
	}

	go func(ctx context.Context) {
		message := kafka.Message{
			Key:   event.Entity + ":" + event.EntityID,
			Value: event,
		}

		err := p.client.SendMessages(ctx, p.topic, message)
		if err != nil {
			log.Error().Err(err).Str("action", event.Action).Str("entity", event.Entity).Msg("Failed to publish audit event")
		}
	}(context.WithoutCancel(ctx))
}

type nopPublisher struct{}

func (p *nopPublisher) Publish(_ context.Context, _ Event) {}
