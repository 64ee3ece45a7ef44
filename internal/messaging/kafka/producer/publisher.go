package producer

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	cartEventsTopic = "cart.events"
	userEventsTopic = "user.events"
)

type CartMutationEvent struct {
	SessionID string `json:"session_id"`
	Op        string `json:"op"`
	ProductID string `json:"product_id,omitempty"`
	Qty       int    `json:"qty"`
}

type UserRegisteredEvent struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Publisher writes domain events to Kafka. All publishes are best
// effort: callers log failures and move on.
type Publisher struct {
	writer *kafka.Writer
	logger *zap.Logger
}

func NewPublisher(writer *kafka.Writer, logger ...*zap.Logger) *Publisher {
	l := zap.L().Named("kafka.publisher")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("kafka.publisher")
	}
	return &Publisher{writer: writer, logger: l}
}

func (p *Publisher) PublishCartMutation(ctx context.Context, ev CartMutationEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: cartEventsTopic,
		Key:   []byte(ev.SessionID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(ev.Op)},
			{Key: "aggregate_type", Value: []byte("cart")},
		},
	})
}

func (p *Publisher) PublishUserRegistered(ctx context.Context, ev UserRegisteredEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: userEventsTopic,
		Key:   []byte(ev.UserID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("USER_REGISTERED")},
			{Key: "aggregate_type", Value: []byte("user")},
		},
	})
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
