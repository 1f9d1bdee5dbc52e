package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const KindAgreementSigned = "agreement-signed"

// NotificationPayload is the message the delivery worker turns into an email.
type NotificationPayload struct {
	Kind string `json:"kind"`
	Slug string `json:"slug"`

	BusinessName string    `json:"business_name"`
	ClientName   string    `json:"client_name"`
	MonthlyFee   int       `json:"monthly_fee"`
	SignedFromIP string    `json:"signed_from_ip"`
	SignedAt     time.Time `json:"signed_at"`

	// Bumped by the worker on each redelivery
	Attempts int `json:"attempts"`
}

type ProducerInterface interface {
	PublishNotification(ctx context.Context, payload NotificationPayload) error
}

type Producer struct {
	Ch *amqp.Channel
}

func NewProducer(ch *amqp.Channel) *Producer {
	return &Producer{Ch: ch}
}

func (p *Producer) PublishNotification(ctx context.Context, payload NotificationPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}
	return nil
}
