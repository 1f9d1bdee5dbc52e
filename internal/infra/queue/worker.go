package queue

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"github.com/construction-sites/crm/internal/entity"
	"github.com/construction-sites/crm/internal/monitoring"
)

// MaxDeliveryAttempts bounds retries before a notification is dead-lettered.
const MaxDeliveryAttempts = 3

// NotificationMailer sends the actual email for a queued notification.
type NotificationMailer interface {
	SendSignedNotification(payload NotificationPayload) error
}

// Worker drains the notification queue and delivers emails with bounded
// retry. The durable write that produced the message already succeeded, so
// nothing here can fail the originating request.
type Worker struct {
	Channel    *amqp.Channel
	Mailer     NotificationMailer
	Agreements entity.AgreementRepositoryInterface
	Producer   ProducerInterface
}

func NewWorker(ch *amqp.Channel, mailer NotificationMailer, agreements entity.AgreementRepositoryInterface, producer ProducerInterface) *Worker {
	return &Worker{
		Channel:    ch,
		Mailer:     mailer,
		Agreements: agreements,
		Producer:   producer,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer tag
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register queue consumer")
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload NotificationPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Error().Err(err).Msg("worker: dropping malformed message")
				// Malformed message, reject without requeue so it can't wedge the queue.
				d.Nack(false, false)
				continue
			}

			w.handle(context.Background(), payload, d)
		}
	}()

	log.Info().Str("queue", queueName).Msg("notification worker running")
	<-forever
}

func (w *Worker) handle(ctx context.Context, payload NotificationPayload, d amqp.Delivery) {
	err := w.Process(ctx, payload)
	if err == nil {
		monitoring.RecordNotificationDelivery("sent")
		d.Ack(false)
		return
	}

	log.Warn().Err(err).
		Str("slug", payload.Slug).
		Int("attempts", payload.Attempts).
		Msg("worker: notification delivery failed")

	if payload.Attempts+1 < MaxDeliveryAttempts {
		payload.Attempts++
		if pubErr := w.Producer.PublishNotification(ctx, payload); pubErr != nil {
			log.Error().Err(pubErr).Str("slug", payload.Slug).Msg("worker: requeue failed, dead-lettering")
			monitoring.RecordNotificationDelivery("failed")
			d.Nack(false, false)
			return
		}
		monitoring.RecordNotificationDelivery("retried")
		d.Ack(false)
		return
	}

	// Out of retries: dead-letter and record the failure on the agreement.
	monitoring.RecordNotificationDelivery("failed")
	if payload.Slug != "" {
		if markErr := w.Agreements.SetNotifyStatus(ctx, payload.Slug, entity.NotifyFailed); markErr != nil {
			log.Error().Err(markErr).Str("slug", payload.Slug).Msg("worker: failed to mark notify status")
		}
	}
	d.Nack(false, false)
}

// Process delivers a single notification and records its outcome.
func (w *Worker) Process(ctx context.Context, payload NotificationPayload) error {
	switch payload.Kind {
	case KindAgreementSigned:
		if err := w.Mailer.SendSignedNotification(payload); err != nil {
			return err
		}
		if payload.Slug != "" {
			if err := w.Agreements.SetNotifyStatus(ctx, payload.Slug, entity.NotifySent); err != nil {
				log.Error().Err(err).Str("slug", payload.Slug).Msg("worker: failed to mark notify status")
			}
		}
		return nil

	default:
		log.Warn().Str("kind", payload.Kind).Msg("worker: unknown notification kind, dropping")
		return nil
	}
}
