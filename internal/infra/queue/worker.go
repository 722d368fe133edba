package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/leadmarket/internal/infra/http/middleware"
)

// VendorFinder resolves the owning vendor so the worker knows where to send.
type VendorFinder interface {
	FindVendorEmail(ctx context.Context, vendorID string) (email, name string, err error)
}

// MailSender is the delivery channel for vendor notifications.
type MailSender interface {
	SendLeadApproved(to, vendorName, leadTitle string) error
	SendLeadRejected(to, vendorName, leadTitle, reason string) error
}

// Worker consumes notification messages and routes them by kind. It is fully
// decoupled from the HTTP layer and the use cases.
type Worker struct {
	Channel *amqp.Channel
	Vendors VendorFinder
	Mailer  MailSender
}

func NewWorker(ch *amqp.Channel, vendors VendorFinder, mailer MailSender) *Worker {
	return &Worker{Channel: ch, Vendors: vendors, Mailer: mailer}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("[WORKER] failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload NotificationPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("[WORKER] invalid JSON: %s", err)
				// Malformed message. Reject without requeue so it lands in the DLQ.
				d.Nack(false, false)
				continue
			}

			log.Printf("[WORKER] dispatching %s for lead %s", payload.Kind, payload.LeadID)

			if err := w.processMessage(context.Background(), payload); err != nil {
				log.Printf("[WORKER] dispatch failed: %s", err)
				middleware.RecordNotificationError("email")
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf("[WORKER] consuming queue '%s'", queueName)
	<-forever
}

func (w *Worker) processMessage(ctx context.Context, payload NotificationPayload) error {
	email, name, err := w.Vendors.FindVendorEmail(ctx, payload.VendorID)
	if err != nil {
		return err
	}

	switch payload.Kind {
	case KindLeadApproved:
		return w.Mailer.SendLeadApproved(email, name, payload.LeadTitle)

	case KindLeadRejected:
		return w.Mailer.SendLeadRejected(email, name, payload.LeadTitle, payload.Message)

	default:
		// Unknown kind: ack it away instead of cycling through the DLQ.
		log.Printf("[WORKER] unknown notification kind %q, dropping", payload.Kind)
		return nil
	}
}
