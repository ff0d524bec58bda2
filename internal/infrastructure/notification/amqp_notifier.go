package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"billing_insurance/internal/domain/entities"
	"billing_insurance/internal/usecase/interfaces"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var ErrPublishNacked = errors.New("notification publish was not confirmed by the broker")

type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPNotifier publishes notifications to a durable queue and waits for the broker
// confirm of each message.
type AMQPNotifier struct {
	ch       amqpChannel
	confirms <-chan amqp.Confirmation
	queue    string
	log      *zap.Logger
	mu       sync.Mutex
}

var _ interfaces.INotifier = (*AMQPNotifier)(nil)

// NewAMQPNotifier opens a channel, declares the queue and enables publisher confirms.
func NewAMQPNotifier(conn *amqp.Connection, queue string, log *zap.Logger) (*AMQPNotifier, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)
	if err != nil {
		_ = ch.Close()
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		return nil, err
	}

	return newAMQPNotifier(ch, ch.NotifyPublish(make(chan amqp.Confirmation, 1)), queue, log), nil
}

func newAMQPNotifier(ch amqpChannel, confirms <-chan amqp.Confirmation, queue string, log *zap.Logger) *AMQPNotifier {
	return &AMQPNotifier{ch: ch, confirms: confirms, queue: queue, log: log}
}

func (n *AMQPNotifier) Send(ctx context.Context, msg entities.Notification) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	publishing := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Type:         string(msg.Type),
		Body:         body,
	}

	// Confirms arrive in publish order, so one publish is in flight at a time.
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.ch.PublishWithContext(ctx, "", n.queue, false, false, publishing); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	select {
	case confirm, ok := <-n.confirms:
		if !ok {
			return errors.New("notification channel closed")
		}
		if !confirm.Ack {
			return ErrPublishNacked
		}
		n.log.Debug("[notification][amqp] published",
			zap.String("notification_type", string(msg.Type)),
			zap.Uint64("delivery_tag", confirm.DeliveryTag),
		)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (n *AMQPNotifier) Close() error {
	return n.ch.Close()
}
