package communication

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

type RabbitMQ struct {
	connection *amqp.Connection
	channel    *amqp.Channel
}

// NewRabbitMQ constructor for RabbitMQ. This function returns a RabbitMQ
// with connections already established.
func NewRabbitMQ(url string) (*RabbitMQ, error) {
	connection, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("error connecting to RabbitMQ: %w", err)
	}

	channel, err := connection.Channel()
	if err != nil {
		_ = connection.Close()
		return nil, fmt.Errorf("error opening RabbitMQ channel: %w", err)
	}

	return &RabbitMQ{
		connection: connection,
		channel:    channel,
	}, nil
}

// DeclareNonAnonymousQueues declares non-anonymous queues based on the slice of configs
func (r *RabbitMQ) DeclareNonAnonymousQueues(queuesConfig []QueueDeclarationConfig) error {
	for idx := range queuesConfig {
		queueName := queuesConfig[idx].Name
		_, err := r.channel.QueueDeclare(
			queueName,
			queuesConfig[idx].Durable,
			queuesConfig[idx].DeleteWhenUnused,
			queuesConfig[idx].Exclusive,
			queuesConfig[idx].NoWait,
			nil,
		)

		if err != nil {
			return fmt.Errorf("error declaring queue %s: %w", queueName, err)
		}
	}
	return nil
}

// PublishMessageInQueue publish a message in a given queue
func (r *RabbitMQ) PublishMessageInQueue(ctx context.Context, queueName string, message []byte, contentType string) error {
	return r.channel.PublishWithContext(ctx,
		"",
		queueName,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  contentType,
			Body:         message,
		},
	)
}

// Close closes RabbitMQ's channel and connection
func (r *RabbitMQ) Close() error {
	err := r.channel.Close()
	if err != nil {
		return fmt.Errorf("error closing RabbitMQ channel: %w", err)
	}

	err = r.connection.Close()
	if err != nil {
		return fmt.Errorf("error closing RabbitMQ connection: %w", err)
	}

	return nil
}
