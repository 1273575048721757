package communication

import (
	"context"
	"fmt"
	"os"

	amqp "github.com/rabbitmq/amqp091-go"
)

// RabbitURLEnvVarName environment variable read when no URL is given
const RabbitURLEnvVarName = "RABBIT_URL"

type RabbitMQ struct {
	connection       *amqp.Connection
	channel          *amqp.Channel
	publishingConfig PublishingConfig
}

// NewRabbitMQ constructor for RabbitMQ. This function returns a RabbitMQ
// with connections already established. If url is empty RABBIT_URL is used.
func NewRabbitMQ(url string, publishingConfig PublishingConfig) (*RabbitMQ, error) {
	if url == "" {
		url = os.Getenv(RabbitURLEnvVarName)
	}
	if url == "" {
		return nil, fmt.Errorf("error connecting to RabbitMQ: %s is not set", RabbitURLEnvVarName)
	}

	connection, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("error connecting to RabbitMQ: %w", err)
	}

	channel, err := connection.Channel()
	if err != nil {
		_ = connection.Close()
		return nil, fmt.Errorf("error opening RabbitMQ channel: %w", err)
	}

	if publishingConfig.ContentType == "" {
		publishingConfig.ContentType = "application/json"
	}

	return &RabbitMQ{
		connection:       connection,
		channel:          channel,
		publishingConfig: publishingConfig,
	}, nil
}

// DeclareExchanges declare exchanges based on the slice of configs
func (r *RabbitMQ) DeclareExchanges(exchangesConfig []ExchangeDeclarationConfig) error {
	for idx := range exchangesConfig {
		exchangeName := exchangesConfig[idx].Name
		err := r.channel.ExchangeDeclare(
			exchangeName,
			exchangesConfig[idx].Type,
			exchangesConfig[idx].Durable,
			exchangesConfig[idx].AutoDeleted,
			exchangesConfig[idx].Internal,
			exchangesConfig[idx].NoWait,
			nil,
		)

		if err != nil {
			return fmt.Errorf("error declaring exchange %s: %w", exchangeName, err)
		}
	}
	return nil
}

// PublishMessageInExchange publish a message in a given exchange with a given routing key
func (r *RabbitMQ) PublishMessageInExchange(ctx context.Context, exchange string, routingKey string, message []byte) error {
	publishing := amqp.Publishing{
		ContentType: r.publishingConfig.ContentType,
		Body:        message,
	}
	if r.publishingConfig.Persistent {
		publishing.DeliveryMode = amqp.Persistent
	}

	return r.channel.PublishWithContext(ctx,
		exchange,
		routingKey,
		r.publishingConfig.Mandatory,
		r.publishingConfig.Immediate,
		publishing,
	)
}

// KillBadBunny close RabbitMQ's connection and channel
func (r *RabbitMQ) KillBadBunny() error {
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
