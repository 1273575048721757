package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/communication"
	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/entities/eof"
	"bikeshare/publisher/config"
	"bikeshare/utils"
)

const (
	defaultTimeout = 5 * time.Second
	reportKey      = "report"
	eofKey         = "eof"
)

// IPublisher sends the reports computed during a session outside the console
type IPublisher interface {
	PublishReport(report *queryresponse.QueryResponse) error
	PublishEOF(eofData *eof.EOFData) error
	Close() error
}

// IMessageBroker is the part of communication.RabbitMQ used by the publisher
type IMessageBroker interface {
	PublishMessageInExchange(ctx context.Context, exchange string, routingKey string, message []byte) error
	KillBadBunny() error
}

// NoopPublisher discards everything, used when publishing is disabled
type NoopPublisher struct{}

func (n NoopPublisher) PublishReport(_ *queryresponse.QueryResponse) error { return nil }
func (n NoopPublisher) PublishEOF(_ *eof.EOFData) error                    { return nil }
func (n NoopPublisher) Close() error                                       { return nil }

// RabbitPublisher publishes reports as JSON in a RabbitMQ exchange
type RabbitPublisher struct {
	broker   IMessageBroker
	exchange string
	timeout  time.Duration
}

func NewRabbitPublisher(broker IMessageBroker, exchange string, timeout time.Duration) *RabbitPublisher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &RabbitPublisher{
		broker:   broker,
		exchange: exchange,
		timeout:  timeout,
	}
}

// NewPublisher returns the publisher described by the config. If RabbitMQ cannot be reached
// a NoopPublisher is returned along with the error, so the caller may warn and go on.
func NewPublisher(publisherConfig config.PublisherConfig) (IPublisher, error) {
	if !publisherConfig.Enabled {
		return NoopPublisher{}, nil
	}

	rabbitMQ, err := communication.NewRabbitMQ(publisherConfig.URL, publisherConfig.Publishing)
	if err != nil {
		return NoopPublisher{}, err
	}

	err = rabbitMQ.DeclareExchanges([]communication.ExchangeDeclarationConfig{publisherConfig.Exchange})
	if err != nil {
		_ = rabbitMQ.KillBadBunny()
		return NoopPublisher{}, err
	}

	timeout := time.Duration(publisherConfig.TimeoutSeconds) * time.Second
	return NewRabbitPublisher(rabbitMQ, publisherConfig.Exchange.Name, timeout), nil
}

// GetReportRoutingKey returns the routing key of a report, eg: report.new_york_city.time-stats
func GetReportRoutingKey(city string, reportType string) string {
	return fmt.Sprintf("%s.%s.%s", reportKey, utils.GetRoutingKeyPart(city), utils.GetRoutingKeyPart(reportType))
}

// GetEOFRoutingKey returns the routing key of the EOF of a session iteration, eg: eof.<session>.chicago
func GetEOFRoutingKey(sessionID string, city string) string {
	return fmt.Sprintf("%s.%s.%s", eofKey, sessionID, utils.GetRoutingKeyPart(city))
}

func (p *RabbitPublisher) PublishReport(report *queryresponse.QueryResponse) error {
	metadata := report.GetMetadata()
	routingKey := GetReportRoutingKey(metadata.GetCity(), metadata.GetType())
	return p.publish(routingKey, report)
}

func (p *RabbitPublisher) PublishEOF(eofData *eof.EOFData) error {
	routingKey := GetEOFRoutingKey(eofData.SessionID, eofData.GetMetadata().GetCity())
	return p.publish(routingKey, eofData)
}

func (p *RabbitPublisher) Close() error {
	return p.broker.KillBadBunny()
}

func (p *RabbitPublisher) publish(routingKey string, message any) error {
	messageBytes, err := json.Marshal(message)
	if err != nil {
		log.Errorf("[component: publisher][method: publish][status: ERROR] error marshalling message with routing key %s: %s", routingKey, err.Error())
		return fmt.Errorf("error marshalling message %s: %w", routingKey, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	err = p.broker.PublishMessageInExchange(ctx, p.exchange, routingKey, messageBytes)
	if err != nil {
		log.Errorf("[component: publisher][method: publish][status: ERROR] error publishing in exchange %s: %s", p.exchange, err.Error())
		return fmt.Errorf("error publishing message %s: %w", routingKey, err)
	}

	log.Debugf("[component: publisher][method: publish][status: OK] message sent with routing key %s", routingKey)
	return nil
}
