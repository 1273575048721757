package config

import "bikeshare/communication"

// PublisherConfig configuration of the report publisher
// + Enabled: when false reports are not published at all
// + URL: RabbitMQ URL, when empty RABBIT_URL is used
// + Exchange: exchange where reports are published
// + Publishing: flags applied to each message
// + TimeoutSeconds: time allowed for each publish
type PublisherConfig struct {
	Enabled        bool                                    `yaml:"enabled"`
	URL            string                                  `yaml:"url"`
	Exchange       communication.ExchangeDeclarationConfig `yaml:"exchange"`
	Publishing     communication.PublishingConfig          `yaml:"publishing"`
	TimeoutSeconds int                                     `yaml:"timeout_seconds"`
}
