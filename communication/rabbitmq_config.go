package communication

// ExchangeDeclarationConfig contains the parameters to declare the exchange where reports are published
type ExchangeDeclarationConfig struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Durable     bool   `yaml:"durable"`
	AutoDeleted bool   `yaml:"auto_deleted"`
	Internal    bool   `yaml:"internal"`
	NoWait      bool   `yaml:"no_wait"`
}

// PublishingConfig flags applied to every message published
type PublishingConfig struct {
	Mandatory   bool   `yaml:"mandatory"`
	Immediate   bool   `yaml:"immediate"`
	Persistent  bool   `yaml:"persistent"`
	ContentType string `yaml:"content_type"`
}
