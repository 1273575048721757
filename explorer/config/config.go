package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"bikeshare/dataset"
	"bikeshare/prompt"
	publisherConfig "bikeshare/publisher/config"
	reportersConfig "bikeshare/reporters/factory/config"
	"bikeshare/utils"
)

//go:embed config.yaml
var defaultConfig []byte

// ExplorerConfig configuration of the bikeshare explorer
// + LogLevel: logrus level, logs go to stderr
// + PageSize: rows per page of the raw data browser
// + Input: how many invalid entries are accepted per prompt
type ExplorerConfig struct {
	LogLevel  string                          `yaml:"log_level"`
	PageSize  int                             `yaml:"page_size"`
	Input     prompt.RetryPolicy              `yaml:"input"`
	Dataset   dataset.LoaderConfig            `yaml:"dataset"`
	Reporters reportersConfig.ReportersConfig `yaml:"reporters"`
	Publisher publisherConfig.PublisherConfig `yaml:"publisher"`
}

// LoadConfig returns the embedded config, or the one in configFilepath if it is not empty
func LoadConfig(configFilepath string) (*ExplorerConfig, error) {
	configFile := defaultConfig
	if configFilepath != "" {
		var err error
		configFile, err = utils.GetConfigFile(configFilepath)
		if err != nil {
			return nil, err
		}
	}

	var explorerConfig ExplorerConfig
	err := yaml.Unmarshal(configFile, &explorerConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing explorer config file: %w", err)
	}

	if len(explorerConfig.Dataset.Cities) == 0 {
		return nil, fmt.Errorf("error in explorer config file: no city configured")
	}

	return &explorerConfig, nil
}
