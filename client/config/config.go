package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	datasetConfig "bikeshare/dataset/config"
	"bikeshare/utils"
)

const (
	envPrefix       = "BIKESHARE"
	defaultLogLevel = "warn"
	defaultRowsPage = 5
)

// envOverrides values read from the environment. Empty values keep the ones of the config file
type envOverrides struct {
	ConfigFile string `envconfig:"CONFIG_FILE" default:"client/config/config.yaml"`
	LogLevel   string `envconfig:"LOG_LEVEL"`
	DataDir    string `envconfig:"DATA_DIR"`
}

// ClientConfig configuration of the interactive client
// + LogLevel: logrus level, logs are written to stderr
// + RowsPerPage: amount of raw rows shown each time the user asks for them
// + Dataset: cities, files and columns of the datasets
type ClientConfig struct {
	LogLevel    string                      `yaml:"log_level"`
	RowsPerPage int                         `yaml:"rows_per_page"`
	Dataset     datasetConfig.DatasetConfig `yaml:"dataset"`
}

func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		LogLevel:    defaultLogLevel,
		RowsPerPage: defaultRowsPage,
		Dataset:     *datasetConfig.DefaultConfig(),
	}
}

// LoadConfig loads the .env file of the working directory if there is one, reads the config file
// pointed by BIKESHARE_CONFIG_FILE and applies the BIKESHARE_* overrides
func LoadConfig() (*ClientConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	var overrides envOverrides
	if err := envconfig.Process(envPrefix, &overrides); err != nil {
		return nil, fmt.Errorf("error processing environment: %w", err)
	}

	clientConfig, err := LoadConfigFromFile(overrides.ConfigFile)
	if err != nil {
		return nil, err
	}

	clientConfig.applyOverrides(overrides)
	return clientConfig, nil
}

// LoadConfigFromFile reads the YAML file at configFilepath on top of the default config.
// If the file does not exist the default config is returned
func LoadConfigFromFile(configFilepath string) (*ClientConfig, error) {
	clientConfig := DefaultConfig()

	configFile, err := utils.GetConfigFile(configFilepath)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warnf("[config: client][method: LoadConfigFromFile] %s not found, using default config", configFilepath)
		return clientConfig, nil
	}
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(configFile, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing client config file: %w", err)
	}

	if clientConfig.RowsPerPage <= 0 {
		clientConfig.RowsPerPage = defaultRowsPage
	}
	if len(clientConfig.Dataset.Cities) == 0 {
		return nil, fmt.Errorf("error parsing client config file %s: no cities configured", configFilepath)
	}

	return clientConfig, nil
}

func (cc *ClientConfig) applyOverrides(overrides envOverrides) {
	if overrides.LogLevel != "" {
		cc.LogLevel = overrides.LogLevel
	}
	if overrides.DataDir != "" {
		cc.Dataset.DataDir = overrides.DataDir
	}
}
