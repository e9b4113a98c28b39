package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"bikeshare/catalog"
	"bikeshare/communication"
	"bikeshare/utils"
)

const (
	defaultConfigFilepath = "./explorer/config/config.yaml"
	configPathEnvVarName  = "BIKESHARE_CONFIG"
	logLevelEnvVarName    = "LOG_LEVEL"
	dataDirEnvVarName     = "DATA_DIR"
	cacheSizeEnvVarName   = "CACHE_SIZE"
)

// CityConfig files of a city. Relative paths are resolved against DataDir
type CityConfig struct {
	File     string `yaml:"file" validate:"required"`
	Stations string `yaml:"stations"`
}

// PublisherConfig where the summary of each analysis is published. Disabled by default
type PublisherConfig struct {
	Enabled        bool                                 `yaml:"enabled"`
	URL            string                               `yaml:"url" validate:"required_if=Enabled true"`
	Queue          communication.QueueDeclarationConfig `yaml:"queue"`
	TimeoutSeconds int                                  `yaml:"timeout_seconds" validate:"gte=0"`
}

type ExplorerConfig struct {
	LogLevel  string                `yaml:"log_level" validate:"required,oneof=trace debug info warn warning error fatal panic"`
	DataDir   string                `yaml:"data_dir" validate:"required"`
	CacheSize int                   `yaml:"cache_size" validate:"gt=0"`
	Cities    map[string]CityConfig `yaml:"cities" validate:"required,min=1,dive"`
	Publisher PublisherConfig       `yaml:"publisher"`
}

// DefaultConfig config used when there is no config file
func DefaultConfig() *ExplorerConfig {
	cities := make(map[string]CityConfig)
	for _, entry := range catalog.DefaultEntries() {
		cities[entry.City] = CityConfig{File: entry.File}
	}

	return &ExplorerConfig{
		LogLevel:  "info",
		DataDir:   ".",
		CacheSize: 3,
		Cities:    cities,
		Publisher: PublisherConfig{
			Queue:          communication.QueueDeclarationConfig{Name: "bikeshare-summaries", Durable: true},
			TimeoutSeconds: 5,
		},
	}
}

// LoadConfig reads the file set in BIKESHARE_CONFIG, or the default path. If the file does not
// exist the default config is used. Environment variables override the file values.
func LoadConfig() (*ExplorerConfig, error) {
	configFilepath := os.Getenv(configPathEnvVarName)
	if configFilepath == "" {
		configFilepath = defaultConfigFilepath
	}

	explorerConfig, err := LoadConfigFromFile(configFilepath)
	if errors.Is(err, os.ErrNotExist) {
		log.Warnf("[config] config file %s not found, using defaults", configFilepath)
		explorerConfig, err = DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	if err = applyEnvOverrides(explorerConfig); err != nil {
		return nil, err
	}

	if err = Validate(explorerConfig); err != nil {
		return nil, err
	}

	return explorerConfig, nil
}

// LoadConfigFromFile parses the yaml file over the default config, so missing keys keep their default value
func LoadConfigFromFile(configFilepath string) (*ExplorerConfig, error) {
	configFile, err := utils.GetConfigFile(configFilepath)
	if err != nil {
		return nil, err
	}

	explorerConfig := DefaultConfig()
	explorerConfig.Cities = nil
	err = yaml.Unmarshal(configFile, explorerConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing explorer config file: %w", err)
	}

	if explorerConfig.Cities == nil {
		explorerConfig.Cities = DefaultConfig().Cities
	}

	return explorerConfig, nil
}

func Validate(explorerConfig *ExplorerConfig) error {
	if err := validator.New().Struct(explorerConfig); err != nil {
		return fmt.Errorf("invalid explorer config: %w", err)
	}
	return nil
}

// CatalogEntries returns the catalog entries described by the config
func (ec *ExplorerConfig) CatalogEntries() []catalog.Entry {
	entries := make([]catalog.Entry, 0, len(ec.Cities))
	for city, cityConfig := range ec.Cities {
		entries = append(entries, catalog.Entry{
			City:         city,
			File:         cityConfig.File,
			StationsFile: cityConfig.Stations,
		})
	}
	return entries
}

func applyEnvOverrides(explorerConfig *ExplorerConfig) error {
	if logLevel := os.Getenv(logLevelEnvVarName); logLevel != "" {
		explorerConfig.LogLevel = strings.ToLower(logLevel)
	}

	if dataDir := os.Getenv(dataDirEnvVarName); dataDir != "" {
		explorerConfig.DataDir = dataDir
	}

	if cacheSize := os.Getenv(cacheSizeEnvVarName); cacheSize != "" {
		size, err := strconv.Atoi(cacheSize)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", cacheSizeEnvVarName, cacheSize, err)
		}
		explorerConfig.CacheSize = size
	}

	return nil
}
