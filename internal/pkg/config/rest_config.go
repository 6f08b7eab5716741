package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
)

// PortEnv overrides RestConfig.Port when set.
const PortEnv = "PORT"

// RestConfig is the configuration of the REST service.
type RestConfig struct {
	Port     string           `yaml:"port" validate:"required,numeric"`
	Logger   LoggerSettings   `yaml:"logger"`
	Database DatabaseSettings `yaml:"database"`
	Cipher   CipherSettings   `yaml:"cipher"`
}

// LoadRestConfig reads a RestConfig from a YAML file. Unknown keys are rejected.
func LoadRestConfig(path string) (*RestConfig, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Printf("warning: failed to close config file: %v\n", err)
		}
	}()

	cfg := &RestConfig{}
	if err := yaml.NewDecoder(file, yaml.Strict()).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}
	cfg.Logger.applyDefaults()
	cfg.Cipher.applyDefaults()

	if port := os.Getenv(PortEnv); port != "" {
		cfg.Port = port
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the whole configuration tree.
func (c *RestConfig) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	return c.Cipher.Validate()
}
