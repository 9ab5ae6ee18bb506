package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/cetteup/puppybowl/internal/roster"
)

type Config struct {
	API APIConfig `yaml:"api"`
}

type APIConfig struct {
	URL       string            `yaml:"url" validate:"required,url"`
	Cohort    string            `yaml:"cohort"`
	Timeout   time.Duration     `yaml:"timeout" validate:"gte=0"`
	UserAgent string            `yaml:"userAgent"`
	Headers   map[string]string `yaml:"headers"`
}

func (c APIConfig) Roster() roster.Config {
	return roster.Config{
		BaseURL: c.URL,
		Cohort:  c.Cohort,
		Timeout: c.Timeout,
	}
}

func LoadConfig(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	config := Config{
		API: APIConfig{
			URL:       roster.BaseURL,
			Timeout:   roster.DefaultTimeout,
			UserAgent: roster.DefaultUserAgent,
		},
	}
	err = yaml.Unmarshal(content, &config)
	if err != nil {
		return Config{}, err
	}

	if err = validator.New().Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}
