package config

import (
	"errors"
	"time"
)

type QueueConfig struct {
	User             string        `mapstructure:"user"`
	Password         string        `mapstructure:"password"`
	Url              string        `mapstructure:"url"`
	Exchange         string        `mapstructure:"exchange"`
	PublishTimeout   time.Duration `mapstructure:"publish-timeout"`
	MaxRetryAttempts uint          `mapstructure:"max-retry-attempts"`
	RetryInterval    time.Duration `mapstructure:"retry-interval"`
}

func (cfg *QueueConfig) Validate() error {
	if cfg.User == "" {
		return errors.New("user is required")
	}

	if cfg.Password == "" {
		return errors.New("password is required")
	}

	if cfg.Url == "" {
		return errors.New("url is required")
	}

	if cfg.Exchange == "" {
		return errors.New("exchange is required")
	}

	if cfg.PublishTimeout <= 0 {
		return errors.New("publish-timeout must be positive")
	}

	if cfg.MaxRetryAttempts == 0 {
		return errors.New("max-retry-attempts must be positive")
	}

	if cfg.RetryInterval <= 0 {
		return errors.New("retry-interval must be positive")
	}

	return nil
}
