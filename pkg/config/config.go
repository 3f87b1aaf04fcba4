package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration values. Loaded once at process
// start and treated as immutable afterwards; credentials never live in source.
type Config struct {
	Port string `env:"PORT" envDefault:"3001"`

	SMTPHost     string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME,required"`
	SMTPPassword string `env:"SMTP_PASSWORD,required"`

	// SenderAddress is the From header on every outbound email.
	// InternalRecipient receives the internal copy of each approval.
	SenderAddress     string `env:"MAIL_SENDER"`
	InternalRecipient string `env:"MAIL_INTERNAL_RECIPIENT"`

	// DeveloperSignaturePath points at the fixed, pre-supplied developer
	// signature image embedded in contract sends.
	DeveloperSignaturePath string `env:"DEVELOPER_SIGNATURE_PATH" envDefault:"static/sign.jpg"`

	// SendTimeout bounds every transport call; expiry surfaces as a
	// transport failure.
	SendTimeout time.Duration `env:"MAIL_SEND_TIMEOUT" envDefault:"30s"`
}

// LoadConfig reads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	if cfg.SenderAddress == "" {
		cfg.SenderAddress = cfg.SMTPUsername
	}
	if cfg.InternalRecipient == "" {
		cfg.InternalRecipient = cfg.SenderAddress
	}
	return cfg, nil
}
