package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	SlackBotToken      string `envconfig:"SLACK_BOT_TOKEN" required:"true"`
	SlackSigningSecret string `envconfig:"SLACK_SIGNING_SECRET" required:"true"`
	DatabasePath       string `envconfig:"DATABASE_PATH" default:"./shift-notify.db"`
	Port               string `envconfig:"PORT" default:"3000"`
	LogLevel           string `envconfig:"LOG_LEVEL" default:"info"` // debug|info|warn|error

	// DefaultTZ applies to requesters whose Slack profile has no timezone
	DefaultTZ string `envconfig:"DEFAULT_TZ" default:"Europe/Kyiv"`
	// DeliveryPolicy is abort|continue
	DeliveryPolicy string `envconfig:"DELIVERY_POLICY" default:"abort"`

	SES SESConfig
}

// SESConfig configures the optional email copy. Email stays disabled without FromAddress.
type SESConfig struct {
	Region      string `envconfig:"AWS_REGION" default:"eu-central-1"`
	AccessKey   string `envconfig:"AWS_ACCESS_KEY_ID"`
	SecretKey   string `envconfig:"AWS_SECRET_ACCESS_KEY"`
	FromAddress string `envconfig:"SES_FROM_ADDRESS"`
}

// Enabled reports whether email delivery is configured
func (c SESConfig) Enabled() bool {
	return c.FromAddress != ""
}

// Load reads an optional .env file and then the environment into Config.
// The returned bool tells whether a .env file was found.
func Load() (*Config, bool, error) {
	dotenv := godotenv.Load() == nil

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, dotenv, err
	}
	return &cfg, dotenv, nil
}
