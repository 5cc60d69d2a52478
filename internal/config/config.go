package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Service holds the HTTP server settings
type Service struct {
	Environment   string `envconfig:"SERVICE_ENVIRONMENT" default:"development"`
	APIPort       string `envconfig:"SERVICE_API_PORT" default:"8080"`
	Host          string `envconfig:"SERVICE_HOST" default:"localhost:8080"`
	StorageDriver string `envconfig:"SERVICE_STORAGE_DRIVER" default:"postgres"`
	UploadDir     string `envconfig:"SERVICE_UPLOAD_DIR" default:"uploads"`
}

// Postgres holds the event store connection settings
type Postgres struct {
	Host               string `envconfig:"POSTGRES_HOST" default:"localhost"`
	Port               string `envconfig:"POSTGRES_PORT" default:"5432"`
	User               string `envconfig:"POSTGRES_USER" default:"postgres"`
	Password           string `envconfig:"POSTGRES_PASSWORD" default:""`
	Database           string `envconfig:"POSTGRES_DB" default:"whatsevent"`
	SSLMode            string `envconfig:"POSTGRES_SSLMODE" default:"disable"`
	MaxConns           int32  `envconfig:"POSTGRES_MAX_CONNS" default:"10"`
	MinConns           int32  `envconfig:"POSTGRES_MIN_CONNS" default:"2"`
	ConnMaxLifetimeSec int    `envconfig:"POSTGRES_CONN_MAX_LIFETIME_SEC" default:"1800"`
}

// OpenAI holds the settings for the remote answer engine. An empty APIKey
// selects the heuristic engine at bootstrap.
type OpenAI struct {
	APIKey      string  `envconfig:"OPENAI_API_KEY" default:""`
	BaseURL     string  `envconfig:"OPENAI_BASE_URL" default:"https://api.openai.com/v1"`
	Model       string  `envconfig:"OPENAI_MODEL" default:"gpt-3.5-turbo"`
	TimeoutSec  int     `envconfig:"OPENAI_TIMEOUT_SEC" default:"30"`
	Temperature float64 `envconfig:"OPENAI_TEMPERATURE" default:"0.5"`
	MaxTokens   int     `envconfig:"OPENAI_MAX_TOKENS" default:"500"`
}

// Twilio holds the WhatsApp messaging credentials
type Twilio struct {
	AccountSID  string `envconfig:"TWILIO_ACCOUNT_SID" default:""`
	AuthToken   string `envconfig:"TWILIO_AUTH_TOKEN" default:""`
	PhoneNumber string `envconfig:"TWILIO_PHONE_NUMBER" default:""`
}

type Config struct {
	Service  Service
	Postgres Postgres
	OpenAI   OpenAI
	Twilio   Twilio
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
