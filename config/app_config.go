package config

import (
	"fmt"
	"strings"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

// SettingsFile is the optional dotenv file read before the process environment.
const SettingsFile = "settings.env"

type AppConfig struct {
	ServerPort string  `env:"SERVER_PORT,default=5643"`
	APIKey     string  `env:"API_KEY"`
	RateLimit  float64 `env:"RATE_LIMIT,default=1"` // Requests per second
	BurstLimit int     `env:"BURST_LIMIT,default=5"` // Burst requests allowed
	LogLevel   string  `env:"LOG_LEVEL,default=info"`
}

// TwilioConfig holds the account credentials and the default sender number.
type TwilioConfig struct {
	AccountSID  string `env:"TWILIO_ACCOUNT_SID"`
	AuthToken   string `env:"TWILIO_AUTH_TOKEN"`
	PhoneNumber string `env:"TWILIO_PHONE_NUMBER"`
}

// HasCredentials reports whether both the account SID and auth token are set.
func (c TwilioConfig) HasCredentials() bool {
	return strings.TrimSpace(c.AccountSID) != "" && strings.TrimSpace(c.AuthToken) != ""
}

// Load reads settings.env if it exists and then the process environment.
// Variables already present in the environment win over the file.
func Load() (*AppConfig, error) {
	_ = godotenv.Load(SettingsFile)

	var cfg AppConfig
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 1
	}
	if cfg.BurstLimit <= 0 {
		cfg.BurstLimit = 5
	}
	if strings.TrimSpace(cfg.ServerPort) == "" {
		cfg.ServerPort = "5643"
	}

	return &cfg, nil
}

// LoadTwilio reads the Twilio settings. It is called per dispatch so that
// credential changes in the environment are picked up without a restart.
func LoadTwilio() (TwilioConfig, error) {
	var cfg TwilioConfig
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return TwilioConfig{}, fmt.Errorf("failed to load twilio config: %w", err)
	}
	return cfg, nil
}
