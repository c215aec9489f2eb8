package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	DefaultEndpoint    = "https://practicum.yandex.ru/api/user_api/homework_statuses/"
	DefaultRetryPeriod = 600 * time.Second
	DefaultHTTPTimeout = 10 * time.Second
)

// ErrMissingEnv is returned by Load when a required variable is empty.
var ErrMissingEnv = errors.New("required environment variable is not set")

// AppConfig holds all configuration for the application
type AppConfig struct {
	PracticumToken string
	TelegramToken  string
	TelegramChatID int64
	Endpoint       string
	TelegramAPIURL string // Optional, telebot default when empty
	RetryPeriod    time.Duration
	HTTPTimeout    time.Duration
	DatabaseURL    string // Optional, enables the delivery journal
	LogLevel       string
	Environment    string
}

// Load reads configuration from environment variables and .env file (if present).
// Every missing required variable is listed in the returned error.
func Load() (*AppConfig, error) {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds the configuration from a lookup function.
func FromEnv(getenv func(string) string) (*AppConfig, error) {
	cfg := &AppConfig{}

	var missing []string
	required := func(name string) string {
		v := strings.TrimSpace(getenv(name))
		if v == "" {
			missing = append(missing, name)
		}
		return v
	}

	cfg.PracticumToken = required("PRACTICUM_TOKEN")
	cfg.TelegramToken = required("TELEGRAM_TOKEN")
	chatIDStr := required("TELEGRAM_CHAT_ID")

	if len(missing) > 0 {
		return nil, errors.Wrapf(ErrMissingEnv, "%s", strings.Join(missing, ", "))
	}

	var err error
	cfg.TelegramChatID, err = strconv.ParseInt(chatIDStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
	}

	cfg.Endpoint = getenv("PRACTICUM_ENDPOINT")
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}

	cfg.TelegramAPIURL = getenv("TELEGRAM_API_URL")

	cfg.RetryPeriod, err = durationOr(getenv("RETRY_PERIOD"), DefaultRetryPeriod)
	if err != nil {
		return nil, fmt.Errorf("invalid RETRY_PERIOD: %w", err)
	}
	cfg.HTTPTimeout, err = durationOr(getenv("HTTP_TIMEOUT"), DefaultHTTPTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}

	cfg.DatabaseURL = getenv("DATABASE_URL")

	cfg.LogLevel = strings.ToLower(getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	return cfg, nil
}

func durationOr(raw string, def time.Duration) (time.Duration, error) {
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", d)
	}
	return d, nil
}
