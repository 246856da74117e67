package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config aggregates application configuration values.
type Config struct {
	Logging     LoggingConfig
	Output      OutputConfig
	Kafka       KafkaConfig
	DatabaseURL string // enables the postgres snapshot sink when set
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level  string
	Format string // console|json
}

// OutputConfig controls the table printed on stdout.
type OutputConfig struct {
	Format string // csv|json|yaml
}

// KafkaConfig enables the snapshot publisher when Brokers is non-empty.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

const (
	defaultLoggingLevel  = "warn"
	defaultLoggingFormat = "console"
	defaultOutputFormat  = "csv"
	defaultKafkaTopic    = "account_snapshotted"
)

// Load reads a .env file from the working directory when one exists, then
// builds the configuration from environment variables, applying defaults.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}
	return FromEnv(), nil
}

// FromEnv builds the configuration from the current environment only.
func FromEnv() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  valueOrDefault("LOG_LEVEL", defaultLoggingLevel),
			Format: valueOrDefault("LOG_FORMAT", defaultLoggingFormat),
		},
		Output: OutputConfig{
			Format: strings.ToLower(valueOrDefault("LEDGER_OUTPUT_FORMAT", defaultOutputFormat)),
		},
		Kafka: KafkaConfig{
			Brokers: splitList(os.Getenv("KAFKA_BROKERS")),
			Topic:   valueOrDefault("KAFKA_TOPIC", defaultKafkaTopic),
		},
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
}

func valueOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
