package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// MustLoad loads the configuration from environment variables and .env file.
func MustLoad[T any](cfg T) {
	_ = godotenv.Load() // Load environment variables from .env file

	env.Must(cfg, env.Parse(cfg))
}

// Load loads the configuration from environment variables and .env file.
func Load[T any](cfg T) error {
	if err := godotenv.Load(); err != nil {
		return err // Return error if .env file loading fails
	}

	if err := env.Parse(cfg); err != nil {
		return err // Return error if environment variable parsing fails
	}

	return nil // Return nil if everything is successful
}

// Config holds the configuration for the application
type Config struct {
	LogLevel string       `env:"LOG_LEVEL" envDefault:"info"`
	Source   SourceConfig `envPrefix:"SOURCE_"`
	Sink     SinkConfig   `envPrefix:"SINK_"`
}

// SourceConfig selects and configures the order source.
type SourceConfig struct {
	Kind        string          `env:"KIND" envDefault:"file"` // file, pipe, kafka, generator
	Path        string          `env:"PATH" envDefault:"orders.csv"`
	PipeName    string          `env:"PIPE_NAME" envDefault:"order_pipe"`
	OpenRetries int             `env:"OPEN_RETRIES" envDefault:"30"`
	OpenBackoff time.Duration   `env:"OPEN_BACKOFF" envDefault:"1s"`
	Kafka       KafkaConfig     `envPrefix:"KAFKA_"`
	Generator   GeneratorConfig `envPrefix:"GEN_"`
}

// SinkConfig selects and configures the trade sink.
type SinkConfig struct {
	Kind  string      `env:"KIND" envDefault:"csv"` // csv, kafka, redis
	Path  string      `env:"PATH" envDefault:"trades.csv"`
	Kafka KafkaConfig `envPrefix:"KAFKA_"`
	Redis RedisConfig `envPrefix:"REDIS_"`
}

// KafkaConfig holds the configuration for Kafka consumer and producer.
type KafkaConfig struct {
	Topic   string   `env:"TOPIC"`
	GroupID string   `env:"GROUP_ID" envDefault:"default_group"`
	Brokers []string `env:"BROKER"`
}

// RedisConfig holds the configuration for the Redis client.
type RedisConfig struct {
	Addr     string `env:"ADDRESS" envDefault:"localhost:6379"`
	Username string `env:"USERNAME" envDefault:""`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB" envDefault:"0"`
	Channel  string `env:"CHANNEL" envDefault:"trades"`
}

// GeneratorConfig bounds the synthetic order generator.
type GeneratorConfig struct {
	Count       int           `env:"COUNT" envDefault:"100"`
	Seed        int64         `env:"SEED" envDefault:"1"`
	MinQuantity int64         `env:"MIN_QUANTITY" envDefault:"10"`
	MaxQuantity int64         `env:"MAX_QUANTITY" envDefault:"200"`
	MinPrice    int64         `env:"MIN_PRICE" envDefault:"90"`
	MaxPrice    int64         `env:"MAX_PRICE" envDefault:"130"`
	Instruments []string      `env:"INSTRUMENTS" envDefault:"IBM,AMZN"`
	Customers   []string      `env:"CUSTOMERS" envDefault:"Jane,Bob,Chris,Mark,Phillip"`
	Delay       time.Duration `env:"DELAY" envDefault:"0s"`
}
