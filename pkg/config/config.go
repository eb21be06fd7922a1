package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v7"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort            int           `env:"HTTP_PORT" envDefault:"8080"`
	PostgresDSN         string        `env:"POSTGRES_DSN"`
	PostgresMaxConns    int32         `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
	AuthServiceURL      string        `env:"AUTH_SERVICE_URL"`
	ExpirySweepInterval time.Duration `env:"EXPIRY_SWEEP_INTERVAL" envDefault:"24h"`
	ExpiryWindow        time.Duration `env:"EXPIRY_WINDOW" envDefault:"720h"`
	Kafka               Kafka
	S3                  S3
}

type Kafka struct {
	Brokers         []string `env:"KAFKA_BROKERS"`
	ConsumerID      string   `env:"KAFKA_CONSUMER_ID" envDefault:"passes"`
	PassEventsTopic string   `env:"KAFKA_PASS_EVENTS_TOPIC" envDefault:"pass-events"`
	PhotosTopic     string   `env:"KAFKA_PHOTOS_TOPIC" envDefault:"pass-photos-processed"`
}

type S3 struct {
	Bucket    string `env:"S3_BUCKET"`
	Region    string `env:"S3_REGION" envDefault:"us-east-1"`
	Endpoint  string `env:"S3_ENDPOINT"`
	PathStyle bool   `env:"S3_PATH_STYLE" envDefault:"false"`
}

func New(envPath string) (Config, error) {
	var c Config

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	err = env.Parse(&c)
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
