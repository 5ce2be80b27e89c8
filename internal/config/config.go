// Package config loads process configuration from the environment (optionally seeded from a
// .env file).
package config

import (
	"fmt"
	"time"

	"go-hrm/internal/shared/connection"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type DatabaseConfig struct {
	Host        string `env:"HOST" envDefault:"localhost"`
	User        string `env:"USER" envDefault:"postgres"`
	Password    string `env:"PASSWORD"`
	Name        string `env:"NAME" envDefault:"hrm"`
	Port        string `env:"PORT" envDefault:"5432"`
	SSLMode     string `env:"SSLMODE" envDefault:"disable"`
	AutoMigrate bool   `env:"AUTO_MIGRATE" envDefault:"false"`
}

func (c DatabaseConfig) Postgres() connection.PostgresConfig {
	return connection.PostgresConfig{
		Host:     c.Host,
		User:     c.User,
		Password: c.Password,
		Name:     c.Name,
		Port:     c.Port,
		SSLMode:  c.SSLMode,
	}
}

type MailConfig struct {
	Host     string `env:"HOST"`
	Port     int    `env:"PORT" envDefault:"587"`
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
	From     string `env:"FROM" envDefault:"no-reply@localhost"`
}

// Enabled reports whether an SMTP relay is configured. Without one, mail is logged and dropped.
func (c MailConfig) Enabled() bool {
	return c.Host != ""
}

type Config struct {
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	Port    string `env:"PORT" envDefault:"3000"`
	OrgName string `env:"ORG_NAME" envDefault:"HRM"`
	AppURL  string `env:"APP_URL" envDefault:"http://localhost:3000"`

	DB DatabaseConfig `envPrefix:"DB_"`

	RedisAddr   string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	KafkaBroker string `env:"KAFKA_BROKER" envDefault:"localhost:9092"`

	JWTSecret      string        `env:"JWT_SECRET,required,notEmpty"`
	JWTExpire      time.Duration `env:"JWT_EXPIRE" envDefault:"72h"`
	AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"24h"`
	BcryptCost     int           `env:"BCRYPT_COST" envDefault:"10"`

	Mail MailConfig `envPrefix:"SMTP_"`

	OutboxPollInterval time.Duration `env:"OUTBOX_POLL_INTERVAL" envDefault:"2s"`
	OutboxBatchSize    int           `env:"OUTBOX_BATCH_SIZE" envDefault:"50"`
	ConsumerGroupID    string        `env:"KAFKA_CONSUMER_GROUP" envDefault:"hrm-notification-consumer"`
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Load reads .env when present, then parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse()
}

func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return Config{}, fmt.Errorf("parse env: BCRYPT_COST must be between 4 and 31, got %d", cfg.BcryptCost)
	}
	return cfg, nil
}
