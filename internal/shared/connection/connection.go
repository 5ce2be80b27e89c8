package connection

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const retryDelay = 5 * time.Second

type PostgresConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

func (c PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode,
	)
}

func ConnectGORMWithRetry(cfg PostgresConfig, maxRetries int) (*gorm.DB, error) {
	log := zap.L().Named("connection.postgres")
	var lastErr error

	for i := 1; i <= maxRetries; i++ {
		db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
			SkipDefaultTransaction: true,
			Logger:                 gormlogger.Default.LogMode(gormlogger.Warn),
		})
		if err != nil {
			lastErr = err
			log.Warn("gorm open failed", zap.Int("attempt", i), zap.Int("max", maxRetries), zap.Error(err))
			time.Sleep(retryDelay)
			continue
		}

		sqlDB, err := db.DB()
		if err != nil {
			lastErr = err
			log.Warn("get sql.DB failed", zap.Int("attempt", i), zap.Error(err))
			time.Sleep(retryDelay)
			continue
		}

		if err := sqlDB.Ping(); err != nil {
			lastErr = err
			log.Warn("db ping failed", zap.Int("attempt", i), zap.Int("max", maxRetries), zap.Error(err))
			time.Sleep(retryDelay)
			continue
		}

		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(time.Hour)

		log.Info("connected to postgres", zap.String("host", cfg.Host), zap.String("db", cfg.Name))
		return db, nil
	}

	return nil, fmt.Errorf("database connection failed after %d retries: %w", maxRetries, lastErr)
}

func ConnectRedisWithRetry(addr string, maxRetries int) (*redis.Client, error) {
	log := zap.L().Named("connection.redis")
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	var lastErr error
	for i := 1; i <= maxRetries; i++ {
		err := rdb.Ping(context.Background()).Err()
		if err == nil {
			log.Info("connected to redis", zap.String("addr", addr))
			return rdb, nil
		}
		lastErr = err

		log.Warn("redis ping failed", zap.Int("attempt", i), zap.Int("max", maxRetries), zap.Error(err))
		time.Sleep(retryDelay)
	}

	_ = rdb.Close()
	return nil, fmt.Errorf("redis connection failed after %d retries: %w", maxRetries, lastErr)
}

// ConnectKafkaWithRetry verifies the broker is reachable and returns a writer that routes by
// message topic, so one writer serves every outbox topic.
func ConnectKafkaWithRetry(broker string, maxRetries int) (*kafkago.Writer, error) {
	log := zap.L().Named("connection.kafka")

	var lastErr error
	for i := 1; i <= maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		conn, err := kafkago.DialContext(ctx, "tcp", broker)
		cancel()
		if err == nil {
			_ = conn.Close()
			log.Info("connected to kafka", zap.String("broker", broker))
			return &kafkago.Writer{
				Addr:                   kafkago.TCP(broker),
				Balancer:               &kafkago.Hash{},
				RequiredAcks:           kafkago.RequireAll,
				AllowAutoTopicCreation: true,
			}, nil
		}
		lastErr = err

		log.Warn("kafka dial failed", zap.Int("attempt", i), zap.Int("max", maxRetries), zap.Error(err))
		time.Sleep(retryDelay)
	}

	return nil, fmt.Errorf("kafka connection failed after %d retries: %w", maxRetries, lastErr)
}
