package tradesink

import (
	"context"
	"encoding/json"

	orderbookv1 "github.com/openclob/bookmatch/internal/domain/orderbook/v1"
	"github.com/openclob/bookmatch/pkg/config"
	"github.com/openclob/bookmatch/pkg/errors"
	"github.com/openclob/bookmatch/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// RedisSink publishes JSON-encoded trades to a Redis channel for live
// downstream consumers (tickers, market-data feeds).
type RedisSink struct {
	client  *redis.Client
	channel string
	logger  logger.Interface
}

// NewRedisSink creates a Redis client publishing to the configured channel.
func NewRedisSink(cfg config.RedisConfig, log logger.Interface) *RedisSink {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &RedisSink{
		client:  client,
		channel: cfg.Channel,
		logger:  log,
	}
}

// WriteTrades publishes each trade of the batch in match order.
func (s *RedisSink) WriteTrades(ctx context.Context, trades []orderbookv1.Trade) error {
	for _, trade := range trades {
		buf, err := json.Marshal(trade)
		if err != nil {
			return errors.NewTracer(errors.SinkWriteError).Wrap(err)
		}
		if err := s.client.Publish(ctx, s.channel, buf).Err(); err != nil {
			s.logger.Error(err,
				logger.Field{Key: "operation", Value: "PublishTrade"},
				logger.Field{Key: "channel", Value: s.channel},
			)
			return errors.NewTracer(errors.SinkWriteError).Wrap(err)
		}
	}
	return nil
}

// Close closes the Redis client.
func (s *RedisSink) Close() error {
	return s.client.Close()
}
