package tradesink

import (
	"context"
	"fmt"

	orderbookv1 "github.com/openclob/bookmatch/internal/domain/orderbook/v1"
	"github.com/openclob/bookmatch/pkg/config"
	"github.com/openclob/bookmatch/pkg/errors"
	"github.com/openclob/bookmatch/pkg/logger"
	"github.com/oklog/ulid/v2"
	"github.com/segmentio/kafka-go"
)

// KafkaSink publishes one message per trade in the CSV wire form, keyed by a
// fresh ULID so downstream consumers can dedupe replays.
type KafkaSink struct {
	kafkaWriter *kafka.Writer
	logger      logger.Interface
}

// NewKafkaSink creates a Kafka writer for publishing trades.
func NewKafkaSink(cfg config.KafkaConfig, log logger.Interface) *KafkaSink {
	kafkaWriter := kafka.NewWriter(kafka.WriterConfig{
		Brokers: cfg.Brokers,
		Topic:   cfg.Topic,
	})

	return &KafkaSink{
		kafkaWriter: kafkaWriter,
		logger:      log,
	}
}

// WriteTrades publishes the batch in match order as a single write.
func (s *KafkaSink) WriteTrades(ctx context.Context, trades []orderbookv1.Trade) error {
	msgs := make([]kafka.Message, 0, len(trades))
	for _, trade := range trades {
		msgs = append(msgs, kafka.Message{
			Key:   []byte(ulid.Make().String()),
			Value: []byte(encodeTrade(trade)),
		})
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msgs...); err != nil {
		s.logger.Error(err,
			logger.Field{Key: "operation", Value: "WriteTrades"},
			logger.Field{Key: "batchSize", Value: len(trades)},
		)
		return errors.NewTracer(errors.SinkWriteError).Wrap(err)
	}
	return nil
}

// Close closes the Kafka writer.
func (s *KafkaSink) Close() error {
	return s.kafkaWriter.Close()
}

// encodeTrade renders a trade in the fixed field order Buyer,Seller,Item,Quantity,Price.
func encodeTrade(trade orderbookv1.Trade) string {
	return fmt.Sprintf("%s,%s,%s,%d,%d",
		trade.Buyer, trade.Seller, trade.Instrument, trade.Quantity, trade.Price)
}
