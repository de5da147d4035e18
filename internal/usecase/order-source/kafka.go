package ordersource

import (
	"context"
	"strings"

	ordersourcev1 "github.com/openclob/bookmatch/internal/domain/order-source/v1"
	orderbookv1 "github.com/openclob/bookmatch/internal/domain/orderbook/v1"
	"github.com/openclob/bookmatch/pkg/config"
	"github.com/openclob/bookmatch/pkg/errors"
	"github.com/openclob/bookmatch/pkg/logger"
	"github.com/segmentio/kafka-go"
)

// KafkaSource consumes order records from a Kafka topic, one CSV-form record
// per message in the fixed field order Customer,Item,Side,Quantity,Price.
type KafkaSource struct {
	kafkaReader *kafka.Reader
	logger      logger.Interface
}

// NewKafkaSource creates a Kafka reader for consuming order records.
func NewKafkaSource(cfg config.KafkaConfig, log logger.Interface) *KafkaSource {
	kafkaReader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     cfg.Brokers,
		Topic:       cfg.Topic,
		GroupID:     cfg.GroupID,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafka.FirstOffset,
	})

	return &KafkaSource{
		kafkaReader: kafkaReader,
		logger:      log,
	}
}

// logError is a helper method to log errors consistently
func (s *KafkaSource) logError(err error, operation string) {
	s.logger.Error(err,
		logger.Field{Key: "error", Value: err.Error()},
		logger.Field{Key: "operation", Value: operation},
	)
}

// Next reads a message from the Kafka topic and parses it as an order record.
// An empty message value signals end of stream.
func (s *KafkaSource) Next(ctx context.Context) (orderbookv1.OrderRequest, error) {
	var req orderbookv1.OrderRequest

	msg, err := s.kafkaReader.ReadMessage(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return req, ordersourcev1.ErrEndOfStream
		}
		s.logError(err, "ReadMessage")
		return req, errors.NewTracer(errors.SourceReadError).Wrap(err)
	}

	line := strings.TrimSpace(string(msg.Value))
	if line == "" {
		return req, ordersourcev1.ErrEndOfStream
	}

	req, err = ordersourcev1.ParseRecord(line)
	if err != nil {
		s.logError(err, "ParseRecord")
		return req, err
	}

	s.logger.Debug("read order record",
		logger.Field{Key: "customer", Value: req.Customer},
		logger.Field{Key: "instrument", Value: req.Instrument},
		logger.Field{Key: "side", Value: req.Side},
		logger.Field{Key: "quantity", Value: req.Quantity},
		logger.Field{Key: "price", Value: req.Price},
		logger.Field{Key: "offset", Value: msg.Offset},
	)

	return req, nil
}

// Close properly closes the Kafka reader.
func (s *KafkaSource) Close() error {
	if err := s.kafkaReader.Close(); err != nil {
		s.logError(err, "Close")
		return err
	}
	return nil
}
