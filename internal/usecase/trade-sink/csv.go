package tradesink

import (
	"context"
	"encoding/csv"
	"os"
	"strconv"

	orderbookv1 "github.com/openclob/bookmatch/internal/domain/orderbook/v1"
	tradesinkv1 "github.com/openclob/bookmatch/internal/domain/trade-sink/v1"
	"github.com/openclob/bookmatch/pkg/errors"
	"github.com/openclob/bookmatch/pkg/logger"
)

// CSVSink writes trades as tabular rows under the header
// Buyer,Seller,Item,Quantity,Price. Batches are flushed as they arrive so a
// crash loses at most the batch being written.
type CSVSink struct {
	file   *os.File
	writer *csv.Writer
	logger logger.Interface
}

// NewCSVSink truncates any previous trades file at path and writes the header.
func NewCSVSink(path string, log logger.Interface) (*CSVSink, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, errors.NewTracer(errors.SinkWriteError).Wrap(err)
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(tradesinkv1.TradeFields); err != nil {
		file.Close()
		return nil, errors.NewTracer(errors.SinkWriteError).Wrap(err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		file.Close()
		return nil, errors.NewTracer(errors.SinkWriteError).Wrap(err)
	}

	return &CSVSink{
		file:   file,
		writer: writer,
		logger: log,
	}, nil
}

// WriteTrades appends one row per trade, preserving batch order.
func (s *CSVSink) WriteTrades(ctx context.Context, trades []orderbookv1.Trade) error {
	for _, trade := range trades {
		row := []string{
			trade.Buyer,
			trade.Seller,
			trade.Instrument,
			strconv.FormatInt(trade.Quantity, 10),
			strconv.FormatInt(trade.Price, 10),
		}
		if err := s.writer.Write(row); err != nil {
			s.logger.Error(err, logger.Field{Key: "operation", Value: "WriteTrade"})
			return errors.NewTracer(errors.SinkWriteError).Wrap(err)
		}
	}

	s.writer.Flush()
	if err := s.writer.Error(); err != nil {
		s.logger.Error(err, logger.Field{Key: "operation", Value: "FlushTrades"})
		return errors.NewTracer(errors.SinkWriteError).Wrap(err)
	}
	return nil
}

// Close flushes pending rows and closes the file.
func (s *CSVSink) Close() error {
	s.writer.Flush()
	if err := s.writer.Error(); err != nil {
		s.file.Close()
		return errors.NewTracer(errors.SinkWriteError).Wrap(err)
	}
	return s.file.Close()
}
