package ordersource

import (
	"bufio"
	"context"
	"os"
	"strings"
	"syscall"
	"time"

	ordersourcev1 "github.com/openclob/bookmatch/internal/domain/order-source/v1"
	orderbookv1 "github.com/openclob/bookmatch/internal/domain/orderbook/v1"
	"github.com/openclob/bookmatch/pkg/errors"
	"github.com/openclob/bookmatch/pkg/logger"
)

// PipeSource reads newline-delimited order records from a named FIFO, for
// use with a streaming order simulator. The transport may be unavailable at
// startup, so opening is retried with a fixed backoff.
type PipeSource struct {
	pipe    *os.File
	scanner *bufio.Scanner
	logger  logger.Interface
}

// NewPipeSource creates the FIFO if absent and opens it for reading. The
// open blocks until a writer connects.
func NewPipeSource(name string, retries int, backoff time.Duration, log logger.Interface) (*PipeSource, error) {
	if _, err := os.Stat(name); os.IsNotExist(err) {
		if err := syscall.Mkfifo(name, 0o666); err != nil {
			return nil, errors.NewTracer(errors.SourceUnavailableError).Wrap(err)
		}
	}

	var pipe *os.File
	var err error
	for attempt := 0; ; attempt++ {
		pipe, err = os.OpenFile(name, os.O_RDONLY, 0)
		if err == nil {
			break
		}
		if attempt >= retries {
			return nil, errors.NewTracer(errors.SourceUnavailableError).Wrap(err)
		}
		log.Warn("order pipe unavailable, retrying",
			logger.Field{Key: "pipe", Value: name},
			logger.Field{Key: "attempt", Value: attempt + 1},
			logger.Field{Key: "backoff", Value: backoff.String()},
		)
		time.Sleep(backoff)
	}

	return &PipeSource{
		pipe:    pipe,
		scanner: bufio.NewScanner(pipe),
		logger:  log,
	}, nil
}

// Next returns the next order record from the pipe. An empty record or a
// closed pipe signals end of stream.
func (s *PipeSource) Next(ctx context.Context) (orderbookv1.OrderRequest, error) {
	var req orderbookv1.OrderRequest

	if err := ctx.Err(); err != nil {
		return req, err
	}

	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			s.logger.Error(err, logger.Field{Key: "operation", Value: "ReadLine"})
			return req, errors.NewTracer(errors.SourceReadError).Wrap(err)
		}
		return req, ordersourcev1.ErrEndOfStream
	}

	line := strings.TrimSpace(s.scanner.Text())
	s.logger.Debug("read order line", logger.Field{Key: "line", Value: line})
	if line == "" {
		return req, ordersourcev1.ErrEndOfStream
	}
	return ordersourcev1.ParseRecord(line)
}

// Close closes the pipe.
func (s *PipeSource) Close() error {
	return s.pipe.Close()
}
