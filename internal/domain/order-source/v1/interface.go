package ordersourcev1

import (
	"context"
	"errors"

	orderbookv1 "github.com/openclob/bookmatch/internal/domain/orderbook/v1"
)

// ErrEndOfStream signals that the source delivered its last record and
// terminated cleanly.
var ErrEndOfStream = errors.New("order source: end of stream")

// OrderSource defines the interface for reading order events from a transport.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=ordersourcev1_mock
type OrderSource interface {
	// Next returns the next order record. It returns ErrEndOfStream when the
	// source terminates cleanly; any other error is fatal for the session.
	Next(ctx context.Context) (orderbookv1.OrderRequest, error)
	// Close releases the underlying transport.
	Close() error
}
