package tradesinkv1

import (
	"context"

	orderbookv1 "github.com/openclob/bookmatch/internal/domain/orderbook/v1"
)

// TradeFields is the header row of the tabular trade output.
var TradeFields = []string{"Buyer", "Seller", "Item", "Quantity", "Price"}

// TradeSink defines the interface for consuming trade-record batches.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=tradesinkv1_mock
type TradeSink interface {
	// WriteTrades writes one batch in match order. A write failure is fatal
	// for the session; the book mutation behind the batch has already been
	// committed and is not rolled back.
	WriteTrades(ctx context.Context, trades []orderbookv1.Trade) error
	// Close flushes and releases the sink.
	Close() error
}
