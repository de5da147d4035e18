package engine

import (
	"context"
	stderrors "errors"

	ordersourcev1 "github.com/openclob/bookmatch/internal/domain/order-source/v1"
	orderbookv1 "github.com/openclob/bookmatch/internal/domain/orderbook/v1"
	tradesinkv1 "github.com/openclob/bookmatch/internal/domain/trade-sink/v1"
	"github.com/openclob/bookmatch/pkg/errors"
	"github.com/openclob/bookmatch/pkg/logger"
)

// Engine drives the matching core: it reads one order event at a time from
// the source, resolves it fully against the instrument's book (sequence
// assignment, matching, side mutation) and forwards any produced trades to
// the sink as one batch before reading the next event.
type Engine struct {
	registry *orderbookv1.Registry
	source   ordersourcev1.OrderSource
	sink     tradesinkv1.TradeSink
	logger   logger.Interface
	options  *Options

	ordersProcessed int64
	tradesEmitted   int64
}

// New creates an engine with an empty book registry.
func New(
	source ordersourcev1.OrderSource,
	sink tradesinkv1.TradeSink,
	log logger.Interface,
	options *Options,
) *Engine {
	if options == nil {
		options = DefaultOptions()
	}
	return &Engine{
		registry: orderbookv1.NewRegistry(),
		source:   source,
		sink:     sink,
		logger:   log,
		options:  options,
	}
}

// Run processes order events until the source ends, a fatal error occurs or
// ctx is done. Malformed records are rejected before they reach the matching
// core. A sink write failure is fatal: the book mutation behind the batch
// has already been committed, so processing cannot safely continue past it.
func (e *Engine) Run(ctx context.Context) error {
	e.logger.Info("engine started")

	for {
		select {
		case <-ctx.Done():
			e.logStats("engine stopped: context done")
			return ctx.Err()
		default:
		}

		req, err := e.source.Next(ctx)
		if err != nil {
			if stderrors.Is(err, ordersourcev1.ErrEndOfStream) {
				e.logStats("order stream ended")
				return nil
			}
			if isMalformed(err) {
				e.logger.Warn("rejecting malformed order record",
					logger.Field{Key: "error", Value: err.Error()},
				)
				continue
			}
			e.logger.Error(err, logger.Field{Key: "action", Value: "read_order"})
			return err
		}

		if err := e.processOrder(ctx, req); err != nil {
			return err
		}
	}
}

// processOrder resolves a single order event to completion.
func (e *Engine) processOrder(ctx context.Context, req orderbookv1.OrderRequest) error {
	book := e.registry.GetOrCreate(req.Instrument)
	order := orderbookv1.NewOrder(req.Quantity, req.Price, req.Customer, book.NextSequence())
	trades := book.Match(order, req.Side.IsBid())

	e.ordersProcessed++
	e.logger.Debug("order processed",
		logger.Field{Key: "instrument", Value: req.Instrument},
		logger.Field{Key: "customer", Value: req.Customer},
		logger.Field{Key: "side", Value: req.Side},
		logger.Field{Key: "sequence", Value: order.Sequence},
		logger.Field{Key: "trades", Value: len(trades)},
		logger.Field{Key: "depth", Value: book.Depth()},
	)
	if e.options.DepthLogEvery > 0 && e.ordersProcessed%e.options.DepthLogEvery == 0 {
		e.logStats("engine progress")
	}

	if len(trades) == 0 {
		return nil
	}

	if err := e.sink.WriteTrades(ctx, trades); err != nil {
		e.logger.ErrorContext(ctx, err,
			logger.Field{Key: "action", Value: "write_trades"},
			logger.Field{Key: "instrument", Value: req.Instrument},
			logger.Field{Key: "batchSize", Value: len(trades)},
		)
		return err
	}
	e.tradesEmitted += int64(len(trades))
	return nil
}

// logStats reports engine counters.
func (e *Engine) logStats(message string) {
	e.logger.Info(message,
		logger.Field{Key: "ordersProcessed", Value: e.ordersProcessed},
		logger.Field{Key: "tradesEmitted", Value: e.tradesEmitted},
		logger.Field{Key: "booksOpen", Value: e.registry.Len()},
	)
}

// isMalformed reports whether err carries the malformed-record code.
func isMalformed(err error) bool {
	var tracer *errors.ErrorTracer
	if stderrors.As(err, &tracer) {
		return tracer.Code == errors.MalformedRecordError
	}
	return false
}

// OrdersProcessed returns the number of order events resolved so far.
func (e *Engine) OrdersProcessed() int64 {
	return e.ordersProcessed
}

// TradesEmitted returns the number of trade records emitted so far.
func (e *Engine) TradesEmitted() int64 {
	return e.tradesEmitted
}

// Registry exposes the book registry for inspection.
func (e *Engine) Registry() *orderbookv1.Registry {
	return e.registry
}
