package ordersource

import (
	"context"
	"math/rand"
	"time"

	ordersourcev1 "github.com/openclob/bookmatch/internal/domain/order-source/v1"
	orderbookv1 "github.com/openclob/bookmatch/internal/domain/orderbook/v1"
	"github.com/openclob/bookmatch/pkg/config"
)

// Generator yields a bounded stream of random orders over the configured
// instruments and customers, reproducible under a fixed seed. Quantities are
// drawn in steps of ten within the configured range, prices uniformly.
type Generator struct {
	cfg       config.GeneratorConfig
	rng       *rand.Rand
	remaining int
}

// NewGenerator creates a generator source from its configuration.
func NewGenerator(cfg config.GeneratorConfig) *Generator {
	return &Generator{
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(cfg.Seed)),
		remaining: cfg.Count,
	}
}

// Next returns the next generated order, honoring the configured inter-order
// delay, until the configured count is exhausted.
func (g *Generator) Next(ctx context.Context) (orderbookv1.OrderRequest, error) {
	var req orderbookv1.OrderRequest

	if g.remaining <= 0 {
		return req, ordersourcev1.ErrEndOfStream
	}
	g.remaining--

	if g.cfg.Delay > 0 {
		select {
		case <-ctx.Done():
			return req, ctx.Err()
		case <-time.After(g.cfg.Delay):
		}
	}

	side := orderbookv1.SideBuy
	if g.rng.Intn(2) == 1 {
		side = orderbookv1.SideSell
	}

	return orderbookv1.OrderRequest{
		Customer:   g.cfg.Customers[g.rng.Intn(len(g.cfg.Customers))],
		Instrument: g.cfg.Instruments[g.rng.Intn(len(g.cfg.Instruments))],
		Side:       side,
		Quantity:   10 * g.intInRange(g.cfg.MinQuantity/10, g.cfg.MaxQuantity/10),
		Price:      g.intInRange(g.cfg.MinPrice, g.cfg.MaxPrice),
	}, nil
}

// Close is a no-op; the generator holds no transport.
func (g *Generator) Close() error {
	return nil
}

// intInRange draws uniformly from [min, max], inclusive on both ends.
func (g *Generator) intInRange(min, max int64) int64 {
	if max <= min {
		return min
	}
	return min + g.rng.Int63n(max-min+1)
}
