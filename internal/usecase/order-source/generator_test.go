package ordersource

import (
	"context"
	"testing"

	ordersourcev1 "github.com/openclob/bookmatch/internal/domain/order-source/v1"
	orderbookv1 "github.com/openclob/bookmatch/internal/domain/orderbook/v1"
	"github.com/openclob/bookmatch/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGeneratorConfig() config.GeneratorConfig {
	return config.GeneratorConfig{
		Count:       50,
		Seed:        1,
		MinQuantity: 10,
		MaxQuantity: 200,
		MinPrice:    90,
		MaxPrice:    130,
		Instruments: []string{"IBM", "AMZN"},
		Customers:   []string{"Jane", "Bob", "Chris"},
	}
}

func drain(t *testing.T, g *Generator) []orderbookv1.OrderRequest {
	t.Helper()
	ctx := context.Background()
	var out []orderbookv1.OrderRequest
	for {
		req, err := g.Next(ctx)
		if err == ordersourcev1.ErrEndOfStream {
			return out
		}
		require.NoError(t, err)
		out = append(out, req)
	}
}

func TestGenerator_CountAndBounds(t *testing.T) {
	cfg := testGeneratorConfig()
	orders := drain(t, NewGenerator(cfg))

	require.Len(t, orders, cfg.Count)
	for _, req := range orders {
		assert.Contains(t, cfg.Customers, req.Customer)
		assert.Contains(t, cfg.Instruments, req.Instrument)
		assert.Contains(t, []orderbookv1.Side{orderbookv1.SideBuy, orderbookv1.SideSell}, req.Side)
		assert.GreaterOrEqual(t, req.Quantity, cfg.MinQuantity)
		assert.LessOrEqual(t, req.Quantity, cfg.MaxQuantity)
		assert.Zero(t, req.Quantity%10)
		assert.GreaterOrEqual(t, req.Price, cfg.MinPrice)
		assert.LessOrEqual(t, req.Price, cfg.MaxPrice)
	}
}

func TestGenerator_SeedIsReproducible(t *testing.T) {
	cfg := testGeneratorConfig()

	first := drain(t, NewGenerator(cfg))
	second := drain(t, NewGenerator(cfg))
	assert.Equal(t, first, second)

	cfg.Seed = 2
	other := drain(t, NewGenerator(cfg))
	assert.NotEqual(t, first, other)
}

func TestGenerator_ExhaustedStreamStaysEnded(t *testing.T) {
	cfg := testGeneratorConfig()
	cfg.Count = 1
	g := NewGenerator(cfg)

	drain(t, g)
	_, err := g.Next(context.Background())
	assert.ErrorIs(t, err, ordersourcev1.ErrEndOfStream)
}

func TestGenerator_DegenerateRanges(t *testing.T) {
	cfg := testGeneratorConfig()
	cfg.MinQuantity = 10
	cfg.MaxQuantity = 10
	cfg.MinPrice = 100
	cfg.MaxPrice = 100

	for _, req := range drain(t, NewGenerator(cfg)) {
		assert.Equal(t, int64(10), req.Quantity)
		assert.Equal(t, int64(100), req.Price)
	}
}
