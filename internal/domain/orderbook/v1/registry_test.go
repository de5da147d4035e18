package orderbookv1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_GetOrCreate(t *testing.T) {
	registry := NewRegistry()
	assert.Equal(t, 0, registry.Len())

	ibm := registry.GetOrCreate("IBM")
	require.NotNil(t, ibm)
	assert.Equal(t, "IBM", ibm.Instrument())
	assert.Equal(t, 1, registry.Len())

	t.Run("same instrument returns same book", func(t *testing.T) {
		again := registry.GetOrCreate("IBM")
		assert.Same(t, ibm, again)
		assert.Equal(t, 1, registry.Len())
	})

	t.Run("distinct instruments get distinct books", func(t *testing.T) {
		amzn := registry.GetOrCreate("AMZN")
		assert.NotSame(t, ibm, amzn)
		assert.Equal(t, 2, registry.Len())
	})
}

func TestRegistry_Get(t *testing.T) {
	registry := NewRegistry()

	assert.Nil(t, registry.Get("IBM"))
	assert.Equal(t, 0, registry.Len())

	book := registry.GetOrCreate("IBM")
	assert.Same(t, book, registry.Get("IBM"))
}

func TestRegistry_BooksAreIsolated(t *testing.T) {
	registry := NewRegistry()
	ibm := registry.GetOrCreate("IBM")
	amzn := registry.GetOrCreate("AMZN")

	ibm.Match(NewOrder(10, 100, "Jane", ibm.NextSequence()), true)
	trades := amzn.Match(NewOrder(10, 90, "Bob", amzn.NextSequence()), false)

	assert.Empty(t, trades)
	assert.Equal(t, 1, ibm.Depth())
	assert.Equal(t, 1, amzn.Depth())
}
