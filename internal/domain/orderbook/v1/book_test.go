package orderbookv1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// submit assigns the next sequence number and matches the order, the way the
// driver does for every incoming order event.
func submit(book *OrderBook, quantity, price int64, customer string, side Side) []Trade {
	order := NewOrder(quantity, price, customer, book.NextSequence())
	return book.Match(order, side.IsBid())
}

// assertNoCross checks the book invariant: either one side is empty or the
// best bid is strictly below the best ask.
func assertNoCross(t *testing.T, book *OrderBook) {
	t.Helper()
	bestBid, bestAsk := book.Bids().Best(), book.Asks().Best()
	if bestBid == nil || bestAsk == nil {
		return
	}
	assert.Less(t, bestBid.Price, bestAsk.Price)
}

func TestOrderBook_EnterOrder(t *testing.T) {
	book := NewOrderBook("IBM")

	trades := submit(book, 10, 100, "Richard", SideBuy)

	assert.Empty(t, trades)
	assert.Equal(t, 1, book.Depth())
}

func TestOrderBook_MatchOrders(t *testing.T) {
	book := NewOrderBook("IBM")
	submit(book, 10, 100, "Richard", SideBuy)

	trades := submit(book, 10, 90, "Henry", SideSell)

	require.Len(t, trades, 1)
	assert.Equal(t, Trade{Buyer: "Richard", Seller: "Henry", Instrument: "IBM", Quantity: 10, Price: 100}, trades[0])
	assert.Equal(t, 0, book.Depth())
}

func TestOrderBook_TimePriorityAtEqualPrice(t *testing.T) {
	t.Run("earlier order entered first", func(t *testing.T) {
		book := NewOrderBook("IBM")
		submit(book, 10, 100, "Richard", SideBuy)
		submit(book, 20, 100, "Bernadine", SideBuy)

		trades := submit(book, 10, 90, "Henry", SideSell)

		require.Len(t, trades, 1)
		assert.Equal(t, Trade{Buyer: "Richard", Seller: "Henry", Instrument: "IBM", Quantity: 10, Price: 100}, trades[0])
		assert.Equal(t, 1, book.Depth())
		assert.Equal(t, "Bernadine", book.Bids().Best().Customer)
	})

	t.Run("earlier order entered second", func(t *testing.T) {
		book := NewOrderBook("IBM")
		submit(book, 20, 100, "Bernadine", SideBuy)
		submit(book, 10, 100, "Richard", SideBuy)

		trades := submit(book, 10, 90, "Henry", SideSell)

		require.Len(t, trades, 1)
		assert.Equal(t, Trade{Buyer: "Bernadine", Seller: "Henry", Instrument: "IBM", Quantity: 10, Price: 100}, trades[0])
		assert.Equal(t, 2, book.Depth())
	})
}

func TestOrderBook_PriceBeatsTime(t *testing.T) {
	cases := []struct {
		name       string
		firstBid   int64
		secondBid  int64
		firstUser  string
		secondUser string
	}{
		{"best price entered second", 100, 101, "Customer1", "Customer2"},
		{"best price entered first", 101, 100, "Customer2", "Customer1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			book := NewOrderBook("IBM")
			submit(book, 10, tc.firstBid, tc.firstUser, SideBuy)
			submit(book, 10, tc.secondBid, tc.secondUser, SideBuy)

			trades := submit(book, 5, 99, "Seller1", SideSell)

			require.Len(t, trades, 1)
			assert.Equal(t, Trade{Buyer: "Customer2", Seller: "Seller1", Instrument: "IBM", Quantity: 5, Price: 101}, trades[0])
			assert.Equal(t, 2, book.Depth())
			assertNoCross(t, book)
		})
	}
}

func TestOrderBook_TradePriceIsRestingPrice(t *testing.T) {
	t.Run("aggressive ask hits resting bid price", func(t *testing.T) {
		book := NewOrderBook("IBM")
		submit(book, 10, 100, "Customer1", SideBuy)

		trades := submit(book, 10, 2, "Seller1", SideSell)

		require.Len(t, trades, 1)
		assert.Equal(t, int64(100), trades[0].Price)
	})

	t.Run("aggressive bid hits resting ask price", func(t *testing.T) {
		book := NewOrderBook("IBM")
		submit(book, 10, 2, "Seller1", SideSell)

		trades := submit(book, 10, 100, "Customer1", SideBuy)

		require.Len(t, trades, 1)
		assert.Equal(t, int64(2), trades[0].Price)
	})
}

func TestOrderBook_SweepAscendingAsks(t *testing.T) {
	book := NewOrderBook("IBM")
	for n := int64(0); n < 10; n++ {
		submit(book, 10, 100+n, "Seller1", SideSell)
	}

	trades := submit(book, 100, 1_000_000_000, "Customer1", SideBuy)

	require.Len(t, trades, 10)
	for n, trade := range trades {
		assert.Equal(t, Trade{
			Buyer:      "Customer1",
			Seller:     "Seller1",
			Instrument: "IBM",
			Quantity:   10,
			Price:      100 + int64(n),
		}, trade)
	}
	assert.Equal(t, 0, book.Depth())
}

func TestOrderBook_ResidualKeepsIdentity(t *testing.T) {
	book := NewOrderBook("IBM")
	submit(book, 10, 100, "Richard", SideBuy)

	trades := submit(book, 4, 90, "Henry", SideSell)

	require.Len(t, trades, 1)
	assert.Equal(t, int64(4), trades[0].Quantity)

	residual := book.Bids().Best()
	require.NotNil(t, residual)
	assert.Equal(t, int64(6), residual.Quantity)
	assert.Equal(t, int64(100), residual.Price)
	assert.Equal(t, "Richard", residual.Customer)
	assert.Equal(t, int64(1), residual.Sequence)
	assert.Equal(t, 1, book.Depth())
}

func TestOrderBook_ResidualKeepsTimePriority(t *testing.T) {
	book := NewOrderBook("IBM")
	submit(book, 10, 100, "Richard", SideBuy)
	submit(book, 10, 100, "Bernadine", SideBuy)

	// Split Richard's order; its residual must still rank ahead of
	// Bernadine's at the same price.
	submit(book, 4, 90, "Henry", SideSell)
	trades := submit(book, 6, 90, "Henry", SideSell)

	require.Len(t, trades, 1)
	assert.Equal(t, "Richard", trades[0].Buyer)
	assert.Equal(t, int64(6), trades[0].Quantity)
	assert.Equal(t, "Bernadine", book.Bids().Best().Customer)
}

func TestOrderBook_AggressorRemainderRests(t *testing.T) {
	book := NewOrderBook("IBM")
	submit(book, 10, 100, "Jane", SideBuy)
	submit(book, 5, 99, "Bob", SideBuy)

	trades := submit(book, 25, 98, "Henry", SideSell)

	require.Len(t, trades, 2)
	assert.Equal(t, Trade{Buyer: "Jane", Seller: "Henry", Instrument: "IBM", Quantity: 10, Price: 100}, trades[0])
	assert.Equal(t, Trade{Buyer: "Bob", Seller: "Henry", Instrument: "IBM", Quantity: 5, Price: 99}, trades[1])

	require.Equal(t, 0, book.Bids().Len())
	require.Equal(t, 1, book.Asks().Len())
	remainder := book.Asks().Best()
	assert.Equal(t, int64(10), remainder.Quantity)
	assert.Equal(t, int64(98), remainder.Price)
	assert.Equal(t, "Henry", remainder.Customer)
}

func TestOrderBook_SelfTradePermitted(t *testing.T) {
	book := NewOrderBook("IBM")
	submit(book, 10, 100, "Jane", SideBuy)

	trades := submit(book, 10, 100, "Jane", SideSell)

	require.Len(t, trades, 1)
	assert.Equal(t, "Jane", trades[0].Buyer)
	assert.Equal(t, "Jane", trades[0].Seller)
	assert.Equal(t, 0, book.Depth())
}

func TestOrderBook_NoCrossAfterEveryMatch(t *testing.T) {
	book := NewOrderBook("IBM")
	orders := []struct {
		quantity, price int64
		customer        string
		side            Side
	}{
		{10, 100, "Jane", SideBuy},
		{20, 102, "Bob", SideSell},
		{15, 101, "Chris", SideBuy},
		{5, 99, "Mark", SideSell},
		{40, 103, "Phillip", SideBuy},
		{40, 95, "Jane", SideSell},
		{10, 100, "Bob", SideBuy},
	}

	for _, o := range orders {
		submit(book, o.quantity, o.price, o.customer, o.side)
		assertNoCross(t, book)
	}
}

func TestOrderBook_Conservation(t *testing.T) {
	book := NewOrderBook("IBM")
	orders := []struct {
		quantity, price int64
		customer        string
		side            Side
	}{
		{10, 100, "Jane", SideBuy},
		{20, 101, "Bob", SideBuy},
		{15, 99, "Chris", SideSell},
		{5, 100, "Mark", SideSell},
		{30, 98, "Phillip", SideSell},
		{25, 102, "Jane", SideBuy},
	}

	var submittedBids, submittedAsks, matched int64
	for _, o := range orders {
		if o.side.IsBid() {
			submittedBids += o.quantity
		} else {
			submittedAsks += o.quantity
		}
		for _, trade := range submit(book, o.quantity, o.price, o.customer, o.side) {
			matched += trade.Quantity
		}
	}

	// Every trade consumes the same quantity from each side.
	assert.Equal(t, submittedBids, book.Bids().TotalQuantity()+matched)
	assert.Equal(t, submittedAsks, book.Asks().TotalQuantity()+matched)
	assertNoCross(t, book)
}

func TestOrderBook_SequenceNumbers(t *testing.T) {
	book := NewOrderBook("IBM")

	assert.Equal(t, int64(1), book.NextSequence())
	assert.Equal(t, int64(2), book.NextSequence())
	assert.Equal(t, int64(3), book.NextSequence())
}
