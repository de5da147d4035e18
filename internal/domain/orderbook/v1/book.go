package orderbookv1

// OrderBook holds the bid and ask sides for one instrument and assigns
// sequence numbers to incoming orders. Both sides are owned exclusively by
// the book; there is no external mutation path.
type OrderBook struct {
	instrument string
	bids       *BookSide
	asks       *BookSide
	sequence   int64
}

// NewOrderBook creates an empty book for the given instrument.
func NewOrderBook(instrument string) *OrderBook {
	return &OrderBook{
		instrument: instrument,
		bids:       NewBidSide(),
		asks:       NewAskSide(),
	}
}

// Instrument returns the identifier of the instrument this book trades.
func (b *OrderBook) Instrument() string {
	return b.instrument
}

// NextSequence returns the next sequence number for this book. Sequence
// numbers are assigned once, at submission, and are strictly increasing.
func (b *OrderBook) NextSequence() int64 {
	b.sequence++
	return b.sequence
}

// Bids returns the buy side of the book.
func (b *OrderBook) Bids() *BookSide {
	return b.bids
}

// Asks returns the sell side of the book.
func (b *OrderBook) Asks() *BookSide {
	return b.asks
}

// Depth returns the number of resting orders across both sides.
func (b *OrderBook) Depth() int {
	return b.bids.Len() + b.asks.Len()
}

// Match crosses the incoming aggressor order against the contra side under
// price-time priority and returns the trades produced, in match order. Any
// unmatched aggressor quantity rests on the order's own side. Crossed
// quantity always trades at the resting order's price.
func (b *OrderBook) Match(order *Order, isBid bool) []Trade {
	contra, own := b.asks, b.bids
	crosses := func(restingPrice int64) bool { return restingPrice <= order.Price }
	if !isBid {
		contra, own = b.bids, b.asks
		crosses = func(restingPrice int64) bool { return restingPrice >= order.Price }
	}

	var trades []Trade
	var matched []*Order
	contra.Walk(func(resting *Order) bool {
		if !crosses(resting.Price) {
			// Sort order guarantees no later entry can cross either.
			return false
		}

		quantity := order.Quantity
		if resting.Quantity < quantity {
			quantity = resting.Quantity
		}
		buyer, seller := order.Customer, resting.Customer
		if !isBid {
			buyer, seller = resting.Customer, order.Customer
		}
		trades = append(trades, Trade{
			Buyer:      buyer,
			Seller:     seller,
			Instrument: b.instrument,
			Quantity:   quantity,
			Price:      resting.Price,
		})
		matched = append(matched, resting)

		if resting.Quantity < order.Quantity {
			// Aggressor partially filled, keep walking.
			order.Quantity -= resting.Quantity
			return true
		}

		// Aggressor exhausted. The remainder of the resting order re-enters
		// the book as a new value keeping its original sequence number, so
		// its time priority survives the split.
		residual := resting.Quantity - order.Quantity
		order.Quantity = 0
		if residual > 0 {
			contra.Insert(NewOrder(residual, resting.Price, resting.Customer, resting.Sequence))
		}
		return false
	})

	// Removal is deferred so the walk never mutates the side it iterates.
	for _, resting := range matched {
		contra.Remove(resting)
	}

	if order.Quantity > 0 {
		own.Insert(order)
	}
	return trades
}
