package orderbookv1

// Side represents which half of the book an order belongs to.
type Side string

const (
	// SideBuy represents a buy (bid) order.
	SideBuy Side = "Buy"
	// SideSell represents a sell (ask) order.
	SideSell Side = "Sell"
)

// IsBid checks if the side is the buy side.
func (s Side) IsBid() bool {
	return s == SideBuy
}

// Order represents a single order resting in, or aggressing on, an order book.
// Price, Customer and Sequence are fixed at submission. Quantity is the only
// mutable field: it is decremented while the order is the aggressor being
// matched and never changed once the order rests in a side. The unmatched
// remainder of a split resting order is represented as a new Order value,
// never by mutating the resident one.
type Order struct {
	Price    int64  `json:"price"`
	Customer string `json:"customer"`
	Sequence int64  `json:"sequence"`
	Quantity int64  `json:"quantity"`
}

// NewOrder creates a new order with the given parameters.
func NewOrder(quantity, price int64, customer string, sequence int64) *Order {
	return &Order{
		Price:    price,
		Customer: customer,
		Sequence: sequence,
		Quantity: quantity,
	}
}

// IsFilled checks if the order is filled (quantity is zero).
func (o *Order) IsFilled() bool {
	return o.Quantity <= 0
}

// OrderRequest represents one order event delivered by an order source,
// before a sequence number has been assigned.
type OrderRequest struct {
	Customer   string `json:"customer"`
	Instrument string `json:"instrument"`
	Side       Side   `json:"side"`
	Quantity   int64  `json:"quantity"`
	Price      int64  `json:"price"`
}
