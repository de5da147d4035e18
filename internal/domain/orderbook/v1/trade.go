package orderbookv1

// Trade is the record of one crossed quantity between a buyer and a seller.
// The price is always the resting order's price, never the aggressor's.
type Trade struct {
	Buyer      string `json:"buyer"`
	Seller     string `json:"seller"`
	Instrument string `json:"instrument"`
	Quantity   int64  `json:"quantity"`
	Price      int64  `json:"price"`
}
