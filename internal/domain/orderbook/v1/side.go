package orderbookv1

import "sort"

// BookSide maintains the resting orders of one side of a book in priority
// order. The comparator is the source of truth for priority: the first
// element is always the best (highest bid or lowest ask) and ties at equal
// price rank by ascending sequence number, so earlier orders win.
type BookSide struct {
	orders []*Order
	less   func(a, b *Order) bool
}

// NewBidSide creates the buy side: descending price, ascending sequence.
func NewBidSide() *BookSide {
	return &BookSide{
		less: func(a, b *Order) bool {
			if a.Price != b.Price {
				return a.Price > b.Price
			}
			return a.Sequence < b.Sequence
		},
	}
}

// NewAskSide creates the sell side: ascending price, ascending sequence.
func NewAskSide() *BookSide {
	return &BookSide{
		less: func(a, b *Order) bool {
			if a.Price != b.Price {
				return a.Price < b.Price
			}
			return a.Sequence < b.Sequence
		},
	}
}

// Insert places the order at its comparator position. Orders that compare
// equal to a resident one are inserted after it.
func (s *BookSide) Insert(order *Order) {
	i := sort.Search(len(s.orders), func(i int) bool {
		return s.less(order, s.orders[i])
	})
	s.orders = append(s.orders, nil)
	copy(s.orders[i+1:], s.orders[i:])
	s.orders[i] = order
}

// Walk visits resting orders from best to worst until visit returns false.
// It iterates the live sorted state at the time of call.
func (s *BookSide) Walk(visit func(order *Order) bool) {
	for _, order := range s.orders {
		if !visit(order) {
			return
		}
	}
}

// Remove deletes the given resting order. Removal is a no-op when the order
// is not resident.
func (s *BookSide) Remove(order *Order) {
	for i, o := range s.orders {
		if o == order {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return
		}
	}
}

// Best returns the highest-priority resting order, or nil when the side is empty.
func (s *BookSide) Best() *Order {
	if len(s.orders) == 0 {
		return nil
	}
	return s.orders[0]
}

// Len returns the number of resting orders.
func (s *BookSide) Len() int {
	return len(s.orders)
}

// TotalQuantity returns the summed resting quantity of the side.
func (s *BookSide) TotalQuantity() int64 {
	total := int64(0)
	for _, order := range s.orders {
		total += order.Quantity
	}
	return total
}

// Orders returns a copy of the resting orders in priority order.
func (s *BookSide) Orders() []*Order {
	orders := make([]*Order, len(s.orders))
	copy(orders, s.orders)
	return orders
}
