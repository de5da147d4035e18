package orderbookv1

// Registry maps instrument identifiers to their order books. Books are
// created lazily on first reference and live for the process lifetime.
type Registry struct {
	books map[string]*OrderBook
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		books: make(map[string]*OrderBook),
	}
}

// GetOrCreate returns the book for the instrument, constructing and
// inserting a fresh empty one on first reference.
func (r *Registry) GetOrCreate(instrument string) *OrderBook {
	book, exists := r.books[instrument]
	if !exists {
		book = NewOrderBook(instrument)
		r.books[instrument] = book
	}
	return book
}

// Get returns the book for the instrument, or nil when none exists.
func (r *Registry) Get(instrument string) *OrderBook {
	return r.books[instrument]
}

// Len returns the number of open books.
func (r *Registry) Len() int {
	return len(r.books)
}
