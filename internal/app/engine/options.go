package engine

// Options represents configuration options for the Engine.
type Options struct {
	// DepthLogEvery logs per-book depth statistics every N processed orders.
	// Zero disables the cadence.
	DepthLogEvery int64
}

// DefaultOptions returns the default engine options.
func DefaultOptions() *Options {
	return &Options{
		DepthLogEvery: 1000,
	}
}
