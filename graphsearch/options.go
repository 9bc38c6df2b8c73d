package graphsearch

// Options configures a Search call.
type Options struct {
	// Inverted, when true, makes the switching term penalize decreases
	// instead of increases between successive configurations.
	Inverted bool
	// Epsilon, when > 0, coarsens the enumerated configuration lattice to
	// a grid of spacing Epsilon per dimension (the approximate variant).
	// Zero (the default) enumerates every integer point.
	Epsilon float64
	// Cache, when non-nil, is consulted before recomputing a layer and
	// updated after. It is strictly optional: a nil Cache never changes
	// the result, only how much work is repeated across calls.
	Cache Cache
}

// Option mutates an Options value.
type Option func(*Options)

// DefaultOptions returns the zero-value Options: exact search, no cache.
func DefaultOptions() Options { return Options{} }

// WithInverted sets Options.Inverted.
func WithInverted(inverted bool) Option {
	return func(o *Options) { o.Inverted = inverted }
}

// WithEpsilon sets Options.Epsilon, switching Search into its approximate
// variant. epsilon <= 0 is equivalent to not calling WithEpsilon.
func WithEpsilon(epsilon float64) Option {
	return func(o *Options) { o.Epsilon = epsilon }
}

// WithCache sets Options.Cache.
func WithCache(c Cache) Option {
	return func(o *Options) { o.Cache = c }
}
