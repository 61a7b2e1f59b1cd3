package stabby

import "github.com/rs/zerolog"

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for structural diagnostics. Registries log
// nothing by default.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Registry) { r.logger = logger }
}

// WithPoolCapacity sets the slot count of newly created component pools.
// Values below one are ignored.
func WithPoolCapacity(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.poolCapacity = n
		}
	}
}
