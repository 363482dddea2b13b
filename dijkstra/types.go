// This file declares the sentinel errors, Unreachable, and the functional
// options for ShortestPaths.

package dijkstra

import (
	"context"
	"errors"
	"math"
)

// Sentinel errors returned by ShortestPaths.
var (
	// ErrNilGraph indicates a nil graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNilWeight indicates a nil weight function was passed.
	ErrNilWeight = errors.New("dijkstra: weight function is nil")

	// ErrSourceOutOfRange indicates the source vertex is outside the
	// graph's dense id space.
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")

	// ErrBadMaxDistance indicates WithMaxDistance was given a negative cap.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Unreachable is the distance reported for vertices the source cannot
// reach: positive infinity.
var Unreachable = math.Inf(1)

// IsUnreachable reports whether d is the unreachable marker.
func IsUnreachable(d float64) bool { return math.IsInf(d, 1) }

// Options configures a ShortestPaths run.
//
// Ctx         – cooperative cancellation; checked once per heap pop.
// MaxDistance – frontier cap: once the minimum queued distance exceeds it,
// exploration stops and farther vertices stay Unreachable.
type Options struct {
	Ctx         context.Context
	MaxDistance float64
}

// Option is a functional option for ShortestPaths.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: background context,
// no distance cap.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), MaxDistance: Unreachable}
}

// WithContext sets the context consulted for cancellation. A cancelled run
// returns the context's error and no distances.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// WithMaxDistance caps exploration at distance d from the source. Panics
// with ErrBadMaxDistance on a negative cap; invalid configuration is a
// programming error, caught at option construction.
func WithMaxDistance(d float64) Option {
	return func(o *Options) {
		if d < 0 {
			panic(ErrBadMaxDistance)
		}
		o.MaxDistance = d
	}
}
