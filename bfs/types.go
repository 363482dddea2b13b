// This file declares the sentinel errors and functional options for BFS.

package bfs

import (
	"context"
	"errors"
)

// Sentinel errors returned by BFS.
var (
	// ErrNilGraph indicates a nil graph was passed to BFS.
	ErrNilGraph = errors.New("bfs: graph is nil")

	// ErrStartOutOfRange indicates the start vertex is outside the graph's
	// dense id space.
	ErrStartOutOfRange = errors.New("bfs: start vertex out of range")

	// ErrBadMaxDepth indicates WithMaxDepth was given a negative depth.
	ErrBadMaxDepth = errors.New("bfs: MaxDepth must be non-negative")
)

// Options configures a BFS run.
//
// Ctx      – cooperative cancellation; checked once per dequeued vertex.
// MaxDepth – stop expanding past this hop distance; 0 means no limit.
type Options struct {
	Ctx      context.Context
	MaxDepth int

	err error // first option violation, reported by BFS
}

// Option is a functional option for BFS.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: background context,
// no depth limit.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the context consulted for cancellation. A cancelled
// context makes the traversal sequence end early; it is not an error.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Ctx = ctx }
}

// WithMaxDepth limits expansion to vertices at most d hops from the start.
// d must be non-negative; 0 disables the limit.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = ErrBadMaxDepth

			return
		}
		o.MaxDepth = d
	}
}
