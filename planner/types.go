package planner

import "errors"

// Sentinel errors for A* input validation. These signal a programmer error
// (nil projection), not an unreachable goal — an unreachable goal is a
// normal outcome and returns (nil, nil), not an error.
var (
	// ErrNilProjected indicates a nil *graphbuild.Projected was passed.
	ErrNilProjected = errors.New("planner: projected graph is nil")

	// ErrEmptyStart indicates an empty start node id was passed.
	ErrEmptyStart = errors.New("planner: start node id is empty")
)

// Options configures a single AStar invocation.
type Options struct {
	// MaxExpansions caps the number of nodes popped from the open set
	// before giving up, guarding against pathological inputs. Zero means
	// no cap.
	MaxExpansions int
}

// Option is a functional option for AStar.
type Option func(*Options)

// DefaultOptions returns the zero-value Options: no expansion cap.
func DefaultOptions() Options {
	return Options{}
}

// WithMaxExpansions caps the number of node expansions AStar performs.
func WithMaxExpansions(n int) Option {
	return func(o *Options) { o.MaxExpansions = n }
}
