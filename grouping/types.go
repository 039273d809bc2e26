package grouping

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/blockgroup/geom"
)

// ErrInvalidSize indicates a building size below 1.
var ErrInvalidSize = errors.New("grouping: building size must be at least 1")

// Building is a square footprint of Size×Size cells rooted at Anchor,
// carrying a caller-owned payload that the index never inspects.
type Building[T any] struct {
	Anchor geom.Point
	Size   int
	Data   T
}

// Footprint returns the cells covered by b.
func (b Building[T]) Footprint() geom.Rect {
	return geom.Square(b.Anchor, b.Size)
}

// GroupingFunc decides whether two side-adjacent buildings belong to the
// same group, given their payloads. It must be pure and symmetric.
//
// It is evaluated once per adjacent pair, when the second building is
// inserted. Changing what a payload means afterwards does not relink
// anything.
type GroupingFunc[T any] func(a, b T) bool

// Always groups every adjacent pair.
func Always[T any]() GroupingFunc[T] {
	return func(T, T) bool { return true }
}

// Equal groups adjacent pairs whose payloads are equal.
func Equal[T comparable]() GroupingFunc[T] {
	return func(a, b T) bool { return a == b }
}

// Option configures an Index at construction.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

func defaultOptions() options {
	return options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLogger routes merge and split diagnostics (Debug level) to l.
// A nil logger keeps the default, which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
