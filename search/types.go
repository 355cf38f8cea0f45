// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors and functional options shared by every search strategy.

package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lvlpath/core"
)

// Sentinel errors for search execution.
var (
	// ErrNilGraph is returned when a strategy is bound to a nil graph.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Option configures a search strategy via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation on the
// first FindPath call.
type Option func(*Options)

// Options holds parameters and callbacks shared by BFS and Dijkstra.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per frontier pop.
	Ctx context.Context

	// Logger receives debug traces of frontier events.
	Logger *log.Logger

	// OnVisit is called when a vertex leaves the frontier, with its handle
	// and its cost from the source (edge count for BFS, total weight for
	// Dijkstra). Returning an error aborts the search.
	OnVisit func(id core.VertexID, cost float64) error

	// MaxCost stops expansion beyond this cost. +Inf means no limit.
	MaxCost float64

	err error
}

// DefaultOptions returns Options with a background context, a discarding
// logger, a no-op OnVisit and no cost limit.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Logger:  log.New(io.Discard),
		OnVisit: func(core.VertexID, float64) error { return nil },
		MaxCost: math.Inf(1),
	}
}

// Resolve applies opts over DefaultOptions and reports the first invalid option.
func Resolve(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes debug traces to l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnVisit registers a callback run each time a vertex is taken off the frontier.
func WithOnVisit(fn func(id core.VertexID, cost float64) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxCost bounds how far from the source a strategy explores.
//
//	c ≥ 0: vertices whose cost would exceed c are not expanded
//	c < 0 or NaN: invalid option → ErrOptionViolation
func WithMaxCost(c float64) Option {
	return func(o *Options) {
		if c < 0 || math.IsNaN(c) {
			o.err = fmt.Errorf("%w: MaxCost must be non-negative (%g)", ErrOptionViolation, c)
			return
		}
		o.MaxCost = c
	}
}

// Canceled reports the context error, if the context is done.
func (o Options) Canceled() error {
	select {
	case <-o.Ctx.Done():
		return o.Ctx.Err()
	default:
		return nil
	}
}
