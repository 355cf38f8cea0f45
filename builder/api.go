// SPDX-License-Identifier: MIT
// Package: lvlpath/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates a Network, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same options/seed and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import "fmt"

// Constructor applies a deterministic topology to n using the resolved
// builderConfig. Constructors validate parameters before touching n.
type Constructor func(n *Network, cfg builderConfig) error

// BuildGraph creates a Network, resolves the builder configuration from bopts,
// and applies all constructors in order. Vertices with equal names are shared
// across constructors. Any constructor error is wrapped with "BuildGraph: %w".
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*Network, error) {
	n := NewNetwork()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(n, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return n, nil
}

// addVertices registers cfg.idFn(0..count-1) in ascending order.
func addVertices(method string, n *Network, cfg builderConfig, count int) error {
	for i := 0; i < count; i++ {
		id := cfg.idFn(i)
		if _, err := n.Ensure(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// connect draws one weight from cfg and adds u–v.
func connect(method string, n *Network, cfg builderConfig, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if err := n.Connect(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s–%s, w=%g): %w", method, u, v, w, err)
	}

	return nil
}
