// SPDX-License-Identifier: MIT
// Package: lvlpath/builder
//
// impl_basic.go - Path, Cycle, Star and Complete constructors.
//
// Contract (all four):
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges in a stable documented order; one weightFn draw per edge.
//   - Returns ErrTooFewVertices (wrapped with the method tag) below the minimum.
//
// Complexity:
//   - Path, Cycle, Star: O(n). Complete: O(n²).

package builder

import "fmt"

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"

	// MinPathNodes is the smallest n accepted by Path.
	MinPathNodes = 2
	// MinCycleNodes is the smallest n accepted by Cycle.
	MinCycleNodes = 3
	// MinStarNodes is the smallest n accepted by Star (center + one leaf).
	MinStarNodes = 2
	// MinCompleteNodes is the smallest n accepted by Complete.
	MinCompleteNodes = 1
)

// Path returns a Constructor for the path P_n: 0–1–…–(n-1).
func Path(n int) Constructor {
	return func(net *Network, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(methodPath, net, cfg, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := connect(methodPath, net, cfg, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor for the simple cycle C_n: edges i–(i+1)%n.
func Cycle(n int) Constructor {
	return func(net *Network, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		if err := addVertices(methodCycle, net, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := connect(methodCycle, net, cfg, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star returns a Constructor for a star with center cfg.idFn(0) and leaves 1..n-1.
func Star(n int) Constructor {
	return func(net *Network, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		if err := addVertices(methodStar, net, cfg, n); err != nil {
			return err
		}
		center := cfg.idFn(0)
		for i := 1; i < n; i++ {
			if err := connect(methodStar, net, cfg, center, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor for K_n: every unordered pair {i<j}, i asc then j asc.
func Complete(n int) Constructor {
	return func(net *Network, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertices(methodComplete, net, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := connect(methodComplete, net, cfg, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
