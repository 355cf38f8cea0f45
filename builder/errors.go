// SPDX-License-Identifier: MIT
// Package: lvlpath/builder
//
// errors.go - sentinel errors returned by constructors and BuildGraph.

package builder

import "errors"

// ErrTooFewVertices is returned when a size parameter is below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability is returned when an edge probability lies outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource is returned when a stochastic constructor runs without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed is returned for a nil constructor or an unusable network.
var ErrConstructFailed = errors.New("builder: construction failed")
