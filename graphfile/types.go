// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Document model and sentinel errors.

package graphfile

import "errors"

// Sentinel errors.
var (
	// ErrInvalidDocument reports malformed TOML or a field rule violation.
	ErrInvalidDocument = errors.New("graphfile: invalid document")

	// ErrDuplicateVertex reports a vertex name that occurs more than once.
	ErrDuplicateVertex = errors.New("graphfile: duplicate vertex name")

	// ErrUnknownVertex reports an edge endpoint with no matching vertex.
	ErrUnknownVertex = errors.New("graphfile: unknown vertex")
)

// Document is the decoded form of a graph file.
type Document struct {
	Vertices []VertexSpec `toml:"vertex" validate:"dive"`
	Edges    []EdgeSpec   `toml:"edge" validate:"dive"`
}

// VertexSpec declares one vertex.
type VertexSpec struct {
	Name string `toml:"name" validate:"required"`
}

// EdgeSpec declares one undirected edge. A nil Weight means
// builder.DefaultEdgeWeight.
type EdgeSpec struct {
	From   string   `toml:"from" validate:"required"`
	To     string   `toml:"to" validate:"required"`
	Weight *float64 `toml:"weight,omitempty" validate:"omitempty,gte=0"`
}

// EdgeWeight returns the declared weight or the default.
func (e EdgeSpec) EdgeWeight(def float64) float64 {
	if e.Weight == nil {
		return def
	}

	return *e.Weight
}
