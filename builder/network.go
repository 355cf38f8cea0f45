// SPDX-License-Identifier: MIT
// Package: lvlpath/builder
//
// network.go - name-addressed wrapper around core.Graph[string].
//
// core.Graph keys vertices by identity; constructors (and graph files) speak
// in names. Network keeps the name → vertex index so composed constructors
// reuse vertices instead of creating look-alikes.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/core"
)

// Network is a core.Graph[string] whose vertices are addressed by unique names.
// It is not safe for concurrent mutation; the wrapped graph is.
type Network struct {
	g      *core.Graph[string]
	byName map[string]*core.Vertex[string]
}

// NewNetwork returns an empty Network.
func NewNetwork() *Network {
	return &Network{
		g:      core.NewGraph[string](),
		byName: make(map[string]*core.Vertex[string]),
	}
}

// Graph returns the underlying graph.
func (n *Network) Graph() *core.Graph[string] { return n.g }

// Len returns the number of named vertices.
func (n *Network) Len() int { return len(n.byName) }

// Lookup returns the vertex registered under name.
func (n *Network) Lookup(name string) (*core.Vertex[string], bool) {
	v, ok := n.byName[name]

	return v, ok
}

// Ensure returns the vertex named name, creating and registering it if absent.
func (n *Network) Ensure(name string) (*core.Vertex[string], error) {
	if v, ok := n.byName[name]; ok {
		return v, nil
	}
	v := core.NewVertex(name)
	if err := n.g.AddVertex(v); err != nil {
		return nil, err
	}
	n.byName[name] = v

	return v, nil
}

// Connect adds an undirected edge between the named vertices, creating them if needed.
func (n *Network) Connect(a, b string, weight float64) error {
	va, err := n.Ensure(a)
	if err != nil {
		return err
	}
	vb, err := n.Ensure(b)
	if err != nil {
		return err
	}
	if err := n.g.AddEdge(va, vb, weight); err != nil {
		return fmt.Errorf("connect %s–%s: %w", a, b, err)
	}

	return nil
}
