// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: Materialize a validated Document as a builder.Network.

package graphfile

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/builder"
)

// Build validates doc and turns it into a Network. Vertices are registered in
// declaration order and edges added in declaration order, which fixes the
// neighbor order searches see.
func Build(doc *Document) (*builder.Network, error) {
	if err := Validate(doc); err != nil {
		return nil, err
	}

	net := builder.NewNetwork()
	for _, v := range doc.Vertices {
		if _, err := net.Ensure(v.Name); err != nil {
			return nil, fmt.Errorf("graphfile: vertex %q: %w", v.Name, err)
		}
	}
	for i, e := range doc.Edges {
		if err := net.Connect(e.From, e.To, e.EdgeWeight(builder.DefaultEdgeWeight)); err != nil {
			return nil, fmt.Errorf("graphfile: edge[%d]: %w", i, err)
		}
	}

	return net, nil
}

// LoadNetwork is Load followed by Build.
func LoadNetwork(path string) (*builder.Network, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, err
	}

	return Build(doc)
}
