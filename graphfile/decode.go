// SPDX-License-Identifier: MIT
//
// File: decode.go
// Role: TOML decoding and TOML encoding of graph documents.

package graphfile

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/lvlpath/core"
)

// Decode parses a graph document from r. Keys outside the format are
// rejected so typos do not silently drop edges. Decode does not validate; see
// Validate.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalidDocument, strings.Join(keys, ", "))
	}

	return &doc, nil
}

// Load opens path and decodes it.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// FromGraph describes g as a Document: vertices in registration order, edges
// in insertion order. Payloads become names, so they must be unique.
func FromGraph(g *core.Graph[string]) (*Document, error) {
	vs := g.Vertices()
	doc := &Document{Vertices: make([]VertexSpec, 0, len(vs))}
	seen := make(map[string]struct{}, len(vs))
	for _, v := range vs {
		name := v.Payload()
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateVertex, name)
		}
		seen[name] = struct{}{}
		doc.Vertices = append(doc.Vertices, VertexSpec{Name: name})
	}
	for _, e := range g.Edges() {
		w := e.Weight
		doc.Edges = append(doc.Edges, EdgeSpec{From: e.From.Payload(), To: e.To.Payload(), Weight: &w})
	}

	return doc, nil
}

// Encode writes g to w as a graph document.
func Encode(w io.Writer, g *core.Graph[string]) error {
	doc, err := FromGraph(g)
	if err != nil {
		return err
	}

	return toml.NewEncoder(w).Encode(doc)
}
