// Package render draws graphs as Graphviz DOT and renders DOT to SVG.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/search"
)

// Options configures DOT output.
type Options[T any] struct {
	// Name is the graph identifier; "G" when empty.
	Name string

	// Label formats a payload for display; fmt.Sprint when nil.
	Label func(T) string

	// Route, when non-empty, is drawn highlighted.
	Route search.Route[T]

	// Weights shows edge weights as labels.
	Weights bool
}

const (
	highlightColor = "#d94f30"
	highlightFill  = "#fbe3dc"
)

// DOT converts g to an undirected Graphviz graph. Nodes are keyed by handle
// ("n0", "n1", ...) and labeled with their payload, so equal payloads stay
// distinct. Output order follows registration and insertion order.
func DOT[T any](g *core.Graph[T], opts Options[T]) string {
	name := opts.Name
	if name == "" {
		name = "G"
	}
	label := opts.Label
	if label == nil {
		label = func(p T) string { return fmt.Sprint(p) }
	}

	onRoute := make(map[*core.Vertex[T]]bool, len(opts.Route.Vertices))
	routeEdges := make(map[[2]*core.Vertex[T]]bool, len(opts.Route.Vertices))
	for i, v := range opts.Route.Vertices {
		onRoute[v] = true
		if i > 0 {
			prev := opts.Route.Vertices[i-1]
			routeEdges[[2]*core.Vertex[T]{prev, v}] = true
			routeEdges[[2]*core.Vertex[T]{v, prev}] = true
		}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "graph %q {\n", name)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=ellipse, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("  edge [fontsize=11];\n")
	buf.WriteString("\n")

	for i, v := range g.Vertices() {
		attrs := []string{fmt.Sprintf("label=%q", label(v.Payload()))}
		if onRoute[v] {
			attrs = append(attrs, "penwidth=2", fmt.Sprintf("color=%q", highlightColor), fmt.Sprintf("fillcolor=%q", highlightFill))
		}
		fmt.Fprintf(&buf, "  n%d [%s];\n", i, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		from, _ := g.ID(e.From)
		to, _ := g.ID(e.To)
		var attrs []string
		if opts.Weights {
			attrs = append(attrs, fmt.Sprintf("label=%q", strconv.FormatFloat(e.Weight, 'g', -1, 64)))
		}
		if routeEdges[[2]*core.Vertex[T]{e.From, e.To}] {
			attrs = append(attrs, "penwidth=3", fmt.Sprintf("color=%q", highlightColor))
		}
		if len(attrs) == 0 {
			fmt.Fprintf(&buf, "  n%d -- n%d;\n", from, to)
			continue
		}
		fmt.Fprintf(&buf, "  n%d -- n%d [%s];\n", from, to, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")

	return buf.String()
}

// SVG renders a DOT document to SVG with the embedded Graphviz.
func SVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	return buf.Bytes(), nil
}
