package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/lvlpath/bfs"
	"github.com/katalvlaran/lvlpath/builder"
	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/dijkstra"
	"github.com/katalvlaran/lvlpath/search"
)

// router is the part of bfs.Searcher and dijkstra.Searcher the CLI uses.
type router interface {
	search.Searcher[string]
	Route(source, destination *core.Vertex[string]) (search.Route[string], bool, error)
}

// outcome is one strategy's answer.
type outcome struct {
	algo  string
	route search.Route[string]
	found bool
}

var titles = map[string]string{
	algoBFS:      "Breadth First Search:",
	algoDijkstra: "Dijkstra's:",
}

// algorithms expands "both" into the strategies it names.
func algorithms(algo string) ([]string, error) {
	switch algo {
	case algoBFS, algoDijkstra:
		return []string{algo}, nil
	case algoBoth:
		return []string{algoBFS, algoDijkstra}, nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q (want %s, %s or %s)", algo, algoBFS, algoDijkstra, algoBoth)
	}
}

func newRouter(algo string, g *core.Graph[string], opts ...search.Option) router {
	if algo == algoBFS {
		return bfs.New(g, opts...)
	}
	return dijkstra.New(g, opts...)
}

// lookup resolves a vertex name in net.
func lookup(net *builder.Network, name string) (*core.Vertex[string], error) {
	v, ok := net.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrVertexNotFound, name)
	}
	return v, nil
}

// searchAll runs every strategy algo names from one named vertex to another.
// Each run carries its own id in the debug log.
func searchAll(ctx context.Context, net *builder.Network, from, to, algo string, maxCost *float64) ([]outcome, error) {
	algos, err := algorithms(algo)
	if err != nil {
		return nil, err
	}
	src, err := lookup(net, from)
	if err != nil {
		return nil, err
	}
	dst, err := lookup(net, to)
	if err != nil {
		return nil, err
	}

	logger := loggerFromContext(ctx)
	out := make([]outcome, 0, len(algos))
	for _, name := range algos {
		runLog := logger.With("run", uuid.NewString(), "algo", name)
		opts := []search.Option{search.WithContext(ctx), search.WithLogger(runLog)}
		if maxCost != nil {
			opts = append(opts, search.WithMaxCost(*maxCost))
		}

		p := newProgress(runLog)
		route, found, err := newRouter(name, net.Graph(), opts...).Route(src, dst)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		p.done("search finished", "found", found, "hops", route.Hops())
		out = append(out, outcome{algo: name, route: route, found: found})
	}

	return out, nil
}

// printOutcomes prints each outcome under its strategy title.
func printOutcomes(w io.Writer, outs []outcome) {
	for _, o := range outs {
		printTitle(w, titles[o.algo])
		if !o.found {
			printNoPath(w)
			continue
		}
		printPath(w, o.route.Payloads(), o.route.Hops(), o.route.Weight())
	}
}

// writeOutput writes data to path, or to w when path is empty.
func writeOutput(w io.Writer, path string, data []byte, logger *log.Logger) error {
	if path == "" {
		_, err := w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	logger.Info("wrote", "path", path, "bytes", len(data))

	return nil
}
