package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlpath/graphfile"
	"github.com/katalvlaran/lvlpath/render"
	"github.com/katalvlaran/lvlpath/search"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		graphPath, from, to, algo, format, output string
		noWeights                                 bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw a TOML graph file as DOT or SVG",
		Long: `Draw a TOML graph file as Graphviz DOT or SVG.

With --from and --to the route found by --algo is highlighted. When --algo is
"both", the Dijkstra route is drawn.`,
		Example: `  lvlpath render -g farm.toml --from donkey --to cow --format svg -o farm.svg`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("algo") {
				algo = a.cfg.Algorithm
			}
			if !cmd.Flags().Changed("format") {
				format = a.cfg.Format
			}
			if format != formatDOT && format != formatSVG {
				return fmt.Errorf("unknown format %q (want %s or %s)", format, formatDOT, formatSVG)
			}
			if (from == "") != (to == "") {
				return errors.New("--from and --to must be given together")
			}

			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			net, err := graphfile.LoadNetwork(graphPath)
			if err != nil {
				return err
			}

			var route search.Route[string]
			if from != "" {
				outs, err := searchAll(ctx, net, from, to, algo, a.cfg.MaxCost)
				if err != nil {
					return err
				}
				last := outs[len(outs)-1]
				if last.found {
					route = last.route
				} else {
					logger.Warn(noPathMessage, "from", from, "to", to, "algo", last.algo)
				}
			}

			dot := render.DOT(net.Graph(), render.Options[string]{Route: route, Weights: !noWeights})
			if format == formatDOT {
				return writeOutput(cmd.OutOrStdout(), output, []byte(dot), logger)
			}

			p := newProgress(logger)
			svg, err := render.SVG(ctx, dot)
			if err != nil {
				return err
			}
			p.done("rendered svg", "bytes", len(svg))

			return writeOutput(cmd.OutOrStdout(), output, svg, logger)
		},
	}

	cmd.Flags().StringVarP(&graphPath, "graph", "g", "", "TOML graph file")
	cmd.Flags().StringVar(&from, "from", "", "source vertex of the highlighted route")
	cmd.Flags().StringVar(&to, "to", "", "destination vertex of the highlighted route")
	cmd.Flags().StringVar(&algo, "algo", algoDijkstra, "bfs, dijkstra or both")
	cmd.Flags().StringVar(&format, "format", formatDOT, "dot or svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&noWeights, "no-weights", false, "omit edge weight labels")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}
