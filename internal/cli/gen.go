package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlpath/builder"
	"github.com/katalvlaran/lvlpath/graphfile"
)

// genFlags collects the gen command's flags.
type genFlags struct {
	shape      string
	n          int
	rows, cols int
	p          float64
	seed       int64
	minWeight  float64
	maxWeight  float64
	integer    bool
	output     string
}

// constructor maps a shape name to its builder.
func (f genFlags) constructor() (builder.Constructor, error) {
	switch f.shape {
	case "path":
		return builder.Path(f.n), nil
	case "cycle":
		return builder.Cycle(f.n), nil
	case "complete":
		return builder.Complete(f.n), nil
	case "star":
		return builder.Star(f.n), nil
	case "grid":
		return builder.Grid(f.rows, f.cols), nil
	case "random":
		return builder.RandomSparse(f.n, f.p), nil
	default:
		return nil, fmt.Errorf("unknown shape %q (want path, cycle, complete, star, grid or random)", f.shape)
	}
}

// options builds the seed and weight distribution options.
func (f genFlags) options() (opts []builder.BuilderOption, err error) {
	if f.minWeight < 0 || f.maxWeight < f.minWeight {
		return nil, fmt.Errorf("weights: require 0 ≤ min-weight ≤ max-weight, got %g, %g", f.minWeight, f.maxWeight)
	}
	opts = append(opts, builder.WithSeed(f.seed))
	switch {
	case f.integer:
		opts = append(opts, builder.WithWeightFn(builder.IntWeightFn(int(f.minWeight), int(f.maxWeight))))
	case f.minWeight == f.maxWeight:
		opts = append(opts, builder.WithWeightFn(builder.ConstantWeightFn(f.minWeight)))
	default:
		opts = append(opts, builder.WithWeightFn(builder.UniformWeightFn(f.minWeight, f.maxWeight)))
	}

	return opts, nil
}

func newGenCmd() *cobra.Command {
	var f genFlags

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a graph file",
		Example: `  lvlpath gen --shape grid --rows 10 --cols 10 --min-weight 1 --max-weight 9 --integer -o grid.toml
  lvlpath gen --shape random -n 50 --p 0.1 --seed 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctor, err := f.constructor()
			if err != nil {
				return err
			}
			opts, err := f.options()
			if err != nil {
				return err
			}
			net, err := builder.BuildGraph(opts, ctor)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := graphfile.Encode(&buf, net.Graph()); err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			logger.Debug("generated", "shape", f.shape,
				"vertices", net.Graph().VertexCount(), "edges", net.Graph().EdgeCount())

			return writeOutput(cmd.OutOrStdout(), f.output, buf.Bytes(), logger)
		},
	}

	cmd.Flags().StringVar(&f.shape, "shape", "path", "path, cycle, complete, star, grid or random")
	cmd.Flags().IntVarP(&f.n, "vertices", "n", 5, "vertex count (path, cycle, complete, star, random)")
	cmd.Flags().IntVar(&f.rows, "rows", 3, "grid rows")
	cmd.Flags().IntVar(&f.cols, "cols", 3, "grid columns")
	cmd.Flags().Float64Var(&f.p, "p", 0.3, "edge probability (random)")
	cmd.Flags().Int64Var(&f.seed, "seed", 1, "random seed")
	cmd.Flags().Float64Var(&f.minWeight, "min-weight", builder.DefaultEdgeWeight, "smallest edge weight")
	cmd.Flags().Float64Var(&f.maxWeight, "max-weight", builder.DefaultEdgeWeight, "largest edge weight")
	cmd.Flags().BoolVar(&f.integer, "integer", false, "draw whole-number weights")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (default stdout)")

	return cmd
}
