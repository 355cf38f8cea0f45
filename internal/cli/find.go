package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlpath/graphfile"
)

func newFindCmd(a *app) *cobra.Command {
	var (
		graphPath, from, to, algo string
		maxCost                   float64
	)

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find a path in a TOML graph file",
		Example: `  lvlpath find -g farm.toml --from donkey --to cow
  lvlpath find -g grid.toml --from 0,0 --to 9,9 --algo dijkstra --max-cost 40`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("algo") {
				algo = a.cfg.Algorithm
			}
			limit := a.cfg.MaxCost
			if cmd.Flags().Changed("max-cost") {
				limit = &maxCost
			}

			logger := loggerFromContext(cmd.Context())
			net, err := graphfile.LoadNetwork(graphPath)
			if err != nil {
				return err
			}
			logger.Debug("graph loaded", "path", graphPath,
				"vertices", net.Graph().VertexCount(), "edges", net.Graph().EdgeCount())

			outs, err := searchAll(cmd.Context(), net, from, to, algo, limit)
			if err != nil {
				return err
			}
			printOutcomes(cmd.OutOrStdout(), outs)

			return nil
		},
	}

	cmd.Flags().StringVarP(&graphPath, "graph", "g", "", "TOML graph file")
	cmd.Flags().StringVar(&from, "from", "", "source vertex")
	cmd.Flags().StringVar(&to, "to", "", "destination vertex")
	cmd.Flags().StringVar(&algo, "algo", algoBoth, "bfs, dijkstra or both")
	cmd.Flags().Float64Var(&maxCost, "max-cost", 0, "do not explore past this cost (hops for bfs, weight for dijkstra)")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
