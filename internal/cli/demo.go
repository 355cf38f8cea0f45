package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlpath/builder"
)

// farmNetwork is the four-animal square:
// donkey–sheep(9), sheep–cow(3), cow–horse(5), horse–donkey(8).
func farmNetwork() (*builder.Network, error) {
	net := builder.NewNetwork()
	for _, e := range []struct {
		a, b string
		w    float64
	}{
		{"donkey", "sheep", 9},
		{"sheep", "cow", 3},
		{"cow", "horse", 5},
		{"horse", "donkey", 8},
	} {
		if err := net.Connect(e.a, e.b, e.w); err != nil {
			return nil, err
		}
	}

	return net, nil
}

func newDemoCmd(a *app) *cobra.Command {
	var from, to, algo string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Search the built-in farm graph",
		Long: `Search the built-in four-animal graph

  donkey ─9─ sheep
    │          │
    8          3
    │          │
  horse ──5── cow

with breadth-first search and Dijkstra.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("algo") {
				algo = a.cfg.Algorithm
			}
			net, err := farmNetwork()
			if err != nil {
				return err
			}
			outs, err := searchAll(cmd.Context(), net, from, to, algo, a.cfg.MaxCost)
			if err != nil {
				return err
			}
			printOutcomes(cmd.OutOrStdout(), outs)

			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "donkey", "source vertex")
	cmd.Flags().StringVar(&to, "to", "horse", "destination vertex")
	cmd.Flags().StringVar(&algo, "algo", algoBoth, "bfs, dijkstra or both")

	return cmd
}
