// Package cli implements the lvlpath command-line interface.
//
// # Commands
//
//   - demo:   search the built-in four-animal graph with both strategies
//   - find:   search a TOML graph file
//   - render: draw a graph file (optionally with a found route) as DOT or SVG
//   - gen:    write a generated graph (path, cycle, grid, ...) as a TOML file
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which includes
// the frontier traces of the search strategies. Loggers travel through
// context.Context.
//
// # Configuration
//
// --config points at a TOML file with defaults for algorithm, max_cost and
// format. Flags given on the command line win.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// app is the state shared by all commands of one invocation.
type app struct {
	verbose    bool
	configPath string
	cfg        Config
	logOut     io.Writer
}

// NewRootCommand builds the lvlpath command tree. Logs go to logOut.
func NewRootCommand(logOut io.Writer) *cobra.Command {
	a := &app{cfg: DefaultConfig(), logOut: logOut}

	root := &cobra.Command{
		Use:          "lvlpath",
		Short:        "lvlpath finds paths in weighted graphs",
		Long:         `lvlpath searches undirected weighted graphs with breadth-first search (fewest edges) and Dijkstra (least total weight).`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if a.verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(a.logOut, level)
			cmd.SetContext(withLogger(cmd.Context(), logger))

			if a.configPath == "" {
				return nil
			}
			cfg, err := LoadConfig(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			logger.Debug("config loaded", "path", a.configPath, "algorithm", cfg.Algorithm, "format", cfg.Format)

			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("lvlpath %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "TOML file with default settings")

	root.AddCommand(newDemoCmd(a))
	root.AddCommand(newFindCmd(a))
	root.AddCommand(newRenderCmd(a))
	root.AddCommand(newGenCmd())

	return root
}

// Execute runs the lvlpath CLI with os.Args under ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stderr).ExecuteContext(ctx)
}
