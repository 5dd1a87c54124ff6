package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvgen/export"
	"github.com/katalvlaran/lvgen/internal/config"
)

// modelCommand builds a generating subcommand; model registers the model-specific flags.
func (c *CLI) modelCommand(name, short, long string, model func(cmd *cobra.Command, f *requestFlags)) *cobra.Command {
	f := newRequestFlags(name)
	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Long:  long,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := f.request(cmd.Flags())
			if err != nil {
				return err
			}
			return c.generate(cmd.Context(), req)
		},
	}
	model(cmd, f)
	f.bindCommon(cmd.Flags())
	return cmd
}

func (c *CLI) gnmCommand() *cobra.Command {
	return c.modelCommand(config.ModelGNM,
		"Erdős–Rényi graph with a fixed number of edge trials",
		`Draws --edges endpoint pairs uniformly over --nodes vertices. Self-pairs are dropped unless --self-loops is set.`,
		func(cmd *cobra.Command, f *requestFlags) {
			f.nodesFlag(cmd, "number of vertices")
			cmd.Flags().IntVar(&f.req.Model.Edges, "edges", 0, "number of edge trials")
		})
}

func (c *CLI) gnpCommand() *cobra.Command {
	return c.modelCommand(config.ModelGNP,
		"Erdős–Rényi G(n,p) graph",
		`Includes every admissible vertex pair independently with probability --p. Costs O(n²) trials.`,
		func(cmd *cobra.Command, f *requestFlags) {
			f.nodesFlag(cmd, "number of vertices")
			cmd.Flags().Float64VarP(&f.req.Model.P, "p", "p", 0, "edge probability in [0,1]")
		})
}

func (c *CLI) circulantCommand() *cobra.Command {
	return c.modelCommand(config.ModelCirculant,
		"Circulant ring lattice",
		`Connects vertex i to i+1..i+degree (mod nodes). Deterministic; requires nodes > 2*degree.`,
		func(cmd *cobra.Command, f *requestFlags) {
			f.nodesFlag(cmd, "number of vertices")
			cmd.Flags().IntVar(&f.req.Model.Degree, "degree", 1, "forward neighbors per vertex")
		})
}

func (c *CLI) newmanWattsCommand() *cobra.Command {
	return c.modelCommand(config.ModelNewmanWatts,
		"Newman–Watts small-world graph",
		`Builds a circulant lattice and gives every vertex one random shortcut with probability --phi.`,
		func(cmd *cobra.Command, f *requestFlags) {
			f.nodesFlag(cmd, "number of vertices")
			cmd.Flags().IntVar(&f.req.Model.Degree, "degree", 1, "forward neighbors per vertex in the lattice")
			cmd.Flags().Float64Var(&f.req.Model.Phi, "phi", 0, "shortcut probability in [0,1]")
		})
}

func (c *CLI) barabasiAlbertCommand() *cobra.Command {
	return c.modelCommand(config.ModelBarabasiAlbert,
		"Barabási–Albert preferential-attachment graph",
		`Grows a graph from a clique of --initial vertices to --nodes vertices; every new vertex attaches --edges edges, preferring high-degree vertices.`,
		func(cmd *cobra.Command, f *requestFlags) {
			f.nodesFlag(cmd, "final number of vertices")
			cmd.Flags().IntVar(&f.req.Model.Initial, "initial", 1, "size of the seed clique")
			cmd.Flags().IntVar(&f.req.Model.Edges, "edges", 1, "edges brought by every new vertex")
		})
}

func (c *CLI) runCommand() *cobra.Command {
	f := newRequestFlags("")
	cmd := &cobra.Command{
		Use:   "run <request.toml>",
		Short: "Generate graphs from a TOML request file",
		Long:  `Loads a request file ([graph], [model], [output] tables). Flags given on the command line override the file.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := config.Load(args[0])
			if err != nil {
				return err
			}
			if err := f.applyOverrides(cmd.Flags(), req); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("loaded request", "path", args[0], "model", req.Model.Name)
			return c.generate(cmd.Context(), req)
		},
	}
	f.bindCommon(cmd.Flags())
	return cmd
}

func (c *CLI) summarizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summarize <graph.json>",
		Short: "Print the structural summary of a JSON graph",
		Long:  `Reads a graph written with --format json ("-" for stdin) and prints its summary as JSON.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if args[0] != "-" {
				file, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer file.Close()
				in = file
			}

			g, err := export.ReadJSON(in)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			s, err := export.Summarize(cmd.Context(), g)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(c.Out)
			enc.SetIndent("", "  ")
			return enc.Encode(s)
		},
	}
}
