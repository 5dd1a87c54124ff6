package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvgen/internal/config"
)

// requestFlags binds command-line flags onto a config.Request.
type requestFlags struct {
	req  config.Request
	seed int64
}

func newRequestFlags(model string) *requestFlags {
	f := &requestFlags{req: config.Default()}
	f.req.Model.Name = model
	return f
}

// bindCommon registers the graph, weight, seed and output flags shared by every generating command.
func (f *requestFlags) bindCommon(fs *pflag.FlagSet) {
	g, m, o := &f.req.Graph, &f.req.Model, &f.req.Output

	fs.BoolVar(&g.Directed, "directed", g.Directed, "generate a directed graph")
	fs.BoolVar(&g.Weighted, "weighted", g.Weighted, "generate integer edge weights in [min-weight, max-weight)")
	fs.BoolVar(&g.Loops, "allow-loops", g.Loops, "let the graph keep self-loops")
	fs.BoolVar(&g.Multi, "multi", g.Multi, "let the graph keep parallel edges")

	fs.Int64Var(&f.seed, "seed", 0, "random seed (default: derived from the clock)")
	fs.Int64Var(&m.MinWeight, "min-weight", m.MinWeight, "smallest edge weight (inclusive)")
	fs.Int64Var(&m.MaxWeight, "max-weight", m.MaxWeight, "largest edge weight (exclusive)")
	fs.BoolVar(&m.SelfLoops, "self-loops", m.SelfLoops, "let gnm/gnp sample (i,i) pairs (needs --allow-loops)")
	fs.StringVar(&m.IDs, "ids", m.IDs, "vertex ID scheme: decimal, hex, excel")

	fs.StringVarP(&o.Format, "format", "f", "edgelist", "output format: dot, json, edgelist")
	fs.StringVarP(&o.Path, "output", "o", "-", "output file (\"-\" for stdout); batches get an index suffix")
	fs.IntVarP(&o.Samples, "samples", "n", o.Samples, "number of independent graphs to generate")
	fs.IntVar(&o.Parallel, "parallel", o.Parallel, "maximum samples generated concurrently")
	fs.BoolVar(&o.Summary, "summary", o.Summary, "log a structural summary of every sample")
	fs.BoolVar(&o.LargestComponent, "largest-component", o.LargestComponent, "keep only the largest connected component")
}

// nodesFlag registers --nodes, required by every model.
func (f *requestFlags) nodesFlag(cmd *cobra.Command, usage string) {
	cmd.Flags().IntVar(&f.req.Model.Nodes, "nodes", 0, usage)
	_ = cmd.MarkFlagRequired("nodes")
}

// request finalizes the bound values: --seed applies only when given.
func (f *requestFlags) request(fs *pflag.FlagSet) (*config.Request, error) {
	req := f.req
	if fs.Changed("seed") {
		seed := f.seed
		req.Model.Seed = &seed
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &req, nil
}

// overrides copies one flag's value from the flag-bound request onto a loaded one.
var overrides = map[string]func(dst *config.Request, f *requestFlags){
	"directed":          func(d *config.Request, f *requestFlags) { d.Graph.Directed = f.req.Graph.Directed },
	"weighted":          func(d *config.Request, f *requestFlags) { d.Graph.Weighted = f.req.Graph.Weighted },
	"allow-loops":       func(d *config.Request, f *requestFlags) { d.Graph.Loops = f.req.Graph.Loops },
	"multi":             func(d *config.Request, f *requestFlags) { d.Graph.Multi = f.req.Graph.Multi },
	"seed":              func(d *config.Request, f *requestFlags) { seed := f.seed; d.Model.Seed = &seed },
	"min-weight":        func(d *config.Request, f *requestFlags) { d.Model.MinWeight = f.req.Model.MinWeight },
	"max-weight":        func(d *config.Request, f *requestFlags) { d.Model.MaxWeight = f.req.Model.MaxWeight },
	"self-loops":        func(d *config.Request, f *requestFlags) { d.Model.SelfLoops = f.req.Model.SelfLoops },
	"ids":               func(d *config.Request, f *requestFlags) { d.Model.IDs = f.req.Model.IDs },
	"format":            func(d *config.Request, f *requestFlags) { d.Output.Format = f.req.Output.Format },
	"output":            func(d *config.Request, f *requestFlags) { d.Output.Path = f.req.Output.Path },
	"samples":           func(d *config.Request, f *requestFlags) { d.Output.Samples = f.req.Output.Samples },
	"parallel":          func(d *config.Request, f *requestFlags) { d.Output.Parallel = f.req.Output.Parallel },
	"summary":           func(d *config.Request, f *requestFlags) { d.Output.Summary = f.req.Output.Summary },
	"largest-component": func(d *config.Request, f *requestFlags) { d.Output.LargestComponent = f.req.Output.LargestComponent },
}

// applyOverrides copies every flag set on the command line onto dst and revalidates it.
func (f *requestFlags) applyOverrides(fs *pflag.FlagSet, dst *config.Request) error {
	fs.Visit(func(fl *pflag.Flag) {
		if apply, ok := overrides[fl.Name]; ok {
			apply(dst, f)
		}
	})
	if err := dst.Validate(); err != nil {
		return fmt.Errorf("after flag overrides: %w", err)
	}
	return nil
}
