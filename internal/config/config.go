// Package config loads generation requests from TOML files.
//
// A request names one model with its parameters, the mode of the target graph,
// and how the result is written:
//
//	[graph]
//	directed = true
//	weighted = true
//
//	[model]
//	name       = "barabasi-albert"
//	initial    = 5
//	nodes      = 1000
//	edges      = 3
//	seed       = 42
//	min_weight = 1
//	max_weight = 10
//
//	[output]
//	format  = "dot"
//	path    = "ba.dot"
//	samples = 4
package config

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/lvgen/builder"
	"github.com/katalvlaran/lvgen/core"
)

// Model names accepted in [model].name and used as CLI subcommand names.
const (
	ModelGNM            = "gnm"
	ModelGNP            = "gnp"
	ModelCirculant      = "circulant"
	ModelNewmanWatts    = "newman-watts"
	ModelBarabasiAlbert = "barabasi-albert"
)

// Models lists every model name.
var Models = []string{ModelGNM, ModelGNP, ModelCirculant, ModelNewmanWatts, ModelBarabasiAlbert}

// Request is one generation job.
type Request struct {
	Graph  Graph  `toml:"graph"`
	Model  Model  `toml:"model"`
	Output Output `toml:"output"`
}

// Graph selects the target graph variant and insertion policy.
type Graph struct {
	Directed bool `toml:"directed"`
	Weighted bool `toml:"weighted"`
	Loops    bool `toml:"loops"`
	Multi    bool `toml:"multi"`
}

// Model holds the model name and the union of all model parameters.
// Fields a model does not use are ignored.
type Model struct {
	Name string `toml:"name"`

	Nodes   int     `toml:"nodes"`
	Edges   int     `toml:"edges"`   // gnm: total trials; barabasi-albert: edges per new node
	P       float64 `toml:"p"`       // gnp
	Degree  int     `toml:"degree"`  // circulant, newman-watts
	Phi     float64 `toml:"phi"`     // newman-watts
	Initial int     `toml:"initial"` // barabasi-albert seed clique

	Seed      *int64 `toml:"seed"`
	MinWeight int64  `toml:"min_weight"`
	MaxWeight int64  `toml:"max_weight"`
	SelfLoops bool   `toml:"self_loops"`
	IDs       string `toml:"ids"`
}

// Output controls serialization and batch sampling.
type Output struct {
	Format           string `toml:"format"`
	Path             string `toml:"path"` // empty or "-" writes to stdout
	Samples          int    `toml:"samples"`
	Parallel         int    `toml:"parallel"`
	Summary          bool   `toml:"summary"`
	LargestComponent bool   `toml:"largest_component"`
}

// Default returns a request with the library defaults filled in.
func Default() Request {
	return Request{
		Model: Model{
			MinWeight: builder.DefaultMinWeight,
			MaxWeight: builder.DefaultMaxWeight,
		},
		Output: Output{Samples: 1, Parallel: 1},
	}
}

// Load reads and validates the request file at path.
// Keys the request layout does not know are rejected.
func Load(path string) (*Request, error) {
	req := Default()
	md, err := toml.DecodeFile(path, &req)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return finish(&req, md, path)
}

// Parse decodes and validates a request from TOML text.
func Parse(data string) (*Request, error) {
	req := Default()
	md, err := toml.Decode(data, &req)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return finish(&req, md, "<inline>")
}

func finish(req *Request, md toml.MetaData, source string) (*Request, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("config: %s: unknown keys %s", source, strings.Join(keys, ", "))
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", source, err)
	}
	return req, nil
}

// GraphOptions maps [graph] onto core graph options.
func (r *Request) GraphOptions() []core.GraphOption {
	opts := []core.GraphOption{core.WithDirected(r.Graph.Directed)}
	if r.Graph.Weighted {
		opts = append(opts, core.WithWeighted())
	}
	if r.Graph.Loops {
		opts = append(opts, core.WithLoops())
	}
	if r.Graph.Multi {
		opts = append(opts, core.WithMultiEdges())
	}
	return opts
}

// BuilderOptions maps [model] onto builder options. seed overrides [model].seed when non-nil.
func (r *Request) BuilderOptions(seed *int64) ([]builder.BuilderOption, error) {
	idFn, err := builder.IDSchemeByName(r.Model.IDs)
	if err != nil {
		return nil, err
	}
	opts := []builder.BuilderOption{
		builder.WithWeightRange(r.Model.MinWeight, r.Model.MaxWeight),
		builder.WithSelfLoops(r.Model.SelfLoops),
		builder.WithIDScheme(idFn),
	}
	if seed == nil {
		seed = r.Model.Seed
	}
	if seed != nil {
		opts = append(opts, builder.WithSeed(*seed))
	}
	return opts, nil
}

// Constructor returns the builder constructor for [model].
func (r *Request) Constructor() (builder.Constructor, error) {
	m := r.Model
	switch m.Name {
	case ModelGNM:
		return builder.RandomEdges(m.Nodes, m.Edges), nil
	case ModelGNP:
		return builder.RandomProbability(m.Nodes, m.P), nil
	case ModelCirculant:
		return builder.Circulant(m.Nodes, m.Degree), nil
	case ModelNewmanWatts:
		return builder.NewmanWatts(m.Nodes, m.Degree, m.Phi), nil
	case ModelBarabasiAlbert:
		return builder.BarabasiAlbert(m.Initial, m.Nodes, m.Edges), nil
	default:
		return nil, fmt.Errorf("unknown model %q (want one of %s)", m.Name, strings.Join(Models, ", "))
	}
}

// knownModel reports whether name is one of Models.
func knownModel(name string) bool {
	return slices.Contains(Models, name)
}
