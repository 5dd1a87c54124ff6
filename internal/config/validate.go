package config

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvgen/builder"
	"github.com/katalvlaran/lvgen/export"
)

// Validate checks the request shape. Model parameter domains (n > 2k, p in [0,1], ...)
// are left to the builder constructors, which report them as builder.ErrConfiguration.
func (r *Request) Validate() error {
	if err := r.validateModel(); err != nil {
		return err
	}

	if err := r.validateWeights(); err != nil {
		return err
	}

	if err := r.validateOutput(); err != nil {
		return err
	}

	return nil
}

func (r *Request) validateModel() error {
	if r.Model.Name == "" {
		return fmt.Errorf("model.name is required (one of %s)", strings.Join(Models, ", "))
	}

	if !knownModel(r.Model.Name) {
		return fmt.Errorf("model.name %q is not one of %s", r.Model.Name, strings.Join(Models, ", "))
	}

	if r.Model.Nodes < builder.MinVertices {
		return fmt.Errorf("model.nodes must be at least %d, got %d", builder.MinVertices, r.Model.Nodes)
	}

	if _, err := builder.IDSchemeByName(r.Model.IDs); err != nil {
		return fmt.Errorf("model.ids: %w", err)
	}

	if r.Model.SelfLoops && !r.Graph.Loops {
		return fmt.Errorf("model.self_loops requires graph.loops")
	}

	return nil
}

func (r *Request) validateWeights() error {
	if r.Graph.Weighted && r.Model.MinWeight >= r.Model.MaxWeight {
		return fmt.Errorf("weighted graphs need model.min_weight < model.max_weight, got [%d,%d)",
			r.Model.MinWeight, r.Model.MaxWeight)
	}

	return nil
}

func (r *Request) validateOutput() error {
	if _, err := export.ParseFormat(r.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}

	if r.Output.Samples < 1 {
		return fmt.Errorf("output.samples must be at least 1, got %d", r.Output.Samples)
	}

	if r.Output.Parallel < 1 {
		return fmt.Errorf("output.parallel must be at least 1, got %d", r.Output.Parallel)
	}

	return nil
}
