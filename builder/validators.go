// Package builder provides validation helpers that enforce parameter
// contracts before any stream draw or graph mutation happens.
//
// Each helper returns "<Method>: <detail>: %w" wrapping an ErrConfiguration sentinel.
package builder

import "fmt"

// validateMin ensures got ≥ min for a named size parameter.
// Complexity: O(1).
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability] for a named parameter.
// Complexity: O(1).
func validateProbability(method, name string, p float64) error {
	// The negated form also rejects NaN.
	if !(p >= MinProbability && p <= MaxProbability) {
		return fmt.Errorf("%s: %s=%g not in [%.1f,%.1f]: %w",
			method, name, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}

// validateWeightRange enforces min < max when the target graph is weighted.
// Unweighted targets ignore the range entirely.
// Complexity: O(1).
func validateWeightRange(method string, weighted bool, cfg builderConfig) error {
	if weighted && cfg.minWeight >= cfg.maxWeight {
		return fmt.Errorf("%s: weighted graph needs min_weight < max_weight, got [%d,%d): %w",
			method, cfg.minWeight, cfg.maxWeight, ErrBadWeightRange)
	}

	return nil
}

// validateLoops rejects self-pair sampling on a graph whose policy forbids loops.
// Complexity: O(1).
func validateLoops(method string, g Graph, cfg builderConfig) error {
	if cfg.loops && !g.Looped() {
		return fmt.Errorf("%s: self-loops requested on a loop-free graph: %w", method, ErrUnsupportedGraphMode)
	}

	return nil
}
