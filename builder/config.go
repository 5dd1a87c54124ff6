// SPDX-License-Identifier: MIT
// Package: lvgen/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • It stores the SEED, not a generator: every constructor call opens its own
//     stream from it (newStream) and drops it on return, so no stream is shared
//     between calls or goroutines.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Defaults:
//   • idFn      = DefaultIDFn        ("0","1","2",...)
//   • seed      = unset               (time-derived stream per call)
//   • weights   = [1,1)               (valid only for unweighted targets)
//   • loops     = false               (RandomEdges/RandomProbability drop self-pairs)

package builder

import (
	"github.com/katalvlaran/lvgen/core"
	"github.com/katalvlaran/lvgen/stream"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn IDFn

	// Seed for per-call streams; seeded=false means "derive from the clock".
	seed   int64
	seeded bool

	// Half-open integer weight range [minWeight, maxWeight); used only for weighted graphs.
	minWeight int64
	maxWeight int64

	// Whether the sampling generators may emit self-pairs.
	loops bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:      DefaultIDFn,
		minWeight: DefaultMinWeight,
		maxWeight: DefaultMaxWeight,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// newStream opens the stream for one constructor call.
func newStream(cfg builderConfig) *stream.Stream {
	if cfg.seeded {
		return stream.New(cfg.seed)
	}
	return stream.NewUnseeded()
}

// drawWeight returns the weight for one accepted candidate:
// 0 on unweighted graphs, a uniform integer in [minWeight, maxWeight) otherwise.
func drawWeight(weighted bool, cfg builderConfig, s *stream.Stream) int64 {
	if !weighted {
		return 0
	}
	return s.Int64Range(cfg.minWeight, cfg.maxWeight)
}

// edgeSpec maps an index pair to an edge candidate through cfg.idFn.
func edgeSpec(cfg builderConfig, u, v int, w int64) core.EdgeSpec {
	return core.EdgeSpec{From: cfg.idFn(u), To: cfg.idFn(v), Weight: w}
}
