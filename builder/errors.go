// SPDX-License-Identifier: MIT
// Package: lvgen/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Two top-level classes: ErrConfiguration (precondition violated, detected before any draw
//     or mutation; the target graph is untouched) and ErrGeneration (an invariant that should
//     hold for a valid configuration failed at runtime).
//   • Precise configuration sentinels wrap ErrConfiguration, so callers may branch on either
//     the class or the exact cause with errors.Is.
//   • Implementations attach context as "<Method>: <detail>: %w".
//   • Constructors MUST NOT panic at runtime; panics are confined to option constructors (WithX...).
//
// AI-Hints:
//   • Test with errors.Is(err, ErrConfiguration) for the class, errors.Is(err, ErrBadWeightRange) for the cause.
//   • Never match on error strings.

package builder

import (
	"errors"
	"fmt"
)

// ErrConfiguration classifies every precondition violation reported before generation starts.
var ErrConfiguration = errors.New("builder: invalid configuration")

// ErrGeneration classifies invariant failures detected while generating.
// The wrapping message names the step and node involved.
var ErrGeneration = errors.New("builder: generation failed")

// ErrTooFewVertices indicates that a size parameter (n, m, k, n0) is outside its domain,
// e.g. n ≤ 2k for Circulant or m > n0 for BarabasiAlbert.
var ErrTooFewVertices = fmt.Errorf("%w: size parameter out of range", ErrConfiguration)

// ErrInvalidProbability indicates that a probability (p, phi) is outside [0,1].
var ErrInvalidProbability = fmt.Errorf("%w: probability out of range", ErrConfiguration)

// ErrBadWeightRange indicates min_weight ≥ max_weight on a weighted target graph.
var ErrBadWeightRange = fmt.Errorf("%w: weight range is empty", ErrConfiguration)

// ErrUnsupportedGraphMode indicates a request the target graph's mode cannot honor,
// e.g. self-loop sampling on a graph that forbids loops, or a nil graph.
var ErrUnsupportedGraphMode = fmt.Errorf("%w: unsupported graph mode", ErrConfiguration)
