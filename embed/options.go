// SPDX-License-Identifier: MIT
// Package: graphstat/embed
//
// options.go — functional options for MultipleASE and SelectSVD.
//
// Contract (strict):
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     Fit/SelectSVD themselves only return sentinel errors.
//   • Deterministic defaults: exact thin SVD, 2 elbows, 5 power iterations,
//     scaled first stage, diagonal augmentation on, no concatenation, no RNG.
//   • The randomized algorithm is opt-in and requires WithRand/WithSeed.

package embed

import (
	"fmt"
	"math/rand"
)

// SVDAlgorithm selects the factorization backend of SelectSVD.
type SVDAlgorithm int

const (
	// SVDFull computes an exact thin SVD and truncates afterwards.
	// Deterministic; the default.
	SVDFull SVDAlgorithm = iota
	// SVDTruncated computes an exact thin SVD and keeps only the requested
	// components. Identical results to SVDFull on dense input; kept as a
	// distinct name so callers can state intent.
	SVDTruncated
	// SVDRandomized sketches the range with a Gaussian test matrix and
	// power iterations (Halko–Martinsson–Tropp). Requires an injected RNG.
	SVDRandomized
)

// Deterministic defaults (single source of truth).
const (
	defaultElbows     = 2  // scree elbows to locate when rank is automatic
	defaultIterations = 5  // power iterations for the randomized sketch
	defaultOversample = 10 // extra sketch columns beyond the target rank
)

// Option customizes SelectSVD or a MultipleASE instance.
type Option func(*config)

// config aggregates all embedding knobs; resolved once, passed by value.
type config struct {
	nComponents int // 0 ⇒ automatic rank via SelectDimension
	nElbows     int
	algorithm   SVDAlgorithm
	nIter       int
	scaled      bool
	diagAug     bool
	concat      bool
	rng         *rand.Rand
}

func newConfig(opts ...Option) config {
	cfg := config{
		nComponents: 0,
		nElbows:     defaultElbows,
		algorithm:   SVDFull,
		nIter:       defaultIterations,
		scaled:      true,
		diagAug:     true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithComponents fixes the target embedding dimension, bypassing automatic
// elbow selection. Panics if d < 1; omit the option for automatic rank.
// Complexity: O(1).
func WithComponents(d int) Option {
	if d < 1 {
		panic(fmt.Sprintf("embed: WithComponents(%d)", d))
	}

	return func(c *config) { c.nComponents = d }
}

// WithElbows sets how many successive scree elbows the automatic rank
// selector locates; the last one is used. Panics if k < 1.
// Complexity: O(1).
func WithElbows(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("embed: WithElbows(%d)", k))
	}

	return func(c *config) { c.nElbows = k }
}

// WithAlgorithm selects the SVD backend. Panics on an unknown value.
// Complexity: O(1).
func WithAlgorithm(alg SVDAlgorithm) Option {
	switch alg {
	case SVDFull, SVDTruncated, SVDRandomized:
	default:
		panic(fmt.Sprintf("embed: WithAlgorithm(%d): unknown algorithm", alg))
	}

	return func(c *config) { c.algorithm = alg }
}

// WithIterations sets the power-iteration count of the randomized sketch.
// Ignored by the exact algorithms. Panics if n < 0.
// Complexity: O(1).
func WithIterations(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("embed: WithIterations(%d)", n))
	}

	return func(c *config) { c.nIter = n }
}

// Unscaled disables multiplying first-stage factors by the square roots of
// their singular values. The scaled default reduces the first stage to the
// ordinary adjacency spectral embedding of each graph.
// Complexity: O(1).
func Unscaled() Option {
	return func(c *config) { c.scaled = false }
}

// NoDiagAug disables degree-based diagonal augmentation before embedding.
// Complexity: O(1).
func NoDiagAug() Option {
	return func(c *config) { c.diagAug = false }
}

// Concat makes FitTransform return [U | V], the column-wise concatenation
// of left and right latent positions, for directed populations.
// Complexity: O(1).
func Concat() Option {
	return func(c *config) { c.concat = true }
}

// WithRand provides an explicit RNG for the randomized SVD algorithm.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("embed: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}
