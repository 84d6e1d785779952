// SPDX-License-Identifier: MIT
// Package: graphstat/simul
//
// options.go — functional options and the resolved per-call configuration.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     samplers themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through config, passed by value.

package simul

import (
	"math/rand" // explicit RNG injection for stochastic samplers
)

// Option customizes a single sampler call by mutating a config instance
// before sampling begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// config aggregates all knobs used by the samplers. It is resolved once per
// call and passed by value to internal kernels (immutable to callers).
type config struct {
	directed bool // ordered edges; false ⇒ one draw per unordered pair, mirrored
	loops    bool // allow self-edges; false ⇒ zero diagonal after sampling
	rescale  bool // PFromLatent: affine rescale into [0,1] instead of clipping

	rng  *rand.Rand   // nil means "no randomness permitted"
	warn func(string) // non-fatal adjustment sink; nil means silent

	weight       *Weight           // global edge-weight policy (ERNM, RDPG, SBM/SIEM fallback)
	blockWeights [][]Weight        // SBM per-block-pair weights, K×K
	commWeights  []Weight          // SIEM per-edge-community weights, length K
	dc           *DegreeCorrection // SBM/ERNP degree correction
}

// Deterministic defaults (documented; no magic behavior):
//   - undirected, loopless, clip policy, no RNG, silent warnings,
//     binary edges (no weight policy set).
func newConfig(opts ...Option) config {
	var cfg config
	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Directed marks the sampled graph as directed: every ordered vertex pair is
// an independent Bernoulli trial and the result is not symmetrized.
// Complexity: O(1).
func Directed() Option {
	return func(c *config) { c.directed = true }
}

// WithLoops permits self-edges. When absent the diagonal is zeroed after
// sampling (and, for PFromLatent, before any rescaling).
// Complexity: O(1).
func WithLoops() Option {
	return func(c *config) { c.loops = true }
}

// WithRescale selects the affine probability policy for PFromLatent/RDPG:
// subtract the minimum if it is negative, then divide by the maximum if it
// exceeds 1. Without it, entries are clipped into [0,1]. The two policies
// are mutually exclusive by construction.
// Complexity: O(1).
func WithRescale() Option {
	return func(c *config) { c.rescale = true }
}

// WithRand provides an explicit RNG for stochastic samplers.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("simul: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(c *config) {
		// Seeded source → reproducible draws for a fixed option set.
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWarnHandler registers a sink for non-fatal adjustment notices
// (degree-correction renormalization, truncated degree-corrected edge
// counts). Panics on nil; omit the option for silent adjustment.
// Complexity: O(1).
func WithWarnHandler(fn func(string)) Option {
	if fn == nil {
		panic("simul: WithWarnHandler(nil)")
	}

	return func(c *config) { c.warn = fn }
}

// WithWeight sets the global edge-weight policy. Accepted edges receive
// the constant value or an independent draw per edge; omitted means a
// binary graph.
// Complexity: O(1).
func WithWeight(w Weight) Option {
	return func(c *config) {
		wc := w
		c.weight = &wc
	}
}

// WithBlockWeights sets a K×K table of per-block-pair weight policies for
// SBM. Entry [i][j] governs edges between communities i and j. Shape and
// symmetry (for undirected graphs) are validated by SBM, not here.
// Panics on a nil table.
// Complexity: O(1).
func WithBlockWeights(ws [][]Weight) Option {
	if ws == nil {
		panic("simul: WithBlockWeights(nil)")
	}

	return func(c *config) { c.blockWeights = ws }
}

// WithCommunityWeights sets a length-K slice of per-edge-community weight
// policies for SIEM. Entry [k] governs edges assigned to community k+1.
// Panics on a nil slice; length is validated by SIEM.
// Complexity: O(1).
func WithCommunityWeights(ws []Weight) Option {
	if ws == nil {
		panic("simul: WithCommunityWeights(nil)")
	}

	return func(c *config) { c.commWeights = ws }
}

// WithDegreeCorrection attaches a degree-correction specification to SBM
// (and, through delegation, ERNP). The variant is normalized into one
// per-vertex weight vector before the sampling loop runs.
// Complexity: O(1).
func WithDegreeCorrection(dc DegreeCorrection) Option {
	return func(c *config) {
		dcc := dc
		c.dc = &dcc
	}
}

// warnf reports a non-fatal adjustment through the configured handler.
// A nil handler means the adjustment stays silent (documented default).
func (c config) warnf(msg string) {
	if c.warn != nil {
		c.warn(msg)
	}
}
