// SPDX-License-Identifier: MIT

// Package simul provides random-graph samplers for the classical
// independent-edge generative models of network statistics:
//
//   - SampleEdges      — Bernoulli graph from an arbitrary probability matrix
//   - ERNP             — Erdős–Rényi G(n,p) (single-block SBM degenerate case)
//   - ERNM             — Erdős–Rényi G(n,m) with an exact edge count
//   - SBM              — stochastic block model, optionally degree-corrected
//   - SIEM             — structured independent-edge model (per-edge communities)
//   - RDPG/PFromLatent — random dot product graph from latent positions
//   - SampleEdgesCorr  — Bernoulli-correlated graph pairs
//
// Data model:
//
//	All samplers consume and produce gonum *mat.Dense matrices. An adjacency
//	matrix is n×n with entry (i,j) holding the edge weight (0 = no edge);
//	symmetric when undirected, zero-diagonal when loops are disallowed. A
//	probability matrix holds per-edge Bernoulli parameters in [0,1]. Every
//	result is freshly allocated; inputs are never retained or mutated.
//
// Determinism contract (strict):
//
//   - No package-level random state. Stochastic routines require an explicit
//     RNG via WithRand(r) or WithSeed(s); absent one they fail with
//     ErrNeedRandSource, except on fully degenerate inputs (all probabilities
//     in {0,1} and no stochastic weights) which stay RNG-free.
//   - Draw order is fixed and documented per sampler, so a fixed seed and
//     option set reproduce the same adjacency matrix on every run.
//
// Error policy:
//
//	Only package-level sentinel errors are exposed; callers branch with
//	errors.Is. Context is attached with %w wrapping at the detection site.
//	Samplers never panic at runtime; panics are confined to option and
//	variant constructors receiving nonsensical values (WithRand(nil), a
//	negative constant weight, ...). Non-fatal adjustments (degree-correction
//	renormalization, truncated degree-corrected edge counts) are reported
//	through the optional WithWarnHandler callback and never abort a call.
//
// Concurrency:
//
//	Functions are pure with respect to package state and safe to call from
//	multiple goroutines as long as each call owns its *rand.Rand.
package simul
