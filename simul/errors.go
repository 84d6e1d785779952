// SPDX-License-Identifier: MIT
// Package: graphstat/simul
//
// errors.go — sentinel errors for the simul package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context via fmt.Errorf("Method: ...: %w", ErrX).
//   • Samplers MUST NOT panic at runtime; validation panics are confined to
//     option and variant constructors (WithX, ConstantWeight, DCVector, ...).

package simul

import "errors"

// ErrNilMatrix indicates that a required matrix argument was nil.
// Typical origins: SampleEdges(nil), PFromLatent(nil, ...), SBM(sizes, nil).
// Usage: if errors.Is(err, ErrNilMatrix) { /* supply the matrix */ }.
var ErrNilMatrix = errors.New("simul: nil matrix")

// ErrNonSquare signals that a square matrix was required but the input wasn't.
// Probability, correlation and edge-community matrices must all be n×n.
var ErrNonSquare = errors.New("simul: matrix is not square")

// ErrDimensionMismatch indicates incompatible dimensions between paired
// parameters: p vs. len(sizes) in SBM, X vs. Y in PFromLatent, a weight or
// degree-correction table vs. the community count, and so on.
var ErrDimensionMismatch = errors.New("simul: dimension mismatch")

// ErrBadSize indicates an invalid scalar size parameter (n < 1, m < 1,
// an empty sizes slice, or a non-positive community size).
var ErrBadSize = errors.New("simul: invalid size")

// ErrTooManyEdges indicates that the requested exact edge count m exceeds
// the combinatorial maximum for (n, directed, loops).
// Usage: if errors.Is(err, ErrTooManyEdges) { /* lower m */ }.
var ErrTooManyEdges = errors.New("simul: edge count exceeds maximum")

// ErrInvalidProbability indicates a probability outside the closed
// interval [0,1], in a scalar p, a block matrix, or a per-community slice.
var ErrInvalidProbability = errors.New("simul: probability out of range")

// ErrAsymmetry signals that an undirected model was requested with a
// directed specification: an asymmetric block-probability matrix, an
// asymmetric per-block weight table, or an asymmetric edge-community
// assignment.
var ErrAsymmetry = errors.New("simul: specification is not symmetric")

// ErrBadCommunities indicates a malformed community assignment: labels not
// densely numbered 1..K, a nonzero diagonal in a loopless SIEM assignment,
// or non-contiguous numbering.
var ErrBadCommunities = errors.New("simul: malformed community assignment")

// ErrBadDegreeCorrection indicates invalid degree-correction weights:
// negative entries, a block whose weights sum to zero, or an unusable
// variant for the requested model.
var ErrBadDegreeCorrection = errors.New("simul: invalid degree correction")

// ErrNeedRandSource indicates that a stochastic sampler requires a non-nil
// *rand.Rand (WithRand/WithSeed must be set). Degenerate calls with all
// probabilities in {0,1} and no stochastic weights remain RNG-free.
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("simul: rng is required")
