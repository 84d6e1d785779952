// SPDX-License-Identifier: MIT
// Package: graphstat/embed
//
// errors.go — sentinel errors for the embed package. Same policy as simul:
// package-level sentinels only, errors.Is for branching, %w context at the
// detection site, no runtime panics.

package embed

import "errors"

// ErrNoGraphs indicates that Fit received an empty graph collection.
var ErrNoGraphs = errors.New("embed: no graphs supplied")

// ErrNilMatrix indicates a nil matrix in the input collection or argument.
var ErrNilMatrix = errors.New("embed: nil matrix")

// ErrNonSquare signals that an adjacency matrix was not square.
var ErrNonSquare = errors.New("embed: matrix is not square")

// ErrDimensionMismatch indicates that the graphs in one collection do not
// share a single shape.
var ErrDimensionMismatch = errors.New("embed: graphs must share one shape")

// ErrBadDimension indicates an invalid dimension parameter (negative
// component count, zero elbows, a matrix too small to augment, ...).
var ErrBadDimension = errors.New("embed: invalid dimension")

// ErrDimensionTooLarge indicates that the requested component count
// exceeds min(rows, cols) of the decomposed matrix.
var ErrDimensionTooLarge = errors.New("embed: component count exceeds matrix rank bound")

// ErrNoElbow indicates that elbow selection received no usable (positive)
// singular values.
var ErrNoElbow = errors.New("embed: no elbow found")

// ErrSVDFailed indicates that the underlying factorization did not
// converge.
var ErrSVDFailed = errors.New("embed: svd did not converge")

// ErrNeedRandSource indicates that the randomized SVD algorithm was
// selected without an injected RNG (WithRand/WithSeed).
var ErrNeedRandSource = errors.New("embed: rng is required")

// ErrNotFitted indicates that a fitted attribute was read before Fit
// completed successfully.
var ErrNotFitted = errors.New("embed: model is not fitted")
