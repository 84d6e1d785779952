// SPDX-License-Identifier: MIT
// Package: graphstat/simul
//
// validators.go — central fail-fast validators shared by the samplers.
//
// Validation order (documented, enforced in tests):
//   nil → shape/squareness → dimension pairing → domain/range → RNG presence.
// Every validator returns plain sentinels wrapped with method context at
// the call site; none of them panic.

package simul

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// checkSquare validates that m is a non-nil square matrix and returns its
// order. The arg tag names the parameter in error messages ("P", "R", ...).
// Complexity: O(1).
func checkSquare(m *mat.Dense, method, arg string) (int, error) {
	if m == nil {
		return 0, fmt.Errorf("%s: %s: %w", method, arg, ErrNilMatrix)
	}
	r, c := m.Dims()
	if r != c {
		return 0, fmt.Errorf("%s: %s is %d×%d: %w", method, arg, r, c, ErrNonSquare)
	}

	return r, nil
}

// checkProbRange validates that every entry of m lies in [0,1].
// Complexity: O(r*c).
func checkProbRange(m *mat.Dense, method, arg string) error {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := m.At(i, j); v < 0 || v > 1 {
				return fmt.Errorf("%s: %s[%d,%d]=%g not in [0,1]: %w",
					method, arg, i, j, v, ErrInvalidProbability)
			}
		}
	}

	return nil
}

// stochasticProbs reports whether any entry of m lies strictly inside (0,1),
// i.e. whether Bernoulli sampling over m genuinely consumes randomness.
// Complexity: O(r*c).
func stochasticProbs(m *mat.Dense) bool {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := m.At(i, j); v > 0 && v < 1 {
				return true
			}
		}
	}

	return false
}

// exactlySymmetric reports whether m equals its transpose exactly.
// Model specifications (block probabilities, edge-community assignments)
// are caller-constructed parameters, not measured data, so the undirected
// checks use exact equality rather than an epsilon.
// Complexity: O(n²).
func exactlySymmetric(m *mat.Dense) bool {
	n, _ := m.Dims()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m.At(i, j) != m.At(j, i) {
				return false
			}
		}
	}

	return true
}

// checkSizes validates a community-size slice: non-empty, all positive.
// Complexity: O(K).
func checkSizes(sizes []int, method string) error {
	if len(sizes) == 0 {
		return fmt.Errorf("%s: empty community sizes: %w", method, ErrBadSize)
	}
	for b, s := range sizes {
		if s < 1 {
			return fmt.Errorf("%s: sizes[%d]=%d < 1: %w", method, b, s, ErrBadSize)
		}
	}

	return nil
}
