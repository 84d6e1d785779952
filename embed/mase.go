// SPDX-License-Identifier: MIT
// Package: graphstat/embed
//
// mase.go — multiple adjacency spectral embedding (MASE).
//
// Canonical model:
//   - Undirected population: graphs are modeled as A_i ≈ V·R_i·Vᵀ with one
//     shared latent-position matrix V and per-graph symmetric scores R_i.
//   - Directed population: A_i ≈ U·R_i·Vᵀ with shared left/right latent
//     positions of possibly different ranks and unconstrained scores.
//
// Pipeline (two-stage SVD with injected rank selection):
//  1. Optionally diagonal-augment each graph (AugmentDiagonal).
//  2. Per graph, truncated SVD at rank ⌈log₂ n⌉ → (U_i, D_i, V_i).
//  3. One joint rank: the fixed WithComponents value, else the max over
//     graphs of the last SelectDimension elbow of D_i (capped at the
//     stage-1 rank).
//  4. Scaled (default): multiply each truncated factor by √D_i — exactly
//     the per-graph adjacency spectral embedding — then concatenate
//     horizontally; unscaled concatenates the raw factors.
//  5. Joint SVD of the concatenated left (and, if directed, right)
//     factors yields U (and V). Scores: R_i = Uᵀ·A_i·V, or Uᵀ·A_i·U for
//     undirected populations (computed on the augmented matrices when
//     augmentation is active).
//
// State machine: NewMultipleASE(...) → Fit(graphs) → fitted accessors.
// Accessors before a successful Fit return ErrNotFitted. Fit may be called
// again; it overwrites all fitted state atomically (state is assigned only
// after the whole pipeline succeeds).
//
// Concurrency: a MultipleASE value is NOT safe for concurrent Fit calls;
// fitted accessors are read-only and safe once Fit has returned.

package embed

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// symmetryEps bounds the entrywise asymmetry |A[i,j]−A[j,i]| below which a
// graph still counts as undirected.
const symmetryEps = 1e-9

const methodFit = "MultipleASE.Fit"

// MultipleASE embeds an arbitrary number of graphs with matched vertex
// sets into one joint latent space. Construct with NewMultipleASE; zero
// values are not meaningful.
type MultipleASE struct {
	cfg config

	fitted    bool
	nGraphs   int
	nVertices int
	directed  bool

	latentLeft  *mat.Dense
	latentRight *mat.Dense // nil for undirected populations
	scores      []*mat.Dense
}

// NewMultipleASE builds an unfitted embedder. Defaults: automatic rank
// (2 elbows), exact thin SVD, scaled first stage, diagonal augmentation on.
func NewMultipleASE(opts ...Option) *MultipleASE {
	return &MultipleASE{cfg: newConfig(opts...)}
}

// Fit runs the two-stage embedding over graphs and populates the fitted
// attributes. The input matrices are never mutated.
func (m *MultipleASE) Fit(graphs []*mat.Dense) error {
	n, err := checkGraphs(graphs)
	if err != nil {
		return err
	}
	if m.cfg.algorithm == SVDRandomized && m.cfg.rng == nil {
		return fmt.Errorf("%s: randomized algorithm: %w", methodFit, ErrNeedRandSource)
	}

	// Population directedness: one asymmetric member makes the whole
	// collection directed.
	undirected := true
	for _, g := range graphs {
		if !almostSymmetric(g, symmetryEps) {
			undirected = false
			break
		}
	}

	// Diagonal augmentation (copies); otherwise work on the inputs
	// read-only.
	work := graphs
	if m.cfg.diagAug {
		work = make([]*mat.Dense, len(graphs))
		for i, g := range graphs {
			if work[i], err = AugmentDiagonal(g); err != nil {
				return fmt.Errorf("%s: graph %d: %w", methodFit, i, err)
			}
		}
	}

	uhat, vhat, err := m.reduceDim(work, n)
	if err != nil {
		return err
	}

	// Scores on the (possibly augmented) inputs.
	scores := make([]*mat.Dense, len(work))
	right := vhat
	if undirected {
		right = uhat
	}
	for i, g := range work {
		scores[i] = recoverScores(uhat, g, right)
	}

	// Commit fitted state only after the full pipeline succeeded.
	m.nGraphs = len(graphs)
	m.nVertices = n
	m.directed = !undirected
	m.latentLeft = uhat
	if undirected {
		m.latentRight = nil
	} else {
		m.latentRight = vhat
	}
	m.scores = scores
	m.fitted = true

	return nil
}

// FitTransform fits the model and returns the latent positions. Undirected
// populations return (U, nil). Directed populations return (U, V), or
// ([U|V], nil) when Concat is set.
func (m *MultipleASE) FitTransform(graphs []*mat.Dense) (*mat.Dense, *mat.Dense, error) {
	if err := m.Fit(graphs); err != nil {
		return nil, nil, err
	}
	if !m.directed {
		return m.latentLeft, nil, nil
	}
	if m.cfg.concat {
		return hstack([]*mat.Dense{m.latentLeft, m.latentRight}), nil, nil
	}

	return m.latentLeft, m.latentRight, nil
}

// reduceDim is the two-stage core: per-graph truncated SVDs, one joint
// rank, optional √D scaling, concatenation, joint SVDs.
func (m *MultipleASE) reduceDim(graphs []*mat.Dense, n int) (*mat.Dense, *mat.Dense, error) {
	// Stage-1 rank: ⌈log₂ n⌉, at least 1, never beyond n.
	stage1 := int(math.Ceil(math.Log2(float64(n))))
	if stage1 < 1 {
		stage1 = 1
	}
	if stage1 > n {
		stage1 = n
	}

	us := make([]*mat.Dense, len(graphs))
	vs := make([]*mat.Dense, len(graphs))
	ds := make([][]float64, len(graphs))
	for i, g := range graphs {
		u, d, v, err := selectSVD(g, stage1, m.cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: graph %d: %w", methodFit, i, err)
		}
		us[i], ds[i], vs[i] = u, d, v
	}

	// One joint truncation rank across all graphs.
	best := m.cfg.nComponents
	if best == 0 {
		for i, d := range ds {
			elbows, err := SelectDimension(d, m.cfg.nElbows)
			if err != nil {
				return nil, nil, fmt.Errorf("%s: graph %d: %w", methodFit, i, err)
			}
			if last := elbows[len(elbows)-1]; last > best {
				best = last
			}
		}
	}
	if best > stage1 {
		best = stage1
	}

	// Truncate (and optionally scale) each factor, then concatenate.
	for i := range graphs {
		us[i] = truncateCols(us[i], best)
		vs[i] = truncateCols(vs[i], best)
		if m.cfg.scaled {
			scaleColsSqrt(us[i], ds[i][:best])
			scaleColsSqrt(vs[i], ds[i][:best])
		}
	}
	concatU := hstack(us)
	concatV := hstack(vs)

	// Stage 2: joint decomposition of each concatenated factor block.
	uhat, _, _, err := selectSVD(concatU, m.cfg.nComponents, m.cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: joint left factor: %w", methodFit, err)
	}
	vhat, _, _, err := selectSVD(concatV, m.cfg.nComponents, m.cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: joint right factor: %w", methodFit, err)
	}

	return uhat, vhat, nil
}

// Fitted accessors -----------------------------------------------------------

// NGraphs returns the number of fitted graphs (0 before Fit).
func (m *MultipleASE) NGraphs() int { return m.nGraphs }

// NVertices returns the shared vertex count (0 before Fit).
func (m *MultipleASE) NVertices() int { return m.nVertices }

// Directed reports whether the fitted population was treated as directed.
func (m *MultipleASE) Directed() bool { return m.directed }

// LatentLeft returns the joint left latent positions (n×d).
func (m *MultipleASE) LatentLeft() (*mat.Dense, error) {
	if !m.fitted {
		return nil, fmt.Errorf("MultipleASE.LatentLeft: %w", ErrNotFitted)
	}

	return m.latentLeft, nil
}

// LatentRight returns the joint right latent positions for directed
// populations, or nil for undirected ones (absence is data, not an error).
func (m *MultipleASE) LatentRight() (*mat.Dense, error) {
	if !m.fitted {
		return nil, fmt.Errorf("MultipleASE.LatentRight: %w", ErrNotFitted)
	}

	return m.latentRight, nil
}

// Scores returns the per-graph score matrices R_i with A_i ≈ U·R_i·Vᵀ.
func (m *MultipleASE) Scores() ([]*mat.Dense, error) {
	if !m.fitted {
		return nil, fmt.Errorf("MultipleASE.Scores: %w", ErrNotFitted)
	}

	return m.scores, nil
}

// Internal helpers -----------------------------------------------------------

// checkGraphs validates the collection: non-empty, all non-nil, square,
// one shared shape. Returns the vertex count.
func checkGraphs(graphs []*mat.Dense) (int, error) {
	if len(graphs) == 0 {
		return 0, fmt.Errorf("%s: %w", methodFit, ErrNoGraphs)
	}
	n := -1
	for i, g := range graphs {
		if g == nil {
			return 0, fmt.Errorf("%s: graph %d: %w", methodFit, i, ErrNilMatrix)
		}
		r, c := g.Dims()
		if r != c {
			return 0, fmt.Errorf("%s: graph %d is %d×%d: %w", methodFit, i, r, c, ErrNonSquare)
		}
		if n < 0 {
			n = r
		} else if r != n {
			return 0, fmt.Errorf("%s: graph %d has %d vertices, want %d: %w",
				methodFit, i, r, n, ErrDimensionMismatch)
		}
	}

	return n, nil
}

// almostSymmetric reports |a[i,j]−a[j,i]| ≤ eps for all pairs.
func almostSymmetric(a *mat.Dense, eps float64) bool {
	n, _ := a.Dims()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(a.At(i, j)-a.At(j, i)) > eps {
				return false
			}
		}
	}

	return true
}

// truncateCols copies the leading k columns into a fresh matrix.
func truncateCols(a *mat.Dense, k int) *mat.Dense {
	r, _ := a.Dims()

	return mat.DenseCopyOf(a.Slice(0, r, 0, k))
}

// scaleColsSqrt multiplies column j of a by √d[j] in place — the ordinary
// adjacency-spectral-embedding normalization.
func scaleColsSqrt(a *mat.Dense, d []float64) {
	r, c := a.Dims()
	for j := 0; j < c; j++ {
		s := math.Sqrt(d[j])
		for i := 0; i < r; i++ {
			a.Set(i, j, a.At(i, j)*s)
		}
	}
}

// hstack concatenates matrices with equal row counts column-wise.
func hstack(ms []*mat.Dense) *mat.Dense {
	rows, cols := 0, 0
	for _, m := range ms {
		r, c := m.Dims()
		rows = r
		cols += c
	}
	out := mat.NewDense(rows, cols, nil)
	offset := 0
	for _, m := range ms {
		r, c := m.Dims()
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				out.Set(i, offset+j, m.At(i, j))
			}
		}
		offset += c
	}

	return out
}

// recoverScores computes R = leftᵀ·a·right.
func recoverScores(left *mat.Dense, a *mat.Dense, right *mat.Dense) *mat.Dense {
	_, d1 := left.Dims()
	n, _ := a.Dims()
	_, d2 := right.Dims()

	tmp := mat.NewDense(d1, n, nil)
	tmp.Mul(left.T(), a)
	r := mat.NewDense(d1, d2, nil)
	r.Mul(tmp, right)

	return r
}
