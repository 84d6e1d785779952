// SPDX-License-Identifier: MIT

// Package embed provides joint spectral embedding for collections of graphs
// sharing one vertex set, together with its numeric collaborators:
//
//   - MultipleASE     — multiple adjacency spectral embedding (MASE): a
//     two-stage SVD pipeline producing one joint latent-position matrix
//     (or a left/right pair for directed populations) plus per-graph
//     score matrices R_i with A_i ≈ U·R_i·Vᵀ.
//   - SelectSVD       — truncated SVD with a pluggable algorithm: exact
//     thin SVD, truncation, or randomized range-finder sketching.
//   - SelectDimension — Zhu–Ghodsi profile-likelihood elbow detection on a
//     scree plot of singular values, the automatic rank-selection strategy.
//   - AugmentDiagonal — degree-based diagonal augmentation, the standard
//     variance-stabilizing preprocessing step before spectral embedding.
//
// The MASE pipeline, stage by stage:
//
//	graphs ─▶ (diag augment) ─▶ per-graph SVD at rank ⌈log₂ n⌉
//	       ─▶ rank choice (user dimension, or max of per-graph elbows)
//	       ─▶ (scale by √singular values) ─▶ horizontal concatenation
//	       ─▶ joint SVD of concatenated factors ─▶ U, V, scores
//
// Rank selection is an injected strategy: any stage accepting an explicit
// dimension bypasses the elbow detector entirely, so alternative heuristics
// can be substituted without touching the embedding logic.
//
// Determinism: the default configuration is fully deterministic (exact thin
// SVD). The randomized algorithm requires an explicit RNG via WithRand or
// WithSeed and fails with ErrNeedRandSource otherwise — there is no hidden
// global random state anywhere in the package.
//
// Error policy mirrors simul: package-level sentinels matched with
// errors.Is, %w context wrapping, no runtime panics.
package embed
