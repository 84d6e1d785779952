// Package graphstat is an in-memory toolkit for statistical network
// science: random-graph generators and joint spectral embedding over
// collections of graphs sharing a vertex set.
//
// 🎲 What is graphstat?
//
//	A deterministic-by-default library that brings together:
//		• Edge samplers: Bernoulli graphs from any probability matrix
//		• Parametric models: Erdős–Rényi G(n,p) and G(n,m)
//		• Block models: SBM with degree correction, SIEM with per-edge communities
//		• Latent-position models: RDPG with clip/rescale probability policies
//		• Correlated pairs: Bernoulli-correlated graph couples
//		• Multi-graph embedding: MASE (two-stage SVD with elbow rank selection)
//
// ✨ Why choose graphstat?
//
//   - Reproducible – every stochastic routine takes an explicit *rand.Rand
//   - Rock-solid guarantees – sentinel errors, strict fail-fast validation
//   - Numerically grounded – dense algebra and SVD via gonum
//   - Extensible – weight, degree-correction and rank-selection strategies
//     are injected values, not hard-wired branches
//
// Under the hood, everything is organized under two subpackages:
//
//	simul/ — graph samplers: SampleEdges, ERNP, ERNM, SBM, SIEM, RDPG,
//	         PFromLatent, SampleEdgesCorr
//	embed/ — MultipleASE, SelectSVD, SelectDimension, AugmentDiagonal
//
// Quick sketch of the data flow:
//
//	parameters ──simul──▶ adjacency matrices ──embed──▶ latent positions
//
// Samplers are generative (parameters in, one *mat.Dense out); the embedder
// is analytic (a slice of *mat.Dense in, joint latent positions out). They
// share the gonum dense representation and the same validation idioms.
//
//	go get github.com/katalvlaran/graphstat
package graphstat
