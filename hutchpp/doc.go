// Package hutchpp implements randomized, matrix-free trace estimation for
// symmetric positive-semidefinite linear operators: the variance-reduced
// Hutch++ estimator and the classical Hutchinson baseline.
//
// 🚀 What is Hutch++?
//
//	Hutchinson estimates trace(A) as the mean of vᵀAv over random probes v
//	— unbiased, but with variance driven by the whole spectrum. Hutch++
//	first sketches a low-rank subspace Q from A applied to random probes,
//	computes the trace exactly on that subspace, and runs Hutchinson only
//	on the orthogonal complement. For PSD operators the result is unbiased
//	with variance provably no worse than (and typically far better than)
//	Hutchinson at the same total matvec budget.
//
// ✨ Key surface:
//   - Estimate(op, d, m)   — Hutch++ with a total budget of ≈m matvec queries
//   - Hutchinson(op, d, m) — the classical single-stage baseline
//   - WithSeed / WithRand  — explicit randomness injection for reproducibility
//
// Budget policy: the probe width is k = m/3 under truncating integer
// division, so budgets not divisible by 3 silently shrink the effective
// budget — a documented policy, not a rounding error. Budgets below
// MinBudget are rejected with ErrBudgetTooSmall. When k would exceed d the
// width is capped at d, at which point the subspace stage is already exact.
//
// ⚙️ Usage:
//
//	op, _ := linop.FromMatrix(a)          // or any matrix-free operator
//	tr, err := hutchpp.Estimate(op, d, 300, hutchpp.WithSeed(7))
//
// Performance:
//
//   - Matvec queries: exactly 3 batches of width k, ≈m in total — linear
//     in m, never a function of d beyond the operator's own per-query cost
//   - Dense side work: O(d·k²) for the thin QR, O(d·k²) for projections
//
// Numerical policy: a near-rank-deficient sketch A·S degrades accuracy but
// never raises an error — Householder QR still returns orthonormal columns,
// and degraded accuracy is inherent to the randomized algorithm.
package hutchpp
