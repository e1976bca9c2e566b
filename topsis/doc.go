// SPDX-License-Identifier: MIT

// Package topsis ranks alternatives described by numeric criteria with
// TOPSIS (Technique for Order Preference by Similarity to Ideal Solution).
//
// 🚀 How it works
//
//	Each alternative is a row of criterion values. Columns are normalized by
//	their Euclidean norm, multiplied by their weights, and compared against a
//	direction-aware ideal-best and ideal-worst profile. The closeness score
//
//	    P = S- / (S+ + S-)
//
//	lies in [0,1]; higher is better. Ranks are ordinal, best first.
//
// ✨ Pipeline (each stage is exported and usable on its own):
//
//	Validate → Normalize → ApplyWeights → IdealSolutions → Separations →
//	Closeness → Rank → Format
//
// ⚙️ Usage:
//
//	w, _ := topsis.ParseWeights("1,1,1,2", 4)
//	imp, _ := topsis.ParseImpacts("+,+,-,+", 4)
//	res, err := topsis.Evaluate(dm, w, imp)
//	for _, a := range res.ByRank() {
//		fmt.Println(a.Rank, a.ID, a.Score)
//	}
//
// Policies:
//
//   - Ties: exactly equal scores keep input order, so ranks are always a
//     permutation of 1..N.
//   - Degenerate closeness (S+ = S- = 0, only when every alternative is
//     identical): DegenerateReject by default; see WithDegeneratePolicy.
//   - A criterion column of all zeros is rejected (ErrDegenerateColumn).
//
// Errors are *ValidationError (matches ErrValidation plus one rule sentinel)
// or *ComputationPolicyError (matches ErrDegenerateScore). The package does
// no I/O; CSV ingestion and export live in internal/csvio.
package topsis
