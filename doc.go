// SPDX-License-Identifier: MIT

// Package lvrank ranks alternatives described by several numeric criteria
// with TOPSIS (Technique for Order Preference by Similarity to Ideal
// Solution).
//
// Every alternative is scored by its relative closeness to an ideal-best and
// an ideal-worst profile, then ranked 1..N by descending score.
//
// Layout:
//
//	matrix/             dense float64 matrix, column norms, scaling, row distances
//	topsis/             validation, normalization, weighting, ideals, scores, ranks
//	internal/csvio      CSV decision tables in, scored tables out
//	internal/artifact   result stores: filesystem, SQLite (zstd), MinIO
//	internal/mailer     SMTP delivery of the result CSV
//	internal/httpapi    HTTP upload, scoring and download endpoints
//	cmd/topsis          command-line tool
//	cmd/topsis-server   HTTP server
//
// Quick start:
//
//	dm := topsis.DecisionMatrix{Rows: []topsis.Row{
//		{ID: "A", Values: []float64{250, 16, 12, 5}},
//		{ID: "B", Values: []float64{200, 16, 8, 3}},
//	}}
//	w, _ := topsis.ParseWeights("1,1,1,1", 4)
//	imp, _ := topsis.ParseImpacts("+,+,+,-", 4)
//	res, err := topsis.Evaluate(dm, w, imp)
package lvrank
