// SPDX-License-Identifier: MIT

// Package matrix provides the dense, row-major float64 storage used by the
// branch-and-bound solver for its reduced cost matrices.
//
// The package is intentionally small:
//
//   - Dense is a flat row-major buffer with bounds-checked accessors that
//     return sentinel errors instead of panicking.
//   - Line kernels (FillRow, FillCol, RowMin, ColMin) operate on whole
//     rows/columns in a single pass.
//   - ReduceCols, ReduceRows and HasBlockedLine work on the whole matrix and
//     are the building blocks of cost-matrix reduction.
//
// +Inf is a first-class value ("no edge"); NaN is rejected on Set.
//
// Complexity quicksheet:
//   - NewSquare/NewFromRows/Clone: O(r*c); At/Set: O(1); line kernels: O(r) or O(c);
//     ReduceCols/ReduceRows/HasBlockedLine: O(r*c).
package matrix
