// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Algorithms return these sentinels (optionally wrapped with %w); tests
// match them with errors.Is. No exported function panics on user input.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) and line kernels return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrRagged signals that a [][]float64 source has rows of different lengths.
	ErrRagged = errors.New("matrix: ragged rows")

	// ErrNaN signals a NaN value where a number (possibly ±Inf) is required.
	ErrNaN = errors.New("matrix: NaN encountered")
)
