// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// All public entry points MUST return these sentinels and tests MUST check
// them via errors.Is. Panics are reserved for programmer errors in private
// helpers.

package sparse

import "errors"

var (
	// ErrBadShape is returned when a requested dimension is invalid (n <= 0).
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	// Public indexers (Add/At/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	// Accumulation rejects non-finite contributions at ingestion.
	ErrNaNInf = errors.New("sparse: NaN or Inf encountered")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. MulVec with len(x) != Dim().
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNilMatrix indicates that a nil *CSR or nil *Builder was used.
	ErrNilMatrix = errors.New("sparse: nil receiver")
)
