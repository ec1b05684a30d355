// SPDX-License-Identifier: MIT
// Package fixed: sentinel errors.
// Checked entry points wrap these with call-site context; callers match them
// with errors.Is. Raw kernels (Inv3, Det, ...) never return errors.

package fixed

import "github.com/cockroachdb/errors"

var (
	// ErrSingular is returned when |det| does not exceed the configured epsilon.
	ErrSingular = errors.New("fixed: singular matrix")

	// ErrNaNInf is returned when a NaN or ±Inf entry is found where finite
	// values are required.
	ErrNaNInf = errors.New("fixed: NaN or Inf encountered")

	// ErrOutOfRange is the panic value of Grid.At on a vector with a
	// non-zero column index.
	ErrOutOfRange = errors.New("fixed: index out of range")
)
