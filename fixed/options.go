// SPDX-License-Identifier: MIT

// Package fixed: functional options for checked and approximate operations.
// WithX constructors panic on nonsensical parameters (programmer error).
package fixed

import (
	"fmt"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used for singularity and
	// approximate-equality checks.
	DefaultEpsilon = 1e-12

	// DefaultValidateNaNInf makes checked operations reject NaN/±Inf input.
	DefaultValidateNaNInf = true
)

// Options holds the resolved numeric policy. Fields are unexported; build
// it through Option values.
type Options struct {
	eps            float64
	validateNaNInf bool
}

// Option mutates Options during gatherOptions.
type Option func(*Options)

// WithEpsilon sets the absolute tolerance.
// Panics if eps is negative, NaN or infinite.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(fmt.Sprintf("fixed: WithEpsilon(%v): epsilon must be finite and >= 0", eps))
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf toggles the finiteness check of checked operations.
func WithValidateNaNInf(on bool) Option {
	return func(o *Options) { o.validateNaNInf = on }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies opts over the defaults, skipping nil entries.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
