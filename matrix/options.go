// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric comparison policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// DefaultTolerance is the strict bound used by ApproxEqual: |a-b| < tol.
const DefaultTolerance = 0.0001

// ---------- Internal panic messages (no magic strings) ----------

const panicToleranceInvalid = "matrix: WithTolerance: tol must be finite and > 0"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	tol float64 // > 0; DefaultTolerance
}

// WithTolerance sets the strict comparison bound used by ApproxEqual.
//
// Behavior highlights:
//   - Panics on NaN, ±Inf or tol <= 0 (programmer error).
//
// Complexity: O(1).
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{tol: DefaultTolerance}
}

// gatherOptions applies opts over the defaults in order; nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// Tolerance reports the effective comparison bound.
func (o Options) Tolerance() float64 { return o.tol }

// NewOptions resolves opts over the defaults and reports the effective values.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }
