// SPDX-License-Identifier: MIT

// Package memo: functional configuration for the solve operation.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults,
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.

package memo

// ---------- Internal panic messages (no magic strings) ----------

const panicInverterNil = "memo: WithInverter: inverter must be non-nil"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally opaque: public entry points accept `...Option` and
// internally resolve them via gatherOptions.
type Options struct {
	// inverter is the inversion capability invoked on a cache miss.
	// Defaults to matrix.Inverse.
	inverter Inverter
}

// ---------- Constructors (WithX) ----------

// WithInverter swaps the inversion capability used on a cache miss.
//
// Inputs:
//   - fn: non-nil Inverter (tuned numeric routine, instrumented wrapper,
//     or a counting stub in tests).
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when fn is nil (programmer error).
//
// Complexity:
//   - Time O(1), Space O(1).
func WithInverter(fn Inverter) Option {
	if fn == nil {
		panic(panicInverterNil)
	}

	// Assign validated inverter
	return func(o *Options) { o.inverter = fn }
}

// ---------- Internal resolution ----------

// defaultOptions returns the documented zero-configuration behavior.
func defaultOptions() Options {
	return Options{inverter: defaultInverter}
}

// gatherOptions applies opts over defaults and returns the effective config.
// Deterministic: later options win, as with any functional-options API.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
