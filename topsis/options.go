// SPDX-License-Identifier: MIT

// Package topsis: functional configuration.
//   - Option / Options (functional options with unexported state),
//   - documented defaults,
//   - WithX constructors that panic only on nonsensical values (programmer error),
//   - gatherOptions helper that resolves the effective configuration.
package topsis

import (
	"fmt"
	"log/slog"
	"runtime"
	"strings"
)

// DegeneratePolicy decides the closeness score of an alternative whose
// distance to both ideal profiles is zero (S+ = S- = 0). That only happens
// when every alternative is identical on every criterion.
type DegeneratePolicy uint8

const (
	// DegenerateReject fails the evaluation with *ComputationPolicyError.
	DegenerateReject DegeneratePolicy = iota
	// DegenerateZero scores the alternative 0.
	DegenerateZero
	// DegenerateHalf scores the alternative 0.5, i.e. equidistant.
	DegenerateHalf
)

// DefaultDegeneratePolicy is used when no WithDegeneratePolicy option is given.
const DefaultDegeneratePolicy = DegenerateReject

var policyNames = [...]string{
	DegenerateReject: "reject",
	DegenerateZero:   "zero",
	DegenerateHalf:   "half",
}

func (p DegeneratePolicy) String() string {
	if int(p) < len(policyNames) {
		return policyNames[p]
	}

	return fmt.Sprintf("DegeneratePolicy(%d)", uint8(p))
}

// ParseDegeneratePolicy maps "reject", "zero" or "half" (case-insensitive).
func ParseDegeneratePolicy(s string) (DegeneratePolicy, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for p, n := range policyNames {
		if n == name {
			return DegeneratePolicy(p), nil
		}
	}

	return 0, fmt.Errorf("topsis: unknown degenerate policy %q (want reject, zero or half)", s)
}

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPolicyInvalid      = "topsis: WithDegeneratePolicy: unknown policy"
	panicConcurrencyInvalid = "topsis: WithConcurrency: n must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	policy      DegeneratePolicy
	logger      *slog.Logger
	concurrency int
}

// WithDegeneratePolicy selects how S+ = S- = 0 is resolved.
// Panics on a value outside the declared policies.
func WithDegeneratePolicy(p DegeneratePolicy) Option {
	if int(p) >= len(policyNames) {
		panic(panicPolicyInvalid)
	}

	return func(o *Options) { o.policy = p }
}

// WithLogger routes the Debug-level stage trace (norms, ideal profiles,
// separations, scores) to l. A nil logger restores the discard default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = discardLogger
		}
		o.logger = l
	}
}

// WithConcurrency bounds the number of problems EvaluateAll runs at once.
func WithConcurrency(n int) Option {
	if n < 1 {
		panic(panicConcurrencyInvalid)
	}

	return func(o *Options) { o.concurrency = n }
}

var discardLogger = slog.New(slog.DiscardHandler)

func defaultOptions() Options {
	return Options{
		policy:      DefaultDegeneratePolicy,
		logger:      discardLogger,
		concurrency: runtime.GOMAXPROCS(0),
	}
}

// gatherOptions applies opts over the defaults in order; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
