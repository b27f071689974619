// Package extrapolate derives new metadata facts from existing ones by
// running a fixed rule table to a fixpoint over a store.
package extrapolate

import (
	"context"
	"fmt"

	"github.com/mkorsak/provenir/internal/model"
	"github.com/mkorsak/provenir/internal/store"
)

// DefaultIterationLimit bounds the number of full passes over the rule
// table before the engine gives up.
const DefaultIterationLimit = 10

// LimitExceededError signals that the rule set kept reporting changes
// past the iteration limit, i.e. it is oscillating or broken.
type LimitExceededError struct {
	Limit int
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("extrapolation limit exceeded after %d iterations", e.Limit)
}

// Rule is one declarative edge in the field dependency graph. Derive
// reads the store and returns zero or more candidate facts; it never
// writes to the store except through the engine.
type Rule struct {
	FromFields []string
	ToFields   []string
	Derive     func(ctx context.Context, st *store.Store, netAccess bool) ([]model.Fact, error)
}

// Engine runs the rule table against a store until a full pass
// produces no change.
type Engine struct {
	rules     []Rule
	limit     int
	netAccess bool
	logf      func(format string, args ...interface{})
}

// Option configures an Engine
type Option func(*Engine)

// WithIterationLimit overrides the default pass limit
func WithIterationLimit(limit int) Option {
	return func(e *Engine) {
		if limit > 0 {
			e.limit = limit
		}
	}
}

// WithNetAccess allows network-backed rules to run
func WithNetAccess(netAccess bool) Option {
	return func(e *Engine) { e.netAccess = netAccess }
}

// WithLogf sets the debug log function
func WithLogf(logf func(format string, args ...interface{})) Option {
	return func(e *Engine) { e.logf = logf }
}

// NewEngine creates an engine over the given rule table
func NewEngine(rules []Rule, opts ...Option) *Engine {
	e := &Engine{
		rules: rules,
		limit: DefaultIterationLimit,
		logf:  func(string, ...interface{}) {},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run evaluates every rule in table order once per pass, repeating
// until a pass yields no store change. Rule-local derivation errors
// are logged and skipped; only exceeding the iteration limit is fatal.
func (e *Engine) Run(ctx context.Context, st *store.Store) error {
	changed := true
	iterations := 0

	for changed {
		changed = false
		iterations++
		if iterations > e.limit {
			return &LimitExceededError{Limit: e.limit}
		}

		for _, rule := range e.rules {
			if !e.guardPasses(rule, st) {
				continue
			}

			facts, err := rule.Derive(ctx, st, e.netAccess)
			if err != nil {
				e.logf("extrapolation %v => %v failed: %v", rule.FromFields, rule.ToFields, err)
				continue
			}

			if updated := st.Update(facts); len(updated) > 0 {
				for _, f := range updated {
					e.logf("extrapolated %s from %v", f, rule.FromFields)
				}
				changed = true
			}
		}
	}
	return nil
}

// guardPasses checks the rule precondition: every source field must be
// present, and no target field may already hold a fact at or above the
// weakest source certainty. The second half keeps already-good values
// from being rederived, which is what guarantees convergence.
func (e *Engine) guardPasses(rule Rule, st *store.Store) bool {
	fromCertainty := model.CertaintyCertain
	for _, field := range rule.FromFields {
		fact, ok := st.Get(field)
		if !ok {
			return false
		}
		fromCertainty = model.MinCertainty(fromCertainty, fact.Certainty)
	}

	for _, field := range rule.ToFields {
		if fact, ok := st.Get(field); ok && fact.Certainty >= fromCertainty {
			return false
		}
	}
	return true
}
