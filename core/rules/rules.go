package rules

// Rule pairs a predicate with a producer. Chains are evaluated top to bottom
// and the first rule whose predicate holds produces the result.
type Rule[C, R any] struct {
	// Name identifies the rule in reports and tests.
	Name string
	// When reports whether this rule applies to the given context.
	When func(C) bool
	// Then produces the result for the given context.
	Then func(C) R
}

// Chain is an ordered list of rules with first-match-wins semantics.
type Chain[C, R any] []Rule[C, R]

// Eval evaluates the chain against ctx and returns the first matching rule's
// result along with the rule name. ok is false when no rule matched.
func (ch Chain[C, R]) Eval(ctx C) (result R, name string, ok bool) {
	for _, r := range ch {
		if r.When(ctx) {
			return r.Then(ctx), r.Name, true
		}
	}
	return result, "", false
}

// Always is a predicate that matches any context, for terminal default rules.
func Always[C any](C) bool { return true }
