// Package rules provides a small generic first-match-wins rule chain.
//
// Priority logic that would otherwise live in nested if/else (description
// generation, source fallback order) is expressed as an ordered list of
// (predicate, producer) pairs. This keeps precedence explicit, testable,
// and extensible without touching evaluation logic.
//
// # Usage
//
//	chain := rules.Chain[Ctx, string]{
//	    {Name: "error-log", When: isErrorLog, Then: systemLogLine},
//	    {Name: "default", When: rules.Always[Ctx], Then: genericLine},
//	}
//	out, rule, _ := chain.Eval(ctx)
package rules
