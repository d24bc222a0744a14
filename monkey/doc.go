// Package monkey implements a lexer, Pratt parser and tree-walking
// evaluator for the Monkey scripting language.
//
// Typical use goes through an Engine:
//
//	engine := monkey.NewEngine(monkey.Config{})
//	val, err := engine.Run(ctx, `let add = fn(a, b) { a + b }; add(1, 2)`)
//
// Parse failures are reported as a ParseErrors list; runtime failures are
// ordinary values of kind KindError.
package monkey
