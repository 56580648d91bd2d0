// Package prolog implements the resolution half of a pure logic-programming
// evaluation core: a term model, a substitution environment, a structural
// unifier, clause renaming, and an SLD resolver that performs depth-first
// backtracking search over a goal list against an ordered database of
// assertions.
//
// The package has no notion of arithmetic, cut, negation-as-failure, or
// modules, and it never parses surface syntax — it operates purely on the
// already-parsed Term/Clause/Database values described below. Its sibling
// package, pkg/wam, realizes the same unification core at the level of a
// tagged heap and a small instruction set.
package prolog
