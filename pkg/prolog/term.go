package prolog

import (
	"fmt"
	"strings"
)

// Term is the sum type of all values the resolver manipulates: a logic
// variable, a ground constant, or a compound atom. Every operation over a
// Term is a type switch over these three variants — see spec §9's "tagged
// unions" design note.
type Term interface {
	fmt.Stringer

	// Equal reports strict structural equality, not unification.
	Equal(other Term) bool

	isTerm()
}

// Var is a logic variable identified by a name and a depth. Depth
// distinguishes variables introduced by distinct clause instantiations; two
// variables are equal iff both components match.
type Var struct {
	Name  string
	Depth int
}

func (Var) isTerm() {}

// String renders the variable without its depth, matching how the original
// interpreter prints a user-facing variable name.
func (v Var) String() string { return v.Name }

// Equal compares both the name and the depth.
func (v Var) Equal(other Term) bool {
	o, ok := other.(Var)
	return ok && v == o
}

// Const names a ground atom of arity zero.
type Const string

func (Const) isTerm() {}

func (c Const) String() string { return string(c) }

// Equal compares the underlying identifier.
func (c Const) Equal(other Term) bool {
	o, ok := other.(Const)
	return ok && c == o
}

// Compound is an n-ary term: a functor name paired with its argument list.
// Arity is part of the functor's identity (name/arity), so Compound never
// stores arity separately — it is always len(Args).
type Compound struct {
	Name string
	Args []Term
}

func (Compound) isTerm() {}

// Arity returns the number of arguments, i.e. the "n" in name/n.
func (c Compound) Arity() int { return len(c.Args) }

func (c Compound) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", c.Name, strings.Join(parts, ", "))
}

// Equal compares functor name, arity, and every argument pairwise.
func (c Compound) Equal(other Term) bool {
	o, ok := other.(Compound)
	if !ok || c.Name != o.Name || len(c.Args) != len(o.Args) {
		return false
	}
	for i := range c.Args {
		if !c.Args[i].Equal(o.Args[i]) {
			return false
		}
	}
	return true
}

// NewCompound builds a Compound atom, panicking if name is empty — an empty
// functor name is always a construction bug in the caller, never a runtime
// condition to recover from.
func NewCompound(name string, args ...Term) Compound {
	if name == "" {
		panic("prolog: compound functor name must not be empty")
	}
	return Compound{Name: name, Args: args}
}

// Clause is an ordered, conjunctively-solved sequence of goals: either the
// body of an assertion or the top-level query.
type Clause []Compound

// Assertion is a Horn clause: a head atom and a (possibly empty) body. An
// empty Body makes the assertion a fact.
type Assertion struct {
	Head Compound
	Body Clause
}

// Database is an ordered, immutable-during-a-query sequence of assertions.
// Order is significant: it defines clause-selection order during
// backtracking (spec §3.1).
type Database []Assertion
