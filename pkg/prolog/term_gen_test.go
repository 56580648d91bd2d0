package prolog

import (
	"fmt"

	"pgregory.net/rapid"
)

// genTerm builds arbitrary term trees for the property tests in spec §8.
// Depth is bounded so generation always terminates; variable and constant
// names are drawn from small fixed pools so that generated terms actually
// share variables and functors often enough to exercise unification.
func genTerm(t *rapid.T, depth int) Term {
	names := []string{"X", "Y", "Z"}
	atoms := []string{"a", "b", "c"}
	functors := []string{"f", "g"}

	if depth <= 0 {
		if rapid.Boolean().Draw(t, "isVar") {
			return Var{Name: rapid.SampledFrom(names).Draw(t, "varName")}
		}
		return Const(rapid.SampledFrom(atoms).Draw(t, "constName"))
	}

	switch rapid.IntRange(0, 2).Draw(t, "kind") {
	case 0:
		return Var{Name: rapid.SampledFrom(names).Draw(t, "varName")}
	case 1:
		return Const(rapid.SampledFrom(atoms).Draw(t, "constName"))
	default:
		arity := rapid.IntRange(1, 2).Draw(t, "arity")
		args := make([]Term, arity)
		for i := range args {
			args[i] = genTerm(t, depth-1)
		}
		return Compound{Name: rapid.SampledFrom(functors).Draw(t, "functor"), Args: args}
	}
}

func genTermGen() *rapid.Generator[Term] {
	return rapid.Custom(func(t *rapid.T) Term {
		return genTerm(t, 3)
	})
}

// countVars collects the multiset of variable names in t, ignoring depth —
// used to check that Renumber preserves the variable-name set (spec §8
// property 4).
func countVars(t Term, into map[string]int) {
	switch v := t.(type) {
	case Var:
		into[v.Name]++
	case Compound:
		for _, a := range v.Args {
			countVars(a, into)
		}
	}
}

// sameShape reports whether two terms have identical tree shape: same
// variant at every position, same functor/arity for compounds. Variable
// *names* and constant *values* are allowed to differ at a Var leaf only
// insofar as Renumber never touches them, so this helper actually demands
// full term identity except depth, which is checked separately.
func sameShape(a, b Term) bool {
	switch av := a.(type) {
	case Var:
		bv, ok := b.(Var)
		return ok && av.Name == bv.Name
	case Const:
		bv, ok := b.(Const)
		return ok && av == bv
	case Compound:
		bv, ok := b.(Compound)
		if !ok || av.Name != bv.Name || len(av.Args) != len(bv.Args) {
			return false
		}
		for i := range av.Args {
			if !sameShape(av.Args[i], bv.Args[i]) {
				return false
			}
		}
		return true
	default:
		panic(fmt.Sprintf("prolog: unhandled term variant %T", a))
	}
}

// allDepths calls visit for every Var leaf's Depth in t.
func allDepths(t Term, visit func(int)) {
	switch v := t.(type) {
	case Var:
		visit(v.Depth)
	case Compound:
		for _, a := range v.Args {
			allDepths(a, visit)
		}
	}
}
