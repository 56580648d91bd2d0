package prolog

// Renumber rewrites every variable in t to depth n, leaving constants and
// functors untouched. This freshens a clause so each invocation gets its
// own name-space and distinct calls never alias variables (spec §4.2);
// depth increases monotonically with goal-expansion depth, which is what
// guarantees uniqueness across invocations.
func Renumber(n int, t Term) Term {
	switch v := t.(type) {
	case Var:
		return Var{Name: v.Name, Depth: n}
	case Compound:
		args := make([]Term, len(v.Args))
		for i, a := range v.Args {
			args[i] = Renumber(n, a)
		}
		return Compound{Name: v.Name, Args: args}
	default:
		return t
	}
}

// RenumberAtom applies Renumber to every argument of a, preserving its
// functor.
func RenumberAtom(n int, a Compound) Compound {
	args := make([]Term, len(a.Args))
	for i, t := range a.Args {
		args[i] = Renumber(n, t)
	}
	return Compound{Name: a.Name, Args: args}
}

// RenumberClause applies RenumberAtom to every goal in c.
func RenumberClause(n int, c Clause) Clause {
	out := make(Clause, len(c))
	for i, a := range c {
		out[i] = RenumberAtom(n, a)
	}
	return out
}
