package prolog

// Environment is a substitution: a mapping from variables to terms. It is
// not required to be idempotent — callers walk chains to a fixed point via
// Walk — and it is never mutated in place. Extend returns a new Environment
// sharing the old bindings, so a choice point can snapshot the pre-extension
// Environment for free rollback (spec §3.2, §9).
type Environment struct {
	bindings map[Var]Term
}

// NewEnvironment returns the empty substitution, as used at query start.
func NewEnvironment() Environment {
	return Environment{bindings: map[Var]Term{}}
}

// Lookup returns the term directly bound to v, if any. It performs no
// chain-walking; use Walk to resolve a term to its fixed point.
func (e Environment) Lookup(v Var) (Term, bool) {
	t, ok := e.bindings[v]
	return t, ok
}

// Extend returns a new Environment with v bound to t, leaving e untouched.
// The caller is expected to have already run the occurs-check; Extend does
// not re-check it.
func (e Environment) Extend(v Var, t Term) Environment {
	next := make(map[Var]Term, len(e.bindings)+1)
	for k, val := range e.bindings {
		next[k] = val
	}
	next[v] = t
	return Environment{bindings: next}
}

// Len reports the number of bindings, mostly useful for tests that assert
// Extend only ever grows an Environment (the "minimality" property, spec §8).
func (e Environment) Len() int { return len(e.bindings) }

// Walk resolves t to its fixed point under e: if t is a variable bound in
// e, it recurses on the bound term; a compound has each of its arguments
// walked in turn; anything else (an unbound variable or a constant) is
// returned as-is. This is substitute_term from the original interpreter.
func (e Environment) Walk(t Term) Term {
	switch v := t.(type) {
	case Var:
		bound, ok := e.Lookup(v)
		if !ok {
			return v
		}
		return e.Walk(bound)
	case Compound:
		args := make([]Term, len(v.Args))
		for i, a := range v.Args {
			args[i] = e.Walk(a)
		}
		return Compound{Name: v.Name, Args: args}
	default:
		return t
	}
}

// Occurs reports whether variable v appears anywhere inside term t. It is
// the occurs-check: unify refuses to bind v to a term containing v, which
// is what keeps every Walk call terminating (spec §3.2, §8 property 3).
func Occurs(v Var, t Term) bool {
	switch term := t.(type) {
	case Var:
		return term == v
	case Compound:
		for _, a := range term.Args {
			if Occurs(v, a) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
