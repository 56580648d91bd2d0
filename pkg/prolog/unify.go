package prolog

import "errors"

// ErrNoUnify is returned when two terms cannot be made structurally equal
// under an Environment — incompatible functors, mismatched arity, or an
// occurs-check violation. The resolver treats it as purely local control
// flow: on ErrNoUnify it simply advances to the next candidate assertion
// (spec §7), so this is deliberately a bare sentinel rather than a wrapped
// error.
var ErrNoUnify = errors.New("prolog: no unification")

// UnifyTerms attempts to make t1 and t2 structurally equal under e,
// returning a refined Environment on success. This is unify_terms from the
// original interpreter:
//
//  1. walk both terms to their fixed point;
//  2. if they're already equal, e is returned unchanged;
//  3. if exactly one side is a variable, bind it (after an occurs-check);
//  4. if both are compounds with the same functor, unify their argument
//     lists pairwise;
//  5. otherwise fail.
func UnifyTerms(e Environment, t1, t2 Term) (Environment, error) {
	w1, w2 := e.Walk(t1), e.Walk(t2)

	if w1.Equal(w2) {
		return e, nil
	}

	if v, ok := w1.(Var); ok {
		return bindVar(e, v, w2)
	}
	if v, ok := w2.(Var); ok {
		return bindVar(e, v, w1)
	}

	c1, ok1 := w1.(Compound)
	c2, ok2 := w2.(Compound)
	if ok1 && ok2 && c1.Name == c2.Name {
		return UnifyList(e, c1.Args, c2.Args)
	}

	return e, ErrNoUnify
}

func bindVar(e Environment, v Var, t Term) (Environment, error) {
	if Occurs(v, t) {
		return e, ErrNoUnify
	}
	return e.Extend(v, t), nil
}

// UnifyList unifies two term lists pairwise, left to right, threading the
// Environment through each step. It fails immediately on a length
// mismatch — defensive, since in practice a Compound functor match already
// implies equal arity by construction.
func UnifyList(e Environment, l1, l2 []Term) (Environment, error) {
	if len(l1) != len(l2) {
		return e, ErrNoUnify
	}

	env := e
	for i := range l1 {
		next, err := UnifyTerms(env, l1[i], l2[i])
		if err != nil {
			return e, err
		}
		env = next
	}
	return env, nil
}

// UnifyAtoms is the compound-only specialization of UnifyTerms used to
// match a goal against a (renamed) clause head: functors must match by name
// and arity, then arguments unify pairwise.
func UnifyAtoms(e Environment, a1, a2 Compound) (Environment, error) {
	if a1.Name != a2.Name {
		return e, ErrNoUnify
	}
	return UnifyList(e, a1.Args, a2.Args)
}
