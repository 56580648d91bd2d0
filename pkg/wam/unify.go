package wam

// pdlPair is one pending pair of addresses awaiting comparison. The name
// PDL (push-down list) matches the original WAM literature's term for
// this work stack (spec §4.7).
type pdlPair struct {
	a1, a2 StoreAddr
}

// unifyAddrs unifies the cells reachable from a1 and a2, address-style,
// using an explicit push-down list rather than recursion. It reports
// whether unification succeeded; on failure the heap may already contain
// partial bindings made before the failing pair was reached, matching the
// original machine's behavior of not rolling back on failure (spec §4.7
// leaves trail-based undoing out of scope).
func (m *Machine) unifyAddrs(a1, a2 StoreAddr) bool {
	pdl := []pdlPair{{a1, a2}}

	for len(pdl) > 0 {
		top := pdl[len(pdl)-1]
		pdl = pdl[:len(pdl)-1]

		d1, d2 := m.Deref(top.a1), m.Deref(top.a2)
		if d1 == d2 {
			continue
		}

		c1, c2 := m.cellAt(d1), m.cellAt(d2)

		switch {
		case c1.Tag == RefTag || c2.Tag == RefTag:
			m.Bind(d1, d2)

		case c1.Tag == StrTag && c2.Tag == StrTag:
			f1, f2 := m.cellAt(HeapAddr(c1.Addr)), m.cellAt(HeapAddr(c2.Addr))
			if f1.Tag != FuncTag || f2.Tag != FuncTag {
				panic("wam: Str cell does not point at a Func cell")
			}
			if f1.Name != f2.Name || f1.Arity != f2.Arity {
				return false
			}
			// Argument positions run 1..arity inclusive, as in the textbook
			// WAM, so every argument cell (Func+1 .. Func+arity) is pushed.
			// The interpreter this machine is ported from stopped one short
			// and never compared the last argument.
			for idx := 1; idx <= f1.Arity; idx++ {
				pdl = append(pdl, pdlPair{
					a1: HeapAddr(c1.Addr + idx),
					a2: HeapAddr(c2.Addr + idx),
				})
			}

		default:
			return false
		}
	}

	return true
}

// Unify is the exported entry point for address-based unification,
// updating Machine.Fail to reflect the outcome (spec §4.7).
func (m *Machine) Unify(a1, a2 StoreAddr) {
	if !m.unifyAddrs(a1, a2) {
		m.Fail = true
	}
}
