package wam

// Instruction is the small set of term-construction and term-matching
// operations the machine executes (spec §4.4, §4.8). Each instruction
// mutates the heap, a register, or both, and may set Machine.Fail.
type Instruction interface {
	Execute(m *Machine)
}

// PutStructure pushes a Str/Func cell pair for Name/Arity onto the heap
// and leaves the Str half in Xi, putting the machine in write mode so a
// following run of set_variable/set_value instructions fills in the
// arguments.
type PutStructure struct {
	Name  string
	Arity int
	Xi    int
}

func (i PutStructure) Execute(m *Machine) {
	strAddr := m.pushHeap(Cell{}) // placeholder, fixed up below
	funcAddr := m.pushHeap(Func(i.Name, i.Arity))
	str := Str(funcAddr)
	m.Heap[strAddr] = str
	m.X[i.Xi] = str
	m.Mode = WriteMode
	m.tracef("put_structure %s/%d, X%d -> %v", i.Name, i.Arity, i.Xi, str)
}

// SetVariable pushes a fresh unbound Ref cell onto the heap and copies it
// into Xi.
type SetVariable struct {
	Xi int
}

func (i SetVariable) Execute(m *Machine) {
	addr := len(m.Heap)
	ref := Ref(addr)
	m.pushHeap(ref)
	m.X[i.Xi] = ref
	m.tracef("set_variable X%d -> %v", i.Xi, ref)
}

// SetValue pushes a copy of Xi's current cell onto the heap.
type SetValue struct {
	Xi int
}

func (i SetValue) Execute(m *Machine) {
	c, ok := m.X[i.Xi]
	if !ok {
		panic("wam: set_value read uninitialized register")
	}
	m.pushHeap(c)
	m.tracef("set_value X%d (%v)", i.Xi, c)
}

// GetStructure matches Xi against Name/Arity. If Xi is unbound it builds
// a fresh structure in its place (entering write mode, like put_structure
// with a bind); if Xi already names a matching structure it switches to
// read mode over that structure's arguments; any other case fails.
type GetStructure struct {
	Name  string
	Arity int
	Xi    int
}

func (i GetStructure) Execute(m *Machine) {
	addr := m.Deref(XAddr(i.Xi))
	cell := m.cellAt(addr)

	switch cell.Tag {
	case RefTag:
		// Unbound: build a fresh Str/Func pair on the heap, exactly as
		// put_structure would, then bind the pre-existing variable to a copy
		// of the new Str cell. addr is always heap-resident here (the only
		// way Deref stops on a Ref is a heap self-loop), so the bind is a
		// direct overwrite of that one cell.
		strAddr := m.pushHeap(Cell{})
		funcAddr := m.pushHeap(Func(i.Name, i.Arity))
		newStr := Str(funcAddr)
		m.Heap[strAddr] = newStr
		m.setCell(addr, newStr)
		m.Mode = WriteMode
		m.tracef("get_structure %s/%d, X%d: unbound -> building at %v", i.Name, i.Arity, i.Xi, newStr)
	case StrTag:
		fc := m.cellAt(HeapAddr(cell.Addr))
		if fc.Tag != FuncTag {
			panic("wam: get_structure: Str cell does not point at a Func cell")
		}
		if fc.Name == i.Name && fc.Arity == i.Arity {
			m.S = cell.Addr + 1
			m.Mode = ReadMode
			m.tracef("get_structure %s/%d, X%d: matched, S=%d", i.Name, i.Arity, i.Xi, m.S)
		} else {
			m.Fail = true
			m.tracef("get_structure %s/%d, X%d: functor mismatch, fail", i.Name, i.Arity, i.Xi)
		}
	default:
		m.Fail = true
		m.tracef("get_structure %s/%d, X%d: non-structure cell %v, fail", i.Name, i.Arity, i.Xi, cell)
	}
}

// UnifyVariable reads the next heap cell under S into Xi (read mode) or
// pushes a fresh Ref and writes it into Xi (write mode), per the current
// structure cursor.
type UnifyVariable struct {
	Xi int
}

func (i UnifyVariable) Execute(m *Machine) {
	switch m.Mode {
	case ReadMode:
		c := m.cellAt(HeapAddr(m.S))
		m.X[i.Xi] = c
		m.tracef("unify_variable X%d (read): %v from H[%d]", i.Xi, c, m.S)
	case WriteMode:
		addr := len(m.Heap)
		ref := Ref(addr)
		m.pushHeap(ref)
		m.X[i.Xi] = ref
		m.tracef("unify_variable X%d (write): pushed %v", i.Xi, ref)
	}
	m.S++
}

// UnifyValue unifies Xi against the next heap cell under S (read mode)
// or pushes a copy of Xi onto the heap (write mode).
type UnifyValue struct {
	Xi int
}

func (i UnifyValue) Execute(m *Machine) {
	switch m.Mode {
	case ReadMode:
		ok := m.unifyAddrs(XAddr(i.Xi), HeapAddr(m.S))
		m.tracef("unify_value X%d (read) vs H[%d]: ok=%v", i.Xi, m.S, ok)
		if !ok {
			m.Fail = true
		}
	case WriteMode:
		c, ok := m.X[i.Xi]
		if !ok {
			panic("wam: unify_value read uninitialized register")
		}
		m.pushHeap(c)
		m.tracef("unify_value X%d (write): pushed %v", i.Xi, c)
	}
	m.S++
}
