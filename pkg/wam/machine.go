package wam

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Mode selects how get_structure and the unify_* instructions interpret
// their operands (spec §4.4).
type Mode int

const (
	// ReadMode means structures are matched against existing heap content.
	ReadMode Mode = iota
	// WriteMode means structures are freshly built on the heap.
	WriteMode
)

func (m Mode) String() string {
	if m == ReadMode {
		return "read"
	}
	return "write"
}

var log = logrus.New()

// SetLogger lets a caller install a shared logger so tracing lines
// interleave with the rest of the program.
func SetLogger(l *logrus.Logger) { log = l }

// Machine is the abstract machine state: a heap of tagged cells, a
// register file, and the small set of control registers the put/set/get
// instructions read and write (spec §3.3, §4.4).
type Machine struct {
	Heap []Cell
	X    map[int]Cell

	H    int  // next free heap index
	S    int  // structure-read/write cursor
	Mode Mode
	Fail bool

	Trace bool // when set, every instruction execution is logged
}

// NewMachine returns an empty machine ready to execute instructions.
func NewMachine() *Machine {
	return &Machine{
		Heap: make([]Cell, 0, 64),
		X:    make(map[int]Cell),
	}
}

func (m *Machine) pushHeap(c Cell) int {
	addr := len(m.Heap)
	m.Heap = append(m.Heap, c)
	m.H = len(m.Heap)
	return addr
}

// cellAt reads the cell at addr, panicking if it names an out-of-range
// heap slot or an X register that was never written. Both are
// programming-contract violations in a well-formed instruction stream,
// not runtime failures a caller should recover from.
func (m *Machine) cellAt(addr StoreAddr) Cell {
	switch addr.Kind {
	case HeapKind:
		if addr.Index < 0 || addr.Index >= len(m.Heap) {
			panic(fmt.Sprintf("wam: heap address %d out of range (len %d)", addr.Index, len(m.Heap)))
		}
		return m.Heap[addr.Index]
	case XKind:
		c, ok := m.X[addr.Index]
		if !ok {
			panic(fmt.Sprintf("wam: register X%d read before being written", addr.Index))
		}
		return c
	default:
		panic(fmt.Sprintf("wam: unknown address kind %d", addr.Kind))
	}
}

func (m *Machine) setCell(addr StoreAddr, c Cell) {
	switch addr.Kind {
	case HeapKind:
		if addr.Index < 0 || addr.Index >= len(m.Heap) {
			panic(fmt.Sprintf("wam: heap address %d out of range (len %d)", addr.Index, len(m.Heap)))
		}
		m.Heap[addr.Index] = c
	case XKind:
		m.X[addr.Index] = c
	default:
		panic(fmt.Sprintf("wam: unknown address kind %d", addr.Kind))
	}
}

// Deref follows a chain of bound Ref cells to its end (spec §4.5). The
// chain always strictly decreases in heap address (bind always points
// the higher address at the lower one, see Bind), so it terminates at
// either a self-referential (unbound) Ref or a non-Ref cell.
//
// Register addresses are only ever the *start* of a chain: an X register
// holding a Ref is always forwarded onto the heap before the self-loop
// check applies, since registers have no address of their own to loop
// back to. An X register holding a non-Ref cell (e.g. a Str copied in by
// put_structure) dereferences to itself.
func (m *Machine) Deref(addr StoreAddr) StoreAddr {
	for {
		c := m.cellAt(addr)
		if c.Tag != RefTag {
			return addr
		}
		if addr.Kind == HeapKind && c.Addr == addr.Index {
			return addr
		}
		addr = HeapAddr(c.Addr)
	}
}

// Bind unifies two already-dereferenced, distinct store addresses, at
// least one of which names a Ref cell (spec §4.6). When both are Ref
// cells it overwrites the one at the *higher* heap address with the
// other, so later dereference chains only ever point toward lower
// addresses and are guaranteed to terminate. When only one is a Ref, that
// Ref cell is overwritten with a copy of the other cell.
func (m *Machine) Bind(a1, a2 StoreAddr) {
	c1, c2 := m.cellAt(a1), m.cellAt(a2)

	switch {
	case c1.Tag == RefTag && c2.Tag == RefTag:
		if a1.Kind != HeapKind || a2.Kind != HeapKind {
			panic("wam: bind between two refs requires both to be heap-resident")
		}
		if a1.Index > a2.Index {
			m.setCell(a1, c2)
		} else {
			m.setCell(a2, c1)
		}
	case c1.Tag == RefTag:
		if a1.Kind != HeapKind {
			panic("wam: bind target ref must be heap-resident")
		}
		m.setCell(a1, c2)
	case c2.Tag == RefTag:
		if a2.Kind != HeapKind {
			panic("wam: bind target ref must be heap-resident")
		}
		m.setCell(a2, c1)
	default:
		panic("wam: bind requires at least one operand to be a Ref cell")
	}
}

// Register returns the current contents of Xi and whether it has been
// written at all.
func (m *Machine) Register(i int) (Cell, bool) {
	c, ok := m.X[i]
	return c, ok
}

// Execute runs a single instruction. It is a thin wrapper over
// Instruction.Execute kept for callers that want to
// drive the machine one instruction at a time without reaching into its
// fields directly; it never returns an error itself, since instruction
// failure is communicated through Fail, not through Go's error path.
func (m *Machine) Execute(ins Instruction) {
	ins.Execute(m)
}

func (m *Machine) tracef(format string, args ...interface{}) {
	if m.Trace {
		log.WithField("component", "wam").Debugf(format, args...)
	}
}
