package wam

import "fmt"

// Tag discriminates the three heap cell variants (spec §3.3).
type Tag int

const (
	// RefTag marks an unbound or forwarded variable cell. It is
	// self-referential (Addr equals the cell's own heap address) iff
	// unbound.
	RefTag Tag = iota
	// StrTag marks a structure pointer; Addr is the heap index of the
	// companion Func cell that immediately follows it in the layout.
	StrTag
	// FuncTag marks a functor tag, immediately succeeded on the heap by
	// Arity argument cells.
	FuncTag
)

func (t Tag) String() string {
	switch t {
	case RefTag:
		return "REF"
	case StrTag:
		return "STR"
	case FuncTag:
		return "FUNC"
	default:
		return fmt.Sprintf("Tag(%d)", int(t))
	}
}

// Cell is a single tagged heap slot. Only the fields relevant to its Tag
// are meaningful: Ref and Str use Addr; Func uses Name and Arity.
type Cell struct {
	Tag   Tag
	Addr  int
	Name  string
	Arity int
}

// Ref builds an unbound-or-forwarded reference cell pointing at addr.
func Ref(addr int) Cell { return Cell{Tag: RefTag, Addr: addr} }

// Str builds a structure-pointer cell whose companion Func cell lives at
// heap index addr.
func Str(addr int) Cell { return Cell{Tag: StrTag, Addr: addr} }

// Func builds a functor cell for name/arity.
func Func(name string, arity int) Cell { return Cell{Tag: FuncTag, Name: name, Arity: arity} }

func (c Cell) String() string {
	switch c.Tag {
	case RefTag:
		return fmt.Sprintf("Ref(%d)", c.Addr)
	case StrTag:
		return fmt.Sprintf("Str(%d)", c.Addr)
	case FuncTag:
		return fmt.Sprintf("Func(%s/%d)", c.Name, c.Arity)
	default:
		return fmt.Sprintf("Cell{%v}", c.Tag)
	}
}

// AddrKind distinguishes which store a StoreAddr refers into.
type AddrKind int

const (
	// HeapKind addresses the global heap.
	HeapKind AddrKind = iota
	// XKind addresses the register file.
	XKind
)

// StoreAddr is a tagged address distinguishing a heap index from a
// register index (spec §3.4). Comparing two HeapAddr values is numeric
// index comparison; comparing across kinds is not meaningful and callers
// must not rely on it.
type StoreAddr struct {
	Kind  AddrKind
	Index int
}

// HeapAddr builds a store address into the global heap.
func HeapAddr(i int) StoreAddr { return StoreAddr{Kind: HeapKind, Index: i} }

// XAddr builds a store address into the register file.
func XAddr(i int) StoreAddr { return StoreAddr{Kind: XKind, Index: i} }

func (a StoreAddr) String() string {
	if a.Kind == HeapKind {
		return fmt.Sprintf("H[%d]", a.Index)
	}
	return fmt.Sprintf("X%d", a.Index)
}
