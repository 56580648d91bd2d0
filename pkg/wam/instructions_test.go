package wam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildS5 compiles p(Z, h(Z, W), f(W)): X1=p(...), X2=Z, X3=h(Z,W),
// X4=f(W), X5=W. This is the literal instruction stream this machine is
// exercised with.
func buildS5(m *Machine) {
	for _, instr := range []Instruction{
		PutStructure{Name: "h", Arity: 2, Xi: 3},
		SetVariable{Xi: 2},
		SetVariable{Xi: 5},
		PutStructure{Name: "f", Arity: 1, Xi: 4},
		SetValue{Xi: 5},
		PutStructure{Name: "p", Arity: 3, Xi: 1},
		SetValue{Xi: 2},
		SetValue{Xi: 3},
		SetValue{Xi: 4},
	} {
		instr.Execute(m)
	}
}

// TestCompileS5 reproduces the literal scenario spec.md §8 names S5.
func TestCompileS5(t *testing.T) {
	m := NewMachine()
	buildS5(m)

	require.Len(t, m.Heap, 12)
	tail := m.Heap[7:]
	assert.Equal(t, []Cell{Str(8), Func("p", 3), Ref(2), Str(1), Str(5)}, tail)

	assert.Equal(t, Str(8), m.X[1])
	assert.Equal(t, Ref(2), m.X[2])
	assert.Equal(t, Str(1), m.X[3])
	assert.Equal(t, Str(5), m.X[4])
	assert.Equal(t, Ref(3), m.X[5])
}

// TestCompileAndMatchS6 extends S5 with a get_structure/unify_* stream
// that matches the built term against p(f(X), h(Y, f(a)), Y), per
// spec.md §8's S6. The heap growth and final functor placement are
// asserted exactly. The one read-mode unify_value (f(W) against f(X))
// binds X's heap cell to W's, which overwrites a cell but pushes none, so
// it does not change the heap length.
func TestCompileAndMatchS6(t *testing.T) {
	m := NewMachine()
	buildS5(m)

	for _, instr := range []Instruction{
		GetStructure{Name: "p", Arity: 3, Xi: 1},
		UnifyVariable{Xi: 2},
		UnifyVariable{Xi: 3},
		UnifyVariable{Xi: 4},
		GetStructure{Name: "f", Arity: 1, Xi: 2},
		UnifyVariable{Xi: 5},
		GetStructure{Name: "h", Arity: 2, Xi: 3},
		UnifyValue{Xi: 4},
		UnifyVariable{Xi: 6},
		GetStructure{Name: "f", Arity: 1, Xi: 6},
		UnifyVariable{Xi: 7},
		GetStructure{Name: "a", Arity: 0, Xi: 7},
	} {
		instr.Execute(m)
	}

	assert.False(t, m.Fail)
	require.Len(t, m.Heap, 20)
	assert.Equal(t, Func("a", 0), m.Heap[19])

	x7 := m.Deref(XAddr(7))
	str := m.cellAt(x7)
	require.Equal(t, StrTag, str.Tag)
	assert.Equal(t, Func("a", 0), m.cellAt(HeapAddr(str.Addr)))
}

func TestDerefStopsAtUnboundSelfLoop(t *testing.T) {
	m := NewMachine()
	m.pushHeap(Ref(0))

	got := m.Deref(HeapAddr(0))
	assert.Equal(t, HeapAddr(0), got)
}

func TestDerefFollowsChainToLowestAddress(t *testing.T) {
	m := NewMachine()
	m.pushHeap(Ref(0))           // 0: unbound
	m.pushHeap(Ref(0))           // 1: points at 0
	m.pushHeap(Cell{Tag: RefTag, Addr: 1}) // 2: points at 1

	got := m.Deref(HeapAddr(2))
	assert.Equal(t, HeapAddr(0), got)
}

func TestBindOverwritesHigherAddress(t *testing.T) {
	m := NewMachine()
	m.pushHeap(Ref(0))
	m.pushHeap(Ref(1))

	m.Bind(HeapAddr(0), HeapAddr(1))

	assert.Equal(t, Ref(0), m.Heap[1])
	assert.Equal(t, Ref(0), m.Heap[0])
}

func TestGetStructureFailsOnFunctorMismatch(t *testing.T) {
	m := NewMachine()
	PutStructure{Name: "f", Arity: 1, Xi: 1}.Execute(m)
	SetVariable{Xi: 2}.Execute(m)

	GetStructure{Name: "g", Arity: 1, Xi: 1}.Execute(m)
	assert.True(t, m.Fail)
}
