package prolog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvironmentWalkFollowsChain(t *testing.T) {
	x := Var{Name: "X"}
	y := Var{Name: "Y"}

	e := NewEnvironment().Extend(x, y).Extend(y, Const("a"))

	assert.Equal(t, Const("a"), e.Walk(x))
	assert.Equal(t, Const("a"), e.Walk(y))
}

func TestEnvironmentWalkUnboundReturnsVar(t *testing.T) {
	x := Var{Name: "X"}
	e := NewEnvironment()

	assert.Equal(t, x, e.Walk(x))
}

func TestEnvironmentWalkCompoundRecurses(t *testing.T) {
	x := Var{Name: "X"}
	e := NewEnvironment().Extend(x, Const("a"))

	term := NewCompound("f", x, Const("b"))
	want := NewCompound("f", Const("a"), Const("b"))

	assert.Equal(t, want, e.Walk(term))
}

func TestEnvironmentExtendDoesNotMutateOriginal(t *testing.T) {
	x := Var{Name: "X"}
	e0 := NewEnvironment()
	e1 := e0.Extend(x, Const("a"))

	_, ok := e0.Lookup(x)
	assert.False(t, ok)

	v, ok := e1.Lookup(x)
	assert.True(t, ok)
	assert.Equal(t, Const("a"), v)
	assert.Equal(t, 0, e0.Len())
	assert.Equal(t, 1, e1.Len())
}

func TestOccurs(t *testing.T) {
	x := Var{Name: "X"}
	y := Var{Name: "Y"}

	assert.True(t, Occurs(x, x))
	assert.False(t, Occurs(x, y))
	assert.True(t, Occurs(x, NewCompound("f", y, x)))
	assert.False(t, Occurs(x, NewCompound("f", y, Const("a"))))
}
