package types

import "testing"

func TestEqualIdentityForVars(t *testing.T) {
	shared := Var{Cell: NewVarCell(0)}
	other := Var{Cell: NewVarCell(0)} // same id, different cell

	if !Equal(shared, shared) {
		t.Errorf("a var should equal itself")
	}
	if Equal(shared, other) {
		t.Errorf("vars with the same id but distinct cells must not be Equal")
	}
}

func TestEqualStructural(t *testing.T) {
	if !Equal(Bool{}, Bool{}) {
		t.Errorf("Bool should equal Bool")
	}
	if Equal(Bool{}, Func{Bool{}, Bool{}}) {
		t.Errorf("Bool should not equal Func")
	}

	l := Func{Bool{}, Bool{}}
	r := Func{Bool{}, Bool{}}
	if !Equal(l, r) {
		t.Errorf("structurally identical Funcs of Bool should be Equal")
	}
}

func TestEqualFollowsBoundLinks(t *testing.T) {
	cell := NewVarCell(0)
	cell.Bind(Bool{})
	bound := Var{Cell: cell}

	if !Equal(bound, Bool{}) {
		t.Errorf("a var bound to Bool should Equal Bool")
	}
}
