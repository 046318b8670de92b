package unification

import (
	"errors"
	"testing"

	"github.com/lirlia/100day_challenge_backend/day100_algorithm_j/ctx"
	"github.com/lirlia/100day_challenge_backend/day100_algorithm_j/types"
	"github.com/lirlia/100day_challenge_backend/day100_algorithm_j/typeerr"
)

func TestUnifyBoolBool(t *testing.T) {
	if err := Unify(types.Bool{}, types.Bool{}); err != nil {
		t.Fatalf("Unify(Bool, Bool) = %v, want nil", err)
	}
}

func TestUnifyMismatch(t *testing.T) {
	err := Unify(types.Bool{}, types.Func{Left: types.Bool{}, Right: types.Bool{}})
	var mismatch typeerr.TypeMismatch
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected TypeMismatch, got %v", err)
	}
}

func TestUnifyBindsUnboundVar(t *testing.T) {
	c := ctx.New()
	v := c.FreshVar()
	if err := Unify(v, types.Bool{}); err != nil {
		t.Fatalf("Unify(var, Bool) = %v, want nil", err)
	}
	if !v.Cell.IsBound() {
		t.Fatalf("expected v to be bound after unification")
	}
	if !types.Equal(v, types.Bool{}) {
		t.Fatalf("expected v to resolve to Bool")
	}
}

func TestUnifySameCellIsNoOp(t *testing.T) {
	c := ctx.New()
	v := c.FreshVar()
	if err := Unify(v, v); err != nil {
		t.Fatalf("unifying a var with itself should succeed, got %v", err)
	}
	if v.Cell.IsBound() {
		t.Fatalf("unifying a var with itself should not bind it")
	}
}

func TestUnifyFuncRecurses(t *testing.T) {
	c := ctx.New()
	v0 := c.FreshVar()
	v1 := c.FreshVar()

	lhs := types.Func{Left: v0, Right: v1}
	rhs := types.Func{Left: types.Bool{}, Right: types.Func{Left: types.Bool{}, Right: types.Bool{}}}

	if err := Unify(lhs, rhs); err != nil {
		t.Fatalf("Unify(Func, Func) = %v, want nil", err)
	}
	if !types.Equal(v0, types.Bool{}) {
		t.Errorf("expected v0 bound to Bool")
	}
	if !types.Equal(v1, types.Func{Left: types.Bool{}, Right: types.Bool{}}) {
		t.Errorf("expected v1 bound to Bool -> Bool")
	}
}

func TestUnifyArgMismatchReportedBeforeReturnMismatch(t *testing.T) {
	// unify(Bool -> Bool -> Bool, (Bool -> Bool) -> Bool): both positions
	// mismatch, but the arg position (Bool vs Bool -> Bool) must be the
	// one reported, not the return position (Bool -> Bool vs Bool)
	// (spec.md §5: left before right).
	lhs := types.Func{Left: types.Bool{}, Right: types.Func{Left: types.Bool{}, Right: types.Bool{}}}
	rhs := types.Func{Left: types.Func{Left: types.Bool{}, Right: types.Bool{}}, Right: types.Bool{}}

	err := Unify(lhs, rhs)
	var mismatch typeerr.TypeMismatch
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected TypeMismatch, got %v", err)
	}
	if !types.Equal(mismatch.T0, types.Bool{}) {
		t.Errorf("expected the mismatch to be on the argument position (Bool), got %v", mismatch.T0)
	}
}

func TestOccursCheckFailsOnSelfApplication(t *testing.T) {
	// \x. x x: unifying 'a with 'a -> 'b must fail the occurs check.
	c := ctx.New()
	v0 := c.FreshVar()
	v1 := c.FreshVar()

	err := Unify(v0, types.Func{Left: v0, Right: v1})
	if !errors.As(err, new(typeerr.RecursiveType)) {
		t.Fatalf("expected RecursiveType, got %v", err)
	}
}

func TestOccursCheckThroughBoundChain(t *testing.T) {
	c := ctx.New()
	v0 := c.FreshVar()
	v1 := c.FreshVar()

	// Bind v1 -> v0 first, then try to unify v0 with (v1 -> Bool),
	// which transitively mentions v0 through the Bound link.
	if err := Unify(v1, v0); err != nil {
		t.Fatalf("setup unify failed: %v", err)
	}
	err := Unify(v0, types.Func{Left: v1, Right: types.Bool{}})
	if !errors.As(err, new(typeerr.RecursiveType)) {
		t.Fatalf("expected RecursiveType through a bound chain, got %v", err)
	}
}

func TestInstantiateProducesFreshSharedVars(t *testing.T) {
	c := ctx.New()
	bound := c.FreshVar()
	scheme := types.Scheme{Vars: []int{bound.Cell.ID()}, Type: types.Func{Left: bound, Right: bound}}

	inst := Instantiate(c, scheme)
	f, ok := inst.(types.Func)
	if !ok {
		t.Fatalf("expected Func, got %#v", inst)
	}

	lv, ok := f.Left.(types.Var)
	if !ok {
		t.Fatalf("expected Var on the left, got %#v", f.Left)
	}
	rv, ok := f.Right.(types.Var)
	if !ok {
		t.Fatalf("expected Var on the right, got %#v", f.Right)
	}
	if lv.Cell != rv.Cell {
		t.Errorf("instantiate must share the fresh variable across both occurrences")
	}
	if lv.Cell == bound.Cell {
		t.Errorf("instantiate must not reuse the scheme's own cell")
	}
}

func TestInstantiateLeavesAmbientVarsShared(t *testing.T) {
	c := ctx.New()
	quantified := c.FreshVar()
	ambient := c.FreshVar()

	scheme := types.Scheme{
		Vars: []int{quantified.Cell.ID()},
		Type: types.Func{Left: quantified, Right: ambient},
	}

	inst := Instantiate(c, scheme)
	f := inst.(types.Func)
	if rv, ok := f.Right.(types.Var); !ok || rv.Cell != ambient.Cell {
		t.Errorf("ambient (non-quantified) variable should be shared verbatim, got %#v", f.Right)
	}
}

func TestGeneralizeThenInstantiateDuality(t *testing.T) {
	c := ctx.New()
	v := c.FreshVar()
	original := types.Func{Left: v, Right: v}

	scheme := Generalize(original)
	if len(scheme.Vars) != 1 {
		t.Fatalf("expected exactly one quantified variable, got %v", scheme.Vars)
	}

	inst := Instantiate(c, scheme)
	f := inst.(types.Func)
	lv := f.Left.(types.Var)
	rv := f.Right.(types.Var)
	if lv.Cell != rv.Cell {
		t.Errorf("duality must preserve the sharing pattern of the original")
	}
	if lv.Cell == v.Cell {
		t.Errorf("instantiate must produce a fresh variable, not reuse the original cell")
	}
}
