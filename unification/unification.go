// Package unification is the destructive unification kernel (spec.md
// §4.3): Unify with its occurs check, and the instantiate/generalize
// pair mediating between monotypes and schemes.
package unification

import (
	"github.com/lirlia/100day_challenge_backend/day100_algorithm_j/ctx"
	"github.com/lirlia/100day_challenge_backend/day100_algorithm_j/types"
	"github.com/lirlia/100day_challenge_backend/day100_algorithm_j/typeerr"
)

// Unify destructively makes t0 and t1 structurally equal, or fails.
// Whichever side is a Var is always handled by unifyVar first — a
// fixed orientation that doesn't affect soundness but keeps diagnostic
// output reproducible (spec.md §4.3).
func Unify(t0, t1 types.Monotype) error {
	if v0, ok := t0.(types.Var); ok {
		return unifyVar(v0, t1)
	}
	if v1, ok := t1.(types.Var); ok {
		return unifyVar(v1, t0)
	}

	f0, ok0 := t0.(types.Func)
	f1, ok1 := t1.(types.Func)
	if ok0 && ok1 {
		if err := Unify(f0.Left, f1.Left); err != nil {
			return err
		}
		return Unify(f0.Right, f1.Right)
	}

	_, b0 := t0.(types.Bool)
	_, b1 := t1.(types.Bool)
	if b0 && b1 {
		return nil
	}

	return typeerr.TypeMismatch{T0: t0, T1: t1}
}

func unifyVar(v types.Var, other types.Monotype) error {
	if v.Cell.IsBound() {
		return Unify(v.Cell.Target(), other)
	}

	if ov, ok := other.(types.Var); ok && ov.Cell == v.Cell {
		return nil // same cell, nothing to do
	}

	if occurs(v.Cell.ID(), other) {
		return typeerr.RecursiveType{}
	}

	v.Cell.Bind(other)
	return nil
}

// occurs reports whether a variable with the given id is reachable
// from t, following Bound links transparently. Used to reject cyclic
// types before they can be constructed.
func occurs(id int, t types.Monotype) bool {
	switch tt := t.(type) {
	case types.Bool:
		return false
	case types.Func:
		return occurs(id, tt.Left) || occurs(id, tt.Right)
	case types.Var:
		if tt.Cell.IsBound() {
			return occurs(id, tt.Cell.Target())
		}
		return tt.Cell.ID() == id
	default:
		return false
	}
}

// Instantiate replaces every quantified variable of s with a fresh
// unification variable (allocated from c), producing a monotype that
// mentions no id from s.Vars — only ambient free ids and the freshly
// generated ones, which are shared across every occurrence produced by
// this one call.
func Instantiate(c *ctx.Context, s types.Scheme) types.Monotype {
	mapping := make(map[int]types.Monotype, len(s.Vars))
	for _, id := range s.Vars {
		mapping[id] = c.FreshVar()
	}
	return instantiateCopy(mapping, s.Type)
}

func instantiateCopy(mapping map[int]types.Monotype, t types.Monotype) types.Monotype {
	switch tt := t.(type) {
	case types.Bool:
		return tt
	case types.Func:
		return types.Func{
			Left:  instantiateCopy(mapping, tt.Left),
			Right: instantiateCopy(mapping, tt.Right),
		}
	case types.Var:
		if tt.Cell.IsBound() {
			return instantiateCopy(mapping, tt.Cell.Target())
		}
		if repl, ok := mapping[tt.Cell.ID()]; ok {
			return repl
		}
		return tt
	default:
		return t
	}
}

// Generalize promotes t to a scheme by quantifying over every free
// unbound variable reachable from it (spec.md §4.3's deliberately
// simplified rule: every free variable, not just those not free in the
// ambient environment — see DESIGN.md). t itself is shared, not
// copied; instantiate later rebuilds fresh copies as needed.
func Generalize(t types.Monotype) types.Scheme {
	seen := map[int]bool{}
	var ids []int
	var walk func(types.Monotype)
	walk = func(t types.Monotype) {
		switch tt := t.(type) {
		case types.Bool:
		case types.Func:
			walk(tt.Left)
			walk(tt.Right)
		case types.Var:
			if tt.Cell.IsBound() {
				walk(tt.Cell.Target())
				return
			}
			id := tt.Cell.ID()
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	walk(t)
	return types.Scheme{Vars: ids, Type: t}
}
