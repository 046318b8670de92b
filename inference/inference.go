// Package inference is the recursive inference judgment (spec.md
// §4.4): one case per ast.Expression variant, implementing Algorithm
// J's five rules over the type representation and unification kernel.
package inference

import (
	"github.com/lirlia/100day_challenge_backend/day100_algorithm_j/ast"
	"github.com/lirlia/100day_challenge_backend/day100_algorithm_j/ctx"
	"github.com/lirlia/100day_challenge_backend/day100_algorithm_j/types"
	"github.com/lirlia/100day_challenge_backend/day100_algorithm_j/typeerr"
	"github.com/lirlia/100day_challenge_backend/day100_algorithm_j/unification"
)

// Infer returns e's principal type under c's current symbol
// environment, or the first type error encountered. Subexpressions are
// evaluated strictly left-to-right (spec.md §5), so that is also the
// order in which errors are reported.
func Infer(c *ctx.Context, e ast.Expression) (types.Monotype, error) {
	switch e := e.(type) {
	case *ast.Var:
		scheme, ok := c.LookupSym(e.Name)
		if !ok {
			return nil, typeerr.VarNotFound{Name: e.Name}
		}
		return unification.Instantiate(c, scheme), nil

	case *ast.App:
		t0, err := Infer(c, e.Func)
		if err != nil {
			return nil, err
		}
		t1, err := Infer(c, e.Arg)
		if err != nil {
			return nil, err
		}
		t2 := c.FreshVar()
		if err := unification.Unify(t0, types.Func{Left: t1, Right: t2}); err != nil {
			return nil, err
		}
		return t2, nil

	case *ast.Abs:
		t0 := c.FreshVar()
		c.InsertSym(e.Param, types.AsScheme(t0))
		t1, err := Infer(c, e.Body)
		c.PopSym()
		if err != nil {
			return nil, err
		}
		return types.Func{Left: t0, Right: t1}, nil

	case *ast.Let:
		t0, err := Infer(c, e.Bound)
		if err != nil {
			return nil, err
		}
		scheme := unification.Generalize(t0)
		c.InsertSym(e.Name, scheme)
		t1, err := Infer(c, e.Body)
		c.PopSym()
		if err != nil {
			return nil, err
		}
		return t1, nil

	case *ast.True:
		return types.Bool{}, nil

	case *ast.False:
		return types.Bool{}, nil

	default:
		panic("inference: unhandled ast.Expression variant")
	}
}
