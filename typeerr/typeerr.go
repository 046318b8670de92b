// Package typeerr holds the three structured type-error kinds (spec.md
// §7). Each carries just enough context to render itself; there is no
// location tracking for RecursiveType or VarNotFound since nothing
// downstream needs it for this language.
package typeerr

import (
	"fmt"

	"github.com/lirlia/100day_challenge_backend/day100_algorithm_j/types"
)

// VarNotFound reports a Var expression referencing a name absent from
// the symbol environment.
type VarNotFound struct {
	Name string
}

func (e VarNotFound) Error() string {
	return fmt.Sprintf("variable not found: %s", e.Name)
}

// TypeMismatch reports two structurally incompatible concrete
// monotypes reached by unify. T0 and T1 are captured after all prior
// bindings were applied, so the rendered message reflects what
// unification actually saw.
type TypeMismatch struct {
	T0, T1 types.Monotype
}

func (e TypeMismatch) Error() string {
	return fmt.Sprintf("type mismatch: %s vs %s", types.PrintMonotype(e.T0), types.PrintMonotype(e.T1))
}

// RecursiveType reports an occurs-check failure: unifying a variable
// with a type that contains itself, which would otherwise build a
// cyclic type.
type RecursiveType struct{}

func (e RecursiveType) Error() string {
	return "recursive type"
}
