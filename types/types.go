// Package types is the representation of monomorphic and polymorphic
// types in the inferencer: Bool, function arrows, and unification
// variables backed by a shared mutable cell. The mutable graph is the
// thing that makes Algorithm J's destructive unification cheap; every
// other package treats a Monotype value as if it were immutable.
package types

// Monotype is a first-order type with no binders: Bool, Func, or Var.
// sealedMonotype keeps the interface closed to this package.
type Monotype interface {
	String() string
	sealedMonotype()
}

// Bool is the only base type.
type Bool struct{}

func (Bool) sealedMonotype() {}
func (Bool) String() string  { return "Bool" }

// Func is the function arrow l -> r.
type Func struct {
	Left  Monotype
	Right Monotype
}

func (Func) sealedMonotype() {}

// String renders f through PrintMonotype (print.go), which handles the
// right-associative arrows, parenthesization of the left operand and
// the letter-renaming of free variables; the REPL prints results this
// way.
func (f Func) String() string { return PrintMonotype(f) }

// VarCell is a unification variable: a mutable, shared cell that starts
// Unbound with a unique id and, at most once, transitions to Bound with
// a target Monotype. It never transitions back. Fields are unexported
// so the only way to mutate a cell is through Bind, which enforces that
// invariant.
type VarCell struct {
	bound  bool
	id     int
	target Monotype
}

// NewVarCell returns a fresh, unbound cell with the given id. Callers
// (ctx.Context.FreshVar) are responsible for id uniqueness within a run.
func NewVarCell(id int) *VarCell {
	return &VarCell{id: id}
}

// IsBound reports whether the cell has been bound.
func (c *VarCell) IsBound() bool { return c.bound }

// ID returns the cell's id. Only meaningful while unbound; a bound
// cell's id is irrelevant (its type is whatever Target resolves to).
func (c *VarCell) ID() int { return c.id }

// Target returns the monotype this cell was bound to. Panics if the
// cell is still unbound — callers must check IsBound first.
func (c *VarCell) Target() Monotype {
	if !c.bound {
		panic("types: Target called on an unbound VarCell")
	}
	return c.target
}

// Bind mutates the cell from Unbound to Bound, pointing it at t. It is
// an invariant violation — and therefore a panic, not an error — to
// bind an already-bound cell; unification never does this because it
// always follows Bound links to the representative before binding.
func (c *VarCell) Bind(t Monotype) {
	if c.bound {
		panic("types: Bind called on an already-bound VarCell")
	}
	c.bound = true
	c.target = t
}

// Var wraps a shared VarCell. Cloning a Var value (or a Func that
// contains one) preserves cell identity: copy the Go struct and the
// *VarCell pointer is still the same cell, so the sharing invariant
// that spec correctness depends on (distinct occurrences of a
// lambda-bound name sharing one variable) holds for free.
type Var struct {
	Cell *VarCell
}

func (Var) sealedMonotype() {}
func (v Var) String() string { return PrintMonotype(v) }

// Scheme (a.k.a. polytype) pairs a monotype with the list of variable
// ids universally quantified over it. Schemes are immutable values;
// different schemes may share the same underlying monotype graph.
type Scheme struct {
	Vars []int
	Type Monotype
}

// AsScheme promotes a monotype to a trivially generic scheme — no
// quantified ids. Used for the monomorphic binding a lambda parameter
// gets (spec.md §4.4's Abs rule).
func AsScheme(t Monotype) Scheme {
	return Scheme{Type: t}
}

func (s Scheme) String() string { return PrintScheme(s) }
