package types

// Equal compares two monotypes structurally, following Bound links
// transparently. Two Var nodes are equal iff they share the same
// underlying cell (pointer identity) — not merely the same id, since
// identity is the operative invariant cell sharing depends on.
func Equal(a, b Monotype) bool {
	a = resolve(a)
	b = resolve(b)

	switch av := a.(type) {
	case Bool:
		_, ok := b.(Bool)
		return ok
	case Func:
		bv, ok := b.(Func)
		return ok && Equal(av.Left, bv.Left) && Equal(av.Right, bv.Right)
	case Var:
		bv, ok := b.(Var)
		return ok && av.Cell == bv.Cell
	default:
		return false
	}
}

// resolve follows a chain of Bound Var cells down to either a non-Var
// monotype or an Unbound Var, the same "skip through Bound wrappers"
// traversal print.go and the unification kernel also need.
func resolve(t Monotype) Monotype {
	for {
		v, ok := t.(Var)
		if !ok || !v.Cell.IsBound() {
			return t
		}
		t = v.Cell.Target()
	}
}
