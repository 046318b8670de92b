// Package ctx is the inference context (spec.md §4.2): the fresh-id
// counter and the lexically-scoped symbol environment, mirroring
// ctx.rs from the original implementation this spec was distilled
// from.
package ctx

import "github.com/lirlia/100day_challenge_backend/day100_algorithm_j/types"

type binding struct {
	name   string
	scheme types.Scheme
}

// Context owns everything one inference run needs to thread through:
// the fresh-variable counter and the symbol stack. It is not safe for
// concurrent use — the inferencer is single-threaded (spec.md §5).
type Context struct {
	nextID int
	syms   []binding
}

// New returns an empty context with its id counter at zero. The REPL
// constructs one of these per input line so that ids in the printed
// type always start from 'a regardless of what ran before.
func New() *Context {
	return &Context{}
}

// FreshVar returns a new, unbound unification variable with an id
// strictly greater than any this context has issued before.
func (c *Context) FreshVar() types.Var {
	id := c.nextID
	c.nextID++
	return types.Var{Cell: types.NewVarCell(id)}
}

// InsertSym pushes a binding onto the symbol stack, shadowing any
// existing binding of the same name.
func (c *Context) InsertSym(name string, s types.Scheme) {
	c.syms = append(c.syms, binding{name: name, scheme: s})
}

// PopSym pops the most recently inserted binding. Must be called
// exactly once per matching InsertSym on every success path.
func (c *Context) PopSym() {
	c.syms = c.syms[:len(c.syms)-1]
}

// LookupSym scans the symbol stack from the top down and returns the
// first matching scheme.
func (c *Context) LookupSym(name string) (types.Scheme, bool) {
	for i := len(c.syms) - 1; i >= 0; i-- {
		if c.syms[i].name == name {
			return c.syms[i].scheme, true
		}
	}
	return types.Scheme{}, false
}
