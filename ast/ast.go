// Package ast defines the expression tree produced by the parser and
// consumed by the inferencer. Nodes are produced once and only read
// afterwards; inference never mutates an Expression.
package ast

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// Expression is satisfied by every node of the language: Var, App, Abs,
// Let, True, False. Pos is the source position the parser recorded for
// the node; inference never reads it.
type Expression interface {
	Pos() lexer.Position
	String() string
	sealedExpression()
}

// Var is a reference to a bound (or unbound) name.
type Var struct {
	Position lexer.Position
	Name     string
}

func (v *Var) Pos() lexer.Position { return v.Position }
func (v *Var) String() string      { return v.Name }
func (v *Var) sealedExpression()   {}

// App is function application: Func Arg.
type App struct {
	Position lexer.Position
	Func     Expression
	Arg      Expression
}

func (a *App) Pos() lexer.Position { return a.Position }
func (a *App) String() string      { return fmt.Sprintf("%s %s", a.Func, a.Arg) }
func (a *App) sealedExpression()   {}

// Abs is a lambda abstraction: \Param. Body.
type Abs struct {
	Position lexer.Position
	Param    string
	Body     Expression
}

func (l *Abs) Pos() lexer.Position { return l.Position }
func (l *Abs) String() string      { return fmt.Sprintf(`\%s. %s`, l.Param, l.Body) }
func (l *Abs) sealedExpression()   {}

// Let is a non-recursive binding: let Name = Bound in Body.
type Let struct {
	Position lexer.Position
	Name     string
	Bound    Expression
	Body     Expression
}

func (l *Let) Pos() lexer.Position { return l.Position }
func (l *Let) String() string {
	return fmt.Sprintf("let %s = %s in %s", l.Name, l.Bound, l.Body)
}
func (l *Let) sealedExpression() {}

// True and False are the two nullary boolean constants.
type True struct {
	Position lexer.Position
}

func (t *True) Pos() lexer.Position { return t.Position }
func (t *True) String() string      { return "true" }
func (t *True) sealedExpression()   {}

type False struct {
	Position lexer.Position
}

func (f *False) Pos() lexer.Position { return f.Position }
func (f *False) String() string      { return "false" }
func (f *False) sealedExpression()   {}
