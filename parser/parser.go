// Package parser turns source text into the ast.Expression tree that
// inference consumes. Built on participle, the teacher's own parser
// combinator dependency, generalized from MiniLang's arithmetic grammar
// to this language's lambda/let grammar.
package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/lirlia/100day_challenge_backend/day100_algorithm_j/ast"
)

// Lang is the lexer for the surface grammar (spec.md §6): `let`, `in`,
// `\`, `.`, `=`, parens, the boolean keywords, and identifiers. Keyword
// patterns carry a trailing \b so that e.g. "letter" lexes as a single
// Ident rather than as Let followed by "ter".
var Lang = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Let", Pattern: `let\b`},
	{Name: "In", Pattern: `in\b`},
	{Name: "True", Pattern: `true\b`},
	{Name: "False", Pattern: `false\b`},
	{Name: "Ident", Pattern: `[a-zA-Z][a-zA-Z0-9_']*`},
	{Name: "BSlash", Pattern: `\\`},
	{Name: "Dot", Pattern: `\.`},
	{Name: "Eq", Pattern: `=`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// grammarExpr is application: a head atom followed by zero or more
// further atoms, left-associative. This is the same flattened
// left-recursion-avoidance idiom the teacher used for Factor/Args,
// carried over to this grammar's juxtaposition application.
type grammarExpr struct {
	Pos  lexer.Position
	Head *grammarAtom   `@@`
	Args []*grammarAtom `@@*`
}

// grammarAtom is one of the grammar's "atom" productions (spec.md §6).
// Lambda and Let atoms each greedily consume a full expression as their
// body/bound-expression, which is what lets application bind tighter
// than `\` and `let` without any precedence climbing.
type grammarAtom struct {
	Pos    lexer.Position
	Bool   *string        `  @("true" | "false")`
	Var    *string        `| @Ident`
	Lambda *grammarLambda `| @@`
	Let    *grammarLet    `| @@`
	Paren  *grammarExpr   `| "(" @@ ")"`
}

type grammarLambda struct {
	Pos   lexer.Position
	Param string       `"\\" @Ident`
	Body  *grammarExpr `"." @@`
}

type grammarLet struct {
	Pos   lexer.Position
	Name  string       `"let" @Ident`
	Bound *grammarExpr `"=" @@`
	Body  *grammarExpr `"in" @@`
}

var langParser = participle.MustBuild[grammarExpr](
	participle.Lexer(Lang),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)

// Parse takes one line of source and returns its ast.Expression, or a
// participle parse error (UnexpectedToken / InvalidToken in shape,
// spec.md §6) if the input is malformed.
func Parse(src string) (ast.Expression, error) {
	g, err := langParser.ParseString("", src)
	if err != nil {
		return nil, err
	}
	return fromGrammarExpr(g), nil
}

func fromGrammarExpr(e *grammarExpr) ast.Expression {
	result := fromGrammarAtom(e.Head)
	for _, arg := range e.Args {
		result = &ast.App{
			Position: e.Pos,
			Func:     result,
			Arg:      fromGrammarAtom(arg),
		}
	}
	return result
}

func fromGrammarAtom(a *grammarAtom) ast.Expression {
	switch {
	case a.Bool != nil:
		if *a.Bool == "true" {
			return &ast.True{Position: a.Pos}
		}
		return &ast.False{Position: a.Pos}
	case a.Var != nil:
		return &ast.Var{Position: a.Pos, Name: *a.Var}
	case a.Lambda != nil:
		return &ast.Abs{
			Position: a.Lambda.Pos,
			Param:    a.Lambda.Param,
			Body:     fromGrammarExpr(a.Lambda.Body),
		}
	case a.Let != nil:
		return &ast.Let{
			Position: a.Let.Pos,
			Name:     a.Let.Name,
			Bound:    fromGrammarExpr(a.Let.Bound),
			Body:     fromGrammarExpr(a.Let.Body),
		}
	case a.Paren != nil:
		return fromGrammarExpr(a.Paren)
	default:
		panic("parser: grammarAtom with no alternative set")
	}
}
