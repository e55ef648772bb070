package ast

import (
	"strconv"
	"strings"

	"github.com/deepnoodle-ai/marlin/token"
)

// Ident is an identifier in value or type position.
type Ident struct {
	NamePos token.Position
	Name    string
}

func (e *Ident) exprNode()           {}
func (e *Ident) Pos() token.Position { return e.NamePos }
func (e *Ident) End() token.Position { return e.NamePos.Advance(len(e.Name)) }
func (e *Ident) String() string      { return e.Name }

// NumberLit is a numeric literal. Literal preserves the source spelling.
type NumberLit struct {
	ValuePos token.Position
	Literal  string
	Value    float64
}

func (e *NumberLit) exprNode()           {}
func (e *NumberLit) Pos() token.Position { return e.ValuePos }
func (e *NumberLit) End() token.Position { return e.ValuePos.Advance(len(e.Literal)) }

func (e *NumberLit) String() string {
	if e.Literal != "" {
		return e.Literal
	}
	return strconv.FormatFloat(e.Value, 'g', -1, 64)
}

// StringLit is a string literal. Value holds the decoded text.
type StringLit struct {
	ValuePos token.Position
	Value    string
}

func (e *StringLit) exprNode()           {}
func (e *StringLit) Pos() token.Position { return e.ValuePos }
func (e *StringLit) End() token.Position { return e.ValuePos.Advance(len(e.Value) + 2) }
func (e *StringLit) String() string      { return strconv.Quote(e.Value) }

// BoolLit is "true" or "false".
type BoolLit struct {
	ValuePos token.Position
	Value    bool
}

func (e *BoolLit) exprNode()           {}
func (e *BoolLit) Pos() token.Position { return e.ValuePos }
func (e *BoolLit) End() token.Position { return e.ValuePos.Advance(len(e.String())) }
func (e *BoolLit) String() string      { return strconv.FormatBool(e.Value) }

// NullLit is the "null" literal.
type NullLit struct {
	ValuePos token.Position
}

func (e *NullLit) exprNode()           {}
func (e *NullLit) Pos() token.Position { return e.ValuePos }
func (e *NullLit) End() token.Position { return e.ValuePos.Advance(len("null")) }
func (e *NullLit) String() string      { return "null" }

// Prefix is a unary operator expression such as !x or -x.
type Prefix struct {
	OpPos token.Position
	Op    string
	X     Expr
}

func (e *Prefix) exprNode()           {}
func (e *Prefix) Pos() token.Position { return e.OpPos }
func (e *Prefix) End() token.Position { return e.X.End() }
func (e *Prefix) String() string      { return "(" + e.Op + e.X.String() + ")" }

// Infix is a binary operator expression such as a + b.
type Infix struct {
	X     Expr
	OpPos token.Position
	Op    string
	Y     Expr
}

func (e *Infix) exprNode()           {}
func (e *Infix) Pos() token.Position { return e.X.Pos() }
func (e *Infix) End() token.Position { return e.Y.End() }

func (e *Infix) String() string {
	return "(" + e.X.String() + " " + e.Op + " " + e.Y.String() + ")"
}

// Assign is an assignment expression. Op is "=" or a compound form
// such as "+=".
type Assign struct {
	Target Expr
	OpPos  token.Position
	Op     string
	Value  Expr
}

func (e *Assign) exprNode()           {}
func (e *Assign) Pos() token.Position { return e.Target.Pos() }
func (e *Assign) End() token.Position { return e.Value.End() }

func (e *Assign) String() string {
	return e.Target.String() + " " + e.Op + " " + e.Value.String()
}

// Ternary is the conditional operator cond ? then : else.
type Ternary struct {
	Cond     Expr
	Question token.Position
	Then     Expr
	Colon    token.Position
	Else     Expr
}

func (e *Ternary) exprNode()           {}
func (e *Ternary) Pos() token.Position { return e.Cond.Pos() }
func (e *Ternary) End() token.Position { return e.Else.End() }

func (e *Ternary) String() string {
	return "(" + e.Cond.String() + " ? " + e.Then.String() + " : " + e.Else.String() + ")"
}

// Call is a function call expression.
type Call struct {
	Fun    Expr
	Lparen token.Position
	Args   []Expr
	Rparen token.Position
}

func (e *Call) exprNode()           {}
func (e *Call) Pos() token.Position { return e.Fun.Pos() }
func (e *Call) End() token.Position { return e.Rparen.Advance(1) }

func (e *Call) String() string {
	args := make([]string, 0, len(e.Args))
	for _, arg := range e.Args {
		args = append(args, arg.String())
	}
	return e.Fun.String() + "(" + strings.Join(args, ", ") + ")"
}

// Member is a property access expression such as obj.name.
type Member struct {
	X        Expr
	Property *Ident
}

func (e *Member) exprNode()           {}
func (e *Member) Pos() token.Position { return e.X.Pos() }
func (e *Member) End() token.Position { return e.Property.End() }
func (e *Member) String() string      { return e.X.String() + "." + e.Property.String() }

// Index is a computed access expression such as obj[key].
type Index struct {
	X      Expr
	Lbrack token.Position
	Index  Expr
	Rbrack token.Position
}

func (e *Index) exprNode()           {}
func (e *Index) Pos() token.Position { return e.X.Pos() }
func (e *Index) End() token.Position { return e.Rbrack.Advance(1) }
func (e *Index) String() string      { return e.X.String() + "[" + e.Index.String() + "]" }

// ArrayLit is an array literal.
type ArrayLit struct {
	Lbrack token.Position
	Items  []Expr
	Rbrack token.Position
}

func (e *ArrayLit) exprNode()           {}
func (e *ArrayLit) Pos() token.Position { return e.Lbrack }
func (e *ArrayLit) End() token.Position { return e.Rbrack.Advance(1) }

func (e *ArrayLit) String() string {
	items := make([]string, 0, len(e.Items))
	for _, item := range e.Items {
		items = append(items, item.String())
	}
	return "[" + strings.Join(items, ", ") + "]"
}

// ObjectProperty is one entry in an object literal. A nil Key marks a
// spread entry whose operand is Value.
type ObjectProperty struct {
	Key      Expr
	Computed bool
	Value    Expr
}

func (p *ObjectProperty) Pos() token.Position {
	if p.Key != nil {
		return p.Key.Pos()
	}
	return p.Value.Pos()
}

func (p *ObjectProperty) End() token.Position { return p.Value.End() }

func (p *ObjectProperty) String() string {
	if p.Key == nil {
		return "..." + p.Value.String()
	}
	if p.Computed {
		return "[" + p.Key.String() + "]: " + p.Value.String()
	}
	return p.Key.String() + ": " + p.Value.String()
}

// ObjectLit is an object literal.
type ObjectLit struct {
	Lbrace     token.Position
	Properties []*ObjectProperty
	Rbrace     token.Position
}

func (e *ObjectLit) exprNode()           {}
func (e *ObjectLit) Pos() token.Position { return e.Lbrace }
func (e *ObjectLit) End() token.Position { return e.Rbrace.Advance(1) }

func (e *ObjectLit) String() string {
	if len(e.Properties) == 0 {
		return "{}"
	}
	props := make([]string, 0, len(e.Properties))
	for _, p := range e.Properties {
		props = append(props, p.String())
	}
	return "{ " + strings.Join(props, ", ") + " }"
}

// FuncLit is a function expression, optionally named.
type FuncLit struct {
	Function token.Position // position of the "function" keyword
	Name     *Ident
	Params   []*Param

	// ReturnType occupies a type position and is not visited by Walk.
	ReturnType Expr

	Body *Block
}

func (e *FuncLit) exprNode()           {}
func (e *FuncLit) Pos() token.Position { return e.Function }
func (e *FuncLit) End() token.Position { return e.Body.End() }

func (e *FuncLit) String() string {
	var out strings.Builder
	out.WriteString("function")
	if e.Name != nil {
		out.WriteString(" ")
		out.WriteString(e.Name.String())
	}
	out.WriteString("(")
	out.WriteString(paramList(e.Params))
	out.WriteString(")")
	if e.ReturnType != nil {
		out.WriteString(": ")
		out.WriteString(e.ReturnType.String())
	}
	out.WriteString(" ")
	out.WriteString(e.Body.String())
	return out.String()
}

// ArrowFunc is an arrow function expression. Exactly one of Body and Value
// is set: Body for a block body, Value for an expression body.
type ArrowFunc struct {
	Lparen token.Position
	Params []*Param

	// ReturnType occupies a type position and is not visited by Walk.
	ReturnType Expr

	Arrow token.Position
	Body  *Block
	Value Expr
}

func (e *ArrowFunc) exprNode()           {}
func (e *ArrowFunc) Pos() token.Position { return e.Lparen }

func (e *ArrowFunc) End() token.Position {
	if e.Body != nil {
		return e.Body.End()
	}
	return e.Value.End()
}

func (e *ArrowFunc) String() string {
	var out strings.Builder
	out.WriteString("(")
	out.WriteString(paramList(e.Params))
	out.WriteString(")")
	if e.ReturnType != nil {
		out.WriteString(": ")
		out.WriteString(e.ReturnType.String())
	}
	out.WriteString(" => ")
	if e.Body != nil {
		out.WriteString(e.Body.String())
	} else {
		out.WriteString(e.Value.String())
	}
	return out.String()
}

// ClassExpr adapts a class for expression position. The decorator pass
// produces these when it rewrites a decorated class declaration into a
// variable initialized with wrapped decorator calls.
type ClassExpr struct {
	Decl *ClassDecl
}

func (e *ClassExpr) exprNode()           {}
func (e *ClassExpr) Pos() token.Position { return e.Decl.Pos() }
func (e *ClassExpr) End() token.Position { return e.Decl.End() }
func (e *ClassExpr) String() string      { return "(" + e.Decl.String() + ")" }

// TSAs is a TypeScript "expr as Type" assertion.
type TSAs struct {
	X  Expr
	As token.Position // position of the "as" keyword

	// Type occupies a type position and is not visited by Walk.
	Type Expr
}

func (e *TSAs) exprNode()           {}
func (e *TSAs) Pos() token.Position { return e.X.Pos() }
func (e *TSAs) End() token.Position { return e.Type.End() }
func (e *TSAs) String() string      { return "(" + e.X.String() + " as " + e.Type.String() + ")" }

// TSNonNull is a TypeScript "expr!" non-null assertion.
type TSNonNull struct {
	X    Expr
	Bang token.Position
}

func (e *TSNonNull) exprNode()           {}
func (e *TSNonNull) Pos() token.Position { return e.X.Pos() }
func (e *TSNonNull) End() token.Position { return e.Bang.Advance(1) }
func (e *TSNonNull) String() string      { return e.X.String() + "!" }
