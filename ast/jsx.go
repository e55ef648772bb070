package ast

import (
	"strings"

	"github.com/deepnoodle-ai/marlin/token"
)

// JSXAttr is a single attribute on a JSX element. Exactly one of Name and
// Spread identifies the attribute:
//
//	<div id="a" hidden {...rest} />
//
// yields one attribute with Name "id", one with Name "hidden" and a nil
// Value, and one with Spread set to the rest expression.
type JSXAttr struct {
	NamePos token.Position
	Name    string

	// Value is the attribute value: a StringLit for quoted values, a
	// JSXExprContainer for braced values, or nil for bare attributes.
	Value Expr

	// Spread holds the operand of a {...expr} attribute.
	Spread Expr
}

func (a *JSXAttr) Pos() token.Position {
	if a.Spread != nil {
		return a.Spread.Pos()
	}
	return a.NamePos
}

func (a *JSXAttr) End() token.Position {
	if a.Spread != nil {
		return a.Spread.End()
	}
	if a.Value != nil {
		return a.Value.End()
	}
	return a.NamePos.Advance(len(a.Name))
}

func (a *JSXAttr) String() string {
	if a.Spread != nil {
		return "{..." + a.Spread.String() + "}"
	}
	if a.Value == nil {
		return a.Name
	}
	return a.Name + "=" + a.Value.String()
}

// JSXElement is a JSX element such as <Foo bar="1">...</Foo>.
//
// Tag is an *Ident for simple tags or a Member chain for namespaced tags
// like <Lib.Widget>. A Tag identifier whose name starts with a lowercase
// letter denotes an intrinsic element and lowers to a string.
type JSXElement struct {
	Langle      token.Position // position of the opening "<"
	Tag         Expr
	Attrs       []*JSXAttr
	SelfClosing bool

	// Children holds JSXText, JSXElement, JSXFragment, and
	// JSXExprContainer nodes in source order.
	Children []Expr

	Rangle token.Position // position of the final ">"
}

func (e *JSXElement) exprNode()           {}
func (e *JSXElement) Pos() token.Position { return e.Langle }
func (e *JSXElement) End() token.Position { return e.Rangle.Advance(1) }

func (e *JSXElement) String() string {
	var out strings.Builder
	out.WriteString("<")
	out.WriteString(e.Tag.String())
	for _, attr := range e.Attrs {
		out.WriteString(" ")
		out.WriteString(attr.String())
	}
	if e.SelfClosing {
		out.WriteString(" />")
		return out.String()
	}
	out.WriteString(">")
	for _, child := range e.Children {
		out.WriteString(child.String())
	}
	out.WriteString("</")
	out.WriteString(e.Tag.String())
	out.WriteString(">")
	return out.String()
}

// JSXFragment is the shorthand fragment form <>...</>.
type JSXFragment struct {
	Langle   token.Position // position of the opening "<"
	Children []Expr
	Rangle   token.Position // position of the final ">"
}

func (e *JSXFragment) exprNode()           {}
func (e *JSXFragment) Pos() token.Position { return e.Langle }
func (e *JSXFragment) End() token.Position { return e.Rangle.Advance(1) }

func (e *JSXFragment) String() string {
	var out strings.Builder
	out.WriteString("<>")
	for _, child := range e.Children {
		out.WriteString(child.String())
	}
	out.WriteString("</>")
	return out.String()
}

// JSXExprContainer is a braced expression in JSX attribute or child
// position. X is nil for an empty container, which contributes nothing
// when lowered.
type JSXExprContainer struct {
	Lbrace token.Position
	X      Expr
	Rbrace token.Position
}

func (e *JSXExprContainer) exprNode()           {}
func (e *JSXExprContainer) Pos() token.Position { return e.Lbrace }
func (e *JSXExprContainer) End() token.Position { return e.Rbrace.Advance(1) }

func (e *JSXExprContainer) String() string {
	if e.X == nil {
		return "{}"
	}
	return "{" + e.X.String() + "}"
}

// JSXText is literal text between JSX tags. Value preserves the raw text
// including surrounding whitespace; lowering applies the host framework's
// whitespace trimming rules.
type JSXText struct {
	ValuePos token.Position
	Value    string
}

func (e *JSXText) exprNode()           {}
func (e *JSXText) Pos() token.Position { return e.ValuePos }
func (e *JSXText) End() token.Position { return e.ValuePos.Advance(len(e.Value)) }
func (e *JSXText) String() string      { return e.Value }
