// Package ast defines the abstract syntax tree for the typed, JSX-capable
// JavaScript dialects that Marlin lowers to plain JavaScript.
//
// The tree is built by a parser upstream of this module and rewritten in
// place by the transform stage. Node positions refer to the original source
// and survive rewriting, so diagnostics emitted late in the pipeline still
// point at real input.
//
// Two field conventions matter to consumers:
//
//   - Type annotations (Param.Type, VarDecl.Type, FuncDecl.ReturnType, and
//     friends) are ordinary Expr values, but they occupy type positions, not
//     value positions. Walk does not descend into them.
//   - Binding names (VarDecl.Name, FuncDecl.Name, Param.Name, ...) are
//     *Ident values that name a declaration rather than reference one. Walk
//     does not present them as expressions either.
package ast

import (
	"strings"

	"github.com/deepnoodle-ai/marlin/token"
)

// Node is the interface implemented by every syntax tree node.
type Node interface {
	// Pos returns the position of the first character belonging to the node.
	Pos() token.Position

	// End returns the position of the first character immediately after
	// the node.
	End() token.Position

	// String returns a compact single-line rendering of the node. It is
	// meant for diagnostics and tests, not for faithful code emission.
	String() string
}

// Stmt is implemented by all statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is implemented by all expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Program is the root node of a parsed source file.
type Program struct {
	// Stmts holds the top level statements in source order.
	Stmts []Stmt
}

// Pos returns the position of the first statement, if any.
func (p *Program) Pos() token.Position {
	if len(p.Stmts) > 0 {
		return p.Stmts[0].Pos()
	}
	return token.NoPos
}

// End returns the position just after the last statement, if any.
func (p *Program) End() token.Position {
	if n := len(p.Stmts); n > 0 {
		return p.Stmts[n-1].End()
	}
	return token.NoPos
}

func (p *Program) String() string {
	var out strings.Builder
	for i, stmt := range p.Stmts {
		if i > 0 {
			out.WriteString("\n")
		}
		out.WriteString(stmt.String())
	}
	return out.String()
}

// BadStmt is a placeholder for a statement region that failed to parse.
type BadStmt struct {
	From, To token.Position
}

func (s *BadStmt) stmtNode()           {}
func (s *BadStmt) Pos() token.Position { return s.From }
func (s *BadStmt) End() token.Position { return s.To }
func (s *BadStmt) String() string      { return "<bad statement>" }

// BadExpr is a placeholder for an expression region that failed to parse.
type BadExpr struct {
	From, To token.Position
}

func (e *BadExpr) exprNode()           {}
func (e *BadExpr) Pos() token.Position { return e.From }
func (e *BadExpr) End() token.Position { return e.To }
func (e *BadExpr) String() string      { return "<bad expression>" }
