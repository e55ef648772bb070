package ast

import (
	"strings"

	"github.com/deepnoodle-ai/marlin/token"
)

// VarKind identifies the keyword used by a variable declaration.
type VarKind int

const (
	VarKindVar VarKind = iota
	VarKindLet
	VarKindConst
)

func (k VarKind) String() string {
	switch k {
	case VarKindLet:
		return "let"
	case VarKindConst:
		return "const"
	default:
		return "var"
	}
}

// VarDecl declares a single binding, optionally annotated and initialized:
//
//	let x: number = 1
type VarDecl struct {
	VarPos token.Position // position of the declaration keyword
	Kind   VarKind
	Name   *Ident

	// Type is the optional annotation on the binding. It occupies a type
	// position and is not visited by Walk.
	Type Expr

	// Value is the optional initializer.
	Value Expr
}

func (s *VarDecl) stmtNode()           {}
func (s *VarDecl) Pos() token.Position { return s.VarPos }

func (s *VarDecl) End() token.Position {
	if s.Value != nil {
		return s.Value.End()
	}
	if s.Type != nil {
		return s.Type.End()
	}
	return s.Name.End()
}

func (s *VarDecl) String() string {
	var out strings.Builder
	out.WriteString(s.Kind.String())
	out.WriteString(" ")
	out.WriteString(s.Name.String())
	if s.Type != nil {
		out.WriteString(": ")
		out.WriteString(s.Type.String())
	}
	if s.Value != nil {
		out.WriteString(" = ")
		out.WriteString(s.Value.String())
	}
	return out.String()
}

// Param is a single function or method parameter.
type Param struct {
	Name *Ident

	// Type is the optional annotation. It occupies a type position and is
	// not visited by Walk.
	Type Expr

	// Optional reports whether the parameter was marked with a trailing
	// question mark.
	Optional bool

	// Default is the optional default value expression.
	Default Expr
}

func (p *Param) Pos() token.Position { return p.Name.Pos() }

func (p *Param) End() token.Position {
	if p.Default != nil {
		return p.Default.End()
	}
	if p.Type != nil {
		return p.Type.End()
	}
	return p.Name.End()
}

func (p *Param) String() string {
	var out strings.Builder
	out.WriteString(p.Name.String())
	if p.Optional {
		out.WriteString("?")
	}
	if p.Type != nil {
		out.WriteString(": ")
		out.WriteString(p.Type.String())
	}
	if p.Default != nil {
		out.WriteString(" = ")
		out.WriteString(p.Default.String())
	}
	return out.String()
}

func paramList(params []*Param) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, p.String())
	}
	return strings.Join(parts, ", ")
}

// FuncDecl is a named function declaration statement.
type FuncDecl struct {
	Function token.Position // position of the "function" keyword
	Name     *Ident
	Params   []*Param

	// ReturnType is the optional annotation after the parameter list. It
	// occupies a type position and is not visited by Walk.
	ReturnType Expr

	Body *Block
}

func (s *FuncDecl) stmtNode()           {}
func (s *FuncDecl) Pos() token.Position { return s.Function }
func (s *FuncDecl) End() token.Position { return s.Body.End() }

func (s *FuncDecl) String() string {
	var out strings.Builder
	out.WriteString("function ")
	out.WriteString(s.Name.String())
	out.WriteString("(")
	out.WriteString(paramList(s.Params))
	out.WriteString(")")
	if s.ReturnType != nil {
		out.WriteString(": ")
		out.WriteString(s.ReturnType.String())
	}
	out.WriteString(" ")
	out.WriteString(s.Body.String())
	return out.String()
}

// Return is a return statement with an optional value.
type Return struct {
	Return token.Position // position of the "return" keyword
	Value  Expr
}

func (s *Return) stmtNode()           {}
func (s *Return) Pos() token.Position { return s.Return }

func (s *Return) End() token.Position {
	if s.Value != nil {
		return s.Value.End()
	}
	return s.Return.Advance(len("return"))
}

func (s *Return) String() string {
	if s.Value == nil {
		return "return"
	}
	return "return " + s.Value.String()
}

// ExprStmt wraps an expression in statement position.
type ExprStmt struct {
	X Expr
}

func (s *ExprStmt) stmtNode()           {}
func (s *ExprStmt) Pos() token.Position { return s.X.Pos() }
func (s *ExprStmt) End() token.Position { return s.X.End() }
func (s *ExprStmt) String() string      { return s.X.String() }

// Block is a brace-delimited statement list.
type Block struct {
	Lbrace token.Position
	Stmts  []Stmt
	Rbrace token.Position
}

func (s *Block) stmtNode()           {}
func (s *Block) Pos() token.Position { return s.Lbrace }
func (s *Block) End() token.Position { return s.Rbrace.Advance(1) }

func (s *Block) String() string {
	if len(s.Stmts) == 0 {
		return "{}"
	}
	var out strings.Builder
	out.WriteString("{ ")
	for i, stmt := range s.Stmts {
		if i > 0 {
			out.WriteString("; ")
		}
		out.WriteString(stmt.String())
	}
	out.WriteString(" }")
	return out.String()
}

// If is a conditional statement with an optional else block.
type If struct {
	If          token.Position // position of the "if" keyword
	Cond        Expr
	Consequence *Block
	Alternative *Block
}

func (s *If) stmtNode()           {}
func (s *If) Pos() token.Position { return s.If }

func (s *If) End() token.Position {
	if s.Alternative != nil {
		return s.Alternative.End()
	}
	return s.Consequence.End()
}

func (s *If) String() string {
	var out strings.Builder
	out.WriteString("if (")
	out.WriteString(s.Cond.String())
	out.WriteString(") ")
	out.WriteString(s.Consequence.String())
	if s.Alternative != nil {
		out.WriteString(" else ")
		out.WriteString(s.Alternative.String())
	}
	return out.String()
}

// For is a C-style loop. Init, Cond, and Post may each be nil.
type For struct {
	For  token.Position // position of the "for" keyword
	Init Stmt
	Cond Expr
	Post Stmt
	Body *Block
}

func (s *For) stmtNode()           {}
func (s *For) Pos() token.Position { return s.For }
func (s *For) End() token.Position { return s.Body.End() }

func (s *For) String() string {
	var out strings.Builder
	out.WriteString("for (")
	if s.Init != nil {
		out.WriteString(s.Init.String())
	}
	out.WriteString("; ")
	if s.Cond != nil {
		out.WriteString(s.Cond.String())
	}
	out.WriteString("; ")
	if s.Post != nil {
		out.WriteString(s.Post.String())
	}
	out.WriteString(") ")
	out.WriteString(s.Body.String())
	return out.String()
}

// Decorator is a single @expression attached to a class or class member.
type Decorator struct {
	At token.Position // position of the "@" sign
	X  Expr
}

func (d *Decorator) Pos() token.Position { return d.At }
func (d *Decorator) End() token.Position { return d.X.End() }
func (d *Decorator) String() string      { return "@" + d.X.String() }

// MemberKind distinguishes the kinds of class members.
type MemberKind int

const (
	MemberField MemberKind = iota
	MemberMethod
)

func (k MemberKind) String() string {
	if k == MemberMethod {
		return "method"
	}
	return "field"
}

// ClassMember is one field or method inside a class body.
type ClassMember struct {
	Decorators []*Decorator
	Static     bool
	Kind       MemberKind

	// Key is the member name. It is a value expression only when Computed
	// is true; a plain *Ident key is a name and is not visited by Walk.
	Key      Expr
	Computed bool

	// Optional, Readonly, and Declare carry TypeScript-only modifiers. A
	// declare member is ambient: it types a property the runtime defines
	// elsewhere and has no emitted form.
	Optional bool
	Readonly bool
	Declare  bool

	// Type annotates a field. It occupies a type position and is not
	// visited by Walk.
	Type Expr

	// Value initializes a field. Nil for methods.
	Value Expr

	// Params, ReturnType, and Body describe a method. ReturnType occupies
	// a type position and is not visited by Walk.
	Params     []*Param
	ReturnType Expr
	Body       *Block
}

func (m *ClassMember) Pos() token.Position {
	if len(m.Decorators) > 0 {
		return m.Decorators[0].Pos()
	}
	return m.Key.Pos()
}

func (m *ClassMember) End() token.Position {
	if m.Kind == MemberMethod && m.Body != nil {
		return m.Body.End()
	}
	if m.Value != nil {
		return m.Value.End()
	}
	if m.Type != nil {
		return m.Type.End()
	}
	return m.Key.End()
}

func (m *ClassMember) String() string {
	var out strings.Builder
	for _, d := range m.Decorators {
		out.WriteString(d.String())
		out.WriteString(" ")
	}
	if m.Declare {
		out.WriteString("declare ")
	}
	if m.Static {
		out.WriteString("static ")
	}
	if m.Readonly {
		out.WriteString("readonly ")
	}
	if m.Computed {
		out.WriteString("[")
		out.WriteString(m.Key.String())
		out.WriteString("]")
	} else {
		out.WriteString(m.Key.String())
	}
	if m.Optional {
		out.WriteString("?")
	}
	if m.Kind == MemberMethod {
		out.WriteString("(")
		out.WriteString(paramList(m.Params))
		out.WriteString(")")
		if m.ReturnType != nil {
			out.WriteString(": ")
			out.WriteString(m.ReturnType.String())
		}
		if m.Body != nil {
			out.WriteString(" ")
			out.WriteString(m.Body.String())
		}
		return out.String()
	}
	if m.Type != nil {
		out.WriteString(": ")
		out.WriteString(m.Type.String())
	}
	if m.Value != nil {
		out.WriteString(" = ")
		out.WriteString(m.Value.String())
	}
	return out.String()
}

// ClassDecl is a class declaration statement.
type ClassDecl struct {
	Decorators []*Decorator
	Class      token.Position // position of the "class" keyword
	Name       *Ident

	// TypeParams lists declared type parameters. They occupy type
	// positions and are not visited by Walk.
	TypeParams []*Ident

	// SuperClass is the optional extends clause, a value expression.
	SuperClass Expr

	// Implements lists implemented interfaces. They occupy type positions
	// and are not visited by Walk.
	Implements []Expr

	Body   []*ClassMember
	Rbrace token.Position
}

func (s *ClassDecl) stmtNode() {}

func (s *ClassDecl) Pos() token.Position {
	if len(s.Decorators) > 0 {
		return s.Decorators[0].Pos()
	}
	return s.Class
}

func (s *ClassDecl) End() token.Position { return s.Rbrace.Advance(1) }

func (s *ClassDecl) String() string {
	var out strings.Builder
	for _, d := range s.Decorators {
		out.WriteString(d.String())
		out.WriteString(" ")
	}
	out.WriteString("class")
	if s.Name != nil {
		out.WriteString(" ")
		out.WriteString(s.Name.String())
	}
	if s.SuperClass != nil {
		out.WriteString(" extends ")
		out.WriteString(s.SuperClass.String())
	}
	if len(s.Body) == 0 {
		out.WriteString(" {}")
		return out.String()
	}
	out.WriteString(" { ")
	for i, m := range s.Body {
		if i > 0 {
			out.WriteString("; ")
		}
		out.WriteString(m.String())
	}
	out.WriteString(" }")
	return out.String()
}

// InterfaceDecl is a TypeScript interface declaration. The transform stage
// erases interfaces whole, so the body is not modeled beyond its extent.
type InterfaceDecl struct {
	Interface token.Position // position of the "interface" keyword
	Name      *Ident
	Rbrace    token.Position
}

func (s *InterfaceDecl) stmtNode()           {}
func (s *InterfaceDecl) Pos() token.Position { return s.Interface }
func (s *InterfaceDecl) End() token.Position { return s.Rbrace.Advance(1) }
func (s *InterfaceDecl) String() string      { return "interface " + s.Name.String() + " {}" }

// TypeAliasDecl is a TypeScript type alias declaration:
//
//	type Pair = [number, number]
type TypeAliasDecl struct {
	TypePos token.Position // position of the "type" keyword
	Name    *Ident

	// TypeParams and Value occupy type positions and are not visited by
	// Walk.
	TypeParams []*Ident
	Value      Expr
}

func (s *TypeAliasDecl) stmtNode()           {}
func (s *TypeAliasDecl) Pos() token.Position { return s.TypePos }
func (s *TypeAliasDecl) End() token.Position { return s.Value.End() }

func (s *TypeAliasDecl) String() string {
	return "type " + s.Name.String() + " = " + s.Value.String()
}

// ImportSpecifier is one named binding in an import declaration.
type ImportSpecifier struct {
	// Imported is the exported name being imported. It equals Local.Name
	// unless the binding was renamed with "as".
	Imported string

	// Local is the binding introduced in this file.
	Local *Ident

	// TypeOnly marks an inline "import { type T }" specifier.
	TypeOnly bool
}

func (s *ImportSpecifier) String() string {
	name := s.Imported
	if s.TypeOnly {
		name = "type " + name
	}
	if s.Imported != s.Local.Name {
		return name + " as " + s.Local.Name
	}
	return name
}

// ImportDecl is an import declaration.
type ImportDecl struct {
	Import token.Position // position of the "import" keyword

	// TypeOnly marks "import type { ... }" declarations.
	TypeOnly bool

	// Default is the optional default binding.
	Default *Ident

	// Specifiers lists the named bindings, possibly empty.
	Specifiers []*ImportSpecifier

	// Source is the module path string.
	Source *StringLit
}

func (s *ImportDecl) stmtNode()           {}
func (s *ImportDecl) Pos() token.Position { return s.Import }
func (s *ImportDecl) End() token.Position { return s.Source.End() }

func (s *ImportDecl) String() string {
	var out strings.Builder
	out.WriteString("import ")
	if s.TypeOnly {
		out.WriteString("type ")
	}
	wroteBinding := false
	if s.Default != nil {
		out.WriteString(s.Default.String())
		wroteBinding = true
	}
	if len(s.Specifiers) > 0 {
		if wroteBinding {
			out.WriteString(", ")
		}
		out.WriteString("{ ")
		for i, spec := range s.Specifiers {
			if i > 0 {
				out.WriteString(", ")
			}
			out.WriteString(spec.String())
		}
		out.WriteString(" }")
		wroteBinding = true
	}
	if wroteBinding {
		out.WriteString(" from ")
	}
	out.WriteString(s.Source.String())
	return out.String()
}

// EmptyStmt is a lone semicolon. Passes that delete a statement replace it
// with an EmptyStmt so that statement lists keep their shape.
type EmptyStmt struct {
	Semicolon token.Position
}

func (s *EmptyStmt) stmtNode()           {}
func (s *EmptyStmt) Pos() token.Position { return s.Semicolon }
func (s *EmptyStmt) End() token.Position { return s.Semicolon.Advance(1) }
func (s *EmptyStmt) String() string      { return ";" }
