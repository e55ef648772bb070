package ast

import (
	"github.com/deepnoodle-ai/marlin/token"
)

const arenaChunkSize = 128

// slab is a chunked bump allocator for one node type. Chunks are never
// grown in place, so pointers returned by alloc stay valid until reset.
type slab[T any] struct {
	chunks [][]T
}

func (s *slab[T]) alloc() *T {
	n := len(s.chunks)
	if n == 0 || len(s.chunks[n-1]) == cap(s.chunks[n-1]) {
		s.chunks = append(s.chunks, make([]T, 0, arenaChunkSize))
		n++
	}
	chunk := &s.chunks[n-1]
	var zero T
	*chunk = append(*chunk, zero)
	return &(*chunk)[len(*chunk)-1]
}

func (s *slab[T]) reset() { s.chunks = nil }

// Arena bulk-allocates syntax tree nodes. The parser allocates the original
// tree from an arena and the transform stage allocates replacement nodes
// from the same arena, so a file's whole tree shares one lifetime.
//
// An Arena must not be used from multiple goroutines concurrently.
type Arena struct {
	count int

	idents      slab[Ident]
	numbers     slab[NumberLit]
	strs        slab[StringLit]
	bools       slab[BoolLit]
	nulls       slab[NullLit]
	prefixes    slab[Prefix]
	infixes     slab[Infix]
	assigns     slab[Assign]
	ternaries   slab[Ternary]
	calls       slab[Call]
	members     slab[Member]
	indexes     slab[Index]
	arrays      slab[ArrayLit]
	objects     slab[ObjectLit]
	objectProps slab[ObjectProperty]
	funcLits    slab[FuncLit]
	arrows      slab[ArrowFunc]
	classExprs  slab[ClassExpr]
	tsAs        slab[TSAs]
	tsNonNulls  slab[TSNonNull]
	jsxElems    slab[JSXElement]
	jsxAttrs    slab[JSXAttr]
	jsxFrags    slab[JSXFragment]
	jsxExprs    slab[JSXExprContainer]
	jsxTexts    slab[JSXText]
	badExprs    slab[BadExpr]

	varDecls     slab[VarDecl]
	params       slab[Param]
	funcDecls    slab[FuncDecl]
	returns      slab[Return]
	exprStmts    slab[ExprStmt]
	blocks       slab[Block]
	ifs          slab[If]
	fors         slab[For]
	decorators   slab[Decorator]
	classMembers slab[ClassMember]
	classDecls   slab[ClassDecl]
	interfaces   slab[InterfaceDecl]
	typeAliases  slab[TypeAliasDecl]
	importSpecs  slab[ImportSpecifier]
	imports      slab[ImportDecl]
	empties      slab[EmptyStmt]
	badStmts     slab[BadStmt]
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// NodeCount returns the number of nodes allocated since the last reset.
func (a *Arena) NodeCount() int { return a.count }

// Reset releases all allocated nodes. Pointers obtained before the reset
// must not be used afterward.
func (a *Arena) Reset() {
	*a = Arena{}
}

func alloc[T any](a *Arena, s *slab[T]) *T {
	a.count++
	return s.alloc()
}

// Expressions

func (a *Arena) NewIdent(pos token.Position, name string) *Ident {
	e := alloc(a, &a.idents)
	e.NamePos = pos
	e.Name = name
	return e
}

func (a *Arena) NewNumberLit(pos token.Position, literal string, value float64) *NumberLit {
	e := alloc(a, &a.numbers)
	e.ValuePos = pos
	e.Literal = literal
	e.Value = value
	return e
}

func (a *Arena) NewStringLit(pos token.Position, value string) *StringLit {
	e := alloc(a, &a.strs)
	e.ValuePos = pos
	e.Value = value
	return e
}

func (a *Arena) NewBoolLit(pos token.Position, value bool) *BoolLit {
	e := alloc(a, &a.bools)
	e.ValuePos = pos
	e.Value = value
	return e
}

func (a *Arena) NewNullLit(pos token.Position) *NullLit {
	e := alloc(a, &a.nulls)
	e.ValuePos = pos
	return e
}

func (a *Arena) NewPrefix() *Prefix { return alloc(a, &a.prefixes) }
func (a *Arena) NewInfix() *Infix   { return alloc(a, &a.infixes) }
func (a *Arena) NewAssign() *Assign { return alloc(a, &a.assigns) }

func (a *Arena) NewTernary() *Ternary { return alloc(a, &a.ternaries) }

// NewCall allocates a call to fun with the given arguments. The paren
// positions are derived from the callee and arguments so that synthesized
// calls report a sensible extent.
func (a *Arena) NewCall(fun Expr, args ...Expr) *Call {
	e := alloc(a, &a.calls)
	e.Fun = fun
	e.Lparen = fun.End()
	e.Args = args
	if n := len(args); n > 0 {
		e.Rparen = args[n-1].End()
	} else {
		e.Rparen = e.Lparen.Advance(1)
	}
	return e
}

// NewMember allocates a property access on x.
func (a *Arena) NewMember(x Expr, property *Ident) *Member {
	e := alloc(a, &a.members)
	e.X = x
	e.Property = property
	return e
}

func (a *Arena) NewIndex() *Index { return alloc(a, &a.indexes) }

func (a *Arena) NewArrayLit(lbrack token.Position, items ...Expr) *ArrayLit {
	e := alloc(a, &a.arrays)
	e.Lbrack = lbrack
	e.Items = items
	e.Rbrack = lbrack
	if n := len(items); n > 0 {
		e.Rbrack = items[n-1].End()
	}
	return e
}

func (a *Arena) NewObjectLit(lbrace token.Position, props ...*ObjectProperty) *ObjectLit {
	e := alloc(a, &a.objects)
	e.Lbrace = lbrace
	e.Properties = props
	e.Rbrace = lbrace
	if n := len(props); n > 0 {
		e.Rbrace = props[n-1].End()
	}
	return e
}

// NewObjectProperty allocates a key/value entry. A nil key produces a
// spread entry.
func (a *Arena) NewObjectProperty(key Expr, value Expr) *ObjectProperty {
	p := alloc(a, &a.objectProps)
	p.Key = key
	p.Value = value
	return p
}

func (a *Arena) NewFuncLit() *FuncLit     { return alloc(a, &a.funcLits) }
func (a *Arena) NewArrowFunc() *ArrowFunc { return alloc(a, &a.arrows) }

func (a *Arena) NewClassExpr(decl *ClassDecl) *ClassExpr {
	e := alloc(a, &a.classExprs)
	e.Decl = decl
	return e
}

func (a *Arena) NewTSAs() *TSAs           { return alloc(a, &a.tsAs) }
func (a *Arena) NewTSNonNull() *TSNonNull { return alloc(a, &a.tsNonNulls) }

func (a *Arena) NewJSXElement() *JSXElement { return alloc(a, &a.jsxElems) }
func (a *Arena) NewJSXAttr() *JSXAttr       { return alloc(a, &a.jsxAttrs) }

func (a *Arena) NewJSXFragment() *JSXFragment { return alloc(a, &a.jsxFrags) }

func (a *Arena) NewJSXExprContainer() *JSXExprContainer { return alloc(a, &a.jsxExprs) }

func (a *Arena) NewJSXText(pos token.Position, value string) *JSXText {
	e := alloc(a, &a.jsxTexts)
	e.ValuePos = pos
	e.Value = value
	return e
}

func (a *Arena) NewBadExpr(from, to token.Position) *BadExpr {
	e := alloc(a, &a.badExprs)
	e.From = from
	e.To = to
	return e
}

// Statements

func (a *Arena) NewVarDecl() *VarDecl { return alloc(a, &a.varDecls) }
func (a *Arena) NewParam() *Param     { return alloc(a, &a.params) }

func (a *Arena) NewFuncDecl() *FuncDecl { return alloc(a, &a.funcDecls) }

func (a *Arena) NewReturn() *Return { return alloc(a, &a.returns) }

func (a *Arena) NewExprStmt(x Expr) *ExprStmt {
	s := alloc(a, &a.exprStmts)
	s.X = x
	return s
}

func (a *Arena) NewBlock() *Block { return alloc(a, &a.blocks) }
func (a *Arena) NewIf() *If       { return alloc(a, &a.ifs) }
func (a *Arena) NewFor() *For     { return alloc(a, &a.fors) }

func (a *Arena) NewDecorator() *Decorator { return alloc(a, &a.decorators) }

func (a *Arena) NewClassMember() *ClassMember { return alloc(a, &a.classMembers) }
func (a *Arena) NewClassDecl() *ClassDecl     { return alloc(a, &a.classDecls) }

func (a *Arena) NewInterfaceDecl() *InterfaceDecl { return alloc(a, &a.interfaces) }
func (a *Arena) NewTypeAliasDecl() *TypeAliasDecl { return alloc(a, &a.typeAliases) }

func (a *Arena) NewImportSpecifier() *ImportSpecifier { return alloc(a, &a.importSpecs) }
func (a *Arena) NewImportDecl() *ImportDecl           { return alloc(a, &a.imports) }

func (a *Arena) NewEmptyStmt(pos token.Position) *EmptyStmt {
	s := alloc(a, &a.empties)
	s.Semicolon = pos
	return s
}

func (a *Arena) NewBadStmt(from, to token.Position) *BadStmt {
	s := alloc(a, &a.badStmts)
	s.From = from
	s.To = to
	return s
}
