package sema

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deepnoodle-ai/marlin/ast"
	"github.com/deepnoodle-ai/marlin/token"
)

func at(line, column int) token.Position {
	return token.Position{Line: line, Column: column}
}

// importDecl builds `import [type] [def,] { specs... } from "mod"`.
func importDecl(arena *ast.Arena, typeOnly bool, def string, specs ...*ast.ImportSpecifier) *ast.ImportDecl {
	decl := arena.NewImportDecl()
	decl.TypeOnly = typeOnly
	if def != "" {
		decl.Default = arena.NewIdent(at(0, 7), def)
	}
	decl.Specifiers = specs
	decl.Source = arena.NewStringLit(at(0, 30), "mod")
	return decl
}

func spec(arena *ast.Arena, name string, typeOnly bool) *ast.ImportSpecifier {
	s := arena.NewImportSpecifier()
	s.Imported = name
	s.Local = arena.NewIdent(at(0, 10), name)
	s.TypeOnly = typeOnly
	return s
}

func letDecl(arena *ast.Arena, name string, value ast.Expr) *ast.VarDecl {
	decl := arena.NewVarDecl()
	decl.Kind = ast.VarKindLet
	decl.Name = arena.NewIdent(at(1, 4), name)
	decl.Value = value
	return decl
}

func TestBindCollectsDeclarations(t *testing.T) {
	arena := ast.NewArena()

	fn := arena.NewFuncDecl()
	fn.Name = arena.NewIdent(at(2, 9), "f")
	fn.Body = arena.NewBlock()

	class := arena.NewClassDecl()
	class.Name = arena.NewIdent(at(3, 6), "C")

	iface := arena.NewInterfaceDecl()
	iface.Name = arena.NewIdent(at(4, 10), "I")

	alias := arena.NewTypeAliasDecl()
	alias.Name = arena.NewIdent(at(5, 5), "A")
	alias.Value = arena.NewIdent(at(5, 9), "string")

	program := &ast.Program{Stmts: []ast.Stmt{
		importDecl(arena, false, "def", spec(arena, "T", true), spec(arena, "used", false)),
		letDecl(arena, "x", arena.NewNumberLit(at(1, 8), "1", 1)),
		fn,
		class,
		iface,
		alias,
	}}

	res, err := Bind(program)
	require.NoError(t, err)

	wantKinds := map[string]SymbolKind{
		"def":  KindImport,
		"T":    KindType,
		"used": KindImport,
		"x":    KindValue,
		"f":    KindFunction,
		"C":    KindClass,
		"I":    KindType,
		"A":    KindType,
	}
	root := res.Root()
	require.Len(t, root.Symbols(), len(wantKinds))
	for name, kind := range wantKinds {
		sym, ok := root.Get(name)
		require.True(t, ok, name)
		require.Equal(t, kind, sym.Kind(), name)
	}

	// Declaration order is preserved.
	require.Equal(t, "def", root.Symbols()[0].Name())
	require.Equal(t, "A", root.Symbols()[7].Name())
}

func TestBindTypeOnlyImportBindsAllAsTypes(t *testing.T) {
	arena := ast.NewArena()
	program := &ast.Program{Stmts: []ast.Stmt{
		importDecl(arena, true, "D", spec(arena, "X", false)),
	}}

	res, err := Bind(program)
	require.NoError(t, err)

	for _, name := range []string{"D", "X"} {
		sym, ok := res.Root().Get(name)
		require.True(t, ok, name)
		require.Equal(t, KindType, sym.Kind(), name)
	}
}

func TestBindCountsValueReferences(t *testing.T) {
	arena := ast.NewArena()

	// import { a, b } from "mod"
	// let x = a
	// a + x
	sum := arena.NewInfix()
	sum.X = arena.NewIdent(at(2, 0), "a")
	sum.Op = "+"
	sum.Y = arena.NewIdent(at(2, 4), "x")

	program := &ast.Program{Stmts: []ast.Stmt{
		importDecl(arena, false, "", spec(arena, "a", false), spec(arena, "b", false)),
		letDecl(arena, "x", arena.NewIdent(at(1, 8), "a")),
		arena.NewExprStmt(sum),
	}}

	res, err := Bind(program)
	require.NoError(t, err)

	a, _ := res.Root().Get("a")
	require.Equal(t, 2, a.ValueReferences())
	b, _ := res.Root().Get("b")
	require.Equal(t, 0, b.ValueReferences())
	x, _ := res.Root().Get("x")
	require.Equal(t, 1, x.ValueReferences())
}

func TestBindIgnoresNamePositions(t *testing.T) {
	arena := ast.NewArena()

	// let a = 1
	// let obj = { a: 2 }
	// obj.a
	objLit := arena.NewObjectLit(at(2, 10), arena.NewObjectProperty(
		arena.NewIdent(at(2, 12), "a"),
		arena.NewNumberLit(at(2, 15), "2", 2),
	))
	access := arena.NewMember(arena.NewIdent(at(3, 0), "obj"), arena.NewIdent(at(3, 4), "a"))

	program := &ast.Program{Stmts: []ast.Stmt{
		letDecl(arena, "a", arena.NewNumberLit(at(1, 8), "1", 1)),
		letDecl(arena, "obj", objLit),
		arena.NewExprStmt(access),
	}}

	res, err := Bind(program)
	require.NoError(t, err)

	// Neither the object key nor the member property is a reference.
	a, _ := res.Root().Get("a")
	require.Equal(t, 0, a.ValueReferences())
	obj, _ := res.Root().Get("obj")
	require.Equal(t, 1, obj.ValueReferences())
}

func TestBindCountsComponentTags(t *testing.T) {
	arena := ast.NewArena()

	widget := arena.NewJSXElement()
	widget.Tag = arena.NewIdent(at(2, 1), "Widget")
	widget.SelfClosing = true

	button := arena.NewJSXElement()
	button.Tag = arena.NewMember(arena.NewIdent(at(3, 1), "ui"), arena.NewIdent(at(3, 4), "Button"))
	button.SelfClosing = true

	div := arena.NewJSXElement()
	div.Tag = arena.NewIdent(at(4, 1), "div")
	div.SelfClosing = true

	program := &ast.Program{Stmts: []ast.Stmt{
		importDecl(arena, false, "Widget"),
		importDecl(arena, false, "ui"),
		arena.NewExprStmt(widget),
		arena.NewExprStmt(button),
		arena.NewExprStmt(div),
	}}

	res, err := Bind(program)
	require.NoError(t, err)

	w, _ := res.Root().Get("Widget")
	require.Equal(t, 1, w.ValueReferences())
	u, _ := res.Root().Get("ui")
	require.Equal(t, 1, u.ValueReferences())
}

func TestBindShadowedReferencesOvercount(t *testing.T) {
	arena := ast.NewArena()

	// import { a } from "mod"
	// function f() { let a = 1; a }
	body := arena.NewBlock()
	body.Stmts = []ast.Stmt{
		letDecl(arena, "a", arena.NewNumberLit(at(1, 23), "1", 1)),
		arena.NewExprStmt(arena.NewIdent(at(1, 26), "a")),
	}
	fn := arena.NewFuncDecl()
	fn.Name = arena.NewIdent(at(1, 9), "f")
	fn.Body = body

	program := &ast.Program{Stmts: []ast.Stmt{
		importDecl(arena, false, "", spec(arena, "a", false)),
		fn,
	}}

	res, err := Bind(program)
	require.NoError(t, err)

	// The inner reference counts toward the import even though a local
	// binding shadows it. Over-counting keeps the import; that is the
	// safe direction.
	a, _ := res.Root().Get("a")
	require.Equal(t, 1, a.ValueReferences())
}

func TestBindReportsRedeclarations(t *testing.T) {
	arena := ast.NewArena()
	program := &ast.Program{Stmts: []ast.Stmt{
		letDecl(arena, "x", nil),
		letDecl(arena, "x", nil),
		letDecl(arena, "y", nil),
	}}

	res, err := Bind(program)
	require.Error(t, err)
	require.Contains(t, err.Error(), `"x" already declared`)

	// Binding continues past the error.
	_, ok := res.Root().Get("x")
	require.True(t, ok)
	_, ok = res.Root().Get("y")
	require.True(t, ok)
}

func TestBindNilProgram(t *testing.T) {
	res, err := Bind(nil)
	require.Error(t, err)
	require.NotNil(t, res)
}
