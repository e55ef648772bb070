package transform

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/deepnoodle-ai/marlin/ast"
	"github.com/deepnoodle-ai/marlin/errors"
	"github.com/deepnoodle-ai/marlin/sema"
	"github.com/deepnoodle-ai/marlin/token"
)

// runTS transforms the program with only the type-erasure pass enabled.
func runTS(t *testing.T, program *ast.Program, arena *ast.Arena, st ast.SourceType, semantic *sema.Result) error {
	t.Helper()
	opts := optionsWith(true, false, false)
	return Transform(program, &Config{
		Arena:      arena,
		SourceType: st,
		Semantic:   semantic,
		Options:    opts,
		Filename:   "test." + st.String(),
	})
}

func TestEraseVariableAnnotation(t *testing.T) {
	arena := ast.NewArena()
	decl := arena.NewVarDecl()
	decl.VarPos = at(0, 0)
	decl.Kind = ast.VarKindLet
	decl.Name = arena.NewIdent(at(0, 4), "n")
	decl.Type = arena.NewIdent(at(0, 7), "number")
	decl.Value = arena.NewNumberLit(at(0, 16), "1", 1)
	program := &ast.Program{Stmts: []ast.Stmt{decl}}

	err := runTS(t, program, arena, ast.TS(), sema.NewResult())
	require.Nil(t, err)
	require.Nil(t, decl.Type)
	require.NotNil(t, decl.Value)
	require.Equal(t, "let n = 1", decl.String())
}

func TestEraseFunctionSignature(t *testing.T) {
	build := func(arena *ast.Arena, typed bool) *ast.Program {
		fn := arena.NewFuncDecl()
		fn.Function = at(0, 0)
		fn.Name = arena.NewIdent(at(0, 9), "f")
		param := arena.NewParam()
		param.Name = arena.NewIdent(at(0, 11), "x")
		if typed {
			param.Type = arena.NewIdent(at(0, 14), "number")
			fn.ReturnType = arena.NewIdent(at(0, 23), "void")
		}
		fn.Params = []*ast.Param{param}
		body := arena.NewBlock()
		body.Lbrace = at(0, 29)
		body.Rbrace = at(0, 30)
		fn.Body = body
		return &ast.Program{Stmts: []ast.Stmt{fn}}
	}

	arena := ast.NewArena()
	program := build(arena, true)
	err := runTS(t, program, arena, ast.TS(), sema.NewResult())
	require.Nil(t, err)

	want := build(ast.NewArena(), false)
	require.Empty(t, cmp.Diff(want, program))
}

func TestUnwrapAssertionChains(t *testing.T) {
	tests := []struct {
		name  string
		wrap  func(arena *ast.Arena, x ast.Expr) ast.Expr
		depth int
	}{
		{
			name: "single as",
			wrap: func(arena *ast.Arena, x ast.Expr) ast.Expr {
				as := arena.NewTSAs()
				as.X = x
				as.Type = arena.NewIdent(at(0, 5), "T")
				return as
			},
		},
		{
			name: "non-null of as",
			wrap: func(arena *ast.Arena, x ast.Expr) ast.Expr {
				as := arena.NewTSAs()
				as.X = x
				as.Type = arena.NewIdent(at(0, 5), "A")
				nn := arena.NewTSNonNull()
				nn.X = as
				nn.Bang = at(0, 8)
				return nn
			},
		},
		{
			name: "as of as of non-null",
			wrap: func(arena *ast.Arena, x ast.Expr) ast.Expr {
				nn := arena.NewTSNonNull()
				nn.X = x
				nn.Bang = at(0, 2)
				inner := arena.NewTSAs()
				inner.X = nn
				inner.Type = arena.NewIdent(at(0, 6), "A")
				outer := arena.NewTSAs()
				outer.X = inner
				outer.Type = arena.NewIdent(at(0, 11), "B")
				return outer
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arena := ast.NewArena()
			decl := arena.NewVarDecl()
			decl.VarPos = at(0, 0)
			decl.Kind = ast.VarKindConst
			decl.Name = arena.NewIdent(at(0, 6), "y")
			decl.Value = tt.wrap(arena, arena.NewIdent(at(0, 1), "x"))
			program := &ast.Program{Stmts: []ast.Stmt{decl}}

			err := runTS(t, program, arena, ast.TS(), sema.NewResult())
			require.Nil(t, err)
			id, ok := decl.Value.(*ast.Ident)
			require.True(t, ok, "got %T", decl.Value)
			require.Equal(t, "x", id.Name)
		})
	}
}

func TestUnwrapAssertionInCallArgument(t *testing.T) {
	arena := ast.NewArena()
	as := arena.NewTSAs()
	as.X = arena.NewIdent(at(0, 2), "x")
	as.Type = arena.NewIdent(at(0, 7), "any")
	call := arena.NewCall(arena.NewIdent(at(0, 0), "f"), as)
	program := &ast.Program{Stmts: []ast.Stmt{arena.NewExprStmt(call)}}

	err := runTS(t, program, arena, ast.TS(), sema.NewResult())
	require.Nil(t, err)
	arg, ok := call.Args[0].(*ast.Ident)
	require.True(t, ok, "got %T", call.Args[0])
	require.Equal(t, "x", arg.Name)
}

func TestEraseFunctionLiteralTypes(t *testing.T) {
	arena := ast.NewArena()

	fnParam := arena.NewParam()
	fnParam.Name = arena.NewIdent(at(0, 19), "a")
	fnParam.Type = arena.NewIdent(at(0, 22), "string")
	fnParam.Optional = true
	lit := arena.NewFuncLit()
	lit.Function = at(0, 10)
	lit.Params = []*ast.Param{fnParam}
	lit.ReturnType = arena.NewIdent(at(0, 31), "string")
	lit.Body = arena.NewBlock()

	arrowParam := arena.NewParam()
	arrowParam.Name = arena.NewIdent(at(1, 11), "b")
	arrowParam.Type = arena.NewIdent(at(1, 14), "number")
	arrow := arena.NewArrowFunc()
	arrow.Lparen = at(1, 10)
	arrow.Params = []*ast.Param{arrowParam}
	arrow.ReturnType = arena.NewIdent(at(1, 23), "number")
	arrow.Arrow = at(1, 31)
	arrow.Value = arena.NewIdent(at(1, 34), "b")

	litDecl := arena.NewVarDecl()
	litDecl.VarPos = at(0, 0)
	litDecl.Kind = ast.VarKindConst
	litDecl.Name = arena.NewIdent(at(0, 6), "f")
	litDecl.Value = lit
	arrowDecl := arena.NewVarDecl()
	arrowDecl.VarPos = at(1, 0)
	arrowDecl.Kind = ast.VarKindConst
	arrowDecl.Name = arena.NewIdent(at(1, 6), "g")
	arrowDecl.Value = arrow

	program := &ast.Program{Stmts: []ast.Stmt{litDecl, arrowDecl}}
	err := runTS(t, program, arena, ast.TS(), sema.NewResult())
	require.Nil(t, err)

	require.Nil(t, lit.ReturnType)
	require.Nil(t, fnParam.Type)
	require.False(t, fnParam.Optional)
	require.Nil(t, arrow.ReturnType)
	require.Nil(t, arrowParam.Type)
}

func TestEraseClassTypes(t *testing.T) {
	arena := ast.NewArena()

	field := arena.NewClassMember()
	field.Kind = ast.MemberField
	field.Key = arena.NewIdent(at(1, 2), "x")
	field.Optional = true
	field.Readonly = true
	field.Type = arena.NewIdent(at(1, 5), "number")
	field.Value = arena.NewNumberLit(at(1, 14), "0", 0)

	methodParam := arena.NewParam()
	methodParam.Name = arena.NewIdent(at(2, 7), "k")
	methodParam.Type = arena.NewIdent(at(2, 10), "string")
	method := arena.NewClassMember()
	method.Kind = ast.MemberMethod
	method.Key = arena.NewIdent(at(2, 2), "get")
	method.Params = []*ast.Param{methodParam}
	method.ReturnType = arena.NewIdent(at(2, 19), "number")
	method.Body = arena.NewBlock()

	class := arena.NewClassDecl()
	class.Class = at(0, 0)
	class.Name = arena.NewIdent(at(0, 6), "Box")
	class.TypeParams = []*ast.Ident{arena.NewIdent(at(0, 10), "T")}
	class.SuperClass = arena.NewIdent(at(0, 21), "Base")
	class.Implements = []ast.Expr{arena.NewIdent(at(0, 37), "Container")}
	class.Body = []*ast.ClassMember{field, method}
	class.Rbrace = at(3, 0)

	program := &ast.Program{Stmts: []ast.Stmt{class}}
	err := runTS(t, program, arena, ast.TS(), sema.NewResult())
	require.Nil(t, err)

	require.Nil(t, class.TypeParams)
	require.Nil(t, class.Implements)
	require.NotNil(t, class.SuperClass)
	require.Nil(t, field.Type)
	require.False(t, field.Optional)
	require.False(t, field.Readonly)
	require.NotNil(t, field.Value)
	require.Nil(t, method.ReturnType)
	require.Nil(t, methodParam.Type)
}

func TestDeclareMembersDropped(t *testing.T) {
	build := func(arena *ast.Arena) (*ast.ClassDecl, *ast.ClassMember) {
		dec := arena.NewDecorator()
		dec.At = at(1, 2)
		dec.X = arena.NewIdent(at(1, 3), "tracked")

		ambient := arena.NewClassMember()
		ambient.Kind = ast.MemberField
		ambient.Declare = true
		ambient.Decorators = []*ast.Decorator{dec}
		ambient.Key = arena.NewIdent(at(1, 18), "brand")
		ambient.Type = arena.NewIdent(at(1, 25), "string")

		method := arena.NewClassMember()
		method.Kind = ast.MemberMethod
		method.Key = arena.NewIdent(at(2, 2), "run")
		method.Body = arena.NewBlock()

		class := arena.NewClassDecl()
		class.Class = at(0, 0)
		class.Name = arena.NewIdent(at(0, 6), "Service")
		class.Body = []*ast.ClassMember{ambient, method}
		class.Rbrace = at(3, 0)
		return class, method
	}

	t.Run("typescript", func(t *testing.T) {
		arena := ast.NewArena()
		class, method := build(arena)
		program := &ast.Program{Stmts: []ast.Stmt{class}}

		// Decorators enabled: the ambient member vanishes before the
		// decorators pass sees the class, so its decorator is never
		// reported.
		err := Transform(program, &Config{
			Arena:      arena,
			SourceType: ast.TS(),
			Semantic:   sema.NewResult(),
			Options:    optionsWith(true, false, true),
			Filename:   "test.ts",
		})
		require.Nil(t, err)
		require.Len(t, class.Body, 1)
		require.Same(t, method, class.Body[0])
	})

	t.Run("javascript", func(t *testing.T) {
		arena := ast.NewArena()
		class, _ := build(arena)
		program := &ast.Program{Stmts: []ast.Stmt{class}}

		err := runTS(t, program, arena, ast.JS(), sema.NewResult())
		var single *errors.TransformError
		require.ErrorAs(t, err, &single)
		require.Equal(t, errors.E4001, single.Code)
		require.Contains(t, single.Message, "declare class members")
		require.Len(t, class.Body, 1)
	})
}

func TestInterfaceAndAliasLowerToEmpty(t *testing.T) {
	arena := ast.NewArena()

	iface := arena.NewInterfaceDecl()
	iface.Interface = at(0, 0)
	iface.Name = arena.NewIdent(at(0, 10), "Shape")
	iface.Rbrace = at(2, 0)

	keep := arena.NewVarDecl()
	keep.VarPos = at(3, 0)
	keep.Kind = ast.VarKindLet
	keep.Name = arena.NewIdent(at(3, 4), "kept")
	keep.Value = arena.NewBoolLit(at(3, 11), true)

	alias := arena.NewTypeAliasDecl()
	alias.TypePos = at(4, 0)
	alias.Name = arena.NewIdent(at(4, 5), "ID")
	alias.Value = arena.NewIdent(at(4, 10), "string")

	program := &ast.Program{Stmts: []ast.Stmt{iface, keep, alias}}
	err := runTS(t, program, arena, ast.TS(), sema.NewResult())
	require.Nil(t, err)

	// Statement list keeps its shape: erased statements become empty
	// statements at the same index.
	require.Len(t, program.Stmts, 3)
	empty, ok := program.Stmts[0].(*ast.EmptyStmt)
	require.True(t, ok)
	require.Equal(t, at(0, 0), empty.Semicolon)
	require.Same(t, ast.Stmt(keep), program.Stmts[1])
	_, ok = program.Stmts[2].(*ast.EmptyStmt)
	require.True(t, ok)
}

// importFixture builds: import def, { type T, unused, used } from "mod"
func importFixture(arena *ast.Arena) *ast.ImportDecl {
	decl := arena.NewImportDecl()
	decl.Import = at(0, 0)
	decl.Default = arena.NewIdent(at(0, 7), "def")

	typeSpec := arena.NewImportSpecifier()
	typeSpec.Imported = "T"
	typeSpec.Local = arena.NewIdent(at(0, 19), "T")
	typeSpec.TypeOnly = true

	unusedSpec := arena.NewImportSpecifier()
	unusedSpec.Imported = "unused"
	unusedSpec.Local = arena.NewIdent(at(0, 22), "unused")

	usedSpec := arena.NewImportSpecifier()
	usedSpec.Imported = "used"
	usedSpec.Local = arena.NewIdent(at(0, 30), "used")

	decl.Specifiers = []*ast.ImportSpecifier{typeSpec, unusedSpec, usedSpec}
	decl.Source = arena.NewStringLit(at(0, 42), "mod")
	return decl
}

// importSema binds the fixture's names: def and unused never referenced as
// values, T a type, used referenced once.
func importSema(t *testing.T) *sema.Result {
	t.Helper()
	res := sema.NewResult()
	root := res.Root()
	_, err := root.Insert("def", sema.KindImport, token.NoPos)
	require.Nil(t, err)
	_, err = root.Insert("T", sema.KindType, token.NoPos)
	require.Nil(t, err)
	_, err = root.Insert("unused", sema.KindImport, token.NoPos)
	require.Nil(t, err)
	used, err := root.Insert("used", sema.KindImport, token.NoPos)
	require.Nil(t, err)
	used.AddValueReference()
	return res
}

func TestImportElision(t *testing.T) {
	arena := ast.NewArena()
	decl := importFixture(arena)
	program := &ast.Program{Stmts: []ast.Stmt{decl}}

	err := runTS(t, program, arena, ast.TS(), importSema(t))
	require.Nil(t, err)

	require.Same(t, ast.Stmt(decl), program.Stmts[0])
	require.Nil(t, decl.Default)
	require.Len(t, decl.Specifiers, 1)
	require.Equal(t, "used", decl.Specifiers[0].Local.Name)
	require.Equal(t, `import { used } from "mod"`, decl.String())
}

func TestImportElisionOnlyRemoveTypeImports(t *testing.T) {
	arena := ast.NewArena()
	decl := importFixture(arena)
	program := &ast.Program{Stmts: []ast.Stmt{decl}}

	opts := optionsWith(true, false, false)
	opts.TypeScript.OnlyRemoveTypeImports = true
	err := Transform(program, &Config{
		Arena:      arena,
		SourceType: ast.TS(),
		Semantic:   importSema(t),
		Options:    opts,
		Filename:   "test.ts",
	})
	require.Nil(t, err)

	// Only the inline type specifier goes; unreferenced value bindings stay.
	require.NotNil(t, decl.Default)
	require.Len(t, decl.Specifiers, 2)
	require.Equal(t, "unused", decl.Specifiers[0].Local.Name)
	require.Equal(t, "used", decl.Specifiers[1].Local.Name)
}

func TestImportTypeAlwaysErased(t *testing.T) {
	for _, onlyRemoveTypes := range []bool{false, true} {
		arena := ast.NewArena()
		decl := arena.NewImportDecl()
		decl.Import = at(0, 0)
		decl.TypeOnly = true
		spec := arena.NewImportSpecifier()
		spec.Imported = "Props"
		spec.Local = arena.NewIdent(at(0, 14), "Props")
		decl.Specifiers = []*ast.ImportSpecifier{spec}
		decl.Source = arena.NewStringLit(at(0, 27), "./types")
		program := &ast.Program{Stmts: []ast.Stmt{decl}}

		opts := optionsWith(true, false, false)
		opts.TypeScript.OnlyRemoveTypeImports = onlyRemoveTypes
		err := Transform(program, &Config{
			Arena:      arena,
			SourceType: ast.TS(),
			Semantic:   sema.NewResult(),
			Options:    opts,
			Filename:   "test.ts",
		})
		require.Nil(t, err)
		_, ok := program.Stmts[0].(*ast.EmptyStmt)
		require.True(t, ok)
	}
}

func TestImportFullyElidedBecomesEmpty(t *testing.T) {
	arena := ast.NewArena()
	decl := arena.NewImportDecl()
	decl.Import = at(0, 0)
	spec := arena.NewImportSpecifier()
	spec.Imported = "Unused"
	spec.Local = arena.NewIdent(at(0, 9), "Unused")
	decl.Specifiers = []*ast.ImportSpecifier{spec}
	decl.Source = arena.NewStringLit(at(0, 23), "mod")
	program := &ast.Program{Stmts: []ast.Stmt{decl}}

	res := sema.NewResult()
	_, err := res.Root().Insert("Unused", sema.KindImport, token.NoPos)
	require.Nil(t, err)

	require.Nil(t, runTS(t, program, arena, ast.TS(), res))
	_, ok := program.Stmts[0].(*ast.EmptyStmt)
	require.True(t, ok)
}

func TestBareImportKept(t *testing.T) {
	arena := ast.NewArena()
	decl := arena.NewImportDecl()
	decl.Import = at(0, 0)
	decl.Source = arena.NewStringLit(at(0, 7), "./side-effect")
	program := &ast.Program{Stmts: []ast.Stmt{decl}}

	require.Nil(t, runTS(t, program, arena, ast.TS(), sema.NewResult()))
	require.Same(t, ast.Stmt(decl), program.Stmts[0])
}

func TestImportUntouchedInScriptFiles(t *testing.T) {
	arena := ast.NewArena()
	decl := importFixture(arena)
	program := &ast.Program{Stmts: []ast.Stmt{decl}}

	// Script sources have no import syntax; the statement is left exactly
	// as found rather than half-rewritten.
	err := runTS(t, program, arena, ast.TS().WithModule(false), importSema(t))
	require.Nil(t, err)
	require.Same(t, ast.Stmt(decl), program.Stmts[0])
	require.NotNil(t, decl.Default)
	require.Len(t, decl.Specifiers, 3)
}

func TestUnknownImportBindingKept(t *testing.T) {
	arena := ast.NewArena()
	decl := arena.NewImportDecl()
	decl.Import = at(0, 0)
	spec := arena.NewImportSpecifier()
	spec.Imported = "mystery"
	spec.Local = arena.NewIdent(at(0, 9), "mystery")
	decl.Specifiers = []*ast.ImportSpecifier{spec}
	decl.Source = arena.NewStringLit(at(0, 24), "mod")
	program := &ast.Program{Stmts: []ast.Stmt{decl}}

	// The binder never saw the name, so the import is kept rather than
	// guessed away.
	require.Nil(t, runTS(t, program, arena, ast.TS(), sema.NewResult()))
	require.Len(t, decl.Specifiers, 1)
}

// jsxFileFixture builds: import React from "react"; let view = <div/>
// The binder counts no value references for React because the intrinsic
// tag is not a component reference; only the lowered output uses it.
func jsxFileFixture(arena *ast.Arena) (*ast.Program, *ast.ImportDecl) {
	imp := arena.NewImportDecl()
	imp.Import = at(0, 0)
	imp.Default = arena.NewIdent(at(0, 7), "React")
	imp.Source = arena.NewStringLit(at(0, 18), "react")

	div := arena.NewJSXElement()
	div.Langle = at(1, 11)
	div.Tag = arena.NewIdent(at(1, 12), "div")
	div.SelfClosing = true
	div.Rangle = at(1, 16)
	view := arena.NewVarDecl()
	view.VarPos = at(1, 0)
	view.Kind = ast.VarKindLet
	view.Name = arena.NewIdent(at(1, 4), "view")
	view.Value = div

	return &ast.Program{Stmts: []ast.Stmt{imp, view}}, imp
}

func TestPragmaRootImportSurvivesElision(t *testing.T) {
	arena := ast.NewArena()
	program, imp := jsxFileFixture(arena)
	semantic, err := sema.Bind(program)
	require.NoError(t, err)

	err = Transform(program, &Config{
		Arena:      arena,
		SourceType: ast.TS().WithJSX(true),
		Semantic:   semantic,
		Filename:   "view.tsx",
	})
	require.Nil(t, err)

	// The import stays even though the binder saw zero value references:
	// the lowered output below is what references it.
	require.Same(t, ast.Stmt(imp), program.Stmts[0])
	require.NotNil(t, imp.Default)
	require.Equal(t, `let view = React.createElement("div", null)`, program.Stmts[1].String())
}

func TestPragmaRootImportElision(t *testing.T) {
	t.Run("custom pragma root kept", func(t *testing.T) {
		arena := ast.NewArena()
		imp := arena.NewImportDecl()
		imp.Import = at(0, 0)
		imp.Default = arena.NewIdent(at(0, 7), "h")
		imp.Source = arena.NewStringLit(at(0, 14), "preact")

		div := arena.NewJSXElement()
		div.Langle = at(1, 0)
		div.Tag = arena.NewIdent(at(1, 1), "div")
		div.SelfClosing = true
		div.Rangle = at(1, 5)
		program := &ast.Program{Stmts: []ast.Stmt{imp, arena.NewExprStmt(div)}}
		semantic, err := sema.Bind(program)
		require.NoError(t, err)

		opts := optionsWith(true, true, false)
		opts.React.Pragma = "h"
		opts.React.PragmaFrag = "Fragment"
		err = Transform(program, &Config{
			Arena:      arena,
			SourceType: ast.TS().WithJSX(true),
			Semantic:   semantic,
			Options:    opts,
			Filename:   "view.tsx",
		})
		require.Nil(t, err)
		require.Same(t, ast.Stmt(imp), program.Stmts[0])
		require.Equal(t, `h("div", null)`, program.Stmts[1].String())
	})

	t.Run("non-pragma imports still elided in the same file", func(t *testing.T) {
		arena := ast.NewArena()
		program, imp := jsxFileFixture(arena)
		unused := arena.NewImportDecl()
		unused.Import = at(2, 0)
		unused.Default = arena.NewIdent(at(2, 7), "helper")
		unused.Source = arena.NewStringLit(at(2, 19), "./helper")
		program.Stmts = append(program.Stmts, unused)
		semantic, err := sema.Bind(program)
		require.NoError(t, err)

		err = Transform(program, &Config{
			Arena:      arena,
			SourceType: ast.TS().WithJSX(true),
			Semantic:   semantic,
			Filename:   "view.tsx",
		})
		require.Nil(t, err)
		require.Same(t, ast.Stmt(imp), program.Stmts[0])
		_, ok := program.Stmts[2].(*ast.EmptyStmt)
		require.True(t, ok)
	})

	t.Run("react disabled leaves the root elidable", func(t *testing.T) {
		arena := ast.NewArena()
		imp := arena.NewImportDecl()
		imp.Import = at(0, 0)
		imp.Default = arena.NewIdent(at(0, 7), "React")
		imp.Source = arena.NewStringLit(at(0, 18), "react")
		program := &ast.Program{Stmts: []ast.Stmt{imp}}
		semantic, err := sema.Bind(program)
		require.NoError(t, err)

		require.Nil(t, runTS(t, program, arena, ast.TS(), semantic))
		_, ok := program.Stmts[0].(*ast.EmptyStmt)
		require.True(t, ok)
	})
}

func TestDialectMismatchReportsAndLowers(t *testing.T) {
	arena := ast.NewArena()

	iface := arena.NewInterfaceDecl()
	iface.Interface = at(0, 0)
	iface.Name = arena.NewIdent(at(0, 10), "I")
	iface.Rbrace = at(0, 14)

	as := arena.NewTSAs()
	as.X = arena.NewIdent(at(1, 8), "x")
	as.Type = arena.NewIdent(at(1, 13), "any")
	decl := arena.NewVarDecl()
	decl.VarPos = at(1, 0)
	decl.Kind = ast.VarKindLet
	decl.Name = arena.NewIdent(at(1, 4), "y")
	decl.Value = as

	program := &ast.Program{Stmts: []ast.Stmt{iface, decl}}
	err := runTS(t, program, arena, ast.JS(), sema.NewResult())
	require.NotNil(t, err)

	var aggregate *errors.TransformErrors
	require.ErrorAs(t, err, &aggregate)
	require.Equal(t, 2, aggregate.Count())
	for _, e := range aggregate.Errors {
		require.Equal(t, errors.E4001, e.Code)
		require.Equal(t, "typescript", e.Pass)
		require.Equal(t, "the source type is derived from the file extension", e.Note)
	}
	require.Contains(t, aggregate.Errors[0].Message, "interface declarations")
	require.Contains(t, aggregate.Errors[1].Message, "type assertions")

	// Both constructs still lowered.
	_, ok := program.Stmts[0].(*ast.EmptyStmt)
	require.True(t, ok)
	_, ok = decl.Value.(*ast.Ident)
	require.True(t, ok)
}

func TestTypeScriptPassDisabled(t *testing.T) {
	arena := ast.NewArena()
	as := arena.NewTSAs()
	as.X = arena.NewIdent(at(0, 0), "x")
	as.Type = arena.NewIdent(at(0, 5), "T")
	stmt := arena.NewExprStmt(as)
	program := &ast.Program{Stmts: []ast.Stmt{stmt}}

	err := Transform(program, &Config{
		Arena:      arena,
		SourceType: ast.TS(),
		Semantic:   sema.NewResult(),
		Options:    optionsWith(false, false, false),
		Filename:   "test.ts",
	})
	require.Nil(t, err)
	require.Same(t, ast.Expr(as), stmt.X)
}
