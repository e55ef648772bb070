package transform

import (
	"strings"

	"github.com/deepnoodle-ai/marlin/ast"
	"github.com/deepnoodle-ai/marlin/errors"
	"github.com/deepnoodle-ai/marlin/sema"
)

// typescriptPass erases type syntax: annotations, assertions, interfaces,
// type aliases, and imports that only feed the type system. It never
// changes runtime behavior.
//
// Statements that are erased whole are replaced with empty statements so
// that statement lists keep their shape and later passes see a valid tree.
type typescriptPass struct {
	opts TypeScriptOptions
}

func newTypeScriptPass(opts TypeScriptOptions) *typescriptPass {
	return &typescriptPass{opts: opts}
}

func (p *typescriptPass) Name() string { return "typescript" }

func (p *typescriptPass) TransformStatement(ctx *Context, slot *ast.Stmt) {
	switch s := (*slot).(type) {
	case *ast.VarDecl:
		s.Type = nil
	case *ast.FuncDecl:
		s.ReturnType = nil
		eraseParams(s.Params)
	case *ast.ClassDecl:
		p.eraseClass(ctx, s)
	case *ast.InterfaceDecl:
		p.checkDialect(ctx, s, "interface declarations")
		*slot = ctx.Arena().NewEmptyStmt(s.Pos())
	case *ast.TypeAliasDecl:
		p.checkDialect(ctx, s, "type alias declarations")
		*slot = ctx.Arena().NewEmptyStmt(s.Pos())
	case *ast.ImportDecl:
		p.transformImport(ctx, slot, s)
	}
}

func (p *typescriptPass) TransformExpression(ctx *Context, slot *ast.Expr) {
	// Assertions nest ((x as T)! as U), so unwrap until a value expression
	// surfaces. The traversal descends into whatever the slot holds when
	// the hooks are done, which would leave inner assertions behind if
	// only one layer were removed here.
	for {
		switch e := (*slot).(type) {
		case *ast.TSAs:
			p.checkDialect(ctx, e, "type assertions")
			*slot = e.X
			continue
		case *ast.TSNonNull:
			p.checkDialect(ctx, e, "non-null assertions")
			*slot = e.X
			continue
		case *ast.FuncLit:
			e.ReturnType = nil
			eraseParams(e.Params)
		case *ast.ArrowFunc:
			e.ReturnType = nil
			eraseParams(e.Params)
		case *ast.ClassExpr:
			p.eraseClass(ctx, e.Decl)
		}
		return
	}
}

func (p *typescriptPass) eraseClass(ctx *Context, class *ast.ClassDecl) {
	class.TypeParams = nil
	class.Implements = nil
	kept := class.Body[:0]
	for _, m := range class.Body {
		if m.Declare {
			// Ambient members type properties the runtime defines
			// elsewhere. They have no emitted form, decorators included.
			p.checkDialect(ctx, m, "declare class members")
			continue
		}
		m.Type = nil
		m.ReturnType = nil
		m.Optional = false
		m.Readonly = false
		eraseParams(m.Params)
		kept = append(kept, m)
	}
	class.Body = kept
}

func eraseParams(params []*ast.Param) {
	for _, param := range params {
		param.Type = nil
		param.Optional = false
	}
}

// transformImport erases type-only imports and, unless configured
// otherwise, bindings that are never referenced as values. An import whose
// bindings are all erased disappears entirely; a bare side-effect import
// is always kept.
func (p *typescriptPass) transformImport(ctx *Context, slot *ast.Stmt, decl *ast.ImportDecl) {
	if !ctx.SourceType().IsModule() {
		// Script files have no import syntax. Leave the statement alone
		// instead of rewriting something the parser should have rejected.
		return
	}
	if decl.TypeOnly {
		p.checkDialect(ctx, decl, "type-only imports")
		*slot = ctx.Arena().NewEmptyStmt(decl.Pos())
		return
	}

	hadBindings := decl.Default != nil || len(decl.Specifiers) > 0
	if !hadBindings {
		return
	}

	if decl.Default != nil && p.elidable(ctx, decl.Default) {
		decl.Default = nil
	}
	kept := decl.Specifiers[:0]
	for _, spec := range decl.Specifiers {
		if spec.TypeOnly {
			p.checkDialect(ctx, spec.Local, "type-only import specifiers")
			continue
		}
		if p.elidable(ctx, spec.Local) {
			continue
		}
		kept = append(kept, spec)
	}
	decl.Specifiers = kept

	if decl.Default == nil && len(decl.Specifiers) == 0 {
		*slot = ctx.Arena().NewEmptyStmt(decl.Pos())
	}
}

// elidable reports whether an import binding can be dropped: import
// elision is on and the binder saw no value references to the name.
func (p *typescriptPass) elidable(ctx *Context, local *ast.Ident) bool {
	if p.opts.OnlyRemoveTypeImports {
		return false
	}
	if isPragmaRoot(ctx.Options().React, local.Name) {
		// The react pass synthesizes references to the pragma roots when
		// it lowers JSX, and the binder never sees those. Dropping the
		// import here would leave the lowered calls pointing at a name the
		// output no longer declares.
		return false
	}
	sym, ok := ctx.Semantic().Root().Get(local.Name)
	if !ok {
		// Not bound at the program scope; keep the import rather than
		// guess.
		return false
	}
	if sym.Kind() == sema.KindType {
		return true
	}
	return sym.ValueReferences() == 0
}

// isPragmaRoot reports whether name is the root binding of an enabled JSX
// pass's element or fragment pragma. The defaults here must match the ones
// newReactPass applies.
func isPragmaRoot(opts ReactOptions, name string) bool {
	if !opts.Enabled {
		return false
	}
	return name == pragmaRoot(opts.Pragma, "React.createElement") ||
		name == pragmaRoot(opts.PragmaFrag, "React.Fragment")
}

func pragmaRoot(path, fallback string) string {
	if path == "" {
		path = fallback
	}
	root, _, _ := strings.Cut(path, ".")
	return root
}

// checkDialect records a diagnostic when TypeScript-only syntax shows up in
// a file whose source type does not enable it. The node is still lowered:
// the output is what the author meant, the diagnostic is about the input.
func (p *typescriptPass) checkDialect(ctx *Context, node ast.Node, what string) {
	if ctx.SourceType().IsTypeScript() {
		return
	}
	err := ctx.Errorf(p.Name(), errors.E4001, node,
		"%s require a TypeScript source type, file is %q", what, ctx.SourceType())
	err.Note = "the source type is derived from the file extension"
}
