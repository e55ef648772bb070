package transform

import (
	"github.com/deepnoodle-ai/marlin/ast"
)

// walker drives the single depth-first traversal of one program. At each
// statement or expression slot it fires every pass in order, then descends
// into whatever node the slot holds afterward, so the children of a
// replacement node are themselves transformed.
//
// The child sets here must stay in step with ast.Walk: value positions
// only, no type annotations, no binding names.
type walker struct {
	ctx    *Context
	passes []Pass
}

func (w *walker) program(p *ast.Program) {
	for i := range p.Stmts {
		w.statement(&p.Stmts[i])
	}
}

func (w *walker) statement(slot *ast.Stmt) {
	for _, pass := range w.passes {
		pass.TransformStatement(w.ctx, slot)
	}
	switch s := (*slot).(type) {
	case *ast.VarDecl:
		if s.Value != nil {
			w.expression(&s.Value)
		}
	case *ast.FuncDecl:
		w.params(s.Params)
		w.block(s.Body)
	case *ast.Return:
		if s.Value != nil {
			w.expression(&s.Value)
		}
	case *ast.ExprStmt:
		w.expression(&s.X)
	case *ast.Block:
		for i := range s.Stmts {
			w.statement(&s.Stmts[i])
		}
	case *ast.If:
		w.expression(&s.Cond)
		w.block(s.Consequence)
		if s.Alternative != nil {
			w.block(s.Alternative)
		}
	case *ast.For:
		if s.Init != nil {
			w.statement(&s.Init)
		}
		if s.Cond != nil {
			w.expression(&s.Cond)
		}
		if s.Post != nil {
			w.statement(&s.Post)
		}
		w.block(s.Body)
	case *ast.ClassDecl:
		w.class(s)
	}
	// InterfaceDecl, TypeAliasDecl, ImportDecl, EmptyStmt, and BadStmt
	// have no value children.
}

func (w *walker) expression(slot *ast.Expr) {
	for _, pass := range w.passes {
		pass.TransformExpression(w.ctx, slot)
	}
	switch e := (*slot).(type) {
	case *ast.Prefix:
		w.expression(&e.X)
	case *ast.Infix:
		w.expression(&e.X)
		w.expression(&e.Y)
	case *ast.Assign:
		w.expression(&e.Target)
		w.expression(&e.Value)
	case *ast.Ternary:
		w.expression(&e.Cond)
		w.expression(&e.Then)
		w.expression(&e.Else)
	case *ast.Call:
		w.expression(&e.Fun)
		for i := range e.Args {
			w.expression(&e.Args[i])
		}
	case *ast.Member:
		w.expression(&e.X)
	case *ast.Index:
		w.expression(&e.X)
		w.expression(&e.Index)
	case *ast.ArrayLit:
		for i := range e.Items {
			w.expression(&e.Items[i])
		}
	case *ast.ObjectLit:
		for _, prop := range e.Properties {
			if prop.Key != nil && prop.Computed {
				w.expression(&prop.Key)
			}
			w.expression(&prop.Value)
		}
	case *ast.FuncLit:
		w.params(e.Params)
		w.block(e.Body)
	case *ast.ArrowFunc:
		w.params(e.Params)
		if e.Body != nil {
			w.block(e.Body)
		}
		if e.Value != nil {
			w.expression(&e.Value)
		}
	case *ast.ClassExpr:
		w.class(e.Decl)
	case *ast.TSAs:
		w.expression(&e.X)
	case *ast.TSNonNull:
		w.expression(&e.X)
	case *ast.JSXElement:
		for _, attr := range e.Attrs {
			if attr.Spread != nil {
				w.expression(&attr.Spread)
			}
			if attr.Value != nil {
				w.expression(&attr.Value)
			}
		}
		for i := range e.Children {
			w.expression(&e.Children[i])
		}
	case *ast.JSXFragment:
		for i := range e.Children {
			w.expression(&e.Children[i])
		}
	case *ast.JSXExprContainer:
		if e.X != nil {
			w.expression(&e.X)
		}
	}
	// Ident, literals, JSXText, and BadExpr have no value children.
}

func (w *walker) block(b *ast.Block) {
	if b == nil {
		return
	}
	for i := range b.Stmts {
		w.statement(&b.Stmts[i])
	}
}

func (w *walker) params(params []*ast.Param) {
	for _, param := range params {
		if param.Default != nil {
			w.expression(&param.Default)
		}
	}
}

func (w *walker) class(class *ast.ClassDecl) {
	for _, d := range class.Decorators {
		w.expression(&d.X)
	}
	if class.SuperClass != nil {
		w.expression(&class.SuperClass)
	}
	for _, m := range class.Body {
		for _, d := range m.Decorators {
			w.expression(&d.X)
		}
		if m.Computed && m.Key != nil {
			w.expression(&m.Key)
		}
		if m.Value != nil {
			w.expression(&m.Value)
		}
		w.params(m.Params)
		w.block(m.Body)
	}
}
