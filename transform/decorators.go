package transform

import (
	"github.com/deepnoodle-ai/marlin/ast"
	"github.com/deepnoodle-ai/marlin/errors"
)

// decoratorsPass desugars legacy class decorators:
//
//	@sealed @frozen class Point {}
//
// becomes
//
//	let Point = sealed(frozen(class Point {}));
//
// Decorators apply innermost-first, so the last decorator in source order
// wraps the class itself. Member decorators and the standard proposal are
// reported but left in the tree.
type decoratorsPass struct {
	opts DecoratorsOptions

	// checked guards against reporting a class's member decorators twice:
	// wrapping a declaration puts the same *ClassDecl back under the
	// traversal as a class expression.
	checked map[*ast.ClassDecl]bool
}

func newDecoratorsPass(opts DecoratorsOptions) *decoratorsPass {
	return &decoratorsPass{
		opts:    opts,
		checked: map[*ast.ClassDecl]bool{},
	}
}

func (p *decoratorsPass) Name() string { return "decorators" }

func (p *decoratorsPass) TransformStatement(ctx *Context, slot *ast.Stmt) {
	class, ok := (*slot).(*ast.ClassDecl)
	if !ok {
		return
	}
	p.checkMembers(ctx, class)
	if len(class.Decorators) == 0 {
		return
	}
	if !p.opts.Legacy {
		ctx.Errorf(p.Name(), errors.E4002, class.Decorators[0],
			"class %q uses decorators, but only the legacy proposal is supported", className(class))
		return
	}
	arena := ctx.Arena()
	decl := arena.NewVarDecl()
	decl.VarPos = class.Pos()
	decl.Kind = ast.VarKindLet
	decl.Name = class.Name
	decl.Value = p.wrap(ctx, arena.NewClassExpr(class))
	*slot = decl
}

func (p *decoratorsPass) TransformExpression(ctx *Context, slot *ast.Expr) {
	class, ok := (*slot).(*ast.ClassExpr)
	if !ok {
		return
	}
	p.checkMembers(ctx, class.Decl)
	if len(class.Decl.Decorators) == 0 {
		return
	}
	if !p.opts.Legacy {
		ctx.Errorf(p.Name(), errors.E4002, class.Decl.Decorators[0],
			"class %q uses decorators, but only the legacy proposal is supported", className(class.Decl))
		return
	}
	*slot = p.wrap(ctx, class)
}

// wrap detaches the class's decorators and applies them as calls around
// the class expression, innermost last.
func (p *decoratorsPass) wrap(ctx *Context, class *ast.ClassExpr) ast.Expr {
	decorators := class.Decl.Decorators
	class.Decl.Decorators = nil

	var value ast.Expr = class
	for i := len(decorators) - 1; i >= 0; i-- {
		value = ctx.Arena().NewCall(decorators[i].X, value)
	}
	return value
}

// checkMembers reports every decorated member. Neither proposal supports
// lowering them here, so the decorators stay in place.
func (p *decoratorsPass) checkMembers(ctx *Context, class *ast.ClassDecl) {
	if p.checked[class] {
		return
	}
	p.checked[class] = true
	for _, member := range class.Body {
		for _, dec := range member.Decorators {
			ctx.Errorf(p.Name(), errors.E4003, dec,
				"decorators on class members are not supported")
		}
	}
}

func className(class *ast.ClassDecl) string {
	if class.Name != nil {
		return class.Name.Name
	}
	return "(anonymous)"
}
