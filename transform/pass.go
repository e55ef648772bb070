package transform

import (
	"github.com/deepnoodle-ai/marlin/ast"
)

// Pass is one lowering applied during the traversal. The transformer walks
// the tree once; at every statement and expression slot it invokes each
// enabled pass in pipeline order before descending into the node the slot
// holds after the hooks ran.
//
// Hooks receive a pointer to the slot so a pass can replace the node
// wholesale by assigning through it. A pass that rewrites a slot must
// allocate replacements from ctx.Arena() and must leave the slot holding a
// valid node; returning diagnostics happens through ctx.Errorf, never by
// aborting the walk.
type Pass interface {
	// Name identifies the pass in diagnostics and logs.
	Name() string

	// TransformStatement is invoked once for every statement slot.
	TransformStatement(ctx *Context, stmt *ast.Stmt)

	// TransformExpression is invoked once for every expression slot in
	// value position. Type annotations and binding names are not slots.
	TransformExpression(ctx *Context, expr *ast.Expr)
}
