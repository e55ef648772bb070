package transform

import (
	"strconv"
	"strings"

	"github.com/deepnoodle-ai/marlin/ast"
	"github.com/deepnoodle-ai/marlin/errors"
	"github.com/deepnoodle-ai/marlin/token"
)

// reactPass lowers JSX to classic-runtime calls:
//
//	<Greeting name="World">Hi {who}</Greeting>
//
// becomes
//
//	React.createElement(Greeting, { name: "World" }, "Hi ", who)
//
// Nested elements are not lowered here; they stay in place as call
// arguments and the traversal lowers them when it descends.
type reactPass struct {
	opts        ReactOptions
	pragma      []string
	pragmaFrag  []string
	checkedRoot bool
}

func newReactPass(opts ReactOptions) *reactPass {
	if opts.Pragma == "" {
		opts.Pragma = "React.createElement"
	}
	if opts.PragmaFrag == "" {
		opts.PragmaFrag = "React.Fragment"
	}
	return &reactPass{
		opts:       opts,
		pragma:     strings.Split(opts.Pragma, "."),
		pragmaFrag: strings.Split(opts.PragmaFrag, "."),
	}
}

func (p *reactPass) Name() string { return "react" }

func (p *reactPass) TransformStatement(ctx *Context, slot *ast.Stmt) {}

func (p *reactPass) TransformExpression(ctx *Context, slot *ast.Expr) {
	switch e := (*slot).(type) {
	case *ast.JSXElement:
		p.checkJSX(ctx, e)
		*slot = p.lowerElement(ctx, e)
	case *ast.JSXFragment:
		p.checkJSX(ctx, e)
		*slot = p.lowerFragment(ctx, e)
	}
}

func (p *reactPass) lowerElement(ctx *Context, elem *ast.JSXElement) ast.Expr {
	arena := ctx.Arena()
	args := make([]ast.Expr, 0, 2+len(elem.Children))
	args = append(args, p.tagExpr(ctx, elem))
	args = append(args, p.propsExpr(ctx, elem))
	args = append(args, p.childArgs(ctx, elem.Children)...)
	return arena.NewCall(p.calleeExpr(ctx, elem), args...)
}

func (p *reactPass) lowerFragment(ctx *Context, frag *ast.JSXFragment) ast.Expr {
	arena := ctx.Arena()
	args := make([]ast.Expr, 0, 2+len(frag.Children))
	args = append(args, pragmaToExpr(arena, p.pragmaFrag, frag.Pos()))
	args = append(args, arena.NewNullLit(frag.Pos()))
	args = append(args, p.childArgs(ctx, frag.Children)...)
	return arena.NewCall(p.calleeExpr(ctx, frag), args...)
}

// tagExpr resolves the element tag: lowercase identifiers are intrinsic
// elements and lower to strings, everything else is used as a value
// reference.
func (p *reactPass) tagExpr(ctx *Context, elem *ast.JSXElement) ast.Expr {
	if id, ok := elem.Tag.(*ast.Ident); ok && isIntrinsicTag(id.Name) {
		return ctx.Arena().NewStringLit(id.NamePos, id.Name)
	}
	return elem.Tag
}

// propsExpr builds the second createElement argument: null when the
// element has no attributes, otherwise an object literal in source order
// with spread attributes kept as spread entries.
func (p *reactPass) propsExpr(ctx *Context, elem *ast.JSXElement) ast.Expr {
	arena := ctx.Arena()
	props := make([]*ast.ObjectProperty, 0, len(elem.Attrs)+1)
	for _, attr := range elem.Attrs {
		if attr.Spread != nil {
			props = append(props, arena.NewObjectProperty(nil, attr.Spread))
			continue
		}
		var key ast.Expr
		if validIdent(attr.Name) {
			key = arena.NewIdent(attr.NamePos, attr.Name)
		} else {
			key = arena.NewStringLit(attr.NamePos, attr.Name)
		}
		props = append(props, arena.NewObjectProperty(key, p.attrValue(ctx, attr)))
	}
	if p.opts.Development {
		props = append(props, p.sourceProp(ctx, elem.Pos()))
	}
	if len(props) == 0 {
		return arena.NewNullLit(elem.Pos())
	}
	return arena.NewObjectLit(elem.Pos(), props...)
}

// attrValue unwraps an attribute value: quoted strings stay, braced
// expressions contribute their contents, and bare attributes mean true.
func (p *reactPass) attrValue(ctx *Context, attr *ast.JSXAttr) ast.Expr {
	switch v := attr.Value.(type) {
	case nil:
		return ctx.Arena().NewBoolLit(attr.NamePos, true)
	case *ast.JSXExprContainer:
		if v.X == nil {
			return ctx.Arena().NewBoolLit(attr.NamePos, true)
		}
		return v.X
	default:
		return attr.Value
	}
}

// childArgs converts JSX children to call arguments. Text children are
// cleaned of insignificant whitespace and dropped when nothing remains;
// empty expression containers disappear; nested elements pass through
// untouched for the traversal to lower.
func (p *reactPass) childArgs(ctx *Context, children []ast.Expr) []ast.Expr {
	var args []ast.Expr
	for _, child := range children {
		switch c := child.(type) {
		case *ast.JSXText:
			if text := cleanJSXText(c.Value); text != "" {
				args = append(args, ctx.Arena().NewStringLit(c.ValuePos, text))
			}
		case *ast.JSXExprContainer:
			if c.X != nil {
				args = append(args, c.X)
			}
		default:
			args = append(args, child)
		}
	}
	return args
}

// calleeExpr builds the pragma callee and, once per file, checks that the
// pragma's root binding exists. The classic runtime requires the author to
// import it; a missing binding is reported but lowering proceeds.
func (p *reactPass) calleeExpr(ctx *Context, node ast.Node) ast.Expr {
	if !p.checkedRoot {
		p.checkedRoot = true
		root := p.pragma[0]
		if _, ok := ctx.Semantic().Resolve(root); !ok {
			err := ctx.Errorf(p.Name(), errors.E4005, node,
				"%q is not declared, but the classic JSX runtime requires it", root)
			err.Suggestions = errors.SuggestSimilar(root, ctx.Semantic().Root().AllNames())
			err.Note = "import it or change the pragma"
		}
	}
	return pragmaToExpr(ctx.Arena(), p.pragma, node.Pos())
}

// sourceProp builds the __source development prop describing where the
// element came from.
func (p *reactPass) sourceProp(ctx *Context, pos token.Position) *ast.ObjectProperty {
	arena := ctx.Arena()
	value := arena.NewObjectLit(pos,
		arena.NewObjectProperty(
			arena.NewIdent(pos, "fileName"),
			arena.NewStringLit(pos, ctx.Filename())),
		arena.NewObjectProperty(
			arena.NewIdent(pos, "lineNumber"),
			arena.NewNumberLit(pos, strconv.Itoa(pos.LineNumber()), float64(pos.LineNumber()))),
		arena.NewObjectProperty(
			arena.NewIdent(pos, "columnNumber"),
			arena.NewNumberLit(pos, strconv.Itoa(pos.ColumnNumber()), float64(pos.ColumnNumber()))),
	)
	return arena.NewObjectProperty(arena.NewIdent(pos, "__source"), value)
}

// checkJSX records a diagnostic when JSX shows up in a file whose source
// type does not enable it. The node is still lowered.
func (p *reactPass) checkJSX(ctx *Context, node ast.Node) {
	if ctx.SourceType().HasJSX() {
		return
	}
	err := ctx.Errorf(p.Name(), errors.E4001, node,
		"JSX syntax requires a JSX source type, file is %q", ctx.SourceType())
	err.Note = "the source type is derived from the file extension"
}

// pragmaToExpr turns a parsed pragma path into an expression, anchoring
// every segment at the element being lowered.
func pragmaToExpr(arena *ast.Arena, path []string, pos token.Position) ast.Expr {
	var expr ast.Expr = arena.NewIdent(pos, path[0])
	for _, seg := range path[1:] {
		expr = arena.NewMember(expr, arena.NewIdent(pos, seg))
	}
	return expr
}

// isIntrinsicTag reports whether a tag identifier names an intrinsic
// element such as div or span rather than a component.
func isIntrinsicTag(name string) bool {
	if name == "" {
		return false
	}
	first := name[0]
	return first >= 'a' && first <= 'z'
}

// cleanJSXText applies JSX whitespace trimming: lines containing only
// whitespace disappear, surrounding whitespace on the remaining lines is
// trimmed, and the survivors join with single spaces. Text on a single
// line keeps its spacing.
func cleanJSXText(s string) string {
	if !strings.Contains(s, "\n") {
		if strings.TrimSpace(s) == "" {
			return ""
		}
		return s
	}
	var parts []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}
