package ast

import "iter"

// Visitor is implemented by types that traverse a syntax tree. If the
// Visit method returns a non-nil Visitor w, Walk visits each child of the
// node with w.
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses a syntax tree in depth-first order, calling v.Visit for
// node and, if the returned visitor is non-nil, for each of node's
// children.
//
// Walk enumerates value positions only. Type annotations (Param.Type,
// VarDecl.Type, return types, TSAs.Type, type alias bodies) and names
// (declaration identifiers, member access properties, non-computed keys,
// JSX tags, import sources) are not children.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}
	switch n := node.(type) {

	// Statements

	case *Program:
		walkStmts(v, n.Stmts)
	case *VarDecl:
		if n.Value != nil {
			Walk(v, n.Value)
		}
	case *FuncDecl:
		walkParams(v, n.Params)
		Walk(v, n.Body)
	case *Return:
		if n.Value != nil {
			Walk(v, n.Value)
		}
	case *ExprStmt:
		Walk(v, n.X)
	case *Block:
		walkStmts(v, n.Stmts)
	case *If:
		Walk(v, n.Cond)
		Walk(v, n.Consequence)
		if n.Alternative != nil {
			Walk(v, n.Alternative)
		}
	case *For:
		if n.Init != nil {
			Walk(v, n.Init)
		}
		if n.Cond != nil {
			Walk(v, n.Cond)
		}
		if n.Post != nil {
			Walk(v, n.Post)
		}
		Walk(v, n.Body)
	case *ClassDecl:
		walkClass(v, n)
	case *InterfaceDecl, *TypeAliasDecl, *ImportDecl, *EmptyStmt, *BadStmt:
		// no value children

	// Expressions

	case *Prefix:
		Walk(v, n.X)
	case *Infix:
		Walk(v, n.X)
		Walk(v, n.Y)
	case *Assign:
		Walk(v, n.Target)
		Walk(v, n.Value)
	case *Ternary:
		Walk(v, n.Cond)
		Walk(v, n.Then)
		Walk(v, n.Else)
	case *Call:
		Walk(v, n.Fun)
		walkExprs(v, n.Args)
	case *Member:
		Walk(v, n.X)
	case *Index:
		Walk(v, n.X)
		Walk(v, n.Index)
	case *ArrayLit:
		walkExprs(v, n.Items)
	case *ObjectLit:
		for _, prop := range n.Properties {
			Walk(v, prop)
		}
	case *ObjectProperty:
		if n.Key != nil && n.Computed {
			Walk(v, n.Key)
		}
		Walk(v, n.Value)
	case *FuncLit:
		walkParams(v, n.Params)
		Walk(v, n.Body)
	case *ArrowFunc:
		walkParams(v, n.Params)
		if n.Body != nil {
			Walk(v, n.Body)
		}
		if n.Value != nil {
			Walk(v, n.Value)
		}
	case *ClassExpr:
		walkClass(v, n.Decl)
	case *TSAs:
		Walk(v, n.X)
	case *TSNonNull:
		Walk(v, n.X)
	case *JSXElement:
		for _, attr := range n.Attrs {
			Walk(v, attr)
		}
		walkExprs(v, n.Children)
	case *JSXAttr:
		if n.Spread != nil {
			Walk(v, n.Spread)
		}
		if n.Value != nil {
			Walk(v, n.Value)
		}
	case *JSXFragment:
		walkExprs(v, n.Children)
	case *JSXExprContainer:
		if n.X != nil {
			Walk(v, n.X)
		}
	case *Param:
		if n.Default != nil {
			Walk(v, n.Default)
		}
	case *Decorator:
		Walk(v, n.X)
	case *ClassMember:
		for _, d := range n.Decorators {
			Walk(v, d)
		}
		if n.Computed && n.Key != nil {
			Walk(v, n.Key)
		}
		if n.Value != nil {
			Walk(v, n.Value)
		}
		walkParams(v, n.Params)
		if n.Body != nil {
			Walk(v, n.Body)
		}
	}
}

func walkStmts(v Visitor, stmts []Stmt) {
	for _, stmt := range stmts {
		Walk(v, stmt)
	}
}

func walkExprs(v Visitor, exprs []Expr) {
	for _, expr := range exprs {
		Walk(v, expr)
	}
}

func walkParams(v Visitor, params []*Param) {
	for _, param := range params {
		Walk(v, param)
	}
}

func walkClass(v Visitor, class *ClassDecl) {
	for _, d := range class.Decorators {
		Walk(v, d)
	}
	if class.SuperClass != nil {
		Walk(v, class.SuperClass)
	}
	for _, m := range class.Body {
		Walk(v, m)
	}
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses the tree rooted at node, calling f for each node. If f
// returns false, Inspect skips the node's children.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

// Preorder returns an iterator over the nodes of the tree rooted at node,
// in depth-first preorder. Breaking out of the loop stops the traversal.
func Preorder(node Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		ok := true
		Inspect(node, func(n Node) bool {
			if ok {
				ok = yield(n)
			}
			return ok
		})
	}
}
