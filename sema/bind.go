package sema

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/deepnoodle-ai/marlin/ast"
)

// Bind analyzes a program and returns the semantic result the transform
// stage consumes. It collects the file-level bindings into the program
// scope and counts how often each is referenced in value position.
//
// Bind resolves names against the program scope only. A local binding that
// shadows a file-level one still counts as a reference to the file-level
// binding, so reference counts can only be too high, never too low. For
// import elision this errs on the safe side: an over-counted import is
// kept, never dropped.
//
// The returned result is usable even when Bind reports errors; it simply
// omits the bindings that failed.
func Bind(program *ast.Program) (*Result, error) {
	result := NewResult()
	if program == nil {
		return result, fmt.Errorf("bind error: program is required")
	}
	var errs *multierror.Error
	for _, stmt := range program.Stmts {
		if err := declare(result.root, stmt); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	countReferences(result.root, program)
	return result, errs.ErrorOrNil()
}

// declare inserts the bindings a top level statement introduces.
func declare(root *Scope, stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		return insert(root, s.Name, KindValue)
	case *ast.FuncDecl:
		return insert(root, s.Name, KindFunction)
	case *ast.ClassDecl:
		return insert(root, s.Name, KindClass)
	case *ast.InterfaceDecl:
		return insert(root, s.Name, KindType)
	case *ast.TypeAliasDecl:
		return insert(root, s.Name, KindType)
	case *ast.ImportDecl:
		var errs *multierror.Error
		if s.Default != nil {
			if err := insert(root, s.Default, importKind(s.TypeOnly)); err != nil {
				errs = multierror.Append(errs, err)
			}
		}
		for _, spec := range s.Specifiers {
			if err := insert(root, spec.Local, importKind(s.TypeOnly || spec.TypeOnly)); err != nil {
				errs = multierror.Append(errs, err)
			}
		}
		return errs.ErrorOrNil()
	}
	return nil
}

func insert(scope *Scope, name *ast.Ident, kind SymbolKind) error {
	if name == nil {
		return nil
	}
	if _, err := scope.Insert(name.Name, kind, name.Pos()); err != nil {
		return fmt.Errorf("line %d: %w", name.Pos().LineNumber(), err)
	}
	return nil
}

func importKind(typeOnly bool) SymbolKind {
	if typeOnly {
		return KindType
	}
	return KindImport
}

// countReferences walks the tree and bumps the reference count of every
// program-scope binding named in value position. The walk enumerates value
// positions only, so declaration names, member properties, and type
// annotations never count.
func countReferences(root *Scope, program *ast.Program) {
	ast.Inspect(program, func(node ast.Node) bool {
		switch n := node.(type) {
		case *ast.Ident:
			if sym, ok := root.Get(n.Name); ok {
				sym.AddValueReference()
			}
		case *ast.JSXElement:
			// Tags occupy a name position and are not walked, but a
			// component tag still keeps its binding alive.
			if tag := componentTagRoot(n.Tag); tag != nil {
				if sym, ok := root.Get(tag.Name); ok {
					sym.AddValueReference()
				}
			}
		}
		return true
	})
}

// componentTagRoot returns the identifier a component tag resolves through:
// the tag itself for <Widget/>, the leftmost object for <UI.Button/>. Nil
// for intrinsic tags such as <div/>, which name host elements rather than
// bindings. The lowercase rule applies to plain identifier tags only; a
// dotted tag is always a component reference.
func componentTagRoot(tag ast.Expr) *ast.Ident {
	switch t := tag.(type) {
	case *ast.Ident:
		if len(t.Name) > 0 && t.Name[0] >= 'a' && t.Name[0] <= 'z' {
			return nil
		}
		return t
	case *ast.Member:
		x := t.X
		for {
			m, ok := x.(*ast.Member)
			if !ok {
				break
			}
			x = m.X
		}
		if id, ok := x.(*ast.Ident); ok {
			return id
		}
	}
	return nil
}
