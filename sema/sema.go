// Package sema defines the semantic analysis result that the transform
// stage consumes. The binder that runs between parsing and transforming
// populates a Result with the program's scopes, bindings, and reference
// counts; passes read it to resolve names and to decide which imports are
// only ever used as types.
package sema

import (
	"fmt"

	"github.com/deepnoodle-ai/marlin/token"
)

// SymbolKind classifies what a binding names.
type SymbolKind int

const (
	KindValue    SymbolKind = iota // let, const, var, parameters
	KindFunction                   // function declarations
	KindClass                      // class declarations
	KindImport                     // import bindings
	KindType                       // interfaces, type aliases, type-only imports
)

func (k SymbolKind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindClass:
		return "class"
	case KindImport:
		return "import"
	case KindType:
		return "type"
	default:
		return "value"
	}
}

// Symbol is a single binding.
type Symbol struct {
	name      string
	kind      SymbolKind
	decl      token.Position
	valueRefs int
}

// Name returns the binding's name.
func (s *Symbol) Name() string { return s.name }

// Kind returns what the binding names.
func (s *Symbol) Kind() SymbolKind { return s.kind }

// Decl returns the position of the declaration.
func (s *Symbol) Decl() token.Position { return s.decl }

// ValueReferences returns how many times the binding is referenced in value
// position. Type positions do not count, which is what lets the transform
// stage elide imports that only ever feed type annotations.
func (s *Symbol) ValueReferences() int { return s.valueRefs }

// AddValueReference records one value-position reference. The binder calls
// this once per reference while walking the tree.
func (s *Symbol) AddValueReference() { s.valueRefs++ }

// Scope tracks the bindings introduced in one lexical scope. Scopes form a
// tree; Resolve searches the scope and its ancestors.
type Scope struct {
	id            string
	parent        *Scope
	children      []*Scope
	symbolsByName map[string]*Symbol
	symbols       []*Symbol
}

// NewChild creates a scope nested inside this one.
func (s *Scope) NewChild() *Scope {
	child := &Scope{
		id:            fmt.Sprintf("%s.%d", s.id, len(s.children)),
		parent:        s,
		symbolsByName: map[string]*Symbol{},
	}
	s.children = append(s.children, child)
	return child
}

// ID returns the scope's identifier, unique within its Result.
func (s *Scope) ID() string { return s.id }

// Parent returns the enclosing scope, or nil for the program scope.
func (s *Scope) Parent() *Scope { return s.parent }

// Insert adds a binding to this scope. Inserting a name that already exists
// in this scope is an error; the binder reports redeclarations before the
// transform stage runs.
func (s *Scope) Insert(name string, kind SymbolKind, decl token.Position) (*Symbol, error) {
	if _, ok := s.symbolsByName[name]; ok {
		return nil, fmt.Errorf("bind error: %q already declared in this scope", name)
	}
	sym := &Symbol{name: name, kind: kind, decl: decl}
	s.symbolsByName[name] = sym
	s.symbols = append(s.symbols, sym)
	return sym, nil
}

// IsDefined returns true if the name is bound in this scope. Ancestors are
// not consulted.
func (s *Scope) IsDefined(name string) bool {
	_, ok := s.symbolsByName[name]
	return ok
}

// Get returns the binding for name in this scope. Ancestors are not
// consulted.
func (s *Scope) Get(name string) (*Symbol, bool) {
	sym, ok := s.symbolsByName[name]
	return sym, ok
}

// Resolve searches this scope and its ancestors for name.
func (s *Scope) Resolve(name string) (*Symbol, bool) {
	for scope := s; scope != nil; scope = scope.parent {
		if sym, ok := scope.symbolsByName[name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// Symbols returns the scope's bindings in declaration order.
func (s *Scope) Symbols() []*Symbol { return s.symbols }

// AllNames returns every name visible from this scope, for "did you mean"
// suggestions.
func (s *Scope) AllNames() []string {
	seen := make(map[string]bool)
	var names []string
	for scope := s; scope != nil; scope = scope.parent {
		for _, sym := range scope.symbols {
			if !seen[sym.name] {
				seen[sym.name] = true
				names = append(names, sym.name)
			}
		}
	}
	return names
}

// Result is the semantic analysis output for one source file.
type Result struct {
	root *Scope
}

// NewResult returns an empty result with a program scope ready for the
// binder to populate.
func NewResult() *Result {
	return &Result{
		root: &Scope{
			id:            "program",
			symbolsByName: map[string]*Symbol{},
		},
	}
}

// Root returns the program scope.
func (r *Result) Root() *Scope { return r.root }

// Resolve searches the program scope for name. Passes that hold only the
// result use this for file-level bindings such as imports.
func (r *Result) Resolve(name string) (*Symbol, bool) {
	return r.root.Resolve(name)
}
