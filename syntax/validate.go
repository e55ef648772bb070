package syntax

import "github.com/deepnoodle-ai/marlin/ast"

// DialectConfig names the syntax families a tree is not allowed to use.
type DialectConfig struct {
	// DisallowTypeSyntax rejects every TypeScript-only construct: type
	// annotations and modifiers, type assertions, interface and type
	// alias declarations, and type-only imports.
	DisallowTypeSyntax bool

	// DisallowJSX rejects JSX elements and fragments.
	DisallowJSX bool

	// DisallowDecorators rejects decorators on classes and members.
	DisallowDecorators bool
}

// Plain returns the configuration a fully lowered tree must satisfy: no
// type syntax, no JSX, no decorators.
func Plain() DialectConfig {
	return DialectConfig{
		DisallowTypeSyntax: true,
		DisallowJSX:        true,
		DisallowDecorators: true,
	}
}

// ForSourceType returns the configuration a tree must satisfy to fit the
// given source type. Type syntax needs a TypeScript dialect and JSX needs
// a JSX-capable one; decorators are permitted in every dialect.
func ForSourceType(st ast.SourceType) DialectConfig {
	return DialectConfig{
		DisallowTypeSyntax: !st.IsTypeScript(),
		DisallowJSX:        !st.HasJSX(),
	}
}

// DialectValidator validates a tree against a DialectConfig.
type DialectValidator struct {
	config DialectConfig
}

// NewDialectValidator creates a validator for the given configuration.
func NewDialectValidator(config DialectConfig) *DialectValidator {
	return &DialectValidator{config: config}
}

// Validate checks the tree against the dialect configuration.
func (v *DialectValidator) Validate(program *ast.Program) []ValidationError {
	var errors []ValidationError

	for node := range ast.Preorder(program) {
		if err := v.checkNode(node); err != nil {
			errors = append(errors, *err)
		}
	}

	return errors
}

func (v *DialectValidator) checkNode(node ast.Node) *ValidationError {
	switch n := node.(type) {
	case *ast.InterfaceDecl:
		if v.config.DisallowTypeSyntax {
			return violation(node, "interface declarations are not allowed")
		}

	case *ast.TypeAliasDecl:
		if v.config.DisallowTypeSyntax {
			return violation(node, "type alias declarations are not allowed")
		}

	case *ast.TSAs:
		if v.config.DisallowTypeSyntax {
			return violation(node, "type assertions are not allowed")
		}

	case *ast.TSNonNull:
		if v.config.DisallowTypeSyntax {
			return violation(node, "non-null assertions are not allowed")
		}

	case *ast.ImportDecl:
		if v.config.DisallowTypeSyntax && typeOnlyImport(n) {
			return violation(node, "type-only imports are not allowed")
		}

	case *ast.VarDecl:
		if v.config.DisallowTypeSyntax && n.Type != nil {
			return violation(node, "type annotations are not allowed")
		}

	case *ast.FuncDecl:
		if v.config.DisallowTypeSyntax && n.ReturnType != nil {
			return violation(node, "type annotations are not allowed")
		}

	case *ast.FuncLit:
		if v.config.DisallowTypeSyntax && n.ReturnType != nil {
			return violation(node, "type annotations are not allowed")
		}

	case *ast.ArrowFunc:
		if v.config.DisallowTypeSyntax && n.ReturnType != nil {
			return violation(node, "type annotations are not allowed")
		}

	case *ast.Param:
		if v.config.DisallowTypeSyntax && (n.Type != nil || n.Optional) {
			return violation(node, "type annotations are not allowed")
		}

	case *ast.ClassDecl:
		return v.checkClass(n)

	case *ast.ClassExpr:
		// The wrapped declaration is not itself walked, so its type-only
		// fields are checked here.
		return v.checkClass(n.Decl)

	case *ast.ClassMember:
		if v.config.DisallowTypeSyntax &&
			(n.Type != nil || n.ReturnType != nil || n.Optional || n.Readonly || n.Declare) {
			return violation(node, "type annotations are not allowed")
		}

	case *ast.Decorator:
		if v.config.DisallowDecorators {
			return violation(node, "decorators are not allowed")
		}

	case *ast.JSXElement, *ast.JSXFragment:
		if v.config.DisallowJSX {
			return violation(node, "JSX syntax is not allowed")
		}
	}

	return nil
}

func (v *DialectValidator) checkClass(class *ast.ClassDecl) *ValidationError {
	if !v.config.DisallowTypeSyntax {
		return nil
	}
	if len(class.TypeParams) > 0 {
		return violation(class, "type parameters are not allowed")
	}
	if len(class.Implements) > 0 {
		return violation(class, "implements clauses are not allowed")
	}
	return nil
}

func typeOnlyImport(decl *ast.ImportDecl) bool {
	if decl.TypeOnly {
		return true
	}
	for _, spec := range decl.Specifiers {
		if spec.TypeOnly {
			return true
		}
	}
	return false
}

func violation(node ast.Node, message string) *ValidationError {
	return &ValidationError{
		Message:  message,
		Node:     node,
		Position: node.Pos(),
	}
}
