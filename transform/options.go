package transform

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/deepnoodle-ai/marlin/errors"
)

// JSX runtime names accepted by ReactOptions.Runtime.
const (
	RuntimeClassic   = "classic"
	RuntimeAutomatic = "automatic"
)

// CompilerAssumptions relaxes spec conformance in exchange for smaller
// output. The assumptions mirror what bundler users commonly promise about
// their code; passes consult them where a lowering has a cheap variant that
// is only correct under the assumption.
type CompilerAssumptions struct {
	// IgnoreFunctionLength allows lowerings to change a function's length
	// property.
	IgnoreFunctionLength bool

	// NoDocumentAll assumes document.all never occurs, so loose equality
	// with null covers all nullish checks.
	NoDocumentAll bool

	// PureGetters assumes property access is side-effect free and may be
	// duplicated or dropped.
	PureGetters bool

	// SetPublicClassFields assumes class fields can be lowered with plain
	// assignment instead of Object.defineProperty.
	SetPublicClassFields bool
}

// TypeScriptOptions configures the type erasure pass.
type TypeScriptOptions struct {
	// Enabled turns the pass on. A disabled pass leaves every node
	// untouched.
	Enabled bool

	// OnlyRemoveTypeImports limits import rewriting to "import type"
	// declarations and "type" specifiers. When false, the pass also elides
	// import bindings that are never referenced in value position.
	OnlyRemoveTypeImports bool
}

// ReactOptions configures the JSX lowering pass.
type ReactOptions struct {
	// Enabled turns the pass on. A disabled pass leaves every node
	// untouched.
	Enabled bool

	// Runtime selects the JSX runtime. Only RuntimeClassic is supported;
	// an empty value means classic.
	Runtime string

	// Development adds a __source location prop to lowered elements.
	Development bool

	// Pragma is the dotted callee path for lowered elements. An empty
	// value means "React.createElement".
	Pragma string

	// PragmaFrag is the dotted expression path for lowered fragments. An
	// empty value means "React.Fragment".
	PragmaFrag string
}

// DecoratorsOptions configures the decorator desugaring pass.
type DecoratorsOptions struct {
	// Enabled turns the pass on. A disabled pass leaves every node
	// untouched.
	Enabled bool

	// Legacy selects the TypeScript experimentalDecorators semantics,
	// which is the only supported proposal. With Legacy false the pass
	// reports every decorated class instead of rewriting it.
	Legacy bool

	// EmitDecoratorMetadata would require design-time type information,
	// which this stage does not have. Setting it is a configuration error.
	EmitDecoratorMetadata bool
}

// Options selects and configures the lowering passes. The pass order is
// fixed (typescript, react, decorators); options only decide which of them
// run and how.
type Options struct {
	Assumptions CompilerAssumptions
	TypeScript  TypeScriptOptions
	React       ReactOptions
	Decorators  DecoratorsOptions
}

// DefaultOptions enables type erasure and classic-runtime JSX lowering.
// Decorators stay opt-in, but are preconfigured for the legacy proposal so
// that setting Enabled is all a caller needs.
func DefaultOptions() *Options {
	return &Options{
		TypeScript: TypeScriptOptions{
			Enabled: true,
		},
		React: ReactOptions{
			Enabled:    true,
			Runtime:    RuntimeClassic,
			Pragma:     "React.createElement",
			PragmaFrag: "React.Fragment",
		},
		Decorators: DecoratorsOptions{
			Legacy: true,
		},
	}
}

// Validate checks the options and returns all configuration problems at
// once, aggregated with multierror.
func (o *Options) Validate() error {
	var result *multierror.Error

	switch o.React.Runtime {
	case "", RuntimeClassic:
	case RuntimeAutomatic:
		result = multierror.Append(result, fmt.Errorf(
			"react: the automatic runtime requires program-level import injection, which the transform stage does not perform; use %q", RuntimeClassic))
	default:
		msg := fmt.Sprintf("react: unknown runtime %q", o.React.Runtime)
		suggestions := errors.SuggestSimilar(o.React.Runtime, []string{RuntimeClassic, RuntimeAutomatic})
		if hint := errors.FormatSuggestions(suggestions); hint != "" {
			msg += " (" + hint + ")"
		}
		result = multierror.Append(result, fmt.Errorf("%s", msg))
	}

	if o.React.Pragma != "" && !validPragma(o.React.Pragma) {
		result = multierror.Append(result, fmt.Errorf(
			"react: pragma %q is not a dotted identifier path", o.React.Pragma))
	}
	if o.React.PragmaFrag != "" && !validPragma(o.React.PragmaFrag) {
		result = multierror.Append(result, fmt.Errorf(
			"react: pragmaFrag %q is not a dotted identifier path", o.React.PragmaFrag))
	}

	if o.Decorators.EmitDecoratorMetadata {
		result = multierror.Append(result, fmt.Errorf(
			"decorators: emitDecoratorMetadata requires type information that is not available after parsing"))
	}

	return result.ErrorOrNil()
}

// validPragma reports whether s is a non-empty dotted identifier path such
// as "React.createElement" or "h".
func validPragma(s string) bool {
	for _, seg := range strings.Split(s, ".") {
		if !validIdent(seg) {
			return false
		}
	}
	return true
}

// validIdent reports whether s is a plausible JavaScript identifier. The
// check covers the ASCII forms that occur in pragmas and JSX attribute
// names.
func validIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
