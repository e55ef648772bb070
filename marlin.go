// Package marlin lowers typed, JSX-capable syntax trees to plain ones.
//
// The package is a thin facade over the pipeline: it binds the program's
// file-level names with sema.Bind, then hands the tree to the transform
// package, which runs the configured lowering passes in a single
// traversal. Parsing is out of scope; callers arrive with a tree already
// built on an ast.Arena.
//
//	arena := ast.NewArena()
//	program := parseSomehow(arena, source)
//	err := marlin.Transform(program, arena,
//		marlin.WithFilename("app.tsx"),
//		marlin.WithSource(source),
//	)
//
// Lowering continues past problems; the returned error aggregates every
// diagnostic the passes reported. See the transform package for the pass
// machinery and the errors package for the diagnostic types.
package marlin

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/deepnoodle-ai/marlin/ast"
	"github.com/deepnoodle-ai/marlin/sema"
	"github.com/deepnoodle-ai/marlin/transform"
)

// Version is the current Marlin version.
const Version = "0.1.0"

// Option configures a lowering.
type Option func(*options)

type options struct {
	sourceType    ast.SourceType
	sourceTypeSet bool
	filename      string
	source        string
	semantic      *sema.Result
	transform     *transform.Options
	logger        *zerolog.Logger
}

func collectOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// WithSourceType sets the dialect of the tree being lowered and wins over
// the extension of a filename supplied with WithFilename. The default is
// TypeScript with JSX, the dialect that accepts everything.
func WithSourceType(st ast.SourceType) Option {
	return func(o *options) {
		o.sourceType = st
		o.sourceTypeSet = true
	}
}

// WithFilename sets the filename carried by diagnostics. Unless
// WithSourceType is also supplied, the file extension decides the source
// type, and Transform reports extensions it does not recognize.
func WithFilename(filename string) Option {
	return func(o *options) {
		o.filename = filename
	}
}

// WithSource provides the original source text so diagnostics can quote
// the offending line.
func WithSource(source string) Option {
	return func(o *options) {
		o.source = source
	}
}

// WithSemantic supplies a prebuilt semantic result. Without this option,
// Transform binds the program itself with sema.Bind.
func WithSemantic(semantic *sema.Result) Option {
	return func(o *options) {
		o.semantic = semantic
	}
}

// WithOptions selects and configures the lowering passes. The default
// enables type erasure and classic-runtime JSX lowering.
func WithOptions(opts *transform.Options) Option {
	return func(o *options) {
		o.transform = opts
	}
}

// WithLogger enables debug logging of the lowering run.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Transform lowers the program in place. The arena must be the one the
// tree was built on; replacement nodes are allocated from it.
//
// The returned error is nil when no pass reported a diagnostic, a
// *errors.TransformError for exactly one, and a *errors.TransformErrors
// for several. The tree is fully lowered in every case.
func Transform(program *ast.Program, arena *ast.Arena, opts ...Option) error {
	if program == nil {
		return errors.New("marlin: program is required")
	}
	o := collectOptions(opts...)

	sourceType := ast.TS().WithJSX(true)
	if o.sourceTypeSet {
		sourceType = o.sourceType
	} else if o.filename != "" {
		st, err := ast.SourceTypeFromFilename(o.filename)
		if err != nil {
			return err
		}
		sourceType = st
	}

	semantic := o.semantic
	if semantic == nil {
		var err error
		semantic, err = sema.Bind(program)
		if err != nil {
			return err
		}
	}

	return transform.Transform(program, &transform.Config{
		Arena:      arena,
		SourceType: sourceType,
		Semantic:   semantic,
		Options:    o.transform,
		Filename:   o.filename,
		Source:     o.source,
		Logger:     o.logger,
	})
}
