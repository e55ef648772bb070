// Package transform lowers a typed, JSX-capable syntax tree to plain
// JavaScript constructs in a single depth-first traversal.
//
// # One Traversal, Many Passes
//
// Each lowering concern is a Pass: TypeScript erasure, JSX expansion, and
// decorator desugaring. Rather than walking the tree once per pass, the
// Transformer composes every enabled pass into one walk. At each statement
// or expression slot the walker fires every pass in pipeline order, then
// descends into whatever node the slot holds afterward. A pass that
// replaces a node therefore has its replacement's children transformed by
// the same walk, and a pass later in the pipeline sees the output of the
// passes before it.
//
// The pipeline order is fixed: typescript, react, decorators. Options
// choose which passes participate, never their order.
//
// # Shared Context
//
// Every pass works through a Context holding the arena that owns the tree,
// the source type, the semantic analysis result, and the diagnostic log.
// Replacement nodes are always allocated from the arena so the tree never
// mixes ownership.
//
// # Diagnostics Do Not Stop the Walk
//
// Passes report problems and keep lowering. TypeScript syntax in a .js
// file is erased anyway; JSX in a file without JSX enabled is expanded
// anyway. The lowered output reflects what the author wrote, and the
// diagnostic explains what was wrong with the input. Transform returns all
// diagnostics in emission order once the traversal finishes.
//
// # Example
//
//	arena := ast.NewArena()
//	program := parse(arena, source) // produced elsewhere
//	err := transform.Transform(program, &transform.Config{
//		Arena:      arena,
//		SourceType: ast.TS().WithJSX(true),
//		Semantic:   semantic,
//		Filename:   "app.tsx",
//		Source:     source,
//	})
package transform

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog"

	"github.com/deepnoodle-ai/marlin/ast"
	"github.com/deepnoodle-ai/marlin/errors"
	"github.com/deepnoodle-ai/marlin/sema"
)

// Config holds transformer configuration options.
type Config struct {
	// Arena is the allocator that owns the program's nodes. Passes allocate
	// replacement nodes from it. Required.
	Arena *ast.Arena

	// SourceType is the dialect of the file. The zero value is a plain
	// JavaScript script; most callers want ast.SourceTypeFromFilename or
	// one of the ast.JS/ast.TS constructors.
	SourceType ast.SourceType

	// Semantic is the binder's analysis of the program. Import elision and
	// pragma resolution read it. Required.
	Semantic *sema.Result

	// Options selects and configures the passes. Pass nil to use
	// DefaultOptions.
	Options *Options

	// Filename is the source filename, used for diagnostics.
	Filename string

	// Source is the original source code, used for better diagnostics.
	Source string

	// Logger receives debug events for the run. Pass nil to disable
	// logging.
	Logger *zerolog.Logger
}

// Transformer applies the configured passes to one program. Each
// Transformer is single-use: create one per program.
type Transformer struct {
	ctx    *Context
	passes []Pass
	id     string
	used   bool
}

// Transform lowers the program in place and returns its diagnostics, if
// any. This is the standard entry point; it creates a fresh Transformer
// for the run.
func Transform(program *ast.Program, cfg *Config) error {
	t, err := New(cfg)
	if err != nil {
		return err
	}
	return t.Transform(program)
}

// New creates and returns a new Transformer for a single program.
func New(cfg *Config) (*Transformer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("transform: config is required")
	}
	if cfg.Arena == nil {
		return nil, fmt.Errorf("transform: config.Arena is required")
	}
	if cfg.Semantic == nil {
		return nil, fmt.Errorf("transform: config.Semantic is required")
	}
	opts := cfg.Options
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	id := uuid.Must(uuid.NewV4()).String()
	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = cfg.Logger.With().Str("transform_id", id).Logger()
	}

	// The pipeline order is fixed; options only decide participation.
	var passes []Pass
	if opts.TypeScript.Enabled {
		passes = append(passes, newTypeScriptPass(opts.TypeScript))
	}
	if opts.React.Enabled {
		passes = append(passes, newReactPass(opts.React))
	}
	if opts.Decorators.Enabled {
		passes = append(passes, newDecoratorsPass(opts.Decorators))
	}

	return &Transformer{
		ctx: &Context{
			arena:      cfg.Arena,
			sourceType: cfg.SourceType,
			semantic:   cfg.Semantic,
			options:    opts,
			filename:   cfg.Filename,
			source:     cfg.Source,
			logger:     logger,
		},
		passes: passes,
		id:     id,
	}, nil
}

// ID returns the unique identifier of this run, also present on every log
// event the run emits.
func (t *Transformer) ID() string {
	return t.id
}

// Passes returns the names of the passes that will run, in pipeline order.
func (t *Transformer) Passes() []string {
	names := make([]string, len(t.passes))
	for i, pass := range t.passes {
		names[i] = pass.Name()
	}
	return names
}

// Transform lowers the program in place. It visits every statement and
// expression exactly once, firing each pass in pipeline order before
// descending. The returned error aggregates every diagnostic the passes
// recorded, in emission order; nil means a clean run.
//
// A Transformer transforms exactly one program. Further calls return an
// error without touching the tree.
func (t *Transformer) Transform(program *ast.Program) error {
	if t.used {
		return fmt.Errorf("transform: transformer already used; create a new one per program")
	}
	t.used = true
	if program == nil {
		return fmt.Errorf("transform: program is required")
	}

	start := time.Now()
	startNodes := t.ctx.arena.NodeCount()
	t.ctx.logger.Debug().
		Str("filename", t.ctx.filename).
		Str("source_type", t.ctx.sourceType.String()).
		Strs("passes", t.Passes()).
		Int("statements", len(program.Stmts)).
		Msg("transform started")

	w := &walker{ctx: t.ctx, passes: t.passes}
	w.program(program)

	diagnostics := t.ctx.takeErrors()
	t.ctx.logger.Debug().
		Dur("elapsed", time.Since(start)).
		Int("nodes_allocated", t.ctx.arena.NodeCount()-startNodes).
		Int("diagnostics", len(diagnostics)).
		Msg("transform finished")

	return (&errors.TransformErrors{Errors: diagnostics}).ToError()
}
