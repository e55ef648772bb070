package transform

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/deepnoodle-ai/marlin/ast"
	"github.com/deepnoodle-ai/marlin/errors"
	"github.com/deepnoodle-ai/marlin/sema"
)

// Context is the shared state that one transform run hands to its passes:
// the arena that owns the tree, the source type, the semantic analysis
// result, and the diagnostic log. A Context belongs to exactly one
// Transformer and is not safe for concurrent use.
type Context struct {
	arena      *ast.Arena
	sourceType ast.SourceType
	semantic   *sema.Result
	options    *Options
	filename   string
	source     string
	logger     zerolog.Logger
	errs       errors.TransformErrors
}

// Arena returns the allocator that owns the tree. Passes allocate every
// replacement node from it.
func (c *Context) Arena() *ast.Arena { return c.arena }

// SourceType returns the dialect of the file being transformed.
func (c *Context) SourceType() ast.SourceType { return c.sourceType }

// Semantic returns the binder's analysis result.
func (c *Context) Semantic() *sema.Result { return c.semantic }

// Options returns the validated options for this run.
func (c *Context) Options() *Options { return c.options }

// Filename returns the name of the file being transformed.
func (c *Context) Filename() string { return c.filename }

// Logger returns the run's logger.
func (c *Context) Logger() *zerolog.Logger { return &c.logger }

// Error appends a diagnostic to the run's log. The log is append-only:
// diagnostics keep their emission order and duplicates are preserved.
func (c *Context) Error(err *errors.TransformError) {
	c.errs.Add(err)
	c.logger.Debug().
		Str("pass", err.Pass).
		Str("code", string(err.Code)).
		Int("line", err.Line).
		Int("column", err.Column).
		Msg(err.Message)
}

// Errorf records a diagnostic anchored to node and returns it so the caller
// can attach suggestions or a note. The diagnostic is already logged when
// Errorf returns; later enrichment still reaches consumers because the log
// holds pointers.
func (c *Context) Errorf(pass string, code errors.ErrorCode, node ast.Node, format string, args ...any) *errors.TransformError {
	pos := node.Pos()
	end := node.End()
	filename := pos.File
	if filename == "" {
		filename = c.filename
	}
	err := &errors.TransformError{
		Code:       code,
		Message:    fmt.Sprintf(format, args...),
		Pass:       pass,
		Filename:   filename,
		Line:       pos.LineNumber(),
		Column:     pos.ColumnNumber(),
		SourceLine: c.sourceLine(pos.Line),
	}
	if end.Line == pos.Line && end.Column > pos.Column {
		err.EndColumn = end.ColumnNumber() - 1
	}
	c.Error(err)
	return err
}

// takeErrors drains the diagnostic log. The transformer calls this exactly
// once, when the traversal finishes.
func (c *Context) takeErrors() []*errors.TransformError {
	errs := c.errs.Errors
	c.errs.Errors = nil
	return errs
}

// sourceLine retrieves a specific line from the source code. lineNum is
// 0-indexed.
func (c *Context) sourceLine(lineNum int) string {
	if c.source == "" {
		return ""
	}
	lines := strings.Split(c.source, "\n")
	if lineNum < 0 || lineNum >= len(lines) {
		return ""
	}
	return lines[lineNum]
}
