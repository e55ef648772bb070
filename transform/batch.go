package transform

import (
	"context"
	"fmt"
	"runtime"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/deepnoodle-ai/marlin/ast"
)

// Unit pairs one program with the configuration for its run. Units must not
// share arenas or semantic results; each transforms independently.
type Unit struct {
	Program *ast.Program
	Config  *Config
}

// TransformMany lowers the given units concurrently, at most jobs at a
// time (GOMAXPROCS when jobs <= 0). Diagnostics in one unit never stop the
// others; only ctx cancellation abandons unstarted work. The returned
// error aggregates per-unit failures in unit order regardless of
// completion order, each prefixed with the unit's filename.
func TransformMany(ctx context.Context, units []Unit, jobs int) error {
	if len(units) == 0 {
		return nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Indices are unique per goroutine, so the slice needs no mutex.
	results := make([]error, len(units))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(units)))

	for i, unit := range units {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = Transform(unit.Program, unit.Config)
			return nil
		})
	}

	// Only cancellation propagates through Wait; per-unit diagnostics are
	// collected below so every unit that ran is reported.
	if err := g.Wait(); err != nil {
		return err
	}

	var merged *multierror.Error
	for i, err := range results {
		if err != nil {
			merged = multierror.Append(merged, fmt.Errorf("%s: %w", unitName(units[i]), err))
		}
	}
	return merged.ErrorOrNil()
}

func unitName(unit Unit) string {
	if unit.Config != nil && unit.Config.Filename != "" {
		return unit.Config.Filename
	}
	return "(unknown file)"
}
