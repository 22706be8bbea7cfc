package recipe

import (
	"context"
	"runtime"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/arthur-debert/wort/pkg/brew"
	"github.com/arthur-debert/wort/pkg/logging"
)

// Result is one evaluated recipe file.
type Result struct {
	Path       string
	Recipe     *Recipe
	Evaluation brew.Evaluation
}

// EvaluateFiles loads and evaluates recipes concurrently, at most
// GOMAXPROCS at a time. Results come back in the order of paths. The
// first failure cancels the remaining work and is returned.
func EvaluateFiles(ctx context.Context, fs afero.Fs, paths []string, base, overrides map[string]any) ([]Result, error) {
	logger := logging.WithFields(map[string]interface{}{
		"component": "recipe.batch",
		"files":     len(paths),
	})
	results := make([]Result, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			r, err := Load(fs, path)
			if err != nil {
				return err
			}
			b, err := r.Brew(base, overrides)
			if err != nil {
				return withPath(err, path)
			}
			ev, err := b.Evaluate()
			if err != nil {
				return withPath(err, path)
			}

			logger.Debug().Str("path", path).Msg("Evaluated recipe")
			results[i] = Result{Path: path, Recipe: r, Evaluation: ev}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
