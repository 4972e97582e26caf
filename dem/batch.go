package dem

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Source names one grid input for ReadGrids.
type Source struct {
	Path       string
	Compressed bool
}

// ReadGrids reads all sources, at most the reader's parallelism at a time.
// Each grid is parsed on its own by a single goroutine. The first error
// cancels grids not yet started and is returned, grids[i] belongs to
// sources[i].
func (r *Reader) ReadGrids(ctx context.Context, sources []Source) ([]Grid, error) {
	grids := make([]Grid, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallelism)

	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			grid, err := r.ReadGrid(src.Path, src.Compressed)
			if err != nil {
				return err
			}
			grids[i] = grid
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return grids, nil
}
