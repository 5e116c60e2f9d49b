package deplete

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bateman/chain"
	"github.com/katalvlaran/bateman/sparse"
)

// AssembleBatch assembles one transmutation matrix per material region,
// fanning the independent Assemble calls across a bounded worker pool.
//
// Output-order stability: slot r of the result always holds region r's
// matrix, regardless of worker completion order. The workers share only the
// frozen Chain; no other state crosses region boundaries.
//
// Failure policy is fail-fast and total: the first failing region cancels
// the remaining work and AssembleBatch returns a *RegionError naming it —
// never partial results. Context cancellation surfaces as ctx.Err().
func AssembleBatch(ctx context.Context, c *chain.Chain, regions []RateSet, opts ...Option) ([]*sparse.CSR, error) {
	o := gatherOptions(opts...)
	if o.log != nil {
		o.log.Debug("assembling batch", "regions", len(regions), "workers", o.workers, "nuclides", c.Len())
	}

	out := make([]*sparse.CSR, len(regions))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for r := range regions {
		r := r
		g.Go(func() error {
			// Skip useless work once the batch is already poisoned.
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			m, err := Assemble(c, regions[r])
			if err != nil {
				return &RegionError{Region: r, Err: err}
			}
			out[r] = m

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if o.log != nil {
			o.log.Debug("batch failed", "error", err)
		}

		return nil, fmt.Errorf("deplete.AssembleBatch: %w", err)
	}
	if o.log != nil {
		o.log.Debug("batch assembled", "regions", len(regions))
	}

	return out, nil
}
