package deplete

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bateman/chain"
	"github.com/katalvlaran/bateman/sparse"
)

// Assemble builds one region's transmutation matrix.
//
// For every nuclide i in index order:
//
//   - decay: λ = ln2/halfLife is subtracted from (i,i); each mode adds
//     branch·λ at (target, i) unless the target is chain.Sink. Branch sums
//     are taken as-is — truncated chains lose atoms by design.
//   - reactions: rate r_j is subtracted from (i,i); a Sink target adds no
//     gain; a non-fission target gains r_j at (target, i); fission
//     distributes yield(k, referenceEnergyIndex, precursor(i))·r_j over
//     every yield product k.
//
// Preconditions: rates must carry exactly len(Reactions) values for every
// nuclide with reaction paths (ErrRateShape otherwise); a fissioning
// nuclide must appear in the yield precursor list
// (chain.ErrUnknownPrecursor). On any error no matrix is returned.
//
// Complexity: O(paths + fissile·products) accumulations plus the CSR freeze.
func Assemble(c *chain.Chain, rates RateSet) (*sparse.CSR, error) {
	b, err := sparse.NewBuilder(c.Len())
	if err != nil {
		return nil, fmt.Errorf("deplete.Assemble: %w", err)
	}

	for i := 0; i < c.Len(); i++ {
		nuc := c.At(i)

		if len(nuc.Decay) > 0 {
			if err = addDecay(b, c, i, nuc); err != nil {
				return nil, err
			}
		}
		if len(nuc.Reactions) == 0 {
			continue
		}

		nucRates, ok := rates[nuc.Name]
		if !ok || len(nucRates) != len(nuc.Reactions) {
			return nil, fmt.Errorf("deplete.Assemble: %s: %d rates for %d reaction paths: %w",
				nuc.Name, len(nucRates), len(nuc.Reactions), ErrRateShape)
		}
		if err = addReactions(b, c, i, nuc, nucRates); err != nil {
			return nil, err
		}
	}

	return b.Compress(), nil
}

// addDecay accumulates the decay loss and branch gains of nuclide i.
func addDecay(b *sparse.Builder, c *chain.Chain, i int, nuc *chain.Nuclide) error {
	lambda := math.Ln2 / nuc.HalfLife

	// Total decay loss on the diagonal.
	if err := b.Add(i, i, -lambda); err != nil {
		return fmt.Errorf("deplete.Assemble: %s decay loss: %w", nuc.Name, err)
	}
	for _, mode := range nuc.Decay {
		if mode.Target == chain.Sink {
			continue // intentional annihilation, loss without gain
		}
		k, err := c.Index(mode.Target)
		if err != nil {
			return fmt.Errorf("deplete.Assemble: %s decay: %w", nuc.Name, err)
		}
		if err = b.Add(k, i, mode.Branch*lambda); err != nil {
			return fmt.Errorf("deplete.Assemble: %s → %s: %w", nuc.Name, mode.Target, err)
		}
	}

	return nil
}

// addReactions accumulates the reaction losses and gains of nuclide i at
// the supplied per-path rates.
func addReactions(b *sparse.Builder, c *chain.Chain, i int, nuc *chain.Nuclide, nucRates []float64) error {
	for j, path := range nuc.Reactions {
		r := nucRates[j]

		if err := b.Add(i, i, -r); err != nil {
			return fmt.Errorf("deplete.Assemble: %s %s loss: %w", nuc.Name, path.Kind, err)
		}

		switch {
		case path.Target == chain.Sink:
			// Loss only.
		case path.Kind != chain.ReactionFission:
			k, err := c.Index(path.Target)
			if err != nil {
				return fmt.Errorf("deplete.Assemble: %s %s: %w", nuc.Name, path.Kind, err)
			}
			if err = b.Add(k, i, r); err != nil {
				return fmt.Errorf("deplete.Assemble: %s → %s: %w", nuc.Name, path.Target, err)
			}
		default:
			if err := addFissionYields(b, c, i, nuc, r); err != nil {
				return err
			}
		}
	}

	return nil
}

// addFissionYields distributes a fission rate over every yield product of
// the table, at the fixed reference energy point.
func addFissionYields(b *sparse.Builder, c *chain.Chain, i int, nuc *chain.Nuclide, r float64) error {
	y := c.Yields()
	if y == nil {
		return fmt.Errorf("deplete.Assemble: %s fission without yield table: %w",
			nuc.Name, chain.ErrUnknownPrecursor)
	}
	pre, err := y.PrecursorIndex(nuc.Name)
	if err != nil {
		return fmt.Errorf("deplete.Assemble: %w", err)
	}

	for k, product := range y.Products {
		frac, err := y.At(k, referenceEnergyIndex, pre)
		if err != nil {
			return fmt.Errorf("deplete.Assemble: %s fission: %w", nuc.Name, err)
		}
		// Product indices were validated at chain construction.
		l, err := c.Index(product)
		if err != nil {
			return fmt.Errorf("deplete.Assemble: %s fission: %w", nuc.Name, err)
		}
		if err = b.Add(l, i, frac*r); err != nil {
			return fmt.Errorf("deplete.Assemble: %s → %s: %w", nuc.Name, product, err)
		}
	}

	return nil
}
