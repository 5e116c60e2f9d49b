package deplete

import (
	"errors"
	"fmt"
)

// referenceEnergyIndex selects the yield-table energy point used for every
// fission gain term. Kept at the first tabulated point; regional spectra
// are intentionally ignored.
const referenceEnergyIndex = 0

// RateSet maps a nuclide name to its per-reaction-path rate magnitudes for
// one material region, aligned positionally with Nuclide.Reactions.
// Nuclides without reaction paths need no entry. Produced by the external
// transport collaborator; consumed read-only here.
type RateSet map[string][]float64

// ErrRateShape indicates a rate sequence whose length disagrees with the
// nuclide's declared reaction-path count (a missing sequence included).
var ErrRateShape = errors.New("deplete: reaction rate shape mismatch")

// RegionError wraps a per-region assembly failure raised by AssembleBatch,
// identifying which region poisoned the batch.
type RegionError struct {
	// Region is the failing slot in the input rate-set slice.
	Region int

	// Err is the underlying assembly failure.
	Err error
}

func (e *RegionError) Error() string {
	return fmt.Sprintf("deplete: region %d: %v", e.Region, e.Err)
}

// Unwrap exposes the underlying failure to errors.Is/As.
func (e *RegionError) Unwrap() error { return e.Err }
