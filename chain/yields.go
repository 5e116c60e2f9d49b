package chain

import "fmt"

// FissionYields tabulates fractional fission-product production per fission,
// indexed by (product, energy, precursor). Immutable once built.
//
// Products, Energies and Precursors are the axis labels in document order;
// data is row-major over the same axes.
type FissionYields struct {
	// Products lists fission product nuclide names (axis 0).
	Products []string

	// Energies lists tabulated incident energies in eV (axis 1).
	Energies []float64

	// Precursors lists fissioning nuclide names (axis 2).
	Precursors []string

	data         []float64
	energyIdx    map[float64]int
	precursorIdx map[string]int
}

// NewFissionYields builds an immutable yield table over the given axes.
//
// data must hold len(products)·len(energies)·len(precursors) values in
// row-major (product, energy, precursor) order; ErrYieldShape otherwise.
// Negative fractions are rejected with ErrNegativeYield.
func NewFissionYields(products []string, energies []float64, precursors []string, data []float64) (*FissionYields, error) {
	want := len(products) * len(energies) * len(precursors)
	if len(data) != want {
		return nil, fmt.Errorf("NewFissionYields: %d values for %d×%d×%d table: %w",
			len(data), len(products), len(energies), len(precursors), ErrYieldShape)
	}
	for i, v := range data {
		if v < 0 {
			return nil, fmt.Errorf("NewFissionYields: data[%d]=%g: %w", i, v, ErrNegativeYield)
		}
	}

	y := &FissionYields{
		Products:     append([]string(nil), products...),
		Energies:     append([]float64(nil), energies...),
		Precursors:   append([]string(nil), precursors...),
		data:         append([]float64(nil), data...),
		energyIdx:    make(map[float64]int, len(energies)),
		precursorIdx: make(map[string]int, len(precursors)),
	}
	for i, e := range y.Energies {
		y.energyIdx[e] = i
	}
	for i, p := range y.Precursors {
		y.precursorIdx[p] = i
	}

	return y, nil
}

// At returns the yield fraction for product p, energy point e and
// precursor pre, all positional indices.
// Complexity: O(1)
func (y *FissionYields) At(p, e, pre int) (float64, error) {
	if p < 0 || p >= len(y.Products) || e < 0 || e >= len(y.Energies) || pre < 0 || pre >= len(y.Precursors) {
		return 0, fmt.Errorf("At: (%d,%d,%d) outside %d×%d×%d: %w",
			p, e, pre, len(y.Products), len(y.Energies), len(y.Precursors), ErrYieldShape)
	}

	return y.data[(p*len(y.Energies)+e)*len(y.Precursors)+pre], nil
}

// PrecursorIndex returns the axis-2 position of the named fissioning
// nuclide, or ErrUnknownPrecursor.
func (y *FissionYields) PrecursorIndex(name string) (int, error) {
	if i, ok := y.precursorIdx[name]; ok {
		return i, nil
	}

	return 0, fmt.Errorf("PrecursorIndex: %q: %w", name, ErrUnknownPrecursor)
}

// EnergyIndex returns the axis-1 position of a tabulated energy value.
// The lookup is exact, matching how the description file keys its tables.
func (y *FissionYields) EnergyIndex(ev float64) (int, bool) {
	i, ok := y.energyIdx[ev]

	return i, ok
}
