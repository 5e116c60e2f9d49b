package chain

import "fmt"

// Chain is the transmutation network aggregate: the ordered nuclide list,
// the single fission yield table, and the canonical name→index mapping that
// every collaborator uses to address matrix rows and columns.
//
// A Chain is read-only after New returns and safe for unsynchronized
// concurrent readers.
type Chain struct {
	nuclides []Nuclide
	index    map[string]int

	// reactionKinds holds the distinct reaction-kind labels in first-seen
	// document order; transport collaborators use it to know which rate
	// channels to tally.
	reactionKinds []string

	yields *FissionYields
}

// New validates and freezes a chain.
//
// Validation covers referential integrity only: unique nuclide names
// (ErrDuplicateNuclide), every non-Sink path target present
// (ErrUnknownTarget), every yield product and precursor present
// (ErrUnknownProduct). Branching ratios are deliberately NOT checked for
// conservation. New links each yield product back to its Nuclide via
// YieldIndex; all other YieldIndex values are forced to -1.
func New(nuclides []Nuclide, reactionKinds []string, yields *FissionYields) (*Chain, error) {
	c := &Chain{
		nuclides:      append([]Nuclide(nil), nuclides...),
		index:         make(map[string]int, len(nuclides)),
		reactionKinds: append([]string(nil), reactionKinds...),
		yields:        yields,
	}

	// Stage 1: assign positional indices, reject duplicates.
	for i := range c.nuclides {
		name := c.nuclides[i].Name
		if _, dup := c.index[name]; dup {
			return nil, fmt.Errorf("chain.New: %q: %w", name, ErrDuplicateNuclide)
		}
		c.index[name] = i
		c.nuclides[i].YieldIndex = -1
	}

	// Stage 2: every non-sentinel target must resolve (forward references
	// are fine, the whole list is known by now).
	for i := range c.nuclides {
		nuc := &c.nuclides[i]
		for _, d := range nuc.Decay {
			if d.Target == Sink {
				continue
			}
			if _, ok := c.index[d.Target]; !ok {
				return nil, fmt.Errorf("chain.New: %s decay → %q: %w", nuc.Name, d.Target, ErrUnknownTarget)
			}
		}
		for _, rp := range nuc.Reactions {
			if rp.Kind == ReactionFission || rp.Target == Sink {
				continue
			}
			if _, ok := c.index[rp.Target]; !ok {
				return nil, fmt.Errorf("chain.New: %s %s → %q: %w", nuc.Name, rp.Kind, rp.Target, ErrUnknownTarget)
			}
		}
	}

	// Stage 3: yield axes must reference chain nuclides; link products.
	if yields != nil {
		for p, name := range yields.Products {
			i, ok := c.index[name]
			if !ok {
				return nil, fmt.Errorf("chain.New: yield product %q: %w", name, ErrUnknownProduct)
			}
			c.nuclides[i].YieldIndex = p
		}
		for _, name := range yields.Precursors {
			if _, ok := c.index[name]; !ok {
				return nil, fmt.Errorf("chain.New: yield precursor %q: %w", name, ErrUnknownProduct)
			}
		}
	}

	return c, nil
}

// Len returns the number of nuclides in the chain.
func (c *Chain) Len() int { return len(c.nuclides) }

// At returns the nuclide at positional index i. The pointer references
// frozen storage and MUST NOT be mutated.
func (c *Chain) At(i int) *Nuclide { return &c.nuclides[i] }

// ByName returns the named nuclide, or ErrUnknownNuclide.
func (c *Chain) ByName(name string) (*Nuclide, error) {
	i, ok := c.index[name]
	if !ok {
		return nil, fmt.Errorf("ByName: %q: %w", name, ErrUnknownNuclide)
	}

	return &c.nuclides[i], nil
}

// Index returns the positional matrix index of the named nuclide, or
// ErrUnknownNuclide.
func (c *Chain) Index(name string) (int, error) {
	i, ok := c.index[name]
	if !ok {
		return 0, fmt.Errorf("Index: %q: %w", name, ErrUnknownNuclide)
	}

	return i, nil
}

// Names returns a copy of the nuclide names in load (index) order.
func (c *Chain) Names() []string {
	out := make([]string, len(c.nuclides))
	for i := range c.nuclides {
		out[i] = c.nuclides[i].Name
	}

	return out
}

// ReactionKinds returns a copy of the distinct reaction-kind labels in
// first-seen document order.
func (c *Chain) ReactionKinds() []string {
	return append([]string(nil), c.reactionKinds...)
}

// Yields returns the fission yield table; nil when the chain carries none.
func (c *Chain) Yields() *FissionYields { return c.yields }

// FissionProducts returns the number of nuclides receiving fission yield.
func (c *Chain) FissionProducts() int {
	if c.yields == nil {
		return 0
	}

	return len(c.yields.Products)
}
