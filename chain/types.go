package chain

import "errors"

// Sink is the sentinel target meaning the product of a path is deliberately
// untracked: the atoms leave the system. Used to truncate chains for
// debugging; assembly adds loss without a matching gain.
const Sink = "Nothing"

// ReactionFission is the reaction kind whose products come from the fission
// yield table instead of a single target nuclide.
const ReactionFission = "fission"

// Sentinel errors for chain construction and lookup.
var (
	// ErrUnknownNuclide indicates a lookup referenced a name absent from the chain.
	ErrUnknownNuclide = errors.New("chain: unknown nuclide")

	// ErrUnknownPrecursor indicates a fissioning nuclide is not listed among
	// the yield table precursors.
	ErrUnknownPrecursor = errors.New("chain: unknown fission precursor")

	// ErrDuplicateNuclide indicates two nuclide entries share the same name.
	ErrDuplicateNuclide = errors.New("chain: duplicate nuclide name")

	// ErrUnknownTarget indicates a decay or reaction path references a
	// nuclide name absent from the chain.
	ErrUnknownTarget = errors.New("chain: path target not in chain")

	// ErrUnknownProduct indicates a fission product or precursor in the yield
	// table references a nuclide name absent from the chain.
	ErrUnknownProduct = errors.New("chain: yield nuclide not in chain")

	// ErrNegativeYield indicates a negative fission-yield fraction.
	ErrNegativeYield = errors.New("chain: negative fission yield")

	// ErrYieldShape indicates yield data whose size disagrees with the
	// product/energy/precursor axes.
	ErrYieldShape = errors.New("chain: yield data shape mismatch")
)

// DecayMode is one possible radioactive decay transformation.
//
// Target is the daughter nuclide name, or Sink for an untracked product.
// Branch is the branching ratio for this mode. Branch values across a
// nuclide are intentionally NOT required to sum to 1: truncated chains lose
// mass by design and must not be renormalized.
type DecayMode struct {
	// Target is the daughter nuclide name, or Sink.
	Target string

	// Kind labels the decay ("beta-", "alpha", "ec", ...). Informational;
	// assembly treats all kinds alike.
	Kind string

	// Branch is the branching ratio of this mode.
	Branch float64
}

// ReactionPath is one possible radiation-induced transformation. Its rate is
// supplied externally per material region, aligned by position.
//
// For Kind == ReactionFission the Target is empty: losses under this path
// feed the fission yield distribution, not a single product.
type ReactionPath struct {
	// Kind labels the rate channel ("(n,gamma)", ReactionFission, ...).
	Kind string

	// Target is the product nuclide name, Sink for an untracked product,
	// or "" when Kind is ReactionFission.
	Target string
}

// Nuclide holds one isotope's decay and reaction metadata.
//
// HalfLife is in seconds and meaningful only when len(Decay) > 0; a stable
// nuclide keeps it at zero. YieldIndex is the nuclide's row in the fission
// product axis of the yield table, or -1 when it receives no yield.
type Nuclide struct {
	// Name uniquely identifies the nuclide within its Chain.
	Name string

	// HalfLife in seconds; set only when decay paths exist.
	HalfLife float64

	// Decay lists the decay modes in document order.
	Decay []DecayMode

	// Reactions lists the reaction paths in document order. Externally
	// supplied rate sequences align positionally with this slice.
	Reactions []ReactionPath

	// FissionQ is the recoverable energy per fission in eV, recorded from
	// the fission reaction path. Zero for non-fissile nuclides. Consumed by
	// external power-normalization collaborators, not by assembly.
	FissionQ float64

	// YieldIndex is the position of this nuclide in the yield table product
	// axis, or -1 when absent from it.
	YieldIndex int
}
