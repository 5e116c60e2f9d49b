package chainxml

import "errors"

// Sentinel errors for chain description loading. Referential failures
// (dangling targets, duplicate names, bad yield axes) surface as the chain
// package sentinels wrapped by Load.
var (
	// ErrSyntax indicates the document is not well-formed XML.
	ErrSyntax = errors.New("chainxml: malformed XML")

	// ErrNoDecayBlock indicates the decay_constants section is absent.
	ErrNoDecayBlock = errors.New("chainxml: missing decay_constants section")

	// ErrNoYieldBlock indicates the neutron_fission_yields section is absent.
	ErrNoYieldBlock = errors.New("chainxml: missing neutron_fission_yields section")

	// ErrMissingAttr indicates a required attribute or scalar is absent.
	ErrMissingAttr = errors.New("chainxml: missing required attribute")

	// ErrBadNumber indicates a numeric attribute or list entry failed to parse.
	ErrBadNumber = errors.New("chainxml: malformed number")

	// ErrPathCount indicates declared decay_modes/reactions disagree with the
	// number of child path entries present.
	ErrPathCount = errors.New("chainxml: declared path count mismatch")

	// ErrYieldShape indicates a yield list whose length disagrees with the
	// declared product/precursor/energy counts.
	ErrYieldShape = errors.New("chainxml: yield block shape mismatch")

	// ErrUnknownEnergy indicates a fission_yields table keyed by an energy
	// absent from the declared energy list.
	ErrUnknownEnergy = errors.New("chainxml: energy not in energy list")
)
