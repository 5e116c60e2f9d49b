// Package chain defines the depletion-chain aggregate: Nuclide decay and
// reaction metadata, the neutron-induced FissionYields table, and the Chain
// that binds them behind a stable name↔index mapping.
//
// A Chain is built once (normally by chainxml.Load), validated for
// referential integrity at construction, and immutable afterward. Every
// concurrent matrix assembler shares the same Chain by read-only reference;
// no locking is needed because no writes ever occur post-construction.
//
// Index assignment is positional: a nuclide's matrix row/column index is its
// position in the load-order list, stable for the Chain's lifetime.
//
// Errors:
//
//	ErrUnknownNuclide   - lookup by a name absent from the chain.
//	ErrUnknownPrecursor - fissioning nuclide absent from the yield table.
//	ErrDuplicateNuclide - two nuclides share one name (malformed input).
//	ErrUnknownTarget    - a decay/reaction path names a missing nuclide.
//	ErrUnknownProduct   - a yield product names a missing nuclide.
//	ErrNegativeYield    - the yield table holds a negative fraction.
//	ErrYieldShape       - yield data dimensions disagree with the axes.
package chain
