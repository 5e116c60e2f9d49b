// Package bateman models nuclide transmutation networks for fuel
// burnup/depletion calculations and assembles, per material region, the
// sparse linear operator of the Bateman equations.
//
// What lives here:
//
//	chain/    — immutable depletion-chain aggregate: nuclides, decay and
//	            reaction paths, neutron-induced fission yield table
//	chainxml/ — loader for the hierarchical XML chain description
//	sparse/   — additive (row,col) accumulation builder frozen into an
//	            immutable CSR matrix
//	deplete/  — per-region transmutation-matrix assembly plus an
//	            embarrassingly-parallel batch coordinator
//
// The transport solve that produces reaction rates and the
// matrix-exponential integrators that consume the assembled operators are
// external collaborators; this module only promises them a stable
// nuclide↔index mapping and one frozen matrix per region per instant.
//
// Guarantees:
//
//   - Deterministic: identical chain + rates yield bit-identical matrices.
//   - A Chain is read-only after load and safe for concurrent assemblers.
//   - Fail-fast sentinel errors everywhere; no partial chains, no partial
//     batches.
//
//	go get github.com/katalvlaran/bateman
package bateman
