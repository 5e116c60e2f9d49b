// Package sparse provides the sparse-matrix kernel used by transmutation
// operator assembly: an additive accumulation Builder keyed by (row, col),
// frozen exactly once into an immutable compressed sparse row (CSR) matrix.
//
// The split mirrors how the operators are produced: assembly scatters a
// handful of coefficients per column (diagonal loss plus one entry per
// decay/reaction target, or one per fission product), then downstream
// exponentiation wants fast row access over a frozen structure.
//
// Determinism: Compress orders entries by (row, col) regardless of insertion
// order, so identical accumulation sequences produce bit-identical matrices.
//
// Matrices are best kept in CSR here; a Dense export exists for tests and
// debugging only — a depletion network touches O(1) targets per nuclide and
// dense storage would be quadratic waste.
package sparse
