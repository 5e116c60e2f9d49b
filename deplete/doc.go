// Package deplete assembles, per material region, the sparse transmutation
// operator of the Bateman equations from a shared read-only chain.Chain and
// externally supplied reaction rates.
//
// Assemble is a pure function of its two inputs: entry (k, i) of the result
// is the atom-flow coefficient from nuclide i into nuclide k per unit time,
// diagonals carry the total loss rate. Accumulation is additive in document
// order, so identical inputs produce bit-identical matrices — a requirement
// for regression testing against reference integrators.
//
// AssembleBatch is the single concurrency boundary: regions are independent
// (they share only the frozen Chain), so it fans Assemble out over a bounded
// worker pool and gathers results in region order. One failing region fails
// the whole batch — no partial time-step state is safe to hand to the
// integrator.
//
// The fission-yield lookup uses a fixed reference energy point (index 0)
// regardless of the regional spectrum — a deliberate simplification that
// regression baselines depend on; do not "fix" it here.
package deplete
