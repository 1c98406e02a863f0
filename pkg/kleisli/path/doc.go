// Package path provides the arrow combinators used to assemble path
// queries: sequencing, branching and bounded fixed-point expansion.
//
// Key operations:
// - Then: flat-map sequencing; every f output fans out through g
// - Branch: ordered union of two arrows over the same input
// - Fix: bounded transitive expansion of a step arrow, depth-first
//
// All three stay lazy: no arrow runs until the produced sequence is
// pulled, and early termination by the consumer stops everything
// upstream.
package path
