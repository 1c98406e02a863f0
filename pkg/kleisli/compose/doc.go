// Package compose pairs two sequence arrows into a single composed
// arrow and evaluates the pair against concrete inputs.
//
// Key operations:
// - Compose: pair f (A -> Seq[B]) with g (B -> Seq[C]); nothing runs at build time
// - Apply: bind one input value to a composed pair for pulling
// - Applied.Next: stateless head pull; every call re-runs f and g from
//   scratch and returns the first element of the flattened expansion
// - Expand: the full flattened expansion as a lazy sequence
// - Composed.Arrow: the pair as a plain arrow for further composition
//
// Next and Expand are deliberately distinct: Next never advances past
// the head, Expand walks everything. Pick by name, the behaviors do not
// mix.
package compose
