// Package kleisli provides the building blocks for multi-stage,
// backtracking-capable query pipelines: lazy pull-based sequences,
// duplicable cursors over shared immutable data, and arrows mapping one
// value to a sequence of values.
//
// Arrows compose; see the compose, path and chain subpackages for the
// composition operators. Nothing in this package materializes
// intermediate collections: a Seq produces values only while the
// consumer keeps pulling, and ranging over the same Seq again restarts
// it from the beginning.
package kleisli
