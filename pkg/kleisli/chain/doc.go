// Package chain provides a fluent wrapper for assembling arrow
// pipelines left to right.
//
// Key operations:
// - From: begin a pipeline from an arrow
// - Then: extend the pipeline with the next stage
// - Arrow: the assembled pipeline as a plain arrow
// - Expand: evaluate for one input, yielding the full expansion
// - Head: evaluate for one input and take only the first element
//
// Assembly is purely structural; no stage runs until the pipeline is
// evaluated.
package chain
