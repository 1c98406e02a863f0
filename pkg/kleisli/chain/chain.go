package chain

import (
	"context"

	"github.com/ib-77/kleisli/pkg/kleisli"
	"github.com/ib-77/kleisli/pkg/kleisli/compose"
)

// Pipeline wraps an arrow to enable fluent left-to-right assembly.
type Pipeline[A, B any] struct {
	arrow kleisli.Arrow[A, B]
}

// From begins a pipeline at f.
func From[A, B any](f kleisli.Arrow[A, B]) *Pipeline[A, B] {
	return &Pipeline[A, B]{arrow: f}
}

// Then extends p with the next stage. Package-level because the output
// element type changes.
func Then[A, B, C any](p *Pipeline[A, B], g kleisli.Arrow[B, C]) *Pipeline[A, C] {
	return &Pipeline[A, C]{arrow: compose.Compose(p.arrow, g).Arrow()}
}

// Arrow returns the assembled pipeline.
func (p *Pipeline[A, B]) Arrow() kleisli.Arrow[A, B] {
	return p.arrow
}

// Expand evaluates the pipeline for in, yielding the full expansion.
func (p *Pipeline[A, B]) Expand(ctx context.Context, in A) kleisli.Seq[B] {
	return p.arrow(ctx, in)
}

// Head evaluates the pipeline for in and returns the first element, or
// false when the pipeline produces nothing for in. Stages past the
// first element never run.
func (p *Pipeline[A, B]) Head(ctx context.Context, in A) (B, bool) {
	return kleisli.Head(p.arrow(ctx, in))
}
