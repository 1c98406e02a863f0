package compose

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/kleisli/pkg/kleisli"
)

// Composed is an immutable pairing of two arrows whose element types
// line up. Building one never invokes either arrow; evaluation starts
// only when the pair is applied to an input and pulled.
type Composed[A, B, C any] struct {
	id        uuid.UUID
	createdAt time.Time
	f         kleisli.Arrow[A, B]
	g         kleisli.Arrow[B, C]
}

// Compose pairs f and g. Purely structural: no arrow is invoked and no
// element is computed at build time.
func Compose[A, B, C any](f kleisli.Arrow[A, B], g kleisli.Arrow[B, C]) Composed[A, B, C] {
	return Composed[A, B, C]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		f:         f,
		g:         g,
	}
}

func (k Composed[A, B, C]) Id() uuid.UUID {
	return k.id
}

// CreatedAt time of pairing (UTC).
func (k Composed[A, B, C]) CreatedAt() time.Time {
	return k.createdAt
}

// Arrow returns the pair as a plain arrow with full flattening
// semantics, so composed pairs can themselves be composed into deeper
// pipelines. Both association orders of three arrows expand to the
// same sequence.
func (k Composed[A, B, C]) Arrow() kleisli.Arrow[A, C] {
	return func(ctx context.Context, in A) kleisli.Seq[C] {
		return Expand(ctx, k, in)
	}
}

// Apply binds one input value to the pair. The value is stored by copy;
// inputs are expected to be cheaply duplicable since evaluation
// re-supplies the same value on every pull.
func Apply[A, B, C any](k Composed[A, B, C], in A) *Applied[A, B, C] {
	return &Applied[A, B, C]{in: in, k: k}
}

// Applied is the evaluation of a composed pair against one input. It
// holds nothing beyond the input value and the pair it came from.
type Applied[A, B, C any] struct {
	in A
	k  Composed[A, B, C]
}

// Next produces the head of the flattened expansion: each f output is
// fed through g, depth-first and left-to-right, and the first element
// encountered is returned. false means the whole expansion is empty.
//
// Next keeps no cursor between calls. Every call re-runs f(in), feeds g
// again and takes the head again, so repeated calls return the same
// element forever and re-run any side effects the arrows carry. Use
// Expand to walk past the head.
func (ap *Applied[A, B, C]) Next(ctx context.Context) (C, bool) {
	for b := range ap.k.f(ctx, ap.in) {
		for c := range ap.k.g(ctx, b) {
			return c, true
		}
	}
	var zero C
	return zero, false
}

// Expand returns the full flattened expansion of the pair for in: for
// each b in f(in), every element of g(b), in emission order. The
// sequence is lazy and restartable; each traversal re-invokes the
// arrows from scratch.
func Expand[A, B, C any](ctx context.Context, k Composed[A, B, C], in A) kleisli.Seq[C] {
	return func(yield func(C) bool) {
		for b := range k.f(ctx, in) {
			for c := range k.g(ctx, b) {
				if !yield(c) {
					return
				}
			}
		}
	}
}
