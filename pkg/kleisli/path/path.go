package path

import (
	"context"

	"github.com/ib-77/kleisli/pkg/kleisli"
)

// Then sequences f and g: for each b in f(in), every element of g(b),
// in emission order. Unlike the head pull in compose, Then yields the
// whole expansion; a fresh traversal restarts it from the beginning.
func Then[A, B, C any](f kleisli.Arrow[A, B], g kleisli.Arrow[B, C]) kleisli.Arrow[A, C] {
	return func(ctx context.Context, in A) kleisli.Seq[C] {
		return func(yield func(C) bool) {
			for b := range f(ctx, in) {
				for c := range g(ctx, b) {
					if !yield(c) {
						return
					}
				}
			}
		}
	}
}

// Branch yields everything f produces for in, then everything g
// produces. Neither arrow runs until the sequence is pulled, and g
// never runs when the consumer stops inside f's output.
func Branch[A, B any](f, g kleisli.Arrow[A, B]) kleisli.Arrow[A, B] {
	return func(ctx context.Context, in A) kleisli.Seq[B] {
		return func(yield func(B) bool) {
			for b := range f(ctx, in) {
				if !yield(b) {
					return
				}
			}
			for b := range g(ctx, in) {
				if !yield(b) {
					return
				}
			}
		}
	}
}

// Fix expands step transitively: every value reachable from in by 1 up
// to depth applications of step, depth-first and left-to-right. A
// depth of zero or less yields nothing.
//
// Step sequences must restart cleanly since backtracking re-scans them;
// callers dedupe themselves when the underlying graph has cycles.
func Fix[A any](step kleisli.Arrow[A, A], depth int) kleisli.Arrow[A, A] {
	return func(ctx context.Context, in A) kleisli.Seq[A] {
		return func(yield func(A) bool) {
			var walk func(a A, d int) bool
			walk = func(a A, d int) bool {
				if d <= 0 {
					return true
				}
				for b := range step(ctx, a) {
					if !yield(b) {
						return false
					}
					if !walk(b, d-1) {
						return false
					}
				}
				return true
			}
			walk(in, depth)
		}
	}
}
