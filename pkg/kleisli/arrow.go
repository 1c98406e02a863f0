package kleisli

import "context"

// Arrow maps one input value to a lazy sequence of output values.
// Arrows may capture and mutate state across calls; the composition
// operators never inspect them, only invoke them. The context is handed
// through to the arrow on every invocation, untouched.
//
// Inputs are re-supplied to arrows when a sub-sequence restarts during
// backtracking, so In should be cheap to copy. Any sequence an arrow
// captures that gets consumed more than once must restart independently
// (see Cursor); the operators assume this rather than enforce it.
type Arrow[In, Out any] func(ctx context.Context, in In) Seq[Out]

// Lift turns a pure function into an arrow yielding exactly one value.
func Lift[In, Out any](fn func(In) Out) Arrow[In, Out] {
	return func(_ context.Context, in In) Seq[Out] {
		return Of(fn(in))
	}
}

// Const returns an arrow that ignores its input and yields the given
// values.
func Const[In, Out any](values ...Out) Arrow[In, Out] {
	return func(_ context.Context, _ In) Seq[Out] {
		return FromSlice(values)
	}
}
