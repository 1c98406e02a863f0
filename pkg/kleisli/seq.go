package kleisli

// Seq is a lazy, pull-based sequence of values in the range-over-func
// shape: iteration calls the function with a yield callback and stops
// as soon as yield returns false.
//
// A Seq is restartable: ranging over the same value again re-runs the
// closure from the beginning. Sequences built over shared data must not
// mutate it, so independent traversals cannot observe each other.
type Seq[T any] func(yield func(T) bool)

// Of returns a sequence yielding the given items in order.
func Of[T any](items ...T) Seq[T] {
	return FromSlice(items)
}

// FromSlice returns a sequence over the elements of in.
func FromSlice[T any](in []T) Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range in {
			if !yield(item) {
				return
			}
		}
	}
}

// Empty returns a sequence that yields nothing.
func Empty[T any]() Seq[T] {
	return func(yield func(T) bool) {}
}

// Filter yields only the values of s for which predicate returns true.
func Filter[T any](s Seq[T], predicate func(T) bool) Seq[T] {
	return func(yield func(T) bool) {
		for v := range s {
			if predicate(v) {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Map transforms each value of s using fn.
func Map[In, Out any](s Seq[In], fn func(In) Out) Seq[Out] {
	return func(yield func(Out) bool) {
		for v := range s {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// Concat yields all values of each sequence, in argument order.
func Concat[T any](seqs ...Seq[T]) Seq[T] {
	return func(yield func(T) bool) {
		for _, s := range seqs {
			for v := range s {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Head returns the first value of s, or false when s is empty. Only the
// first element is computed.
func Head[T any](s Seq[T]) (T, bool) {
	for v := range s {
		return v, true
	}
	var zero T
	return zero, false
}

// Collect materializes s into a slice.
func Collect[T any](s Seq[T]) []T {
	var out []T
	for v := range s {
		out = append(out, v)
	}
	return out
}
