package kleisli

// Cursor is a duplicable position over an immutable data source.
// Clone returns an independent cursor at the same position; advancing
// one never affects the other. Cursors exist for backtracking
// consumers that scan the same source more than once, without copying
// or mutating the underlying data.
type Cursor[T any] interface {
	// Next returns the value under the cursor and advances, or false
	// when the cursor is exhausted.
	Next() (T, bool)
	// Clone duplicates the cursor at its current position.
	Clone() Cursor[T]
}

type sliceCursor[T any] struct {
	items []T
	pos   int
}

// NewSliceCursor returns a Cursor over items. The slice is shared, not
// copied; callers must not mutate it while cursors over it are live.
func NewSliceCursor[T any](items []T) Cursor[T] {
	return &sliceCursor[T]{items: items}
}

func (c *sliceCursor[T]) Next() (T, bool) {
	if c.pos >= len(c.items) {
		var zero T
		return zero, false
	}
	v := c.items[c.pos]
	c.pos++
	return v, true
}

func (c *sliceCursor[T]) Clone() Cursor[T] {
	return &sliceCursor[T]{items: c.items, pos: c.pos}
}

// FromCursor adapts a cursor to a Seq. Every traversal walks its own
// clone, so the sequence restarts from c's current position without
// draining c itself.
func FromCursor[T any](c Cursor[T]) Seq[T] {
	return func(yield func(T) bool) {
		cur := c.Clone()
		for v, ok := cur.Next(); ok; v, ok = cur.Next() {
			if !yield(v) {
				return
			}
		}
	}
}
