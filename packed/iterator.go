package packed

// Iterator is a one-shot, ascending, read-only traversal over a Vector.
// It is invalidated by any mutation of the Vector; create a new one with
// Vector.Iter to traverse again.
type Iterator[T any] struct {
	vec    *Vector[T]
	cursor int
}

// Next returns the next element and true, or the zero value and false once
// all elements have been produced.
func (it *Iterator[T]) Next() (T, bool) {
	if it.cursor >= it.vec.Len() {
		var zero T
		return zero, false
	}

	value := it.vec.codec.FromRaw(it.vec.at(it.cursor))
	it.cursor++
	return value, true
}
