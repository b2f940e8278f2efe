// Combinators over Seq: bounded extraction (Take, Drop) and lazy
// element-wise / structural transforms (Map, Concat, Repeat).
//
// All combinators build their result in O(1) and defer real work to
// forcing time. Only Take and Drop perform forcing themselves, and both
// are bounded by their n argument, so they are total on infinite input.
package lazyseq

// Take materializes at most n leading elements of s into a slice.
//
// Performs at most n forcing steps, so it terminates on any sequence,
// finite or infinite (the only consumer in this package with that
// unconditional guarantee). n <= 0 yields an empty (nil) slice.
func Take[T any](s *Seq[T], n int) []T {
	var out []T
	var (
		head T
		ok   bool
	)
	for i := 0; i < n; i++ {
		head, s, ok = s.Force()
		if !ok {
			break
		}
		out = append(out, head)
	}

	return out
}

// Drop skips at most n leading elements of s and returns the remainder.
// Dropping past the end returns the empty sequence. Forcing is performed
// eagerly, n steps at most.
func Drop[T any](s *Seq[T], n int) *Seq[T] {
	var ok bool
	for i := 0; i < n; i++ {
		_, s, ok = s.Force()
		if !ok {
			return nil
		}
	}

	return s
}

// Map returns the sequence of f applied to each element of s, lazily.
// f is invoked once per forced element, at forcing time.
func Map[T, U any](s *Seq[T], f func(T) U) *Seq[U] {
	return &Seq[U]{step: func() (U, *Seq[U], bool) {
		head, tail, ok := s.Force()
		if !ok {
			var zero U

			return zero, nil, false
		}

		return f(head), Map(tail, f), true
	}}
}

// Concat returns a followed by b. The switch-over to b is decided lazily,
// only when a is exhausted; if a is infinite, b is never forced.
func Concat[T any](a, b *Seq[T]) *Seq[T] {
	return &Seq[T]{step: func() (T, *Seq[T], bool) {
		head, tail, ok := a.Force()
		if !ok {
			return b.Force()
		}

		return head, Concat(tail, b), true
	}}
}

// Repeat returns the infinite constant sequence v, v, v, …
func Repeat[T any](v T) *Seq[T] {
	return Corec(struct{}{}, func(s struct{}) (T, struct{}, bool) {
		return v, s, true
	})
}
