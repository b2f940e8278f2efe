// Package lazyseq implements the memoizing lazy-sequence cell and its
// constructors: Cons, Delay, Corec and FromSlice.
//
// A Seq[T] value is a single cell of a linked stream. Each cell holds
// either a suspended step (not yet forced) or the cached result of that
// step (forced). The nil *Seq[T] is the empty sequence.
//
// Invariant:
//
//	After the first Force, a cell's step is discarded and (head, tail, ok)
//	are fixed for the cell's lifetime. Forcing is therefore idempotent and
//	side effects inside generator closures run at most once per cell.
package lazyseq

// Seq is one cell of a lazy, possibly infinite sequence of T.
//
// The zero-value *Seq[T] (i.e. nil) is the empty sequence. Non-nil cells
// are created by Cons, Delay, Corec, FromSlice or the combinators in this
// package; the struct fields are deliberately unexported so that the
// memoization discipline cannot be bypassed.
type Seq[T any] struct {
	step func() (T, *Seq[T], bool) // suspended computation; nil once forced
	head T                         // cached head, valid when step == nil && some
	tail *Seq[T]                   // cached tail, valid when step == nil && some
	some bool                      // cached emptiness flag, valid when step == nil
}

// Cons builds a sequence from a strict head and a deferred tail.
// The tail thunk is not invoked until the returned cell's tail is forced.
//
// Passing a nil tail thunk yields a single-element sequence.
func Cons[T any](head T, tail func() *Seq[T]) *Seq[T] {
	return &Seq[T]{step: func() (T, *Seq[T], bool) {
		if tail == nil {
			return head, nil, true
		}

		return head, tail(), true
	}}
}

// Empty returns the empty sequence of T (the nil cell).
func Empty[T any]() *Seq[T] { return nil }

// Delay wraps a sequence-producing thunk so the decision of what the
// sequence even is happens lazily. Forcing the returned cell forces the
// thunk's result by exactly one step.
func Delay[T any](thunk func() *Seq[T]) *Seq[T] {
	return &Seq[T]{step: func() (T, *Seq[T], bool) {
		return thunk().Force()
	}}
}

// Corec builds a sequence corecursively from a seed and a step function.
// Each element re-invokes step on the threaded state:
//
//	step(seed) = (element, nextSeed, true)  — emit element, continue
//	step(seed) = (_, _, false)              — end of sequence
//
// The sequence is infinite whenever step never returns false.
func Corec[S, T any](seed S, step func(S) (T, S, bool)) *Seq[T] {
	return &Seq[T]{step: func() (T, *Seq[T], bool) {
		v, next, ok := step(seed)
		if !ok {
			var zero T

			return zero, nil, false
		}

		return v, Corec(next, step), true
	}}
}

// FromSlice builds a finite sequence over the elements of vs, in order.
// The slice is captured by reference; callers must not mutate it afterwards.
func FromSlice[T any](vs []T) *Seq[T] {
	return Corec(0, func(i int) (T, int, bool) {
		if i >= len(vs) {
			var zero T

			return zero, 0, false
		}

		return vs[i], i + 1, true
	})
}

// Force destructs the sequence by exactly one step.
//
// Returns (head, tail, true) when an element is available, or
// (zero, nil, false) when the sequence is exhausted. Forcing an already
// exhausted (or nil) sequence is harmless and keeps returning ok=false.
//
// The underlying step runs at most once per cell; subsequent calls return
// the memoized result.
func (s *Seq[T]) Force() (T, *Seq[T], bool) {
	if s == nil {
		var zero T

		return zero, nil, false
	}
	if s.step != nil {
		s.head, s.tail, s.some = s.step()
		s.step = nil // release the closure; the cell is now a plain pair
	}

	return s.head, s.tail, s.some
}

// IsEmpty forces one step and reports whether the sequence is exhausted.
func (s *Seq[T]) IsEmpty() bool {
	_, _, ok := s.Force()

	return !ok
}
