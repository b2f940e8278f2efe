// Package lazyseq provides generic, demand-driven, potentially infinite
// sequences built from corecursive generators.
//
// 🚀 What is a lazy sequence?
//
//	A Seq[T] is conceptually Option<(head T, tail Seq[T])>, produced on
//	demand: nothing is computed until Force is called, and Force performs
//	exactly one step. Sequences may be infinite — consumers decide how
//	much to materialize. It's the stream primitive underlying the
//	multiseries algebra in package mseries, and is useful on its own for:
//	  • Formal power series and generating functions
//	  • Search frontiers and enumeration problems
//	  • Any producer whose full extent is unknown or unbounded
//
// ✨ Key guarantees:
//   - Memoized forcing – each cell's suspended step runs at most once;
//     re-forcing a cell returns the cached (head, tail) pair
//   - Nil is empty – the nil *Seq[T] is the canonical empty sequence,
//     and forcing it (or any exhausted sequence) yields ok=false, never
//     an error or panic
//   - Pure values – forcing never mutates shared structure observably;
//     every tail is a fresh cell owned by its parent
//   - Single-threaded – evaluation is cooperative pull; no goroutines,
//     no locks. Do not Force one cell from multiple goroutines.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/mseries/lazyseq"
//
//	// 1, -1, 1, -1, ... forever
//	signs := lazyseq.Corec(false, func(neg bool) (int, bool, bool) {
//	    if neg {
//	        return -1, false, true
//	    }
//	    return 1, true, true
//	})
//	first5 := lazyseq.Take(signs, 5) // [1 -1 1 -1 1]
//
// Termination:
//
//   - Take(s, n) performs at most n forcing steps and is total on any
//     input, finite or infinite.
//   - Every other consumer terminates only if the sequence (or the
//     consumer's own bound) does; walking an infinite sequence to the
//     end does not.
//
// Complexity:
//
//   - Force: O(1) amortized per element (one step invocation, memoized)
//   - Take/Drop: O(n) forcing steps
//   - Map/Concat: O(1) to build, O(1) extra per forced element
package lazyseq
