// Package mseries is your in-memory toolkit for building and combining
// lazy asymptotic expansions — from the corecursive sequence primitive
// to multiplicative inversion of nested multiseries.
//
// 🚀 What is mseries?
//
//	A small, pure-Go library that represents the growth behaviour of a
//	real-valued function as a nested, demand-driven expansion over an
//	ordered basis of comparison scales (x, log x, …), and gives you the
//	algebra to work with such expansions:
//	  • Lazy sequences: corecursive, possibly infinite, memoized streams
//	  • Multiseries: nested (exponent, coefficient) expansions per basis level
//	  • Algebra: Add, Mul, MulMonomial, Pow, Neg, Sub
//	  • Canonical form: Trim (drop leading zero terms, recursively)
//	  • Composition: Apply (power-series substitution) and Invert
//
// ✨ Why choose mseries?
//
//   - Exact arithmetic – decimal coefficients, so "is this zero?" is decidable
//   - Lazy to the core – infinite expansions cost only what you force
//   - Ordered by construction – every operation preserves strictly
//     decreasing exponents, the invariant the whole algebra rests on
//   - Pure Go – no cgo, no I/O, no goroutines
//
// Under the hood, everything is organized under two subpackages:
//
//	lazyseq/ — generic lazy, potentially infinite sequences (Cons, Corec, Map, Take)
//	mseries/ — Basis, PreMS, the algebra and its canonical form
//
// Quick ASCII example (basis = [x]):
//
//	(x + 2) * 3x  =  3x² + 6x
//
//	expansions are streams of (exponent, coefficient) terms,
//	largest exponent first: [(2, 3), (1, 6)].
//
// Dive into each package's doc.go for contracts, complexity notes and
// worked examples.
//
//	go get github.com/katalvlaran/mseries
package mseries
