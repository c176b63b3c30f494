// Package splitvec implements a segmented, pinned-in-memory dynamic
// sequence container.
//
// Unlike a standard growable slice, which reallocates and relocates
// every element when it outgrows its backing array, SplitVec stores
// its elements across a sequence of separately allocated fragments.
// Growth is achieved by appending new fragments, never by moving
// existing elements: once an element has been placed at a flat index,
// a pointer obtained by indexing at that position remains valid for as
// long as the element is not removed, regardless of later growth. This
// pinning property is what makes it safe to build self-referential
// structures (trees, graphs, arenas) on top of index- or
// pointer-based references into the container.
//
// The container is polymorphic over its growth policy (package
// growth): Linear, Doubling and Recursive trade off constant-time
// index resolution against zero-copy external append. Multi-fragment
// algorithms (package algorithms) provide binary search and in-place
// sort that respect the jagged fragment layout without flattening it.
// Package concurrent exposes a pinned backing store for concurrent
// producers, and package coniter a position-reserving iterator
// adapter suited to work-stealing consumers.
package splitvec
