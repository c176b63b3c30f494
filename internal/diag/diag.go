// Package diag is a minimal, opt-in tracer for fragment allocation and
// directory growth, in the style of standardbeagle/lci's internal/debug
// package: nil by default so it costs nothing on the hot path, and
// redirectable to any io.Writer when tuning a growth policy.
package diag

import (
	"fmt"
	"io"
	"sync"
)

var (
	mu  sync.Mutex
	out io.Writer
)

// SetOutput redirects diagnostic output. Pass nil to disable tracing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

func writer() io.Writer {
	mu.Lock()
	defer mu.Unlock()
	return out
}

// Enabled reports whether a diagnostic writer is currently configured.
func Enabled() bool {
	return writer() != nil
}

// Fragment traces allocation of a new fragment at the given index.
func Fragment(index, capacity int) {
	w := writer()
	if w == nil {
		return
	}
	fmt.Fprintf(w, "[splitvec] fragment %d allocated, capacity=%d\n", index, capacity)
}

// Directory traces a reallocation of the fragment directory itself
// (the slice of *Fragment[T] pointers, not the fragments' storage).
func Directory(oldSlots, newSlots int) {
	w := writer()
	if w == nil {
		return
	}
	fmt.Fprintf(w, "[splitvec] directory grown from %d to %d slots\n", oldSlots, newSlots)
}
