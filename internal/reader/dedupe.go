package reader

import "github.com/projectdiscovery/dafsa/internal/dedupe"

// MaxInMemoryDedupeSize is the threshold, in summed line bytes, above which
// the reader falls back to the on-disk dedupe backend instead of an
// in-memory map (default: 100 MB).
var MaxInMemoryDedupeSize = 100 * 1024 * 1024

// DedupeBackend records whether an element has already been seen, using a
// size-appropriate storage strategy. It reports membership only: it is not
// a source of iteration order, since a DAFSA's node and offset emission
// order depends on word order, and compiling the same dictionary twice
// must produce the same byte array both times.
type DedupeBackend interface {
	// Insert reports whether elem is new (false if already inserted).
	Insert(elem string) bool
	Cleanup()
}

func newDedupeBackend(estimatedBytes int) DedupeBackend {
	if estimatedBytes <= MaxInMemoryDedupeSize {
		return dedupe.NewMapBackend()
	}
	return dedupe.NewLevelDBBackend()
}

// dedupeLines removes duplicate lines from lines, preserving the order in
// which each distinct line first appears. Node and offset emission order
// (and therefore the compiled byte array) depends on word order, so
// deduping must stay deterministic and stable across repeat runs of the
// same input rather than replaying whatever order a backend happens to
// iterate in.
func dedupeLines(lines []string) []string {
	estimated := 0
	for _, l := range lines {
		estimated += len(l)
	}

	backend := newDedupeBackend(estimated)
	defer backend.Cleanup()

	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if backend.Insert(l) {
			out = append(out, l)
		}
	}
	return out
}
