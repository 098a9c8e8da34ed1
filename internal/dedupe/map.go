package dedupe

import "runtime/debug"

// MapBackend tracks seen elements in an in-memory set. It reports only
// membership, not order: callers that need first-seen order (the dafsa
// compiler's byte-identical-repeat-run requirement) must track it
// themselves, since Go randomizes map-iteration order on every range.
type MapBackend struct {
	storage map[string]struct{}
}

func NewMapBackend() *MapBackend {
	return &MapBackend{storage: map[string]struct{}{}}
}

// Insert reports whether elem is new (false if already inserted).
func (m *MapBackend) Insert(elem string) bool {
	if _, ok := m.storage[elem]; ok {
		return false
	}
	m.storage[elem] = struct{}{}
	return true
}

func (m *MapBackend) Cleanup() {
	m.storage = nil
	// By default GC doesnot release buffered/allocated memory
	// since there always is possibilitly of needing it again/immediately
	// and releases memory in chunks
	// debug.FreeOSMemory forces GC to release allocated memory at once
	debug.FreeOSMemory()
}
