package dedupe

import (
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/hmap/store/hybrid"
)

// LevelDBBackend tracks seen elements on disk, for dictionaries too large
// to hold as an in-memory set. Like MapBackend it reports only membership;
// the caller is responsible for preserving first-seen order.
type LevelDBBackend struct {
	storage *hybrid.HybridMap
}

func NewLevelDBBackend() *LevelDBBackend {
	l := &LevelDBBackend{}
	db, err := hybrid.New(hybrid.DefaultDiskOptions)
	if err != nil {
		gologger.Fatal().Msgf("failed to create temp dir for dafsa dedupe got: %v", err)
	}
	l.storage = db
	return l
}

// Insert reports whether elem is new (false if already inserted).
func (l *LevelDBBackend) Insert(elem string) bool {
	if _, ok := l.storage.Get(elem); ok {
		return false
	}
	if err := l.storage.Set(elem, nil); err != nil {
		gologger.Error().Msgf("dedupe: leveldb: got %v while writing %v", err, elem)
	}
	return true
}

func (l *LevelDBBackend) Cleanup() {
	_ = l.storage.Close()
}
