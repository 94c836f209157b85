// Package cache provides a content addressed store for computed Groebner
// bases: SystemKey derives a key from the generator set, the coefficient
// field, the variable list and the monomial order, and MarshalBasis /
// UnmarshalBasis translate bases to compact self describing blobs. A Store
// holds blobs in memory and dumps or restores them as a single versioned
// envelope.
package cache

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/blang/semver/v4"
	"github.com/fxamacker/cbor/v2"

	"github.com/consensys/groebner"
	"github.com/consensys/groebner/logger"
)

// ErrVersionMismatch is returned by ReadFrom when the dump was produced by
// an incompatible library version.
var ErrVersionMismatch = errors.New("cache: incompatible dump version")

// Store is an in-memory basis cache, safe for concurrent use. The zero
// value is not usable; call NewStore.
type Store struct {
	mu      sync.RWMutex
	entries map[string][]byte

	hits   atomic.Uint64
	misses atomic.Uint64
}

func NewStore() *Store {
	return &Store{entries: make(map[string][]byte)}
}

// Get returns the blob stored under key. The returned slice is shared with
// the store; callers must not modify it.
func (s *Store) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	blob, ok := s.entries[key]
	s.mu.RUnlock()
	if ok {
		s.hits.Add(1)
	} else {
		s.misses.Add(1)
	}
	return blob, ok
}

// Put stores blob under key, replacing any previous entry.
func (s *Store) Put(key string, blob []byte) {
	s.mu.Lock()
	s.entries[key] = blob
	s.mu.Unlock()
}

// Len returns the number of cached entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Stats returns how many Get calls hit and missed since the store was
// created.
func (s *Store) Stats() (hits, misses uint64) {
	return s.hits.Load(), s.misses.Load()
}

// storeDump is the cbor envelope of a serialized store. Version records the
// library version that produced the dump.
type storeDump struct {
	Version string
	Entries map[string][]byte
}

// WriteTo dumps the store contents. The encoding is deterministic: two
// stores holding the same entries serialize to the same bytes.
func (s *Store) WriteTo(w io.Writer) (int64, error) {
	d := storeDump{
		Version: groebner.Version.String(),
		Entries: make(map[string][]byte, s.Len()),
	}
	s.mu.RLock()
	for k, v := range s.entries {
		d.Entries[k] = v
	}
	s.mu.RUnlock()

	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return 0, err
	}
	data, err := enc.Marshal(d)
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// ReadFrom merges a dump produced by WriteTo into the store, overwriting
// entries with the same key. Dumps from a different major version are
// rejected with ErrVersionMismatch; a minor or patch skew only logs a
// warning, keys are content addressed and stay valid across those.
func (s *Store) ReadFrom(r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return int64(len(data)), err
	}
	dec, err := cbor.DecOptions{
		MaxArrayElements: 2147483647,
		MaxMapPairs:      2147483647,
	}.DecMode()
	if err != nil {
		return int64(len(data)), err
	}
	var d storeDump
	if err := dec.Unmarshal(data, &d); err != nil {
		return int64(len(data)), fmt.Errorf("cache: decoding dump: %w", err)
	}
	dumpVersion, err := semver.Parse(d.Version)
	if err != nil {
		return int64(len(data)), fmt.Errorf("cache: parsing dump version: %w", err)
	}
	if dumpVersion.Major != groebner.Version.Major {
		return int64(len(data)), fmt.Errorf("%w: dump %s, library %s", ErrVersionMismatch, dumpVersion, groebner.Version)
	}
	if dumpVersion.Compare(groebner.Version) != 0 {
		log := logger.Logger()
		log.Warn().Str("dump", dumpVersion.String()).Str("library", groebner.Version.String()).Msg("cache dump produced by a different library version")
	}

	s.mu.Lock()
	for k, v := range d.Entries {
		s.entries[k] = v
	}
	s.mu.Unlock()
	return int64(len(data)), nil
}
