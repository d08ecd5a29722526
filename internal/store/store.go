package store

import "sync"

// Record is a replicated write. Once stamped with a generation it is
// immutable; it lives in the pending set until quorum acknowledgment
// promotes it, or a discard drops it.
type Record struct {
	ID         string
	Payload    []byte
	Generation uint64
}

type Store struct {
	mu        sync.RWMutex
	committed map[string]Record
	pending   map[string]Record
}

func NewStore() *Store {
	return &Store{
		committed: make(map[string]Record),
		pending:   make(map[string]Record),
	}
}

// StagePending registers a record awaiting quorum acknowledgment.
func (s *Store) StagePending(rec Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[rec.ID] = rec
}

// Promote moves a pending record into the committed set. Returns false if
// the record was already discarded.
func (s *Store) Promote(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.pending[id]
	if !ok {
		return false
	}
	delete(s.pending, id)
	s.committed[rec.ID] = rec
	return true
}

// Discard drops a single pending record.
func (s *Store) Discard(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, id)
}

// DiscardPending drops every uncommitted record and reports how many were
// dropped. Called when a higher generation is adopted: records stamped with
// the old generation can never reach quorum.
func (s *Store) DiscardPending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.pending)
	s.pending = make(map[string]Record)
	return n
}

// Apply stores a replicated record directly into the committed set. Used on
// the follower side: the leader only reports success once a quorum holds
// the record.
func (s *Store) Apply(rec Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.committed[rec.ID] = rec
}

// Merge folds a peer's committed history into the local set. For a record
// ID present on both sides the copy with the higher generation wins; with
// at most one leader per generation there is no same-ID same-generation
// conflict to resolve. Returns the number of records added or replaced.
func (s *Store) Merge(recs []Record) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := 0
	for _, rec := range recs {
		existing, ok := s.committed[rec.ID]
		if ok && existing.Generation >= rec.Generation {
			continue
		}
		s.committed[rec.ID] = rec
		changed++
	}
	return changed
}

func (s *Store) Get(id string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.committed[id]
	return rec, ok
}

// Committed returns a snapshot of all committed records.
func (s *Store) Committed() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, 0, len(s.committed))
	for _, rec := range s.committed {
		out = append(out, rec)
	}
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.committed)
}

func (s *Store) PendingLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pending)
}
