package wizard

import (
	"sync"
	"time"
)

// DraftStore holds in-flight drafts in memory, keyed by draft id. Nothing
// is persisted: a process restart loses every draft and the flow restarts
// from tour detail. Expired drafts are pruned on access.
type DraftStore struct {
	mu     sync.Mutex
	ttl    time.Duration
	drafts map[string]*Draft
	now    func() time.Time
}

func NewDraftStore(ttl time.Duration) *DraftStore {
	return &DraftStore{
		ttl:    ttl,
		drafts: make(map[string]*Draft),
		now:    time.Now,
	}
}

func (s *DraftStore) Put(d *Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prune()
	s.drafts[d.ID] = d
}

func (s *DraftStore) Get(id string) (*Draft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prune()
	d, ok := s.drafts[id]
	return d, ok
}

// Remove invalidates a draft on completion or abandonment.
func (s *DraftStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, id)
}

func (s *DraftStore) prune() {
	if s.ttl <= 0 {
		return
	}
	cutoff := s.now().Add(-s.ttl)
	for id, d := range s.drafts {
		if d.CreatedAt.Before(cutoff) {
			delete(s.drafts, id)
		}
	}
}
