package importer

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultSessionTTL is the idle lifetime of a preview session.
const DefaultSessionTTL = 15 * time.Minute

type session struct {
	candidates []Candidate
	lastSeen   time.Time
}

// Sessions holds parsed import previews between the preview and
// commit/abort steps. A preview never touches the live collection; the
// caller either commits the session's candidates or discards them.
//
// Sessions are swept lazily: idle entries past the TTL are dropped on the
// next access. If two previews race (e.g. a second upload before the
// first commit), each gets its own session and last-write-wins at commit
// time, which is accepted for this single-user surface.
type Sessions struct {
	mu  sync.Mutex
	ttl time.Duration
	m   map[string]*session

	// now is swappable for tests.
	now func() time.Time
}

func NewSessions(ttl time.Duration) *Sessions {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Sessions{
		ttl: ttl,
		m:   make(map[string]*session),
		now: time.Now,
	}
}

// Create stores candidates under a fresh session id and returns the id.
func (s *Sessions) Create(candidates []Candidate) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweepLocked(now)

	id := uuid.NewString()
	s.m[id] = &session{candidates: candidates, lastSeen: now}
	return id
}

// Get returns the candidates for a session and refreshes its idle timer.
func (s *Sessions) Get(id string) ([]Candidate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweepLocked(now)

	sess, ok := s.m[id]
	if !ok {
		return nil, false
	}
	sess.lastSeen = now
	return sess.candidates, true
}

// Delete discards a session (commit and abort both end here).
func (s *Sessions) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, id)
}

// Len returns the number of live sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.m)
}

func (s *Sessions) sweepLocked(now time.Time) {
	for id, sess := range s.m {
		if now.Sub(sess.lastSeen) > s.ttl {
			delete(s.m, id)
		}
	}
}
