package importer

import (
	"testing"
	"time"
)

func TestSessionsCreateGetDelete(t *testing.T) {
	s := NewSessions(time.Minute)

	id := s.Create([]Candidate{{Name: "a.com"}})
	if id == "" {
		t.Fatal("Create() returned empty id")
	}

	got, ok := s.Get(id)
	if !ok {
		t.Fatal("Get() should find a fresh session")
	}
	if len(got) != 1 || got[0].Name != "a.com" {
		t.Errorf("Get() = %+v", got)
	}

	s.Delete(id)
	if _, ok := s.Get(id); ok {
		t.Error("Get() should miss after Delete()")
	}
}

func TestSessionsUnknownID(t *testing.T) {
	s := NewSessions(time.Minute)
	if _, ok := s.Get("no-such-session"); ok {
		t.Error("Get() should miss for unknown id")
	}
}

func TestSessionsExpiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewSessions(15 * time.Minute)
	s.now = func() time.Time { return now }

	id := s.Create([]Candidate{{Name: "a.com"}})

	// Just inside the TTL the session survives and its timer refreshes.
	now = now.Add(15 * time.Minute)
	if _, ok := s.Get(id); !ok {
		t.Fatal("session should survive exactly at the TTL boundary")
	}

	// The refresh above restarted the clock.
	now = now.Add(14 * time.Minute)
	if _, ok := s.Get(id); !ok {
		t.Fatal("session should survive after a refresh")
	}

	now = now.Add(16 * time.Minute)
	if _, ok := s.Get(id); ok {
		t.Error("session should expire past the TTL")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d after sweep, want 0", s.Len())
	}
}

func TestSessionsIndependent(t *testing.T) {
	s := NewSessions(time.Minute)

	first := s.Create([]Candidate{{Name: "a.com"}})
	second := s.Create([]Candidate{{Name: "b.net"}})
	if first == second {
		t.Fatal("Create() returned duplicate ids")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}

	s.Delete(first)
	if _, ok := s.Get(second); !ok {
		t.Error("deleting one session should not touch another")
	}
}

func TestSessionsZeroTTLUsesDefault(t *testing.T) {
	s := NewSessions(0)
	if s.ttl != DefaultSessionTTL {
		t.Errorf("ttl = %v, want %v", s.ttl, DefaultSessionTTL)
	}
}
