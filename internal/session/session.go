// Package session keeps short-lived dialogue state between webhook
// turns. Alice sessions are stateless on the wire, so multi-turn flows
// (delete confirmation) park their pending action here.
package session

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultTTL bounds how long a pending action survives without an
// answer. Alice sessions themselves expire after a few minutes of
// silence, so anything longer would never be read.
const DefaultTTL = 5 * time.Minute

const maxSessions = 10000

// PendingDelete is a delete awaiting the user's yes/no.
type PendingDelete struct {
	ProjectID string
	TaskID    string
	Title     string
}

// Store holds per-session pending actions with automatic expiry.
type Store struct {
	pending *expirable.LRU[string, PendingDelete]
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		pending: expirable.NewLRU[string, PendingDelete](maxSessions, nil, ttl),
	}
}

// SetPendingDelete parks a delete for confirmation, replacing any
// previous pending action in the session.
func (s *Store) SetPendingDelete(sessionID string, p PendingDelete) {
	s.pending.Add(sessionID, p)
}

// PendingDelete returns the parked delete for the session, if any.
func (s *Store) PendingDelete(sessionID string) (PendingDelete, bool) {
	return s.pending.Get(sessionID)
}

// Clear drops any pending action for the session.
func (s *Store) Clear(sessionID string) {
	s.pending.Remove(sessionID)
}
