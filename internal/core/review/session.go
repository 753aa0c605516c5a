package review

import (
	"sync"

	"github.com/actionshrimp/gitlad/internal/core/diff"
)

// Session holds the unsubmitted comments of one review sitting. Pending
// comments survive diff refreshes but not process restarts; submission or
// discard removes them.
type Session struct {
	mu      sync.Mutex
	pending []PendingComment
}

// NewSession returns an empty review session.
func NewSession() *Session {
	return &Session{}
}

// Add appends a pending comment to the session.
func (s *Session) Add(c PendingComment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, c)
}

// Discard removes the first pending comment at the given anchor. Returns
// false if no pending comment matched.
func (s *Session) Discard(path string, line int, side diff.Side) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.pending {
		if c.Path == path && c.Line == line && c.Side == side {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return true
		}
	}
	return false
}

// All returns a copy of every pending comment, in insertion order.
func (s *Session) All() []PendingComment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]PendingComment, len(s.pending))
	copy(out, s.pending)
	return out
}

// ForPath returns pending comments anchored in the given file, in insertion
// order.
func (s *Session) ForPath(path string) []PendingComment {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []PendingComment
	for _, c := range s.pending {
		if c.Path == path {
			out = append(out, c)
		}
	}
	return out
}

// Clear drops all pending comments, typically after a successful submit.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = nil
}
