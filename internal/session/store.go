package session

import "sync"

// Store tracks which users the bot is waiting on for a free-text search
// term. The flag is per user, lives only for the process lifetime, and is
// consumed by the first free-text message that arrives.
type Store struct {
	mu       sync.Mutex
	awaiting map[int64]struct{}
}

func NewStore() *Store {
	return &Store{awaiting: make(map[int64]struct{})}
}

func (s *Store) AwaitSearchTerm(userID int64) {
	s.mu.Lock()
	s.awaiting[userID] = struct{}{}
	s.mu.Unlock()
}

// ConsumeSearchTerm reports whether userID was awaiting a search term and
// resets the flag in the same critical section, so the next message from
// the same user starts from a clean state.
func (s *Store) ConsumeSearchTerm(userID int64) bool {
	s.mu.Lock()
	_, ok := s.awaiting[userID]
	delete(s.awaiting, userID)
	s.mu.Unlock()
	return ok
}

func (s *Store) Clear(userID int64) {
	s.mu.Lock()
	delete(s.awaiting, userID)
	s.mu.Unlock()
}
