package session

import (
	"context"
	"sync"
)

// MemoryStore - сесії в пам'яті процесу; прострочені записи видаляються ліниво
// при зверненні
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]Session),
	}
}

func (s *MemoryStore) Get(ctx context.Context, sid string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sid]
	if !ok {
		return nil, nil
	}
	if session.Expired() {
		delete(s.sessions, sid)
		return nil, nil
	}

	return &session, nil
}

func (s *MemoryStore) Set(ctx context.Context, session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = *session
	return nil
}

func (s *MemoryStore) Destroy(ctx context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sid)
	return nil
}
