package services

import (
	"sync"

	"github.com/google/uuid"
)

type sessionEntry struct {
	mu      sync.Mutex
	session *BiddingSession
}

// SessionStore хранит сессии торгов в памяти. Операции над одной сессией выполняются последовательно.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*sessionEntry
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*sessionEntry)}
}

// Create создаёт новую сессию в состоянии idle.
func (st *SessionStore) Create() *BiddingSession {
	session := NewBiddingSession(uuid.New().String())

	st.mu.Lock()
	st.sessions[session.ID] = &sessionEntry{session: session}
	st.mu.Unlock()
	return session
}

// Do выполняет fn над сессией под её блокировкой.
func (st *SessionStore) Do(id string, fn func(*BiddingSession) error) error {
	st.mu.RLock()
	entry, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return ErrSessionNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return fn(entry.session)
}

func (st *SessionStore) Delete(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(st.sessions, id)
	return nil
}

func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
