package session

import (
	"sync"

	"legal-advisor-be/internal/repository/contract"
	"legal-advisor-be/pkg/store"
)

// Manager handles conversational session state. All mutation goes through
// the manager so the repository backing stays swappable.
type Manager struct {
	repo contract.SessionRepository

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewManager(repo contract.SessionRepository) *Manager {
	return &Manager{
		repo:  repo,
		locks: make(map[string]*sync.Mutex),
	}
}

// Lock serializes the read-decide-update sequence for one session key.
// Concurrent requests for different sessions proceed in parallel. The
// returned func releases the lock.
func (m *Manager) Lock(sessionID string) func() {
	m.mu.Lock()
	l, ok := m.locks[sessionID]
	if !ok {
		l = &sync.Mutex{}
		m.locks[sessionID] = l
	}
	m.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// LoadOrCreate returns the session for the key, creating an empty one if
// the key is new. Never fails.
func (m *Manager) LoadOrCreate(sessionID string) *store.Session {
	if session, found := m.repo.Get(sessionID); found {
		return session
	}
	return &store.Session{ID: sessionID}
}

// Update records a resolved fresh turn: the current context, its references
// and cases, and the user/assistant turn pair, all describing the same turn.
func (m *Manager) Update(sessionID, query, answer string, references []store.Reference, cases []store.Case) {
	session := m.LoadOrCreate(sessionID)
	session.Current = &store.TurnContext{
		Query:      query,
		Answer:     answer,
		References: references,
		Cases:      cases,
	}
	session.References = references
	session.Cases = cases
	session.History = append(session.History,
		store.Turn{Role: store.RoleUser, Text: query},
		store.Turn{Role: store.RoleAssistant, Text: answer},
	)
	m.repo.Save(session)
}

// AppendTurns records a follow-up exchange in the history without touching
// the current context, references or cases.
func (m *Manager) AppendTurns(sessionID, query, answer string) {
	session := m.LoadOrCreate(sessionID)
	session.History = append(session.History,
		store.Turn{Role: store.RoleUser, Text: query},
		store.Turn{Role: store.RoleAssistant, Text: answer},
	)
	m.repo.Save(session)
}
