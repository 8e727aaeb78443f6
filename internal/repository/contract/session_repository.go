package contract

import (
	"legal-advisor-be/pkg/store"
)

// SessionRepository is the pluggable backing for conversational state.
// The in-memory implementation serves tests and single-node deployments,
// the Redis implementation survives restarts and is shared across replicas.
type SessionRepository interface {
	Get(sessionID string) (*store.Session, bool)
	Save(session *store.Session)
	Delete(sessionID string)
}
