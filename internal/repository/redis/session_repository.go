package redis

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"legal-advisor-be/pkg/store"

	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "legal:session:"

// SessionRepository persists sessions in Redis so conversational state
// survives restarts and is shared across replicas. Failures degrade to
// "session not found" rather than aborting the request, mirroring the
// best-effort posture of the rest of the pipeline.
type SessionRepository struct {
	client *goredis.Client
	ttl    time.Duration
	logger *log.Logger
}

func NewSessionRepository(client *goredis.Client, ttl time.Duration, logger *log.Logger) *SessionRepository {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionRepository{client: client, ttl: ttl, logger: logger}
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	raw, err := r.client.Get(ctx, keyPrefix+sessionID).Bytes()
	if err != nil {
		if err != goredis.Nil {
			r.logger.Printf("[WARN] redis session get %s: %v", sessionID, err)
		}
		return nil, false
	}

	var session store.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		r.logger.Printf("[WARN] redis session decode %s: %v", sessionID, err)
		return nil, false
	}
	return &session, true
}

func (r *SessionRepository) Save(session *store.Session) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	raw, err := json.Marshal(session)
	if err != nil {
		r.logger.Printf("[WARN] redis session encode %s: %v", session.ID, err)
		return
	}
	if err := r.client.Set(ctx, keyPrefix+session.ID, raw, r.ttl).Err(); err != nil {
		r.logger.Printf("[WARN] redis session save %s: %v", session.ID, err)
	}
}

func (r *SessionRepository) Delete(sessionID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := r.client.Del(ctx, keyPrefix+sessionID).Err(); err != nil {
		r.logger.Printf("[WARN] redis session delete %s: %v", sessionID, err)
	}
}
