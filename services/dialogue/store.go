package dialogue

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"maxxtravel/models"

	"github.com/go-redis/redis/v8"
)

// SessionStore keeps conversation state between voice turns. Get creates a
// fresh session in the start state when none exists. Concurrent turns for the
// same id are not coordinated; last write wins.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.DialogueSession, error)
	Put(ctx context.Context, sessionID string, session *models.DialogueSession) error
}

// MemorySessionStore is a single-process SessionStore. With maxEntries > 0 the
// least recently written session is dropped once the cap is hit; with 0 the
// store grows one entry per distinct caller for the life of the process.
type MemorySessionStore struct {
	mu         sync.Mutex
	sessions   map[string]*models.DialogueSession
	maxEntries int
}

func NewMemorySessionStore(maxEntries int) *MemorySessionStore {
	return &MemorySessionStore{
		sessions:   make(map[string]*models.DialogueSession),
		maxEntries: maxEntries,
	}
}

func (s *MemorySessionStore) Get(_ context.Context, sessionID string) (*models.DialogueSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session, ok := s.sessions[sessionID]; ok {
		copied := *session
		return &copied, nil
	}
	return models.NewDialogueSession(sessionID), nil
}

func (s *MemorySessionStore) Put(_ context.Context, sessionID string, session *models.DialogueSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session.UpdatedAt = time.Now()
	if _, exists := s.sessions[sessionID]; !exists && s.maxEntries > 0 && len(s.sessions) >= s.maxEntries {
		s.evictOldest()
	}
	copied := *session
	s.sessions[sessionID] = &copied
	return nil
}

// evictOldest removes the entry with the oldest write. Caller holds the lock.
func (s *MemorySessionStore) evictOldest() {
	var oldestID string
	var oldestAt time.Time
	for id, session := range s.sessions {
		if oldestID == "" || session.UpdatedAt.Before(oldestAt) {
			oldestID = id
			oldestAt = session.UpdatedAt
		}
	}
	if oldestID != "" {
		delete(s.sessions, oldestID)
	}
}

// Len reports the number of stored sessions.
func (s *MemorySessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

const sessionKeyPrefix = "dlg:session:"

// RedisSessionStore keeps sessions in Redis so conversations survive process
// restarts. Entries expire after the configured TTL.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.DialogueSession, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return models.NewDialogueSession(sessionID), nil
	}
	if err != nil {
		return nil, err
	}
	var session models.DialogueSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisSessionStore) Put(ctx context.Context, sessionID string, session *models.DialogueSession) error {
	session.UpdatedAt = time.Now()
	b, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKeyPrefix+sessionID, b, s.ttl).Err()
}
