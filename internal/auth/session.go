package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "jobly:session:"
	defaultTTL       = 24 * time.Hour
)

// Session is what a logged-in request knows about its caller.
type Session struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

// Store keeps sessions in Redis as JSON under a random ID. Expiry is left
// to Redis.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStore returns a new session store.
func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Store{rdb: rdb, ttl: ttl}
}

// TTL returns how long a session lives.
func (s *Store) TTL() time.Duration { return s.ttl }

// Create stores a new session and returns its ID.
func (s *Store) Create(ctx context.Context, sess Session) (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("session id: %w", err)
	}
	b, err := json.Marshal(sess)
	if err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, sessionKeyPrefix+id.String(), b, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return id.String(), nil
}

// Get returns the session by ID. ok is false if it does not exist or expired.
func (s *Store) Get(ctx context.Context, id string) (Session, bool, error) {
	b, err := s.rdb.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return Session{}, false, nil
	}
	if err != nil {
		return Session{}, false, err
	}
	var sess Session
	if err := json.Unmarshal(b, &sess); err != nil {
		return Session{}, false, fmt.Errorf("decode session: %w", err)
	}
	return sess, true, nil
}

// Delete removes a session by ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, sessionKeyPrefix+id).Err()
}
