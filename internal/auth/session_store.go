package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"viewify/internal/cache"
)

const sessionKeyPrefix = "session:"

// SessionRecord is the server-side half of a session. A token whose record
// is gone (signed out, expired, or redis lost it) reads as no session.
type SessionRecord struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// SessionStoreInterface defines the interface for session storage operations.
type SessionStoreInterface interface {
	Put(ctx context.Context, tokenID string, record SessionRecord, ttl time.Duration) error
	Get(ctx context.Context, tokenID string) (*SessionRecord, error)
	Delete(ctx context.Context, tokenID string) error
}

// SessionStore keeps session records in Redis, keyed by token ID.
type SessionStore struct {
	cache *cache.Client
}

var _ SessionStoreInterface = (*SessionStore)(nil)

// NewSessionStore creates a new session store.
func NewSessionStore(cache *cache.Client) *SessionStore {
	return &SessionStore{cache: cache}
}

// Put stores a session record with TTL.
func (s *SessionStore) Put(ctx context.Context, tokenID string, record SessionRecord, ttl time.Duration) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal session record: %w", err)
	}
	return s.cache.Set(ctx, sessionKeyPrefix+tokenID, payload, ttl)
}

// Get retrieves a session record. A missing record returns (nil, nil).
func (s *SessionStore) Get(ctx context.Context, tokenID string) (*SessionRecord, error) {
	data, err := s.cache.Get(ctx, sessionKeyPrefix+tokenID)
	if err != nil || data == nil {
		return nil, nil
	}
	var record SessionRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("unmarshal session record: %w", err)
	}
	return &record, nil
}

// Delete removes a session record.
func (s *SessionStore) Delete(ctx context.Context, tokenID string) error {
	return s.cache.Delete(ctx, sessionKeyPrefix+tokenID)
}
