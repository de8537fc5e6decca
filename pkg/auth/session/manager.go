package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/openmarket-kr/openmarket-backend/pkg/config"
	redisclient "github.com/openmarket-kr/openmarket-backend/pkg/redis"
	redislib "github.com/redis/go-redis/v9"
)

// ErrInvalidSession signals a missing or expired session identifier.
var ErrInvalidSession = errors.New("invalid session")

type sessionStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

type sessionKeyer interface {
	SessionKey(sessionID string) string
}

// Manager handles session-cookie creation, lookup, and revocation.
type Manager struct {
	store sessionStore
	keyer sessionKeyer
	ttl   time.Duration
}

// Reader exposes the read-only surface needed by middleware.
type Reader interface {
	Lookup(ctx context.Context, sessionID string) (int64, bool, error)
}

// NewManager constructs a session manager backed by Redis.
func NewManager(client *redisclient.Client, cfg config.SessionConfig) (*Manager, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	ttl := cfg.TTL()
	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be positive")
	}

	return &Manager{
		store: client,
		keyer: client,
		ttl:   ttl,
	}, nil
}

// TTL returns the configured session lifetime, used for cookie expiry.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Create mints a session ID for the user and stores the mapping in Redis.
func (m *Manager) Create(ctx context.Context, userID int64) (string, error) {
	if userID <= 0 {
		return "", fmt.Errorf("user id is required")
	}
	sessionID := uuid.NewString()
	key := m.keyer.SessionKey(sessionID)
	if err := m.store.Set(ctx, key, strconv.FormatInt(userID, 10), m.ttl); err != nil {
		return "", err
	}
	return sessionID, nil
}

// Lookup resolves a session ID to its user. The boolean reports whether the
// session exists; expired and unknown IDs are not errors.
func (m *Manager) Lookup(ctx context.Context, sessionID string) (int64, bool, error) {
	if strings.TrimSpace(sessionID) == "" {
		return 0, false, nil
	}
	stored, err := m.store.Get(ctx, m.keyer.SessionKey(sessionID))
	if err != nil {
		if errors.Is(err, redislib.Nil) {
			return 0, false, nil
		}
		return 0, false, err
	}
	userID, err := strconv.ParseInt(stored, 10, 64)
	if err != nil {
		return 0, false, ErrInvalidSession
	}
	return userID, true, nil
}

// Destroy removes the session mapping, logging the user out.
func (m *Manager) Destroy(ctx context.Context, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return nil
	}
	return m.store.Del(ctx, m.keyer.SessionKey(sessionID))
}
