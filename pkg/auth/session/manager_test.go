package session

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	redislib "github.com/redis/go-redis/v9"
)

type mockStore struct {
	mu   sync.Mutex
	data map[string]string
}

func newMockStore() *mockStore {
	return &mockStore{data: make(map[string]string)}
}

func (m *mockStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = fmt.Sprint(value)
	return nil
}

func (m *mockStore) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.data[key]
	if !ok {
		return "", redislib.Nil
	}
	return val, nil
}

func (m *mockStore) Del(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.data, key)
	}
	return nil
}

func (m *mockStore) SessionKey(sessionID string) string {
	return fmt.Sprintf("sess:%s", sessionID)
}

func newTestManager(store *mockStore) *Manager {
	return &Manager{
		store: store,
		keyer: store,
		ttl:   time.Hour,
	}
}

func TestManagerCreateAndLookup(t *testing.T) {
	store := newMockStore()
	manager := newTestManager(store)

	ctx := context.Background()
	sessionID, err := manager.Create(ctx, 42)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if sessionID == "" {
		t.Fatal("expected non-empty session id")
	}

	userID, ok, err := manager.Lookup(ctx, sessionID)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if !ok {
		t.Fatal("expected session to exist")
	}
	if userID != 42 {
		t.Fatalf("expected user 42, got %d", userID)
	}

	if _, ok, err := manager.Lookup(ctx, "unknown"); err != nil || ok {
		t.Fatalf("expected miss for unknown session, got ok=%v err=%v", ok, err)
	}
	if _, ok, err := manager.Lookup(ctx, ""); err != nil || ok {
		t.Fatalf("expected miss for blank session, got ok=%v err=%v", ok, err)
	}
}

func TestManagerDestroy(t *testing.T) {
	store := newMockStore()
	manager := newTestManager(store)

	ctx := context.Background()
	sessionID, err := manager.Create(ctx, 7)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := manager.Destroy(ctx, sessionID); err != nil {
		t.Fatalf("destroy: %v", err)
	}
	if _, ok, _ := manager.Lookup(ctx, sessionID); ok {
		t.Fatal("expected destroyed session to be gone")
	}

	// Destroying an already-missing session is a no-op.
	if err := manager.Destroy(ctx, sessionID); err != nil {
		t.Fatalf("second destroy: %v", err)
	}
}
