package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
)

// MockTokenDenylist implements domain.TokenDenylist for testing.
// Without overrides it behaves like an in-memory denylist.
type MockTokenDenylist struct {
	RevokeFunc    func(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevokedFunc func(ctx context.Context, tokenID string) (bool, error)

	mu      sync.Mutex
	revoked map[string]time.Duration
}

func NewMockTokenDenylist() *MockTokenDenylist {
	return &MockTokenDenylist{revoked: make(map[string]time.Duration)}
}

func (m *MockTokenDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if m.RevokeFunc != nil {
		return m.RevokeFunc(ctx, tokenID, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revoked[tokenID] = ttl
	return nil
}

func (m *MockTokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if m.IsRevokedFunc != nil {
		return m.IsRevokedFunc(ctx, tokenID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.revoked[tokenID]
	return ok, nil
}

// Revoked returns the ttl recorded for tokenID and whether it was revoked
func (m *MockTokenDenylist) Revoked(tokenID string) (time.Duration, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ttl, ok := m.revoked[tokenID]
	return ttl, ok
}

var _ domain.TokenDenylist = (*MockTokenDenylist)(nil)
