package mocks

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
)

// MockTokenService implements domain.TokenService interface for testing.
// Default tokens look like "access_<userID>_<mobile>" and verify back to
// the same claims.
type MockTokenService struct {
	IssueAccessTokenFunc   func(user *domain.User) (string, error)
	IssueRefreshTokenFunc  func(user *domain.User) (string, error)
	VerifyAccessTokenFunc  func(token string) (*domain.TokenClaims, error)
	VerifyRefreshTokenFunc func(token string) (*domain.TokenClaims, error)
	AccessTTLValue         time.Duration
	RefreshTTLValue        time.Duration
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{
		AccessTTLValue:  15 * time.Minute,
		RefreshTTLValue: 7 * 24 * time.Hour,
	}
}

// IssueAccessToken issues an access token for the user
func (m *MockTokenService) IssueAccessToken(user *domain.User) (string, error) {
	if m.IssueAccessTokenFunc != nil {
		return m.IssueAccessTokenFunc(user)
	}
	return fmt.Sprintf("access_%d_%s", user.ID, user.Mobile), nil
}

// IssueRefreshToken issues a refresh token for the user
func (m *MockTokenService) IssueRefreshToken(user *domain.User) (string, error) {
	if m.IssueRefreshTokenFunc != nil {
		return m.IssueRefreshTokenFunc(user)
	}
	return fmt.Sprintf("refresh_%d_%s", user.ID, user.Mobile), nil
}

// VerifyAccessToken verifies an access token
func (m *MockTokenService) VerifyAccessToken(token string) (*domain.TokenClaims, error) {
	if m.VerifyAccessTokenFunc != nil {
		return m.VerifyAccessTokenFunc(token)
	}
	return m.parse("access_", token, m.AccessTTLValue)
}

// VerifyRefreshToken verifies a refresh token
func (m *MockTokenService) VerifyRefreshToken(token string) (*domain.TokenClaims, error) {
	if m.VerifyRefreshTokenFunc != nil {
		return m.VerifyRefreshTokenFunc(token)
	}
	return m.parse("refresh_", token, m.RefreshTTLValue)
}

func (m *MockTokenService) AccessTTL() time.Duration  { return m.AccessTTLValue }
func (m *MockTokenService) RefreshTTL() time.Duration { return m.RefreshTTLValue }

func (m *MockTokenService) parse(prefix, token string, ttl time.Duration) (*domain.TokenClaims, error) {
	rest, ok := strings.CutPrefix(token, prefix)
	if !ok {
		return nil, domain.ErrInvalidToken
	}
	idPart, mobile, ok := strings.Cut(rest, "_")
	if !ok {
		return nil, domain.ErrInvalidToken
	}
	id, err := strconv.ParseUint(idPart, 10, 64)
	if err != nil || id == 0 {
		return nil, domain.ErrInvalidToken
	}
	now := time.Now()
	return &domain.TokenClaims{
		UserID:    uint(id),
		Mobile:    mobile,
		TokenID:   token,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}, nil
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
