package mocks

import (
	"context"
	"time"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	RegisterFunc func(ctx context.Context, in domain.RegisterInput) (*domain.User, error)
	LoginFunc    func(ctx context.Context, mobile, password string) (*domain.AuthResult, error)
	RefreshFunc  func(ctx context.Context, refreshToken string) (string, error)
	LogoutFunc   func(ctx context.Context, refreshToken, accessToken string) error
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Register registers a new user
func (m *MockAuthService) Register(ctx context.Context, in domain.RegisterInput) (*domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, in)
	}
	// Default behavior: return an unverified member
	role := in.Role
	if role == "" {
		role = domain.RoleMember
	}
	return &domain.User{
		ID:           1,
		Name:         in.Name,
		FatherName:   in.FatherName,
		Mobile:       in.Mobile,
		Occupation:   in.Occupation,
		PasswordHash: "hashed_" + in.Password,
		Role:         role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}, nil
}

// Login authenticates a user
func (m *MockAuthService) Login(ctx context.Context, mobile, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, mobile, password)
	}
	return &domain.AuthResult{
		User:         &domain.User{ID: 1, Mobile: mobile, Role: domain.RoleMember},
		AccessToken:  "mock_access_token",
		RefreshToken: "mock_refresh_token",
		ExpiresIn:    900,
	}, nil
}

// Refresh issues a new access token
func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, refreshToken)
	}
	return "mock_new_access_token", nil
}

// Logout ends the session
func (m *MockAuthService) Logout(ctx context.Context, refreshToken, accessToken string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, refreshToken, accessToken)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
