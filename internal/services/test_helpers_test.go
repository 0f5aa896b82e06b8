package services

import (
	"context"
	"testing"
	"time"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/logging"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/mocks"
)

// authDeps bundles the mocks behind an AuthService under test
type authDeps struct {
	userRepo    *mocks.MockUserRepository
	passwordSvc *mocks.MockPasswordService
	tokenSvc    *mocks.MockTokenService
	denylist    *mocks.MockTokenDenylist
	audit       *mocks.MockAuditLogger
}

// createAuthServiceForTest creates an AuthService with mock dependencies.
// withDenylist controls whether token revocation is enabled.
func createAuthServiceForTest(t *testing.T, withDenylist bool) (*AuthServiceImpl, *authDeps) {
	t.Helper()

	deps := &authDeps{
		userRepo:    mocks.NewMockUserRepository(),
		passwordSvc: mocks.NewMockPasswordService(),
		tokenSvc:    mocks.NewMockTokenService(),
		denylist:    mocks.NewMockTokenDenylist(),
		audit:       mocks.NewMockAuditLogger(),
	}

	var denylist domain.TokenDenylist
	if withDenylist {
		denylist = deps.denylist
	}

	svc := NewAuthService(deps.userRepo, deps.passwordSvc, deps.tokenSvc, denylist, deps.audit).(*AuthServiceImpl)
	return svc, deps
}

// createValidUser creates a verified member for testing
func createValidUser(t *testing.T) *domain.User {
	t.Helper()

	return &domain.User{
		ID:           1,
		Name:         "Ramesh Kumar",
		FatherName:   "Suresh Kumar",
		Mobile:       "9876543210",
		PasswordHash: "hashed_pass1234",
		Role:         domain.RoleMember,
		Verified:     true,
		CreatedAt:    time.Now().Add(-24 * time.Hour),
		UpdatedAt:    time.Now().Add(-1 * time.Hour),
	}
}

// createAdminUser creates an admin user for testing
func createAdminUser(t *testing.T) *domain.User {
	t.Helper()

	user := createValidUser(t)
	user.ID = 2
	user.Name = "Admin"
	user.Mobile = "9000000002"
	user.Role = domain.RoleAdmin
	return user
}

// createSuperAdminUser creates a superadmin user for testing
func createSuperAdminUser(t *testing.T) *domain.User {
	t.Helper()

	user := createValidUser(t)
	user.ID = 3
	user.Name = "Super Admin"
	user.Mobile = "9000000003"
	user.Role = domain.RoleSuperAdmin
	return user
}

// usersByID returns a FindByID func backed by the given users
func usersByID(users ...*domain.User) func(ctx context.Context, id uint) (*domain.User, error) {
	return func(ctx context.Context, id uint) (*domain.User, error) {
		for _, u := range users {
			if u.ID == id {
				copied := *u
				return &copied, nil
			}
		}
		return nil, domain.ErrUserNotFound
	}
}

// actorsForGuardTests lists one actor per role
func actorsForGuardTests(t *testing.T) map[domain.Role]*domain.User {
	t.Helper()

	return map[domain.Role]*domain.User{
		domain.RoleMember:     createValidUser(t),
		domain.RoleAdmin:      createAdminUser(t),
		domain.RoleSuperAdmin: createSuperAdminUser(t),
	}
}

func testLogger() logging.Logger {
	return logging.Nop()
}

func createTestContext(t *testing.T) context.Context {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return domain.ContextWithClient(ctx, &domain.ClientContext{IPAddress: "127.0.0.1", UserAgent: "go-test"})
}
