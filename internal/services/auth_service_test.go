package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
)

func TestAuthServiceImpl_Register(t *testing.T) {
	validInput := func() domain.RegisterInput {
		return domain.RegisterInput{
			Name:       "Ramesh Kumar",
			FatherName: "Suresh Kumar",
			Mobile:     "9876543210",
			Password:   "pass1234",
		}
	}

	tests := []struct {
		name          string
		input         func() domain.RegisterInput
		setupMocks    func(d *authDeps)
		expectedError error
		validateUser  func(t *testing.T, user *domain.User)
	}{
		{
			name:  "successful registration defaults to unverified member",
			input: validInput,
			validateUser: func(t *testing.T, user *domain.User) {
				if user.Role != domain.RoleMember {
					t.Errorf("expected role member, got %s", user.Role)
				}
				if user.Verified {
					t.Error("expected new user to be unverified")
				}
				if user.PasswordHash != "hashed_pass1234" {
					t.Errorf("expected hashed password, got %s", user.PasswordHash)
				}
				if user.Email != nil {
					t.Errorf("expected nil email, got %v", *user.Email)
				}
			},
		},
		{
			name: "email is normalised and stored",
			input: func() domain.RegisterInput {
				in := validInput()
				in.Email = "  Ramesh@Example.COM "
				return in
			},
			validateUser: func(t *testing.T, user *domain.User) {
				if user.Email == nil || *user.Email != "ramesh@example.com" {
					t.Errorf("expected normalised email, got %v", user.Email)
				}
			},
		},
		{
			name: "explicit superadmin role is honoured",
			input: func() domain.RegisterInput {
				in := validInput()
				in.Role = domain.RoleSuperAdmin
				return in
			},
			validateUser: func(t *testing.T, user *domain.User) {
				if user.Role != domain.RoleSuperAdmin {
					t.Errorf("expected superadmin, got %s", user.Role)
				}
			},
		},
		{
			name:  "mobile already registered",
			input: validInput,
			setupMocks: func(d *authDeps) {
				d.userRepo.FindByMobileFunc = func(ctx context.Context, mobile string) (*domain.User, error) {
					return createValidUser(t), nil
				}
			},
			expectedError: domain.ErrDuplicateMobile,
		},
		{
			name: "email already registered",
			input: func() domain.RegisterInput {
				in := validInput()
				in.Email = "taken@example.com"
				return in
			},
			setupMocks: func(d *authDeps) {
				d.userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return createAdminUser(t), nil
				}
			},
			expectedError: domain.ErrDuplicateEmail,
		},
		{
			name:  "concurrent duplicate caught by unique index",
			input: validInput,
			setupMocks: func(d *authDeps) {
				d.userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
					return domain.ErrDuplicateMobile
				}
			},
			expectedError: domain.ErrDuplicateMobile,
		},
		{
			name: "unknown role",
			input: func() domain.RegisterInput {
				in := validInput()
				in.Role = "treasurer"
				return in
			},
			expectedError: domain.ErrValidation,
		},
		{
			name: "missing name",
			input: func() domain.RegisterInput {
				in := validInput()
				in.Name = "  "
				return in
			},
			expectedError: domain.ErrValidation,
		},
		{
			name: "malformed mobile",
			input: func() domain.RegisterInput {
				in := validInput()
				in.Mobile = "98765"
				return in
			},
			expectedError: domain.ErrValidation,
		},
		{
			name: "missing password",
			input: func() domain.RegisterInput {
				in := validInput()
				in.Password = ""
				return in
			},
			expectedError: domain.ErrValidation,
		},
		{
			name:  "password hashing fails",
			input: validInput,
			setupMocks: func(d *authDeps) {
				d.passwordSvc.HashFunc = func(password string) (string, error) {
					return "", errors.New("hashing failed")
				}
			},
			expectedError: errors.New("failed to hash password"),
		},
		{
			name:  "user creation fails",
			input: validInput,
			setupMocks: func(d *authDeps) {
				d.userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
					return errors.New("database error")
				}
			},
			expectedError: errors.New("failed to create user"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := createAuthServiceForTest(t, false)
			if tt.setupMocks != nil {
				tt.setupMocks(deps)
			}

			user, err := svc.Register(createTestContext(t), tt.input())

			if tt.expectedError != nil {
				if err == nil {
					t.Fatalf("expected error %v, got nil", tt.expectedError)
				}
				if !errors.Is(err, tt.expectedError) && !strings.Contains(err.Error(), tt.expectedError.Error()) {
					t.Errorf("expected error %v, got %v", tt.expectedError, err)
				}
				if user != nil {
					t.Error("expected nil user on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validateUser != nil {
				tt.validateUser(t, user)
			}
			if got := deps.audit.Events(domain.UserRegistrationEvent); len(got) != 1 {
				t.Errorf("expected one registration audit event, got %d", len(got))
			}
		})
	}
}

func TestAuthServiceImpl_Login(t *testing.T) {
	tests := []struct {
		name          string
		mobile        string
		password      string
		setupMocks    func(d *authDeps)
		expectedError error
	}{
		{
			name:     "successful login",
			mobile:   "9876543210",
			password: "pass1234",
			setupMocks: func(d *authDeps) {
				d.userRepo.FindByMobileFunc = func(ctx context.Context, mobile string) (*domain.User, error) {
					return createValidUser(t), nil
				}
			},
		},
		{
			name:     "unknown mobile",
			mobile:   "9999999999",
			password: "pass1234",
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			mobile:   "9876543210",
			password: "wrong",
			setupMocks: func(d *authDeps) {
				d.userRepo.FindByMobileFunc = func(ctx context.Context, mobile string) (*domain.User, error) {
					return createValidUser(t), nil
				}
			},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:          "missing fields",
			mobile:        "",
			password:      "",
			expectedError: domain.ErrValidation,
		},
		{
			name:     "store failure is not reported as bad credentials",
			mobile:   "9876543210",
			password: "pass1234",
			setupMocks: func(d *authDeps) {
				d.userRepo.FindByMobileFunc = func(ctx context.Context, mobile string) (*domain.User, error) {
					return nil, errors.New("connection refused")
				}
			},
			expectedError: errors.New("failed to look up user"),
		},
		{
			name:     "token issuing fails",
			mobile:   "9876543210",
			password: "pass1234",
			setupMocks: func(d *authDeps) {
				d.userRepo.FindByMobileFunc = func(ctx context.Context, mobile string) (*domain.User, error) {
					return createValidUser(t), nil
				}
				d.tokenSvc.IssueRefreshTokenFunc = func(user *domain.User) (string, error) {
					return "", errors.New("signing failed")
				}
			},
			expectedError: errors.New("failed to generate refresh token"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := createAuthServiceForTest(t, false)
			if tt.setupMocks != nil {
				tt.setupMocks(deps)
			}

			result, err := svc.Login(createTestContext(t), tt.mobile, tt.password)

			if tt.expectedError != nil {
				if err == nil {
					t.Fatalf("expected error %v, got nil", tt.expectedError)
				}
				if !errors.Is(err, tt.expectedError) && !strings.Contains(err.Error(), tt.expectedError.Error()) {
					t.Errorf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.AccessToken == "" || result.RefreshToken == "" {
				t.Error("expected both tokens")
			}
			if result.ExpiresIn != 900 {
				t.Errorf("expected expires_in 900, got %d", result.ExpiresIn)
			}
			claims, err := deps.tokenSvc.VerifyAccessToken(result.AccessToken)
			if err != nil || claims.UserID != result.User.ID {
				t.Errorf("access token does not verify to the user: %v", err)
			}
		})
	}
}

func TestAuthServiceImpl_Login_FailuresAreIndistinguishable(t *testing.T) {
	svc, deps := createAuthServiceForTest(t, false)
	deps.userRepo.FindByMobileFunc = func(ctx context.Context, mobile string) (*domain.User, error) {
		if mobile == "9876543210" {
			return createValidUser(t), nil
		}
		return nil, domain.ErrUserNotFound
	}

	_, errUnknown := svc.Login(createTestContext(t), "9111111111", "pass1234")
	_, errWrong := svc.Login(createTestContext(t), "9876543210", "nope")

	if errUnknown == nil || errWrong == nil {
		t.Fatal("expected both logins to fail")
	}
	if errUnknown.Error() != errWrong.Error() {
		t.Errorf("expected identical errors, got %q and %q", errUnknown, errWrong)
	}
	if got := deps.audit.Events(domain.UserLoginFailureEvent); len(got) != 2 {
		t.Errorf("expected two failure audit events, got %d", len(got))
	}
}

func TestAuthServiceImpl_Refresh(t *testing.T) {
	user := createValidUser(t)

	tests := []struct {
		name          string
		token         string
		revocation    bool
		setupMocks    func(d *authDeps)
		expectedError error
	}{
		{
			name:  "valid refresh token",
			token: "refresh_1_9876543210",
		},
		{
			name:          "empty token",
			token:         "",
			expectedError: domain.ErrNoRefreshToken,
		},
		{
			name:          "access token is not a refresh token",
			token:         "access_1_9876543210",
			expectedError: domain.ErrInvalidRefreshToken,
		},
		{
			name:          "user deleted after login",
			token:         "refresh_99_9000000099",
			expectedError: domain.ErrInvalidRefreshToken,
		},
		{
			name:       "revoked token",
			token:      "refresh_1_9876543210",
			revocation: true,
			setupMocks: func(d *authDeps) {
				_ = d.denylist.Revoke(context.Background(), "refresh_1_9876543210", time.Hour)
			},
			expectedError: domain.ErrInvalidRefreshToken,
		},
		{
			name:       "denylist unavailable",
			token:      "refresh_1_9876543210",
			revocation: true,
			setupMocks: func(d *authDeps) {
				d.denylist.IsRevokedFunc = func(ctx context.Context, tokenID string) (bool, error) {
					return false, errors.New("redis down")
				}
			},
			expectedError: errors.New("failed to check token revocation"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := createAuthServiceForTest(t, tt.revocation)
			deps.userRepo.FindByIDFunc = usersByID(user)
			if tt.setupMocks != nil {
				tt.setupMocks(deps)
			}

			access, err := svc.Refresh(createTestContext(t), tt.token)

			if tt.expectedError != nil {
				if err == nil {
					t.Fatalf("expected error %v, got nil", tt.expectedError)
				}
				if !errors.Is(err, tt.expectedError) && !strings.Contains(err.Error(), tt.expectedError.Error()) {
					t.Errorf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			claims, err := deps.tokenSvc.VerifyAccessToken(access)
			if err != nil {
				t.Fatalf("new access token does not verify: %v", err)
			}
			if claims.UserID != user.ID {
				t.Errorf("expected user %d, got %d", user.ID, claims.UserID)
			}
		})
	}
}

func TestAuthServiceImpl_Logout(t *testing.T) {
	t.Run("stateless logout is a no-op", func(t *testing.T) {
		svc, deps := createAuthServiceForTest(t, false)

		if err := svc.Logout(createTestContext(t), "refresh_1_9876543210", "access_1_9876543210"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := deps.denylist.Revoked("refresh_1_9876543210"); ok {
			t.Error("nothing should be revoked without a denylist")
		}
	})

	t.Run("revokes both tokens for their remaining lifetime", func(t *testing.T) {
		svc, deps := createAuthServiceForTest(t, true)
		now := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)
		svc.now = func() time.Time { return now }
		deps.tokenSvc.VerifyRefreshTokenFunc = func(token string) (*domain.TokenClaims, error) {
			return &domain.TokenClaims{UserID: 1, TokenID: "r-jti", ExpiresAt: now.Add(48 * time.Hour)}, nil
		}
		deps.tokenSvc.VerifyAccessTokenFunc = func(token string) (*domain.TokenClaims, error) {
			return &domain.TokenClaims{UserID: 1, TokenID: "a-jti", ExpiresAt: now.Add(5 * time.Minute)}, nil
		}

		if err := svc.Logout(createTestContext(t), "r", "a"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ttl, ok := deps.denylist.Revoked("r-jti"); !ok || ttl != 48*time.Hour {
			t.Errorf("refresh jti: got ttl %v revoked=%v", ttl, ok)
		}
		if ttl, ok := deps.denylist.Revoked("a-jti"); !ok || ttl != 5*time.Minute {
			t.Errorf("access jti: got ttl %v revoked=%v", ttl, ok)
		}
	})

	t.Run("invalid tokens are ignored", func(t *testing.T) {
		svc, deps := createAuthServiceForTest(t, true)

		if err := svc.Logout(createTestContext(t), "garbage", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := deps.denylist.Revoked("garbage"); ok {
			t.Error("unverifiable token must not be stored")
		}
	})

	t.Run("denylist failure surfaces", func(t *testing.T) {
		svc, deps := createAuthServiceForTest(t, true)
		deps.denylist.RevokeFunc = func(ctx context.Context, tokenID string, ttl time.Duration) error {
			return errors.New("redis down")
		}

		err := svc.Logout(createTestContext(t), "refresh_1_9876543210", "")
		if err == nil || !strings.Contains(err.Error(), "failed to revoke token") {
			t.Errorf("expected revoke failure, got %v", err)
		}
	})
}

func TestAuthServiceImpl_ConcurrentLogin(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping load test in short mode")
	}

	svc, deps := createAuthServiceForTest(t, false)
	deps.userRepo.FindByMobileFunc = func(ctx context.Context, mobile string) (*domain.User, error) {
		return createValidUser(t), nil
	}

	const workers, attempts = 10, 50
	var wg sync.WaitGroup
	errs := make(chan error, workers*attempts)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < attempts; j++ {
				if _, err := svc.Login(context.Background(), "9876543210", "pass1234"); err != nil {
					errs <- err
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("unexpected login error: %v", err)
	}
	if got := len(deps.audit.Events(domain.UserLoginEvent)); got != workers*attempts {
		t.Errorf("expected %d login events, got %d", workers*attempts, got)
	}
}
