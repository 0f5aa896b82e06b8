package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
)

var mobilePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	denylist    domain.TokenDenylist
	audit       domain.AuditLogger
	now         func() time.Time
}

// NewAuthService creates a new auth service. denylist may be nil, in which
// case logout is stateless and tokens stay valid until they expire.
func NewAuthService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	denylist domain.TokenDenylist,
	audit domain.AuditLogger,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		denylist:    denylist,
		audit:       audit,
		now:         time.Now,
	}
}

// Register implements domain.AuthService
func (s *AuthServiceImpl) Register(ctx context.Context, in domain.RegisterInput) (*domain.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.FatherName = strings.TrimSpace(in.FatherName)
	in.Mobile = strings.TrimSpace(in.Mobile)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.Occupation = strings.TrimSpace(in.Occupation)

	if err := validateRegistration(in); err != nil {
		return nil, err
	}

	role, err := domain.ParseRole(string(in.Role))
	if err != nil {
		return nil, err
	}

	// Check if mobile is already taken
	existing, err := s.userRepo.FindByMobile(ctx, in.Mobile)
	if err == nil && existing != nil {
		return nil, domain.ErrDuplicateMobile
	}
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up mobile: %w", err)
	}

	var email *string
	if in.Email != "" {
		existing, err := s.userRepo.FindByEmail(ctx, in.Email)
		if err == nil && existing != nil {
			return nil, domain.ErrDuplicateEmail
		}
		if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("failed to look up email: %w", err)
		}
		email = &in.Email
	}

	hashedPassword, err := s.passwordSvc.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now()
	user := &domain.User{
		Name:         in.Name,
		FatherName:   in.FatherName,
		Email:        email,
		Mobile:       in.Mobile,
		Occupation:   in.Occupation,
		PasswordHash: hashedPassword,
		Role:         role,
		Verified:     false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The unique indexes still guard against a concurrent registration
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateMobile) || errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	emit(ctx, s.audit, domain.NewAuditEvent(domain.UserRegistrationEvent, user.ID).
		WithMobile(user.Mobile).
		WithMetadata("role", string(user.Role)))

	return user, nil
}

func validateRegistration(in domain.RegisterInput) error {
	switch {
	case in.Name == "":
		return domain.NewValidationError("name is required")
	case in.FatherName == "":
		return domain.NewValidationError("fatherName is required")
	case in.Mobile == "":
		return domain.NewValidationError("mobile is required")
	case !mobilePattern.MatchString(in.Mobile):
		return domain.NewValidationError("mobile must be 10 to 15 digits")
	case in.Password == "":
		return domain.NewValidationError("password is required")
	case in.Email != "" && !strings.Contains(in.Email, "@"):
		return domain.NewValidationError("email is invalid")
	}
	return nil
}

// Login implements domain.AuthService. Unknown mobile and wrong password
// produce the same error.
func (s *AuthServiceImpl) Login(ctx context.Context, mobile, password string) (*domain.AuthResult, error) {
	mobile = strings.TrimSpace(mobile)
	if mobile == "" || password == "" {
		return nil, domain.NewValidationError("mobile and password are required")
	}

	user, err := s.userRepo.FindByMobile(ctx, mobile)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
		emit(ctx, s.audit, domain.NewAuditEvent(domain.UserLoginFailureEvent, 0).
			WithMobile(mobile).
			WithError(domain.ErrInvalidCredentials))
		return nil, domain.ErrInvalidCredentials
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		emit(ctx, s.audit, domain.NewAuditEvent(domain.UserLoginFailureEvent, user.ID).
			WithMobile(mobile).
			WithError(domain.ErrInvalidCredentials))
		return nil, domain.ErrInvalidCredentials
	}

	accessToken, err := s.tokenSvc.IssueAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.tokenSvc.IssueRefreshToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	emit(ctx, s.audit, domain.NewAuditEvent(domain.UserLoginEvent, user.ID).WithMobile(user.Mobile))

	return &domain.AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.tokenSvc.AccessTTL().Seconds()),
	}, nil
}

// Refresh implements domain.AuthService. The refresh token is not rotated.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", domain.ErrNoRefreshToken
	}

	claims, err := s.tokenSvc.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", domain.ErrInvalidRefreshToken
	}

	if s.denylist != nil {
		revoked, err := s.denylist.IsRevoked(ctx, claims.TokenID)
		if err != nil {
			return "", fmt.Errorf("failed to check token revocation: %w", err)
		}
		if revoked {
			return "", domain.ErrInvalidRefreshToken
		}
	}

	// A member deleted after login cannot mint new access tokens
	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidRefreshToken
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	accessToken, err := s.tokenSvc.IssueAccessToken(user)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}

	emit(ctx, s.audit, domain.NewAuditEvent(domain.TokenRefreshEvent, user.ID))
	return accessToken, nil
}

// Logout implements domain.AuthService. Without a denylist this is a no-op;
// the caller clears the refresh cookie either way.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken, accessToken string) error {
	var userID uint

	if s.denylist != nil {
		if refreshToken != "" {
			if claims, err := s.tokenSvc.VerifyRefreshToken(refreshToken); err == nil {
				userID = claims.UserID
				if err := s.revoke(ctx, claims); err != nil {
					return err
				}
			}
		}
		if accessToken != "" {
			if claims, err := s.tokenSvc.VerifyAccessToken(accessToken); err == nil {
				userID = claims.UserID
				if err := s.revoke(ctx, claims); err != nil {
					return err
				}
			}
		}
	}

	emit(ctx, s.audit, domain.NewAuditEvent(domain.UserLogoutEvent, userID))
	return nil
}

func (s *AuthServiceImpl) revoke(ctx context.Context, claims *domain.TokenClaims) error {
	ttl := claims.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	if err := s.denylist.Revoke(ctx, claims.TokenID, ttl); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}
