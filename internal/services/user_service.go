package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/logging"
)

const verifiedSMS = "Namaste %s, your Aakasmik Nidhi membership has been verified."

// UserServiceImpl implements domain.UserService
type UserServiceImpl struct {
	userRepo domain.UserRepository
	policy   domain.PolicyService
	notifier domain.NotificationService
	audit    domain.AuditLogger
	log      logging.Logger
}

// NewUserService creates the user service
func NewUserService(
	userRepo domain.UserRepository,
	policy domain.PolicyService,
	notifier domain.NotificationService,
	audit domain.AuditLogger,
	log logging.Logger,
) domain.UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		policy:   policy,
		notifier: notifier,
		audit:    audit,
		log:      log,
	}
}

// Profile implements domain.UserService
func (s *UserServiceImpl) Profile(ctx context.Context, id uint) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

// UpdateProfile implements domain.UserService. Members may only edit their
// own name, father's name, occupation and email.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, actor *domain.User, upd domain.ProfileUpdate) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return nil, domain.NewValidationError("name cannot be empty")
		}
		user.Name = name
	}
	if upd.FatherName != nil {
		fatherName := strings.TrimSpace(*upd.FatherName)
		if fatherName == "" {
			return nil, domain.NewValidationError("fatherName cannot be empty")
		}
		user.FatherName = fatherName
	}
	if upd.Occupation != nil {
		user.Occupation = strings.TrimSpace(*upd.Occupation)
	}
	if upd.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*upd.Email))
		switch {
		case email == "":
			user.Email = nil
		case !strings.Contains(email, "@"):
			return nil, domain.NewValidationError("email is invalid")
		default:
			other, err := s.userRepo.FindByEmail(ctx, email)
			if err == nil && other.ID != user.ID {
				return nil, domain.ErrDuplicateEmail
			}
			if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
				return nil, fmt.Errorf("failed to look up email: %w", err)
			}
			user.Email = &email
		}
	}

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// List implements domain.UserService
func (s *UserServiceImpl) List(ctx context.Context, actor *domain.User) ([]*domain.User, error) {
	if err := s.policy.Require(ctx, actor, domain.ResourceUser, domain.ActionList); err != nil {
		return nil, err
	}
	return s.userRepo.List(ctx)
}

// VerifyMember implements domain.UserService. The SMS is best effort.
func (s *UserServiceImpl) VerifyMember(ctx context.Context, actor *domain.User, id uint) (*domain.User, error) {
	if err := s.policy.Require(ctx, actor, domain.ResourceMember, domain.ActionVerify); err != nil {
		return nil, err
	}

	member, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.SetVerified(ctx, id, true); err != nil {
		return nil, err
	}
	member.Verified = true

	if err := s.notifier.SendSMS(smsRecipient(member.Mobile), fmt.Sprintf(verifiedSMS, member.Name)); err != nil {
		s.log.Warn(ctx, "verification sms failed", "user_id", member.ID, "error", err)
	}

	emit(ctx, s.audit, domain.NewAuditEvent(domain.MemberVerifiedEvent, actor.ID).
		WithMetadata("member_id", member.ID))

	return member, nil
}

// MakeAdmin implements domain.UserService
func (s *UserServiceImpl) MakeAdmin(ctx context.Context, actor *domain.User, id uint) (*domain.User, error) {
	if err := s.policy.Require(ctx, actor, domain.ResourceUser, domain.ActionPromote); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Role == domain.RoleSuperAdmin {
		return nil, domain.NewValidationError("user is already a superadmin")
	}

	if user.Role != domain.RoleAdmin {
		if err := s.userRepo.SetRole(ctx, id, domain.RoleAdmin); err != nil {
			return nil, err
		}
		emit(ctx, s.audit, domain.NewAuditEvent(domain.RoleChangedEvent, actor.ID).
			WithMetadata("target_id", user.ID).
			WithMetadata("from", string(user.Role)).
			WithMetadata("to", string(domain.RoleAdmin)))
		user.Role = domain.RoleAdmin
	}
	return user, nil
}

// Delete implements domain.UserService. The user's screenshots go with it.
func (s *UserServiceImpl) Delete(ctx context.Context, actor *domain.User, id uint) error {
	if err := s.policy.Require(ctx, actor, domain.ResourceUser, domain.ActionDelete); err != nil {
		return err
	}
	if actor.ID == id {
		return domain.NewValidationError("you cannot delete your own account")
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	emit(ctx, s.audit, domain.NewAuditEvent(domain.UserDeletedEvent, actor.ID).
		WithMetadata("target_id", id))
	return nil
}

// smsRecipient turns a bare 10-digit mobile into an E.164 Indian number
func smsRecipient(mobile string) string {
	if strings.HasPrefix(mobile, "+") || len(mobile) != 10 {
		return mobile
	}
	return "+91" + mobile
}
