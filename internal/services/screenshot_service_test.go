package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/mocks"
)

type screenshotDeps struct {
	shots         *mocks.MockScreenshotRepository
	contributions *mocks.MockContributionRepository
	storage       *mocks.MockObjectStorage
	audit         *mocks.MockAuditLogger
}

func createScreenshotServiceForTest(t *testing.T) (*ScreenshotServiceImpl, *screenshotDeps) {
	t.Helper()

	d := &screenshotDeps{
		shots:         mocks.NewMockScreenshotRepository(),
		contributions: mocks.NewMockContributionRepository(),
		storage:       mocks.NewMockObjectStorage(),
		audit:         mocks.NewMockAuditLogger(),
	}
	users := mocks.NewMockUserRepository()
	member := createValidUser(t)
	users.FindByIDFunc = usersByID(member, createAdminUser(t), createSuperAdminUser(t))

	policy := mocks.NewMockPolicyService()
	contribSvc := NewContributionService(d.contributions, users, policy, nil)
	svc := NewScreenshotService(d.shots, contribSvc, d.storage, policy, d.audit).(*ScreenshotServiceImpl)
	return svc, d
}

func TestScreenshotServiceImpl_UploadURL(t *testing.T) {
	svc, d := createScreenshotServiceForTest(t)
	member := createValidUser(t)

	var presigned string
	d.storage.PresignUploadFunc = func(ctx context.Context, key string) (string, time.Time, error) {
		presigned = key
		return "https://signed/" + key, time.Now().Add(time.Minute), nil
	}

	ticket, err := svc.UploadURL(createTestContext(t), member, 2024, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(ticket.ObjectKey, "screenshots/1/2024/04/") {
		t.Errorf("unexpected key %s", ticket.ObjectKey)
	}
	if presigned != ticket.ObjectKey || ticket.UploadURL != "https://signed/"+ticket.ObjectKey {
		t.Errorf("ticket does not match presign call: %+v", ticket)
	}

	other, _ := svc.UploadURL(createTestContext(t), member, 2024, 4)
	if other.ObjectKey == ticket.ObjectKey {
		t.Error("expected unique keys per ticket")
	}

	if _, err := svc.UploadURL(createTestContext(t), member, 2024, 0); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestScreenshotServiceImpl_Submit(t *testing.T) {
	member := createValidUser(t)

	tests := []struct {
		name          string
		key           string
		expectedError error
	}{
		{"own key accepted", "screenshots/1/2024/04/abc", nil},
		{"someone else's key", "screenshots/2/2024/04/abc", domain.ErrValidation},
		{"prefix collision", "screenshots/10/2024/04/abc", domain.ErrValidation},
		{"key from another month", "screenshots/1/2023/11/abc", domain.ErrValidation},
		{"key from another year", "screenshots/1/2023/04/abc", domain.ErrValidation},
		{"bare prefix", "screenshots/1/2024/04/", domain.ErrValidation},
		{"path traversal", "screenshots/1/../2/abc", domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := createScreenshotServiceForTest(t)
			created := 0
			d.shots.CreateFunc = func(ctx context.Context, s *domain.Screenshot) error {
				created++
				s.ID = 9
				return nil
			}

			shot, err := svc.Submit(createTestContext(t), member, 2024, 4, tt.key)
			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected %v, got %v", tt.expectedError, err)
				}
				if created != 0 {
					t.Error("store must be unchanged")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if shot.URL != "https://bucket.test/"+tt.key || shot.UserID != member.ID || shot.Verified {
				t.Errorf("unexpected screenshot %+v", shot)
			}
		})
	}
}

func TestScreenshotServiceImpl_Verify(t *testing.T) {
	actors := actorsForGuardTests(t)

	tests := []struct {
		name          string
		actor         *domain.User
		id            uint
		expectedError error
	}{
		{"admin verifies", actors[domain.RoleAdmin], 9, nil},
		{"member forbidden", actors[domain.RoleMember], 9, domain.ErrForbidden},
		{"superadmin cannot record contributions", actors[domain.RoleSuperAdmin], 9, domain.ErrForbidden},
		{"unknown screenshot", actors[domain.RoleAdmin], 404, domain.ErrScreenshotNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := createScreenshotServiceForTest(t)
			d.shots.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Screenshot, error) {
				if id != 9 {
					return nil, domain.ErrScreenshotNotFound
				}
				return &domain.Screenshot{ID: 9, UserID: 1, Year: 2024, Month: 4}, nil
			}
			var verified *domain.Contribution
			d.shots.VerifyWithContributionFunc = func(ctx context.Context, id uint, c *domain.Contribution) (*domain.Contribution, error) {
				verified = c
				stored := *c
				stored.ID = 3
				return &stored, nil
			}
			d.contributions.UpsertFunc = func(ctx context.Context, c *domain.Contribution) (*domain.Contribution, error) {
				t.Error("contribution must be written with the screenshot, not on its own")
				return c, nil
			}

			c, err := svc.Verify(createTestContext(t), tt.actor, tt.id, 500, "")
			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected %v, got %v", tt.expectedError, err)
				}
				if verified != nil {
					t.Error("store must be unchanged")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if verified == nil {
				t.Fatal("expected screenshot to be verified with its contribution")
			}
			if c.ID != 3 || c.UserID != 1 || c.Amount != 500 || c.Mode != domain.ModeOnline {
				t.Errorf("unexpected contribution %+v", c)
			}
			if c.ScreenshotID == nil || *c.ScreenshotID != 9 {
				t.Errorf("expected screenshot link, got %v", c.ScreenshotID)
			}
			if !c.ContributionDate.Equal(domain.MonthStart(2024, 4)) {
				t.Errorf("unexpected month %v", c.ContributionDate)
			}
		})
	}
}

func TestScreenshotServiceImpl_Verify_StoreFailureLeavesNothingBehind(t *testing.T) {
	svc, d := createScreenshotServiceForTest(t)
	admin := createAdminUser(t)

	d.shots.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Screenshot, error) {
		return &domain.Screenshot{ID: id, UserID: 1, Year: 2024, Month: 4}, nil
	}
	upserts := 0
	d.contributions.UpsertFunc = func(ctx context.Context, c *domain.Contribution) (*domain.Contribution, error) {
		upserts++
		return c, nil
	}
	dbDown := errors.New("db down")
	d.shots.VerifyWithContributionFunc = func(ctx context.Context, id uint, c *domain.Contribution) (*domain.Contribution, error) {
		return nil, dbDown
	}

	_, err := svc.Verify(createTestContext(t), admin, 9, 500, domain.ModeCash)
	if !errors.Is(err, dbDown) {
		t.Fatalf("expected store error, got %v", err)
	}
	if upserts != 0 {
		t.Errorf("expected no contribution written outside the transaction, got %d", upserts)
	}
	if len(d.audit.Events("")) != 0 {
		t.Errorf("expected no audit event for a failed verification, got %d", len(d.audit.Events("")))
	}
}

func TestScreenshotServiceImpl_Verify_AuditsContribution(t *testing.T) {
	svc, d := createScreenshotServiceForTest(t)
	admin := createAdminUser(t)
	d.shots.FindByIDFunc = func(ctx context.Context, id uint) (*domain.Screenshot, error) {
		return &domain.Screenshot{ID: id, UserID: 1, Year: 2024, Month: 4}, nil
	}

	if _, err := svc.Verify(createTestContext(t), admin, 9, 500, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	events := d.audit.Events(domain.ContributionRecordedEvent)
	if len(events) != 1 {
		t.Fatalf("expected one audit event, got %d", len(events))
	}
	event := events[0]
	if event.EventType != domain.ContributionRecordedEvent || event.Metadata["screenshot_id"] != uint(9) {
		t.Errorf("unexpected audit event %+v", event)
	}
}

func TestScreenshotServiceImpl_ListForMonth(t *testing.T) {
	svc, _ := createScreenshotServiceForTest(t)
	actors := actorsForGuardTests(t)

	if _, err := svc.ListForMonth(createTestContext(t), actors[domain.RoleMember], 2024, 4); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("member: expected ErrForbidden, got %v", err)
	}
	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleSuperAdmin} {
		if _, err := svc.ListForMonth(createTestContext(t), actors[role], 2024, 4); err != nil {
			t.Errorf("%s: unexpected error %v", role, err)
		}
	}
}
