package mocks

import (
	"context"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
)

// MockScreenshotService implements domain.ScreenshotService for handler tests
type MockScreenshotService struct {
	UploadURLFunc    func(ctx context.Context, actor *domain.User, year, month int) (*domain.UploadTicket, error)
	SubmitFunc       func(ctx context.Context, actor *domain.User, year, month int, objectKey string) (*domain.Screenshot, error)
	ListMineFunc     func(ctx context.Context, actor *domain.User) ([]*domain.Screenshot, error)
	ListForMonthFunc func(ctx context.Context, actor *domain.User, year, month int) ([]*domain.Screenshot, error)
	VerifyFunc       func(ctx context.Context, actor *domain.User, id uint, amount int64, mode string) (*domain.Contribution, error)
}

func NewMockScreenshotService() *MockScreenshotService {
	return &MockScreenshotService{}
}

func (m *MockScreenshotService) UploadURL(ctx context.Context, actor *domain.User, year, month int) (*domain.UploadTicket, error) {
	if m.UploadURLFunc != nil {
		return m.UploadURLFunc(ctx, actor, year, month)
	}
	return &domain.UploadTicket{ObjectKey: "screenshots/key", UploadURL: "https://bucket.test/screenshots/key"}, nil
}

func (m *MockScreenshotService) Submit(ctx context.Context, actor *domain.User, year, month int, objectKey string) (*domain.Screenshot, error) {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, actor, year, month, objectKey)
	}
	return &domain.Screenshot{ID: 1, UserID: actor.ID, Year: year, Month: month, ObjectKey: objectKey}, nil
}

func (m *MockScreenshotService) ListMine(ctx context.Context, actor *domain.User) ([]*domain.Screenshot, error) {
	if m.ListMineFunc != nil {
		return m.ListMineFunc(ctx, actor)
	}
	return []*domain.Screenshot{}, nil
}

func (m *MockScreenshotService) ListForMonth(ctx context.Context, actor *domain.User, year, month int) ([]*domain.Screenshot, error) {
	if m.ListForMonthFunc != nil {
		return m.ListForMonthFunc(ctx, actor, year, month)
	}
	return []*domain.Screenshot{}, nil
}

func (m *MockScreenshotService) Verify(ctx context.Context, actor *domain.User, id uint, amount int64, mode string) (*domain.Contribution, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, actor, id, amount, mode)
	}
	return nil, domain.ErrScreenshotNotFound
}

var _ domain.ScreenshotService = (*MockScreenshotService)(nil)
