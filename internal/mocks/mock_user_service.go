package mocks

import (
	"context"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
)

// MockUserService implements domain.UserService for handler tests
type MockUserService struct {
	ProfileFunc       func(ctx context.Context, id uint) (*domain.User, error)
	UpdateProfileFunc func(ctx context.Context, actor *domain.User, upd domain.ProfileUpdate) (*domain.User, error)
	ListFunc          func(ctx context.Context, actor *domain.User) ([]*domain.User, error)
	VerifyMemberFunc  func(ctx context.Context, actor *domain.User, id uint) (*domain.User, error)
	MakeAdminFunc     func(ctx context.Context, actor *domain.User, id uint) (*domain.User, error)
	DeleteFunc        func(ctx context.Context, actor *domain.User, id uint) error
}

func NewMockUserService() *MockUserService {
	return &MockUserService{}
}

func (m *MockUserService) Profile(ctx context.Context, id uint) (*domain.User, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserService) UpdateProfile(ctx context.Context, actor *domain.User, upd domain.ProfileUpdate) (*domain.User, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, actor, upd)
	}
	return actor, nil
}

func (m *MockUserService) List(ctx context.Context, actor *domain.User) ([]*domain.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, actor)
	}
	return []*domain.User{}, nil
}

func (m *MockUserService) VerifyMember(ctx context.Context, actor *domain.User, id uint) (*domain.User, error) {
	if m.VerifyMemberFunc != nil {
		return m.VerifyMemberFunc(ctx, actor, id)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserService) MakeAdmin(ctx context.Context, actor *domain.User, id uint) (*domain.User, error) {
	if m.MakeAdminFunc != nil {
		return m.MakeAdminFunc(ctx, actor, id)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserService) Delete(ctx context.Context, actor *domain.User, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, actor, id)
	}
	return nil
}

var _ domain.UserService = (*MockUserService)(nil)
