package mocks

import (
	"context"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
)

// MockPolicyService implements domain.PolicyService interface for testing.
// By default it grants exactly what domain.DefaultPermissions grants.
type MockPolicyService struct {
	RequireFunc         func(ctx context.Context, actor *domain.User, resource domain.Resource, action domain.Action) error
	CheckPermissionFunc func(role domain.Role, resource domain.Resource, action domain.Action) (bool, error)
	GetPoliciesFunc     func() ([][]string, error)
}

// NewMockPolicyService creates a new MockPolicyService with default behaviors
func NewMockPolicyService() *MockPolicyService {
	return &MockPolicyService{}
}

// Require returns domain.ErrForbidden unless the actor's role is granted
func (m *MockPolicyService) Require(ctx context.Context, actor *domain.User, resource domain.Resource, action domain.Action) error {
	if m.RequireFunc != nil {
		return m.RequireFunc(ctx, actor, resource, action)
	}
	if actor == nil {
		return domain.ErrForbidden
	}
	ok, err := m.CheckPermission(actor.Role, resource, action)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrForbidden
	}
	return nil
}

// CheckPermission checks if a role has permission for a resource and action
func (m *MockPolicyService) CheckPermission(role domain.Role, resource domain.Resource, action domain.Action) (bool, error) {
	if m.CheckPermissionFunc != nil {
		return m.CheckPermissionFunc(role, resource, action)
	}
	for _, p := range domain.DefaultPermissions() {
		if p.Role == role && p.Resource == resource && p.Action == action {
			return true, nil
		}
	}
	return false, nil
}

// GetPolicies returns the policy table
func (m *MockPolicyService) GetPolicies() ([][]string, error) {
	if m.GetPoliciesFunc != nil {
		return m.GetPoliciesFunc()
	}
	var out [][]string
	for _, p := range domain.DefaultPermissions() {
		out = append(out, []string{string(p.Role), string(p.Resource), string(p.Action)})
	}
	return out, nil
}

// Compile-time interface compliance verification
var _ domain.PolicyService = (*MockPolicyService)(nil)
