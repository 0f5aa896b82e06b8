package services

import (
	"context"
	"fmt"

	"github.com/casbin/casbin/v2"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
)

// CasbinEnforcerWrapper wraps the real Casbin enforcer to implement our interface
type CasbinEnforcerWrapper struct {
	enforcer *casbin.Enforcer
}

// NewCasbinEnforcerWrapper creates a wrapper for the real Casbin enforcer
func NewCasbinEnforcerWrapper(enforcer *casbin.Enforcer) domain.CasbinEnforcer {
	return &CasbinEnforcerWrapper{enforcer: enforcer}
}

func (w *CasbinEnforcerWrapper) AddPolicy(params ...interface{}) (bool, error) {
	return w.enforcer.AddPolicy(params...)
}

func (w *CasbinEnforcerWrapper) Enforce(rvals ...interface{}) (bool, error) {
	return w.enforcer.Enforce(rvals...)
}

func (w *CasbinEnforcerWrapper) GetPolicy() ([][]string, error) {
	return w.enforcer.GetPolicy()
}

// PolicyServiceImpl implements domain.PolicyService using Casbin. It is the
// only place role checks happen; handlers and services call Require.
type PolicyServiceImpl struct {
	enforcer domain.CasbinEnforcer
	audit    domain.AuditLogger
}

// NewPolicyService creates a new policy service
func NewPolicyService(enforcer *casbin.Enforcer, audit domain.AuditLogger) domain.PolicyService {
	return NewPolicyServiceWithEnforcer(NewCasbinEnforcerWrapper(enforcer), audit)
}

// NewPolicyServiceWithEnforcer creates a new policy service with a CasbinEnforcer interface (for testing)
func NewPolicyServiceWithEnforcer(enforcer domain.CasbinEnforcer, audit domain.AuditLogger) domain.PolicyService {
	return &PolicyServiceImpl{
		enforcer: enforcer,
		audit:    audit,
	}
}

// Require implements domain.PolicyService
func (p *PolicyServiceImpl) Require(ctx context.Context, actor *domain.User, resource domain.Resource, action domain.Action) error {
	if actor == nil {
		return domain.ErrForbidden
	}

	ok, err := p.CheckPermission(actor.Role, resource, action)
	if err != nil {
		return fmt.Errorf("failed to evaluate policy: %w", err)
	}
	if !ok {
		emit(ctx, p.audit, domain.NewAuditEvent(domain.AccessDeniedEvent, actor.ID).
			WithMetadata("role", string(actor.Role)).
			WithMetadata("resource", string(resource)).
			WithMetadata("action", string(action)).
			WithError(domain.ErrForbidden))
		return domain.ErrForbidden
	}
	return nil
}

// CheckPermission implements domain.PolicyService
func (p *PolicyServiceImpl) CheckPermission(role domain.Role, resource domain.Resource, action domain.Action) (bool, error) {
	return p.enforcer.Enforce(string(role), string(resource), string(action))
}

// GetPolicies implements domain.PolicyService
func (p *PolicyServiceImpl) GetPolicies() ([][]string, error) {
	policies, err := p.enforcer.GetPolicy()
	if err != nil {
		return nil, fmt.Errorf("failed to load policies: %w", err)
	}
	return policies, nil
}
