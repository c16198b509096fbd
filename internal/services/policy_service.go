package services

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/you/profilecms/domain"
)

// enforcerAdapter narrows *casbin.Enforcer to the domain.CasbinEnforcer
// interface so the policy service and its tests never touch the concrete
// casbin type.
type enforcerAdapter struct {
	e *casbin.Enforcer
}

func (a *enforcerAdapter) AddPolicy(params ...interface{}) (bool, error) {
	return a.e.AddPolicy(params...)
}

func (a *enforcerAdapter) RemovePolicy(params ...interface{}) (bool, error) {
	return a.e.RemovePolicy(params...)
}

func (a *enforcerAdapter) Enforce(rvals ...interface{}) (bool, error) {
	return a.e.Enforce(rvals...)
}

func (a *enforcerAdapter) GetPolicy() ([][]string, error) {
	return a.e.GetPolicy()
}

func (a *enforcerAdapter) SavePolicy() error {
	return a.e.SavePolicy()
}

// PolicyServiceImpl implements domain.PolicyService. Rules decide which
// admin roles reach which admin API resources; mutations persist through
// the enforcer's adapter immediately.
type PolicyServiceImpl struct {
	enforcer domain.CasbinEnforcer
}

// NewPolicyService creates a new policy service
func NewPolicyService(enforcer *casbin.Enforcer) domain.PolicyService {
	return &PolicyServiceImpl{enforcer: &enforcerAdapter{e: enforcer}}
}

// NewPolicyServiceWithEnforcer creates a policy service over any
// CasbinEnforcer (used by tests)
func NewPolicyServiceWithEnforcer(enforcer domain.CasbinEnforcer) domain.PolicyService {
	return &PolicyServiceImpl{enforcer: enforcer}
}

// AddPolicy implements domain.PolicyService
func (p *PolicyServiceImpl) AddPolicy(role, resource, action string) error {
	if _, err := p.enforcer.AddPolicy(role, resource, action); err != nil {
		return fmt.Errorf("failed to add policy: %w", err)
	}
	return p.enforcer.SavePolicy()
}

// RemovePolicy implements domain.PolicyService
func (p *PolicyServiceImpl) RemovePolicy(role, resource, action string) error {
	if _, err := p.enforcer.RemovePolicy(role, resource, action); err != nil {
		return fmt.Errorf("failed to remove policy: %w", err)
	}
	return p.enforcer.SavePolicy()
}

// CheckPermission implements domain.PolicyService
func (p *PolicyServiceImpl) CheckPermission(role, resource, action string) (bool, error) {
	return p.enforcer.Enforce(role, resource, action)
}

// GetPolicies implements domain.PolicyService
func (p *PolicyServiceImpl) GetPolicies() [][]string {
	policies, err := p.enforcer.GetPolicy()
	if err != nil {
		return nil
	}
	return policies
}
