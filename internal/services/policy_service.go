package services

import (
	"context"
	"fmt"

	"github.com/Mr-Mosio/BaranBackend/domain"
)

// PolicyServiceImpl implements domain.PolicyService on a casbin enforcer
// whose policies mirror the role-permission rows in the database.
type PolicyServiceImpl struct {
	enforcer domain.CasbinEnforcer
	roleRepo domain.RoleRepository
}

// NewPolicyService creates a new policy service
func NewPolicyService(enforcer domain.CasbinEnforcer, roleRepo domain.RoleRepository) domain.PolicyService {
	return &PolicyServiceImpl{
		enforcer: enforcer,
		roleRepo: roleRepo,
	}
}

// SyncFromRoles implements domain.PolicyService. Re-derives the full policy
// set from the role model; rows for removed grants are dropped.
func (s *PolicyServiceImpl) SyncFromRoles(ctx context.Context) error {
	roles, err := s.roleRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list roles: %w", err)
	}

	wanted := make(map[[2]string]bool)
	for _, role := range roles {
		for _, perm := range role.Permissions {
			wanted[[2]string{role.Name, perm.Name}] = true
		}
	}

	existing, err := s.enforcer.GetPolicy()
	if err != nil {
		return fmt.Errorf("failed to read policies: %w", err)
	}
	for _, policy := range existing {
		if len(policy) < 2 {
			continue
		}
		key := [2]string{policy[0], policy[1]}
		if wanted[key] {
			delete(wanted, key)
			continue
		}
		if _, err := s.enforcer.RemovePolicy(policy[0], policy[1]); err != nil {
			return fmt.Errorf("failed to remove stale policy: %w", err)
		}
	}

	for key := range wanted {
		if _, err := s.enforcer.AddPolicy(key[0], key[1]); err != nil {
			return fmt.Errorf("failed to add policy: %w", err)
		}
	}

	return s.enforcer.SavePolicy()
}

// HasPermission implements domain.PolicyService
func (s *PolicyServiceImpl) HasPermission(roleName, permission string) (bool, error) {
	return s.enforcer.Enforce(roleName, permission)
}
