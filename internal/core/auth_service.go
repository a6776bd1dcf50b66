package core

import (
	"context"
	"fmt"

	"workforce.service/internal/core/model"
	"workforce.service/internal/ports/repository"
)

// Role of an authenticated principal.
type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleManager    Role = "MANAGER"
	RoleEmployee   Role = "EMPLOYEE"
)

// Principal is what a successful login resolves to.
type Principal struct {
	ID   int64  `json:"id"`
	Role Role   `json:"role"`
	Name string `json:"name"`
}

// credentialLookup checks one account table for a matching credential.
// It returns (nil, nil) when the email is unknown to that table, letting
// the chain fall through to the next holder.
type credentialLookup func(ctx context.Context, email, password string) (*Principal, error)

// AuthService resolves a login against an ordered list of credential
// holders: super admin first, then manager, then employee. The stored
// credential is compared by plain equality, preserved from the system
// this replaces. Employees additionally must be ACCEPTED; a correct
// password on a non-accepted account yields ErrAccountNotActive, which
// is deliberately distinct from ErrInvalidCredentials.
type AuthService struct {
	lookups []credentialLookup
}

func NewAuthService(superAdmins repository.SuperAdminRepository, managers repository.ManagerRepository, employees repository.EmployeeRepository) *AuthService {
	return &AuthService{
		lookups: []credentialLookup{
			superAdminLookup(superAdmins),
			managerLookup(managers),
			employeeLookup(employees),
		},
	}
}

// Login walks the holder chain and returns the first match.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Principal, error) {
	for _, lookup := range s.lookups {
		principal, err := lookup(ctx, email, password)
		if err != nil {
			return nil, err
		}
		if principal != nil {
			return principal, nil
		}
	}
	return nil, ErrInvalidCredentials
}

func superAdminLookup(repo repository.SuperAdminRepository) credentialLookup {
	return func(ctx context.Context, email, password string) (*Principal, error) {
		admin, err := repo.FindByEmail(ctx, email)
		if err != nil {
			return nil, fmt.Errorf("failed to query super admin: %w", err)
		}
		if admin == nil || admin.Password != password {
			return nil, nil
		}
		return &Principal{ID: admin.ID, Role: RoleSuperAdmin, Name: "Super Admin"}, nil
	}
}

func managerLookup(repo repository.ManagerRepository) credentialLookup {
	return func(ctx context.Context, email, password string) (*Principal, error) {
		manager, err := repo.FindByEmail(ctx, email)
		if err != nil {
			return nil, fmt.Errorf("failed to query manager: %w", err)
		}
		if manager == nil || manager.Password != password {
			return nil, nil
		}
		return &Principal{ID: manager.ID, Role: RoleManager, Name: manager.Name}, nil
	}
}

func employeeLookup(repo repository.EmployeeRepository) credentialLookup {
	return func(ctx context.Context, email, password string) (*Principal, error) {
		e, err := repo.FindByEmail(ctx, email)
		if err != nil {
			return nil, fmt.Errorf("failed to query employee: %w", err)
		}
		if e == nil || e.Password != password {
			return nil, nil
		}
		if e.Status != model.ApprovalAccepted {
			return nil, ErrAccountNotActive
		}
		return &Principal{ID: e.ID, Role: RoleEmployee, Name: e.Name}, nil
	}
}
