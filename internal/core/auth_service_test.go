package core

import (
	"context"
	"errors"
	"testing"

	"workforce.service/internal/core/model"
)

func newAuthFixture() (*AuthService, *fakeSuperAdminRepo, *fakeManagerRepo, *fakeEmployeeRepo) {
	superAdmins := newFakeSuperAdminRepo()
	managers := newFakeManagerRepo()
	employees := newFakeEmployeeRepo()
	return NewAuthService(superAdmins, managers, employees), superAdmins, managers, employees
}

func TestLoginSuperAdmin(t *testing.T) {
	t.Parallel()
	svc, superAdmins, _, _ := newAuthFixture()
	superAdmins.rows["root@corp.test"] = model.SuperAdmin{ID: 1, Email: "root@corp.test", Password: "rootpw"}

	p, err := svc.Login(context.Background(), "root@corp.test", "rootpw")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if p.Role != RoleSuperAdmin {
		t.Errorf("role = %s, want %s", p.Role, RoleSuperAdmin)
	}
}

func TestLoginManager(t *testing.T) {
	t.Parallel()
	svc, _, managers, _ := newAuthFixture()
	ctx := context.Background()
	id, _ := managers.Create(ctx, &model.Manager{Name: "Dana", Email: "dana@corp.test", Password: "danapw"})

	p, err := svc.Login(ctx, "dana@corp.test", "danapw")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if p.Role != RoleManager || p.ID != id || p.Name != "Dana" {
		t.Errorf("principal = %+v, want manager %d Dana", p, id)
	}
}

func TestLoginAcceptedEmployee(t *testing.T) {
	t.Parallel()
	svc, _, _, employees := newAuthFixture()
	ctx := context.Background()
	id, _ := employees.Create(ctx, &model.Employee{
		Name: "Alice", Email: "alice@corp.test", Password: "alicepw", Status: model.ApprovalAccepted,
	})

	p, err := svc.Login(ctx, "alice@corp.test", "alicepw")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if p.Role != RoleEmployee || p.ID != id {
		t.Errorf("principal = %+v, want employee %d", p, id)
	}
}

func TestLoginPendingEmployeeIsNotActive(t *testing.T) {
	t.Parallel()
	svc, _, _, employees := newAuthFixture()
	ctx := context.Background()
	employees.Create(ctx, &model.Employee{
		Name: "Bob", Email: "bob@corp.test", Password: "bobpw", Status: model.ApprovalPending,
	})

	// Correct credentials on a non-accepted account must be distinguishable
	// from a bad password.
	_, err := svc.Login(ctx, "bob@corp.test", "bobpw")
	if !errors.Is(err, ErrAccountNotActive) {
		t.Fatalf("Login() error = %v, want ErrAccountNotActive", err)
	}
}

func TestLoginDeactivatedEmployeeIsNotActive(t *testing.T) {
	t.Parallel()
	svc, _, _, employees := newAuthFixture()
	ctx := context.Background()
	employees.Create(ctx, &model.Employee{
		Name: "Carol", Email: "carol@corp.test", Password: "carolpw", Status: model.ApprovalDeactivated,
	})

	_, err := svc.Login(ctx, "carol@corp.test", "carolpw")
	if !errors.Is(err, ErrAccountNotActive) {
		t.Fatalf("Login() error = %v, want ErrAccountNotActive", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	t.Parallel()
	svc, _, _, employees := newAuthFixture()
	ctx := context.Background()
	employees.Create(ctx, &model.Employee{
		Name: "Alice", Email: "alice@corp.test", Password: "alicepw", Status: model.ApprovalAccepted,
	})

	_, err := svc.Login(ctx, "alice@corp.test", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	t.Parallel()
	svc, _, _, _ := newAuthFixture()

	_, err := svc.Login(context.Background(), "nobody@corp.test", "pw")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}
