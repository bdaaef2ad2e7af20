package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peerapat/gradlink/internal/app/models"
	"github.com/peerapat/gradlink/internal/app/models/dto"
	"github.com/peerapat/gradlink/internal/app/services"
	"github.com/peerapat/gradlink/internal/pkg/apperrors"
)

func newLifecycleFixture() (*services.LifecycleService, *MockAccountRepository, *MockStudentProfileRepository, *MockGraduateProfileRepository) {
	accountRepo := new(MockAccountRepository)
	studentRepo := new(MockStudentProfileRepository)
	graduateRepo := new(MockGraduateProfileRepository)
	svc := services.NewLifecycleService(accountRepo, studentRepo, graduateRepo)
	return svc, accountRepo, studentRepo, graduateRepo
}

func activeAccount(id int64, role models.Role) *models.Account {
	return &models.Account{
		ID:       id,
		Email:    "somchai@example.com",
		Role:     role,
		IsActive: true,
	}
}

func TestAssignRole_FirstAssignment(t *testing.T) {
	ctx := context.Background()
	svc, accountRepo, studentRepo, _ := newLifecycleFixture()

	accountRepo.On("GetByID", ctx, int64(1)).Return(activeAccount(1, models.RoleUnassigned), nil)
	accountRepo.On("UpdateRole", ctx, int64(1), models.RoleStudent).Return(nil)
	studentRepo.On("ExistsByAccountID", ctx, int64(1)).Return(false, nil)

	resp, err := svc.AssignRole(ctx, 1, &dto.AssignRoleRequest{
		AccountType:  "student",
		AcceptPolicy: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "student", resp.Role)
	assert.Equal(t, "student-form", resp.NextStep)
	accountRepo.AssertExpectations(t)
}

func TestAssignRole_InvalidRoleBeforeAnythingElse(t *testing.T) {
	ctx := context.Background()
	svc, accountRepo, _, _ := newLifecycleFixture()

	// Policy false and account missing, but the malformed role wins.
	_, err := svc.AssignRole(ctx, 999, &dto.AssignRoleRequest{
		AccountType:  "admin",
		AcceptPolicy: false,
	})

	require.ErrorIs(t, err, apperrors.ErrInvalidRole)
	accountRepo.AssertNotCalled(t, "GetByID")
}

func TestAssignRole_PolicyBeforeAccountLookup(t *testing.T) {
	ctx := context.Background()
	svc, accountRepo, _, _ := newLifecycleFixture()

	_, err := svc.AssignRole(ctx, 999, &dto.AssignRoleRequest{
		AccountType:  "graduate",
		AcceptPolicy: false,
	})

	require.ErrorIs(t, err, apperrors.ErrPolicyNotAccepted)
	accountRepo.AssertNotCalled(t, "GetByID")
}

func TestAssignRole_AccountNotFound(t *testing.T) {
	ctx := context.Background()
	svc, accountRepo, _, _ := newLifecycleFixture()

	accountRepo.On("GetByID", ctx, int64(42)).Return(nil, apperrors.ErrAccountNotFound)

	_, err := svc.AssignRole(ctx, 42, &dto.AssignRoleRequest{
		AccountType:  "student",
		AcceptPolicy: true,
	})

	require.ErrorIs(t, err, apperrors.ErrAccountNotFound)
}

func TestAssignRole_SameRoleIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, accountRepo, _, graduateRepo := newLifecycleFixture()

	accountRepo.On("GetByID", ctx, int64(7)).Return(activeAccount(7, models.RoleGraduate), nil)
	graduateRepo.On("ExistsByAccountID", ctx, int64(7)).Return(true, nil)

	resp, err := svc.AssignRole(ctx, 7, &dto.AssignRoleRequest{
		AccountType:  "graduate",
		AcceptPolicy: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "graduate", resp.Role)
	assert.Equal(t, "dashboard", resp.NextStep)
	accountRepo.AssertNotCalled(t, "UpdateRole")
}

func TestAssignRole_SwitchingRolesConflicts(t *testing.T) {
	ctx := context.Background()
	svc, accountRepo, _, _ := newLifecycleFixture()

	accountRepo.On("GetByID", ctx, int64(7)).Return(activeAccount(7, models.RoleStudent), nil)

	_, err := svc.AssignRole(ctx, 7, &dto.AssignRoleRequest{
		AccountType:  "graduate",
		AcceptPolicy: true,
	})

	require.ErrorIs(t, err, apperrors.ErrConflict)
	accountRepo.AssertNotCalled(t, "UpdateRole")
}

func TestAssignRole_DisabledAccount(t *testing.T) {
	ctx := context.Background()
	svc, accountRepo, _, _ := newLifecycleFixture()

	account := activeAccount(3, models.RoleUnassigned)
	account.IsActive = false
	accountRepo.On("GetByID", ctx, int64(3)).Return(account, nil)

	_, err := svc.AssignRole(ctx, 3, &dto.AssignRoleRequest{
		AccountType:  "student",
		AcceptPolicy: true,
	})

	require.ErrorIs(t, err, apperrors.ErrAccountDisabled)
}

func TestResolveLifecycle_Unassigned(t *testing.T) {
	ctx := context.Background()
	svc, accountRepo, _, _ := newLifecycleFixture()

	accountRepo.On("GetByID", ctx, int64(1)).Return(activeAccount(1, models.RoleUnassigned), nil)

	resp, err := svc.ResolveLifecycle(ctx, 1)

	require.NoError(t, err)
	assert.False(t, resp.RoleAssigned)
	assert.Empty(t, resp.Role)
	assert.Equal(t, "select-role", resp.NextStep)
}

func TestResolveLifecycle_RoleWithoutProfile(t *testing.T) {
	ctx := context.Background()
	svc, accountRepo, _, graduateRepo := newLifecycleFixture()

	accountRepo.On("GetByID", ctx, int64(5)).Return(activeAccount(5, models.RoleGraduate), nil)
	graduateRepo.On("ExistsByAccountID", ctx, int64(5)).Return(false, nil)

	resp, err := svc.ResolveLifecycle(ctx, 5)

	require.NoError(t, err)
	assert.True(t, resp.RoleAssigned)
	assert.Equal(t, "graduate", resp.Role)
	assert.Equal(t, "graduate-form", resp.NextStep)
}

func TestResolveLifecycle_CompleteProfile(t *testing.T) {
	ctx := context.Background()
	svc, accountRepo, studentRepo, _ := newLifecycleFixture()

	accountRepo.On("GetByID", ctx, int64(5)).Return(activeAccount(5, models.RoleStudent), nil)
	studentRepo.On("ExistsByAccountID", ctx, int64(5)).Return(true, nil)

	resp, err := svc.ResolveLifecycle(ctx, 5)

	require.NoError(t, err)
	assert.True(t, resp.RoleAssigned)
	assert.Equal(t, "dashboard", resp.NextStep)
}

// Assignment and resolution share one routing rule, so their answers for
// the same account state must always agree.
func TestAssignAndResolveAgree(t *testing.T) {
	cases := []struct {
		name       string
		role       models.Role
		hasProfile bool
		wantStep   string
	}{
		{"student without profile", models.RoleStudent, false, "student-form"},
		{"student with profile", models.RoleStudent, true, "dashboard"},
		{"graduate without profile", models.RoleGraduate, false, "graduate-form"},
		{"graduate with profile", models.RoleGraduate, true, "dashboard"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, accountRepo, studentRepo, graduateRepo := newLifecycleFixture()
			ctx := context.Background()

			accountRepo.On("GetByID", ctx, int64(9)).Return(activeAccount(9, tc.role), nil)
			studentRepo.On("ExistsByAccountID", ctx, int64(9)).Return(tc.hasProfile, nil)
			graduateRepo.On("ExistsByAccountID", ctx, int64(9)).Return(tc.hasProfile, nil)

			assignResp, err := svc.AssignRole(ctx, 9, &dto.AssignRoleRequest{
				AccountType:  string(tc.role),
				AcceptPolicy: true,
			})
			require.NoError(t, err)

			resolveResp, err := svc.ResolveLifecycle(ctx, 9)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStep, assignResp.NextStep)
			assert.Equal(t, assignResp.NextStep, resolveResp.NextStep)
		})
	}
}
