package services

import (
	"context"
	"fmt"

	"github.com/peerapat/gradlink/internal/app/models"
	"github.com/peerapat/gradlink/internal/app/models/dto"
	"github.com/peerapat/gradlink/internal/app/repositories"
	"github.com/peerapat/gradlink/internal/pkg/apperrors"
	"github.com/peerapat/gradlink/internal/pkg/logger"
)

// LifecycleService drives the onboarding state machine. An account moves
// from unassigned, through role selection, to profile completion; the role
// assignment happens exactly once and is never reversed.
type LifecycleService struct {
	accountRepo  repositories.IAccountRepository
	studentRepo  repositories.IStudentProfileRepository
	graduateRepo repositories.IGraduateProfileRepository
}

// NewLifecycleService creates a new LifecycleService
func NewLifecycleService(
	accountRepo repositories.IAccountRepository,
	studentRepo repositories.IStudentProfileRepository,
	graduateRepo repositories.IGraduateProfileRepository,
) *LifecycleService {
	return &LifecycleService{
		accountRepo:  accountRepo,
		studentRepo:  studentRepo,
		graduateRepo: graduateRepo,
	}
}

// AssignRole records the account's role choice. Request validation runs
// before the account lookup: a malformed role or a declined policy is
// reported even for ids that do not exist. Re-assigning the same role is
// an idempotent success; switching roles is a conflict.
func (s *LifecycleService) AssignRole(ctx context.Context, accountID int64, req *dto.AssignRoleRequest) (*dto.AssignRoleResponse, error) {
	role := models.Role(req.AccountType)
	if !role.Assignable() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidRole, req.AccountType)
	}
	if !req.AcceptPolicy {
		return nil, apperrors.ErrPolicyNotAccepted
	}

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !account.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	switch account.Role {
	case models.RoleUnassigned:
		if err := s.accountRepo.UpdateRole(ctx, accountID, role); err != nil {
			return nil, err
		}
		logger.Info().Int64("accountId", accountID).Str("role", string(role)).Msg("Role assigned")
	case role:
		// Same choice resubmitted, nothing to change.
	default:
		return nil, fmt.Errorf("%w: role already assigned as %s", apperrors.ErrConflict, account.Role)
	}

	step, err := s.nextStep(ctx, accountID, role)
	if err != nil {
		return nil, err
	}

	return &dto.AssignRoleResponse{
		Role:     string(role),
		NextStep: string(step),
	}, nil
}

// ResolveLifecycle reports where the account stands in onboarding. The role
// is always read fresh from the store; nothing here trusts token claims.
func (s *LifecycleService) ResolveLifecycle(ctx context.Context, accountID int64) (*dto.LifecycleResponse, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !account.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	step, err := s.nextStep(ctx, accountID, account.Role)
	if err != nil {
		return nil, err
	}

	resp := &dto.LifecycleResponse{
		RoleAssigned: account.Role != models.RoleUnassigned,
		NextStep:     string(step),
	}
	if resp.RoleAssigned {
		resp.Role = string(account.Role)
	}

	return resp, nil
}

// nextStep is the single routing rule shared by role assignment and
// lifecycle resolution, so the two endpoints can never disagree. The role
// switch is exhaustive over the closed role set.
func (s *LifecycleService) nextStep(ctx context.Context, accountID int64, role models.Role) (models.NextStep, error) {
	switch role {
	case models.RoleUnassigned:
		return models.StepSelectRole, nil
	case models.RoleStudent:
		exists, err := s.studentRepo.ExistsByAccountID(ctx, accountID)
		if err != nil {
			return "", err
		}
		if !exists {
			return models.StepStudentForm, nil
		}
		return models.StepDashboard, nil
	case models.RoleGraduate:
		exists, err := s.graduateRepo.ExistsByAccountID(ctx, accountID)
		if err != nil {
			return "", err
		}
		if !exists {
			return models.StepGraduateForm, nil
		}
		return models.StepDashboard, nil
	case models.RoleAdmin:
		return models.StepDashboard, nil
	default:
		return "", fmt.Errorf("%w: %s", apperrors.ErrInvalidRole, role)
	}
}
