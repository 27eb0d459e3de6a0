package usecase

import (
	"context"

	"github.com/burhansaar3-alt/app/internal/domain/entity"
	"github.com/burhansaar3-alt/app/internal/domain/repository"
	"github.com/burhansaar3-alt/app/internal/domain/service"
	"github.com/burhansaar3-alt/app/pkg/errors"
	"github.com/burhansaar3-alt/app/pkg/logger"
)

type UserUseCase struct {
	userRepo repository.UserRepository
	auth     AuthProvider
	policy   *service.Policy
}

func NewUserUseCase(userRepo repository.UserRepository, auth AuthProvider, policy *service.Policy) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		auth:     auth,
		policy:   policy,
	}
}

func (uc *UserUseCase) ListUsers(ctx context.Context, actor *entity.User, limit, offset int) ([]*entity.User, int64, error) {
	if !uc.policy.CanViewAdminData(actor) {
		return nil, 0, errors.Forbidden("Only admins can list users", nil)
	}
	return uc.userRepo.List(ctx, limit, offset)
}

// ChangeRole assigns a stored role to another account. Only the super
// admin may do this, and never to themselves.
func (uc *UserUseCase) ChangeRole(ctx context.Context, actor *entity.User, targetID, role string) (*entity.User, error) {
	if !entity.ValidRole(role) {
		return nil, errors.BadRequest("Invalid role", nil)
	}

	target, err := uc.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if !uc.policy.CanChangeUserRole(actor, target) {
		if actor.ID == target.ID {
			return nil, errors.Forbidden("You cannot change your own role", nil)
		}
		return nil, errors.Forbidden("You don't have permission to change user roles", nil)
	}

	target.Role = role
	if err := uc.userRepo.Update(ctx, target); err != nil {
		return nil, err
	}

	logger.Info("user %s role changed to %s by %s", target.ID, role, actor.ID)
	return target, nil
}

func (uc *UserUseCase) DeleteUser(ctx context.Context, actor *entity.User, targetID string) error {
	target, err := uc.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}

	if !uc.policy.CanDeleteUser(actor, target) {
		if actor.ID == target.ID {
			return errors.Forbidden("You cannot delete your own account", nil)
		}
		return errors.Forbidden("You don't have permission to delete accounts", nil)
	}

	if err := uc.auth.DeleteUser(ctx, targetID); err != nil {
		return errors.Internal("Failed to delete user credentials", err)
	}

	return uc.userRepo.Delete(ctx, targetID)
}
