package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/burhansaar3-alt/app/internal/domain/entity"
	"github.com/burhansaar3-alt/app/internal/domain/repository"
	"github.com/burhansaar3-alt/app/pkg/errors"
	"github.com/burhansaar3-alt/app/pkg/logger"
)

const resetTokenValidity = time.Hour

type AuthUseCase struct {
	userRepo repository.UserRepository
	auth     AuthProvider
}

func NewAuthUseCase(userRepo repository.UserRepository, auth AuthProvider) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		auth:     auth,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
	Role     string
}

type AuthResult struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	// Self-registration is limited to the two public roles. viewer and
	// admin accounts are provisioned by the operator.
	if input.Role == "" {
		input.Role = entity.RoleCustomer
	}
	if input.Role != entity.RoleCustomer && input.Role != entity.RoleStoreOwner {
		return nil, errors.BadRequest("Invalid account role", nil)
	}

	existingUser, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err == nil && existingUser != nil {
		return nil, errors.BadRequest("Email already registered", nil)
	}

	uid, err := uc.auth.CreateUser(ctx, input.Email, input.Password, input.Name)
	if err != nil {
		return nil, errors.Internal("Failed to create user in authentication provider", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:        uid,
		Email:     input.Email,
		Name:      input.Name,
		Phone:     input.Phone,
		Role:      input.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Internal("Failed to create user record", err)
	}

	token, err := uc.auth.SignInWithEmailPassword(input.Email, input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	return &AuthResult{User: user, Token: token}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	token, err := uc.auth.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, errors.Unauthorized("Invalid email or password", err)
	}

	uid, err := uc.auth.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Internal("Failed to verify token", err)
	}

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	return &AuthResult{User: user, Token: token}, nil
}

func (uc *AuthUseCase) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	return user, nil
}

// ForgotPassword issues a single-use reset token. The response to the
// caller is identical whether or not the email exists.
func (uc *AuthUseCase) ForgotPassword(ctx context.Context, email string) error {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		logger.Debug("forgot-password for unknown email")
		return nil
	}

	user.ResetToken = uuid.New().String()
	user.ResetTokenExpiry = time.Now().Add(resetTokenValidity)

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return errors.Internal("Failed to store reset token", err)
	}

	// Delivery of the token (email/SMS) happens out of band.
	logger.Info("password reset token issued for user %s", user.ID)
	return nil
}

func (uc *AuthUseCase) ResetPassword(ctx context.Context, token, newPassword string) error {
	if token == "" {
		return errors.BadRequest("Reset token is required", nil)
	}

	user, err := uc.userRepo.GetByResetToken(ctx, token)
	if err != nil {
		return errors.BadRequest("Invalid or expired reset token", err)
	}

	if time.Now().After(user.ResetTokenExpiry) {
		return errors.BadRequest("Invalid or expired reset token", nil)
	}

	if err := uc.auth.UpdateUserPassword(ctx, user.ID, newPassword); err != nil {
		return errors.Internal("Failed to update password", err)
	}

	user.ResetToken = ""
	user.ResetTokenExpiry = time.Time{}
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return errors.Internal("Failed to clear reset token", err)
	}

	return nil
}
