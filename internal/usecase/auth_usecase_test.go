package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/burhansaar3-alt/app/internal/domain/entity"
)

func newAuthFixture() (*AuthUseCase, *fakeUserRepo, *fakeAuthProvider) {
	userRepo := newFakeUserRepo()
	auth := &fakeAuthProvider{}
	return NewAuthUseCase(userRepo, auth), userRepo, auth
}

func TestRegisterDefaultsToCustomer(t *testing.T) {
	uc, _, _ := newAuthFixture()

	result, err := uc.Register(context.Background(), RegisterInput{
		Email:    "new@example.com",
		Password: "secret123",
		Name:     "New User",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, result.User.Role)
	assert.NotEmpty(t, result.Token)
}

func TestRegisterStoreOwner(t *testing.T) {
	uc, _, _ := newAuthFixture()

	result, err := uc.Register(context.Background(), RegisterInput{
		Email:    "shop@example.com",
		Password: "secret123",
		Name:     "Shop",
		Role:     entity.RoleStoreOwner,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStoreOwner, result.User.Role)
}

// Self-registration must never produce elevated accounts.
func TestRegisterRejectsElevatedRoles(t *testing.T) {
	uc, _, _ := newAuthFixture()

	for _, role := range []string{entity.RoleAdmin, entity.RoleViewer, "super_admin"} {
		_, err := uc.Register(context.Background(), RegisterInput{
			Email:    "sneaky@example.com",
			Password: "secret123",
			Name:     "Sneaky",
			Role:     role,
		})
		assert.Error(t, err, "role %s should be rejected", role)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	uc, userRepo, _ := newAuthFixture()
	ctx := context.Background()

	require.NoError(t, userRepo.Create(ctx, &entity.User{ID: "u1", Email: "taken@example.com"}))

	_, err := uc.Register(ctx, RegisterInput{Email: "taken@example.com", Password: "x", Name: "y"})
	assert.Error(t, err)
}

func TestForgotPasswordUnknownEmailIsSilent(t *testing.T) {
	uc, _, _ := newAuthFixture()

	// Same outcome as a known email: no error, no information leak.
	assert.NoError(t, uc.ForgotPassword(context.Background(), "nobody@example.com"))
}

func TestForgotAndResetPassword(t *testing.T) {
	uc, userRepo, _ := newAuthFixture()
	ctx := context.Background()

	user := &entity.User{ID: "u1", Email: "u1@example.com", Role: entity.RoleCustomer}
	require.NoError(t, userRepo.Create(ctx, user))

	require.NoError(t, uc.ForgotPassword(ctx, user.Email))

	stored, _ := userRepo.GetByID(ctx, user.ID)
	require.NotEmpty(t, stored.ResetToken)

	require.NoError(t, uc.ResetPassword(ctx, stored.ResetToken, "newsecret"))

	// The token is single-use.
	cleared, _ := userRepo.GetByID(ctx, user.ID)
	assert.Empty(t, cleared.ResetToken)
	assert.Error(t, uc.ResetPassword(ctx, stored.ResetToken, "again"))
}

func TestResetPasswordExpiredToken(t *testing.T) {
	uc, userRepo, _ := newAuthFixture()
	ctx := context.Background()

	user := &entity.User{
		ID:               "u1",
		Email:            "u1@example.com",
		ResetToken:       "stale-token",
		ResetTokenExpiry: time.Now().Add(-time.Minute),
	}
	require.NoError(t, userRepo.Create(ctx, user))

	assert.Error(t, uc.ResetPassword(ctx, "stale-token", "newsecret"))
}

func TestResetPasswordEmptyToken(t *testing.T) {
	uc, _, _ := newAuthFixture()
	assert.Error(t, uc.ResetPassword(context.Background(), "", "newsecret"))
}
