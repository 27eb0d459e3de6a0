package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/burhansaar3-alt/app/internal/domain/entity"
	"github.com/burhansaar3-alt/app/internal/domain/repository"
	"github.com/burhansaar3-alt/app/internal/domain/service"
	"github.com/burhansaar3-alt/app/pkg/errors"
)

func newStoreFixture() (*StoreUseCase, *fakeStoreRepo, *fakeProductRepo) {
	storeRepo := newFakeStoreRepo()
	productRepo := newFakeProductRepo()
	policy := service.NewPolicy(testSuperEmail)
	return NewStoreUseCase(storeRepo, productRepo, policy), storeRepo, productRepo
}

func TestCreateStore(t *testing.T) {
	uc, _, _ := newStoreFixture()
	owner := &entity.User{ID: "owner-1", Role: entity.RoleStoreOwner}

	store, err := uc.CreateStore(context.Background(), owner, CreateStoreInput{StoreName: "Damascus Threads"})
	require.NoError(t, err)
	assert.Equal(t, entity.StorePending, store.Status)
	assert.Equal(t, owner.ID, store.OwnerID)
}

func TestCreateStoreOnePerOwner(t *testing.T) {
	uc, _, _ := newStoreFixture()
	ctx := context.Background()
	owner := &entity.User{ID: "owner-1", Role: entity.RoleStoreOwner}

	_, err := uc.CreateStore(ctx, owner, CreateStoreInput{StoreName: "First"})
	require.NoError(t, err)

	_, err = uc.CreateStore(ctx, owner, CreateStoreInput{StoreName: "Second"})
	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONFLICT", appErr.Code)
}

func TestCreateStoreCustomerForbidden(t *testing.T) {
	uc, _, _ := newStoreFixture()

	_, err := uc.CreateStore(context.Background(), &entity.User{ID: "c1", Role: entity.RoleCustomer}, CreateStoreInput{StoreName: "Nope"})
	assert.Error(t, err)
}

func TestReviewStore(t *testing.T) {
	uc, storeRepo, _ := newStoreFixture()
	ctx := context.Background()
	admin := &entity.User{ID: "a1", Role: entity.RoleAdmin}

	store := &entity.Store{OwnerID: "owner-1", Status: entity.StorePending}
	require.NoError(t, storeRepo.Create(ctx, store))

	approved, err := uc.ReviewStore(ctx, admin, store.ID, entity.StoreApproved)
	require.NoError(t, err)
	assert.Equal(t, entity.StoreApproved, approved.Status)

	// The decision is terminal.
	_, err = uc.ReviewStore(ctx, admin, store.ID, entity.StoreRejected)
	assert.Error(t, err)
}

func TestReviewStoreViewerForbidden(t *testing.T) {
	uc, storeRepo, _ := newStoreFixture()
	ctx := context.Background()

	store := &entity.Store{OwnerID: "owner-1", Status: entity.StorePending}
	require.NoError(t, storeRepo.Create(ctx, store))

	_, err := uc.ReviewStore(ctx, &entity.User{ID: "v1", Role: entity.RoleViewer}, store.ID, entity.StoreApproved)
	require.Error(t, err)

	// No side effects on a rejected attempt.
	stored, _ := storeRepo.GetByID(ctx, store.ID)
	assert.Equal(t, entity.StorePending, stored.Status)
}

func TestDeleteStoreCascadesProducts(t *testing.T) {
	uc, storeRepo, productRepo := newStoreFixture()
	ctx := context.Background()
	admin := &entity.User{ID: "a1", Role: entity.RoleAdmin}

	store := &entity.Store{OwnerID: "owner-1", Status: entity.StoreApproved}
	require.NoError(t, storeRepo.Create(ctx, store))

	productRepo.put(&entity.Product{StoreID: store.ID, Name: "A", Status: entity.ProductActive})
	productRepo.put(&entity.Product{StoreID: store.ID, Name: "B", Status: entity.ProductActive})
	productRepo.put(&entity.Product{StoreID: "other-store", Name: "C", Status: entity.ProductActive})

	result, err := uc.DeleteStore(ctx, admin, store.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, result.ProductsDeleted)

	_, err = storeRepo.GetByID(ctx, store.ID)
	assert.Error(t, err)

	// The other store's catalog is untouched.
	remaining, _, _ := productRepo.List(ctx, repository.ProductFilter{StoreID: "other-store"}, 20, 0)
	assert.Len(t, remaining, 1)
}

func TestDeleteStoreCustomerForbidden(t *testing.T) {
	uc, storeRepo, _ := newStoreFixture()
	ctx := context.Background()

	store := &entity.Store{OwnerID: "owner-1", Status: entity.StoreApproved}
	require.NoError(t, storeRepo.Create(ctx, store))

	_, err := uc.DeleteStore(ctx, &entity.User{ID: "c1", Role: entity.RoleCustomer}, store.ID)
	require.Error(t, err)

	_, err = storeRepo.GetByID(ctx, store.ID)
	assert.NoError(t, err)
}
