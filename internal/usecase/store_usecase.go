package usecase

import (
	"context"

	"github.com/burhansaar3-alt/app/internal/domain/entity"
	"github.com/burhansaar3-alt/app/internal/domain/repository"
	"github.com/burhansaar3-alt/app/internal/domain/service"
	"github.com/burhansaar3-alt/app/pkg/errors"
	"github.com/burhansaar3-alt/app/pkg/logger"
)

type StoreUseCase struct {
	storeRepo   repository.StoreRepository
	productRepo repository.ProductRepository
	policy      *service.Policy
}

func NewStoreUseCase(
	storeRepo repository.StoreRepository,
	productRepo repository.ProductRepository,
	policy *service.Policy,
) *StoreUseCase {
	return &StoreUseCase{
		storeRepo:   storeRepo,
		productRepo: productRepo,
		policy:      policy,
	}
}

type CreateStoreInput struct {
	StoreName   string
	Description string
	Phone       string
	Logo        string
}

func (uc *StoreUseCase) CreateStore(ctx context.Context, owner *entity.User, input CreateStoreInput) (*entity.Store, error) {
	if owner.Role != entity.RoleStoreOwner {
		return nil, errors.Forbidden("Only store owners can open a store", nil)
	}

	// One storefront per owner.
	if existing, err := uc.storeRepo.GetByOwnerID(ctx, owner.ID); err == nil && existing != nil {
		return nil, errors.Conflict("You already have a store")
	}

	store := &entity.Store{
		OwnerID:     owner.ID,
		StoreName:   input.StoreName,
		Description: input.Description,
		Phone:       input.Phone,
		Logo:        input.Logo,
		Status:      entity.StorePending,
	}

	if err := uc.storeRepo.Create(ctx, store); err != nil {
		return nil, err
	}

	return store, nil
}

func (uc *StoreUseCase) ListStores(ctx context.Context, status entity.StoreStatus, limit, offset int) ([]*entity.Store, int64, error) {
	return uc.storeRepo.List(ctx, status, limit, offset)
}

func (uc *StoreUseCase) GetMyStore(ctx context.Context, ownerID string) (*entity.Store, error) {
	return uc.storeRepo.GetByOwnerID(ctx, ownerID)
}

func (uc *StoreUseCase) GetStoreByID(ctx context.Context, id string) (*entity.Store, error) {
	return uc.storeRepo.GetByID(ctx, id)
}

// ReviewStore applies the admin's approve/reject decision. Only pending
// stores can be decided; the decision is terminal.
func (uc *StoreUseCase) ReviewStore(ctx context.Context, actor *entity.User, storeID string, decision entity.StoreStatus) (*entity.Store, error) {
	if !uc.policy.CanApproveStore(actor) {
		return nil, errors.Forbidden("Only admins can review stores", nil)
	}

	store, err := uc.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	if !store.Status.ValidDecision(decision) {
		return nil, errors.BadRequest("Store is not awaiting review", nil)
	}

	store.Status = decision
	if err := uc.storeRepo.Update(ctx, store); err != nil {
		return nil, err
	}

	logger.Info("store %s reviewed: %s", store.ID, decision)
	return store, nil
}

type DeleteStoreResult struct {
	ProductsDeleted int `json:"products_deleted"`
}

// DeleteStore removes a store and cascades to its products, reporting how
// many products were removed.
func (uc *StoreUseCase) DeleteStore(ctx context.Context, actor *entity.User, storeID string) (*DeleteStoreResult, error) {
	store, err := uc.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	if actor.Role != entity.RoleAdmin && !uc.policy.IsSuperAdmin(actor) {
		return nil, errors.Forbidden("Only admins can delete stores", nil)
	}
	if !uc.policy.CanDeleteStore(actor, store) {
		return nil, errors.Forbidden("You don't have permission to delete this store", nil)
	}

	deleted, err := uc.productRepo.DeleteByStoreID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	if err := uc.storeRepo.Delete(ctx, storeID); err != nil {
		return nil, err
	}

	logger.Info("store %s deleted, %d products cascaded", storeID, deleted)
	return &DeleteStoreResult{ProductsDeleted: deleted}, nil
}
