package usecase

import (
	"context"

	"github.com/burhansaar3-alt/app/internal/domain/entity"
	"github.com/burhansaar3-alt/app/internal/domain/repository"
	"github.com/burhansaar3-alt/app/internal/domain/service"
	"github.com/burhansaar3-alt/app/pkg/errors"
)

const similarProductsLimit = 8

type ProductUseCase struct {
	productRepo  repository.ProductRepository
	storeRepo    repository.StoreRepository
	categoryRepo repository.CategoryRepository
	reviewRepo   repository.ReviewRepository
	policy       *service.Policy
}

func NewProductUseCase(
	productRepo repository.ProductRepository,
	storeRepo repository.StoreRepository,
	categoryRepo repository.CategoryRepository,
	reviewRepo repository.ReviewRepository,
	policy *service.Policy,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		storeRepo:    storeRepo,
		categoryRepo: categoryRepo,
		reviewRepo:   reviewRepo,
		policy:       policy,
	}
}

type ProductInput struct {
	CategoryID  string
	Name        string
	Description string
	Price       float64
	Stock       int
	Images      []string
	Sizes       []string
	Colors      []string
	ShoeSizes   []string
	Status      string
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, owner *entity.User, input ProductInput) (*entity.Product, error) {
	store, err := uc.storeRepo.GetByOwnerID(ctx, owner.ID)
	if err != nil {
		return nil, errors.Forbidden("You need an approved store to add products", err)
	}
	if store.Status != entity.StoreApproved {
		return nil, errors.Forbidden("You need an approved store to add products", nil)
	}

	if _, err := uc.categoryRepo.GetByID(ctx, input.CategoryID); err != nil {
		return nil, errors.BadRequest("Invalid category", err)
	}

	status := input.Status
	if status == "" {
		status = entity.ProductActive
	}
	if status != entity.ProductActive && status != entity.ProductInactive {
		return nil, errors.BadRequest("Invalid product status", nil)
	}

	product := &entity.Product{
		StoreID:     store.ID,
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		Images:      input.Images,
		Sizes:       input.Sizes,
		Colors:      input.Colors,
		ShoeSizes:   input.ShoeSizes,
		Status:      status,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// ListProducts serves the public catalog: unauthenticated callers only see
// active products; the store dashboard passes its own store ID and sees
// everything.
// ListProducts pins the public catalogue to active products. The admin
// screens, and a store owner browsing their own store, may filter by any
// status.
func (uc *ProductUseCase) ListProducts(ctx context.Context, actor *entity.User, filter repository.ProductFilter, limit, offset int) ([]*entity.Product, int64, error) {
	if filter.Status != entity.ProductActive && !uc.canFilterAnyStatus(ctx, actor, filter.StoreID) {
		filter.Status = entity.ProductActive
	}
	return uc.productRepo.List(ctx, filter, limit, offset)
}

func (uc *ProductUseCase) canFilterAnyStatus(ctx context.Context, actor *entity.User, storeID string) bool {
	if uc.policy.CanViewAdminData(actor) {
		return true
	}
	if actor == nil || actor.Role != entity.RoleStoreOwner || storeID == "" {
		return false
	}
	store, err := uc.storeRepo.GetByOwnerID(ctx, actor.ID)
	return err == nil && store.ID == storeID
}

func (uc *ProductUseCase) GetProductByID(ctx context.Context, id string) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

func (uc *ProductUseCase) ListSimilar(ctx context.Context, productID string) ([]*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	return uc.productRepo.ListSimilar(ctx, product.CategoryID, product.ID, similarProductsLimit)
}

func (uc *ProductUseCase) UpdateProduct(ctx context.Context, actor *entity.User, id string, input ProductInput) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	store, err := uc.storeRepo.GetByID(ctx, product.StoreID)
	if err != nil {
		return nil, err
	}

	if !uc.policy.CanManageProduct(actor, store) {
		return nil, errors.Forbidden("You don't have permission to update this product", nil)
	}

	if input.CategoryID != "" && input.CategoryID != product.CategoryID {
		if _, err := uc.categoryRepo.GetByID(ctx, input.CategoryID); err != nil {
			return nil, errors.BadRequest("Invalid category", err)
		}
		product.CategoryID = input.CategoryID
	}

	if input.Status != "" {
		if input.Status != entity.ProductActive && input.Status != entity.ProductInactive {
			return nil, errors.BadRequest("Invalid product status", nil)
		}
		product.Status = input.Status
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Stock = input.Stock
	if input.Images != nil {
		product.Images = input.Images
	}
	product.Sizes = input.Sizes
	product.Colors = input.Colors
	product.ShoeSizes = input.ShoeSizes

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *ProductUseCase) DeleteProduct(ctx context.Context, actor *entity.User, id string) error {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	store, err := uc.storeRepo.GetByID(ctx, product.StoreID)
	if err != nil {
		return err
	}

	if !uc.policy.CanManageProduct(actor, store) {
		return errors.Forbidden("You don't have permission to delete this product", nil)
	}

	return uc.productRepo.Delete(ctx, id)
}

func (uc *ProductUseCase) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	return uc.categoryRepo.List(ctx)
}

func (uc *ProductUseCase) CreateCategory(ctx context.Context, actor *entity.User, category *entity.Category) (*entity.Category, error) {
	if actor.Role != entity.RoleAdmin && !uc.policy.IsSuperAdmin(actor) {
		return nil, errors.Forbidden("Only admins can create categories", nil)
	}

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

type ReviewInput struct {
	Rating  int
	Comment string
}

func (uc *ProductUseCase) CreateReview(ctx context.Context, author *entity.User, productID string, input ReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.BadRequest("Rating must be between 1 and 5", nil)
	}

	if _, err := uc.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	review := &entity.Review{
		ProductID: productID,
		UserID:    author.ID,
		UserName:  author.Name,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

func (uc *ProductUseCase) ListReviews(ctx context.Context, productID string, limit, offset int) ([]*entity.Review, int64, error) {
	return uc.reviewRepo.ListByProductID(ctx, productID, limit, offset)
}
