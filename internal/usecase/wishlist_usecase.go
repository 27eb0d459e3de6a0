package usecase

import (
	"context"

	"github.com/burhansaar3-alt/app/internal/domain/entity"
	"github.com/burhansaar3-alt/app/internal/domain/repository"
	"github.com/burhansaar3-alt/app/pkg/errors"
)

type WishlistUseCase struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
}

func NewWishlistUseCase(
	wishlistRepo repository.WishlistRepository,
	productRepo repository.ProductRepository,
) *WishlistUseCase {
	return &WishlistUseCase{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

type WishlistEntry struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Product   *entity.Product `json:"product"`
	CreatedAt string          `json:"created_at"`
}

func (uc *WishlistUseCase) Add(ctx context.Context, userID, productID string) (*entity.WishlistItem, error) {
	if _, err := uc.productRepo.GetByID(ctx, productID); err != nil {
		return nil, errors.NotFound("Product", err)
	}

	return uc.wishlistRepo.Add(ctx, userID, productID)
}

func (uc *WishlistUseCase) Remove(ctx context.Context, userID, productID string) error {
	return uc.wishlistRepo.Remove(ctx, userID, productID)
}

// List returns wishlist entries enriched with products; entries whose
// product no longer exists are dropped from the result.
func (uc *WishlistUseCase) List(ctx context.Context, userID string) ([]WishlistEntry, error) {
	items, err := uc.wishlistRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries := make([]WishlistEntry, 0, len(items))
	for _, item := range items {
		product, err := uc.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			continue
		}
		entries = append(entries, WishlistEntry{
			ID:        item.ID,
			ProductID: item.ProductID,
			Product:   product,
			CreatedAt: item.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	return entries, nil
}
