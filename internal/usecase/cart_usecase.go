package usecase

import (
	"context"

	"github.com/burhansaar3-alt/app/internal/domain/entity"
	"github.com/burhansaar3-alt/app/internal/domain/repository"
	"github.com/burhansaar3-alt/app/pkg/errors"
)

type CartUseCase struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartUseCase(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartUseCase {
	return &CartUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// GetCart returns the cart enriched with product details. Items whose
// product has since disappeared are silently dropped.
func (uc *CartUseCase) GetCart(ctx context.Context, userID string) ([]entity.CartLine, error) {
	items, err := uc.cartRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	lines := make([]entity.CartLine, 0, len(items))
	for _, item := range items {
		product, err := uc.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			continue
		}
		lines = append(lines, entity.CartLine{Product: product, Quantity: item.Quantity})
	}

	return lines, nil
}

func (uc *CartUseCase) AddToCart(ctx context.Context, userID string, item entity.CartItem) error {
	if item.Quantity <= 0 {
		return errors.BadRequest("Quantity must be positive", nil)
	}

	product, err := uc.productRepo.GetByID(ctx, item.ProductID)
	if err != nil {
		return err
	}
	if product.Status != entity.ProductActive {
		return errors.BadRequest("Product is not available", nil)
	}

	return uc.cartRepo.Add(ctx, userID, item)
}

func (uc *CartUseCase) RemoveFromCart(ctx context.Context, userID, productID string) error {
	return uc.cartRepo.Remove(ctx, userID, productID)
}

func (uc *CartUseCase) ClearCart(ctx context.Context, userID string) error {
	return uc.cartRepo.Clear(ctx, userID)
}
