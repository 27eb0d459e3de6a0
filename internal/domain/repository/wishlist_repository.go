package repository

import (
	"context"

	"github.com/burhansaar3-alt/app/internal/domain/entity"
)

type WishlistRepository interface {
	Add(ctx context.Context, userID, productID string) (*entity.WishlistItem, error)
	Remove(ctx context.Context, userID, productID string) error
	Contains(ctx context.Context, userID, productID string) (bool, error)
	ListByUserID(ctx context.Context, userID string) ([]*entity.WishlistItem, error)
}

// CartRepository is the ephemeral per-user cart. Implementations are not
// expected to survive the backing store's own retention; the cart is
// cleared on checkout.
type CartRepository interface {
	Get(ctx context.Context, userID string) ([]entity.CartItem, error)
	Add(ctx context.Context, userID string, item entity.CartItem) error
	Remove(ctx context.Context, userID, productID string) error
	Clear(ctx context.Context, userID string) error
}
