package repository

import (
	"context"

	"github.com/burhansaar3-alt/app/internal/domain/entity"
)

// ProductFilter narrows product listings. Zero values mean "no filter".
type ProductFilter struct {
	CategoryID string
	StoreID    string
	Status     string
	Search     string
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, filter ProductFilter, limit, offset int) ([]*entity.Product, int64, error)
	ListSimilar(ctx context.Context, categoryID, excludeID string, limit int) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	// DeleteByStoreID removes every product of a store and returns how many
	// were deleted. Used by the admin store-delete cascade.
	DeleteByStoreID(ctx context.Context, storeID string) (int, error)
	DecrementStock(ctx context.Context, productID string, quantity int) error
	// IncrementStock returns previously taken stock, used to compensate a
	// checkout that fails partway through.
	IncrementStock(ctx context.Context, productID string, quantity int) error
}

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	ListByProductID(ctx context.Context, productID string, limit, offset int) ([]*entity.Review, int64, error)
}
