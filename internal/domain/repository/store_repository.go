package repository

import (
	"context"

	"github.com/burhansaar3-alt/app/internal/domain/entity"
)

type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	GetByID(ctx context.Context, id string) (*entity.Store, error)
	GetByOwnerID(ctx context.Context, ownerID string) (*entity.Store, error)
	List(ctx context.Context, status entity.StoreStatus, limit, offset int) ([]*entity.Store, int64, error)
	Update(ctx context.Context, store *entity.Store) error
	Delete(ctx context.Context, id string) error
}
