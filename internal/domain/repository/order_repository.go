package repository

import (
	"context"

	"github.com/burhansaar3-alt/app/internal/domain/entity"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	ListByCustomerID(ctx context.Context, customerID string, limit, offset int) ([]*entity.Order, int64, error)
	ListByStoreID(ctx context.Context, storeID string, limit, offset int) ([]*entity.Order, int64, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Order, int64, error)
	Update(ctx context.Context, order *entity.Order) error
}

type ComplaintRepository interface {
	Create(ctx context.Context, complaint *entity.Complaint) error
	GetByID(ctx context.Context, id string) (*entity.Complaint, error)
	ListByCustomerID(ctx context.Context, customerID string, limit, offset int) ([]*entity.Complaint, int64, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Complaint, int64, error)
	Update(ctx context.Context, complaint *entity.Complaint) error
	Delete(ctx context.Context, id string) error
}
