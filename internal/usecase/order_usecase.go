package usecase

import (
	"context"

	"github.com/burhansaar3-alt/app/internal/domain/entity"
	"github.com/burhansaar3-alt/app/internal/domain/repository"
	"github.com/burhansaar3-alt/app/internal/domain/service"
	"github.com/burhansaar3-alt/app/internal/infrastructure/kafka"
	"github.com/burhansaar3-alt/app/pkg/errors"
	"github.com/burhansaar3-alt/app/pkg/logger"
)

type OrderUseCase struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	storeRepo   repository.StoreRepository
	cartRepo    repository.CartRepository
	policy      *service.Policy
	events      EventPublisher
}

func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	storeRepo repository.StoreRepository,
	cartRepo repository.CartRepository,
	policy *service.Policy,
	events EventPublisher,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		storeRepo:   storeRepo,
		cartRepo:    cartRepo,
		policy:      policy,
		events:      events,
	}
}

type CheckoutInput struct {
	ShippingAddress string
	Phone           string
	PaymentMethod   string
}

// Checkout turns the customer's cart into a pending order: stock is
// decremented per item, the total is computed from current prices, and the
// cart is cleared.
func (uc *OrderUseCase) Checkout(ctx context.Context, customer *entity.User, input CheckoutInput) (*entity.Order, error) {
	items, err := uc.cartRepo.Get(ctx, customer.ID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.BadRequest("Cart is empty", nil)
	}

	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "cash_on_delivery"
	}

	// Resolve every line first so a short line fails the checkout before
	// any stock moves.
	var total float64
	orderItems := make([]entity.OrderItem, 0, len(items))
	for _, item := range items {
		product, err := uc.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			// Product removed since it was carted; skip it.
			continue
		}
		if product.Stock < item.Quantity {
			return nil, errors.BadRequest("Insufficient stock for "+product.Name, nil)
		}

		total += product.Price * float64(item.Quantity)
		orderItems = append(orderItems, entity.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			StoreID:     product.StoreID,
			Quantity:    item.Quantity,
			Price:       product.Price,
		})
	}

	if len(orderItems) == 0 {
		return nil, errors.BadRequest("Cart is empty", nil)
	}

	for i, line := range orderItems {
		if err := uc.productRepo.DecrementStock(ctx, line.ProductID, line.Quantity); err != nil {
			uc.restock(ctx, orderItems[:i])
			return nil, err
		}
	}

	order := &entity.Order{
		CustomerID:      customer.ID,
		Items:           orderItems,
		ShippingAddress: input.ShippingAddress,
		Phone:           input.Phone,
		PaymentMethod:   paymentMethod,
		TotalAmount:     total,
		Status:          entity.OrderPending,
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	if err := uc.cartRepo.Clear(ctx, customer.ID); err != nil {
		logger.Warn("failed to clear cart after checkout for user %s: %v", customer.ID, err)
	}

	uc.publish(kafka.EventOrderCreated, order.ID, kafka.OrderCreatedPayload{
		OrderID:     order.ID,
		CustomerID:  order.CustomerID,
		Items:       order.Items,
		TotalAmount: order.TotalAmount,
	})

	return order, nil
}

// restock returns stock taken by lines already decremented when a later
// line of the same checkout fails.
func (uc *OrderUseCase) restock(ctx context.Context, lines []entity.OrderItem) {
	for _, line := range lines {
		if err := uc.productRepo.IncrementStock(ctx, line.ProductID, line.Quantity); err != nil {
			logger.Warn("failed to restock product %s after aborted checkout: %v", line.ProductID, err)
		}
	}
}

func (uc *OrderUseCase) ListMyOrders(ctx context.Context, customerID string, limit, offset int) ([]*entity.Order, int64, error) {
	return uc.orderRepo.ListByCustomerID(ctx, customerID, limit, offset)
}

func (uc *OrderUseCase) ListAllOrders(ctx context.Context, actor *entity.User, limit, offset int) ([]*entity.Order, int64, error) {
	if !uc.policy.CanViewAdminData(actor) {
		return nil, 0, errors.Forbidden("Only admins can view all orders", nil)
	}
	return uc.orderRepo.List(ctx, limit, offset)
}

func (uc *OrderUseCase) ListStoreOrders(ctx context.Context, owner *entity.User, limit, offset int) ([]*entity.Order, int64, error) {
	store, err := uc.storeRepo.GetByOwnerID(ctx, owner.ID)
	if err != nil {
		return nil, 0, errors.Forbidden("You don't have a store", err)
	}
	return uc.orderRepo.ListByStoreID(ctx, store.ID, limit, offset)
}

func (uc *OrderUseCase) GetOrderByID(ctx context.Context, actor *entity.User, id string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var ownedStore *entity.Store
	if actor != nil && actor.Role == entity.RoleStoreOwner {
		if store, err := uc.storeRepo.GetByOwnerID(ctx, actor.ID); err == nil {
			ownedStore = store
		}
	}
	if !uc.policy.CanViewOrder(actor, order, ownedStore) {
		return nil, errors.Forbidden("You don't have permission to view this order", nil)
	}

	return order, nil
}

// UpdateStatus moves an order along its lifecycle. Transitions are
// enforced strictly: the UI only offers legal next statuses, and illegal
// jumps are rejected here regardless of what the client sends.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, actor *entity.User, orderID string, to entity.OrderStatus) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	allowed := false
	switch {
	case actor.Role == entity.RoleAdmin || uc.policy.IsSuperAdmin(actor):
		allowed = true
	case actor.Role == entity.RoleStoreOwner:
		store, err := uc.storeRepo.GetByOwnerID(ctx, actor.ID)
		if err == nil {
			allowed = uc.policy.CanUpdateOrderStatus(actor, order, store)
		}
	case to == entity.OrderCancelled:
		allowed = uc.policy.CanCancelOwnOrder(actor, order)
	}
	if !allowed {
		return nil, errors.Forbidden("You don't have permission to update this order", nil)
	}

	from := order.Status
	if !from.CanTransition(to) {
		return nil, errors.BadRequest("Illegal status transition", nil)
	}

	order.Status = to
	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	uc.publish(kafka.EventOrderStatusChanged, order.ID, kafka.OrderStatusChangedPayload{
		OrderID: order.ID,
		From:    from,
		To:      to,
		ActorID: actor.ID,
	})

	return order, nil
}

func (uc *OrderUseCase) publish(eventType, orderID string, payload interface{}) {
	if uc.events == nil {
		return
	}
	value, err := kafka.NewEnvelope(eventType, orderID, payload)
	if err != nil {
		logger.Warn("failed to encode %s event for order %s: %v", eventType, orderID, err)
		return
	}
	uc.events.Publish([]byte(orderID), value)
}
