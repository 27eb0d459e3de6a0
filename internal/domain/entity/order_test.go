package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusNext(t *testing.T) {
	assert.ElementsMatch(t, []OrderStatus{OrderConfirmed, OrderCancelled}, OrderPending.Next())
	assert.ElementsMatch(t, []OrderStatus{OrderProcessing, OrderCancelled}, OrderConfirmed.Next())
	assert.Equal(t, []OrderStatus{OrderShipped}, OrderProcessing.Next())
	assert.Equal(t, []OrderStatus{OrderOutForDelivery}, OrderShipped.Next())
	assert.Equal(t, []OrderStatus{OrderDelivered}, OrderOutForDelivery.Next())
	assert.Empty(t, OrderDelivered.Next())
	assert.Empty(t, OrderCancelled.Next())
}

func TestOrderStatusCanTransition(t *testing.T) {
	assert.True(t, OrderPending.CanTransition(OrderConfirmed))
	assert.True(t, OrderPending.CanTransition(OrderCancelled))
	assert.True(t, OrderConfirmed.CanTransition(OrderCancelled))

	// No skipping forward.
	assert.False(t, OrderPending.CanTransition(OrderShipped))
	assert.False(t, OrderConfirmed.CanTransition(OrderDelivered))

	// No cancelling once processing starts.
	assert.False(t, OrderProcessing.CanTransition(OrderCancelled))
	assert.False(t, OrderShipped.CanTransition(OrderCancelled))

	// No moving backwards.
	assert.False(t, OrderShipped.CanTransition(OrderProcessing))
	assert.False(t, OrderDelivered.CanTransition(OrderPending))
}

func TestOrderStatusTerminal(t *testing.T) {
	assert.True(t, OrderDelivered.Terminal())
	assert.True(t, OrderCancelled.Terminal())

	for _, s := range []OrderStatus{OrderPending, OrderConfirmed, OrderProcessing, OrderShipped, OrderOutForDelivery} {
		assert.False(t, s.Terminal(), "status %s should not be terminal", s)
	}
}

func TestOrderStatusLabel(t *testing.T) {
	assert.Equal(t, "Delivered", OrderDelivered.Label().Text)
	assert.Equal(t, "success", OrderDelivered.Label().Severity)
	assert.Equal(t, "danger", OrderCancelled.Label().Severity)

	// Unknown statuses fall back to the pending presentation.
	unknown := OrderStatus("garbage")
	assert.Equal(t, OrderPending.Label(), unknown.Label())
}

func TestOrderStatusStepIndex(t *testing.T) {
	assert.Equal(t, 0, OrderPending.StepIndex())
	assert.Equal(t, 1, OrderConfirmed.StepIndex())
	assert.Equal(t, 5, OrderDelivered.StepIndex())

	// Cancelled and unknown clamp to the start.
	assert.Equal(t, 0, OrderCancelled.StepIndex())
	assert.Equal(t, 0, OrderStatus("garbage").StepIndex())
}

func TestOrderStepIndexMonotonic(t *testing.T) {
	// Walking the happy path never decreases the progress indicator.
	prev := -1
	for s := OrderPending; !s.Terminal(); {
		idx := s.StepIndex()
		assert.Greater(t, idx, prev)
		prev = idx

		var next OrderStatus
		for _, n := range s.Next() {
			if n != OrderCancelled {
				next = n
				break
			}
		}
		s = next
	}
}

func TestOrderHasStore(t *testing.T) {
	order := &Order{
		Items: []OrderItem{
			{ProductID: "p1", StoreID: "store-a"},
			{ProductID: "p2", StoreID: "store-b"},
		},
	}

	assert.True(t, order.HasStore("store-a"))
	assert.True(t, order.HasStore("store-b"))
	assert.False(t, order.HasStore("store-c"))
}
