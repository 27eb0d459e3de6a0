package entity

import (
	"time"
)

type OrderStatus string

const (
	OrderPending        OrderStatus = "pending"
	OrderConfirmed      OrderStatus = "confirmed"
	OrderProcessing     OrderStatus = "processing"
	OrderShipped        OrderStatus = "shipped"
	OrderOutForDelivery OrderStatus = "out_for_delivery"
	OrderDelivered      OrderStatus = "delivered"
	OrderCancelled      OrderStatus = "cancelled"
)

// orderSteps is the canonical forward sequence, used for the progress
// indicator. cancelled is intentionally absent.
var orderSteps = []OrderStatus{
	OrderPending,
	OrderConfirmed,
	OrderProcessing,
	OrderShipped,
	OrderOutForDelivery,
	OrderDelivered,
}

// orderNext maps each status to the set of legal next statuses. delivered
// and cancelled are terminal.
var orderNext = map[OrderStatus][]OrderStatus{
	OrderPending:        {OrderConfirmed, OrderCancelled},
	OrderConfirmed:      {OrderProcessing, OrderCancelled},
	OrderProcessing:     {OrderShipped},
	OrderShipped:        {OrderOutForDelivery},
	OrderOutForDelivery: {OrderDelivered},
	OrderDelivered:      {},
	OrderCancelled:      {},
}

// Next returns the statuses an order at s may legally move to. Unknown
// statuses have no transitions.
func (s OrderStatus) Next() []OrderStatus {
	return orderNext[s]
}

// CanTransition reports whether s -> to is a legal single step.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	for _, n := range orderNext[s] {
		if n == to {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transitions exist from s.
func (s OrderStatus) Terminal() bool {
	return len(orderNext[s]) == 0 && (s == OrderDelivered || s == OrderCancelled)
}

type StatusLabel struct {
	Text     string `json:"text"`
	Severity string `json:"severity"`
}

var orderLabels = map[OrderStatus]StatusLabel{
	OrderPending:        {Text: "Pending", Severity: "warning"},
	OrderConfirmed:      {Text: "Confirmed", Severity: "info"},
	OrderProcessing:     {Text: "Processing", Severity: "secondary"},
	OrderShipped:        {Text: "Shipped", Severity: "primary"},
	OrderOutForDelivery: {Text: "Out for delivery", Severity: "accent"},
	OrderDelivered:      {Text: "Delivered", Severity: "success"},
	OrderCancelled:      {Text: "Cancelled", Severity: "danger"},
}

// Label returns the display text and severity class for s. Unknown statuses
// fall back to the pending presentation; this never fails.
func (s OrderStatus) Label() StatusLabel {
	if l, ok := orderLabels[s]; ok {
		return l
	}
	return orderLabels[OrderPending]
}

// StepIndex returns the position of s in the forward sequence (0..5),
// clamped to 0 for cancelled or unrecognized statuses.
func (s OrderStatus) StepIndex() int {
	for i, step := range orderSteps {
		if step == s {
			return i
		}
	}
	return 0
}

type OrderItem struct {
	ProductID   string  `json:"product_id" firestore:"productId"`
	ProductName string  `json:"product_name" firestore:"productName"`
	StoreID     string  `json:"store_id" firestore:"storeId"`
	Quantity    int     `json:"quantity" firestore:"quantity"`
	Price       float64 `json:"price" firestore:"price"`
}

type Order struct {
	ID              string      `json:"id" firestore:"id"`
	CustomerID      string      `json:"customer_id" firestore:"customerId"`
	Items           []OrderItem `json:"items" firestore:"items"`
	ShippingAddress string      `json:"shipping_address" firestore:"shippingAddress"`
	Phone           string      `json:"phone" firestore:"phone"`
	PaymentMethod   string      `json:"payment_method" firestore:"paymentMethod"`
	TotalAmount     float64     `json:"total_amount" firestore:"totalAmount"`
	Status          OrderStatus `json:"status" firestore:"status"`
	CreatedAt       time.Time   `json:"created_at" firestore:"createdAt"`
	UpdatedAt       time.Time   `json:"updated_at" firestore:"updatedAt"`
}

// HasStore reports whether any item in the order belongs to storeID.
func (o *Order) HasStore(storeID string) bool {
	for _, item := range o.Items {
		if item.StoreID == storeID {
			return true
		}
	}
	return false
}
