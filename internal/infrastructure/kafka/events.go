package kafka

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/burhansaar3-alt/app/internal/domain/entity"
)

const (
	EventOrderCreated       = "OrderCreated"
	EventOrderStatusChanged = "OrderStatusChanged"

	producerName = "marketplace-api"
)

// Envelope wraps every order event on the wire.
type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	CorrelationID string          `json:"correlation_id"`
	Payload       json.RawMessage `json:"payload"`
}

type OrderCreatedPayload struct {
	OrderID     string             `json:"order_id"`
	CustomerID  string             `json:"customer_id"`
	Items       []entity.OrderItem `json:"items"`
	TotalAmount float64            `json:"total_amount"`
}

type OrderStatusChangedPayload struct {
	OrderID string             `json:"order_id"`
	From    entity.OrderStatus `json:"from"`
	To      entity.OrderStatus `json:"to"`
	ActorID string             `json:"actor_id"`
}

func NewEnvelope(eventType, correlationID string, payload interface{}) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return json.Marshal(Envelope{
		EventID:       uuid.New().String(),
		EventType:     eventType,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      producerName,
		CorrelationID: correlationID,
		Payload:       raw,
	})
}
