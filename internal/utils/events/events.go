package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	TopicFoodBridge = "foodbridge.events"

	EventFoodRequestDonated   = "foodrequest.donated"
	EventFoodRequestCompleted = "foodrequest.completed"
	EventPaymentPaid          = "payment.paid"
	EventPaymentFailed        = "payment.failed"

	producerName = "foodbridge-api"
)

type (
	// Publisher sends domain events. Implementations must not block the caller
	// on broker availability.
	Publisher interface {
		Publish(ctx context.Context, eventType string, key string, payload any) error
	}

	Envelope struct {
		EventID      string          `json:"event_id"`
		EventType    string          `json:"event_type"`
		EventVersion int             `json:"event_version"`
		OccurredAt   time.Time       `json:"occurred_at"`
		Producer     string          `json:"producer"`
		Key          string          `json:"key"`
		Payload      json.RawMessage `json:"payload"`
	}

	DonationPayload struct {
		FoodRequestID uint          `json:"food_request_id"`
		RestaurantID  uint          `json:"restaurant_id"`
		Items         []DonatedItem `json:"items"`
	}

	DonatedItem struct {
		ProductID uint `json:"product_id"`
		Quantity  int  `json:"quantity"`
	}

	FoodRequestCompletedPayload struct {
		FoodRequestID uint `json:"food_request_id"`
	}

	PaymentPayload struct {
		OrderID      string  `json:"order_id"`
		FoodBucketID uint    `json:"food_bucket_id"`
		UserID       uint    `json:"user_id"`
		Amount       float64 `json:"amount"`
		Status       string  `json:"status"`
	}

	noopPublisher struct{}
)

func NewEnvelope(eventType, key string, payload any) (Envelope, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("encode %s payload: %w", eventType, err)
	}
	return Envelope{
		EventID:      uuid.NewString(),
		EventType:    eventType,
		EventVersion: 1,
		OccurredAt:   time.Now().UTC(),
		Producer:     producerName,
		Key:          key,
		Payload:      raw,
	}, nil
}

// UnwrapPayload decodes an envelope payload into T.
func UnwrapPayload[T any](payload json.RawMessage) (T, error) {
	var t T
	if err := json.Unmarshal(payload, &t); err != nil {
		return t, fmt.Errorf("decode payload: %w", err)
	}
	return t, nil
}

func NewNoopPublisher() Publisher { return noopPublisher{} }

func (noopPublisher) Publish(context.Context, string, string, any) error { return nil }
