package events

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventEnvelope is the shared wrapper for v1 event contracts. Consumers order
// events per partition key by sequence.
type EventEnvelope struct {
	EventName     string          `json:"eventName"`
	EventVersion  int             `json:"eventVersion"`
	EventID       string          `json:"eventId"`
	CorrelationID string          `json:"correlationId,omitempty"`
	Producer      string          `json:"producer"`
	PartitionKey  string          `json:"partitionKey"`
	Sequence      int64           `json:"sequence,omitempty"`
	OccurredAt    time.Time       `json:"occurredAt"`
	Payload       json.RawMessage `json:"payload"`
}

func (e EventEnvelope) Validate(expectedName string, expectedVersion int) error {
	if e.EventName != expectedName {
		return fmt.Errorf("unexpected eventName %q", e.EventName)
	}
	if e.EventVersion != expectedVersion {
		return fmt.Errorf("unexpected eventVersion %d", e.EventVersion)
	}
	if e.EventID == "" {
		return fmt.Errorf("missing eventId")
	}
	if e.PartitionKey == "" {
		return fmt.Errorf("missing partitionKey")
	}
	return nil
}

// OrderCreatedPayload is the body of order.created.v1.
type OrderCreatedPayload struct {
	OrderID       string             `json:"orderId"`
	UserID        string             `json:"userId"`
	Status        string             `json:"status"`
	Total         float64            `json:"total"`
	Currency      string             `json:"currency"`
	CustomerEmail string             `json:"customerEmail,omitempty"`
	Items         []OrderCreatedItem `json:"items"`
	Timestamp     time.Time          `json:"timestamp"`
}

type OrderCreatedItem struct {
	ProductID string  `json:"productId,omitempty"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	LineTotal float64 `json:"lineTotal"`
}

// QuoteRequestedPayload is the body of quote.requested.v1.
type QuoteRequestedPayload struct {
	QuoteID   string    `json:"quoteId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	BoardType string    `json:"boardType"`
	Quantity  string    `json:"quantity"`
	Timeline  string    `json:"timeline,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
