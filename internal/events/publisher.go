package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/polygondevindia-tech/board-build-boutique/internal/middleware"
	"github.com/polygondevindia-tech/board-build-boutique/internal/order"
	"github.com/polygondevindia-tech/board-build-boutique/internal/quote"
)

// Publisher emits enveloped storefront events on the topic exchange. Events
// for the same order or quote share a partition key so consumers can order
// them by sequence.
type Publisher struct {
	ch  *amqp.Channel
	seq SequenceRepository
}

func NewPublisher(conn *amqp.Connection, seq SequenceRepository) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := declareEventsExchange(ch); err != nil {
		return nil, fmt.Errorf("declare events exchange: %w", err)
	}
	return &Publisher{ch: ch, seq: seq}, nil
}

func (p *Publisher) Close() error {
	return p.ch.Close()
}

func (p *Publisher) PublishOrderCreated(ctx context.Context, o *order.Order) error {
	payload := OrderCreatedPayload{
		OrderID:       o.ID,
		UserID:        o.UserID,
		Status:        string(o.Status),
		Total:         o.Total,
		Currency:      o.Currency,
		CustomerEmail: o.CustomerEmail,
		Timestamp:     time.Now().UTC(),
	}
	for _, it := range o.Items {
		payload.Items = append(payload.Items, OrderCreatedItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			LineTotal: it.LineTotal,
		})
	}

	return p.publishEnveloped(ctx, OrderCreatedRoutingKey, o.ID, payload)
}

func (p *Publisher) PublishQuoteRequested(ctx context.Context, q *quote.Request) error {
	payload := QuoteRequestedPayload{
		QuoteID:   q.ID,
		Name:      q.Name,
		Email:     q.Email,
		BoardType: q.BoardType,
		Quantity:  q.Quantity,
		Timeline:  q.Timeline,
		Timestamp: time.Now().UTC(),
	}

	return p.publishEnveloped(ctx, QuoteRequestedRoutingKey, q.ID, payload)
}

func (p *Publisher) publishEnveloped(ctx context.Context, routingKey, partitionKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", routingKey, err)
	}

	seq, err := p.seq.NextSequence(ctx, partitionKey)
	if err != nil {
		return fmt.Errorf("reserve sequence: %w", err)
	}

	env := EventEnvelope{
		EventName:     routingKey,
		EventVersion:  1,
		EventID:       uuid.NewString(),
		CorrelationID: middleware.GetCorrelationID(ctx),
		Producer:      producerName,
		PartitionKey:  partitionKey,
		Sequence:      seq,
		OccurredAt:    time.Now().UTC(),
		Payload:       body,
	}

	envBody, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal %s envelope: %w", routingKey, err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return p.ch.PublishWithContext(
		pubCtx,
		EventsExchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         envBody,
		},
	)
}
