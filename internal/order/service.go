package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/polygondevindia-tech/board-build-boutique/internal/cart"
)

var ErrEmptyCart = errors.New("cart is empty")

// Publisher emits the order-created event after the order row is written.
type Publisher interface {
	PublishOrderCreated(ctx context.Context, o *Order) error
}

// Service turns a cart snapshot into a pending order. Payment and settlement
// happen elsewhere; this service only records the order and announces it.
type Service struct {
	repo   Repository
	pub    Publisher
	policy cart.Policy
	now    func() time.Time
}

func NewService(repo Repository, pub Publisher, policy cart.Policy) *Service {
	return &Service{repo: repo, pub: pub, policy: policy, now: time.Now}
}

// PlaceFromCart snapshots the cart into a pending order priced by the summary
// engine, persists it, publishes order.created and clears the cart. A publish
// failure surfaces before the cart is cleared, so the client can retry.
func (s *Service) PlaceFromCart(ctx context.Context, store *cart.Store, userID, email string) (*Order, error) {
	items := store.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	summary := s.policy.ComputeSummary(items)

	o := &Order{
		ID:            uuid.NewString(),
		UserID:        userID,
		Status:        StatusPending,
		Total:         summary.Total,
		Currency:      "USD",
		CustomerEmail: email,
		CreatedAt:     s.now().UTC(),
	}
	for _, it := range items {
		o.Items = append(o.Items, Item{
			ProductID: it.ID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			LineTotal: cart.Round2(it.UnitPrice * float64(it.Quantity)),
		})
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	if s.pub != nil {
		if err := s.pub.PublishOrderCreated(ctx, o); err != nil {
			return nil, fmt.Errorf("publish order created: %w", err)
		}
	}

	store.Clear()
	return o, nil
}
