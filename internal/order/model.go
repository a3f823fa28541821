package order

import "time"

type Item struct {
	ProductID string  `json:"productId,omitempty"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	LineTotal float64 `json:"lineTotal"`
}

type Order struct {
	ID            string    `json:"orderId"`
	UserID        string    `json:"userId"`
	Status        Status    `json:"status"`
	Total         float64   `json:"total"`
	Currency      string    `json:"currency"`
	CustomerEmail string    `json:"customerEmail,omitempty"`
	Items         []Item    `json:"items,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
