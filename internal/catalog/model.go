package catalog

import "time"

// Product is a catalog row. OriginalPrice, Rating and ReviewCount are
// optional columns and stay nil when unset.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Price         float64   `json:"price"`
	OriginalPrice *float64  `json:"originalPrice,omitempty"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	Category      string    `json:"category"`
	InStock       bool      `json:"inStock"`
	Rating        *float64  `json:"rating,omitempty"`
	ReviewCount   *int      `json:"reviewCount,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Filter narrows List results. Zero values mean "no constraint".
type Filter struct {
	Category    string
	Search      string
	InStockOnly bool
}
