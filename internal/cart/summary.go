package cart

// Policy holds the fixed checkout fee schedule: a flat shipping fee applied to
// any non-empty cart and a proportional tax rate.
type Policy struct {
	ShippingFlat float64
	TaxRate      float64
}

// DefaultPolicy matches the storefront's published rates.
var DefaultPolicy = Policy{ShippingFlat: 5.99, TaxRate: 0.08}

// Summary is the order summary tuple shown at checkout.
type Summary struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// ComputeSummary derives the summary from a cart snapshot. The subtotal is
// accumulated at full precision and each output is rounded to two decimals
// only at this boundary. An empty cart yields an all-zero summary, including
// shipping.
func (p Policy) ComputeSummary(items []LineItem) Summary {
	if len(items) == 0 {
		return Summary{}
	}

	var subtotal float64
	for _, it := range items {
		subtotal += it.UnitPrice * float64(it.Quantity)
	}

	sub := Round2(subtotal)
	shipping := Round2(p.ShippingFlat)
	tax := Round2(subtotal * p.TaxRate)

	return Summary{
		Subtotal: sub,
		Shipping: shipping,
		Tax:      tax,
		Total:    Round2(sub + shipping + tax),
	}
}
