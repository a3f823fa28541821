package cart

// Product is the already-resolved catalog shape accepted by AddItem.
// Price arrives as a plain decimal; the caller is responsible for any
// currency-string parsing (see ParseAmount).
type Product struct {
	ID       string
	Name     string
	Price    float64
	ImageRef string
	Category string
}

// LineItem is one product entry in the cart. UnitPrice is captured once at
// add time and is not refreshed from the catalog afterwards. Quantity is the
// only field that mutates after the item is added.
type LineItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	ImageRef  string  `json:"imageRef,omitempty"`
	Category  string  `json:"category,omitempty"`
	Quantity  int     `json:"quantity"`
}
