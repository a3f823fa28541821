package cart

import "testing"

func TestComputeSummaryConcrete(t *testing.T) {
	// one item at 24.99 x 2 under the default 5.99 flat / 8% policy
	items := []LineItem{{ID: "p-a", Name: "Arduino Board", UnitPrice: 24.99, Quantity: 2}}

	got := DefaultPolicy.ComputeSummary(items)

	want := Summary{Subtotal: 49.98, Shipping: 5.99, Tax: 4.00, Total: 59.97}
	if got != want {
		t.Fatalf("summary mismatch\ngot  %+v\nwant %+v", got, want)
	}
}

func TestComputeSummaryEmptyCart(t *testing.T) {
	got := DefaultPolicy.ComputeSummary(nil)
	if got != (Summary{}) {
		t.Fatalf("expected all-zero summary for empty cart, got %+v", got)
	}
}

func TestComputeSummaryMultipleLines(t *testing.T) {
	items := []LineItem{
		{ID: "p-a", UnitPrice: 18.99, Quantity: 1},
		{ID: "p-b", UnitPrice: 15.99, Quantity: 3},
	}
	policy := Policy{ShippingFlat: 10, TaxRate: 0.1}

	got := policy.ComputeSummary(items)

	// 18.99 + 47.97 = 66.96; tax 6.696 -> 6.70
	want := Summary{Subtotal: 66.96, Shipping: 10, Tax: 6.70, Total: 83.66}
	if got != want {
		t.Fatalf("summary mismatch\ngot  %+v\nwant %+v", got, want)
	}
}

func TestComputeSummaryRoundsOnlyAtBoundary(t *testing.T) {
	// three lines that each carry a sub-cent fraction; rounding per line
	// would produce a different subtotal than rounding the full sum
	items := []LineItem{
		{ID: "a", UnitPrice: 0.111, Quantity: 1},
		{ID: "b", UnitPrice: 0.111, Quantity: 1},
		{ID: "c", UnitPrice: 0.111, Quantity: 1},
	}
	policy := Policy{ShippingFlat: 0, TaxRate: 0}

	got := policy.ComputeSummary(items)

	if got.Subtotal != 0.33 {
		t.Fatalf("expected subtotal 0.33 (rounded once at the end), got %v", got.Subtotal)
	}
}

func TestParseAmount(t *testing.T) {
	tests := map[string]struct {
		in      string
		want    float64
		wantErr bool
	}{
		"plain decimal":    {in: "24.99", want: 24.99},
		"currency prefix":  {in: "$24.99", want: 24.99},
		"padded":           {in: "  $5.00 ", want: 5},
		"integer":          {in: "7", want: 7},
		"empty":            {in: "", wantErr: true},
		"symbol only":      {in: "$", wantErr: true},
		"non numeric":      {in: "free", wantErr: true},
		"not finite (nan)": {in: "NaN", wantErr: true},
		"not finite (inf)": {in: "Inf", wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseAmount(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("ParseAmount(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{3.9984, 4.00},
		{3.994, 3.99},
		{5.999, 6.00},
		{-1.339, -1.34},
		{0, 0},
	}
	for _, tc := range tests {
		if got := Round2(tc.in); got != tc.want {
			t.Fatalf("Round2(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
