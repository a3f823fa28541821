package cart

import (
	"context"
	"errors"
	"io"
	"log"
	"reflect"
	"testing"
)

var testLogger = log.New(io.Discard, "", 0)

// fakePersister collects saved snapshots in memory.
type fakePersister struct {
	stored  []LineItem
	loadErr error
	saveErr error
	saves   int
}

func (f *fakePersister) Load(ctx context.Context) ([]LineItem, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	out := make([]LineItem, len(f.stored))
	copy(out, f.stored)
	return out, nil
}

func (f *fakePersister) Save(ctx context.Context, items []LineItem) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.stored = make([]LineItem, len(items))
	copy(f.stored, items)
	return nil
}

func productA() Product {
	return Product{ID: "p-a", Name: "Arduino Board", Price: 24.99, ImageRef: "img/a.jpg", Category: "Development Boards"}
}

func productB() Product {
	return Product{ID: "p-b", Name: "Sensor Module", Price: 18.99, ImageRef: "img/b.jpg", Category: "Sensor Modules"}
}

func newTestStore() *Store {
	return NewStore(context.Background(), nil, testLogger)
}

func TestAddItemAppendsWithQuantityOne(t *testing.T) {
	s := newTestStore()
	s.AddItem(productA())

	items := s.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	want := LineItem{ID: "p-a", Name: "Arduino Board", UnitPrice: 24.99, ImageRef: "img/a.jpg", Category: "Development Boards", Quantity: 1}
	if items[0] != want {
		t.Fatalf("unexpected item %+v", items[0])
	}
}

func TestAddItemIncrementsExisting(t *testing.T) {
	s := newTestStore()
	const n = 5
	for i := 0; i < n; i++ {
		s.AddItem(productA())
	}

	items := s.Items()
	if len(items) != 1 {
		t.Fatalf("expected single line, got %d", len(items))
	}
	if items[0].Quantity != n {
		t.Fatalf("expected quantity %d after %d adds, got %d", n, n, items[0].Quantity)
	}
}

func TestAddThenRemoveRestoresPriorState(t *testing.T) {
	s := newTestStore()
	s.AddItem(productB())
	before := s.Items()

	s.AddItem(productA())
	s.RemoveItem("p-a")

	if got := s.Items(); !reflect.DeepEqual(got, before) {
		t.Fatalf("cart changed by add+remove pair\ngot  %+v\nwant %+v", got, before)
	}
}

func TestOrderPreservedOnIncrement(t *testing.T) {
	s := newTestStore()
	s.AddItem(productA())
	s.AddItem(productB())
	s.AddItem(productA()) // increment, must not move the row

	items := s.Items()
	if len(items) != 2 || items[0].ID != "p-a" || items[1].ID != "p-b" {
		t.Fatalf("iteration order broken: %+v", items)
	}
	if items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2 for first line, got %d", items[0].Quantity)
	}
}

func TestUpdateQuantity(t *testing.T) {
	tests := map[string]struct {
		quantity  int
		wantGone  bool
		wantValue int
	}{
		"positive sets quantity": {quantity: 7, wantValue: 7},
		"zero removes line":      {quantity: 0, wantGone: true},
		"negative removes line":  {quantity: -3, wantGone: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			s := newTestStore()
			s.AddItem(productA())
			s.UpdateQuantity("p-a", tc.quantity)

			items := s.Items()
			if tc.wantGone {
				if len(items) != 0 {
					t.Fatalf("expected empty cart, got %+v", items)
				}
				return
			}
			if len(items) != 1 || items[0].Quantity != tc.wantValue {
				t.Fatalf("unexpected items %+v", items)
			}
		})
	}
}

func TestUnknownIDIsNoOp(t *testing.T) {
	s := newTestStore()
	s.AddItem(productA())
	before := s.Items()

	s.UpdateQuantity("nonexistent", 5)
	s.RemoveItem("nonexistent")

	if got := s.Items(); !reflect.DeepEqual(got, before) {
		t.Fatalf("unknown-id operations mutated the cart: %+v", got)
	}
}

func TestClear(t *testing.T) {
	s := newTestStore()
	s.AddItem(productA())
	s.AddItem(productB())
	s.Clear()

	if len(s.Items()) != 0 || s.TotalItemCount() != 0 || s.Subtotal() != 0 {
		t.Fatalf("clear left state behind")
	}
}

func TestTotalsStayConsistent(t *testing.T) {
	s := newTestStore()
	s.AddItem(productA())
	s.AddItem(productB())
	s.AddItem(productA())
	s.UpdateQuantity("p-b", 4)
	s.RemoveItem("p-a")
	s.AddItem(productA())

	wantCount := 0
	var wantSubtotal float64
	for _, it := range s.Items() {
		wantCount += it.Quantity
		wantSubtotal += it.UnitPrice * float64(it.Quantity)
	}

	if got := s.TotalItemCount(); got != wantCount {
		t.Fatalf("item count drifted: got %d want %d", got, wantCount)
	}
	if got := s.Subtotal(); got != wantSubtotal {
		t.Fatalf("subtotal drifted: got %v want %v", got, wantSubtotal)
	}
}

func TestItemsReturnsDefensiveCopy(t *testing.T) {
	s := newTestStore()
	s.AddItem(productA())

	items := s.Items()
	items[0].Quantity = 99

	if got := s.Items()[0].Quantity; got != 1 {
		t.Fatalf("mutating returned slice affected store state: %d", got)
	}
}

func TestEmptyCartQueries(t *testing.T) {
	s := newTestStore()
	if s.TotalItemCount() != 0 {
		t.Fatalf("expected zero count")
	}
	if s.Subtotal() != 0 {
		t.Fatalf("expected zero subtotal")
	}
	if len(s.Items()) != 0 {
		t.Fatalf("expected no items")
	}
}

func TestMutationsWriteThrough(t *testing.T) {
	p := &fakePersister{}
	s := NewStore(context.Background(), p, testLogger)

	s.AddItem(productA())
	s.UpdateQuantity("p-a", 3)
	s.RemoveItem("p-a")
	s.Clear()

	if p.saves != 4 {
		t.Fatalf("expected a save per mutation, got %d", p.saves)
	}
}

func TestSaveFailureDoesNotBlockMutation(t *testing.T) {
	p := &fakePersister{saveErr: errors.New("disk full")}
	s := NewStore(context.Background(), p, testLogger)

	s.AddItem(productA())

	if got := s.TotalItemCount(); got != 1 {
		t.Fatalf("mutation rolled back on save failure: count %d", got)
	}
}

func TestRehydrateFromPersister(t *testing.T) {
	p := &fakePersister{}
	first := NewStore(context.Background(), p, testLogger)
	first.AddItem(productA())
	first.AddItem(productB())
	first.AddItem(productA())

	second := NewStore(context.Background(), p, testLogger)
	if got, want := second.Items(), first.Items(); !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch\ngot  %+v\nwant %+v", got, want)
	}
}

func TestLoadFailureYieldsEmptyCart(t *testing.T) {
	p := &fakePersister{loadErr: errors.New("connection refused")}
	s := NewStore(context.Background(), p, testLogger)

	if len(s.Items()) != 0 {
		t.Fatalf("expected empty cart after load failure")
	}
}

func TestRehydrateDropsInvalidRows(t *testing.T) {
	p := &fakePersister{stored: []LineItem{
		{ID: "p-a", Name: "Arduino Board", UnitPrice: 24.99, Quantity: 2},
		{ID: "", Name: "ghost", UnitPrice: 1, Quantity: 1},
		{ID: "p-b", Name: "Sensor Module", UnitPrice: 18.99, Quantity: 0},
	}}
	s := NewStore(context.Background(), p, testLogger)

	items := s.Items()
	if len(items) != 1 || items[0].ID != "p-a" {
		t.Fatalf("expected only the valid row to survive, got %+v", items)
	}
}
