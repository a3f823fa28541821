package httpapi_test

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/polygondevindia-tech/board-build-boutique/internal/cart"
	"github.com/polygondevindia-tech/board-build-boutique/internal/catalog"
	"github.com/polygondevindia-tech/board-build-boutique/internal/order"
	"github.com/polygondevindia-tech/board-build-boutique/internal/quote"
)

var testLogger = log.New(io.Discard, "", 0)

var errFailed = errors.New("backend unavailable")

type fakeCatalog struct {
	products   map[string]catalog.Product
	categories []catalog.Category
	listErr    error
	batches    [][]catalog.Product
}

func newFakeCatalog(products ...catalog.Product) *fakeCatalog {
	m := make(map[string]catalog.Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeCatalog{products: m}
}

func (f *fakeCatalog) List(ctx context.Context, _ catalog.Filter) ([]catalog.Product, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []catalog.Product
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeCatalog) Get(ctx context.Context, id string) (catalog.Product, error) {
	if p, ok := f.products[id]; ok {
		return p, nil
	}
	return catalog.Product{}, catalog.ErrNotFound
}

func (f *fakeCatalog) Create(ctx context.Context, p *catalog.Product) error {
	if p.ID == "" {
		p.ID = "generated-" + p.Name
	}
	f.products[p.ID] = *p
	return nil
}

func (f *fakeCatalog) Update(ctx context.Context, p *catalog.Product) error {
	if _, ok := f.products[p.ID]; !ok {
		return catalog.ErrNotFound
	}
	f.products[p.ID] = *p
	return nil
}

func (f *fakeCatalog) Delete(ctx context.Context, id string) error {
	if _, ok := f.products[id]; !ok {
		return catalog.ErrNotFound
	}
	delete(f.products, id)
	return nil
}

func (f *fakeCatalog) ImportBatch(ctx context.Context, products []catalog.Product) error {
	batch := make([]catalog.Product, len(products))
	copy(batch, products)
	f.batches = append(f.batches, batch)
	for _, p := range batch {
		f.products[p.Name] = p
	}
	return nil
}

func (f *fakeCatalog) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	return f.categories, nil
}

func (f *fakeCatalog) CreateCategory(ctx context.Context, c *catalog.Category) error {
	if c.ID == "" {
		c.ID = "cat-" + c.Name
	}
	if c.Slug == "" {
		c.Slug = catalog.Slugify(c.Name)
	}
	f.categories = append(f.categories, *c)
	return nil
}

func (f *fakeCatalog) UpdateCategory(ctx context.Context, c *catalog.Category) error {
	for i := range f.categories {
		if f.categories[i].ID == c.ID {
			f.categories[i] = *c
			return nil
		}
	}
	return catalog.ErrNotFound
}

func (f *fakeCatalog) DeleteCategory(ctx context.Context, id string) error {
	for i := range f.categories {
		if f.categories[i].ID == id {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)
			return nil
		}
	}
	return catalog.ErrNotFound
}

type fakeOrderRepo struct {
	created   []*order.Order
	createErr error
}

func (f *fakeOrderRepo) Create(ctx context.Context, o *order.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, o)
	return nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, orderID string) (*order.Order, error) {
	for _, o := range f.created {
		if o.ID == orderID {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderRepo) List(ctx context.Context) ([]order.Order, error) {
	out := make([]order.Order, 0, len(f.created))
	for _, o := range f.created {
		out = append(out, *o)
	}
	return out, nil
}

type fakeOrderPublisher struct {
	published []*order.Order
	err       error
}

func (f *fakeOrderPublisher) PublishOrderCreated(ctx context.Context, o *order.Order) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, o)
	return nil
}

type fakeQuoteRepo struct {
	inserted  []*quote.Request
	insertErr error
}

func (f *fakeQuoteRepo) Insert(ctx context.Context, q *quote.Request) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	q.ID = "q-1"
	f.inserted = append(f.inserted, q)
	return nil
}

func (f *fakeQuoteRepo) List(ctx context.Context) ([]quote.Request, error) {
	out := make([]quote.Request, 0, len(f.inserted))
	for _, q := range f.inserted {
		out = append(out, *q)
	}
	return out, nil
}

type fakeQuotePublisher struct {
	published []*quote.Request
	err       error
}

func (f *fakeQuotePublisher) PublishQuoteRequested(ctx context.Context, q *quote.Request) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, q)
	return nil
}

type fakeRoles struct {
	admins map[string]bool
	err    error
}

func (f *fakeRoles) IsAdmin(ctx context.Context, userID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.admins[userID], nil
}

func newTestCartManager() *cart.Manager {
	return cart.NewManager(func(key string) cart.Persister { return nil }, testLogger)
}
