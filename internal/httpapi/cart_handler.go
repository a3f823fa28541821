package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/polygondevindia-tech/board-build-boutique/internal/cart"
	"github.com/polygondevindia-tech/board-build-boutique/internal/catalog"
	"github.com/polygondevindia-tech/board-build-boutique/internal/middleware"
	"github.com/polygondevindia-tech/board-build-boutique/internal/order"
)

// HeaderCartKey identifies the client installation's cart. Clients without
// the header share the default cart, which is fine for a single-browser demo
// and wrong for anything else, so real frontends always send it.
const HeaderCartKey = "X-Cart-Key"

const defaultCartKey = "default"

type CartHandler struct {
	carts    *cart.Manager
	products catalog.Repository
	policy   cart.Policy
	orders   *order.Service
	logger   *log.Logger
}

func NewCartHandler(carts *cart.Manager, products catalog.Repository, policy cart.Policy, orders *order.Service, logger *log.Logger) *CartHandler {
	return &CartHandler{carts: carts, products: products, policy: policy, orders: orders, logger: logger}
}

func cartKey(r *http.Request) string {
	if key := r.Header.Get(HeaderCartKey); key != "" {
		return key
	}
	return defaultCartKey
}

// cartView is the cart as the storefront renders it: the ordered items plus
// the derived counters, with the subtotal rounded at this display boundary.
type cartView struct {
	Items      []cart.LineItem `json:"items"`
	TotalItems int             `json:"totalItems"`
	Subtotal   float64         `json:"subtotal"`
}

func viewOf(s *cart.Store) cartView {
	items := s.Items()
	if items == nil {
		items = []cart.LineItem{}
	}
	return cartView{
		Items:      items,
		TotalItems: s.TotalItemCount(),
		Subtotal:   cart.Round2(s.Subtotal()),
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	store := h.carts.Get(r.Context(), cartKey(r))
	writeJSON(w, http.StatusOK, viewOf(store))
}

func (h *CartHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	store := h.carts.Get(r.Context(), cartKey(r))
	writeJSON(w, http.StatusOK, h.policy.ComputeSummary(store.Items()))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID string `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ProductID == "" {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	p, err := h.products.Get(r.Context(), body.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Printf("product lookup failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load product")
		return
	}

	store := h.carts.Get(r.Context(), cartKey(r))
	store.AddItem(cart.Product{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		ImageRef: p.ImageURL,
		Category: p.Category,
	})

	writeJSON(w, http.StatusOK, viewOf(store))
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	var body struct {
		Quantity *int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Quantity == nil {
		writeError(w, http.StatusBadRequest, "quantity must be an integer")
		return
	}

	store := h.carts.Get(r.Context(), cartKey(r))
	store.UpdateQuantity(productID, *body.Quantity)

	writeJSON(w, http.StatusOK, viewOf(store))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	store := h.carts.Get(r.Context(), cartKey(r))
	store.RemoveItem(chi.URLParam(r, "productId"))
	writeJSON(w, http.StatusOK, viewOf(store))
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	store := h.carts.Get(r.Context(), cartKey(r))
	store.Clear()
	writeJSON(w, http.StatusOK, viewOf(store))
}

func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&body) // email is optional
	}

	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		userID = "guest"
	}

	store := h.carts.Get(r.Context(), cartKey(r))
	o, err := h.orders.PlaceFromCart(r.Context(), store, userID, body.Email)
	if err != nil {
		if errors.Is(err, order.ErrEmptyCart) {
			writeError(w, http.StatusBadRequest, "cart is empty")
			return
		}
		h.logger.Printf("checkout failed: %v", err)
		writeError(w, http.StatusInternalServerError, "checkout failed")
		return
	}

	writeJSON(w, http.StatusCreated, o)
}
