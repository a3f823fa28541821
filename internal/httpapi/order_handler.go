package httpapi

import (
	"encoding/json"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/polygondevindia-tech/board-build-boutique/internal/middleware"
	"github.com/polygondevindia-tech/board-build-boutique/internal/order"
)

type OrderHandler struct {
	repo   order.Repository
	logger *log.Logger
	now    func() time.Time
}

func NewOrderHandler(repo order.Repository, logger *log.Logger) *OrderHandler {
	return &OrderHandler{repo: repo, logger: logger, now: time.Now}
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Printf("list orders: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list orders")
		return
	}
	if orders == nil {
		orders = []order.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	orders, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Printf("list orders for chart: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load orders")
		return
	}
	writeJSON(w, http.StatusOK, order.MonthlyBreakdown(orders, h.now().UTC()))
}

// SeedDemo creates a batch of randomized demo orders so the sales chart has
// data on a fresh install.
func (h *OrderHandler) SeedDemo(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Count int    `json:"count"`
		Email string `json:"email"`
	}
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&body)
	}
	if body.Count <= 0 {
		body.Count = 20
	}

	userID := middleware.GetUserID(r.Context())
	rng := rand.New(rand.NewSource(h.now().UnixNano()))

	n, err := order.SeedDemo(r.Context(), h.repo, body.Count, userID, body.Email, h.now().UTC(), rng)
	if err != nil {
		h.logger.Printf("seed demo orders: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to seed demo orders")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int{"created": n})
}
