package httpapi

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/polygondevindia-tech/board-build-boutique/internal/auth"
	"github.com/polygondevindia-tech/board-build-boutique/internal/middleware"
)

type RouterDeps struct {
	Cart    *CartHandler
	Catalog *CatalogHandler
	Orders  *OrderHandler
	Quotes  *QuoteHandler

	Roles            auth.Roles
	CORSAllowOrigins []string
	Logger           *log.Logger
}

func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)
	r.Use(middleware.CorrelationID)
	r.Use(middleware.UserID)
	r.Use(middleware.CORS(deps.CORSAllowOrigins))

	r.Get("/health", healthHandler)

	r.Route("/api/cart", func(r chi.Router) {
		r.Get("/", deps.Cart.GetCart)
		r.Delete("/", deps.Cart.Clear)
		r.Get("/summary", deps.Cart.GetSummary)
		r.Post("/items", deps.Cart.AddItem)
		r.Put("/items/{productId}", deps.Cart.UpdateQuantity)
		r.Delete("/items/{productId}", deps.Cart.RemoveItem)
		r.Post("/checkout", deps.Cart.Checkout)
	})

	r.Get("/api/products", deps.Catalog.ListProducts)
	r.Get("/api/products/{productId}", deps.Catalog.GetProduct)
	r.Get("/api/categories", deps.Catalog.ListCategories)

	r.Post("/api/quotes", deps.Quotes.Submit)

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.RequireAdmin(deps.Roles, deps.Logger))

		r.Post("/products", deps.Catalog.CreateProduct)
		r.Put("/products/{productId}", deps.Catalog.UpdateProduct)
		r.Delete("/products/{productId}", deps.Catalog.DeleteProduct)
		r.Post("/products/import", deps.Catalog.ImportProducts)
		r.Get("/products/export", deps.Catalog.ExportProducts)

		r.Post("/categories", deps.Catalog.CreateCategory)
		r.Put("/categories/{categoryId}", deps.Catalog.UpdateCategory)
		r.Delete("/categories/{categoryId}", deps.Catalog.DeleteCategory)

		r.Get("/orders", deps.Orders.List)
		r.Get("/orders/monthly", deps.Orders.Monthly)
		r.Post("/orders/seed", deps.Orders.SeedDemo)

		r.Get("/quotes", deps.Quotes.List)
	})

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok", "service": "board-build-boutique"})
}
