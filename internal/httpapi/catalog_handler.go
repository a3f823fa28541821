package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/polygondevindia-tech/board-build-boutique/internal/catalog"
)

type CatalogHandler struct {
	repo   catalog.Repository
	svc    *catalog.Service
	logger *log.Logger
}

func NewCatalogHandler(repo catalog.Repository, svc *catalog.Service, logger *log.Logger) *CatalogHandler {
	return &CatalogHandler{repo: repo, svc: svc, logger: logger}
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := catalog.Filter{
		Category:    q.Get("category"),
		Search:      q.Get("q"),
		InStockOnly: q.Get("inStock") == "true",
	}

	products, err := h.repo.List(r.Context(), f)
	if err != nil {
		h.logger.Printf("list products: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list products")
		return
	}
	if products == nil {
		products = []catalog.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.repo.Get(r.Context(), chi.URLParam(r, "productId"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Printf("get product: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load product")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.ListCategories(r.Context())
	if err != nil {
		h.logger.Printf("list categories: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list categories")
		return
	}
	if categories == nil {
		categories = []catalog.Category{}
	}
	writeJSON(w, http.StatusOK, categories)
}

type productRequest struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice"`
	ImageURL      string   `json:"imageUrl"`
	Category      string   `json:"category"`
	InStock       bool     `json:"inStock"`
	Rating        *float64 `json:"rating"`
	ReviewCount   *int     `json:"reviewCount"`
}

func (req *productRequest) validate() string {
	switch {
	case req.Name == "":
		return "name is required"
	case req.Category == "":
		return "category is required"
	case req.Price <= 0:
		return "price must be positive"
	}
	return ""
}

func (req *productRequest) apply(p *catalog.Product) {
	p.Name = req.Name
	p.Description = req.Description
	p.Price = req.Price
	p.OriginalPrice = req.OriginalPrice
	p.ImageURL = req.ImageURL
	p.Category = req.Category
	p.InStock = req.InStock
	p.Rating = req.Rating
	p.ReviewCount = req.ReviewCount
}

func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	var p catalog.Product
	req.apply(&p)
	if err := h.repo.Create(r.Context(), &p); err != nil {
		h.logger.Printf("create product: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to create product")
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if msg := req.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	p := catalog.Product{ID: chi.URLParam(r, "productId")}
	req.apply(&p)
	if err := h.repo.Update(r.Context(), &p); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Printf("update product: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to update product")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "productId")); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Printf("delete product: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to delete product")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

type categoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    *bool  `json:"isActive"`
}

func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	c := catalog.Category{Name: req.Name, Description: req.Description, IsActive: true}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
	if err := h.repo.CreateCategory(r.Context(), &c); err != nil {
		h.logger.Printf("create category: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to create category")
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *CatalogHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	c := catalog.Category{ID: chi.URLParam(r, "categoryId"), Name: req.Name, Description: req.Description, IsActive: true}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
	if err := h.repo.UpdateCategory(r.Context(), &c); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, http.StatusNotFound, "category not found")
			return
		}
		h.logger.Printf("update category: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to update category")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.DeleteCategory(r.Context(), chi.URLParam(r, "categoryId")); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, http.StatusNotFound, "category not found")
			return
		}
		h.logger.Printf("delete category: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to delete category")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// ImportProducts ingests a CSV request body and reports how many rows landed.
func (h *CatalogHandler) ImportProducts(w http.ResponseWriter, r *http.Request) {
	imported, skipped, err := h.svc.ImportCSV(r.Context(), r.Body)
	if err != nil {
		h.logger.Printf("import products: %v", err)
		writeError(w, http.StatusBadRequest, "import failed: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"imported": imported, "skipped": skipped})
}

func (h *CatalogHandler) ExportProducts(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="products.csv"`)
	if err := h.svc.ExportCSV(r.Context(), w); err != nil {
		// headers are already gone; all we can do is log
		h.logger.Printf("export products: %v", err)
	}
}
