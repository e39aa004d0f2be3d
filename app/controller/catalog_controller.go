package controller

import (
	"net/http"
	"strings"

	"monkey-boards/catalog"
	"monkey-boards/models"
)

// CatalogController serves the static pedal catalog, product list and the
// planner's fixed option sets. Everything here is read-only.
type CatalogController struct{}

// NewCatalogController creates a new CatalogController.
func NewCatalogController() *CatalogController {
	return &CatalogController{}
}

// ListPedals handles GET /api/pedals?q=...&category=...
func (c *CatalogController) ListPedals(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")
	pedals := catalog.Filter(q, category)
	if pedals == nil {
		pedals = []models.Pedal{}
	}
	writeJSON(w, http.StatusOK, pedals)
}

// GetPedal handles GET /api/pedals/:id
func (c *CatalogController) GetPedal(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/pedals/")
	pedal, ok := catalog.LookupByID(id)
	if !ok {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, pedal)
}

// ListCategories handles GET /api/categories
func (c *CatalogController) ListCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, catalog.Categories)
}

// ListProducts handles GET /api/products
func (c *CatalogController) ListProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, catalog.Products)
}

// GetProduct handles GET /api/products/:id
func (c *CatalogController) GetProduct(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/products/")
	product, ok := catalog.ProductByID(id)
	if !ok {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// ListBoardSizes handles GET /api/board-sizes
func (c *CatalogController) ListBoardSizes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, catalog.BoardSizes)
}

// ListWoodFinishes handles GET /api/wood-finishes
func (c *CatalogController) ListWoodFinishes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, catalog.WoodFinishes)
}
