package router

import (
	"net/http"

	"monkey-boards/app/controller"
	"monkey-boards/metrics"
)

type Controllers struct {
	Order   *controller.OrderController
	Catalog *controller.CatalogController
	Pricing *controller.PricingController
	Planner *controller.PlannerController
}

func SetupRoutes(controllers *Controllers) {
	// Health check
	http.HandleFunc("/api/health", controllers.Order.Health)

	// Order intake
	http.HandleFunc("/api/orders", controllers.Order.SubmitOrder)

	// Catalog routes
	http.HandleFunc("/api/pedals", controllers.Catalog.ListPedals)
	http.HandleFunc("/api/pedals/", controllers.Catalog.GetPedal)
	http.HandleFunc("/api/categories", controllers.Catalog.ListCategories)
	http.HandleFunc("/api/products", controllers.Catalog.ListProducts)
	http.HandleFunc("/api/products/", controllers.Catalog.GetProduct)
	http.HandleFunc("/api/board-sizes", controllers.Catalog.ListBoardSizes)
	http.HandleFunc("/api/wood-finishes", controllers.Catalog.ListWoodFinishes)

	// Custom board price quotes
	http.HandleFunc("/api/custom/price", controllers.Pricing.QuoteCustom)

	// Planner sessions: create, then per-session state and layout operations
	http.HandleFunc("/api/planner/sessions", controllers.Planner.CreateSession)
	http.HandleFunc("/api/planner/sessions/", controllers.Planner.Dispatch)

	// Prometheus scrape endpoint
	http.Handle("/metrics", metrics.Handler())
}
