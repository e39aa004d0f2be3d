package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// OrdersSubmitted counts orders successfully appended to the sheet.
	OrdersSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "monkeyboards_orders_submitted_total",
		Help: "Orders successfully recorded in the order sheet.",
	})

	// OrderFailures counts rejected or failed order submissions by reason.
	OrderFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "monkeyboards_order_failures_total",
		Help: "Order submissions that were rejected or failed downstream.",
	}, []string{"reason"})

	// PlannerSessions counts planner sessions created.
	PlannerSessions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "monkeyboards_planner_sessions_total",
		Help: "Planner sessions created.",
	})
)

// Handler serves the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
