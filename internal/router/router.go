package router

import (
	"net/http"

	"dinehub/internal/handler"
	"dinehub/internal/health"
	"dinehub/internal/metrics"
	"dinehub/internal/middleware"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	orderHandler *handler.OrderHandler,
	healthHandler *health.Handler,
	m *metrics.Metrics,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /health", healthHandler)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("POST /api/v1/orders", orderHandler.Create)
	mux.HandleFunc("GET /api/v1/orders/restaurant/{restaurantId}", orderHandler.ListByRestaurant)
	mux.HandleFunc("GET /api/v1/orders/customer/{customerId}", orderHandler.ListByCustomer)
	mux.HandleFunc("GET /api/v1/orders/{orderId}", orderHandler.GetByID)
	mux.HandleFunc("PATCH /api/v1/orders/{orderId}/status", orderHandler.UpdateStatus)
	mux.HandleFunc("PATCH /api/v1/orders/{orderId}/payment", orderHandler.UpdatePayment)
	mux.HandleFunc("PATCH /api/v1/orders/{orderId}/delivery", orderHandler.UpdateDelivery)

	// Apply middleware in order: Recovery -> RequestID -> Logging -> Metrics -> CORS
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Metrics(m)(h)
	h = middleware.Logging(logger)(h)
	h = middleware.RequestID(h)
	h = middleware.Recovery(logger)(h)

	return h
}
