package handler

import (
	"encoding/json"
	"net/http"

	"dinehub/internal/model"
	"dinehub/internal/service"

	"github.com/rs/zerolog"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// Create handles POST /api/v1/orders requests.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var order model.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	created, err := h.service.CreateOrder(r.Context(), &order)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, created)
}

// GetByID handles GET /api/v1/orders/{orderId} requests.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	orderID := r.PathValue("orderId")

	order, err := h.service.GetOrder(r.Context(), orderID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// ListByRestaurant handles GET /api/v1/orders/restaurant/{restaurantId} requests.
func (h *OrderHandler) ListByRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurantID := r.PathValue("restaurantId")

	orders, err := h.service.GetRestaurantOrders(r.Context(), restaurantID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, emptyIfNil(orders))
}

// ListByCustomer handles GET /api/v1/orders/customer/{customerId} requests.
func (h *OrderHandler) ListByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID := r.PathValue("customerId")

	orders, err := h.service.GetCustomerOrders(r.Context(), customerID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, emptyIfNil(orders))
}

// UpdateStatus handles PATCH /api/v1/orders/{orderId}/status requests.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID := r.PathValue("orderId")

	status := r.URL.Query().Get("status")
	if status == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingParam, "status query parameter is required", h.logger)
		return
	}

	order, err := h.service.UpdateOrderStatus(r.Context(), orderID, status)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// UpdatePayment handles PATCH /api/v1/orders/{orderId}/payment requests.
func (h *OrderHandler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	orderID := r.PathValue("orderId")

	q := r.URL.Query()
	paymentStatus := q.Get("paymentStatus")
	paymentID := q.Get("paymentId")
	if paymentStatus == "" || paymentID == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingParam,
			"paymentStatus and paymentId query parameters are required", h.logger)
		return
	}

	order, err := h.service.UpdatePaymentStatus(r.Context(), orderID, paymentStatus, paymentID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// UpdateDelivery handles PATCH /api/v1/orders/{orderId}/delivery requests.
func (h *OrderHandler) UpdateDelivery(w http.ResponseWriter, r *http.Request) {
	orderID := r.PathValue("orderId")

	q := r.URL.Query()
	deliveryStatus := q.Get("deliveryStatus")
	driverID := q.Get("deliveryDriverId")
	if deliveryStatus == "" || driverID == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingParam,
			"deliveryStatus and deliveryDriverId query parameters are required", h.logger)
		return
	}

	order, err := h.service.UpdateDeliveryStatus(r.Context(), orderID, deliveryStatus, driverID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// emptyIfNil keeps list responses encoding as [] rather than null.
func emptyIfNil(orders []model.Order) []model.Order {
	if orders == nil {
		return []model.Order{}
	}
	return orders
}
