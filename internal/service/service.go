package service

import (
	"context"

	"dinehub/internal/model"
)

// OrderService defines operations for order management.
type OrderService interface {
	// CreateOrder validates the order against the configured business
	// limits, computes totals and timestamps, and persists it.
	CreateOrder(ctx context.Context, order *model.Order) (*model.Order, error)

	// GetOrder retrieves an order by its identifier.
	GetOrder(ctx context.Context, id string) (*model.Order, error)

	// GetRestaurantOrders retrieves all orders placed at a restaurant.
	GetRestaurantOrders(ctx context.Context, restaurantID string) ([]model.Order, error)

	// GetCustomerOrders retrieves all orders placed by a customer.
	GetCustomerOrders(ctx context.Context, customerID string) ([]model.Order, error)

	// UpdateOrderStatus sets the fulfillment status of an order.
	UpdateOrderStatus(ctx context.Context, id, status string) (*model.Order, error)

	// UpdatePaymentStatus sets the payment state mirror of an order.
	UpdatePaymentStatus(ctx context.Context, id, paymentStatus, paymentID string) (*model.Order, error)

	// UpdateDeliveryStatus sets the delivery state mirror of an order.
	UpdateDeliveryStatus(ctx context.Context, id, deliveryStatus, driverID string) (*model.Order, error)
}
