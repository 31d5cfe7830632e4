package repository

import (
	"context"
	"time"

	"dinehub/internal/model"
)

// OrderRepository defines the interface for order data access operations.
// Lookup methods return (nil, nil) when no order matches the identifier.
type OrderRepository interface {
	// Save persists the order: insert when it has no identifier, full
	// replace otherwise. The returned order carries the store-assigned
	// identifier.
	Save(ctx context.Context, order *model.Order) (*model.Order, error)

	// FindByID retrieves a single order by its identifier.
	FindByID(ctx context.Context, id string) (*model.Order, error)

	// FindByRestaurantID retrieves all orders placed at a restaurant.
	FindByRestaurantID(ctx context.Context, restaurantID string) ([]model.Order, error)

	// FindByCustomerID retrieves all orders placed by a customer.
	FindByCustomerID(ctx context.Context, customerID string) ([]model.Order, error)

	// FindByStatus retrieves all orders carrying the given status.
	FindByStatus(ctx context.Context, status string) ([]model.Order, error)

	// FindByRestaurantIDAndStatus retrieves a restaurant's orders carrying the given status.
	FindByRestaurantIDAndStatus(ctx context.Context, restaurantID, status string) ([]model.Order, error)

	// FindByCustomerIDAndStatus retrieves a customer's orders carrying the given status.
	FindByCustomerIDAndStatus(ctx context.Context, customerID, status string) ([]model.Order, error)

	// FindByRestaurantIDAndOrderTimeBetween retrieves a restaurant's orders
	// placed within [start, end].
	FindByRestaurantIDAndOrderTimeBetween(ctx context.Context, restaurantID string, start, end time.Time) ([]model.Order, error)

	// FindByCustomerIDAndOrderTimeBetween retrieves a customer's orders
	// placed within [start, end].
	FindByCustomerIDAndOrderTimeBetween(ctx context.Context, customerID string, start, end time.Time) ([]model.Order, error)

	// FindByStatusAndOrderTimeBefore retrieves orders carrying the given
	// status placed at or before the cutoff.
	FindByStatusAndOrderTimeBefore(ctx context.Context, status string, cutoff time.Time) ([]model.Order, error)

	// CountByCustomerID counts all orders ever placed by a customer.
	CountByCustomerID(ctx context.Context, customerID string) (int64, error)

	// CountByRestaurantID counts all orders ever placed at a restaurant.
	CountByRestaurantID(ctx context.Context, restaurantID string) (int64, error)

	// UpdateStatus atomically sets status and updatedAt, returning the
	// updated order.
	UpdateStatus(ctx context.Context, id, status string) (*model.Order, error)

	// UpdatePayment atomically sets paymentStatus, paymentId and updatedAt,
	// returning the updated order.
	UpdatePayment(ctx context.Context, id, paymentStatus, paymentID string) (*model.Order, error)

	// UpdateDelivery atomically sets deliveryStatus, deliveryDriverId and
	// updatedAt, returning the updated order.
	UpdateDelivery(ctx context.Context, id, deliveryStatus, driverID string) (*model.Order, error)
}
