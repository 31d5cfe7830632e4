package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dinehub/internal/catalog"
	"dinehub/internal/config"
	"dinehub/internal/metrics"
	"dinehub/internal/model"
	"dinehub/internal/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	taxRate     = decimal.New(8, -2)   // 8% flat rate
	deliveryFee = decimal.New(500, -2) // 5.00 flat fee
)

// orderService implements OrderService.
type orderService struct {
	repo    repository.OrderRepository
	catalog catalog.Client
	cfg     config.OrderConfig
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

// NewOrderService creates a new order service. The catalog client may be nil,
// in which case caller-supplied item prices are used as-is.
func NewOrderService(
	repo repository.OrderRepository,
	catalogClient catalog.Client,
	cfg config.OrderConfig,
	m *metrics.Metrics,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		repo:    repo,
		catalog: catalogClient,
		cfg:     cfg,
		metrics: m,
		logger:  logger.With().Str("service", "order").Logger(),
	}
}

// CreateOrder validates, computes derived fields and persists the order.
// Nothing is written before every validation check has passed.
func (s *orderService) CreateOrder(ctx context.Context, order *model.Order) (*model.Order, error) {
	if err := s.validateOrder(ctx, order); err != nil {
		var de *model.DomainError
		if errors.As(err, &de) {
			s.metrics.ValidationFailed(de.Code)
		}
		return nil, err
	}

	if err := s.resolvePrices(ctx, order); err != nil {
		return nil, err
	}

	s.calculateTotals(order)
	s.setTimestamps(order)

	// The identifier is always store-assigned.
	order.ID = primitive.NilObjectID

	saved, err := s.repo.Save(ctx, order)
	if err != nil {
		s.logger.Error().Err(err).Str("customer_id", order.CustomerID).Msg("failed to persist order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.metrics.OrderCreated()
	s.logger.Info().
		Str("order_id", saved.ID.Hex()).
		Str("restaurant_id", saved.RestaurantID).
		Str("customer_id", saved.CustomerID).
		Int("item_count", len(saved.Items)).
		Str("total", saved.Total.String()).
		Msg("order created")

	return saved, nil
}

// GetOrder retrieves an order by its identifier.
func (s *orderService) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}
	return order, nil
}

// GetRestaurantOrders retrieves all orders placed at a restaurant.
func (s *orderService) GetRestaurantOrders(ctx context.Context, restaurantID string) ([]model.Order, error) {
	orders, err := s.repo.FindByRestaurantID(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get restaurant orders: %w", err)
	}
	return orders, nil
}

// GetCustomerOrders retrieves all orders placed by a customer.
func (s *orderService) GetCustomerOrders(ctx context.Context, customerID string) ([]model.Order, error) {
	orders, err := s.repo.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer orders: %w", err)
	}
	return orders, nil
}

// UpdateOrderStatus sets the fulfillment status of an order. The update is a
// single atomic field write; no transition rules are enforced.
func (s *orderService) UpdateOrderStatus(ctx context.Context, id, status string) (*model.Order, error) {
	order, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	s.metrics.StatusUpdated("status")
	s.logger.Info().
		Str("order_id", id).
		Str("status", status).
		Msg("order status updated")

	return order, nil
}

// UpdatePaymentStatus sets the payment state mirror of an order.
func (s *orderService) UpdatePaymentStatus(ctx context.Context, id, paymentStatus, paymentID string) (*model.Order, error) {
	order, err := s.repo.UpdatePayment(ctx, id, paymentStatus, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to update payment status: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	s.metrics.StatusUpdated("payment")
	s.logger.Info().
		Str("order_id", id).
		Str("payment_status", paymentStatus).
		Msg("payment status updated")

	return order, nil
}

// UpdateDeliveryStatus sets the delivery state mirror of an order.
func (s *orderService) UpdateDeliveryStatus(ctx context.Context, id, deliveryStatus, driverID string) (*model.Order, error) {
	order, err := s.repo.UpdateDelivery(ctx, id, deliveryStatus, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to update delivery status: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	s.metrics.StatusUpdated("delivery")
	s.logger.Info().
		Str("order_id", id).
		Str("delivery_status", deliveryStatus).
		Msg("delivery status updated")

	return order, nil
}

// validateOrder applies request sanity checks followed by the three business
// limits in a fixed order: item count, lifetime order count, active orders.
// First failure wins.
func (s *orderService) validateOrder(ctx context.Context, order *model.Order) error {
	if order == nil || len(order.Items) == 0 {
		return model.ErrEmptyOrder
	}

	for i, item := range order.Items {
		if item.Quantity <= 0 {
			s.logger.Warn().
				Int("item_index", i).
				Str("menu_item_id", item.MenuItemID).
				Int("quantity", item.Quantity).
				Msg("invalid quantity")
			return model.ErrInvalidQuantity
		}
	}

	if len(order.Items) > s.cfg.MaxItemsPerOrder {
		s.logger.Warn().
			Str("customer_id", order.CustomerID).
			Int("item_count", len(order.Items)).
			Int("limit", s.cfg.MaxItemsPerOrder).
			Msg("order exceeds item limit")
		return model.ErrMaxItemsExceeded
	}

	orderCount, err := s.repo.CountByCustomerID(ctx, order.CustomerID)
	if err != nil {
		return fmt.Errorf("failed to count customer orders: %w", err)
	}
	if orderCount >= int64(s.cfg.MaxOrdersPerCustomer) {
		s.logger.Warn().
			Str("customer_id", order.CustomerID).
			Int64("order_count", orderCount).
			Int("limit", s.cfg.MaxOrdersPerCustomer).
			Msg("customer order limit reached")
		return model.ErrOrderLimitReached
	}

	activeOrders, err := s.repo.FindByCustomerIDAndStatus(ctx, order.CustomerID, model.StatusActive)
	if err != nil {
		return fmt.Errorf("failed to look up active orders: %w", err)
	}
	if len(activeOrders) >= s.cfg.MaxActiveOrders {
		s.logger.Warn().
			Str("customer_id", order.CustomerID).
			Int("active_count", len(activeOrders)).
			Int("limit", s.cfg.MaxActiveOrders).
			Msg("customer has too many active orders")
		return model.ErrTooManyActiveOrders
	}

	return nil
}

// resolvePrices replaces caller-supplied unit prices with authoritative prices
// from the menu catalog when a catalog client is configured.
func (s *orderService) resolvePrices(ctx context.Context, order *model.Order) error {
	if s.catalog == nil {
		return nil
	}

	for i := range order.Items {
		item := &order.Items[i]

		menuItem, err := s.catalog.MenuItem(ctx, item.MenuItemID)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				s.logger.Warn().
					Str("menu_item_id", item.MenuItemID).
					Msg("menu item not found in catalog")
				return model.ErrMenuItemNotFound
			}
			return fmt.Errorf("failed to resolve menu item %s: %w", item.MenuItemID, err)
		}

		item.Price = menuItem.Price
		if item.Name == "" {
			item.Name = menuItem.Name
		}
		if item.Description == "" {
			item.Description = menuItem.Description
		}
	}

	return nil
}

// calculateTotals derives per-item subtotals and the order money fields:
// subtotal, 8% tax, flat delivery fee, and the total less any discount.
func (s *orderService) calculateTotals(order *model.Order) {
	subtotal := decimal.Zero

	for i := range order.Items {
		item := &order.Items[i]
		item.Subtotal = item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(item.Subtotal)
	}

	order.Subtotal = subtotal
	order.Tax = subtotal.Mul(taxRate)
	order.DeliveryFee = deliveryFee

	total := subtotal.Add(order.Tax).Add(order.DeliveryFee)
	if !order.Discount.IsZero() {
		total = total.Sub(order.Discount)
	}
	order.Total = total
}

// setTimestamps stamps the creation clocks and the delivery estimate.
func (s *orderService) setTimestamps(order *model.Order) {
	now := time.Now().UTC()
	order.OrderTime = now
	order.CreatedAt = now
	order.UpdatedAt = now
	order.EstimatedDeliveryTime = now.Add(time.Duration(s.cfg.DefaultPreparationTime) * time.Minute)
}
