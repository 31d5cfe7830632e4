package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dinehub/internal/model"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ordersCollection = "orders"

// orderRepository implements the OrderRepository interface using MongoDB.
type orderRepository struct {
	collection *mongo.Collection
	logger     zerolog.Logger
}

// NewOrderRepository creates a new MongoDB-backed order repository.
func NewOrderRepository(db *mongo.Database, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		collection: db.Collection(ordersCollection),
		logger:     logger.With().Str("repository", "order").Logger(),
	}
}

// Save persists the order. Orders without an identifier are inserted and get
// a store-assigned ObjectID; orders with one are replaced wholesale.
func (r *orderRepository) Save(ctx context.Context, order *model.Order) (*model.Order, error) {
	if order.ID.IsZero() {
		res, err := r.collection.InsertOne(ctx, order)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to insert order")
			return nil, fmt.Errorf("failed to insert order: %w", err)
		}

		oid, ok := res.InsertedID.(primitive.ObjectID)
		if !ok {
			return nil, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
		}
		order.ID = oid

		r.logger.Debug().
			Str("order_id", order.ID.Hex()).
			Msg("order inserted")

		return order, nil
	}

	if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": order.ID}, order); err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", order.ID.Hex()).
			Msg("failed to replace order")
		return nil, fmt.Errorf("failed to replace order: %w", err)
	}

	return order, nil
}

// FindByID retrieves a single order by its identifier. A malformed identifier
// cannot match any stored order and is reported the same way as an absent one.
func (r *orderRepository) FindByID(ctx context.Context, id string) (*model.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		r.logger.Debug().Str("order_id", id).Msg("malformed order id")
		return nil, nil
	}

	var order model.Order
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.logger.Debug().Str("order_id", id).Msg("order not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", id).Msg("failed to query order")
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	return &order, nil
}

func (r *orderRepository) FindByRestaurantID(ctx context.Context, restaurantID string) ([]model.Order, error) {
	return r.find(ctx, bson.M{"restaurantId": restaurantID})
}

func (r *orderRepository) FindByCustomerID(ctx context.Context, customerID string) ([]model.Order, error) {
	return r.find(ctx, bson.M{"customerId": customerID})
}

func (r *orderRepository) FindByStatus(ctx context.Context, status string) ([]model.Order, error) {
	return r.find(ctx, bson.M{"status": status})
}

func (r *orderRepository) FindByRestaurantIDAndStatus(ctx context.Context, restaurantID, status string) ([]model.Order, error) {
	return r.find(ctx, bson.M{"restaurantId": restaurantID, "status": status})
}

func (r *orderRepository) FindByCustomerIDAndStatus(ctx context.Context, customerID, status string) ([]model.Order, error) {
	return r.find(ctx, bson.M{"customerId": customerID, "status": status})
}

func (r *orderRepository) FindByRestaurantIDAndOrderTimeBetween(ctx context.Context, restaurantID string, start, end time.Time) ([]model.Order, error) {
	return r.find(ctx, bson.M{
		"restaurantId": restaurantID,
		"orderTime":    bson.M{"$gte": start, "$lte": end},
	})
}

func (r *orderRepository) FindByCustomerIDAndOrderTimeBetween(ctx context.Context, customerID string, start, end time.Time) ([]model.Order, error) {
	return r.find(ctx, bson.M{
		"customerId": customerID,
		"orderTime":  bson.M{"$gte": start, "$lte": end},
	})
}

func (r *orderRepository) FindByStatusAndOrderTimeBefore(ctx context.Context, status string, cutoff time.Time) ([]model.Order, error) {
	return r.find(ctx, bson.M{
		"status":    status,
		"orderTime": bson.M{"$lte": cutoff},
	})
}

func (r *orderRepository) CountByCustomerID(ctx context.Context, customerID string) (int64, error) {
	return r.count(ctx, bson.M{"customerId": customerID})
}

func (r *orderRepository) CountByRestaurantID(ctx context.Context, restaurantID string) (int64, error) {
	return r.count(ctx, bson.M{"restaurantId": restaurantID})
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id, status string) (*model.Order, error) {
	return r.setFields(ctx, id, bson.M{"status": status})
}

func (r *orderRepository) UpdatePayment(ctx context.Context, id, paymentStatus, paymentID string) (*model.Order, error) {
	return r.setFields(ctx, id, bson.M{
		"paymentStatus": paymentStatus,
		"paymentId":     paymentID,
	})
}

func (r *orderRepository) UpdateDelivery(ctx context.Context, id, deliveryStatus, driverID string) (*model.Order, error) {
	return r.setFields(ctx, id, bson.M{
		"deliveryStatus":   deliveryStatus,
		"deliveryDriverId": driverID,
	})
}

// setFields applies a single atomic $set touching only the given fields plus
// updatedAt. Concurrent updates to different dimensions of one order cannot
// overwrite each other this way.
func (r *orderRepository) setFields(ctx context.Context, id string, fields bson.M) (*model.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		r.logger.Debug().Str("order_id", id).Msg("malformed order id")
		return nil, nil
	}

	fields["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var order model.Order
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": fields}, opts).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.logger.Debug().Str("order_id", id).Msg("order not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", id).Msg("failed to update order")
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	return &order, nil
}

func (r *orderRepository) find(ctx context.Context, filter bson.M) ([]model.Order, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []model.Order
	if err := cursor.All(ctx, &orders); err != nil {
		r.logger.Error().Err(err).Msg("failed to decode orders")
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) count(ctx context.Context, filter bson.M) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to count orders")
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return n, nil
}
