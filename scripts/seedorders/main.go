// seedorders inserts a handful of sample orders for local development.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"dinehub/internal/database"
	"dinehub/internal/model"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DATABASE")
	if dbName == "" {
		dbName = "dinehub"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetRegistry(database.Registry()))
	if err != nil {
		log.Fatalf("Unable to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	now := time.Now().UTC()
	orders := []any{
		sampleOrder("rest-1", "cust-1", model.StatusActive, now, []model.OrderItem{
			item("item-1", "Margherita", "10.00", 2),
			item("item-2", "Garlic Bread", "5.50", 1),
		}),
		sampleOrder("rest-1", "cust-2", "DELIVERED", now.Add(-2*time.Hour), []model.OrderItem{
			item("item-3", "Pepperoni", "12.00", 1),
		}),
		sampleOrder("rest-2", "cust-1", model.StatusActive, now.Add(-30*time.Minute), []model.OrderItem{
			item("item-4", "Pad Thai", "11.50", 2),
			item("item-5", "Spring Rolls", "4.00", 3),
		}),
	}

	res, err := client.Database(dbName).Collection("orders").InsertMany(ctx, orders)
	if err != nil {
		log.Fatalf("Insert failed: %v", err)
	}

	fmt.Printf("Inserted %d sample orders into %s\n", len(res.InsertedIDs), dbName)
}

func item(id, name, price string, quantity int) model.OrderItem {
	p := decimal.RequireFromString(price)
	return model.OrderItem{
		MenuItemID: id,
		Name:       name,
		Price:      p,
		Quantity:   quantity,
		Subtotal:   p.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

func sampleOrder(restaurantID, customerID, status string, orderTime time.Time, items []model.OrderItem) *model.Order {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Subtotal)
	}
	tax := subtotal.Mul(decimal.New(8, -2))
	fee := decimal.New(500, -2)

	return &model.Order{
		RestaurantID:          restaurantID,
		CustomerID:            customerID,
		Items:                 items,
		Subtotal:              subtotal,
		Tax:                   tax,
		DeliveryFee:           fee,
		Total:                 subtotal.Add(tax).Add(fee),
		Status:                status,
		OrderTime:             orderTime,
		EstimatedDeliveryTime: orderTime.Add(30 * time.Minute),
		DeliveryAddress:       "1 Main St",
		CreatedAt:             orderTime,
		UpdatedAt:             orderTime,
	}
}
