package model

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order represents a customer's order from a single restaurant. Fulfillment,
// payment and delivery state are tracked as independent free-text dimensions.
type Order struct {
	ID                    primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	RestaurantID          string             `json:"restaurantId" bson:"restaurantId"`
	CustomerID            string             `json:"customerId" bson:"customerId"`
	Items                 []OrderItem        `json:"items" bson:"items"`
	Subtotal              decimal.Decimal    `json:"subtotal" bson:"subtotal"`
	Tax                   decimal.Decimal    `json:"tax" bson:"tax"`
	DeliveryFee           decimal.Decimal    `json:"deliveryFee" bson:"deliveryFee"`
	Total                 decimal.Decimal    `json:"total" bson:"total"`
	Status                string             `json:"status" bson:"status"`
	PaymentStatus         string             `json:"paymentStatus,omitempty" bson:"paymentStatus,omitempty"`
	PaymentID             string             `json:"paymentId,omitempty" bson:"paymentId,omitempty"`
	OrderTime             time.Time          `json:"orderTime" bson:"orderTime"`
	EstimatedDeliveryTime time.Time          `json:"estimatedDeliveryTime" bson:"estimatedDeliveryTime"`
	ActualDeliveryTime    *time.Time         `json:"actualDeliveryTime,omitempty" bson:"actualDeliveryTime,omitempty"`
	DeliveryAddress       string             `json:"deliveryAddress,omitempty" bson:"deliveryAddress,omitempty"`
	SpecialInstructions   string             `json:"specialInstructions,omitempty" bson:"specialInstructions,omitempty"`
	CouponCode            string             `json:"couponCode,omitempty" bson:"couponCode,omitempty"`
	Discount              decimal.Decimal    `json:"discount" bson:"discount"`
	DeliveryDriverID      string             `json:"deliveryDriverId,omitempty" bson:"deliveryDriverId,omitempty"`
	DeliveryStatus        string             `json:"deliveryStatus,omitempty" bson:"deliveryStatus,omitempty"`
	CreatedAt             time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt             time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// OrderItem represents a line item in an order. Subtotal is computed by the
// service, never taken from the caller.
type OrderItem struct {
	MenuItemID           string          `json:"menuItemId" bson:"menuItemId"`
	Name                 string          `json:"name" bson:"name"`
	Description          string          `json:"description,omitempty" bson:"description,omitempty"`
	Price                decimal.Decimal `json:"price" bson:"price"`
	Quantity             int             `json:"quantity" bson:"quantity"`
	CustomizationOptions []string        `json:"customizationOptions,omitempty" bson:"customizationOptions,omitempty"`
	SpecialInstructions  string          `json:"specialInstructions,omitempty" bson:"specialInstructions,omitempty"`
	Subtotal             decimal.Decimal `json:"subtotal" bson:"subtotal"`
}

// StatusActive is the only status value with business meaning: orders carrying
// it count against the customer's active-order limit.
const StatusActive = "ACTIVE"
