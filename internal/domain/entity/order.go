package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus represents the lifecycle state of an order.
// Orders are immutable after creation; the status is set once from
// the payment result.
type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderCompleted OrderStatus = "Completed"
	OrderCancelled OrderStatus = "Cancelled"
	OrderFailed    OrderStatus = "Failed"
)

// PaymentStatusSucceeded is the gateway status that completes an order.
const PaymentStatusSucceeded = "succeeded"

// PaymentInfo is the normalized payment confirmation shape. Gateway
// payloads are folded into this struct exactly once, at the service
// boundary.
type PaymentInfo struct {
	PaymentIntentID string    `bson:"payment_intent_id" json:"paymentIntentId"`
	Status          string    `bson:"status" json:"status"`
	Amount          int64     `bson:"amount" json:"amount"`
	Currency        string    `bson:"currency" json:"currency"`
	PaymentMethod   string    `bson:"payment_method" json:"paymentMethod"`
	Created         time.Time `bson:"created" json:"created"`
}

// Succeeded reports whether the gateway confirmed the charge.
func (p PaymentInfo) Succeeded() bool {
	return p.Status == PaymentStatusSucceeded
}

// OrderItem is a purchased line with its price-at-purchase snapshot.
type OrderItem struct {
	CourseID        primitive.ObjectID `bson:"course_id" json:"courseId"`
	CourseName      string             `bson:"course_name" json:"courseName"`
	PriceAtPurchase float64            `bson:"price_at_purchase" json:"priceAtPurchase"`
}

// Order is an immutable record of a completed or failed transaction.
type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"user_id" json:"userId"`
	UserName    string             `bson:"user_name" json:"userName"`
	Items       []OrderItem        `bson:"items" json:"items"`
	PaymentInfo PaymentInfo        `bson:"payment_info" json:"payment_info"`
	TotalPrice  float64            `bson:"total_price" json:"totalPrice"`
	Status      OrderStatus        `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

// CollectionName returns the MongoDB collection name for orders.
func (Order) CollectionName() string {
	return "orders"
}
