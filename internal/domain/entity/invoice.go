package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Invoice is a derived, immutable snapshot of an order with a
// human-referenceable number. Invoices are deletable independently
// of their source order.
type Invoice struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Number      string             `bson:"number" json:"number"` // INV-xxxxxxxxxx
	OrderID     primitive.ObjectID `bson:"order_id" json:"orderId"`
	UserID      primitive.ObjectID `bson:"user_id" json:"userId"`
	UserName    string             `bson:"user_name" json:"userName"`
	UserEmail   string             `bson:"user_email" json:"userEmail"`
	Items       []OrderItem        `bson:"items" json:"items"`
	PaymentInfo PaymentInfo        `bson:"payment_info" json:"payment_info"`
	TotalPrice  float64            `bson:"total_price" json:"totalPrice"`
	Status      OrderStatus        `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

// CollectionName returns the MongoDB collection name for invoices.
func (Invoice) CollectionName() string {
	return "invoices"
}
