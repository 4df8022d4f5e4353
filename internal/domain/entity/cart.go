package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is a single course reference with a locked-in price
// awaiting checkout. The price is captured at add time and never
// re-read from the catalog.
type CartItem struct {
	CourseID        primitive.ObjectID `bson:"course_id" json:"courseId"`
	CourseName      string             `bson:"course_name" json:"courseName"`
	PriceAtPurchase float64            `bson:"price_at_purchase" json:"priceAtPurchase"`
	Thumbnail       string             `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	AddedAt         time.Time          `bson:"added_at" json:"added_at"`
}

// Cart holds one per-user document of pending line items.
// Invariant: at most one item per course id.
type Cart struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"userId"`
	Items     []CartItem         `bson:"items" json:"items"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// CollectionName returns the MongoDB collection name for carts.
func (Cart) CollectionName() string {
	return "carts"
}

// EmptyCart returns a synthetic cart for users without a persisted one.
func EmptyCart(userID primitive.ObjectID) *Cart {
	return &Cart{UserID: userID, Items: []CartItem{}}
}

// HasCourse reports whether the cart already contains a line item
// for the given course.
func (c *Cart) HasCourse(courseID primitive.ObjectID) bool {
	return c.ItemFor(courseID) != nil
}

// ItemFor returns the line item for the course, or nil.
func (c *Cart) ItemFor(courseID primitive.ObjectID) *CartItem {
	for i := range c.Items {
		if c.Items[i].CourseID == courseID {
			return &c.Items[i]
		}
	}
	return nil
}

// RemoveCourse filters the line item out by course id. Removing an
// absent course is a no-op.
func (c *Cart) RemoveCourse(courseID primitive.ObjectID) {
	items := c.Items[:0]
	for _, item := range c.Items {
		if item.CourseID != courseID {
			items = append(items, item)
		}
	}
	c.Items = items
}

// RemoveCourses removes every line item whose course id is in the set.
func (c *Cart) RemoveCourses(courseIDs []primitive.ObjectID) {
	drop := make(map[primitive.ObjectID]struct{}, len(courseIDs))
	for _, id := range courseIDs {
		drop[id] = struct{}{}
	}
	items := c.Items[:0]
	for _, item := range c.Items {
		if _, ok := drop[item.CourseID]; !ok {
			items = append(items, item)
		}
	}
	c.Items = items
}
