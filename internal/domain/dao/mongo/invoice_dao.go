package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/edumart/edumart-api/internal/domain/dao"
	"github.com/edumart/edumart-api/internal/domain/entity"
)

// invoiceDAO implements dao.InvoiceDAO using MongoDB.
type invoiceDAO struct {
	*baseMongoDAO[entity.Invoice]
}

// NewInvoiceDAO creates a new MongoDB-based InvoiceDAO.
func NewInvoiceDAO(db *mongo.Database) dao.InvoiceDAO {
	return &invoiceDAO{
		baseMongoDAO: newBaseMongoDAO[entity.Invoice](db, entity.Invoice{}.CollectionName()),
	}
}

// Create inserts a new invoice.
func (d *invoiceDAO) Create(ctx context.Context, inv *entity.Invoice) error {
	if inv.ID.IsZero() {
		inv.ID = primitive.NewObjectID()
	}
	inv.CreatedAt = time.Now()
	return d.insertOne(ctx, inv)
}

// FindByID retrieves an invoice by its ID.
func (d *invoiceDAO) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Invoice, error) {
	return d.findOneByFilter(ctx, bson.M{"_id": id})
}

// FindAll retrieves every invoice sorted newest-first.
func (d *invoiceDAO) FindAll(ctx context.Context) ([]*entity.Invoice, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return d.findManyByFilter(ctx, bson.M{}, opts)
}

// Delete removes an invoice document.
func (d *invoiceDAO) Delete(ctx context.Context, id primitive.ObjectID) error {
	return d.deleteOne(ctx, bson.M{"_id": id})
}
