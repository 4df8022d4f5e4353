package dao

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/edumart/edumart-api/internal/domain/entity"
)

// InvoiceDAO defines data access operations for invoices.
type InvoiceDAO interface {
	// Create inserts a new invoice.
	Create(ctx context.Context, inv *entity.Invoice) error

	// FindByID retrieves an invoice. Returns nil, nil if not found.
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Invoice, error)

	// FindAll retrieves every invoice sorted newest-first.
	FindAll(ctx context.Context) ([]*entity.Invoice, error)

	// Delete removes an invoice document.
	Delete(ctx context.Context, id primitive.ObjectID) error
}
