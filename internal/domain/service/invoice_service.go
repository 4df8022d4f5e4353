package service

import (
	"context"

	"github.com/edumart/edumart-api/internal/domain/entity"
)

// InvoiceService defines the interface for invoice operations
type InvoiceService interface {
	// CreateForOrder issues an invoice for an existing order
	CreateForOrder(ctx context.Context, orderID string) (*entity.Invoice, error)

	// GetByID retrieves an invoice
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)

	// ListAll retrieves every invoice, newest first
	ListAll(ctx context.Context) ([]*entity.Invoice, error)

	// Delete removes an invoice
	Delete(ctx context.Context, id string) error
}
