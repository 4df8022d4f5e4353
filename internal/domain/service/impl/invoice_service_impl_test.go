package impl

import (
	"context"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/edumart/edumart-api/internal/domain/entity"
	"github.com/edumart/edumart-api/internal/domain/service"
	"github.com/edumart/edumart-api/internal/testutil/mocks"
	apperrors "github.com/edumart/edumart-api/pkg/errors"
)

type invoiceServiceFixture struct {
	service     service.InvoiceService
	invoiceRepo *mocks.MockInvoiceRepository
	orderRepo   *mocks.MockOrderRepository
	userRepo    *mocks.MockUserRepository
}

func setupInvoiceService(t *testing.T) *invoiceServiceFixture {
	f := &invoiceServiceFixture{
		invoiceRepo: mocks.NewMockInvoiceRepository(),
		orderRepo:   mocks.NewMockOrderRepository(),
		userRepo:    mocks.NewMockUserRepository(),
	}
	f.service = NewInvoiceService(f.invoiceRepo, f.orderRepo, f.userRepo)
	return f
}

func (f *invoiceServiceFixture) seedOrder(t *testing.T) *entity.Order {
	t.Helper()
	ctx := context.Background()

	user := &entity.User{Name: "Buyer", Email: "buyer@example.com"}
	if err := f.userRepo.Create(ctx, user); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	order := &entity.Order{
		UserID:   user.ID,
		UserName: user.Name,
		Items: []entity.OrderItem{{
			CourseID:        primitive.NewObjectID(),
			CourseName:      "Go Basics",
			PriceAtPurchase: 49.99,
		}},
		TotalPrice: 49.99,
		Status:     entity.OrderCompleted,
	}
	if err := f.orderRepo.Create(ctx, order); err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return order
}

func TestInvoiceService_CreateForOrder_SnapshotsOrder(t *testing.T) {
	f := setupInvoiceService(t)
	ctx := context.Background()
	order := f.seedOrder(t)

	invoice, err := f.service.CreateForOrder(ctx, order.ID.Hex())
	if err != nil {
		t.Fatalf("CreateForOrder() error = %v", err)
	}
	if invoice.OrderID != order.ID {
		t.Errorf("CreateForOrder() order id = %v, want %v", invoice.OrderID, order.ID)
	}
	if invoice.UserEmail != "buyer@example.com" {
		t.Errorf("CreateForOrder() email = %v, want buyer@example.com", invoice.UserEmail)
	}
	if invoice.TotalPrice != 49.99 {
		t.Errorf("CreateForOrder() total = %v, want 49.99", invoice.TotalPrice)
	}
	if len(invoice.Items) != 1 {
		t.Errorf("CreateForOrder() items = %d, want 1", len(invoice.Items))
	}
}

func TestInvoiceService_CreateForOrder_NumberFormat(t *testing.T) {
	f := setupInvoiceService(t)
	ctx := context.Background()
	order := f.seedOrder(t)

	invoice, err := f.service.CreateForOrder(ctx, order.ID.Hex())
	if err != nil {
		t.Fatalf("CreateForOrder() error = %v", err)
	}
	if !strings.HasPrefix(invoice.Number, "INV-") {
		t.Errorf("CreateForOrder() number = %v, want INV- prefix", invoice.Number)
	}
	if len(invoice.Number) != len("INV-")+10 {
		t.Errorf("CreateForOrder() number length = %d, want %d", len(invoice.Number), len("INV-")+10)
	}

	second, err := f.service.CreateForOrder(ctx, order.ID.Hex())
	if err != nil {
		t.Fatalf("CreateForOrder() error = %v", err)
	}
	if second.Number == invoice.Number {
		t.Error("CreateForOrder() produced duplicate invoice numbers")
	}
}

func TestInvoiceService_CreateForOrder_OrderNotFound(t *testing.T) {
	f := setupInvoiceService(t)
	ctx := context.Background()

	_, err := f.service.CreateForOrder(ctx, primitive.NewObjectID().Hex())
	if !apperrors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("CreateForOrder() error = %v, want not found", err)
	}
}

func TestInvoiceService_Delete(t *testing.T) {
	f := setupInvoiceService(t)
	ctx := context.Background()
	order := f.seedOrder(t)

	invoice, err := f.service.CreateForOrder(ctx, order.ID.Hex())
	if err != nil {
		t.Fatalf("CreateForOrder() error = %v", err)
	}

	if err := f.service.Delete(ctx, invoice.ID.Hex()); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	// Deleting the invoice leaves the order alone
	if _, err := f.orderRepo.GetByID(ctx, order.ID); err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}

	_, err = f.service.GetByID(ctx, invoice.ID.Hex())
	if !apperrors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("GetByID() after delete error = %v, want not found", err)
	}
}

func TestInvoiceService_Delete_NotFound(t *testing.T) {
	f := setupInvoiceService(t)
	ctx := context.Background()

	err := f.service.Delete(ctx, primitive.NewObjectID().Hex())
	if !apperrors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("Delete() error = %v, want not found", err)
	}
}
