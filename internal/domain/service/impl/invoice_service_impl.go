package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"github.com/edumart/edumart-api/internal/domain/entity"
	"github.com/edumart/edumart-api/internal/domain/repository"
	"github.com/edumart/edumart-api/internal/domain/service"
	apperrors "github.com/edumart/edumart-api/pkg/errors"
)

// invoiceService implements service.InvoiceService
type invoiceService struct {
	invoiceRepo repository.InvoiceRepository
	orderRepo   repository.OrderRepository
	userRepo    repository.UserRepository
}

// NewInvoiceService creates a new InvoiceService instance
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
) service.InvoiceService {
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		orderRepo:   orderRepo,
		userRepo:    userRepo,
	}
}

func (s *invoiceService) CreateForOrder(ctx context.Context, orderID string) (*entity.Invoice, error) {
	oid, err := parseID(orderID)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperrors.ErrNotFound.WithMessage("order not found")
	}

	user, err := s.userRepo.GetByID(ctx, order.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrNotFound.WithMessage("order owner not found")
	}

	number, err := newInvoiceNumber()
	if err != nil {
		return nil, err
	}

	invoice := &entity.Invoice{
		Number:      number,
		OrderID:     order.ID,
		UserID:      user.ID,
		UserName:    user.Name,
		UserEmail:   user.Email,
		Items:       order.Items,
		PaymentInfo: order.PaymentInfo,
		TotalPrice:  order.TotalPrice,
		Status:      order.Status,
	}

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	return invoice, nil
}

func (s *invoiceService) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	invoice, err := s.invoiceRepo.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperrors.ErrNotFound.WithMessage("invoice not found")
	}
	return invoice, nil
}

func (s *invoiceService) ListAll(ctx context.Context) ([]*entity.Invoice, error) {
	return s.invoiceRepo.ListAll(ctx)
}

func (s *invoiceService) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	invoice, err := s.invoiceRepo.GetByID(ctx, oid)
	if err != nil {
		return err
	}
	if invoice == nil {
		return apperrors.ErrNotFound.WithMessage("invoice not found")
	}

	return s.invoiceRepo.Delete(ctx, oid)
}

// newInvoiceNumber produces an INV-xxxxxxxxxx reference from five
// random bytes
func newInvoiceNumber() (string, error) {
	buf := make([]byte, 5)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return "INV-" + hex.EncodeToString(buf), nil
}
