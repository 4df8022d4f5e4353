package impl

import (
	"context"

	"github.com/edumart/edumart-api/internal/domain/service"
	"github.com/edumart/edumart-api/internal/payment"
)

// paymentService implements service.PaymentService
type paymentService struct {
	gateway payment.Gateway
}

// NewPaymentService creates a new PaymentService instance
func NewPaymentService(gateway payment.Gateway) service.PaymentService {
	return &paymentService{gateway: gateway}
}

func (s *paymentService) CreateIntent(ctx context.Context, amount int64) (*payment.Intent, error) {
	return s.gateway.CreateIntent(ctx, amount)
}

func (s *paymentService) GetIntent(ctx context.Context, id string) (*payment.Intent, error) {
	return s.gateway.GetIntent(ctx, id)
}
