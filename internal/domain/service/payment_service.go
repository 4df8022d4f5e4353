package service

import (
	"context"

	"github.com/edumart/edumart-api/internal/payment"
)

// PaymentService defines the interface for payment gateway operations
type PaymentService interface {
	// CreateIntent starts a payment for the given amount in the
	// smallest currency unit
	CreateIntent(ctx context.Context, amount int64) (*payment.Intent, error)

	// GetIntent retrieves the current state of a payment
	GetIntent(ctx context.Context, id string) (*payment.Intent, error)
}
