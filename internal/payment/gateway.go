// Package payment wraps the Stripe payment-intent API behind a
// gateway interface so services can be tested without the SDK.
package payment

import (
	"context"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	apperrors "github.com/edumart/edumart-api/pkg/errors"
)

// Intent is the normalized subset of the gateway's payment intent.
type Intent struct {
	ID                 string    `json:"id"`
	ClientSecret       string    `json:"client_secret,omitempty"`
	Status             string    `json:"status"`
	Amount             int64     `json:"amount"`
	Currency           string    `json:"currency"`
	PaymentMethodTypes []string  `json:"payment_method_types"`
	Created            time.Time `json:"created"`
}

// Gateway creates and retrieves payment intents. Gateway errors
// propagate unwrapped; there is no retry or backoff at this layer.
type Gateway interface {
	// CreateIntent asks the gateway for an intent over the amount in
	// the smallest currency unit. Fails with BadRequest on a zero amount.
	CreateIntent(ctx context.Context, amount int64) (*Intent, error)

	// GetIntent retrieves an intent by id. Fails with BadRequest on an
	// empty id.
	GetIntent(ctx context.Context, id string) (*Intent, error)
}

// stripeGateway implements Gateway using the Stripe SDK.
type stripeGateway struct {
	api      *client.API
	currency string
}

// NewStripeGateway creates a Gateway over the Stripe API. The
// currency and payment method type are fixed per deployment.
func NewStripeGateway(secretKey, currency string) Gateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &stripeGateway{api: api, currency: currency}
}

func (g *stripeGateway) CreateIntent(ctx context.Context, amount int64) (*Intent, error) {
	if amount == 0 {
		return nil, apperrors.ErrBadRequest.WithMessage("amount is required")
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(g.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, err
	}
	return fromStripeIntent(pi), nil
}

func (g *stripeGateway) GetIntent(ctx context.Context, id string) (*Intent, error) {
	if id == "" {
		return nil, apperrors.ErrBadRequest.WithMessage("payment intent id is required")
	}

	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.Get(id, params)
	if err != nil {
		return nil, err
	}
	return fromStripeIntent(pi), nil
}

func fromStripeIntent(pi *stripe.PaymentIntent) *Intent {
	return &Intent{
		ID:                 pi.ID,
		ClientSecret:       pi.ClientSecret,
		Status:             string(pi.Status),
		Amount:             pi.Amount,
		Currency:           string(pi.Currency),
		PaymentMethodTypes: pi.PaymentMethodTypes,
		Created:            time.Unix(pi.Created, 0),
	}
}
