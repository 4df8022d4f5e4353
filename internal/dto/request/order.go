package request

// PaymentInfoRequest is the raw gateway confirmation forwarded by the
// client. All fields are optional; missing values get defaults when
// the order is materialized.
type PaymentInfoRequest struct {
	ID            string `json:"id,omitempty"`
	Status        string `json:"status,omitempty"`
	Amount        int64  `json:"amount,omitempty"`
	Currency      string `json:"currency,omitempty"`
	PaymentMethod string `json:"payment_method,omitempty"`
	Created       int64  `json:"created,omitempty"`
}

// CreateOrderRequest materializes an order from the caller's cart
type CreateOrderRequest struct {
	PaymentInfo       *PaymentInfoRequest `json:"payment_info,omitempty"`
	SelectedCourseIDs []string            `json:"selectedCourseIds" binding:"required,min=1"`
}

// CreatePaymentIntentRequest starts a payment with the gateway
type CreatePaymentIntentRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}
