package impl

import (
	"context"
	"testing"

	"github.com/edumart/edumart-api/internal/testutil/mocks"
)

func TestPaymentService_CreateIntent(t *testing.T) {
	gateway := mocks.NewMockGateway()
	svc := NewPaymentService(gateway)
	ctx := context.Background()

	intent, err := svc.CreateIntent(ctx, 4999)
	if err != nil {
		t.Fatalf("CreateIntent() error = %v", err)
	}
	if intent.Amount != 4999 {
		t.Errorf("CreateIntent() amount = %d, want 4999", intent.Amount)
	}
	if intent.ClientSecret == "" {
		t.Error("CreateIntent() ClientSecret is empty")
	}
}

func TestPaymentService_GetIntent(t *testing.T) {
	gateway := mocks.NewMockGateway()
	svc := NewPaymentService(gateway)
	ctx := context.Background()

	created, err := svc.CreateIntent(ctx, 4999)
	if err != nil {
		t.Fatalf("CreateIntent() error = %v", err)
	}

	fetched, err := svc.GetIntent(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetIntent() error = %v", err)
	}
	if fetched.ID != created.ID {
		t.Errorf("GetIntent() id = %v, want %v", fetched.ID, created.ID)
	}
}
