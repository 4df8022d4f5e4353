package impl

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/edumart/edumart-api/internal/domain/entity"
	"github.com/edumart/edumart-api/internal/domain/service"
	"github.com/edumart/edumart-api/internal/dto/request"
	"github.com/edumart/edumart-api/internal/payment"
	"github.com/edumart/edumart-api/internal/realtime"
	"github.com/edumart/edumart-api/internal/testutil/mocks"
	apperrors "github.com/edumart/edumart-api/pkg/errors"
)

type orderServiceFixture struct {
	service          service.OrderService
	orderRepo        *mocks.MockOrderRepository
	cartRepo         *mocks.MockCartRepository
	courseRepo       *mocks.MockCourseRepository
	userRepo         *mocks.MockUserRepository
	notificationRepo *mocks.MockNotificationRepository
	locker           *mocks.MockLocker
	gateway          *mocks.MockGateway
	mail             *mocks.MockMailer
	broadcaster      *mocks.MockBroadcaster
	cache            *mocks.MockCourseCache
}

func setupOrderService(t *testing.T) *orderServiceFixture {
	f := &orderServiceFixture{
		orderRepo:        mocks.NewMockOrderRepository(),
		cartRepo:         mocks.NewMockCartRepository(),
		courseRepo:       mocks.NewMockCourseRepository(),
		userRepo:         mocks.NewMockUserRepository(),
		notificationRepo: mocks.NewMockNotificationRepository(),
		locker:           mocks.NewMockLocker(),
		gateway:          mocks.NewMockGateway(),
		mail:             mocks.NewMockMailer(),
		broadcaster:      mocks.NewMockBroadcaster(),
		cache:            mocks.NewMockCourseCache(),
	}
	f.service = NewOrderService(
		f.orderRepo,
		f.cartRepo,
		f.courseRepo,
		f.userRepo,
		f.notificationRepo,
		f.locker,
		f.cache,
		f.gateway,
		f.mail,
		f.broadcaster,
		nil,
		zap.NewNop(),
	)
	return f
}

// seedCheckout gives the user a cart holding the course at the given price.
func (f *orderServiceFixture) seedCheckout(t *testing.T, price float64) (*entity.User, *entity.Course) {
	t.Helper()
	ctx := context.Background()

	user := &entity.User{Name: "Buyer", Email: "buyer@example.com", Role: entity.RoleUser}
	if err := f.userRepo.Create(ctx, user); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	course := &entity.Course{Name: "Go Basics", Price: price}
	if err := f.courseRepo.Create(ctx, course); err != nil {
		t.Fatalf("seed course: %v", err)
	}

	cart := &entity.Cart{
		UserID: user.ID,
		Items: []entity.CartItem{{
			CourseID:        course.ID,
			CourseName:      course.Name,
			PriceAtPurchase: price,
			AddedAt:         time.Now(),
		}},
	}
	if err := f.cartRepo.Create(ctx, cart); err != nil {
		t.Fatalf("seed cart: %v", err)
	}

	return user, course
}

func succeededPayment() *request.PaymentInfoRequest {
	return &request.PaymentInfoRequest{
		ID:     "pi_test",
		Status: entity.PaymentStatusSucceeded,
	}
}

func waitFor(t *testing.T, check func() bool, message string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if check() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Error(message)
}

func TestOrderService_Create_Success(t *testing.T) {
	f := setupOrderService(t)
	ctx := context.Background()
	user, course := f.seedCheckout(t, 49.99)

	order, err := f.service.Create(ctx, user.ID.Hex(), &request.CreateOrderRequest{
		PaymentInfo:       succeededPayment(),
		SelectedCourseIDs: []string{course.ID.Hex()},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if order.Status != entity.OrderCompleted {
		t.Errorf("Create() status = %v, want Completed", order.Status)
	}
	if order.TotalPrice != 49.99 {
		t.Errorf("Create() total = %v, want 49.99", order.TotalPrice)
	}
	if len(order.Items) != 1 {
		t.Fatalf("Create() items = %d, want 1", len(order.Items))
	}

	// Fulfillment: enrollment, cart prune, purchase counter
	updatedUser, _ := f.userRepo.GetByID(ctx, user.ID)
	if !updatedUser.IsEnrolled(course.ID) {
		t.Error("Create() did not enroll the user")
	}
	cart, _ := f.cartRepo.GetByUserID(ctx, user.ID)
	if len(cart.Items) != 0 {
		t.Errorf("Create() left %d items in the cart", len(cart.Items))
	}
	updatedCourse, _ := f.courseRepo.GetByID(ctx, course.ID)
	if updatedCourse.Purchased != 1 {
		t.Errorf("Create() purchased = %d, want 1", updatedCourse.Purchased)
	}

	// The purchaser owns the order notification
	owned, err := f.notificationRepo.ListByUserID(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListByUserID() error = %v", err)
	}
	if len(owned) != 1 {
		t.Fatalf("Create() recorded %d notifications for the purchaser, want 1", len(owned))
	}
	if owned[0].OrderID == nil || *owned[0].OrderID != order.ID {
		t.Error("Create() notification does not reference the order")
	}

	// The enrolled user document is mirrored into the cache
	if mirrored := f.cache.MirroredUser(user.ID); mirrored == nil || !mirrored.IsEnrolled(course.ID) {
		t.Error("Create() did not mirror the enrolled user into the cache")
	}

	adminEvents := f.broadcaster.AdminEvents()
	if len(adminEvents) != 1 || adminEvents[0] != realtime.EventNewOrder {
		t.Errorf("Create() admin events = %v, want [newOrder]", adminEvents)
	}
	userEvents := f.broadcaster.UserEvents(user.ID.Hex())
	if len(userEvents) != 2 || userEvents[0] != realtime.EventNewOrder || userEvents[1] != realtime.EventCartUpdated {
		t.Errorf("Create() user events = %v, want [newOrder cartUpdated]", userEvents)
	}

	waitFor(t, func() bool { return f.mail.SentCount() == 1 }, "Create() did not send the confirmation mail")
}

func TestOrderService_Create_FailedPaymentSkipsFulfillment(t *testing.T) {
	f := setupOrderService(t)
	ctx := context.Background()
	user, course := f.seedCheckout(t, 49.99)

	order, err := f.service.Create(ctx, user.ID.Hex(), &request.CreateOrderRequest{
		PaymentInfo: &request.PaymentInfoRequest{
			ID:     "pi_test",
			Status: "requires_payment_method",
		},
		SelectedCourseIDs: []string{course.ID.Hex()},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if order.Status != entity.OrderFailed {
		t.Errorf("Create() status = %v, want Failed", order.Status)
	}

	// The failed order is durable but has no side effects
	stored, _ := f.orderRepo.GetByID(ctx, order.ID)
	if stored == nil {
		t.Fatal("Create() did not persist the failed order")
	}
	updatedUser, _ := f.userRepo.GetByID(ctx, user.ID)
	if updatedUser.IsEnrolled(course.ID) {
		t.Error("Create() enrolled the user despite a failed payment")
	}
	cart, _ := f.cartRepo.GetByUserID(ctx, user.ID)
	if len(cart.Items) != 1 {
		t.Error("Create() pruned the cart despite a failed payment")
	}
	if f.mail.SentCount() != 0 {
		t.Error("Create() sent mail despite a failed payment")
	}
	if len(f.broadcaster.AdminEvents()) != 0 {
		t.Error("Create() pushed to admins despite a failed payment")
	}
}

func TestOrderService_Create_DefaultsMissingPayment(t *testing.T) {
	f := setupOrderService(t)
	ctx := context.Background()
	user, course := f.seedCheckout(t, 50.00)

	order, err := f.service.Create(ctx, user.ID.Hex(), &request.CreateOrderRequest{
		SelectedCourseIDs: []string{course.ID.Hex()},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if order.Status != entity.OrderCompleted {
		t.Errorf("Create() status = %v, want Completed", order.Status)
	}
	if order.PaymentInfo.Amount != 5000 {
		t.Errorf("Create() amount = %d, want 5000", order.PaymentInfo.Amount)
	}
}

func TestOrderService_Create_ResolvesIntentFromGateway(t *testing.T) {
	f := setupOrderService(t)
	ctx := context.Background()
	user, course := f.seedCheckout(t, 49.99)

	f.gateway.SeedIntent(&payment.Intent{
		ID:                 "pi_resolved",
		Status:             entity.PaymentStatusSucceeded,
		Amount:             4999,
		Currency:           "usd",
		PaymentMethodTypes: []string{"card"},
		Created:            time.Now(),
	})

	order, err := f.service.Create(ctx, user.ID.Hex(), &request.CreateOrderRequest{
		PaymentInfo:       &request.PaymentInfoRequest{ID: "pi_resolved"},
		SelectedCourseIDs: []string{course.ID.Hex()},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if order.Status != entity.OrderCompleted {
		t.Errorf("Create() status = %v, want Completed", order.Status)
	}
	if order.PaymentInfo.PaymentIntentID != "pi_resolved" {
		t.Errorf("Create() intent id = %v, want pi_resolved", order.PaymentInfo.PaymentIntentID)
	}
	if order.PaymentInfo.PaymentMethod != "card" {
		t.Errorf("Create() payment method = %v, want card", order.PaymentInfo.PaymentMethod)
	}
}

func TestOrderService_Create_CourseNotInCart(t *testing.T) {
	f := setupOrderService(t)
	ctx := context.Background()
	user, _ := f.seedCheckout(t, 49.99)

	_, err := f.service.Create(ctx, user.ID.Hex(), &request.CreateOrderRequest{
		PaymentInfo:       succeededPayment(),
		SelectedCourseIDs: []string{primitive.NewObjectID().Hex()},
	})
	if !apperrors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("Create() error = %v, want not found", err)
	}
}

func TestOrderService_Create_AlreadyEnrolled(t *testing.T) {
	f := setupOrderService(t)
	ctx := context.Background()
	user, course := f.seedCheckout(t, 49.99)

	user.Enroll(course.ID, time.Now())
	if err := f.userRepo.Update(ctx, user); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	_, err := f.service.Create(ctx, user.ID.Hex(), &request.CreateOrderRequest{
		PaymentInfo:       succeededPayment(),
		SelectedCourseIDs: []string{course.ID.Hex()},
	})
	if !apperrors.Is(err, apperrors.ErrConflict) {
		t.Errorf("Create() error = %v, want conflict", err)
	}
}

func TestOrderService_Create_LockedPriceWins(t *testing.T) {
	f := setupOrderService(t)
	ctx := context.Background()
	user, course := f.seedCheckout(t, 49.99)

	// Catalog price rises after the course was carted
	course.Price = 99.99
	if err := f.courseRepo.Update(ctx, course); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	order, err := f.service.Create(ctx, user.ID.Hex(), &request.CreateOrderRequest{
		PaymentInfo:       succeededPayment(),
		SelectedCourseIDs: []string{course.ID.Hex()},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if order.TotalPrice != 49.99 {
		t.Errorf("Create() total = %v, want the carted 49.99", order.TotalPrice)
	}
}

func TestOrderService_Create_ConcurrentCheckoutBlocked(t *testing.T) {
	f := setupOrderService(t)
	ctx := context.Background()
	user, course := f.seedCheckout(t, 49.99)

	// Simulate a checkout already in flight for this user
	release, err := f.locker.Acquire(ctx, user.ID.Hex())
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	defer release()

	_, err = f.service.Create(ctx, user.ID.Hex(), &request.CreateOrderRequest{
		PaymentInfo:       succeededPayment(),
		SelectedCourseIDs: []string{course.ID.Hex()},
	})
	if !apperrors.Is(err, apperrors.ErrConflict) {
		t.Errorf("Create() error = %v, want conflict", err)
	}
}

func TestOrderService_Create_ReleasesLock(t *testing.T) {
	f := setupOrderService(t)
	ctx := context.Background()
	user, course := f.seedCheckout(t, 49.99)

	if _, err := f.service.Create(ctx, user.ID.Hex(), &request.CreateOrderRequest{
		PaymentInfo:       succeededPayment(),
		SelectedCourseIDs: []string{course.ID.Hex()},
	}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if f.locker.Held(user.ID.Hex()) {
		t.Error("Create() left the checkout lock held")
	}
}

func TestOrderService_GetByID_OwnerOnly(t *testing.T) {
	f := setupOrderService(t)
	ctx := context.Background()
	user, course := f.seedCheckout(t, 49.99)

	order, err := f.service.Create(ctx, user.ID.Hex(), &request.CreateOrderRequest{
		PaymentInfo:       succeededPayment(),
		SelectedCourseIDs: []string{course.ID.Hex()},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Owner reads fine
	if _, err := f.service.GetByID(ctx, user.ID.Hex(), false, order.ID.Hex()); err != nil {
		t.Errorf("GetByID() owner error = %v", err)
	}

	// A stranger is rejected
	_, err = f.service.GetByID(ctx, primitive.NewObjectID().Hex(), false, order.ID.Hex())
	if !apperrors.Is(err, apperrors.ErrForbidden) {
		t.Errorf("GetByID() stranger error = %v, want forbidden", err)
	}

	// An admin reads any order
	if _, err := f.service.GetByID(ctx, primitive.NewObjectID().Hex(), true, order.ID.Hex()); err != nil {
		t.Errorf("GetByID() admin error = %v", err)
	}
}

func TestOrderService_GetByID_NotFound(t *testing.T) {
	f := setupOrderService(t)
	ctx := context.Background()

	_, err := f.service.GetByID(ctx, primitive.NewObjectID().Hex(), true, primitive.NewObjectID().Hex())
	if !apperrors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("GetByID() error = %v, want not found", err)
	}
}

func TestOrderService_ListByUser(t *testing.T) {
	f := setupOrderService(t)
	ctx := context.Background()
	user, course := f.seedCheckout(t, 49.99)

	if _, err := f.service.Create(ctx, user.ID.Hex(), &request.CreateOrderRequest{
		PaymentInfo:       succeededPayment(),
		SelectedCourseIDs: []string{course.ID.Hex()},
	}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	orders, err := f.service.ListByUser(ctx, user.ID.Hex())
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if len(orders) != 1 {
		t.Errorf("ListByUser() orders = %d, want 1", len(orders))
	}
}
