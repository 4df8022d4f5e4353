package impl

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/edumart/edumart-api/internal/cache"
	"github.com/edumart/edumart-api/internal/checkout"
	"github.com/edumart/edumart-api/internal/domain/entity"
	"github.com/edumart/edumart-api/internal/domain/repository"
	"github.com/edumart/edumart-api/internal/domain/service"
	"github.com/edumart/edumart-api/internal/dto/request"
	"github.com/edumart/edumart-api/internal/mailer"
	"github.com/edumart/edumart-api/internal/observability"
	"github.com/edumart/edumart-api/internal/payment"
	"github.com/edumart/edumart-api/internal/realtime"
	apperrors "github.com/edumart/edumart-api/pkg/errors"
)

// orderService implements service.OrderService
type orderService struct {
	orderRepo        repository.OrderRepository
	cartRepo         repository.CartRepository
	courseRepo       repository.CourseRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	locker           checkout.Locker
	cache            cache.CourseCache
	gateway          payment.Gateway
	mail             mailer.Mailer
	broadcaster      realtime.Broadcaster
	metrics          *observability.MetricsProvider
	logger           *zap.Logger
}

// NewOrderService creates a new OrderService instance
func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	courseRepo repository.CourseRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
	locker checkout.Locker,
	courseCache cache.CourseCache,
	gateway payment.Gateway,
	mail mailer.Mailer,
	broadcaster realtime.Broadcaster,
	metrics *observability.MetricsProvider,
	logger *zap.Logger,
) service.OrderService {
	return &orderService{
		orderRepo:        orderRepo,
		cartRepo:         cartRepo,
		courseRepo:       courseRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		locker:           locker,
		cache:            courseCache,
		gateway:          gateway,
		mail:             mail,
		broadcaster:      broadcaster,
		metrics:          metrics,
		logger:           logger,
	}
}

func (s *orderService) Create(ctx context.Context, userID string, req *request.CreateOrderRequest) (*entity.Order, error) {
	userOID, err := parseID(userID)
	if err != nil {
		return nil, err
	}

	// One checkout per user at a time; a second request gets a
	// conflict instead of a duplicate order
	release, err := s.locker.Acquire(ctx, userID)
	if err != nil {
		if err == checkout.ErrLockNotAcquired {
			return nil, apperrors.ErrConflict.WithMessage("another checkout is already in progress")
		}
		return nil, err
	}
	defer release()

	user, err := s.userRepo.GetByID(ctx, userOID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrNotFound.WithMessage("user not found")
	}

	cart, err := s.cartRepo.GetByUserID(ctx, userOID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, apperrors.ErrNotFound.WithMessage("cart not found")
	}

	if len(req.SelectedCourseIDs) == 0 {
		return nil, apperrors.ErrBadRequest.WithMessage("no courses selected")
	}

	items := make([]entity.OrderItem, 0, len(req.SelectedCourseIDs))
	courseIDs := make([]primitive.ObjectID, 0, len(req.SelectedCourseIDs))
	var totalPrice float64

	for _, id := range req.SelectedCourseIDs {
		courseOID, err := parseID(id)
		if err != nil {
			return nil, err
		}

		item := cart.ItemFor(courseOID)
		if item == nil {
			return nil, apperrors.ErrNotFound.WithMessage("course " + id + " is not in your cart")
		}

		course, err := s.courseRepo.GetByID(ctx, courseOID)
		if err != nil {
			return nil, err
		}
		if course == nil {
			return nil, apperrors.ErrNotFound.WithMessage("course " + id + " no longer exists")
		}

		if user.IsEnrolled(courseOID) {
			return nil, apperrors.ErrConflict.WithMessage("you already own " + course.Name)
		}

		// The cart's locked price wins over the current catalog price
		items = append(items, entity.OrderItem{
			CourseID:        courseOID,
			CourseName:      item.CourseName,
			PriceAtPurchase: item.PriceAtPurchase,
		})
		courseIDs = append(courseIDs, courseOID)
		totalPrice += item.PriceAtPurchase
	}

	paymentInfo, err := s.normalizePayment(ctx, req.PaymentInfo, totalPrice)
	if err != nil {
		return nil, err
	}

	status := entity.OrderFailed
	if paymentInfo.Succeeded() {
		status = entity.OrderCompleted
	}

	order := &entity.Order{
		UserID:      userOID,
		UserName:    user.Name,
		Items:       items,
		PaymentInfo: paymentInfo,
		TotalPrice:  totalPrice,
		Status:      status,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.RecordOrderCreated(string(status))
	}

	// A failed payment still leaves an order record but triggers
	// none of the fulfillment side effects
	if status != entity.OrderCompleted {
		s.logger.Warn("Order created with failed payment",
			zap.String("order_id", order.ID.Hex()),
			zap.String("user_id", userID),
			zap.String("payment_status", paymentInfo.Status),
		)
		return order, nil
	}

	s.fulfill(ctx, user, cart, order, courseIDs)

	return order, nil
}

// fulfill applies the side effects of a paid order. Failures here are
// logged, not surfaced; the order record is already durable.
func (s *orderService) fulfill(ctx context.Context, user *entity.User, cart *entity.Cart, order *entity.Order, courseIDs []primitive.ObjectID) {
	now := time.Now()
	for _, id := range courseIDs {
		user.Enroll(id, now)
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to enroll user",
			zap.String("order_id", order.ID.Hex()),
			zap.Error(err),
		)
	}
	if s.cache != nil {
		if err := s.cache.MirrorUser(ctx, user); err != nil {
			s.logger.Error("Failed to mirror user after order",
				zap.String("order_id", order.ID.Hex()),
				zap.Error(err),
			)
		}
	}

	cart.RemoveCourses(courseIDs)
	if err := s.cartRepo.Update(ctx, cart); err != nil {
		s.logger.Error("Failed to prune cart after order",
			zap.String("order_id", order.ID.Hex()),
			zap.Error(err),
		)
	}

	for _, id := range courseIDs {
		if err := s.courseRepo.IncrementPurchased(ctx, id); err != nil {
			s.logger.Error("Failed to bump purchase counter",
				zap.String("course_id", id.Hex()),
				zap.Error(err),
			)
		}
	}

	notification := &entity.Notification{
		UserID:  user.ID,
		Title:   "New order",
		Message: user.Name + " purchased " + order.Items[0].CourseName,
		Status:  entity.NotificationUnread,
		OrderID: &order.ID,
	}
	if len(order.Items) > 1 {
		notification.Message = user.Name + " purchased " + order.Items[0].CourseName + " and more"
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		s.logger.Error("Failed to create order notification", zap.Error(err))
	}

	if s.broadcaster != nil {
		s.broadcaster.PushToAdmins(realtime.EventNewOrder, order)
		s.broadcaster.PushToUser(user.ID.Hex(), realtime.EventNewOrder, order)
		s.broadcaster.PushToUser(user.ID.Hex(), realtime.EventCartUpdated, cart)
	}

	go s.sendConfirmation(user, order)
}

func (s *orderService) sendConfirmation(user *entity.User, order *entity.Order) {
	if s.mail == nil {
		return
	}
	err := s.mail.SendOrderConfirmation(user.Email, mailer.OrderConfirmation{
		UserName:   user.Name,
		OrderID:    order.ID.Hex(),
		Items:      order.Items,
		TotalPrice: order.TotalPrice,
		CreatedAt:  order.CreatedAt,
	})
	if err != nil {
		s.logger.Error("Failed to send order confirmation",
			zap.String("order_id", order.ID.Hex()),
			zap.Error(err),
		)
	}
}

// normalizePayment folds the client's raw gateway payload into the
// typed PaymentInfo shape. When only an intent id is given the
// gateway is asked for the authoritative state.
func (s *orderService) normalizePayment(ctx context.Context, raw *request.PaymentInfoRequest, totalPrice float64) (entity.PaymentInfo, error) {
	defaultAmount := int64(totalPrice * 100)

	if raw == nil {
		return entity.PaymentInfo{
			Status:  entity.PaymentStatusSucceeded,
			Amount:  defaultAmount,
			Created: time.Now(),
		}, nil
	}

	if raw.ID != "" && raw.Status == "" && s.gateway != nil {
		intent, err := s.gateway.GetIntent(ctx, raw.ID)
		if err != nil {
			return entity.PaymentInfo{}, err
		}
		return entity.PaymentInfo{
			PaymentIntentID: intent.ID,
			Status:          intent.Status,
			Amount:          intent.Amount,
			Currency:        intent.Currency,
			PaymentMethod:   firstOrEmpty(intent.PaymentMethodTypes),
			Created:         intent.Created,
		}, nil
	}

	info := entity.PaymentInfo{
		PaymentIntentID: raw.ID,
		Status:          raw.Status,
		Amount:          raw.Amount,
		Currency:        raw.Currency,
		PaymentMethod:   raw.PaymentMethod,
	}
	if info.Status == "" {
		info.Status = entity.PaymentStatusSucceeded
	}
	if info.Amount == 0 {
		info.Amount = defaultAmount
	}
	if raw.Created > 0 {
		info.Created = time.Unix(raw.Created, 0)
	} else {
		info.Created = time.Now()
	}
	return info, nil
}

func (s *orderService) GetByID(ctx context.Context, callerID string, isAdmin bool, orderID string) (*entity.Order, error) {
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

	if !isAdmin && order.UserID.Hex() != callerID {
		return nil, apperrors.ErrForbidden.WithMessage("you cannot view this order")
	}

	return order, nil
}

func (s *orderService) List(ctx context.Context, page, size int) ([]*entity.Order, int64, error) {
	return s.orderRepo.List(ctx, page, size)
}

func (s *orderService) ListByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	oid, err := parseID(userID)
	if err != nil {
		return nil, err
	}
	return s.orderRepo.ListByUserID(ctx, oid)
}

func firstOrEmpty(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
