package impl

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/edumart/edumart-api/internal/domain/dao"
	"github.com/edumart/edumart-api/internal/domain/entity"
	"github.com/edumart/edumart-api/internal/domain/repository"
)

// courseRepository implements repository.CourseRepository by delegating to CourseDAO.
type courseRepository struct {
	dao dao.CourseDAO
}

// NewCourseRepository creates a new CourseRepository instance.
func NewCourseRepository(courseDAO dao.CourseDAO) repository.CourseRepository {
	return &courseRepository{dao: courseDAO}
}

func (r *courseRepository) Create(ctx context.Context, course *entity.Course) error {
	return r.dao.Create(ctx, course)
}

func (r *courseRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Course, error) {
	return r.dao.FindByID(ctx, id)
}

func (r *courseRepository) Update(ctx context.Context, course *entity.Course) error {
	return r.dao.Update(ctx, course)
}

func (r *courseRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.dao.Delete(ctx, id)
}

func (r *courseRepository) List(ctx context.Context, page, size int) ([]*entity.Course, int64, error) {
	return r.dao.FindAll(ctx, page, size)
}

func (r *courseRepository) ListVisible(ctx context.Context) ([]*entity.Course, error) {
	return r.dao.FindAllVisible(ctx)
}

func (r *courseRepository) IncrementPurchased(ctx context.Context, id primitive.ObjectID) error {
	return r.dao.IncrementPurchased(ctx, id)
}

// cartRepository implements repository.CartRepository by delegating to CartDAO.
type cartRepository struct {
	dao dao.CartDAO
}

// NewCartRepository creates a new CartRepository instance.
func NewCartRepository(cartDAO dao.CartDAO) repository.CartRepository {
	return &cartRepository{dao: cartDAO}
}

func (r *cartRepository) Create(ctx context.Context, cart *entity.Cart) error {
	return r.dao.Create(ctx, cart)
}

func (r *cartRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*entity.Cart, error) {
	return r.dao.FindByUserID(ctx, userID)
}

func (r *cartRepository) Update(ctx context.Context, cart *entity.Cart) error {
	return r.dao.Update(ctx, cart)
}

func (r *cartRepository) DeleteByUserID(ctx context.Context, userID primitive.ObjectID) error {
	return r.dao.DeleteByUserID(ctx, userID)
}

// orderRepository implements repository.OrderRepository by delegating to OrderDAO.
type orderRepository struct {
	dao dao.OrderDAO
}

// NewOrderRepository creates a new OrderRepository instance.
func NewOrderRepository(orderDAO dao.OrderDAO) repository.OrderRepository {
	return &orderRepository{dao: orderDAO}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	return r.dao.Create(ctx, order)
}

func (r *orderRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Order, error) {
	return r.dao.FindByID(ctx, id)
}

func (r *orderRepository) List(ctx context.Context, page, size int) ([]*entity.Order, int64, error) {
	return r.dao.FindAll(ctx, page, size)
}

func (r *orderRepository) ListByUserID(ctx context.Context, userID primitive.ObjectID) ([]*entity.Order, error) {
	return r.dao.FindByUserID(ctx, userID)
}

// notificationRepository implements repository.NotificationRepository.
type notificationRepository struct {
	dao dao.NotificationDAO
}

// NewNotificationRepository creates a new NotificationRepository instance.
func NewNotificationRepository(notificationDAO dao.NotificationDAO) repository.NotificationRepository {
	return &notificationRepository{dao: notificationDAO}
}

func (r *notificationRepository) Create(ctx context.Context, n *entity.Notification) error {
	return r.dao.Create(ctx, n)
}

func (r *notificationRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Notification, error) {
	return r.dao.FindByID(ctx, id)
}

func (r *notificationRepository) ListAll(ctx context.Context) ([]*entity.Notification, error) {
	return r.dao.FindAll(ctx)
}

func (r *notificationRepository) ListByUserID(ctx context.Context, userID primitive.ObjectID) ([]*entity.Notification, error) {
	return r.dao.FindByUserID(ctx, userID)
}

func (r *notificationRepository) Update(ctx context.Context, n *entity.Notification) error {
	return r.dao.Update(ctx, n)
}

// invoiceRepository implements repository.InvoiceRepository.
type invoiceRepository struct {
	dao dao.InvoiceDAO
}

// NewInvoiceRepository creates a new InvoiceRepository instance.
func NewInvoiceRepository(invoiceDAO dao.InvoiceDAO) repository.InvoiceRepository {
	return &invoiceRepository{dao: invoiceDAO}
}

func (r *invoiceRepository) Create(ctx context.Context, inv *entity.Invoice) error {
	return r.dao.Create(ctx, inv)
}

func (r *invoiceRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Invoice, error) {
	return r.dao.FindByID(ctx, id)
}

func (r *invoiceRepository) ListAll(ctx context.Context) ([]*entity.Invoice, error) {
	return r.dao.FindAll(ctx)
}

func (r *invoiceRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.dao.Delete(ctx, id)
}
