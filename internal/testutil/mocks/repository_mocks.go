package mocks

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/edumart/edumart-api/internal/domain/entity"
	"github.com/edumart/edumart-api/internal/domain/repository"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]*entity.User

	// Error injection
	CreateErr        error
	GetByIDErr       error
	GetByEmailErr    error
	UpdateErr        error
	DeleteErr        error
	ListErr          error
	ExistsByEmailErr error
}

var _ repository.UserRepository = (*MockUserRepository)(nil)

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[primitive.ObjectID]*entity.User),
	}
}

func (r *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users[user.ID] = user
	return nil
}

func (r *MockUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	if r.GetByIDErr != nil {
		return nil, r.GetByIDErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if user, ok := r.users[id]; ok && user.DeletedAt == nil {
		return user, nil
	}
	return nil, nil
}

func (r *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	if r.GetByEmailErr != nil {
		return nil, r.GetByEmailErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Email == email && user.DeletedAt == nil {
			return user, nil
		}
	}
	return nil, nil
}

func (r *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *MockUserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if r.DeleteErr != nil {
		return r.DeleteErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[id]; ok {
		now := time.Now()
		user.DeletedAt = &now
	}
	return nil
}

func (r *MockUserRepository) List(ctx context.Context, page, size int) ([]*entity.User, int64, error) {
	if r.ListErr != nil {
		return nil, 0, r.ListErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]*entity.User, 0, len(r.users))
	for _, user := range r.users {
		if user.DeletedAt == nil {
			users = append(users, user)
		}
	}
	return users, int64(len(users)), nil
}

func (r *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if r.ExistsByEmailErr != nil {
		return false, r.ExistsByEmailErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// MockRefreshTokenRepository is a mock implementation of RefreshTokenRepository
type MockRefreshTokenRepository struct {
	mu     sync.RWMutex
	tokens map[string]*entity.RefreshToken

	// Error injection
	CreateErr          error
	GetByTokenErr      error
	RevokeByTokenErr   error
	RevokeAllErr       error
	DeleteExpiredErr   error
	DeleteExpiredCount int64
}

var _ repository.RefreshTokenRepository = (*MockRefreshTokenRepository)(nil)

func NewMockRefreshTokenRepository() *MockRefreshTokenRepository {
	return &MockRefreshTokenRepository{
		tokens: make(map[string]*entity.RefreshToken),
	}
}

func (r *MockRefreshTokenRepository) Create(ctx context.Context, token *entity.RefreshToken) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if token.ID.IsZero() {
		token.ID = primitive.NewObjectID()
	}
	r.tokens[token.Token] = token
	return nil
}

func (r *MockRefreshTokenRepository) GetByToken(ctx context.Context, token string) (*entity.RefreshToken, error) {
	if r.GetByTokenErr != nil {
		return nil, r.GetByTokenErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if t, ok := r.tokens[token]; ok {
		return t, nil
	}
	return nil, nil
}

func (r *MockRefreshTokenRepository) RevokeByToken(ctx context.Context, token string) error {
	if r.RevokeByTokenErr != nil {
		return r.RevokeByTokenErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tokens[token]; ok {
		t.Revoked = true
	}
	return nil
}

func (r *MockRefreshTokenRepository) RevokeAllByUserID(ctx context.Context, userID primitive.ObjectID) error {
	if r.RevokeAllErr != nil {
		return r.RevokeAllErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tokens {
		if t.UserID == userID {
			t.Revoked = true
		}
	}
	return nil
}

func (r *MockRefreshTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	if r.DeleteExpiredErr != nil {
		return 0, r.DeleteExpiredErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for key, t := range r.tokens {
		if t.IsExpired() {
			delete(r.tokens, key)
			count++
		}
	}
	if r.DeleteExpiredCount > 0 {
		return r.DeleteExpiredCount, nil
	}
	return count, nil
}

// ActiveTokenCount returns the number of unrevoked tokens for a user.
func (r *MockRefreshTokenRepository) ActiveTokenCount(userID primitive.ObjectID) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, t := range r.tokens {
		if t.UserID == userID && !t.Revoked {
			count++
		}
	}
	return count
}

// MockCourseRepository is a mock implementation of CourseRepository
type MockCourseRepository struct {
	mu      sync.RWMutex
	courses map[primitive.ObjectID]*entity.Course

	// Error injection
	CreateErr             error
	GetByIDErr            error
	UpdateErr             error
	DeleteErr             error
	ListErr               error
	ListVisibleErr        error
	IncrementPurchasedErr error
}

var _ repository.CourseRepository = (*MockCourseRepository)(nil)

func NewMockCourseRepository() *MockCourseRepository {
	return &MockCourseRepository{
		courses: make(map[primitive.ObjectID]*entity.Course),
	}
}

func (r *MockCourseRepository) Create(ctx context.Context, course *entity.Course) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if course.ID.IsZero() {
		course.ID = primitive.NewObjectID()
	}
	r.courses[course.ID] = course
	return nil
}

func (r *MockCourseRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Course, error) {
	if r.GetByIDErr != nil {
		return nil, r.GetByIDErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if course, ok := r.courses[id]; ok {
		return course, nil
	}
	return nil, nil
}

func (r *MockCourseRepository) Update(ctx context.Context, course *entity.Course) error {
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.courses[course.ID] = course
	return nil
}

func (r *MockCourseRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if r.DeleteErr != nil {
		return r.DeleteErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.courses, id)
	return nil
}

func (r *MockCourseRepository) List(ctx context.Context, page, size int) ([]*entity.Course, int64, error) {
	if r.ListErr != nil {
		return nil, 0, r.ListErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	courses := make([]*entity.Course, 0, len(r.courses))
	for _, course := range r.courses {
		courses = append(courses, course)
	}
	return courses, int64(len(courses)), nil
}

func (r *MockCourseRepository) ListVisible(ctx context.Context) ([]*entity.Course, error) {
	if r.ListVisibleErr != nil {
		return nil, r.ListVisibleErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	courses := make([]*entity.Course, 0, len(r.courses))
	for _, course := range r.courses {
		if !course.IsHidden {
			courses = append(courses, course)
		}
	}
	return courses, nil
}

func (r *MockCourseRepository) IncrementPurchased(ctx context.Context, id primitive.ObjectID) error {
	if r.IncrementPurchasedErr != nil {
		return r.IncrementPurchasedErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if course, ok := r.courses[id]; ok {
		course.Purchased++
	}
	return nil
}

// MockCartRepository is a mock implementation of CartRepository
type MockCartRepository struct {
	mu    sync.RWMutex
	carts map[primitive.ObjectID]*entity.Cart

	// Error injection
	CreateErr      error
	GetByUserIDErr error
	UpdateErr      error
	DeleteErr      error
}

var _ repository.CartRepository = (*MockCartRepository)(nil)

func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{
		carts: make(map[primitive.ObjectID]*entity.Cart),
	}
}

func (r *MockCartRepository) Create(ctx context.Context, cart *entity.Cart) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if cart.ID.IsZero() {
		cart.ID = primitive.NewObjectID()
	}
	r.carts[cart.UserID] = cart
	return nil
}

func (r *MockCartRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*entity.Cart, error) {
	if r.GetByUserIDErr != nil {
		return nil, r.GetByUserIDErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if cart, ok := r.carts[userID]; ok {
		return cart, nil
	}
	return nil, nil
}

func (r *MockCartRepository) Update(ctx context.Context, cart *entity.Cart) error {
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[cart.UserID] = cart
	return nil
}

func (r *MockCartRepository) DeleteByUserID(ctx context.Context, userID primitive.ObjectID) error {
	if r.DeleteErr != nil {
		return r.DeleteErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, userID)
	return nil
}

// MockOrderRepository is a mock implementation of OrderRepository
type MockOrderRepository struct {
	mu     sync.RWMutex
	orders map[primitive.ObjectID]*entity.Order

	// Error injection
	CreateErr  error
	GetByIDErr error
	ListErr    error
	ListByErr  error
}

var _ repository.OrderRepository = (*MockOrderRepository)(nil)

func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders: make(map[primitive.ObjectID]*entity.Order),
	}
}

func (r *MockOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	r.orders[order.ID] = order
	return nil
}

func (r *MockOrderRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Order, error) {
	if r.GetByIDErr != nil {
		return nil, r.GetByIDErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if order, ok := r.orders[id]; ok {
		return order, nil
	}
	return nil, nil
}

func (r *MockOrderRepository) List(ctx context.Context, page, size int) ([]*entity.Order, int64, error) {
	if r.ListErr != nil {
		return nil, 0, r.ListErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	orders := make([]*entity.Order, 0, len(r.orders))
	for _, order := range r.orders {
		orders = append(orders, order)
	}
	return orders, int64(len(orders)), nil
}

func (r *MockOrderRepository) ListByUserID(ctx context.Context, userID primitive.ObjectID) ([]*entity.Order, error) {
	if r.ListByErr != nil {
		return nil, r.ListByErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	orders := make([]*entity.Order, 0)
	for _, order := range r.orders {
		if order.UserID == userID {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

// MockNotificationRepository is a mock implementation of NotificationRepository
type MockNotificationRepository struct {
	mu            sync.RWMutex
	notifications map[primitive.ObjectID]*entity.Notification

	// Error injection
	CreateErr  error
	GetByIDErr error
	ListAllErr error
	ListByErr  error
	UpdateErr  error
}

var _ repository.NotificationRepository = (*MockNotificationRepository)(nil)

func NewMockNotificationRepository() *MockNotificationRepository {
	return &MockNotificationRepository{
		notifications: make(map[primitive.ObjectID]*entity.Notification),
	}
}

func (r *MockNotificationRepository) Create(ctx context.Context, n *entity.Notification) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if n.ID.IsZero() {
		n.ID = primitive.NewObjectID()
	}
	r.notifications[n.ID] = n
	return nil
}

func (r *MockNotificationRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Notification, error) {
	if r.GetByIDErr != nil {
		return nil, r.GetByIDErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if n, ok := r.notifications[id]; ok {
		return n, nil
	}
	return nil, nil
}

func (r *MockNotificationRepository) ListAll(ctx context.Context) ([]*entity.Notification, error) {
	if r.ListAllErr != nil {
		return nil, r.ListAllErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Notification, 0, len(r.notifications))
	for _, n := range r.notifications {
		out = append(out, n)
	}
	return out, nil
}

func (r *MockNotificationRepository) ListByUserID(ctx context.Context, userID primitive.ObjectID) ([]*entity.Notification, error) {
	if r.ListByErr != nil {
		return nil, r.ListByErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Notification, 0)
	for _, n := range r.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *MockNotificationRepository) Update(ctx context.Context, n *entity.Notification) error {
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications[n.ID] = n
	return nil
}

// AdminNotificationCount returns the number of admin-desk notifications.
func (r *MockNotificationRepository) AdminNotificationCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, n := range r.notifications {
		if n.UserID.IsZero() {
			count++
		}
	}
	return count
}

// MockInvoiceRepository is a mock implementation of InvoiceRepository
type MockInvoiceRepository struct {
	mu       sync.RWMutex
	invoices map[primitive.ObjectID]*entity.Invoice

	// Error injection
	CreateErr  error
	GetByIDErr error
	ListAllErr error
	DeleteErr  error
}

var _ repository.InvoiceRepository = (*MockInvoiceRepository)(nil)

func NewMockInvoiceRepository() *MockInvoiceRepository {
	return &MockInvoiceRepository{
		invoices: make(map[primitive.ObjectID]*entity.Invoice),
	}
}

func (r *MockInvoiceRepository) Create(ctx context.Context, inv *entity.Invoice) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if inv.ID.IsZero() {
		inv.ID = primitive.NewObjectID()
	}
	r.invoices[inv.ID] = inv
	return nil
}

func (r *MockInvoiceRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Invoice, error) {
	if r.GetByIDErr != nil {
		return nil, r.GetByIDErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if inv, ok := r.invoices[id]; ok {
		return inv, nil
	}
	return nil, nil
}

func (r *MockInvoiceRepository) ListAll(ctx context.Context) ([]*entity.Invoice, error) {
	if r.ListAllErr != nil {
		return nil, r.ListAllErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Invoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		out = append(out, inv)
	}
	return out, nil
}

func (r *MockInvoiceRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if r.DeleteErr != nil {
		return r.DeleteErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.invoices, id)
	return nil
}
