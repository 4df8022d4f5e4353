package mocks

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/edumart/edumart-api/internal/cache"
	"github.com/edumart/edumart-api/internal/checkout"
	"github.com/edumart/edumart-api/internal/domain/entity"
	"github.com/edumart/edumart-api/internal/mailer"
	"github.com/edumart/edumart-api/internal/payment"
	"github.com/edumart/edumart-api/internal/realtime"
)

// MockGateway is a mock payment gateway returning canned intents.
type MockGateway struct {
	mu      sync.Mutex
	intents map[string]*payment.Intent

	// Error injection
	CreateIntentErr error
	GetIntentErr    error

	CreateCalls []int64
}

var _ payment.Gateway = (*MockGateway)(nil)

func NewMockGateway() *MockGateway {
	return &MockGateway{
		intents: make(map[string]*payment.Intent),
	}
}

// SeedIntent registers an intent so GetIntent can return it.
func (g *MockGateway) SeedIntent(intent *payment.Intent) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.intents[intent.ID] = intent
}

func (g *MockGateway) CreateIntent(ctx context.Context, amount int64) (*payment.Intent, error) {
	if g.CreateIntentErr != nil {
		return nil, g.CreateIntentErr
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.CreateCalls = append(g.CreateCalls, amount)
	intent := &payment.Intent{
		ID:           "pi_" + primitive.NewObjectID().Hex(),
		ClientSecret: "secret",
		Status:       "requires_payment_method",
		Amount:       amount,
		Currency:     "usd",
		Created:      time.Now(),
	}
	g.intents[intent.ID] = intent
	return intent, nil
}

func (g *MockGateway) GetIntent(ctx context.Context, id string) (*payment.Intent, error) {
	if g.GetIntentErr != nil {
		return nil, g.GetIntentErr
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if intent, ok := g.intents[id]; ok {
		return intent, nil
	}
	return nil, g.GetIntentErr
}

// SentMail records one SendOrderConfirmation call.
type SentMail struct {
	To   string
	Data mailer.OrderConfirmation
}

// MockMailer records sent messages instead of dialing SMTP.
type MockMailer struct {
	mu   sync.Mutex
	Sent []SentMail

	// Error injection
	SendErr error
}

var _ mailer.Mailer = (*MockMailer)(nil)

func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

func (m *MockMailer) SendOrderConfirmation(to string, data mailer.OrderConfirmation) error {
	if m.SendErr != nil {
		return m.SendErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, SentMail{To: to, Data: data})
	return nil
}

// SentCount returns the number of recorded sends.
func (m *MockMailer) SentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Sent)
}

// PushedEvent records one push through the broadcaster.
type PushedEvent struct {
	UserID string
	Event  string
	Data   any
}

// MockBroadcaster records pushes instead of writing to sockets.
type MockBroadcaster struct {
	mu          sync.Mutex
	UserPushes  []PushedEvent
	AdminPushes []PushedEvent
	Broadcasts  []PushedEvent
}

var _ realtime.Broadcaster = (*MockBroadcaster)(nil)

func NewMockBroadcaster() *MockBroadcaster {
	return &MockBroadcaster{}
}

func (b *MockBroadcaster) PushToUser(userID string, event string, data any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.UserPushes = append(b.UserPushes, PushedEvent{UserID: userID, Event: event, Data: data})
}

func (b *MockBroadcaster) PushToAdmins(event string, data any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.AdminPushes = append(b.AdminPushes, PushedEvent{Event: event, Data: data})
}

func (b *MockBroadcaster) PushBroadcast(event string, data any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Broadcasts = append(b.Broadcasts, PushedEvent{Event: event, Data: data})
}

// AdminEvents returns the recorded admin event names in order.
func (b *MockBroadcaster) AdminEvents() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	events := make([]string, len(b.AdminPushes))
	for i, p := range b.AdminPushes {
		events[i] = p.Event
	}
	return events
}

// UserEvents returns the recorded event names pushed to one user.
func (b *MockBroadcaster) UserEvents(userID string) []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	var events []string
	for _, p := range b.UserPushes {
		if p.UserID == userID {
			events = append(events, p.Event)
		}
	}
	return events
}

// MockLocker is an in-process checkout locker.
type MockLocker struct {
	mu   sync.Mutex
	held map[string]bool

	// Error injection
	AcquireErr error
}

var _ checkout.Locker = (*MockLocker)(nil)

func NewMockLocker() *MockLocker {
	return &MockLocker{held: make(map[string]bool)}
}

func (l *MockLocker) Acquire(ctx context.Context, userID string) (func(), error) {
	if l.AcquireErr != nil {
		return nil, l.AcquireErr
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[userID] {
		return nil, checkout.ErrLockNotAcquired
	}
	l.held[userID] = true
	release := func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.held, userID)
	}
	return release, nil
}

// Held reports whether the user's lock is currently taken.
func (l *MockLocker) Held(userID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.held[userID]
}

// MockCourseCache is an in-memory CourseCache.
type MockCourseCache struct {
	mu      sync.RWMutex
	courses map[primitive.ObjectID]*entity.Course
	list    []*entity.Course
	users   map[primitive.ObjectID]*entity.User

	// Error injection
	GetErr error
	SetErr error

	Invalidations int
}

var _ cache.CourseCache = (*MockCourseCache)(nil)

func NewMockCourseCache() *MockCourseCache {
	return &MockCourseCache{
		courses: make(map[primitive.ObjectID]*entity.Course),
		users:   make(map[primitive.ObjectID]*entity.User),
	}
}

func (c *MockCourseCache) GetCourse(ctx context.Context, id primitive.ObjectID) (*entity.Course, error) {
	if c.GetErr != nil {
		return nil, c.GetErr
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	if course, ok := c.courses[id]; ok {
		return course, nil
	}
	return nil, nil
}

func (c *MockCourseCache) SetCourse(ctx context.Context, course *entity.Course) error {
	if c.SetErr != nil {
		return c.SetErr
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.courses[course.ID] = course
	return nil
}

func (c *MockCourseCache) GetCourseList(ctx context.Context) ([]*entity.Course, error) {
	if c.GetErr != nil {
		return nil, c.GetErr
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.list, nil
}

func (c *MockCourseCache) SetCourseList(ctx context.Context, courses []*entity.Course) error {
	if c.SetErr != nil {
		return c.SetErr
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.list = courses
	return nil
}

func (c *MockCourseCache) InvalidateCourse(ctx context.Context, id primitive.ObjectID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.courses, id)
	c.list = nil
	c.Invalidations++
	return nil
}

func (c *MockCourseCache) MirrorUser(ctx context.Context, user *entity.User) error {
	if c.SetErr != nil {
		return c.SetErr
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.users[user.ID] = user
	return nil
}

// MirroredUser returns the mirrored user document, or nil.
func (c *MockCourseCache) MirroredUser(id primitive.ObjectID) *entity.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.users[id]
}
