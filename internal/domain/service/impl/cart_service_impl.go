package impl

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/edumart/edumart-api/internal/domain/entity"
	"github.com/edumart/edumart-api/internal/domain/repository"
	"github.com/edumart/edumart-api/internal/domain/service"
	"github.com/edumart/edumart-api/internal/realtime"
	apperrors "github.com/edumart/edumart-api/pkg/errors"
)

// cartService implements service.CartService
type cartService struct {
	cartRepo    repository.CartRepository
	courseRepo  repository.CourseRepository
	userRepo    repository.UserRepository
	broadcaster realtime.Broadcaster
	logger      *zap.Logger
}

// NewCartService creates a new CartService instance
func NewCartService(
	cartRepo repository.CartRepository,
	courseRepo repository.CourseRepository,
	userRepo repository.UserRepository,
	broadcaster realtime.Broadcaster,
	logger *zap.Logger,
) service.CartService {
	return &cartService{
		cartRepo:    cartRepo,
		courseRepo:  courseRepo,
		userRepo:    userRepo,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

func (s *cartService) AddCourse(ctx context.Context, userID, courseID string) (*entity.Cart, error) {
	userOID, err := parseID(userID)
	if err != nil {
		return nil, err
	}
	courseOID, err := parseID(courseID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userOID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrNotFound.WithMessage("user not found")
	}

	course, err := s.courseRepo.GetByID(ctx, courseOID)
	if err != nil {
		return nil, err
	}
	if course == nil || course.IsHidden {
		return nil, apperrors.ErrNotFound.WithMessage("course not found")
	}

	if user.IsEnrolled(courseOID) {
		return nil, apperrors.ErrConflict.WithMessage("you already own this course")
	}

	cart, err := s.cartRepo.GetByUserID(ctx, userOID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		cart = entity.EmptyCart(userOID)
		if err := s.cartRepo.Create(ctx, cart); err != nil {
			return nil, err
		}
	}

	if cart.HasCourse(courseOID) {
		return nil, apperrors.ErrConflict.WithMessage("course is already in your cart")
	}

	// The price is locked now; later catalog edits do not change it
	cart.Items = append(cart.Items, entity.CartItem{
		CourseID:        courseOID,
		CourseName:      course.Name,
		PriceAtPurchase: course.Price,
		Thumbnail:       course.Thumbnail,
		AddedAt:         time.Now(),
	})

	if err := s.cartRepo.Update(ctx, cart); err != nil {
		return nil, err
	}

	s.pushCart(userID, cart)
	return cart, nil
}

func (s *cartService) RemoveCourse(ctx context.Context, userID, courseID string) (*entity.Cart, error) {
	userOID, err := parseID(userID)
	if err != nil {
		return nil, err
	}
	courseOID, err := parseID(courseID)
	if err != nil {
		return nil, err
	}

	cart, err := s.cartRepo.GetByUserID(ctx, userOID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return entity.EmptyCart(userOID), nil
	}

	// removing a course that is not in the cart is a no-op
	if !cart.HasCourse(courseOID) {
		return cart, nil
	}

	cart.RemoveCourse(courseOID)

	if err := s.cartRepo.Update(ctx, cart); err != nil {
		return nil, err
	}

	s.pushCart(userID, cart)
	return cart, nil
}

func (s *cartService) GetCart(ctx context.Context, userID string) (*entity.Cart, error) {
	userOID, err := parseID(userID)
	if err != nil {
		return nil, err
	}

	cart, err := s.cartRepo.GetByUserID(ctx, userOID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		// carts are created lazily on first add; a read miss answers
		// with a synthetic empty cart that is never persisted
		return entity.EmptyCart(userOID), nil
	}

	return cart, nil
}

func (s *cartService) ClearCart(ctx context.Context, userID string) (*entity.Cart, error) {
	userOID, err := parseID(userID)
	if err != nil {
		return nil, err
	}

	cart, err := s.cartRepo.GetByUserID(ctx, userOID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return entity.EmptyCart(userOID), nil
	}

	// the whole document goes away, not just its items
	if err := s.cartRepo.DeleteByUserID(ctx, userOID); err != nil {
		return nil, err
	}

	cleared := entity.EmptyCart(userOID)
	s.pushCart(userID, cleared)
	return cleared, nil
}

func (s *cartService) pushCart(userID string, cart *entity.Cart) {
	if s.broadcaster != nil {
		s.broadcaster.PushToUser(userID, realtime.EventCartUpdated, cart)
	}
}
