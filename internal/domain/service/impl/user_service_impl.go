package impl

import (
	"context"

	"github.com/edumart/edumart-api/internal/cache"
	"github.com/edumart/edumart-api/internal/domain/entity"
	"github.com/edumart/edumart-api/internal/domain/repository"
	"github.com/edumart/edumart-api/internal/domain/service"
	"github.com/edumart/edumart-api/internal/dto/request"
	"github.com/edumart/edumart-api/internal/security"
	apperrors "github.com/edumart/edumart-api/pkg/errors"
)

// userService implements service.UserService
type userService struct {
	userRepo       repository.UserRepository
	tokenRepo      repository.RefreshTokenRepository
	passwordHasher security.PasswordHasher
	cache          cache.CourseCache
}

// NewUserService creates a new UserService instance
func NewUserService(
	userRepo repository.UserRepository,
	tokenRepo repository.RefreshTokenRepository,
	passwordHasher security.PasswordHasher,
	courseCache cache.CourseCache,
) service.UserService {
	return &userService{
		userRepo:       userRepo,
		tokenRepo:      tokenRepo,
		passwordHasher: passwordHasher,
		cache:          courseCache,
	}
}

func (s *userService) GetByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrNotFound.WithMessage("user not found")
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, id string, req *request.UpdateProfileRequest) (*entity.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.MirrorUser(ctx, user)
	}

	return user, nil
}

func (s *userService) ChangePassword(ctx context.Context, id string, req *request.ChangePasswordRequest) error {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.passwordHasher.Compare(user.Password, req.OldPassword); err != nil {
		return apperrors.ErrUnauthorized.WithMessage("old password is incorrect")
	}

	hashed, err := s.passwordHasher.Hash(req.NewPassword)
	if err != nil {
		return err
	}
	user.Password = hashed

	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	// Existing sessions become invalid once the password changes
	return s.tokenRepo.RevokeAllByUserID(ctx, user.ID)
}

func (s *userService) List(ctx context.Context, page, size int) ([]*entity.User, int64, error) {
	return s.userRepo.List(ctx, page, size)
}

func (s *userService) UpdateRole(ctx context.Context, id string, role entity.UserRole) (*entity.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Role = role
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.MirrorUser(ctx, user)
	}

	return user, nil
}

func (s *userService) SetBanned(ctx context.Context, id string, banned bool) (*entity.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.IsBanned = banned
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if banned {
		if err := s.tokenRepo.RevokeAllByUserID(ctx, user.ID); err != nil {
			return nil, err
		}
	}

	if s.cache != nil {
		_ = s.cache.MirrorUser(ctx, user)
	}

	return user, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(ctx, oid)
	if err != nil {
		return err
	}
	if user == nil {
		return apperrors.ErrNotFound.WithMessage("user not found")
	}

	if err := s.userRepo.Delete(ctx, oid); err != nil {
		return err
	}

	return s.tokenRepo.RevokeAllByUserID(ctx, oid)
}
