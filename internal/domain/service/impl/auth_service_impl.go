package impl

import (
	"context"

	"github.com/edumart/edumart-api/internal/cache"
	"github.com/edumart/edumart-api/internal/domain/entity"
	"github.com/edumart/edumart-api/internal/domain/repository"
	"github.com/edumart/edumart-api/internal/domain/service"
	"github.com/edumart/edumart-api/internal/dto/request"
	"github.com/edumart/edumart-api/internal/dto/response"
	"github.com/edumart/edumart-api/internal/security"
	apperrors "github.com/edumart/edumart-api/pkg/errors"
)

// authService implements service.AuthService
type authService struct {
	userRepo       repository.UserRepository
	tokenRepo      repository.RefreshTokenRepository
	jwtProvider    *security.JWTProvider
	passwordHasher security.PasswordHasher
	cache          cache.CourseCache
}

// NewAuthService creates a new AuthService instance
func NewAuthService(
	userRepo repository.UserRepository,
	tokenRepo repository.RefreshTokenRepository,
	jwtProvider *security.JWTProvider,
	passwordHasher security.PasswordHasher,
	courseCache cache.CourseCache,
) service.AuthService {
	return &authService{
		userRepo:       userRepo,
		tokenRepo:      tokenRepo,
		jwtProvider:    jwtProvider,
		passwordHasher: passwordHasher,
		cache:          courseCache,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrConflict.WithMessage("email already registered")
	}

	hashedPassword, err := s.passwordHasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
		Avatar:   req.Avatar,
		Role:     entity.RoleUser,
		Courses:  []entity.Enrollment{},
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.generateAuthResponse(ctx, user)
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUnauthorized.WithMessage("invalid credentials")
	}

	if user.IsBanned {
		return nil, apperrors.ErrForbidden.WithMessage("account is banned")
	}

	if err := s.passwordHasher.Compare(user.Password, req.Password); err != nil {
		return nil, apperrors.ErrUnauthorized.WithMessage("invalid credentials")
	}

	return s.generateAuthResponse(ctx, user)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*response.AuthResponse, error) {
	if _, err := s.jwtProvider.ValidateRefreshToken(refreshToken); err != nil {
		return nil, apperrors.ErrUnauthorized.WithMessage("invalid or expired refresh token")
	}

	stored, err := s.tokenRepo.GetByToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if stored == nil || !stored.IsValid() {
		return nil, apperrors.ErrUnauthorized.WithMessage("invalid or expired refresh token")
	}

	// Rotate: the presented token is revoked before new ones are issued
	if err := s.tokenRepo.RevokeByToken(ctx, refreshToken); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, stored.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrNotFound.WithMessage("user not found")
	}

	if user.IsBanned {
		return nil, apperrors.ErrForbidden.WithMessage("account is banned")
	}

	return s.generateAuthResponse(ctx, user)
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	return s.tokenRepo.RevokeByToken(ctx, refreshToken)
}

func (s *authService) LogoutAll(ctx context.Context, userID string) error {
	oid, err := parseID(userID)
	if err != nil {
		return err
	}
	return s.tokenRepo.RevokeAllByUserID(ctx, oid)
}

func (s *authService) generateAuthResponse(ctx context.Context, user *entity.User) (*response.AuthResponse, error) {
	accessToken, err := s.jwtProvider.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshTokenString, expiresAt, err := s.jwtProvider.GenerateRefreshToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken := &entity.RefreshToken{
		UserID:    user.ID,
		Token:     refreshTokenString,
		ExpiresAt: expiresAt,
	}
	if err := s.tokenRepo.Create(ctx, refreshToken); err != nil {
		return nil, err
	}

	// Session lookups read the redis mirror before hitting the database
	if s.cache != nil {
		_ = s.cache.MirrorUser(ctx, user)
	}

	return &response.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		ExpiresIn:    s.jwtProvider.GetAccessTokenDuration(),
		User:         response.NewUserResponse(user),
	}, nil
}
