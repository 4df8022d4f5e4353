// Package impl provides repository implementations that delegate to the DAO layer.
// This separation allows repositories to focus on business logic while DAOs handle
// database-specific operations.
package impl

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/edumart/edumart-api/internal/domain/dao"
	"github.com/edumart/edumart-api/internal/domain/entity"
	"github.com/edumart/edumart-api/internal/domain/repository"
)

// userRepository implements repository.UserRepository by delegating to UserDAO.
type userRepository struct {
	dao dao.UserDAO
}

// NewUserRepository creates a new UserRepository instance.
func NewUserRepository(userDAO dao.UserDAO) repository.UserRepository {
	return &userRepository{dao: userDAO}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return r.dao.Create(ctx, user)
}

func (r *userRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	return r.dao.FindByID(ctx, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.dao.FindByEmail(ctx, email)
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	return r.dao.Update(ctx, user)
}

func (r *userRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.dao.Delete(ctx, id)
}

func (r *userRepository) List(ctx context.Context, page, size int) ([]*entity.User, int64, error) {
	return r.dao.FindAll(ctx, page, size)
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.dao.ExistsByEmail(ctx, email)
}

// refreshTokenRepository implements repository.RefreshTokenRepository.
type refreshTokenRepository struct {
	dao dao.RefreshTokenDAO
}

// NewRefreshTokenRepository creates a new RefreshTokenRepository instance.
func NewRefreshTokenRepository(tokenDAO dao.RefreshTokenDAO) repository.RefreshTokenRepository {
	return &refreshTokenRepository{dao: tokenDAO}
}

func (r *refreshTokenRepository) Create(ctx context.Context, token *entity.RefreshToken) error {
	return r.dao.Create(ctx, token)
}

func (r *refreshTokenRepository) GetByToken(ctx context.Context, token string) (*entity.RefreshToken, error) {
	return r.dao.FindByToken(ctx, token)
}

func (r *refreshTokenRepository) RevokeByToken(ctx context.Context, token string) error {
	return r.dao.RevokeByToken(ctx, token)
}

func (r *refreshTokenRepository) RevokeAllByUserID(ctx context.Context, userID primitive.ObjectID) error {
	return r.dao.RevokeAllByUserID(ctx, userID)
}

func (r *refreshTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	return r.dao.DeleteExpired(ctx)
}
