package impl

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/edumart/edumart-api/internal/domain/entity"
	"github.com/edumart/edumart-api/internal/domain/service"
	"github.com/edumart/edumart-api/internal/dto/request"
	"github.com/edumart/edumart-api/internal/security"
	"github.com/edumart/edumart-api/internal/testutil/mocks"
	apperrors "github.com/edumart/edumart-api/pkg/errors"
)

type userServiceFixture struct {
	service   service.UserService
	userRepo  *mocks.MockUserRepository
	tokenRepo *mocks.MockRefreshTokenRepository
}

func setupUserService(t *testing.T) *userServiceFixture {
	f := &userServiceFixture{
		userRepo:  mocks.NewMockUserRepository(),
		tokenRepo: mocks.NewMockRefreshTokenRepository(),
	}
	f.service = NewUserService(f.userRepo, f.tokenRepo, security.NewPasswordHasher(), mocks.NewMockCourseCache())
	return f
}

func (f *userServiceFixture) seedUser(t *testing.T) *entity.User {
	t.Helper()
	hasher := security.NewPasswordHasher()
	hash, err := hasher.Hash("password123")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	user := &entity.User{
		Name:     "Test User",
		Email:    "user@example.com",
		Password: hash,
		Role:     entity.RoleUser,
	}
	if err := f.userRepo.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func (f *userServiceFixture) seedToken(t *testing.T, userID primitive.ObjectID) {
	t.Helper()
	err := f.tokenRepo.Create(context.Background(), &entity.RefreshToken{
		UserID: userID,
		Token:  "token-" + userID.Hex(),
	})
	if err != nil {
		t.Fatalf("seed token: %v", err)
	}
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	f := setupUserService(t)
	ctx := context.Background()

	_, err := f.service.GetByID(ctx, primitive.NewObjectID().Hex())
	if !apperrors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("GetByID() error = %v, want not found", err)
	}
}

func TestUserService_GetByID_InvalidID(t *testing.T) {
	f := setupUserService(t)
	ctx := context.Background()

	_, err := f.service.GetByID(ctx, "not-an-id")
	if !apperrors.Is(err, apperrors.ErrBadRequest) {
		t.Errorf("GetByID() error = %v, want bad request", err)
	}
}

func TestUserService_UpdateProfile(t *testing.T) {
	f := setupUserService(t)
	ctx := context.Background()
	user := f.seedUser(t)

	updated, err := f.service.UpdateProfile(ctx, user.ID.Hex(), &request.UpdateProfileRequest{
		Name:   "Renamed",
		Avatar: "https://cdn.example.com/avatar.png",
	})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}
	if updated.Name != "Renamed" {
		t.Errorf("UpdateProfile() name = %v, want Renamed", updated.Name)
	}
	if updated.Email != "user@example.com" {
		t.Errorf("UpdateProfile() email = %v, want unchanged", updated.Email)
	}
}

func TestUserService_ChangePassword_RevokesSessions(t *testing.T) {
	f := setupUserService(t)
	ctx := context.Background()
	user := f.seedUser(t)
	f.seedToken(t, user.ID)

	err := f.service.ChangePassword(ctx, user.ID.Hex(), &request.ChangePasswordRequest{
		OldPassword: "password123",
		NewPassword: "new-password-456",
	})
	if err != nil {
		t.Fatalf("ChangePassword() error = %v", err)
	}

	if f.tokenRepo.ActiveTokenCount(user.ID) != 0 {
		t.Error("ChangePassword() left active sessions")
	}

	hasher := security.NewPasswordHasher()
	stored, _ := f.userRepo.GetByID(ctx, user.ID)
	if err := hasher.Compare(stored.Password, "new-password-456"); err != nil {
		t.Error("ChangePassword() did not store the new password")
	}
}

func TestUserService_ChangePassword_WrongOldPassword(t *testing.T) {
	f := setupUserService(t)
	ctx := context.Background()
	user := f.seedUser(t)

	err := f.service.ChangePassword(ctx, user.ID.Hex(), &request.ChangePasswordRequest{
		OldPassword: "wrong",
		NewPassword: "new-password-456",
	})
	if !apperrors.Is(err, apperrors.ErrUnauthorized) {
		t.Errorf("ChangePassword() error = %v, want unauthorized", err)
	}
}

func TestUserService_UpdateRole(t *testing.T) {
	f := setupUserService(t)
	ctx := context.Background()
	user := f.seedUser(t)

	updated, err := f.service.UpdateRole(ctx, user.ID.Hex(), entity.RoleAdmin)
	if err != nil {
		t.Fatalf("UpdateRole() error = %v", err)
	}
	if updated.Role != entity.RoleAdmin {
		t.Errorf("UpdateRole() role = %v, want admin", updated.Role)
	}
}

func TestUserService_SetBanned_RevokesSessions(t *testing.T) {
	f := setupUserService(t)
	ctx := context.Background()
	user := f.seedUser(t)
	f.seedToken(t, user.ID)

	banned, err := f.service.SetBanned(ctx, user.ID.Hex(), true)
	if err != nil {
		t.Fatalf("SetBanned() error = %v", err)
	}
	if !banned.IsBanned {
		t.Error("SetBanned() did not ban the user")
	}
	if f.tokenRepo.ActiveTokenCount(user.ID) != 0 {
		t.Error("SetBanned() left active sessions for a banned user")
	}
}

func TestUserService_SetBanned_UnbanKeepsSessions(t *testing.T) {
	f := setupUserService(t)
	ctx := context.Background()
	user := f.seedUser(t)
	user.IsBanned = true
	if err := f.userRepo.Update(ctx, user); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	f.seedToken(t, user.ID)

	unbanned, err := f.service.SetBanned(ctx, user.ID.Hex(), false)
	if err != nil {
		t.Fatalf("SetBanned() error = %v", err)
	}
	if unbanned.IsBanned {
		t.Error("SetBanned() did not lift the ban")
	}
	if f.tokenRepo.ActiveTokenCount(user.ID) != 1 {
		t.Error("SetBanned() revoked sessions on unban")
	}
}

func TestUserService_Delete_RevokesSessions(t *testing.T) {
	f := setupUserService(t)
	ctx := context.Background()
	user := f.seedUser(t)
	f.seedToken(t, user.ID)

	if err := f.service.Delete(ctx, user.ID.Hex()); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	_, err := f.service.GetByID(ctx, user.ID.Hex())
	if !apperrors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("GetByID() after delete error = %v, want not found", err)
	}
	if f.tokenRepo.ActiveTokenCount(user.ID) != 0 {
		t.Error("Delete() left active sessions")
	}
}
