package response

import (
	"time"

	"github.com/edumart/edumart-api/internal/domain/entity"
)

// UserResponse is the public projection of a user account
type UserResponse struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	Email      string              `json:"email"`
	Role       string              `json:"role"`
	Avatar     string              `json:"avatar,omitempty"`
	IsBanned   bool                `json:"is_banned"`
	IsVerified bool                `json:"is_verified"`
	Courses    []entity.Enrollment `json:"courses"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// NewUserResponse maps a user entity to its public projection
func NewUserResponse(user *entity.User) UserResponse {
	courses := user.Courses
	if courses == nil {
		courses = []entity.Enrollment{}
	}
	return UserResponse{
		ID:         user.ID.Hex(),
		Name:       user.Name,
		Email:      user.Email,
		Role:       string(user.Role),
		Avatar:     user.Avatar,
		IsBanned:   user.IsBanned,
		IsVerified: user.IsVerified,
		Courses:    courses,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}

// AuthResponse carries tokens and the authenticated user. Tokens are
// also surfaced in the access-token and refresh-token response headers.
type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int64        `json:"expires_in"`
	User         UserResponse `json:"user"`
}
