package service

import (
	"context"

	"github.com/edumart/edumart-api/internal/dto/request"
	"github.com/edumart/edumart-api/internal/dto/response"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	// Register creates a new user account
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)

	// Login authenticates a user and returns tokens
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)

	// Refresh rotates a refresh token and returns new tokens
	Refresh(ctx context.Context, refreshToken string) (*response.AuthResponse, error)

	// Logout revokes the given refresh token
	Logout(ctx context.Context, refreshToken string) error

	// LogoutAll revokes every refresh token for a user
	LogoutAll(ctx context.Context, userID string) error
}
