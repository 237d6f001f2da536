package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// UserUsecase defines the interface for user-related business operations.
type UserUsecase interface {
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)
	GetUser(ctx context.Context, userID string) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
}

// CreateUserInput defines the data required to register a user.
type CreateUserInput struct {
	Username string `json:"username"`
}
