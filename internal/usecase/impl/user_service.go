package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

const maxUsernameLength = 50

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(userRepo repository.UserRepository, logger *slog.Logger) usecase.UserUsecase {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// CreateUser registers a new user after validating the username.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	if strings.TrimSpace(input.Username) == "" {
		return nil, domainerrors.NewValidationError("Username cannot be empty")
	}
	if utf8.RuneCountInString(input.Username) > maxUsernameLength {
		return nil, domainerrors.NewValidationError("Username cannot exceed 50 characters")
	}

	user := &entity.User{Username: input.Username}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, domainerrors.NewUnknownError(err)
	}

	srv.logger.Info("user created", "userID", user.ID)

	return user, nil
}

// GetUser retrieves a single user by ID.
func (srv *userService) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domainerrors.NewValidationError("User ID cannot be empty")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.NewNotFound("User", userID)
		}

		return nil, domainerrors.NewUnknownError(err)
	}

	return user, nil
}

// ListUsers returns every registered user.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerrors.NewUnknownError(err)
	}

	return users, nil
}
