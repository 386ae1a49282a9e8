package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "scribe/internal/delivery/context"
	"scribe/internal/domain/entity"
	domainerrors "scribe/internal/domain/errors"
	"scribe/internal/domain/repository"
	"scribe/internal/domain/service"
	"scribe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultUserListLimit = 20
	maxUserListLimit     = 100
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete user registration process.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "password does not meet security requirements")
	}

	// Hash outside the transaction (bcrypt is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Name:         input.Name,
		Email:        email,
		PasswordHash: hashedPassword,
		IsActive:     true,
		IsVerified:   true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// Pre-check keeps the common duplicate case a clean conflict; the unique
		// index still backstops concurrent registrations.
		_, findErr := userRepo.FindByEmail(ctx, email)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrEmailTaken, "email already registered")
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check email availability")
		}

		return userRepo.Create(ctx, newUser)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute registration transaction", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Get retrieves a single user by ID.
func (srv *userService) Get(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// GetWithBlogs retrieves a user together with all of their blog posts.
func (srv *userService) GetWithBlogs(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindWithBlogs(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user with blogs")
	}

	return user, nil
}

// List retrieves users with offset pagination.
func (srv *userService) List(ctx context.Context, input *usecase.ListUsersInput) ([]*entity.User, error) {
	skip := max(input.Skip, 0)

	limit := input.Limit
	if limit <= 0 {
		limit = defaultUserListLimit
	}
	if limit > maxUserListLimit {
		limit = maxUserListLimit
	}

	users, err := srv.userRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// Update modifies a user's own profile fields.
func (srv *userService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	srv.log(ctx).Debug("Updating user", slog.Any("userID", id))

	var updatedUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, findErr := userRepo.FindByID(ctx, id)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(findErr, "failed to find user for update")
		}

		if input.Name != nil {
			user.Name = *input.Name
		}
		if input.Email != nil {
			newEmail := strings.ToLower(strings.TrimSpace(*input.Email))
			if newEmail != user.Email {
				if checkErr := srv.checkEmailAvailable(ctx, userRepo, newEmail, id); checkErr != nil {
					return checkErr
				}
				user.Email = newEmail
			}
		}

		if updateErr := userRepo.Update(ctx, user); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update user")
		}

		updatedUser = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute user update transaction", slog.Any("userID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user update transaction")
	}

	return updatedUser, nil
}

// checkEmailAvailable returns ErrEmailTaken when another account already owns the email.
func (srv *userService) checkEmailAvailable(ctx context.Context, userRepo repository.UserRepository, email string, selfID uuid.UUID) error {
	existing, err := userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to check email availability")
	}

	if existing.ID != selfID {
		return errors.Wrap(domainerrors.ErrEmailTaken, "email already registered")
	}

	return nil
}

// Delete removes a user account together with all of their blog posts.
// The cascade runs inside one transaction so a failure leaves both intact.
func (srv *userService) Delete(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting user account", slog.Any("userID", id))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		blogRepo := repoFactory.BlogRepo()

		if _, findErr := userRepo.FindByID(ctx, id); findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(findErr, "failed to find user for deletion")
		}

		if deleteErr := blogRepo.DeleteByCreator(ctx, id); deleteErr != nil {
			return errors.Wrap(deleteErr, "failed to cascade delete user blogs")
		}

		return userRepo.Delete(ctx, id)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute user deletion transaction", slog.Any("userID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute user deletion transaction")
	}

	srv.log(ctx).Info("User account deleted", slog.Any("userID", id))

	return nil
}
