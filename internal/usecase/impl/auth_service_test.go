package impl

import (
	"context"
	"testing"

	"scribe/config"
	"scribe/internal/domain/entity"
	domainerrors "scribe/internal/domain/errors"
	"scribe/internal/infra/auth"
	"scribe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authServiceFixtures struct {
	service  usecase.AuthUsecase
	store    *memStore
	userRepo *memUserRepo
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	store := newMemStore()
	userRepo := &memUserRepo{store: store}

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:  service,
		store:    store,
		userRepo: userRepo,
	}
}

func seedUser(t *testing.T, fixtures authServiceFixtures, email, password string, active bool) *entity.User {
	t.Helper()

	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)
	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	user := &entity.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: hash,
		IsActive:     active,
		IsVerified:   true,
	}
	require.NoError(t, fixtures.userRepo.Create(context.Background(), user))

	return user
}

func TestAuthService_Login_Success(t *testing.T) {
	fixtures := createTestAuthService(t)
	user := seedUser(t, fixtures, "writer@example.com", "StrongPass123", true)

	output, err := fixtures.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "writer@example.com",
		Password: "StrongPass123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, output.AccessToken)
	assert.Equal(t, "bearer", output.TokenType)
	assert.Equal(t, int64(30), output.ExpiresIn)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestAuthService_Login_CaseInsensitiveEmail(t *testing.T) {
	fixtures := createTestAuthService(t)
	seedUser(t, fixtures, "writer@example.com", "StrongPass123", true)

	output, err := fixtures.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "Writer@Example.COM",
		Password: "StrongPass123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, output.AccessToken)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	fixtures := createTestAuthService(t)
	seedUser(t, fixtures, "writer@example.com", "StrongPass123", true)

	// Unknown email and wrong password must fail identically so login
	// cannot be used to probe which addresses are registered.
	_, unknownErr := fixtures.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "StrongPass123",
	})
	_, wrongPassErr := fixtures.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "writer@example.com",
		Password: "WrongPass123",
	})

	require.Error(t, unknownErr)
	require.Error(t, wrongPassErr)
	assert.True(t, errors.Is(unknownErr, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(wrongPassErr, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	fixtures := createTestAuthService(t)
	seedUser(t, fixtures, "dormant@example.com", "StrongPass123", false)

	_, err := fixtures.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "dormant@example.com",
		Password: "StrongPass123",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountInactive))
}

func TestAuthService_CurrentUser(t *testing.T) {
	fixtures := createTestAuthService(t)
	user := seedUser(t, fixtures, "writer@example.com", "StrongPass123", true)

	got, err := fixtures.service.CurrentUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.Email, got.Email)
}

func TestAuthService_CurrentUser_DeletedAccount(t *testing.T) {
	fixtures := createTestAuthService(t)

	_, err := fixtures.service.CurrentUser(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
