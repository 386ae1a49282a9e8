package impl

import (
	"context"
	"testing"

	domainerrors "scribe/internal/domain/errors"
	"scribe/internal/infra/auth"
	"scribe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type userServiceFixtures struct {
	service  usecase.UserUsecase
	store    *memStore
	userRepo *memUserRepo
	blogRepo *memBlogRepo
}

func createTestUserService(t *testing.T) userServiceFixtures {
	t.Helper()

	store := newMemStore()
	userRepo := &memUserRepo{store: store}
	blogRepo := &memBlogRepo{store: store}

	service := NewUserService(UserServiceParams{
		TxManager: &memTxManager{store: store},
		UserRepo:  userRepo,
		Hasher:    auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		Logger:    newDiscardLogger(),
	})

	return userServiceFixtures{
		service:  service,
		store:    store,
		userRepo: userRepo,
		blogRepo: blogRepo,
	}
}

func registerTestUser(t *testing.T, fixtures userServiceFixtures, name, email string) uuid.UUID {
	t.Helper()

	output, err := fixtures.service.Register(context.Background(), &usecase.RegisterInput{
		Name:     name,
		Email:    email,
		Password: "StrongPass123",
	})
	require.NoError(t, err)

	return output.User.ID
}

func TestUserService_Register_Success(t *testing.T) {
	fixtures := createTestUserService(t)

	output, err := fixtures.service.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "Test@Example.COM",
		Password: "StrongPass123",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
	assert.Equal(t, "test@example.com", output.User.Email, "email is stored lowercased")
	assert.True(t, output.User.IsActive)
	assert.True(t, output.User.IsVerified)
	assert.NotEmpty(t, output.User.PasswordHash)
	assert.NotEqual(t, "StrongPass123", output.User.PasswordHash)
}

func TestUserService_Register_WeakPassword(t *testing.T) {
	fixtures := createTestUserService(t)

	_, err := fixtures.service.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "weak",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fixtures := createTestUserService(t)
	registerTestUser(t, fixtures, "First", "test@example.com")

	// Duplicate detection is case-insensitive.
	_, err := fixtures.service.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Second",
		Email:    "TEST@example.com",
		Password: "StrongPass123",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
}

func TestUserService_Get(t *testing.T) {
	fixtures := createTestUserService(t)
	userID := registerTestUser(t, fixtures, "Test User", "test@example.com")

	user, err := fixtures.service.Get(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "Test User", user.Name)

	_, err = fixtures.service.Get(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_Update(t *testing.T) {
	fixtures := createTestUserService(t)
	userID := registerTestUser(t, fixtures, "Old Name", "old@example.com")

	newName := "New Name"
	newEmail := "New@Example.com"
	user, err := fixtures.service.Update(context.Background(), userID, &usecase.UpdateUserInput{
		Name:  &newName,
		Email: &newEmail,
	})

	require.NoError(t, err)
	assert.Equal(t, "New Name", user.Name)
	assert.Equal(t, "new@example.com", user.Email)
}

func TestUserService_Update_EmailConflict(t *testing.T) {
	fixtures := createTestUserService(t)
	registerTestUser(t, fixtures, "First", "first@example.com")
	secondID := registerTestUser(t, fixtures, "Second", "second@example.com")

	takenEmail := "first@example.com"
	_, err := fixtures.service.Update(context.Background(), secondID, &usecase.UpdateUserInput{
		Email: &takenEmail,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
}

func TestUserService_Update_SameEmailIsNoConflict(t *testing.T) {
	fixtures := createTestUserService(t)
	userID := registerTestUser(t, fixtures, "Test User", "test@example.com")

	sameEmail := "test@example.com"
	user, err := fixtures.service.Update(context.Background(), userID, &usecase.UpdateUserInput{
		Email: &sameEmail,
	})

	require.NoError(t, err)
	assert.Equal(t, "test@example.com", user.Email)
}

func TestUserService_Delete_CascadesBlogs(t *testing.T) {
	fixtures := createTestUserService(t)
	userID := registerTestUser(t, fixtures, "Author", "author@example.com")

	blogService := NewBlogService(BlogServiceParams{
		TxManager: &memTxManager{store: fixtures.store},
		BlogRepo:  fixtures.blogRepo,
		Logger:    newDiscardLogger(),
	})

	blog, err := blogService.Create(context.Background(), userID, &usecase.CreateBlogInput{
		Title:   "My Post",
		Content: "This post must disappear with its author.",
	})
	require.NoError(t, err)

	require.NoError(t, fixtures.service.Delete(context.Background(), userID))

	_, err = fixtures.service.Get(context.Background(), userID)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))

	_, _, err = fixtures.blogRepo.List(context.Background(), blogListFilterForCreator(userID))
	require.NoError(t, err)

	_, findErr := fixtures.blogRepo.FindByID(context.Background(), blog.ID)
	assert.Error(t, findErr, "owned blogs are deleted with the account")
}

func TestUserService_Delete_NotFound(t *testing.T) {
	fixtures := createTestUserService(t)

	err := fixtures.service.Delete(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_List_Pagination(t *testing.T) {
	fixtures := createTestUserService(t)
	for i := 0; i < 5; i++ {
		registerTestUser(t, fixtures, "User", userEmail(i))
	}

	page, err := fixtures.service.List(context.Background(), &usecase.ListUsersInput{Skip: 0, Limit: 3})
	require.NoError(t, err)
	assert.Len(t, page, 3)

	rest, err := fixtures.service.List(context.Background(), &usecase.ListUsersInput{Skip: 3, Limit: 3})
	require.NoError(t, err)
	assert.Len(t, rest, 2)

	// Newest registration comes first.
	assert.Equal(t, userEmail(4), page[0].Email)
}
