package impl

import (
	"context"
	"fmt"
	"strings"
	"testing"

	domainerrors "scribe/internal/domain/errors"
	"scribe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blogServiceFixtures struct {
	service  usecase.BlogUsecase
	store    *memStore
	blogRepo *memBlogRepo
}

func createTestBlogService(t *testing.T) blogServiceFixtures {
	t.Helper()

	store := newMemStore()
	blogRepo := &memBlogRepo{store: store}

	service := NewBlogService(BlogServiceParams{
		TxManager: &memTxManager{store: store},
		BlogRepo:  blogRepo,
		Logger:    newDiscardLogger(),
	})

	return blogServiceFixtures{
		service:  service,
		store:    store,
		blogRepo: blogRepo,
	}
}

func createTestBlog(t *testing.T, fixtures blogServiceFixtures, creatorID uuid.UUID, title string, published bool) uuid.UUID {
	t.Helper()

	blog, err := fixtures.service.Create(context.Background(), creatorID, &usecase.CreateBlogInput{
		Title:       title,
		Content:     "Some content long enough to pass validation.",
		IsPublished: published,
	})
	require.NoError(t, err)

	return blog.ID
}

func TestBlogService_Create_Success(t *testing.T) {
	fixtures := createTestBlogService(t)
	creatorID := uuid.New()

	blog, err := fixtures.service.Create(context.Background(), creatorID, &usecase.CreateBlogInput{
		Title:   "  My First Post  ",
		Content: "Hello world, this is my first post.",
		Summary: "Intro",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, blog.ID)
	assert.Equal(t, "My First Post", blog.Title, "title is trimmed")
	assert.Equal(t, creatorID, blog.CreatorID)
	assert.False(t, blog.IsPublished, "new posts default to draft")
}

func TestBlogService_Create_Validation(t *testing.T) {
	fixtures := createTestBlogService(t)
	creatorID := uuid.New()

	testCases := []struct {
		name  string
		input usecase.CreateBlogInput
	}{
		{"empty title", usecase.CreateBlogInput{Title: "", Content: "Valid content here."}},
		{"short content", usecase.CreateBlogInput{Title: "Title", Content: "short"}},
		{"oversized title", usecase.CreateBlogInput{Title: strings.Repeat("t", 201), Content: "Valid content here."}},
		{"oversized content", usecase.CreateBlogInput{Title: "Title", Content: strings.Repeat("c", 10001)}},
		{"oversized summary", usecase.CreateBlogInput{Title: "Title", Content: "Valid content here.", Summary: strings.Repeat("s", 501)}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fixtures.service.Create(context.Background(), creatorID, &tc.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestBlogService_Get_DraftVisibility(t *testing.T) {
	fixtures := createTestBlogService(t)
	creatorID := uuid.New()
	draftID := createTestBlog(t, fixtures, creatorID, "Draft Post", false)

	// The creator can read their own draft.
	blog, err := fixtures.service.Get(context.Background(), draftID, creatorID)
	require.NoError(t, err)
	assert.Equal(t, "Draft Post", blog.Title)

	// Everyone else sees the same not-found as a missing post.
	_, err = fixtures.service.Get(context.Background(), draftID, uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBlogNotFound))

	_, err = fixtures.service.Get(context.Background(), draftID, uuid.Nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBlogNotFound))
}

func TestBlogService_List_Pagination(t *testing.T) {
	fixtures := createTestBlogService(t)
	creatorID := uuid.New()
	for i := 0; i < 25; i++ {
		createTestBlog(t, fixtures, creatorID, fmt.Sprintf("Post %d", i), true)
	}
	// Drafts never appear in the public listing.
	createTestBlog(t, fixtures, creatorID, "Hidden Draft", false)

	first, err := fixtures.service.List(context.Background(), &usecase.ListBlogsInput{Skip: 0, Limit: 20})
	require.NoError(t, err)
	assert.Len(t, first.Items, 20)
	assert.Equal(t, int64(25), first.Total)
	assert.Equal(t, 1, first.Page)
	assert.Equal(t, 20, first.Size)
	assert.True(t, first.HasNext)
	assert.False(t, first.HasPrev)

	second, err := fixtures.service.List(context.Background(), &usecase.ListBlogsInput{Skip: 20, Limit: 20})
	require.NoError(t, err)
	assert.Len(t, second.Items, 5)
	assert.Equal(t, 2, second.Page)
	assert.False(t, second.HasNext)
	assert.True(t, second.HasPrev)

	// Newest post comes first.
	assert.Equal(t, "Post 24", first.Items[0].Title)
}

func TestBlogService_List_LimitClamp(t *testing.T) {
	fixtures := createTestBlogService(t)
	creatorID := uuid.New()
	createTestBlog(t, fixtures, creatorID, "Post", true)

	defaulted, err := fixtures.service.List(context.Background(), &usecase.ListBlogsInput{Skip: -5, Limit: 0})
	require.NoError(t, err)
	assert.Equal(t, 20, defaulted.Size)
	assert.Equal(t, 1, defaulted.Page)

	clamped, err := fixtures.service.List(context.Background(), &usecase.ListBlogsInput{Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, 100, clamped.Size)
}

func TestBlogService_Search(t *testing.T) {
	fixtures := createTestBlogService(t)
	creatorID := uuid.New()
	createTestBlog(t, fixtures, creatorID, "Cooking with Go", true)
	createTestBlog(t, fixtures, creatorID, "Gardening Tips", true)
	createTestBlog(t, fixtures, creatorID, "Secret Cooking Draft", false)

	page, err := fixtures.service.Search(context.Background(), &usecase.SearchBlogsInput{Query: "cooking"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1, "search is case-insensitive and covers published posts only")
	assert.Equal(t, "Cooking with Go", page.Items[0].Title)

	_, err = fixtures.service.Search(context.Background(), &usecase.SearchBlogsInput{Query: "   "})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestBlogService_ListByCreator_IncludesDrafts(t *testing.T) {
	fixtures := createTestBlogService(t)
	creatorID := uuid.New()
	createTestBlog(t, fixtures, creatorID, "Published", true)
	createTestBlog(t, fixtures, creatorID, "Draft", false)
	createTestBlog(t, fixtures, uuid.New(), "Someone Else", true)

	page, err := fixtures.service.ListByCreator(context.Background(), creatorID, &usecase.ListBlogsInput{})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, int64(2), page.Total)
}

func TestBlogService_Update_Ownership(t *testing.T) {
	fixtures := createTestBlogService(t)
	creatorID := uuid.New()
	blogID := createTestBlog(t, fixtures, creatorID, "Original", true)

	newTitle := "Hijacked"
	_, err := fixtures.service.Update(context.Background(), blogID, uuid.New(), &usecase.UpdateBlogInput{
		Title: &newTitle,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBlogOwnership))

	updatedTitle := "Revised"
	blog, err := fixtures.service.Update(context.Background(), blogID, creatorID, &usecase.UpdateBlogInput{
		Title: &updatedTitle,
	})
	require.NoError(t, err)
	assert.Equal(t, "Revised", blog.Title)
	assert.Equal(t, "Some content long enough to pass validation.", blog.Content, "unset fields stay untouched")
}

func TestBlogService_Delete_Ownership(t *testing.T) {
	fixtures := createTestBlogService(t)
	creatorID := uuid.New()
	blogID := createTestBlog(t, fixtures, creatorID, "Doomed", true)

	err := fixtures.service.Delete(context.Background(), blogID, uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBlogOwnership))

	require.NoError(t, fixtures.service.Delete(context.Background(), blogID, creatorID))

	_, err = fixtures.service.Get(context.Background(), blogID, creatorID)
	assert.True(t, errors.Is(err, domainerrors.ErrBlogNotFound))
}

func TestBlogService_Publish_Idempotent(t *testing.T) {
	fixtures := createTestBlogService(t)
	creatorID := uuid.New()
	blogID := createTestBlog(t, fixtures, creatorID, "Draft", false)

	blog, err := fixtures.service.Publish(context.Background(), blogID, creatorID)
	require.NoError(t, err)
	assert.True(t, blog.IsPublished)

	// Publishing again succeeds and stays published.
	blog, err = fixtures.service.Publish(context.Background(), blogID, creatorID)
	require.NoError(t, err)
	assert.True(t, blog.IsPublished)
}

func TestBlogService_Publish_Ownership(t *testing.T) {
	fixtures := createTestBlogService(t)
	blogID := createTestBlog(t, fixtures, uuid.New(), "Draft", false)

	_, err := fixtures.service.Publish(context.Background(), blogID, uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBlogOwnership))
}

func TestBlogService_NotFound(t *testing.T) {
	fixtures := createTestBlogService(t)

	_, err := fixtures.service.Get(context.Background(), uuid.New(), uuid.Nil)
	assert.True(t, errors.Is(err, domainerrors.ErrBlogNotFound))

	_, err = fixtures.service.Publish(context.Background(), uuid.New(), uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrBlogNotFound))
}
