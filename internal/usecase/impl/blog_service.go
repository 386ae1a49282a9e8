package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	deliverycontext "scribe/internal/delivery/context"
	"scribe/internal/domain/entity"
	domainerrors "scribe/internal/domain/errors"
	"scribe/internal/domain/repository"
	"scribe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultBlogListLimit = 20
	maxBlogListLimit     = 100
	maxBlogTitleLength   = 200
	minBlogContentLength = 10
	maxBlogContentLength = 10000
	maxBlogSummaryLength = 500
)

// blogService implements the BlogUsecase interface.
type blogService struct {
	txManager repository.TransactionManager
	blogRepo  repository.BlogRepository
	logger    *slog.Logger
}

// BlogServiceParams holds dependencies for blogService, injected by Fx.
type BlogServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	BlogRepo  repository.BlogRepository
	Logger    *slog.Logger
}

// NewBlogService is the constructor for blogService. It receives all dependencies as interfaces.
func NewBlogService(params BlogServiceParams) usecase.BlogUsecase {
	return &blogService{
		txManager: params.TxManager,
		blogRepo:  params.BlogRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *blogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create persists a new blog post owned by the given creator.
func (srv *blogService) Create(ctx context.Context, creatorID uuid.UUID, input *usecase.CreateBlogInput) (*entity.Blog, error) {
	srv.log(ctx).Debug("Creating blog", slog.Any("creatorID", creatorID))

	if err := validateBlogFields(input.Title, input.Content, input.Summary); err != nil {
		return nil, err
	}

	blog := &entity.Blog{
		Title:       strings.TrimSpace(input.Title),
		Content:     input.Content,
		Summary:     input.Summary,
		IsPublished: input.IsPublished,
		CreatorID:   creatorID,
	}

	if err := srv.blogRepo.Create(ctx, blog); err != nil {
		srv.log(ctx).Error("Failed to create blog", slog.Any("creatorID", creatorID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create blog")
	}

	srv.log(ctx).Debug("Blog created", slog.Any("blogID", blog.ID))

	return blog, nil
}

// Get retrieves a single blog post. Unpublished posts are only visible to
// their creator.
func (srv *blogService) Get(ctx context.Context, id uuid.UUID, requesterID uuid.UUID) (*entity.Blog, error) {
	blog, err := srv.blogRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBlogNotFound, "blog not found")
		}

		return nil, errors.Wrap(err, "failed to find blog by id")
	}

	// A draft is indistinguishable from a missing post for everyone but its creator.
	if !blog.IsPublished && blog.CreatorID != requesterID {
		return nil, errors.Wrap(domainerrors.ErrBlogNotFound, "blog not found")
	}

	return blog, nil
}

// List retrieves one page of published blog posts, newest first.
func (srv *blogService) List(ctx context.Context, input *usecase.ListBlogsInput) (*usecase.BlogPage, error) {
	skip, limit := normalizePagination(input.Skip, input.Limit)

	return srv.listPage(ctx, repository.BlogListFilter{
		Skip:          skip,
		Limit:         limit,
		PublishedOnly: true,
	})
}

// Search retrieves one page of published blog posts whose title or content
// contains the query, case-insensitively.
func (srv *blogService) Search(ctx context.Context, input *usecase.SearchBlogsInput) (*usecase.BlogPage, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "search query must not be empty")
	}

	skip, limit := normalizePagination(input.Skip, input.Limit)

	return srv.listPage(ctx, repository.BlogListFilter{
		Skip:          skip,
		Limit:         limit,
		PublishedOnly: true,
		Query:         query,
	})
}

// ListByCreator retrieves one page of the creator's own posts, drafts included.
func (srv *blogService) ListByCreator(ctx context.Context, creatorID uuid.UUID, input *usecase.ListBlogsInput) (*usecase.BlogPage, error) {
	skip, limit := normalizePagination(input.Skip, input.Limit)

	return srv.listPage(ctx, repository.BlogListFilter{
		Skip:      skip,
		Limit:     limit,
		CreatorID: &creatorID,
	})
}

func (srv *blogService) listPage(ctx context.Context, filter repository.BlogListFilter) (*usecase.BlogPage, error) {
	blogs, total, err := srv.blogRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list blogs")
	}

	return &usecase.BlogPage{
		Items:   blogs,
		Total:   total,
		Page:    filter.Skip/filter.Limit + 1,
		Size:    filter.Limit,
		HasNext: int64(filter.Skip+filter.Limit) < total,
		HasPrev: filter.Skip > 0,
	}, nil
}

// Update modifies a blog post. The ownership check runs against the freshest
// read inside the mutation transaction.
func (srv *blogService) Update(ctx context.Context, id, requesterID uuid.UUID, input *usecase.UpdateBlogInput) (*entity.Blog, error) {
	srv.log(ctx).Debug("Updating blog", slog.Any("blogID", id), slog.Any("requesterID", requesterID))

	var updatedBlog *entity.Blog
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		blogRepo := repoFactory.BlogRepo()

		blog, findErr := srv.findOwnedBlog(ctx, blogRepo, id, requesterID)
		if findErr != nil {
			return findErr
		}

		if input.Title != nil {
			blog.Title = strings.TrimSpace(*input.Title)
		}
		if input.Content != nil {
			blog.Content = *input.Content
		}
		if input.Summary != nil {
			blog.Summary = *input.Summary
		}
		if input.IsPublished != nil {
			blog.IsPublished = *input.IsPublished
		}

		if validateErr := validateBlogFields(blog.Title, blog.Content, blog.Summary); validateErr != nil {
			return validateErr
		}

		if updateErr := blogRepo.Update(ctx, blog); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update blog")
		}

		updatedBlog = blog

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute blog update transaction", slog.Any("blogID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute blog update transaction")
	}

	return updatedBlog, nil
}

// Delete removes a blog post after a tx-scoped ownership check.
func (srv *blogService) Delete(ctx context.Context, id, requesterID uuid.UUID) error {
	srv.log(ctx).Debug("Deleting blog", slog.Any("blogID", id), slog.Any("requesterID", requesterID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		blogRepo := repoFactory.BlogRepo()

		if _, findErr := srv.findOwnedBlog(ctx, blogRepo, id, requesterID); findErr != nil {
			return findErr
		}

		return blogRepo.Delete(ctx, id)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute blog deletion transaction", slog.Any("blogID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute blog deletion transaction")
	}

	return nil
}

// Publish marks a blog post as published. Publishing an already published
// post succeeds without touching the row.
func (srv *blogService) Publish(ctx context.Context, id, requesterID uuid.UUID) (*entity.Blog, error) {
	srv.log(ctx).Debug("Publishing blog", slog.Any("blogID", id), slog.Any("requesterID", requesterID))

	var publishedBlog *entity.Blog
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		blogRepo := repoFactory.BlogRepo()

		blog, findErr := srv.findOwnedBlog(ctx, blogRepo, id, requesterID)
		if findErr != nil {
			return findErr
		}

		if blog.IsPublished {
			publishedBlog = blog

			return nil
		}

		blog.IsPublished = true
		if updateErr := blogRepo.Update(ctx, blog); updateErr != nil {
			return errors.Wrap(updateErr, "failed to publish blog")
		}

		publishedBlog = blog

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute blog publish transaction", slog.Any("blogID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute blog publish transaction")
	}

	return publishedBlog, nil
}

// findOwnedBlog loads a blog and verifies the requester is its creator.
func (srv *blogService) findOwnedBlog(ctx context.Context, blogRepo repository.BlogRepository, id, requesterID uuid.UUID) (*entity.Blog, error) {
	blog, err := blogRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBlogNotFound, "blog not found")
		}

		return nil, errors.Wrap(err, "failed to find blog for mutation")
	}

	if blog.CreatorID != requesterID {
		return nil, errors.Wrap(domainerrors.ErrBlogOwnership, "caller is not the blog creator")
	}

	return blog, nil
}

// validateBlogFields enforces the blog content rules shared by create and update.
func validateBlogFields(title, content, summary string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "title must not be empty")
	}
	if utf8.RuneCountInString(title) > maxBlogTitleLength {
		return errors.Wrap(domainerrors.ErrValidationFailed, "title must be at most 200 characters")
	}

	contentLength := utf8.RuneCountInString(content)
	if contentLength < minBlogContentLength {
		return errors.Wrap(domainerrors.ErrValidationFailed, "content must be at least 10 characters")
	}
	if contentLength > maxBlogContentLength {
		return errors.Wrap(domainerrors.ErrValidationFailed, "content must be at most 10000 characters")
	}

	if utf8.RuneCountInString(summary) > maxBlogSummaryLength {
		return errors.Wrap(domainerrors.ErrValidationFailed, "summary must be at most 500 characters")
	}

	return nil
}

// normalizePagination clamps skip/limit to their allowed ranges.
func normalizePagination(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultBlogListLimit
	}
	if limit > maxBlogListLimit {
		limit = maxBlogListLimit
	}

	return skip, limit
}
