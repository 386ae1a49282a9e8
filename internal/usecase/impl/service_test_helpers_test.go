package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"scribe/internal/domain/entity"
	domainerrors "scribe/internal/domain/errors"
	"scribe/internal/domain/repository"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func userEmail(i int) string {
	return fmt.Sprintf("user%d@example.com", i)
}

func blogListFilterForCreator(creatorID uuid.UUID) repository.BlogListFilter {
	return repository.BlogListFilter{Limit: 100, CreatorID: &creatorID}
}

// memStore is a shared in-memory backing store for the repository fakes.
// A monotonic clock keeps created_at ordering deterministic.
type memStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
	blogs map[uuid.UUID]*entity.Blog
	now   time.Time
}

func newMemStore() *memStore {
	return &memStore{
		users: make(map[uuid.UUID]*entity.User),
		blogs: make(map[uuid.UUID]*entity.Blog),
		now:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *memStore) tick() time.Time {
	s.now = s.now.Add(time.Second)

	return s.now
}

func copyUser(u *entity.User) *entity.User {
	if u == nil {
		return nil
	}
	cloned := *u
	cloned.Blogs = nil

	return &cloned
}

func copyBlog(b *entity.Blog) *entity.Blog {
	if b == nil {
		return nil
	}
	cloned := *b
	cloned.Creator = nil

	return &cloned
}

// --- User repository fake ---

type memUserRepo struct {
	store *memStore
}

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return copyUser(user), nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	email = strings.ToLower(email)
	for _, user := range r.store.users {
		if user.Email == email {
			return copyUser(user), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memUserRepo) FindWithBlogs(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	cloned := copyUser(user)
	for _, blog := range r.store.blogs {
		if blog.CreatorID == id {
			cloned.Blogs = append(cloned.Blogs, copyBlog(blog))
		}
	}

	return cloned, nil
}

func (r *memUserRepo) List(_ context.Context, skip, limit int) ([]*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	users := make([]*entity.User, 0, len(r.store.users))
	for _, user := range r.store.users {
		users = append(users, copyUser(user))
	}
	sortNewestFirstUsers(users)

	if skip >= len(users) {
		return nil, nil
	}
	users = users[skip:]
	if limit < len(users) {
		users = users[:limit]
	}

	return users, nil
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.users {
		if existing.Email == user.Email {
			return domainerrors.ErrEmailTaken.WrapMessage("email already exists")
		}
	}

	user.ID = uuid.New()
	user.CreatedAt = r.store.tick()
	user.UpdatedAt = user.CreatedAt
	r.store.users[user.ID] = copyUser(user)

	return nil
}

func (r *memUserRepo) Update(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.users {
		if existing.Email == user.Email && existing.ID != user.ID {
			return domainerrors.ErrEmailTaken.WrapMessage("email already exists")
		}
	}

	user.UpdatedAt = r.store.tick()
	r.store.users[user.ID] = copyUser(user)

	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(r.store.users, id)

	return nil
}

// --- Blog repository fake ---

type memBlogRepo struct {
	store *memStore
}

func (r *memBlogRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Blog, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	blog, ok := r.store.blogs[id]
	if !ok {
		return nil, repository.ErrBlogNotFound
	}

	cloned := copyBlog(blog)
	if creator, ok := r.store.users[blog.CreatorID]; ok {
		cloned.Creator = copyUser(creator)
	}

	return cloned, nil
}

func (r *memBlogRepo) List(_ context.Context, filter repository.BlogListFilter) ([]*entity.Blog, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	matched := make([]*entity.Blog, 0, len(r.store.blogs))
	for _, blog := range r.store.blogs {
		if filter.PublishedOnly && !blog.IsPublished {
			continue
		}
		if filter.CreatorID != nil && blog.CreatorID != *filter.CreatorID {
			continue
		}
		if filter.Query != "" {
			q := strings.ToLower(filter.Query)
			if !strings.Contains(strings.ToLower(blog.Title), q) &&
				!strings.Contains(strings.ToLower(blog.Content), q) {
				continue
			}
		}
		matched = append(matched, copyBlog(blog))
	}
	sortNewestFirstBlogs(matched)

	total := int64(len(matched))
	if filter.Skip >= len(matched) {
		return nil, total, nil
	}
	matched = matched[filter.Skip:]
	if filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}

	return matched, total, nil
}

func (r *memBlogRepo) Create(_ context.Context, blog *entity.Blog) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	blog.ID = uuid.New()
	blog.CreatedAt = r.store.tick()
	blog.UpdatedAt = blog.CreatedAt
	r.store.blogs[blog.ID] = copyBlog(blog)

	return nil
}

func (r *memBlogRepo) Update(_ context.Context, blog *entity.Blog) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	blog.UpdatedAt = r.store.tick()
	r.store.blogs[blog.ID] = copyBlog(blog)

	return nil
}

func (r *memBlogRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.blogs[id]; !ok {
		return repository.ErrBlogNotFound
	}
	delete(r.store.blogs, id)

	return nil
}

func (r *memBlogRepo) DeleteByCreator(_ context.Context, creatorID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for id, blog := range r.store.blogs {
		if blog.CreatorID == creatorID {
			delete(r.store.blogs, id)
		}
	}

	return nil
}

// --- Transaction manager fake ---

// memRepoFactory hands out repositories over the shared store; the fake
// transaction manager provides no rollback, which is fine for these tests.
type memRepoFactory struct {
	store *memStore
}

func (f *memRepoFactory) UserRepo() repository.UserRepository {
	return &memUserRepo{store: f.store}
}

func (f *memRepoFactory) BlogRepo() repository.BlogRepository {
	return &memBlogRepo{store: f.store}
}

type memTxManager struct {
	store *memStore
}

func (tm *memTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(&memRepoFactory{store: tm.store})
}

func sortNewestFirstUsers(users []*entity.User) {
	slices.SortFunc(users, func(a, b *entity.User) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}

func sortNewestFirstBlogs(blogs []*entity.Blog) {
	slices.SortFunc(blogs, func(a, b *entity.Blog) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}
