package postgres

import (
	"context"

	"scribe/internal/domain/entity"
	domainerrors "scribe/internal/domain/errors"
	"scribe/internal/domain/repository"
	"scribe/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// blogRepository implements the domain.BlogRepository interface using GORM.
type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository is the constructor for blogRepository.
func NewBlogRepository(db *gorm.DB) repository.BlogRepository {
	return &blogRepository{db: db}
}

// FindByID retrieves a single blog by its unique ID, preloading the creator.
func (repo *blogRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Blog, error) {
	var blogM model.BlogModel
	err := repo.db.WithContext(ctx).
		Preload("Creator").
		Where("id = ?", id).
		First(&blogM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBlogNotFound
		}

		return nil, errors.Wrap(err, "failed to find blog by id")
	}

	return toBlogDomain(&blogM), nil
}

// List retrieves blogs matching the filter, newest first, together with the
// total match count so callers can derive pagination metadata.
func (repo *blogRepository) List(ctx context.Context, filter repository.BlogListFilter) ([]*entity.Blog, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.BlogModel{})

	if filter.PublishedOnly {
		query = query.Where("is_published = ?", true)
	}
	if filter.CreatorID != nil {
		query = query.Where("creator_id = ?", *filter.CreatorID)
	}
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count blogs")
	}

	var blogMs []*model.BlogModel
	err := query.
		Preload("Creator").
		Order("created_at DESC").
		Offset(filter.Skip).
		Limit(filter.Limit).
		Find(&blogMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list blogs")
	}

	blogs := make([]*entity.Blog, 0, len(blogMs))
	for _, blogM := range blogMs {
		blogs = append(blogs, toBlogDomain(blogM))
	}

	return blogs, total, nil
}

// Create persists a new blog entity to the database.
func (repo *blogRepository) Create(ctx context.Context, blog *entity.Blog) error {
	blogM := fromBlogDomain(blog)

	if err := repo.db.WithContext(ctx).Create(blogM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("blog creator does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required blog information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create blog")
	}

	blog.ID = blogM.ID
	blog.CreatedAt = blogM.CreatedAt
	blog.UpdatedAt = blogM.UpdatedAt

	return nil
}

// Update modifies an existing blog entity in the database.
func (repo *blogRepository) Update(ctx context.Context, blog *entity.Blog) error {
	blogM := fromBlogDomain(blog)

	if err := repo.db.WithContext(ctx).Save(blogM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required blog information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update blog")
	}

	blog.UpdatedAt = blogM.UpdatedAt

	return nil
}

// Delete removes a blog row.
func (repo *blogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BlogModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete blog")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBlogNotFound
	}

	return nil
}

// DeleteByCreator removes every blog owned by the given user. Deleting
// zero rows is fine; an author without posts is not an error.
func (repo *blogRepository) DeleteByCreator(ctx context.Context, creatorID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Delete(&model.BlogModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete blogs by creator")
	}

	return nil
}

// --- Mapper Functions ---

// toBlogDomain converts a GORM BlogModel to a domain Blog entity.
func toBlogDomain(data *model.BlogModel) *entity.Blog {
	if data == nil {
		return nil
	}

	return &entity.Blog{
		ID:          data.ID,
		Title:       data.Title,
		Content:     data.Content,
		Summary:     data.Summary,
		IsPublished: data.IsPublished,
		CreatorID:   data.CreatorID,
		Creator:     toUserDomain(data.Creator),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromBlogDomain converts a domain Blog entity to a GORM BlogModel for persistence.
// The creator association is deliberately not mapped; user rows are managed by
// the user repository. CreatedAt must be carried through: Save writes every
// column, and a zero value here would overwrite the creation timestamp.
// On inserts GORM fills the zero CreatedAt itself.
func fromBlogDomain(data *entity.Blog) *model.BlogModel {
	if data == nil {
		return nil
	}

	return &model.BlogModel{
		ID:          data.ID,
		Title:       data.Title,
		Content:     data.Content,
		Summary:     data.Summary,
		IsPublished: data.IsPublished,
		CreatorID:   data.CreatorID,
		CreatedAt:   data.CreatedAt,
	}
}
