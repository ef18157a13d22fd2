package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/OmarAymanHeikal/Cms-Discovery/models"
)

// ProgramRepository owns every read path for programs. Each read method
// takes an explicit includeDeleted flag instead of relying on a hidden
// store-level filter.
type ProgramRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewProgramRepository(db *gorm.DB, logger *zap.Logger) *ProgramRepository {
	return &ProgramRepository{db: db, logger: logger}
}

// GetByID returns the fully hydrated program or gorm.ErrRecordNotFound.
func (r *ProgramRepository) GetByID(ctx context.Context, id uuid.UUID, includeDeleted bool) (*models.Program, error) {
	q := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("Tags").
		Preload("Comments")
	if !includeDeleted {
		q = q.Where("is_deleted = ?", false)
	}

	var program models.Program
	if err := q.First(&program, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &program, nil
}

// Search composes a single query from the criteria: conjunctive filters,
// whitelisted sort with an id tiebreak so pagination stays deterministic,
// count before paging. Empty result pages are valid output.
func (r *ProgramRepository) Search(ctx context.Context, criteria models.SearchCriteria) (*models.SearchResult[models.Program], error) {
	query := applyFilters(r.db.WithContext(ctx).Model(&models.Program{}), criteria)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var items []models.Program
	err := applySort(query, criteria).
		Offset((criteria.Page - 1) * criteria.PageSize).
		Limit(criteria.PageSize).
		Preload("Categories").
		Preload("Tags").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	return &models.SearchResult[models.Program]{
		Items:      items,
		TotalCount: total,
		Page:       criteria.Page,
		PageSize:   criteria.PageSize,
	}, nil
}

// IncrementViewCount bumps the popularity counter atomically at the store,
// so concurrent detail fetches never lose increments. UpdateColumn leaves
// updated_at untouched.
func (r *ProgramRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.Program{}).
		Where("id = ? AND is_deleted = ?", id, false).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

func applyFilters(q *gorm.DB, c models.SearchCriteria) *gorm.DB {
	q = q.Where("programs.is_deleted = ?", false)

	if term := strings.TrimSpace(c.SearchTerm); term != "" {
		like := "%" + term + "%"
		q = q.Where("programs.title ILIKE ? OR programs.description ILIKE ?", like, like)
	}
	if c.Type != nil {
		q = q.Where("programs.type = ?", *c.Type)
	}
	if c.Language != nil {
		q = q.Where("programs.language = ?", *c.Language)
	}
	if c.Status != nil {
		if *c.Status != models.StatusAll {
			q = q.Where("programs.status = ?", *c.Status)
		}
	} else {
		// Discovery safety: no status filter means published only.
		q = q.Where("programs.status = ?", models.StatusPublished)
	}
	if len(c.CategoryIDs) > 0 {
		q = q.Where(
			"EXISTS (SELECT 1 FROM program_categories pc WHERE pc.program_id = programs.id AND pc.category_id IN ?)",
			c.CategoryIDs,
		)
	}
	if len(c.TagIDs) > 0 {
		q = q.Where(
			"EXISTS (SELECT 1 FROM program_tags pt WHERE pt.program_id = programs.id AND pt.tag_id IN ?)",
			c.TagIDs,
		)
	}
	if c.FromDate != nil {
		q = q.Where("programs.published_date >= ?", *c.FromDate)
	}
	if c.ToDate != nil {
		q = q.Where("programs.published_date <= ?", *c.ToDate)
	}
	return q
}

func applySort(q *gorm.DB, c models.SearchCriteria) *gorm.DB {
	direction := "ASC"
	if c.SortDescending {
		direction = "DESC"
	}
	return q.Order(fmt.Sprintf("programs.%s %s, programs.id ASC", c.SortBy.Column(), direction))
}
