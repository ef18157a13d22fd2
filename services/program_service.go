package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/OmarAymanHeikal/Cms-Discovery/models"
	"github.com/OmarAymanHeikal/Cms-Discovery/repositories"
)

// ErrProgramNotFound signals an update or fetch against a program that does
// not exist or is soft-deleted.
var ErrProgramNotFound = errors.New("program not found")

// ProgramInput carries the scalar fields and association ID lists for a
// create or update. The boundary has already validated shapes and ranges.
type ProgramInput struct {
	Title         string
	Description   string
	ThumbnailURL  string
	VideoURL      string
	DurationSec   int
	PublishedDate time.Time
	Type          models.ProgramType
	Language      models.Language
	Status        models.ProgramStatus
	CategoryIDs   []uuid.UUID
	TagIDs        []uuid.UUID
	Actor         string
}

// ProgramService is the write workflow for programs plus the detail fetch
// with its view-count side effect. Every write runs inside one
// db.Transaction closure, so rollback on failure is structural.
type ProgramService struct {
	db     *gorm.DB
	repo   *repositories.ProgramRepository
	logger *zap.Logger
}

func NewProgramService(db *gorm.DB, repo *repositories.ProgramRepository, logger *zap.Logger) *ProgramService {
	return &ProgramService{db: db, repo: repo, logger: logger}
}

// Create persists the program and one association row per category and tag
// ID atomically, then returns the rehydrated program.
func (s *ProgramService) Create(ctx context.Context, in ProgramInput) (*models.Program, error) {
	program := models.Program{
		BaseEntity: models.BaseEntity{
			ID:        uuid.New(),
			CreatedBy: in.Actor,
			UpdatedBy: in.Actor,
		},
		Title:         in.Title,
		Description:   in.Description,
		ThumbnailURL:  in.ThumbnailURL,
		VideoURL:      in.VideoURL,
		DurationSec:   in.DurationSec,
		PublishedDate: in.PublishedDate,
		Type:          in.Type,
		Language:      in.Language,
		Status:        in.Status,
	}
	if program.Status == 0 {
		program.Status = models.StatusDraft
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&program).Error; err != nil {
			return err
		}
		return createAssociations(tx, program.ID, in.CategoryIDs, in.TagIDs)
	})
	if err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, program.ID, false)
}

// Update replaces every scalar field and the whole association sets, all in
// one transaction. No partial-field patch semantics.
func (s *ProgramService) Update(ctx context.Context, id uuid.UUID, in ProgramInput) (*models.Program, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var program models.Program
		if err := tx.Where("is_deleted = ?", false).First(&program, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProgramNotFound
			}
			return err
		}

		program.Title = in.Title
		program.Description = in.Description
		program.ThumbnailURL = in.ThumbnailURL
		program.VideoURL = in.VideoURL
		program.DurationSec = in.DurationSec
		program.PublishedDate = in.PublishedDate
		program.Type = in.Type
		program.Language = in.Language
		program.Status = in.Status
		program.UpdatedBy = in.Actor

		if err := tx.Save(&program).Error; err != nil {
			return err
		}

		if err := tx.Where("program_id = ?", program.ID).Delete(&models.ProgramCategory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("program_id = ?", program.ID).Delete(&models.ProgramTag{}).Error; err != nil {
			return err
		}
		return createAssociations(tx, program.ID, in.CategoryIDs, in.TagIDs)
	})
	if err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id, false)
}

// SoftDelete flips the deletion flag and stamps the actor. Returns false
// when the program is already gone; associations and comments stay in
// place so the program is recoverable.
func (s *ProgramService) SoftDelete(ctx context.Context, id uuid.UUID, actor string) (bool, error) {
	deleted := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var program models.Program
		if err := tx.Where("is_deleted = ?", false).First(&program, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		res := tx.Model(&program).Updates(map[string]any{
			"is_deleted": true,
			"updated_by": actor,
		})
		if res.Error != nil {
			return res.Error
		}
		deleted = true
		return nil
	})
	return deleted, err
}

// GetByID fetches the full program detail and records a view as a side
// effect. The increment runs outside any transaction and a failure is
// logged, never surfaced to the caller.
func (s *ProgramService) GetByID(ctx context.Context, id uuid.UUID) (*models.Program, error) {
	program, err := s.repo.GetByID(ctx, id, false)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}

	if err := s.repo.IncrementViewCount(ctx, id); err != nil {
		s.logger.Warn("view count increment failed",
			zap.String("program_id", id.String()),
			zap.Error(err))
	} else {
		program.ViewCount++
	}
	return program, nil
}

// Search runs an editorial search. Status must be passed explicitly by the
// caller; models.StatusAll lifts the filter entirely.
func (s *ProgramService) Search(ctx context.Context, criteria models.SearchCriteria) (*models.SearchResult[models.Program], error) {
	criteria.Normalize(models.MaxCMSPageSize)
	return s.repo.Search(ctx, criteria)
}

func createAssociations(tx *gorm.DB, programID uuid.UUID, categoryIDs, tagIDs []uuid.UUID) error {
	for _, cid := range dedupeIDs(categoryIDs) {
		row := models.ProgramCategory{ProgramID: programID, CategoryID: cid}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	for _, tid := range dedupeIDs(tagIDs) {
		row := models.ProgramTag{ProgramID: programID, TagID: tid}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

// dedupeIDs drops repeated IDs so a careless caller cannot trip the
// composite primary key on the join tables.
func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	if len(ids) < 2 {
		return ids
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
