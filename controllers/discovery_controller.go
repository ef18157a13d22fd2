package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/OmarAymanHeikal/Cms-Discovery/models"
	"github.com/OmarAymanHeikal/Cms-Discovery/services"
	"github.com/OmarAymanHeikal/Cms-Discovery/utils"
)

type discoveryReader interface {
	Search(ctx context.Context, criteria models.SearchCriteria) (*models.SearchResult[models.Program], error)
	Trending(ctx context.Context, count int) ([]models.Program, error)
	Recent(ctx context.Context, count int) ([]models.Program, error)
	ByCategory(ctx context.Context, categoryID uuid.UUID, page, pageSize int) (*models.SearchResult[models.Program], error)
	ByTag(ctx context.Context, tagID uuid.UUID, page, pageSize int) (*models.SearchResult[models.Program], error)
}

type programReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Program, error)
}

// DiscoveryController is the public surface. It only ever sees published
// content; the services force the status filter regardless of input.
type DiscoveryController struct {
	discovery discoveryReader
	programs  programReader
	logger    *zap.Logger
}

func NewDiscoveryController(discovery discoveryReader, programs programReader, logger *zap.Logger) *DiscoveryController {
	return &DiscoveryController{discovery: discovery, programs: programs, logger: logger}
}

func queryInt(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(fallback)))
	if err != nil {
		return fallback
	}
	return v
}

// GET /api/discovery/search
func (ctl *DiscoveryController) SearchPrograms(c *gin.Context) {
	criteria := models.SearchCriteria{
		SearchTerm:     c.Query("search_term"),
		CategoryIDs:    utils.ParseUUIDList(c.Query("category_ids")),
		TagIDs:         utils.ParseUUIDList(c.Query("tag_ids")),
		Page:           queryInt(c, "page", 1),
		PageSize:       queryInt(c, "page_size", models.DefaultPageSize),
		SortBy:         models.ParseSortKey(c.DefaultQuery("sort_by", "createdat")),
		SortDescending: c.DefaultQuery("sort_desc", "true") == "true",
	}
	if v, err := strconv.Atoi(c.Query("type")); err == nil {
		t := models.ProgramType(v)
		criteria.Type = &t
	}
	if v, err := strconv.Atoi(c.Query("language")); err == nil {
		l := models.Language(v)
		criteria.Language = &l
	}

	result, err := ctl.discovery.Search(c.Request.Context(), criteria)
	if err != nil {
		ctl.logger.Error("discovery search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}

	c.JSON(http.StatusOK, toPageResponse(result))
}

// GET /api/discovery/programs/:id
//
// A non-published program is indistinguishable from a missing one here.
func (ctl *DiscoveryController) GetProgram(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid program id"})
		return
	}

	program, err := ctl.programs.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrProgramNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "program not found"})
			return
		}
		ctl.logger.Error("discovery get program failed", zap.String("program_id", id.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load program"})
		return
	}
	if program.Status != models.StatusPublished {
		c.JSON(http.StatusNotFound, gin.H{"error": "program not found"})
		return
	}

	c.JSON(http.StatusOK, toProgramResponse(program))
}

// GET /api/discovery/categories/:categoryId/programs
func (ctl *DiscoveryController) GetProgramsByCategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("categoryId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
		return
	}

	result, err := ctl.discovery.ByCategory(c.Request.Context(), categoryID,
		queryInt(c, "page", 1), queryInt(c, "page_size", models.DefaultPageSize))
	if err != nil {
		ctl.logger.Error("browse by category failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}

	c.JSON(http.StatusOK, toPageResponse(result))
}

// GET /api/discovery/tags/:tagId/programs
func (ctl *DiscoveryController) GetProgramsByTag(c *gin.Context) {
	tagID, err := uuid.Parse(c.Param("tagId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tag id"})
		return
	}

	result, err := ctl.discovery.ByTag(c.Request.Context(), tagID,
		queryInt(c, "page", 1), queryInt(c, "page_size", models.DefaultPageSize))
	if err != nil {
		ctl.logger.Error("browse by tag failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}

	c.JSON(http.StatusOK, toPageResponse(result))
}

// GET /api/discovery/trending
func (ctl *DiscoveryController) GetTrendingPrograms(c *gin.Context) {
	programs, err := ctl.discovery.Trending(c.Request.Context(), queryInt(c, "count", 10))
	if err != nil {
		ctl.logger.Error("trending listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load trending programs"})
		return
	}

	c.JSON(http.StatusOK, toProgramList(programs))
}

// GET /api/discovery/recent
func (ctl *DiscoveryController) GetRecentPrograms(c *gin.Context) {
	programs, err := ctl.discovery.Recent(c.Request.Context(), queryInt(c, "count", 10))
	if err != nil {
		ctl.logger.Error("recent listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load recent programs"})
		return
	}

	c.JSON(http.StatusOK, toProgramList(programs))
}
