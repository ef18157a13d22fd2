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
)

type programWriter interface {
	Create(ctx context.Context, in services.ProgramInput) (*models.Program, error)
	Update(ctx context.Context, id uuid.UUID, in services.ProgramInput) (*models.Program, error)
	SoftDelete(ctx context.Context, id uuid.UUID, actor string) (bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Program, error)
	Search(ctx context.Context, criteria models.SearchCriteria) (*models.SearchResult[models.Program], error)
}

// CMSController is the editorial surface: full CRUD, all statuses visible.
type CMSController struct {
	programs programWriter
	logger   *zap.Logger
}

func NewCMSController(programs programWriter, logger *zap.Logger) *CMSController {
	return &CMSController{programs: programs, logger: logger}
}

func actorFrom(c *gin.Context) string {
	if actor := c.GetString("actor"); actor != "" {
		return actor
	}
	return "system"
}

// POST /api/cms/programs
func (ctl *CMSController) CreateProgram(c *gin.Context) {
	var req ProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	program, err := ctl.programs.Create(c.Request.Context(), req.toInput(actorFrom(c)))
	if err != nil {
		ctl.logger.Error("create program failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create program"})
		return
	}

	c.JSON(http.StatusCreated, toProgramResponse(program))
}

// PUT /api/cms/programs/:id
func (ctl *CMSController) UpdateProgram(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid program id"})
		return
	}

	var req UpdateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ID != id {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id mismatch"})
		return
	}

	program, err := ctl.programs.Update(c.Request.Context(), id, req.toInput(actorFrom(c)))
	if err != nil {
		if errors.Is(err, services.ErrProgramNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "program not found"})
			return
		}
		ctl.logger.Error("update program failed", zap.String("program_id", id.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update program"})
		return
	}

	c.JSON(http.StatusOK, toProgramResponse(program))
}

// DELETE /api/cms/programs/:id
func (ctl *CMSController) DeleteProgram(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid program id"})
		return
	}

	deleted, err := ctl.programs.SoftDelete(c.Request.Context(), id, actorFrom(c))
	if err != nil {
		ctl.logger.Error("delete program failed", zap.String("program_id", id.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete program"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "program not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

// GET /api/cms/programs/:id
func (ctl *CMSController) GetProgram(c *gin.Context) {
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
		ctl.logger.Error("get program failed", zap.String("program_id", id.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load program"})
		return
	}

	c.JSON(http.StatusOK, toProgramResponse(program))
}

// POST /api/cms/programs/search
func (ctl *CMSController) SearchPrograms(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := ctl.programs.Search(c.Request.Context(), req.toCriteria())
	if err != nil {
		ctl.logger.Error("search programs failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}

	c.JSON(http.StatusOK, toPageResponse(result))
}

// GET /api/cms/programs?status=N
func (ctl *CMSController) GetProgramsByStatus(c *gin.Context) {
	status, err := strconv.Atoi(c.Query("status"))
	if err != nil || !models.ProgramStatus(status).Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	s := models.ProgramStatus(status)
	result, err := ctl.programs.Search(c.Request.Context(), models.SearchCriteria{
		Status:         &s,
		PageSize:       models.MaxCMSPageSize,
		SortBy:         models.SortByCreatedAt,
		SortDescending: true,
	})
	if err != nil {
		ctl.logger.Error("list programs by status failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}

	c.JSON(http.StatusOK, toProgramList(result.Items))
}
