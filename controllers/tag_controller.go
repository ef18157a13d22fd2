package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/OmarAymanHeikal/Cms-Discovery/models"
)

type TagController struct {
	db *gorm.DB
}

func NewTagController(db *gorm.DB) *TagController {
	return &TagController{db: db}
}

type tagRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	IsActive *bool  `json:"is_active"`
}

// POST /api/cms/tags
func (ctl *TagController) CreateTag(c *gin.Context) {
	var req tagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := strings.TrimSpace(req.Name)
	var count int64
	ctl.db.Model(&models.Tag{}).
		Where("LOWER(name) = LOWER(?) AND is_deleted = ?", name, false).
		Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tag name already exists"})
		return
	}

	tag := models.Tag{
		BaseEntity: models.BaseEntity{
			ID:        uuid.New(),
			CreatedBy: actorFrom(c),
			UpdatedBy: actorFrom(c),
		},
		Name:     name,
		IsActive: true,
	}
	if req.IsActive != nil {
		tag.IsActive = *req.IsActive
	}

	if err := ctl.db.Create(&tag).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create tag"})
		return
	}

	c.JSON(http.StatusCreated, tag)
}

// GET /api/cms/tags
func (ctl *TagController) GetTags(c *gin.Context) {
	query := ctl.db.Model(&models.Tag{}).Where("is_deleted = ?", false)
	if search := c.Query("search"); search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	var tags []models.Tag
	if err := query.Order("name ASC").Find(&tags).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list tags"})
		return
	}

	c.JSON(http.StatusOK, tags)
}

// DELETE /api/cms/tags/:id
func (ctl *TagController) DeleteTag(c *gin.Context) {
	id := c.Param("id")
	var tag models.Tag
	if err := ctl.db.Where("is_deleted = ?", false).First(&tag, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "tag not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load tag"})
		return
	}

	updates := map[string]any{"is_deleted": true, "updated_by": actorFrom(c)}
	if err := ctl.db.Model(&tag).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete tag"})
		return
	}

	c.Status(http.StatusNoContent)
}
