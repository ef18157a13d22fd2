package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/OmarAymanHeikal/Cms-Discovery/models"
)

// CategoryController manages the category vocabulary on the editorial
// surface and serves the active list to discovery.
type CategoryController struct {
	db *gorm.DB
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{db: db}
}

type categoryRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description" binding:"max=1000"`
	Color       string `json:"color" binding:"omitempty,hexcolor"`
	IsActive    *bool  `json:"is_active"`
}

// POST /api/cms/categories
func (ctl *CategoryController) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := strings.TrimSpace(req.Name)
	slugValue := slug.Make(name)

	var count int64
	ctl.db.Model(&models.Category{}).
		Where("(LOWER(name) = LOWER(?) OR slug = ?) AND is_deleted = ?", name, slugValue, false).
		Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category name already exists"})
		return
	}

	category := models.Category{
		BaseEntity: models.BaseEntity{
			ID:        uuid.New(),
			CreatedBy: actorFrom(c),
			UpdatedBy: actorFrom(c),
		},
		Name:        name,
		Slug:        slugValue,
		Description: req.Description,
		Color:       req.Color,
		IsActive:    true,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := ctl.db.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create category"})
		return
	}

	c.JSON(http.StatusCreated, category)
}

// GET /api/cms/categories
func (ctl *CategoryController) GetCategories(c *gin.Context) {
	query := ctl.db.Model(&models.Category{}).Where("is_deleted = ?", false)
	if search := c.Query("search"); search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	page := queryInt(c, "page", 1)
	if page < 1 {
		page = 1
	}
	limit := queryInt(c, "limit", models.DefaultPageSize)
	if limit < 1 {
		limit = models.DefaultPageSize
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not count categories"})
		return
	}

	var categories []models.Category
	if err := query.Offset((page - 1) * limit).Limit(limit).Order("created_at DESC").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list categories"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  categories,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// PUT /api/cms/categories/:id
func (ctl *CategoryController) UpdateCategory(c *gin.Context) {
	id := c.Param("id")
	var category models.Category
	if err := ctl.db.Where("is_deleted = ?", false).First(&category, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}

	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := strings.TrimSpace(req.Name)
	slugValue := slug.Make(name)

	var count int64
	ctl.db.Model(&models.Category{}).
		Where("(LOWER(name) = LOWER(?) OR slug = ?) AND id <> ? AND is_deleted = ?", name, slugValue, id, false).
		Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category name already exists"})
		return
	}

	category.Name = name
	category.Slug = slugValue
	category.Description = req.Description
	category.Color = req.Color
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	category.UpdatedBy = actorFrom(c)

	if err := ctl.db.Save(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update category"})
		return
	}

	c.JSON(http.StatusOK, category)
}

// DELETE /api/cms/categories/:id
func (ctl *CategoryController) DeleteCategory(c *gin.Context) {
	id := c.Param("id")
	var category models.Category
	if err := ctl.db.Where("is_deleted = ?", false).First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load category"})
		return
	}

	updates := map[string]any{"is_deleted": true, "updated_by": actorFrom(c)}
	if err := ctl.db.Model(&category).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete category"})
		return
	}

	c.Status(http.StatusNoContent)
}

// GET /api/discovery/categories
func (ctl *CategoryController) GetActiveCategories(c *gin.Context) {
	var categories []models.Category
	err := ctl.db.
		Where("is_active = ? AND is_deleted = ?", true, false).
		Order("name ASC").
		Find(&categories).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list categories"})
		return
	}

	c.JSON(http.StatusOK, categories)
}
