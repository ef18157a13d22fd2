package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/OmarAymanHeikal/Cms-Discovery/models"
)

type CommentController struct {
	db *gorm.DB
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{db: db}
}

type commentRequest struct {
	Content   string `json:"content" binding:"required,max=2000"`
	UserName  string `json:"user_name" binding:"required,max=100"`
	UserEmail string `json:"user_email" binding:"required,email,max=200"`
}

// POST /api/discovery/programs/:id/comments
//
// Comments land unapproved; only the editorial surface can approve them.
func (ctl *CommentController) CreateComment(c *gin.Context) {
	programID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid program id"})
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var program models.Program
	err = ctl.db.
		Where("is_deleted = ? AND status = ?", false, models.StatusPublished).
		First(&program, "id = ?", programID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "program not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load program"})
		return
	}

	comment := models.Comment{
		BaseEntity: models.BaseEntity{
			ID:        uuid.New(),
			CreatedBy: req.UserName,
			UpdatedBy: req.UserName,
		},
		Content:    req.Content,
		UserName:   req.UserName,
		UserEmail:  req.UserEmail,
		IsApproved: false,
		ProgramID:  program.ID,
	}
	if err := ctl.db.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create comment"})
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// GET /api/cms/programs/:id/comments
func (ctl *CommentController) GetProgramComments(c *gin.Context) {
	programID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid program id"})
		return
	}

	var comments []models.Comment
	err = ctl.db.
		Where("program_id = ? AND is_deleted = ?", programID, false).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list comments"})
		return
	}

	c.JSON(http.StatusOK, comments)
}

// PATCH /api/cms/comments/:id/approve
func (ctl *CommentController) ApproveComment(c *gin.Context) {
	id := c.Param("id")
	var comment models.Comment
	if err := ctl.db.Where("is_deleted = ?", false).First(&comment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load comment"})
		return
	}

	updates := map[string]any{"is_approved": true, "updated_by": actorFrom(c)}
	if err := ctl.db.Model(&comment).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not approve comment"})
		return
	}

	c.JSON(http.StatusOK, comment)
}

// DELETE /api/cms/comments/:id
func (ctl *CommentController) DeleteComment(c *gin.Context) {
	id := c.Param("id")
	var comment models.Comment
	if err := ctl.db.Where("is_deleted = ?", false).First(&comment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load comment"})
		return
	}

	updates := map[string]any{"is_deleted": true, "updated_by": actorFrom(c)}
	if err := ctl.db.Model(&comment).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete comment"})
		return
	}

	c.Status(http.StatusNoContent)
}
