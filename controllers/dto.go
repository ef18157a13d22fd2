package controllers

import (
	"time"

	"github.com/google/uuid"

	"github.com/OmarAymanHeikal/Cms-Discovery/models"
	"github.com/OmarAymanHeikal/Cms-Discovery/services"
)

type ProgramRequest struct {
	Title         string      `json:"title" binding:"required,max=500"`
	Description   string      `json:"description" binding:"max=2000"`
	ThumbnailURL  string      `json:"thumbnail_url" binding:"omitempty,url"`
	VideoURL      string      `json:"video_url" binding:"required,url"`
	DurationSec   int         `json:"duration_sec" binding:"min=0"`
	PublishedDate time.Time   `json:"published_date" binding:"required"`
	Type          int         `json:"type" binding:"required,min=1,max=5"`
	Language      int         `json:"language" binding:"required,min=1,max=4"`
	Status        int         `json:"status" binding:"required,min=1,max=5"`
	CategoryIDs   []uuid.UUID `json:"category_ids"`
	TagIDs        []uuid.UUID `json:"tag_ids"`
}

func (r ProgramRequest) toInput(actor string) services.ProgramInput {
	return services.ProgramInput{
		Title:         r.Title,
		Description:   r.Description,
		ThumbnailURL:  r.ThumbnailURL,
		VideoURL:      r.VideoURL,
		DurationSec:   r.DurationSec,
		PublishedDate: r.PublishedDate,
		Type:          models.ProgramType(r.Type),
		Language:      models.Language(r.Language),
		Status:        models.ProgramStatus(r.Status),
		CategoryIDs:   r.CategoryIDs,
		TagIDs:        r.TagIDs,
		Actor:         actor,
	}
}

type UpdateProgramRequest struct {
	ID uuid.UUID `json:"id" binding:"required"`
	ProgramRequest
}

type SearchRequest struct {
	SearchTerm     string      `json:"search_term"`
	Type           *int        `json:"type" binding:"omitempty,min=1,max=5"`
	Language       *int        `json:"language" binding:"omitempty,min=1,max=4"`
	Status         *int        `json:"status" binding:"omitempty,min=0,max=5"` // 0 = all statuses
	CategoryIDs    []uuid.UUID `json:"category_ids"`
	TagIDs         []uuid.UUID `json:"tag_ids"`
	FromDate       *time.Time  `json:"from_date"`
	ToDate         *time.Time  `json:"to_date"`
	Page           int         `json:"page"`
	PageSize       int         `json:"page_size"`
	SortBy         string      `json:"sort_by"`
	SortDescending bool        `json:"sort_descending"`
}

func (r SearchRequest) toCriteria() models.SearchCriteria {
	criteria := models.SearchCriteria{
		SearchTerm:     r.SearchTerm,
		CategoryIDs:    r.CategoryIDs,
		TagIDs:         r.TagIDs,
		FromDate:       r.FromDate,
		ToDate:         r.ToDate,
		Page:           r.Page,
		PageSize:       r.PageSize,
		SortBy:         models.ParseSortKey(r.SortBy),
		SortDescending: r.SortDescending,
	}
	if r.Type != nil {
		t := models.ProgramType(*r.Type)
		criteria.Type = &t
	}
	if r.Language != nil {
		l := models.Language(*r.Language)
		criteria.Language = &l
	}
	if r.Status != nil {
		s := models.ProgramStatus(*r.Status)
		criteria.Status = &s
	}
	return criteria
}

type ProgramResponse struct {
	ID            uuid.UUID          `json:"id"`
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	ThumbnailURL  string             `json:"thumbnail_url"`
	VideoURL      string             `json:"video_url"`
	DurationSec   int                `json:"duration_sec"`
	PublishedDate time.Time          `json:"published_date"`
	Type          int                `json:"type"`
	TypeName      string             `json:"type_name"`
	Language      int                `json:"language"`
	LanguageName  string             `json:"language_name"`
	Status        int                `json:"status"`
	StatusName    string             `json:"status_name"`
	ViewCount     int                `json:"view_count"`
	Rating        float64            `json:"rating"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	Categories    []CategoryResponse `json:"categories"`
	Tags          []TagResponse      `json:"tags"`
	Comments      []CommentResponse  `json:"comments"`
}

type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
}

type TagResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type CommentResponse struct {
	ID         uuid.UUID `json:"id"`
	Content    string    `json:"content"`
	UserName   string    `json:"user_name"`
	IsApproved bool      `json:"is_approved"`
	CreatedAt  time.Time `json:"created_at"`
}

// toProgramResponse denormalizes associations and exposes only approved
// comments.
func toProgramResponse(p *models.Program) ProgramResponse {
	resp := ProgramResponse{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		ThumbnailURL:  p.ThumbnailURL,
		VideoURL:      p.VideoURL,
		DurationSec:   p.DurationSec,
		PublishedDate: p.PublishedDate,
		Type:          int(p.Type),
		TypeName:      p.Type.String(),
		Language:      int(p.Language),
		LanguageName:  p.Language.String(),
		Status:        int(p.Status),
		StatusName:    p.Status.String(),
		ViewCount:     p.ViewCount,
		Rating:        p.Rating,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		Categories:    []CategoryResponse{},
		Tags:          []TagResponse{},
		Comments:      []CommentResponse{},
	}
	for _, c := range p.Categories {
		resp.Categories = append(resp.Categories, CategoryResponse{
			ID:          c.ID,
			Name:        c.Name,
			Slug:        c.Slug,
			Description: c.Description,
			Color:       c.Color,
		})
	}
	for _, t := range p.Tags {
		resp.Tags = append(resp.Tags, TagResponse{ID: t.ID, Name: t.Name})
	}
	for _, cm := range p.Comments {
		if !cm.IsApproved {
			continue
		}
		resp.Comments = append(resp.Comments, CommentResponse{
			ID:         cm.ID,
			Content:    cm.Content,
			UserName:   cm.UserName,
			IsApproved: cm.IsApproved,
			CreatedAt:  cm.CreatedAt,
		})
	}
	return resp
}

type PageResponse struct {
	Items      []ProgramResponse `json:"items"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
}

func toPageResponse(result *models.SearchResult[models.Program]) PageResponse {
	items := make([]ProgramResponse, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, toProgramResponse(&result.Items[i]))
	}
	return PageResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Page:       result.Page,
		PageSize:   result.PageSize,
	}
}

func toProgramList(programs []models.Program) []ProgramResponse {
	items := make([]ProgramResponse, 0, len(programs))
	for i := range programs {
		items = append(items, toProgramResponse(&programs[i]))
	}
	return items
}
