package models

import (
	"time"

	"github.com/google/uuid"
)

type Program struct {
	BaseEntity
	Title         string        `gorm:"size:500;not null" json:"title"`
	Description   string        `gorm:"size:2000" json:"description"`
	ThumbnailURL  string        `gorm:"size:1000" json:"thumbnail_url"`
	VideoURL      string        `gorm:"size:1000;not null" json:"video_url"`
	DurationSec   int           `json:"duration_sec"`
	PublishedDate time.Time     `gorm:"index" json:"published_date"`
	Type          ProgramType   `gorm:"index" json:"type"`
	Language      Language      `gorm:"index" json:"language"`
	Status        ProgramStatus `gorm:"index" json:"status"` // 1=Draft 2=UnderReview 3=Published 4=Archived 5=Rejected
	ViewCount     int           `json:"view_count"`
	Rating        float64       `gorm:"type:decimal(3,2)" json:"rating"`

	Categories []Category `gorm:"many2many:program_categories" json:"categories"`
	Tags       []Tag      `gorm:"many2many:program_tags" json:"tags"`
	Comments   []Comment  `gorm:"foreignKey:ProgramID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
}

// ProgramCategory maps the program_categories join table so the write
// workflow can insert and delete association rows directly.
type ProgramCategory struct {
	ProgramID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"program_id"`
	CategoryID uuid.UUID `gorm:"type:uuid;primaryKey" json:"category_id"`
}

func (ProgramCategory) TableName() string { return "program_categories" }

type ProgramTag struct {
	ProgramID uuid.UUID `gorm:"type:uuid;primaryKey" json:"program_id"`
	TagID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"tag_id"`
}

func (ProgramTag) TableName() string { return "program_tags" }
