package models

import "github.com/google/uuid"

type Comment struct {
	BaseEntity
	Content    string    `gorm:"size:2000;not null" json:"content"`
	UserName   string    `gorm:"size:100;not null" json:"user_name"`
	UserEmail  string    `gorm:"size:200;not null" json:"user_email"`
	IsApproved bool      `json:"is_approved"`
	ProgramID  uuid.UUID `gorm:"type:uuid;not null;index" json:"program_id"`
}
