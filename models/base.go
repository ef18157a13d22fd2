package models

import (
	"time"

	"github.com/google/uuid"
)

// BaseEntity carries the audit columns shared by every persisted entity.
// CreatedAt/UpdatedAt are stamped by the store, never by callers.
type BaseEntity struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	CreatedBy string    `gorm:"size:100" json:"created_by"`
	UpdatedBy string    `gorm:"size:100" json:"updated_by"`
	IsDeleted bool      `gorm:"index" json:"-"`
}
