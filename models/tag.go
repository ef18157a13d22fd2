package models

type Tag struct {
	BaseEntity
	Name     string `gorm:"size:100;not null;unique" json:"name"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	Programs []Program `gorm:"many2many:program_tags" json:"programs,omitempty"`
}
