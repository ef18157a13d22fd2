package models

type Category struct {
	BaseEntity
	Name        string `gorm:"size:200;not null;unique" json:"name"`
	Slug        string `gorm:"size:200;uniqueIndex" json:"slug"`
	Description string `gorm:"size:1000" json:"description"`
	Color       string `gorm:"size:7" json:"color"` // #rrggbb
	IsActive    bool   `gorm:"default:true" json:"is_active"`

	Programs []Program `gorm:"many2many:program_categories" json:"programs,omitempty"`
}
