package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Course struct {
	gorm.Model
	Title       string                      `gorm:"not null" json:"title"`
	Description string                      `gorm:"type:text" json:"description"`
	Subject     string                      `json:"subject"`
	Tags        datatypes.JSONSlice[string] `json:"tags"`
	Thumbnail   string                      `json:"thumbnail"`
	CreatedByID uint                        `gorm:"index;not null" json:"createdById"`

	CreatedBy User `gorm:"foreignKey:CreatedByID" json:"createdBy,omitempty"`
}
