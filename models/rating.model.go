package models

import "gorm.io/gorm"

type CourseRating struct {
	gorm.Model
	UserID   uint   `gorm:"not null;uniqueIndex:idx_user_course_rating" json:"userId"`
	CourseID uint   `gorm:"not null;uniqueIndex:idx_user_course_rating" json:"courseId"`
	Rating   int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Review   string `gorm:"type:varchar(1000);default:''" json:"review"`

	User   User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Course Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}
