package models

import "gorm.io/gorm"

// CourseSubscription records enrollment, a pure join between users and
// courses. One subscription per (user, course) pair.
type CourseSubscription struct {
	gorm.Model
	UserID   uint `gorm:"not null;uniqueIndex:idx_user_course_sub" json:"userId"`
	CourseID uint `gorm:"not null;uniqueIndex:idx_user_course_sub" json:"courseId"`

	User   User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Course Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}
