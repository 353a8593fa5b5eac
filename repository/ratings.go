package repository

import (
	"edulearn/models"

	"gorm.io/gorm"
)

type RatingRepository struct {
	db *gorm.DB
}

// Create inserts a rating. One rating per (user, course) pair, enforced by
// the compound unique index; a second insert comes back as ErrDuplicate.
func (r *RatingRepository) Create(rating *models.CourseRating) error {
	return translate(r.db.Create(rating).Error)
}

// FindByUser returns the user's ratings with course titles, newest first.
func (r *RatingRepository) FindByUser(userID uint) ([]models.CourseRating, error) {
	var ratings []models.CourseRating
	err := r.db.
		Where("user_id = ?", userID).
		Preload("Course", SelectCourseTitle).
		Order("created_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, translate(err)
	}
	return ratings, nil
}

// FindOne returns the rating the user gave the course, or ErrNotFound.
func (r *RatingRepository) FindOne(userID, courseID uint) (*models.CourseRating, error) {
	var rating models.CourseRating
	err := r.db.
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&rating).Error
	if err != nil {
		return nil, translate(err)
	}
	return &rating, nil
}
