package repository

import (
	"edulearn/models"

	"gorm.io/gorm"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

// Create records an enrollment. A second subscription for the same
// (user, course) pair violates the compound index and comes back as
// ErrDuplicate.
func (r *SubscriptionRepository) Create(sub *models.CourseSubscription) error {
	return translate(r.db.Create(sub).Error)
}

// FindByUser returns the caller's subscriptions with course summaries,
// newest first.
func (r *SubscriptionRepository) FindByUser(userID uint) ([]models.CourseSubscription, error) {
	var subs []models.CourseSubscription
	err := r.db.
		Where("user_id = ?", userID).
		Preload("Course", SelectCourseSummary).
		Order("created_at DESC").
		Find(&subs).Error
	if err != nil {
		return nil, translate(err)
	}
	return subs, nil
}
