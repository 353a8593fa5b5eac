package repository

import (
	"edulearn/models"

	"gorm.io/gorm"
)

type CourseRepository struct {
	db *gorm.DB
}

func (r *CourseRepository) Create(course *models.Course) error {
	return translate(r.db.Create(course).Error)
}

// FindAll returns every course, newest first, with the creator's identity.
func (r *CourseRepository) FindAll() ([]models.Course, error) {
	var courses []models.Course
	err := r.db.
		Preload("CreatedBy", SelectUserIdentity).
		Order("created_at DESC").
		Find(&courses).Error
	if err != nil {
		return nil, translate(err)
	}
	return courses, nil
}

// FindByOwner returns courses created by the given user, newest first. The
// owner id is part of the query filter, so other owners' courses are never
// fetched in the first place.
func (r *CourseRepository) FindByOwner(ownerID uint) ([]models.Course, error) {
	var courses []models.Course
	err := r.db.
		Where("created_by_id = ?", ownerID).
		Preload("CreatedBy", SelectUserIdentity).
		Order("created_at DESC").
		Find(&courses).Error
	if err != nil {
		return nil, translate(err)
	}
	return courses, nil
}

func (r *CourseRepository) FindByID(id uint) (*models.Course, error) {
	var course models.Course
	err := r.db.
		Preload("CreatedBy", SelectUserIdentity).
		First(&course, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &course, nil
}

func (r *CourseRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.Course{}).Count(&total).Error; err != nil {
		return 0, translate(err)
	}
	return total, nil
}
