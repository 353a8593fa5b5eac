// Package repository holds one repository per entity, each over a shared
// database handle. Repositories are constructed once at startup and injected
// into the controllers; nothing here is looked up from global state.
//
// Ownership scoping is done here by shaping the query filter (owner id in the
// WHERE clause), never by filtering rows after the fact. Reference fields are
// resolved with preloads restricted to explicit column allow-lists so that
// sensitive fields such as password hashes never leave the storage layer.
package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrDuplicate is returned when a unique or compound-unique constraint
	// is violated. Surfaces to clients as a conflict.
	ErrDuplicate = errors.New("duplicate record")

	// ErrNotFound is returned when a single-entity lookup matches nothing.
	ErrNotFound = errors.New("record not found")
)

// Repositories bundles the per-entity repositories for injection.
type Repositories struct {
	Users         *UserRepository
	Courses       *CourseRepository
	Sessions      *LiveSessionRepository
	Ratings       *RatingRepository
	Subscriptions *SubscriptionRepository
}

func New(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:         &UserRepository{db: db},
		Courses:       &CourseRepository{db: db},
		Sessions:      &LiveSessionRepository{db: db},
		Ratings:       &RatingRepository{db: db},
		Subscriptions: &SubscriptionRepository{db: db},
	}
}

// SelectUserIdentity restricts a User preload to identity columns. The
// password hash and reset token columns are never part of this projection.
func SelectUserIdentity(db *gorm.DB) *gorm.DB {
	return db.Select("id", "first_name", "last_name", "email", "role")
}

// SelectCourseSummary restricts a Course preload to summary columns.
func SelectCourseSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "title", "subject", "thumbnail", "created_at")
}

// SelectCourseTitle restricts a Course preload to its id and title.
func SelectCourseTitle(db *gorm.DB) *gorm.DB {
	return db.Select("id", "title")
}

// translate maps storage errors onto the repository error taxonomy, keeping
// the originating message for diagnostics.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	default:
		return fmt.Errorf("storage error: %w", err)
	}
}
