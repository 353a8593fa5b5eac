package repository

import (
	"time"

	"edulearn/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LiveSessionRepository struct {
	db *gorm.DB
}

// Create inserts a new session. RoomID uniqueness is enforced by the index;
// a collision comes back as ErrDuplicate.
func (r *LiveSessionRepository) Create(session *models.LiveSession) error {
	return translate(r.db.Create(session).Error)
}

// FindAll returns every session with its course title, creator identity and
// participant identities, newest start first. Admin roster view, unscoped.
func (r *LiveSessionRepository) FindAll() ([]models.LiveSession, error) {
	var sessions []models.LiveSession
	err := r.db.
		Preload("Course", SelectCourseTitle).
		Preload("CreatedBy", SelectUserIdentity).
		Preload("Participants.User", SelectUserIdentity).
		Order("start_date DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, translate(err)
	}
	return sessions, nil
}

// FindByParticipant returns sessions whose roster contains the user, newest
// start first.
func (r *LiveSessionRepository) FindByParticipant(userID uint) ([]models.LiveSession, error) {
	roster := r.db.Model(&models.SessionParticipant{}).
		Select("live_session_id").
		Where("user_id = ?", userID)

	var sessions []models.LiveSession
	err := r.db.
		Where("id IN (?)", roster).
		Preload("Course", SelectCourseTitle).
		Order("start_date DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, translate(err)
	}
	return sessions, nil
}

func (r *LiveSessionRepository) FindByID(id uint) (*models.LiveSession, error) {
	var session models.LiveSession
	if err := r.db.First(&session, id).Error; err != nil {
		return nil, translate(err)
	}
	return &session, nil
}

// Start marks the session active.
func (r *LiveSessionRepository) Start(id uint) error {
	return translate(r.db.Model(&models.LiveSession{}).
		Where("id = ?", id).
		Update("is_active", true).Error)
}

// End deactivates the session and stamps its end date.
func (r *LiveSessionRepository) End(id uint, endedAt time.Time) error {
	return translate(r.db.Model(&models.LiveSession{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_active": false, "end_date": endedAt}).Error)
}

// Join appends the user to the session roster. The insert relies on the
// compound unique index: a re-join hits ON CONFLICT DO NOTHING and succeeds
// without touching the existing row.
func (r *LiveSessionRepository) Join(sessionID, userID uint) error {
	participant := models.SessionParticipant{
		LiveSessionID: sessionID,
		UserID:        userID,
	}
	return translate(r.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&participant).Error)
}

// Roster returns the session's participants in order of first insertion.
func (r *LiveSessionRepository) Roster(sessionID uint) ([]models.SessionParticipant, error) {
	var participants []models.SessionParticipant
	err := r.db.
		Where("live_session_id = ?", sessionID).
		Preload("User", SelectUserIdentity).
		Order("created_at ASC").
		Find(&participants).Error
	if err != nil {
		return nil, translate(err)
	}
	return participants, nil
}

func (r *LiveSessionRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.LiveSession{}).Count(&total).Error; err != nil {
		return 0, translate(err)
	}
	return total, nil
}

// CountStartedBetween counts sessions whose start date falls in the window.
func (r *LiveSessionRepository) CountStartedBetween(from, to time.Time) (int64, error) {
	var total int64
	err := r.db.Model(&models.LiveSession{}).
		Where("start_date BETWEEN ? AND ?", from, to).
		Count(&total).Error
	if err != nil {
		return 0, translate(err)
	}
	return total, nil
}

// EndStale force-ends sessions still active past the cutoff. Used by the
// maintenance scheduler.
func (r *LiveSessionRepository) EndStale(cutoff time.Time, endedAt time.Time) (int64, error) {
	result := r.db.Model(&models.LiveSession{}).
		Where("is_active = ? AND start_date < ?", true, cutoff).
		Updates(map[string]interface{}{"is_active": false, "end_date": endedAt})
	if result.Error != nil {
		return 0, translate(result.Error)
	}
	return result.RowsAffected, nil
}
