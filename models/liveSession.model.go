package models

import (
	"time"

	"gorm.io/gorm"
)

// LiveSession lifecycle: created (inactive, no end date) -> active -> ended
// (inactive with EndDate stamped). The roster is append-only; there is no
// leave operation, a participant stays listed in the session's history.
type LiveSession struct {
	gorm.Model
	RoomID      string     `gorm:"uniqueIndex;not null" json:"roomId"`
	CourseID    uint       `gorm:"index;not null" json:"courseId"`
	CreatedByID uint       `gorm:"index;not null" json:"createdById"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	IsActive    bool       `gorm:"default:false" json:"isActive"`
	StartDate   time.Time  `gorm:"not null" json:"startDate"`
	EndDate     *time.Time `json:"endDate"`

	Course       Course               `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	CreatedBy    User                 `gorm:"foreignKey:CreatedByID" json:"createdBy,omitempty"`
	Participants []SessionParticipant `gorm:"foreignKey:LiveSessionID" json:"participants,omitempty"`
}

// SessionParticipant is one roster row. The compound unique index makes
// joining idempotent at the storage layer: a second join for the same
// (session, user) pair is rejected by the index, never by read-then-write.
type SessionParticipant struct {
	gorm.Model
	LiveSessionID uint `gorm:"not null;uniqueIndex:idx_session_user" json:"liveSessionId"`
	UserID        uint `gorm:"not null;uniqueIndex:idx_session_user" json:"userId"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
