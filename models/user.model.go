package models

import (
	"time"

	"gorm.io/gorm"
)

// Role values
const (
	RoleStudent = "STUDENT"
	RoleTeacher = "TEACHER"
	RoleAdmin   = "ADMIN"
)

type User struct {
	gorm.Model
	FirstName        string     `json:"firstName"`
	LastName         string     `json:"lastName"`
	Email            string     `gorm:"uniqueIndex;not null" json:"email"`
	Password         string     `gorm:"not null" json:"-"`
	Role             string     `gorm:"type:varchar(20);default:'STUDENT'" json:"role"`
	ResetToken       *string    `json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`
}
