package model

import (
	"time"
)

// User is the base identity record. Role-specific fields live in the
// Student/Teacher/Admin detail rows; a user can hold several roles at once.
type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null;uniqueIndex"`
	Password  string    `json:"-" gorm:"not null"` // bcrypt hash
	IsStudent bool      `json:"is_student" gorm:"default:false"`
	IsTeacher bool      `json:"is_teacher" gorm:"default:false"`
	IsAdmin   bool      `json:"is_admin" gorm:"default:false"`
	Photo     []byte    `json:"-"` // raw image bytes, transport-encoded as a data URI on read
	PhotoURL  string    `json:"photo_url,omitempty"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
