package model

import "time"

// Admin keeps a denormalized copy of the user's email; that copy is why the
// user edit path refuses to change an email referenced here.
type Admin struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex"`
	UserEmail string    `json:"user_email" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
