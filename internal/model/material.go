package model

import "time"

// Material is a learning resource published by a teacher. File holds the raw
// payload (usually a PDF); it is re-encoded to base64 on list responses.
type Material struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Subject   string    `json:"subject" gorm:"not null"`
	Topic     string    `json:"topic"`
	Subtopic  string    `json:"subtopic"`
	Title     string    `json:"title" gorm:"not null"`
	File      []byte    `json:"-"`
	CreatedBy uint      `json:"created_by" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MaterialProgress tracks per-user completion of a material.
type MaterialProgress struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	UserID     uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_material_progress_user_material"`
	MaterialID uint      `json:"material_id" gorm:"not null;uniqueIndex:idx_material_progress_user_material"`
	Completed  bool      `json:"completed" gorm:"default:false"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
