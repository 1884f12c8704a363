package model

import "time"

// Student is the role-detail row for users with the student flag.
// Deliberately no ON DELETE constraint back to users: deleting a user leaves
// the detail row behind, matching the rest of the CRUD paths.
type Student struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	UserID          uint      `json:"user_id" gorm:"not null;uniqueIndex"`
	IntensiveMode   bool      `json:"intensive_mode" gorm:"default:false"`
	Diagnostic      string    `json:"diagnostic" gorm:"type:text"`
	StudyPlanID     *uint     `json:"study_plan_id,omitempty"`
	Ranking         int       `json:"ranking" gorm:"default:0"`
	XP              int       `json:"xp" gorm:"default:0"`
	ProgressPercent float64   `json:"progress_percent" gorm:"default:0"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
