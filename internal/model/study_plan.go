package model

import "time"

// StudyPlanEntry is one scheduled study block in a user's weekly plan.
type StudyPlanEntry struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Day       string    `json:"day" gorm:"not null"`
	Subject   string    `json:"subject" gorm:"not null"`
	Topic     string    `json:"topic"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
