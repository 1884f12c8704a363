package model

import "time"

type Challenge struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	XP          int       `json:"xp" gorm:"default:0"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ChallengeProgress is the per-(user, challenge) join row.
type ChallengeProgress struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	UserID      uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_challenge_progress_user_challenge"`
	ChallengeID uint       `json:"challenge_id" gorm:"not null;uniqueIndex:idx_challenge_progress_user_challenge"`
	Progress    float64    `json:"progress" gorm:"default:0"`
	Completed   bool       `json:"completed" gorm:"default:false"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
