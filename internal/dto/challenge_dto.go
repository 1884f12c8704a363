package dto

import "time"

type ChallengeCreateDTO struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	XP          int    `json:"xp" binding:"gte=0"`
	ImageURL    string `json:"image_url"`
}

type ChallengeUpdateDTO struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	XP          *int    `json:"xp"`
	ImageURL    *string `json:"image_url"`
}

type ChallengeResponseDTO struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	XP          int       `json:"xp"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ChallengeProgressUpsertDTO struct {
	UserID      uint    `json:"user_id" binding:"required"`
	ChallengeID uint    `json:"challenge_id" binding:"required"`
	Progress    float64 `json:"progress" binding:"gte=0,lte=100"`
	Completed   bool    `json:"completed"`
}

// ChallengeWithProgressDTO is a challenge joined with one user's progress row;
// the progress fields are nil when the user never touched the challenge.
type ChallengeWithProgressDTO struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	XP          int        `json:"xp"`
	ImageURL    string     `json:"image_url,omitempty"`
	Progress    *float64   `json:"progress,omitempty"`
	Completed   *bool      `json:"completed,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
