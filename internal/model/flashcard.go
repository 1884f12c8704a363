package model

import "time"

type Flashcard struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	UserID      uint       `json:"user_id" gorm:"not null;index"`
	Question    string     `json:"question" gorm:"type:text;not null"`
	Answer      string     `json:"answer" gorm:"type:text;not null"`
	Subject     string     `json:"subject"`
	LastReview  time.Time  `json:"last_review"`
	NextReview  *time.Time `json:"next_review,omitempty"`
	Repetitions int        `json:"repetitions" gorm:"default:4"`
	Difficulty  float64    `json:"difficulty" gorm:"default:2.5"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
