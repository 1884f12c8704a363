package dto

import "time"

type FlashcardCreateDTO struct {
	UserID      uint     `json:"user_id" binding:"required"`
	Question    string   `json:"question" binding:"required"`
	Answer      string   `json:"answer" binding:"required"`
	Subject     string   `json:"subject"`
	Repetitions *int     `json:"repetitions"`
	Difficulty  *float64 `json:"difficulty"`
}

type FlashcardUpdateDTO struct {
	Question    *string    `json:"question"`
	Answer      *string    `json:"answer"`
	Subject     *string    `json:"subject"`
	NextReview  *time.Time `json:"next_review"`
	Repetitions *int       `json:"repetitions"`
	Difficulty  *float64   `json:"difficulty"`
}

type FlashcardResponseDTO struct {
	ID          uint       `json:"id"`
	UserID      uint       `json:"user_id"`
	Question    string     `json:"question"`
	Answer      string     `json:"answer"`
	Subject     string     `json:"subject,omitempty"`
	LastReview  time.Time  `json:"last_review"`
	NextReview  *time.Time `json:"next_review,omitempty"`
	Repetitions int        `json:"repetitions"`
	Difficulty  float64    `json:"difficulty"`
}

// ReviewResultDTO is returned after reviewing a flashcard.
type ReviewResultDTO struct {
	NextReviewDate time.Time `json:"next_review_date"`
	DaysUntilNext  int       `json:"days_until_next"`
}
