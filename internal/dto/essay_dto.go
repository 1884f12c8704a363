package dto

import "time"

type EssayCreateDTO struct {
	UserID uint   `json:"user_id" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

type EssayTeacherCorrectionDTO struct {
	Score    float64 `json:"score" binding:"gte=0,lte=10"`
	Feedback string  `json:"feedback"`
}

type EssayResponseDTO struct {
	ID                 uint      `json:"id"`
	UserID             uint      `json:"user_id"`
	Text               string    `json:"text"`
	AIScore            *float64  `json:"ai_score,omitempty"`
	TeacherScore       *float64  `json:"teacher_score,omitempty"`
	Feedback           string    `json:"feedback,omitempty"`
	CorrectedByAI      bool      `json:"corrected_by_ai"`
	CorrectedByTeacher bool      `json:"corrected_by_teacher"`
	CreatedAt          time.Time `json:"created_at"`
}
