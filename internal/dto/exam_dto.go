package dto

import "time"

type ExamAnswerDTO struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
}

type ExamSubmitDTO struct {
	UserID  uint            `json:"user_id" binding:"required"`
	Subject string          `json:"subject"`
	Answers []ExamAnswerDTO `json:"answers" binding:"required,min=1,dive"`
}

// ExamResultDTO is the graded outcome of a mock-exam submission.
type ExamResultDTO struct {
	AttemptID      uint      `json:"attempt_id"`
	UserID         uint      `json:"user_id"`
	Subject        string    `json:"subject,omitempty"`
	TotalQuestions int       `json:"total_questions"`
	CorrectAnswers int       `json:"correct_answers"`
	Score          float64   `json:"score"`
	TakenAt        time.Time `json:"taken_at"`
}

type ExamAttemptSummaryDTO struct {
	ID             uint      `json:"id"`
	Subject        string    `json:"subject,omitempty"`
	TotalQuestions int       `json:"total_questions"`
	CorrectAnswers int       `json:"correct_answers"`
	Score          float64   `json:"score"`
	TakenAt        time.Time `json:"taken_at"`
}
