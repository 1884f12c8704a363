package model

import "time"

type Essay struct {
	ID                 uint      `gorm:"primarykey" json:"id"`
	UserID             uint      `json:"user_id" gorm:"not null;index"`
	Text               string    `json:"text" gorm:"type:text;not null"`
	AIScore            *float64  `json:"ai_score,omitempty"`
	TeacherScore       *float64  `json:"teacher_score,omitempty"`
	Feedback           string    `json:"feedback,omitempty" gorm:"type:text"`
	CorrectedByAI      bool      `json:"corrected_by_ai" gorm:"default:false"`
	CorrectedByTeacher bool      `json:"corrected_by_teacher" gorm:"default:false"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Corrected reports whether the essay has received any correction.
func (e *Essay) Corrected() bool {
	return e.CorrectedByAI || e.CorrectedByTeacher
}
