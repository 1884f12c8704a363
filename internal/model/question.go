package model

import "time"

// Question is a question-bank entry. Choices is a JSON-encoded string list,
// kept as serialized text in the column.
type Question struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	Statement     string    `json:"statement" gorm:"type:text;not null"`
	Choices       string    `json:"-" gorm:"type:text"`
	CorrectAnswer string    `json:"correct_answer" gorm:"not null"`
	Subject       string    `json:"subject" gorm:"index"`
	Difficulty    int       `json:"difficulty" gorm:"default:1"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CheckAnswer reports whether the submitted answer matches the stored key.
func (q *Question) CheckAnswer(answer string) bool {
	return answer == q.CorrectAnswer
}
