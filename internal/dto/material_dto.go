package dto

import "time"

// MaterialCreateDTO carries the file payload base64-encoded; it is decoded to
// raw bytes before storage.
type MaterialCreateDTO struct {
	Subject   string `json:"subject" binding:"required"`
	Topic     string `json:"topic"`
	Subtopic  string `json:"subtopic"`
	Title     string `json:"title" binding:"required"`
	File      string `json:"file"`
	CreatedBy uint   `json:"created_by" binding:"required"`
}

type MaterialUpdateDTO struct {
	Subject  *string `json:"subject"`
	Topic    *string `json:"topic"`
	Subtopic *string `json:"subtopic"`
	Title    *string `json:"title"`
	File     *string `json:"file"` // base64
}

type MaterialResponseDTO struct {
	ID        uint      `json:"id"`
	Subject   string    `json:"subject"`
	Topic     string    `json:"topic,omitempty"`
	Subtopic  string    `json:"subtopic,omitempty"`
	Title     string    `json:"title"`
	File      string    `json:"file,omitempty"` // base64, only on subject listings
	CreatedBy uint      `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

type MaterialProgressUpsertDTO struct {
	UserID     uint `json:"user_id" binding:"required"`
	MaterialID uint `json:"material_id" binding:"required"`
	Completed  bool `json:"completed"`
}

// MaterialProgressEntryDTO is one row of a user's activity progress listing.
type MaterialProgressEntryDTO struct {
	MaterialID uint   `json:"material_id"`
	Completed  bool   `json:"completed"`
	Subject    string `json:"subject,omitempty"`
}
