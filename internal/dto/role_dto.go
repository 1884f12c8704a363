package dto

type TeacherResponseDTO struct {
	ID      uint   `json:"id"`
	UserID  uint   `json:"user_id"`
	Subject string `json:"subject,omitempty"`
}

type TeacherSubjectDTO struct {
	Subject string `json:"subject" binding:"required"`
}

type AdminCreateDTO struct {
	UserID uint `json:"user_id" binding:"required"`
}

type AdminResponseDTO struct {
	ID        uint   `json:"id"`
	UserID    uint   `json:"user_id"`
	UserEmail string `json:"user_email"`
}
