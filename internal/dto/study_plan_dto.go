package dto

type StudyPlanCreateDTO struct {
	UserID    uint   `json:"user_id" binding:"required"`
	Day       string `json:"day" binding:"required"`
	Subject   string `json:"subject" binding:"required"`
	Topic     string `json:"topic"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type StudyPlanUpdateDTO struct {
	Day       *string `json:"day"`
	Subject   *string `json:"subject"`
	Topic     *string `json:"topic"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
}

type StudyPlanResponseDTO struct {
	ID        uint   `json:"id"`
	UserID    uint   `json:"user_id"`
	Day       string `json:"day"`
	Subject   string `json:"subject"`
	Topic     string `json:"topic,omitempty"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
}
