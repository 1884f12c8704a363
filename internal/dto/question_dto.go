package dto

type QuestionCreateDTO struct {
	Statement     string   `json:"statement" binding:"required"`
	Choices       []string `json:"choices" binding:"required,min=2"`
	CorrectAnswer string   `json:"correct_answer" binding:"required"`
	Subject       string   `json:"subject"`
	Difficulty    int      `json:"difficulty" binding:"gte=0,lte=5"`
}

type QuestionUpdateDTO struct {
	Statement     *string   `json:"statement"`
	Choices       *[]string `json:"choices"`
	CorrectAnswer *string   `json:"correct_answer"`
	Subject       *string   `json:"subject"`
	Difficulty    *int      `json:"difficulty"`
}

type QuestionResponseDTO struct {
	ID            uint     `json:"id"`
	Statement     string   `json:"statement"`
	Choices       []string `json:"choices"`
	CorrectAnswer string   `json:"correct_answer"`
	Subject       string   `json:"subject,omitempty"`
	Difficulty    int      `json:"difficulty"`
}

type QuestionImportResultDTO struct {
	Imported int `json:"imported"`
}
