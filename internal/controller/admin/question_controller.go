package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/studyquest/backend/internal/dto"
	"github.com/studyquest/backend/internal/service"
)

type QuestionController struct {
	questionService service.QuestionService
}

func NewQuestionController(questionService service.QuestionService) *QuestionController {
	return &QuestionController{questionService: questionService}
}

// CreateQuestion godoc
// @Summary (Admin) Create a question
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param question body dto.QuestionCreateDTO true "Question data"
// @Success 201 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /admin/questions [post]
func (ctrl *QuestionController) CreateQuestion(c *gin.Context) {
	var req dto.QuestionCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind QuestionCreateDTO")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	question, err := ctrl.questionService.CreateQuestion(req)
	if err != nil {
		writeError(c, err, "Failed to create question")
		return
	}
	c.JSON(http.StatusCreated, question)
}

// GetAllQuestions godoc
// @Summary (Admin) List all questions
// @Tags Admin - Questions
// @Produce json
// @Success 200 {array} dto.QuestionResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions [get]
func (ctrl *QuestionController) GetAllQuestions(c *gin.Context) {
	questions, err := ctrl.questionService.GetAllQuestions()
	if err != nil {
		writeError(c, err, "Failed to retrieve questions")
		return
	}
	c.JSON(http.StatusOK, questions)
}

// UpdateQuestion godoc
// @Summary (Admin) Update a question
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param question body dto.QuestionUpdateDTO true "Fields to update"
// @Success 200 {object} dto.QuestionResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /admin/questions/{id} [put]
func (ctrl *QuestionController) UpdateQuestion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.QuestionUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	question, err := ctrl.questionService.UpdateQuestion(id, req)
	if err != nil {
		writeError(c, err, "Failed to update question")
		return
	}
	c.JSON(http.StatusOK, question)
}

// DeleteQuestion godoc
// @Summary (Admin) Delete a question
// @Tags Admin - Questions
// @Param id path int true "Question ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /admin/questions/{id} [delete]
func (ctrl *QuestionController) DeleteQuestion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.questionService.DeleteQuestion(id); err != nil {
		writeError(c, err, "Failed to delete question")
		return
	}
	c.Status(http.StatusNoContent)
}

// ImportQuestions godoc
// @Summary (Admin) Bulk import questions from a spreadsheet
// @Description Accepts an xlsx upload with columns: statement, choices (";"-separated), correct answer, subject, difficulty.
// @Tags Admin - Questions
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "xlsx file"
// @Success 200 {object} dto.QuestionImportResultDTO
// @Failure 400 {object} dto.ErrorResponse "Missing or unreadable file"
// @Failure 500 {object} dto.ErrorResponse "Import failed"
// @Router /admin/import/questions [post]
func (ctrl *QuestionController) ImportQuestions(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "file form field is required", Details: []string{err.Error()}})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to open uploaded file", Details: []string{err.Error()}})
		return
	}
	defer file.Close()

	result, err := ctrl.questionService.ImportFromSpreadsheet(file)
	if err != nil {
		log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to import questions")
		writeError(c, err, "Failed to import questions")
		return
	}
	c.JSON(http.StatusOK, result)
}
