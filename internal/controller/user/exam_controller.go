package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/studyquest/backend/internal/dto"
	"github.com/studyquest/backend/internal/service"
)

type ExamController struct {
	examService service.ExamService
}

func NewExamController(examService service.ExamService) *ExamController {
	return &ExamController{examService: examService}
}

// GenerateExam godoc
// @Summary Generate a mock exam
// @Description Selects questions from the bank. Adaptive mode caps difficulty at 2.
// @Tags Exams
// @Produce json
// @Param subject query string false "Filter by subject"
// @Param adaptive query bool false "Cap question difficulty for adaptive mode"
// @Param limit query int false "Maximum number of questions"
// @Success 200 {array} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameter"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exams/generate [get]
func (ctrl *ExamController) GenerateExam(c *gin.Context) {
	subject := c.Query("subject")
	adaptive, _ := strconv.ParseBool(c.DefaultQuery("adaptive", "false"))

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		val, err := strconv.Atoi(limitStr)
		if err != nil || val < 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid limit format"})
			return
		}
		limit = val
	}

	questions, err := ctrl.examService.GenerateExam(subject, adaptive, limit)
	if err != nil {
		writeError(c, err, "Failed to generate exam")
		return
	}
	c.JSON(http.StatusOK, questions)
}

// SubmitExam godoc
// @Summary Submit mock exam answers
// @Description Grades the answers, persists the attempt and returns the score on a 0-10 scale.
// @Tags Exams
// @Accept json
// @Produce json
// @Param submission body dto.ExamSubmitDTO true "User ID and answers"
// @Success 200 {object} dto.ExamResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /exams/submit [post]
func (ctrl *ExamController) SubmitExam(c *gin.Context) {
	var req dto.ExamSubmitDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind ExamSubmitDTO")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	result, err := ctrl.examService.SubmitExam(req)
	if err != nil {
		log.Error().Err(err).Uint("userID", req.UserID).Msg("Failed to submit exam")
		writeError(c, err, "Failed to submit exam")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetAttemptsByUser godoc
// @Summary List a user's exam attempts
// @Tags Exams
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} dto.ExamAttemptSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{id}/exams [get]
func (ctrl *ExamController) GetAttemptsByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	attempts, err := ctrl.examService.GetAttemptsByUser(userID)
	if err != nil {
		writeError(c, err, "Failed to retrieve exam attempts")
		return
	}
	c.JSON(http.StatusOK, attempts)
}
