package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/studyquest/backend/internal/dto"
	"github.com/studyquest/backend/internal/service"
)

type EssayController struct {
	essayService service.EssayService
}

func NewEssayController(essayService service.EssayService) *EssayController {
	return &EssayController{essayService: essayService}
}

// CreateEssay godoc
// @Summary Submit an essay
// @Tags Essays
// @Accept json
// @Produce json
// @Param essay body dto.EssayCreateDTO true "Essay data"
// @Success 201 {object} dto.EssayResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /essays [post]
func (ctrl *EssayController) CreateEssay(c *gin.Context) {
	var req dto.EssayCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	essay, err := ctrl.essayService.CreateEssay(req)
	if err != nil {
		writeError(c, err, "Failed to create essay")
		return
	}
	c.JSON(http.StatusCreated, essay)
}

// GetEssay godoc
// @Summary Get an essay by ID
// @Tags Essays
// @Produce json
// @Param id path int true "Essay ID"
// @Success 200 {object} dto.EssayResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Essay not found"
// @Router /essays/{id} [get]
func (ctrl *EssayController) GetEssay(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	essay, err := ctrl.essayService.GetEssay(id)
	if err != nil {
		writeError(c, err, "Failed to retrieve essay")
		return
	}
	c.JSON(http.StatusOK, essay)
}

// GetEssaysByUser godoc
// @Summary List a user's essays
// @Tags Essays
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} dto.EssayResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{id}/essays [get]
func (ctrl *EssayController) GetEssaysByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	essays, err := ctrl.essayService.GetEssaysByUser(userID)
	if err != nil {
		writeError(c, err, "Failed to retrieve essays")
		return
	}
	c.JSON(http.StatusOK, essays)
}

// RequestAICorrection godoc
// @Summary Request AI correction for an essay
// @Description Scores the essay 0-10 with written feedback and persists the result.
// @Tags Essays
// @Produce json
// @Param id path int true "Essay ID"
// @Success 200 {object} dto.EssayResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Essay not found"
// @Failure 500 {object} dto.ErrorResponse "AI correction failed"
// @Router /essays/{id}/ai-correction [post]
func (ctrl *EssayController) RequestAICorrection(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	essay, err := ctrl.essayService.RequestAICorrection(c.Request.Context(), id)
	if err != nil {
		log.Error().Err(err).Uint("essayID", id).Msg("AI correction request failed")
		writeError(c, err, "Failed to run AI correction")
		return
	}
	c.JSON(http.StatusOK, essay)
}

// ApplyTeacherCorrection godoc
// @Summary Apply a teacher's correction to an essay
// @Tags Essays
// @Accept json
// @Produce json
// @Param id path int true "Essay ID"
// @Param correction body dto.EssayTeacherCorrectionDTO true "Score and feedback"
// @Success 200 {object} dto.EssayResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Essay not found"
// @Router /essays/{id}/teacher-correction [post]
func (ctrl *EssayController) ApplyTeacherCorrection(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.EssayTeacherCorrectionDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	essay, err := ctrl.essayService.ApplyTeacherCorrection(id, req)
	if err != nil {
		writeError(c, err, "Failed to apply teacher correction")
		return
	}
	c.JSON(http.StatusOK, essay)
}
