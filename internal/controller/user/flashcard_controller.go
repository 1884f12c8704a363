package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/studyquest/backend/internal/dto"
	"github.com/studyquest/backend/internal/service"
)

type FlashcardController struct {
	flashcardService service.FlashcardService
}

func NewFlashcardController(flashcardService service.FlashcardService) *FlashcardController {
	return &FlashcardController{flashcardService: flashcardService}
}

// CreateFlashcard godoc
// @Summary Create a flashcard
// @Tags Flashcards
// @Accept json
// @Produce json
// @Param flashcard body dto.FlashcardCreateDTO true "Flashcard data"
// @Success 201 {object} dto.FlashcardResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /flashcards [post]
func (ctrl *FlashcardController) CreateFlashcard(c *gin.Context) {
	var req dto.FlashcardCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind FlashcardCreateDTO")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	card, err := ctrl.flashcardService.CreateFlashcard(req)
	if err != nil {
		writeError(c, err, "Failed to create flashcard")
		return
	}
	c.JSON(http.StatusCreated, card)
}

// GetFlashcardsByUser godoc
// @Summary List a user's flashcards
// @Description Returns an empty array when the user has no cards.
// @Tags Flashcards
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} dto.FlashcardResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{id}/flashcards [get]
func (ctrl *FlashcardController) GetFlashcardsByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	cards, err := ctrl.flashcardService.GetFlashcardsByUser(userID)
	if err != nil {
		writeError(c, err, "Failed to retrieve flashcards")
		return
	}
	c.JSON(http.StatusOK, cards)
}

// GetFlashcard godoc
// @Summary Get a flashcard by ID
// @Tags Flashcards
// @Produce json
// @Param id path int true "Flashcard ID"
// @Success 200 {object} dto.FlashcardResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Flashcard not found"
// @Router /flashcards/{id} [get]
func (ctrl *FlashcardController) GetFlashcard(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	card, err := ctrl.flashcardService.GetFlashcard(id)
	if err != nil {
		writeError(c, err, "Failed to retrieve flashcard")
		return
	}
	c.JSON(http.StatusOK, card)
}

// UpdateFlashcard godoc
// @Summary Update a flashcard
// @Description Sparse patch: only fields present in the body are updated.
// @Tags Flashcards
// @Accept json
// @Produce json
// @Param id path int true "Flashcard ID"
// @Param flashcard body dto.FlashcardUpdateDTO true "Fields to update"
// @Success 200 {object} dto.FlashcardResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Flashcard not found"
// @Router /flashcards/{id} [put]
func (ctrl *FlashcardController) UpdateFlashcard(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.FlashcardUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	card, err := ctrl.flashcardService.UpdateFlashcard(id, req)
	if err != nil {
		writeError(c, err, "Failed to update flashcard")
		return
	}
	c.JSON(http.StatusOK, card)
}

// DeleteFlashcard godoc
// @Summary Delete a flashcard
// @Tags Flashcards
// @Param id path int true "Flashcard ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Flashcard not found"
// @Router /flashcards/{id} [delete]
func (ctrl *FlashcardController) DeleteFlashcard(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.flashcardService.DeleteFlashcard(id); err != nil {
		writeError(c, err, "Failed to delete flashcard")
		return
	}
	c.Status(http.StatusNoContent)
}

// ReviewFlashcard godoc
// @Summary Record a flashcard review
// @Description Sets last review to now and schedules the next one from the repetition count.
// @Tags Flashcards
// @Produce json
// @Param id path int true "Flashcard ID"
// @Success 200 {object} dto.ReviewResultDTO
// @Failure 404 {object} dto.ErrorResponse "Flashcard not found"
// @Router /flashcards/{id}/review [post]
func (ctrl *FlashcardController) ReviewFlashcard(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := ctrl.flashcardService.ReviewFlashcard(id)
	if err != nil {
		log.Error().Err(err).Uint("flashcardID", id).Msg("Failed to review flashcard")
		writeError(c, err, "Failed to review flashcard")
		return
	}
	c.JSON(http.StatusOK, result)
}
