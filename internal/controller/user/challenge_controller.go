package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/studyquest/backend/internal/dto"
	"github.com/studyquest/backend/internal/service"
)

type ChallengeController struct {
	challengeService service.ChallengeService
}

func NewChallengeController(challengeService service.ChallengeService) *ChallengeController {
	return &ChallengeController{challengeService: challengeService}
}

// CreateChallenge godoc
// @Summary Create a challenge
// @Tags Challenges
// @Accept json
// @Produce json
// @Param challenge body dto.ChallengeCreateDTO true "Challenge data"
// @Success 201 {object} dto.ChallengeResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /challenges [post]
func (ctrl *ChallengeController) CreateChallenge(c *gin.Context) {
	var req dto.ChallengeCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	challenge, err := ctrl.challengeService.CreateChallenge(req)
	if err != nil {
		writeError(c, err, "Failed to create challenge")
		return
	}
	c.JSON(http.StatusCreated, challenge)
}

// GetAllChallenges godoc
// @Summary List all challenges
// @Tags Challenges
// @Produce json
// @Success 200 {array} dto.ChallengeResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /challenges [get]
func (ctrl *ChallengeController) GetAllChallenges(c *gin.Context) {
	challenges, err := ctrl.challengeService.GetAllChallenges()
	if err != nil {
		writeError(c, err, "Failed to retrieve challenges")
		return
	}
	c.JSON(http.StatusOK, challenges)
}

// UpdateChallenge godoc
// @Summary Update a challenge
// @Tags Challenges
// @Accept json
// @Produce json
// @Param id path int true "Challenge ID"
// @Param challenge body dto.ChallengeUpdateDTO true "Fields to update"
// @Success 200 {object} dto.ChallengeResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Challenge not found"
// @Router /challenges/{id} [put]
func (ctrl *ChallengeController) UpdateChallenge(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.ChallengeUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	challenge, err := ctrl.challengeService.UpdateChallenge(id, req)
	if err != nil {
		writeError(c, err, "Failed to update challenge")
		return
	}
	c.JSON(http.StatusOK, challenge)
}

// DeleteChallenge godoc
// @Summary Delete a challenge
// @Tags Challenges
// @Param id path int true "Challenge ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Challenge not found"
// @Router /challenges/{id} [delete]
func (ctrl *ChallengeController) DeleteChallenge(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.challengeService.DeleteChallenge(id); err != nil {
		writeError(c, err, "Failed to delete challenge")
		return
	}
	c.Status(http.StatusNoContent)
}

// UpsertProgress godoc
// @Summary Record a user's progress on a challenge
// @Description Inserts the (user, challenge) progress row or updates the existing one.
// @Tags Challenges
// @Accept json
// @Produce json
// @Param progress body dto.ChallengeProgressUpsertDTO true "Progress data"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Challenge not found"
// @Router /progress/challenges [post]
func (ctrl *ChallengeController) UpsertProgress(c *gin.Context) {
	var req dto.ChallengeProgressUpsertDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	if err := ctrl.challengeService.UpsertProgress(req); err != nil {
		log.Error().Err(err).Uint("challengeID", req.ChallengeID).Msg("Failed to upsert challenge progress")
		writeError(c, err, "Failed to record progress")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Progress recorded"})
}

// GetChallengesWithProgress godoc
// @Summary List challenges with a user's progress
// @Description Every challenge appears; progress fields are null for untouched ones.
// @Tags Challenges
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} dto.ChallengeWithProgressDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{id}/challenges [get]
func (ctrl *ChallengeController) GetChallengesWithProgress(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	challenges, err := ctrl.challengeService.GetChallengesWithProgress(userID)
	if err != nil {
		writeError(c, err, "Failed to retrieve challenges")
		return
	}
	c.JSON(http.StatusOK, challenges)
}

// MarkCompleted godoc
// @Summary Mark a challenge as completed for a user
// @Tags Challenges
// @Produce json
// @Param id path int true "Challenge ID"
// @Param user_id path int true "User ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Challenge not found"
// @Router /challenges/{id}/complete/{user_id} [post]
func (ctrl *ChallengeController) MarkCompleted(c *gin.Context) {
	challengeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	if err := ctrl.challengeService.MarkCompleted(userID, challengeID); err != nil {
		writeError(c, err, "Failed to mark challenge completed")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Challenge completed"})
}
