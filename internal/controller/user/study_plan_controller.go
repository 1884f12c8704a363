package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studyquest/backend/internal/dto"
	"github.com/studyquest/backend/internal/service"
)

type StudyPlanController struct {
	studyPlanService service.StudyPlanService
}

func NewStudyPlanController(studyPlanService service.StudyPlanService) *StudyPlanController {
	return &StudyPlanController{studyPlanService: studyPlanService}
}

// CreateEntry godoc
// @Summary Create a study plan entry
// @Tags Study plans
// @Accept json
// @Produce json
// @Param entry body dto.StudyPlanCreateDTO true "Entry data"
// @Success 201 {object} dto.StudyPlanResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /study-plans [post]
func (ctrl *StudyPlanController) CreateEntry(c *gin.Context) {
	var req dto.StudyPlanCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	entry, err := ctrl.studyPlanService.CreateEntry(req)
	if err != nil {
		writeError(c, err, "Failed to create study plan entry")
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GetEntriesByUser godoc
// @Summary List a user's study plan entries
// @Tags Study plans
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} dto.StudyPlanResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{id}/study-plans [get]
func (ctrl *StudyPlanController) GetEntriesByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	entries, err := ctrl.studyPlanService.GetEntriesByUser(userID)
	if err != nil {
		writeError(c, err, "Failed to retrieve study plan entries")
		return
	}
	c.JSON(http.StatusOK, entries)
}

// UpdateEntry godoc
// @Summary Update a study plan entry
// @Tags Study plans
// @Accept json
// @Produce json
// @Param id path int true "Entry ID"
// @Param entry body dto.StudyPlanUpdateDTO true "Fields to update"
// @Success 200 {object} dto.StudyPlanResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Router /study-plans/{id} [put]
func (ctrl *StudyPlanController) UpdateEntry(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.StudyPlanUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	entry, err := ctrl.studyPlanService.UpdateEntry(id, req)
	if err != nil {
		writeError(c, err, "Failed to update study plan entry")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DeleteEntry godoc
// @Summary Delete a study plan entry
// @Tags Study plans
// @Param id path int true "Entry ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Router /study-plans/{id} [delete]
func (ctrl *StudyPlanController) DeleteEntry(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.studyPlanService.DeleteEntry(id); err != nil {
		writeError(c, err, "Failed to delete study plan entry")
		return
	}
	c.Status(http.StatusNoContent)
}
