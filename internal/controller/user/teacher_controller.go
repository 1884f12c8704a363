package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studyquest/backend/internal/dto"
	"github.com/studyquest/backend/internal/service"
)

type TeacherController struct {
	teacherService service.TeacherService
}

func NewTeacherController(teacherService service.TeacherService) *TeacherController {
	return &TeacherController{teacherService: teacherService}
}

// GetAllTeachers godoc
// @Summary List all teachers
// @Tags Teachers
// @Produce json
// @Success 200 {array} dto.TeacherResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers [get]
func (ctrl *TeacherController) GetAllTeachers(c *gin.Context) {
	teachers, err := ctrl.teacherService.GetAllTeachers()
	if err != nil {
		writeError(c, err, "Failed to retrieve teachers")
		return
	}
	c.JSON(http.StatusOK, teachers)
}

// GetTeacher godoc
// @Summary Get a teacher's detail row by user ID
// @Tags Teachers
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} dto.TeacherResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Router /teachers/{user_id} [get]
func (ctrl *TeacherController) GetTeacher(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	teacher, err := ctrl.teacherService.GetTeacher(userID)
	if err != nil {
		writeError(c, err, "Failed to retrieve teacher")
		return
	}
	c.JSON(http.StatusOK, teacher)
}

// UpdateSubject godoc
// @Summary Update a teacher's subject
// @Tags Teachers
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Param subject body dto.TeacherSubjectDTO true "New subject"
// @Success 200 {object} dto.TeacherResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Router /teachers/{user_id} [put]
func (ctrl *TeacherController) UpdateSubject(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	var req dto.TeacherSubjectDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	teacher, err := ctrl.teacherService.UpdateSubject(userID, req.Subject)
	if err != nil {
		writeError(c, err, "Failed to update teacher")
		return
	}
	c.JSON(http.StatusOK, teacher)
}

// DeleteTeacher godoc
// @Summary Delete a teacher's detail row
// @Tags Teachers
// @Param user_id path int true "User ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Router /teachers/{user_id} [delete]
func (ctrl *TeacherController) DeleteTeacher(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	if err := ctrl.teacherService.DeleteTeacher(userID); err != nil {
		writeError(c, err, "Failed to delete teacher")
		return
	}
	c.Status(http.StatusNoContent)
}
