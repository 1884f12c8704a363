package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/studyquest/backend/internal/dto"
	"github.com/studyquest/backend/internal/service"
)

type StudentController struct {
	studentService service.StudentService
}

func NewStudentController(studentService service.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// GetAllStudents godoc
// @Summary List all students
// @Tags Students
// @Produce json
// @Success 200 {array} dto.StudentResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (ctrl *StudentController) GetAllStudents(c *gin.Context) {
	students, err := ctrl.studentService.GetAllStudents()
	if err != nil {
		writeError(c, err, "Failed to retrieve students")
		return
	}
	c.JSON(http.StatusOK, students)
}

// GetStudent godoc
// @Summary Get a student's detail row by user ID
// @Tags Students
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} dto.StudentResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{user_id} [get]
func (ctrl *StudentController) GetStudent(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	student, err := ctrl.studentService.GetStudent(userID)
	if err != nil {
		writeError(c, err, "Failed to retrieve student")
		return
	}
	c.JSON(http.StatusOK, student)
}

// UpdateStudent godoc
// @Summary Update a student's detail row
// @Description Sparse patch: only fields present in the body are updated.
// @Tags Students
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Param student body dto.StudentUpdateDTO true "Fields to update"
// @Success 200 {object} dto.StudentResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{user_id} [put]
func (ctrl *StudentController) UpdateStudent(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	var req dto.StudentUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	student, err := ctrl.studentService.UpdateStudent(userID, req)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to update student")
		writeError(c, err, "Failed to update student")
		return
	}
	c.JSON(http.StatusOK, student)
}

// SetIntensiveMode godoc
// @Summary Toggle a student's intensive study mode
// @Tags Students
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Param mode body dto.IntensiveModeDTO true "Enabled flag"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{user_id}/intensive-mode [put]
func (ctrl *StudentController) SetIntensiveMode(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	var req dto.IntensiveModeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	if err := ctrl.studentService.SetIntensiveMode(userID, req.Enabled); err != nil {
		writeError(c, err, "Failed to set intensive mode")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Intensive mode updated"})
}

// GetRankingStatus godoc
// @Summary Get a student's ranking and XP
// @Tags Students
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} dto.RankingStatusDTO
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{user_id}/ranking [get]
func (ctrl *StudentController) GetRankingStatus(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	status, err := ctrl.studentService.GetRankingStatus(userID)
	if err != nil {
		writeError(c, err, "Failed to retrieve ranking status")
		return
	}
	c.JSON(http.StatusOK, status)
}

// AddXP godoc
// @Summary Add experience points to a student
// @Description Atomic increment; responds with the new total.
// @Tags Students
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Param xp body dto.AddXPDTO true "XP to add"
// @Success 200 {object} dto.XPResultDTO
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{user_id}/xp [post]
func (ctrl *StudentController) AddXP(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	var req dto.AddXPDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	result, err := ctrl.studentService.AddXP(userID, req.XP)
	if err != nil {
		writeError(c, err, "Failed to add XP")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetGlobalRanking godoc
// @Summary Get the global XP leaderboard
// @Description Students joined with their user names, ordered by XP descending and name ascending.
// @Tags Students
// @Produce json
// @Success 200 {array} dto.RankingEntryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /ranking [get]
func (ctrl *StudentController) GetGlobalRanking(c *gin.Context) {
	ranking, err := ctrl.studentService.GetGlobalRanking()
	if err != nil {
		writeError(c, err, "Failed to retrieve ranking")
		return
	}
	c.JSON(http.StatusOK, ranking)
}
