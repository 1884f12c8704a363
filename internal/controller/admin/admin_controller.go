package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/studyquest/backend/internal/dto"
	"github.com/studyquest/backend/internal/service"
)

type AdminController struct {
	adminService service.AdminService
}

func NewAdminController(adminService service.AdminService) *AdminController {
	return &AdminController{adminService: adminService}
}

// GetAllAdmins godoc
// @Summary (Admin) List all administrators
// @Tags Admin
// @Produce json
// @Success 200 {array} dto.AdminResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/admins [get]
func (ctrl *AdminController) GetAllAdmins(c *gin.Context) {
	admins, err := ctrl.adminService.GetAllAdmins()
	if err != nil {
		writeError(c, err, "Failed to retrieve admins")
		return
	}
	c.JSON(http.StatusOK, admins)
}

// CreateAdmin godoc
// @Summary (Admin) Grant the admin role to a user
// @Description Creates the admin detail row with the user's email denormalized onto it.
// @Tags Admin
// @Accept json
// @Produce json
// @Param admin body dto.AdminCreateDTO true "User ID to promote"
// @Success 201 {object} dto.AdminResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /admin/admins [post]
func (ctrl *AdminController) CreateAdmin(c *gin.Context) {
	var req dto.AdminCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	admin, err := ctrl.adminService.CreateAdmin(req)
	if err != nil {
		log.Error().Err(err).Uint("userID", req.UserID).Msg("Failed to create admin")
		writeError(c, err, "Failed to create admin")
		return
	}
	c.JSON(http.StatusCreated, admin)
}
