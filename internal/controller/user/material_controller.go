package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/studyquest/backend/internal/dto"
	"github.com/studyquest/backend/internal/service"
)

type MaterialController struct {
	materialService service.MaterialService
}

func NewMaterialController(materialService service.MaterialService) *MaterialController {
	return &MaterialController{materialService: materialService}
}

// CreateMaterial godoc
// @Summary Publish a learning material
// @Description File payload arrives base64-encoded and is stored as raw bytes.
// @Tags Materials
// @Accept json
// @Produce json
// @Param material body dto.MaterialCreateDTO true "Material data"
// @Success 201 {object} dto.MaterialResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or file encoding"
// @Router /materials [post]
func (ctrl *MaterialController) CreateMaterial(c *gin.Context) {
	var req dto.MaterialCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	material, err := ctrl.materialService.CreateMaterial(req)
	if err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Failed to create material")
		writeError(c, err, "Failed to create material")
		return
	}
	c.JSON(http.StatusCreated, material)
}

// GetAllMaterials godoc
// @Summary List materials
// @Description Without a subject filter, returns metadata only. With 'subject', includes the file payload re-encoded to base64.
// @Tags Materials
// @Produce json
// @Param subject query string false "Filter by subject"
// @Success 200 {array} dto.MaterialResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /materials [get]
func (ctrl *MaterialController) GetAllMaterials(c *gin.Context) {
	var (
		materials []dto.MaterialResponseDTO
		err       error
	)
	if subject := c.Query("subject"); subject != "" {
		materials, err = ctrl.materialService.GetMaterialsBySubject(subject)
	} else {
		materials, err = ctrl.materialService.GetAllMaterials()
	}
	if err != nil {
		writeError(c, err, "Failed to retrieve materials")
		return
	}
	c.JSON(http.StatusOK, materials)
}

// GetMaterialPDF godoc
// @Summary Stream a material's file
// @Description Raw stored bytes served as application/pdf.
// @Tags Materials
// @Produce application/pdf
// @Param id path int true "Material ID"
// @Success 200 {file} binary
// @Failure 404 {object} dto.ErrorResponse "Material or file not found"
// @Router /materials/{id}/pdf [get]
func (ctrl *MaterialController) GetMaterialPDF(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	file, err := ctrl.materialService.GetMaterialFile(id)
	if err != nil {
		writeError(c, err, "Failed to retrieve material file")
		return
	}
	c.Data(http.StatusOK, "application/pdf", file)
}

// UpsertProgress godoc
// @Summary Record a user's progress on a material
// @Tags Materials
// @Accept json
// @Produce json
// @Param progress body dto.MaterialProgressUpsertDTO true "Progress data"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Material not found"
// @Router /progress/materials [post]
func (ctrl *MaterialController) UpsertProgress(c *gin.Context) {
	var req dto.MaterialProgressUpsertDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	if err := ctrl.materialService.UpsertProgress(req); err != nil {
		writeError(c, err, "Failed to record progress")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Progress recorded"})
}

// GetProgressByUser godoc
// @Summary List a user's material progress
// @Tags Materials
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} dto.MaterialProgressEntryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{id}/materials/progress [get]
func (ctrl *MaterialController) GetProgressByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	progress, err := ctrl.materialService.GetProgressByUser(userID)
	if err != nil {
		writeError(c, err, "Failed to retrieve progress")
		return
	}
	c.JSON(http.StatusOK, progress)
}
