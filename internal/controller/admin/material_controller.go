package admin

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

// UpdateMaterial godoc
// @Summary (Admin) Update a material
// @Description Sparse patch: only fields present in the body are updated.
// @Tags Admin - Materials
// @Accept json
// @Produce json
// @Param id path int true "Material ID"
// @Param material body dto.MaterialUpdateDTO true "Fields to update"
// @Success 200 {object} dto.MaterialResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Material not found"
// @Router /admin/materials/{id} [put]
func (ctrl *MaterialController) UpdateMaterial(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.MaterialUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	material, err := ctrl.materialService.UpdateMaterial(id, req)
	if err != nil {
		log.Error().Err(err).Uint("materialID", id).Msg("Failed to update material")
		writeError(c, err, "Failed to update material")
		return
	}
	c.JSON(http.StatusOK, material)
}

// DeleteMaterial godoc
// @Summary (Admin) Delete a material
// @Tags Admin - Materials
// @Param id path int true "Material ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Material not found"
// @Router /admin/materials/{id} [delete]
func (ctrl *MaterialController) DeleteMaterial(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.materialService.DeleteMaterial(id); err != nil {
		writeError(c, err, "Failed to delete material")
		return
	}
	c.Status(http.StatusNoContent)
}
