package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/services"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/dto"
)

// collaboratorHandler handles the tenant's assignable staff.
type collaboratorHandler struct {
	collaboratorService portssvc.CollaboratorSvcFacade
}

func newCollaboratorHandler(cs portssvc.CollaboratorSvcFacade) *collaboratorHandler {
	return &collaboratorHandler{collaboratorService: cs}
}

// registerCollaboratorRoutes registers all collaborator routes.
func registerCollaboratorRoutes(rg *gin.RouterGroup, cs portssvc.CollaboratorSvcFacade) {
	h := newCollaboratorHandler(cs)

	collaborators := rg.Group("/collaborators")
	{
		collaborators.GET("", h.listCollaborators)
		collaborators.GET("/:id", h.getCollaborator)
		collaborators.POST("", h.createCollaborator)
		collaborators.PUT("/:id", h.updateCollaborator)
		collaborators.DELETE("/:id", h.deleteCollaborator) // Soft delete
	}
}

// listCollaborators godoc
// @Summary List collaborators
// @Tags collaborators
// @Produce json
// @Param branchID query string false "Branch ID"
// @Param tipoContrato query string false "Contract type"
// @Param buscar query string false "Free text over name and RUT"
// @Param includeInactive query bool false "Include deactivated collaborators"
// @Success 200 {array} dto.CollaboratorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /collaborators [get]
func (h *collaboratorHandler) listCollaborators(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	var query dto.ListCollaboratorsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}

	collaborators, err := h.collaboratorService.ListCollaborators(c.Request.Context(), auth, query.ToCollaboratorFilter())
	if err != nil {
		respondError(c, err, "Failed to list collaborators")
		return
	}
	c.JSON(http.StatusOK, dto.ToCollaboratorListResponse(collaborators))
}

// getCollaborator godoc
// @Summary Get a collaborator
// @Tags collaborators
// @Produce json
// @Param id path string true "Collaborator ID"
// @Success 200 {object} dto.CollaboratorResponse
// @Failure 404 {object} ErrorResponse "Collaborator not found"
// @Security BearerAuth
// @Router /collaborators/{id} [get]
func (h *collaboratorHandler) getCollaborator(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}

	collaborator, err := h.collaboratorService.GetCollaboratorByID(c.Request.Context(), auth, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve collaborator")
		return
	}
	c.JSON(http.StatusOK, dto.ToCollaboratorResponse(collaborator))
}

// createCollaborator godoc
// @Summary Register a collaborator
// @Description Registers assignable staff. The RUT is unique per tenant. Admin or operaciones.
// @Tags collaborators
// @Accept json
// @Produce json
// @Param collaborator body dto.CreateCollaboratorRequest true "Collaborator details"
// @Success 201 {object} dto.CollaboratorResponse
// @Failure 400 {object} ErrorResponse "Invalid RUT or duplicate"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /collaborators [post]
func (h *collaboratorHandler) createCollaborator(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	var req dto.CreateCollaboratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	collaborator, err := h.collaboratorService.CreateCollaborator(c.Request.Context(), auth, req)
	if err != nil {
		respondError(c, err, "Failed to create collaborator")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCollaboratorResponse(collaborator))
}

// updateCollaborator godoc
// @Summary Update a collaborator
// @Tags collaborators
// @Accept json
// @Produce json
// @Param id path string true "Collaborator ID"
// @Param collaborator body dto.UpdateCollaboratorRequest true "Fields to update"
// @Success 200 {object} dto.CollaboratorResponse
// @Failure 404 {object} ErrorResponse "Collaborator not found"
// @Security BearerAuth
// @Router /collaborators/{id} [put]
func (h *collaboratorHandler) updateCollaborator(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	var req dto.UpdateCollaboratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	collaborator, err := h.collaboratorService.UpdateCollaborator(c.Request.Context(), auth, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update collaborator")
		return
	}
	c.JSON(http.StatusOK, dto.ToCollaboratorResponse(collaborator))
}

// deleteCollaborator godoc
// @Summary Deactivate a collaborator
// @Description Marks a collaborator inactive; history on past services is preserved
// @Tags collaborators
// @Produce json
// @Param id path string true "Collaborator ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Collaborator not found"
// @Security BearerAuth
// @Router /collaborators/{id} [delete]
func (h *collaboratorHandler) deleteCollaborator(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}

	if err := h.collaboratorService.DeactivateCollaborator(c.Request.Context(), auth, c.Param("id")); err != nil {
		respondError(c, err, "Failed to deactivate collaborator")
		return
	}
	c.Status(http.StatusNoContent)
}
