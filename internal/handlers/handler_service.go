package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/services"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/dto"
)

// serviceHandler handles funeral cases and their collaborator assignments.
type serviceHandler struct {
	caseService portssvc.CaseSvcFacade
}

func newServiceHandler(cs portssvc.CaseSvcFacade) *serviceHandler {
	return &serviceHandler{caseService: cs}
}

// registerServiceRoutes registers all funeral case routes.
func registerServiceRoutes(rg *gin.RouterGroup, caseService portssvc.CaseSvcFacade) {
	h := newServiceHandler(caseService)

	services := rg.Group("/services")
	{
		services.GET("", h.listServices)
		services.GET("/:id", h.getService)
		services.POST("", h.createService)
		services.PUT("/:id", h.updateService)
		services.DELETE("/:id", h.deleteService) // Admin only

		services.GET("/:id/assignments", h.listAssignments)
		services.POST("/:id/assignments", h.assignCollaborator)
		services.DELETE("/:id/assignments/:assignmentID", h.removeAssignment)
	}
}

// listServices godoc
// @Summary List funeral cases
// @Description Retrieves the tenant's cases, newest first, narrowed by the query
// @Tags services
// @Produce json
// @Param estado query string false "Lifecycle state"
// @Param tipo query string false "Service type"
// @Param branchID query string false "Branch ID"
// @Param desde query string false "Creation date lower bound (YYYY-MM-DD)"
// @Param hasta query string false "Creation date upper bound (YYYY-MM-DD)"
// @Param buscar query string false "Free text over deceased and responsible names"
// @Success 200 {array} dto.ServiceResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /services [get]
func (h *serviceHandler) listServices(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	var query dto.ListServicesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}

	services, err := h.caseService.ListServices(c.Request.Context(), auth, query.ToServiceFilter())
	if err != nil {
		respondError(c, err, "Failed to list services")
		return
	}
	c.JSON(http.StatusOK, dto.ToServiceListResponse(services))
}

// getService godoc
// @Summary Get a funeral case
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} dto.ServiceResponse
// @Failure 404 {object} ErrorResponse "Service not found"
// @Security BearerAuth
// @Router /services/{id} [get]
func (h *serviceHandler) getService(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}

	service, err := h.caseService.GetServiceByID(c.Request.Context(), auth, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve service")
		return
	}
	c.JSON(http.StatusOK, dto.ToServiceResponse(service))
}

// createService godoc
// @Summary Open a funeral case
// @Description Opens a case in borrador state and assigns the tenant's next correlative number
// @Tags services
// @Accept json
// @Produce json
// @Param service body dto.CreateServiceRequest true "Case details"
// @Success 201 {object} dto.ServiceResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Forbidden or no branch access"
// @Security BearerAuth
// @Router /services [post]
func (h *serviceHandler) createService(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	service, err := h.caseService.CreateService(c.Request.Context(), auth, req)
	if err != nil {
		respondError(c, err, "Failed to create service")
		return
	}
	c.JSON(http.StatusCreated, dto.ToServiceResponse(service))
}

// updateService godoc
// @Summary Update a funeral case
// @Description Applies a partial update; estado changes are validated against the known states
// @Tags services
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param service body dto.UpdateServiceRequest true "Fields to update"
// @Success 200 {object} dto.ServiceResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Service not found"
// @Security BearerAuth
// @Router /services/{id} [put]
func (h *serviceHandler) updateService(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	var req dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	service, err := h.caseService.UpdateService(c.Request.Context(), auth, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update service")
		return
	}
	c.JSON(http.StatusOK, dto.ToServiceResponse(service))
}

// deleteService godoc
// @Summary Delete a funeral case
// @Description Removes a case and its dependent rows. Admin only.
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Service not found"
// @Security BearerAuth
// @Router /services/{id} [delete]
func (h *serviceHandler) deleteService(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}

	if err := h.caseService.DeleteService(c.Request.Context(), auth, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete service")
		return
	}
	c.Status(http.StatusNoContent)
}

// listAssignments godoc
// @Summary List the assignments of a case
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {array} dto.AssignmentResponse
// @Failure 404 {object} ErrorResponse "Service not found"
// @Security BearerAuth
// @Router /services/{id}/assignments [get]
func (h *serviceHandler) listAssignments(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}

	assignments, err := h.caseService.ListAssignments(c.Request.Context(), auth, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list assignments")
		return
	}
	c.JSON(http.StatusOK, dto.ToAssignmentListResponse(assignments))
}

// assignCollaborator godoc
// @Summary Assign a collaborator to a case
// @Description Links an active collaborator to the case with an optional extra pay agreement
// @Tags services
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param assignment body dto.CreateAssignmentRequest true "Assignment details"
// @Success 201 {object} dto.AssignmentResponse
// @Failure 400 {object} ErrorResponse "Invalid input or inactive collaborator"
// @Failure 404 {object} ErrorResponse "Service not found"
// @Security BearerAuth
// @Router /services/{id}/assignments [post]
func (h *serviceHandler) assignCollaborator(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	var req dto.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	assignment, err := h.caseService.AssignCollaborator(c.Request.Context(), auth, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to assign collaborator")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAssignmentResponse(assignment))
}

// removeAssignment godoc
// @Summary Remove an assignment from a case
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Param assignmentID path string true "Assignment ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Service or assignment not found"
// @Security BearerAuth
// @Router /services/{id}/assignments/{assignmentID} [delete]
func (h *serviceHandler) removeAssignment(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}

	if err := h.caseService.RemoveAssignment(c.Request.Context(), auth, c.Param("id"), c.Param("assignmentID")); err != nil {
		respondError(c, err, "Failed to remove assignment")
		return
	}
	c.Status(http.StatusNoContent)
}
