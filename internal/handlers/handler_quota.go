package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/services"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/dto"
)

// quotaHandler handles mortuary quota claims.
type quotaHandler struct {
	quotaService portssvc.QuotaSvcFacade
}

func newQuotaHandler(qs portssvc.QuotaSvcFacade) *quotaHandler {
	return &quotaHandler{quotaService: qs}
}

// registerQuotaRoutes registers all quota routes.
func registerQuotaRoutes(rg *gin.RouterGroup, qs portssvc.QuotaSvcFacade) {
	h := newQuotaHandler(qs)

	quotas := rg.Group("/quotas")
	{
		quotas.GET("", h.listQuotas)
		quotas.GET("/:id", h.getQuota)
		quotas.POST("", h.createQuota)
		quotas.PUT("/:id", h.updateQuota)
		quotas.DELETE("/:id", h.deleteQuota) // Admin only
	}
}

// listQuotas godoc
// @Summary List mortuary quota claims
// @Tags quotas
// @Produce json
// @Param serviceID query string false "Service ID"
// @Param estado query string false "Claim state"
// @Success 200 {array} dto.QuotaResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /quotas [get]
func (h *quotaHandler) listQuotas(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	var query dto.ListQuotasQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}

	quotas, err := h.quotaService.ListQuotas(c.Request.Context(), auth, query.ToQuotaFilter())
	if err != nil {
		respondError(c, err, "Failed to list quotas")
		return
	}
	c.JSON(http.StatusOK, dto.ToQuotaListResponse(quotas))
}

// getQuota godoc
// @Summary Get a quota claim
// @Tags quotas
// @Produce json
// @Param id path string true "Quota ID"
// @Success 200 {object} dto.QuotaResponse
// @Failure 404 {object} ErrorResponse "Quota not found"
// @Security BearerAuth
// @Router /quotas/{id} [get]
func (h *quotaHandler) getQuota(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}

	quota, err := h.quotaService.GetQuotaByID(c.Request.Context(), auth, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve quota")
		return
	}
	c.JSON(http.StatusOK, dto.ToQuotaResponse(quota))
}

// createQuota godoc
// @Summary File a quota claim
// @Description Files a claim against a case; it starts in en_preparacion
// @Tags quotas
// @Accept json
// @Produce json
// @Param quota body dto.CreateQuotaRequest true "Claim details"
// @Success 201 {object} dto.QuotaResponse
// @Failure 400 {object} ErrorResponse "Invalid amount"
// @Failure 404 {object} ErrorResponse "Service not found"
// @Security BearerAuth
// @Router /quotas [post]
func (h *quotaHandler) createQuota(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	var req dto.CreateQuotaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	quota, err := h.quotaService.CreateQuota(c.Request.Context(), auth, req)
	if err != nil {
		respondError(c, err, "Failed to create quota")
		return
	}
	c.JSON(http.StatusCreated, dto.ToQuotaResponse(quota))
}

// updateQuota godoc
// @Summary Update a quota claim
// @Description Updates a claim; entering ingresada stamps FiledAt and terminal states stamp ResolvedAt
// @Tags quotas
// @Accept json
// @Produce json
// @Param id path string true "Quota ID"
// @Param quota body dto.UpdateQuotaRequest true "Fields to update"
// @Success 200 {object} dto.QuotaResponse
// @Failure 400 {object} ErrorResponse "Unknown state"
// @Failure 404 {object} ErrorResponse "Quota not found"
// @Security BearerAuth
// @Router /quotas/{id} [put]
func (h *quotaHandler) updateQuota(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	var req dto.UpdateQuotaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	quota, err := h.quotaService.UpdateQuota(c.Request.Context(), auth, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update quota")
		return
	}
	c.JSON(http.StatusOK, dto.ToQuotaResponse(quota))
}

// deleteQuota godoc
// @Summary Delete a quota claim
// @Description Removes a claim. Admin only.
// @Tags quotas
// @Produce json
// @Param id path string true "Quota ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Quota not found"
// @Security BearerAuth
// @Router /quotas/{id} [delete]
func (h *quotaHandler) deleteQuota(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}

	if err := h.quotaService.DeleteQuota(c.Request.Context(), auth, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete quota")
		return
	}
	c.Status(http.StatusNoContent)
}
