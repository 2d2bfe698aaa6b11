package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/services"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/dto"
)

// supplierHandler handles the tenant's external providers.
type supplierHandler struct {
	supplierService portssvc.SupplierSvcFacade
}

func newSupplierHandler(ss portssvc.SupplierSvcFacade) *supplierHandler {
	return &supplierHandler{supplierService: ss}
}

// registerSupplierRoutes registers all supplier routes.
func registerSupplierRoutes(rg *gin.RouterGroup, ss portssvc.SupplierSvcFacade) {
	h := newSupplierHandler(ss)

	suppliers := rg.Group("/suppliers")
	{
		suppliers.GET("", h.listSuppliers)
		suppliers.GET("/:id", h.getSupplier)
		suppliers.POST("", h.createSupplier)
		suppliers.PUT("/:id", h.updateSupplier)
		suppliers.DELETE("/:id", h.deleteSupplier)
	}
}

// listSuppliers godoc
// @Summary List suppliers
// @Tags suppliers
// @Produce json
// @Success 200 {array} dto.SupplierResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /suppliers [get]
func (h *supplierHandler) listSuppliers(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}

	suppliers, err := h.supplierService.ListSuppliers(c.Request.Context(), auth)
	if err != nil {
		respondError(c, err, "Failed to list suppliers")
		return
	}
	c.JSON(http.StatusOK, dto.ToSupplierListResponse(suppliers))
}

// getSupplier godoc
// @Summary Get a supplier
// @Tags suppliers
// @Produce json
// @Param id path string true "Supplier ID"
// @Success 200 {object} dto.SupplierResponse
// @Failure 404 {object} ErrorResponse "Supplier not found"
// @Security BearerAuth
// @Router /suppliers/{id} [get]
func (h *supplierHandler) getSupplier(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}

	supplier, err := h.supplierService.GetSupplierByID(c.Request.Context(), auth, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve supplier")
		return
	}
	c.JSON(http.StatusOK, dto.ToSupplierResponse(supplier))
}

// createSupplier godoc
// @Summary Register a supplier
// @Description Registers an external provider. Admin or operaciones.
// @Tags suppliers
// @Accept json
// @Produce json
// @Param supplier body dto.CreateSupplierRequest true "Supplier details"
// @Success 201 {object} dto.SupplierResponse
// @Failure 400 {object} ErrorResponse "Invalid RUT"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /suppliers [post]
func (h *supplierHandler) createSupplier(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	var req dto.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	supplier, err := h.supplierService.CreateSupplier(c.Request.Context(), auth, req)
	if err != nil {
		respondError(c, err, "Failed to create supplier")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSupplierResponse(supplier))
}

// updateSupplier godoc
// @Summary Update a supplier
// @Tags suppliers
// @Accept json
// @Produce json
// @Param id path string true "Supplier ID"
// @Param supplier body dto.UpdateSupplierRequest true "Fields to update"
// @Success 200 {object} dto.SupplierResponse
// @Failure 404 {object} ErrorResponse "Supplier not found"
// @Security BearerAuth
// @Router /suppliers/{id} [put]
func (h *supplierHandler) updateSupplier(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	var req dto.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	supplier, err := h.supplierService.UpdateSupplier(c.Request.Context(), auth, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update supplier")
		return
	}
	c.JSON(http.StatusOK, dto.ToSupplierResponse(supplier))
}

// deleteSupplier godoc
// @Summary Delete a supplier
// @Tags suppliers
// @Produce json
// @Param id path string true "Supplier ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Supplier not found"
// @Security BearerAuth
// @Router /suppliers/{id} [delete]
func (h *supplierHandler) deleteSupplier(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}

	if err := h.supplierService.DeleteSupplier(c.Request.Context(), auth, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete supplier")
		return
	}
	c.Status(http.StatusNoContent)
}
