package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/services"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/dto"
)

// vehicleHandler handles the tenant's vehicle fleet.
type vehicleHandler struct {
	vehicleService portssvc.VehicleSvcFacade
}

func newVehicleHandler(vs portssvc.VehicleSvcFacade) *vehicleHandler {
	return &vehicleHandler{vehicleService: vs}
}

// registerVehicleRoutes registers all vehicle routes.
func registerVehicleRoutes(rg *gin.RouterGroup, vs portssvc.VehicleSvcFacade) {
	h := newVehicleHandler(vs)

	vehicles := rg.Group("/vehicles")
	{
		vehicles.GET("", h.listVehicles)
		vehicles.GET("/:id", h.getVehicle)
		vehicles.POST("", h.createVehicle)
		vehicles.PUT("/:id", h.updateVehicle)
		vehicles.DELETE("/:id", h.deleteVehicle)
	}
}

// listVehicles godoc
// @Summary List vehicles
// @Tags vehicles
// @Produce json
// @Success 200 {array} dto.VehicleResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /vehicles [get]
func (h *vehicleHandler) listVehicles(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}

	vehicles, err := h.vehicleService.ListVehicles(c.Request.Context(), auth)
	if err != nil {
		respondError(c, err, "Failed to list vehicles")
		return
	}
	c.JSON(http.StatusOK, dto.ToVehicleListResponse(vehicles))
}

// getVehicle godoc
// @Summary Get a vehicle
// @Tags vehicles
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} dto.VehicleResponse
// @Failure 404 {object} ErrorResponse "Vehicle not found"
// @Security BearerAuth
// @Router /vehicles/{id} [get]
func (h *vehicleHandler) getVehicle(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}

	vehicle, err := h.vehicleService.GetVehicleByID(c.Request.Context(), auth, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve vehicle")
		return
	}
	c.JSON(http.StatusOK, dto.ToVehicleResponse(vehicle))
}

// createVehicle godoc
// @Summary Register a vehicle
// @Description Registers a fleet vehicle. The plate is normalized and unique per tenant. Admin or operaciones.
// @Tags vehicles
// @Accept json
// @Produce json
// @Param vehicle body dto.CreateVehicleRequest true "Vehicle details"
// @Success 201 {object} dto.VehicleResponse
// @Failure 400 {object} ErrorResponse "Missing or duplicate plate"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /vehicles [post]
func (h *vehicleHandler) createVehicle(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	var req dto.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	vehicle, err := h.vehicleService.CreateVehicle(c.Request.Context(), auth, req)
	if err != nil {
		respondError(c, err, "Failed to create vehicle")
		return
	}
	c.JSON(http.StatusCreated, dto.ToVehicleResponse(vehicle))
}

// updateVehicle godoc
// @Summary Update a vehicle
// @Tags vehicles
// @Accept json
// @Produce json
// @Param id path string true "Vehicle ID"
// @Param vehicle body dto.UpdateVehicleRequest true "Fields to update"
// @Success 200 {object} dto.VehicleResponse
// @Failure 404 {object} ErrorResponse "Vehicle not found"
// @Security BearerAuth
// @Router /vehicles/{id} [put]
func (h *vehicleHandler) updateVehicle(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	var req dto.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	vehicle, err := h.vehicleService.UpdateVehicle(c.Request.Context(), auth, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update vehicle")
		return
	}
	c.JSON(http.StatusOK, dto.ToVehicleResponse(vehicle))
}

// deleteVehicle godoc
// @Summary Delete a vehicle
// @Tags vehicles
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Vehicle not found"
// @Security BearerAuth
// @Router /vehicles/{id} [delete]
func (h *vehicleHandler) deleteVehicle(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}

	if err := h.vehicleService.DeleteVehicle(c.Request.Context(), auth, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete vehicle")
		return
	}
	c.Status(http.StatusNoContent)
}
