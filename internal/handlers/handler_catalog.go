package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/services"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/dto"
)

// catalogHandler handles the reference catalogs: plans, coffins/urns,
// cemeteries and wake rooms. Reads are open; writes are admin only.
type catalogHandler struct {
	catalogService portssvc.CatalogSvcFacade
}

func newCatalogHandler(cs portssvc.CatalogSvcFacade) *catalogHandler {
	return &catalogHandler{catalogService: cs}
}

// registerCatalogRoutes registers all catalog routes.
func registerCatalogRoutes(rg *gin.RouterGroup, cs portssvc.CatalogSvcFacade) {
	h := newCatalogHandler(cs)

	plans := rg.Group("/plans")
	{
		plans.GET("", h.listPlans)
		plans.GET("/:id", h.getPlan)
		plans.POST("", h.createPlan)
		plans.PUT("/:id", h.updatePlan)
		plans.DELETE("/:id", h.deletePlan)
	}

	coffinUrns := rg.Group("/coffin-urns")
	{
		coffinUrns.GET("", h.listCoffinUrns)
		coffinUrns.GET("/:id", h.getCoffinUrn)
		coffinUrns.POST("", h.createCoffinUrn)
		coffinUrns.PUT("/:id", h.updateCoffinUrn)
		coffinUrns.DELETE("/:id", h.deleteCoffinUrn)
	}

	cemeteries := rg.Group("/cemeteries")
	{
		cemeteries.GET("", h.listCemeteries)
		cemeteries.GET("/:id", h.getCemetery)
		cemeteries.POST("", h.createCemetery)
		cemeteries.PUT("/:id", h.updateCemetery)
		cemeteries.DELETE("/:id", h.deleteCemetery)
	}

	rooms := rg.Group("/rooms")
	{
		rooms.GET("", h.listRooms)
		rooms.GET("/:id", h.getRoom)
		rooms.POST("", h.createRoom)
		rooms.PUT("/:id", h.updateRoom)
		rooms.DELETE("/:id", h.deleteRoom)
	}
}

// listPlans godoc
// @Summary List service plans
// @Tags catalog
// @Produce json
// @Success 200 {array} dto.PlanResponse
// @Security BearerAuth
// @Router /plans [get]
func (h *catalogHandler) listPlans(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	plans, err := h.catalogService.ListPlans(c.Request.Context(), auth)
	if err != nil {
		respondError(c, err, "Failed to list plans")
		return
	}
	c.JSON(http.StatusOK, dto.ToPlanListResponse(plans))
}

// getPlan godoc
// @Summary Get a service plan
// @Tags catalog
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} dto.PlanResponse
// @Failure 404 {object} ErrorResponse "Plan not found"
// @Security BearerAuth
// @Router /plans/{id} [get]
func (h *catalogHandler) getPlan(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	plan, err := h.catalogService.GetPlanByID(c.Request.Context(), auth, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve plan")
		return
	}
	c.JSON(http.StatusOK, dto.ToPlanResponse(plan))
}

// createPlan godoc
// @Summary Create a service plan
// @Tags catalog
// @Accept json
// @Produce json
// @Param plan body dto.CreatePlanRequest true "Plan details"
// @Success 201 {object} dto.PlanResponse
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /plans [post]
func (h *catalogHandler) createPlan(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	var req dto.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	plan, err := h.catalogService.CreatePlan(c.Request.Context(), auth, req)
	if err != nil {
		respondError(c, err, "Failed to create plan")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPlanResponse(plan))
}

// updatePlan godoc
// @Summary Update a service plan
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "Plan ID"
// @Param plan body dto.UpdatePlanRequest true "Fields to update"
// @Success 200 {object} dto.PlanResponse
// @Failure 404 {object} ErrorResponse "Plan not found"
// @Security BearerAuth
// @Router /plans/{id} [put]
func (h *catalogHandler) updatePlan(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	var req dto.UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	plan, err := h.catalogService.UpdatePlan(c.Request.Context(), auth, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update plan")
		return
	}
	c.JSON(http.StatusOK, dto.ToPlanResponse(plan))
}

// deletePlan godoc
// @Summary Delete a service plan
// @Description Hard delete; fails with a validation error while services reference the plan
// @Tags catalog
// @Produce json
// @Param id path string true "Plan ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Plan in use"
// @Security BearerAuth
// @Router /plans/{id} [delete]
func (h *catalogHandler) deletePlan(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	if err := h.catalogService.DeletePlan(c.Request.Context(), auth, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete plan")
		return
	}
	c.Status(http.StatusNoContent)
}

// listCoffinUrns godoc
// @Summary List coffin and urn products
// @Tags catalog
// @Produce json
// @Success 200 {array} dto.CoffinUrnResponse
// @Security BearerAuth
// @Router /coffin-urns [get]
func (h *catalogHandler) listCoffinUrns(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	items, err := h.catalogService.ListCoffinUrns(c.Request.Context(), auth)
	if err != nil {
		respondError(c, err, "Failed to list coffin/urn products")
		return
	}
	c.JSON(http.StatusOK, dto.ToCoffinUrnListResponse(items))
}

// getCoffinUrn godoc
// @Summary Get a coffin or urn product
// @Tags catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} dto.CoffinUrnResponse
// @Failure 404 {object} ErrorResponse "Product not found"
// @Security BearerAuth
// @Router /coffin-urns/{id} [get]
func (h *catalogHandler) getCoffinUrn(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	item, err := h.catalogService.GetCoffinUrnByID(c.Request.Context(), auth, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve product")
		return
	}
	c.JSON(http.StatusOK, dto.ToCoffinUrnResponse(item))
}

// createCoffinUrn godoc
// @Summary Create a coffin or urn product
// @Tags catalog
// @Accept json
// @Produce json
// @Param product body dto.CreateCoffinUrnRequest true "Product details"
// @Success 201 {object} dto.CoffinUrnResponse
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /coffin-urns [post]
func (h *catalogHandler) createCoffinUrn(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	var req dto.CreateCoffinUrnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	item, err := h.catalogService.CreateCoffinUrn(c.Request.Context(), auth, req)
	if err != nil {
		respondError(c, err, "Failed to create product")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCoffinUrnResponse(item))
}

// updateCoffinUrn godoc
// @Summary Update a coffin or urn product
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body dto.UpdateCoffinUrnRequest true "Fields to update"
// @Success 200 {object} dto.CoffinUrnResponse
// @Failure 404 {object} ErrorResponse "Product not found"
// @Security BearerAuth
// @Router /coffin-urns/{id} [put]
func (h *catalogHandler) updateCoffinUrn(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	var req dto.UpdateCoffinUrnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	item, err := h.catalogService.UpdateCoffinUrn(c.Request.Context(), auth, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update product")
		return
	}
	c.JSON(http.StatusOK, dto.ToCoffinUrnResponse(item))
}

// deleteCoffinUrn godoc
// @Summary Delete a coffin or urn product
// @Tags catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Product in use"
// @Security BearerAuth
// @Router /coffin-urns/{id} [delete]
func (h *catalogHandler) deleteCoffinUrn(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	if err := h.catalogService.DeleteCoffinUrn(c.Request.Context(), auth, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete product")
		return
	}
	c.Status(http.StatusNoContent)
}

// listCemeteries godoc
// @Summary List cemeteries and crematoriums
// @Tags catalog
// @Produce json
// @Success 200 {array} dto.CemeteryResponse
// @Security BearerAuth
// @Router /cemeteries [get]
func (h *catalogHandler) listCemeteries(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	sites, err := h.catalogService.ListCemeteries(c.Request.Context(), auth)
	if err != nil {
		respondError(c, err, "Failed to list cemeteries")
		return
	}
	c.JSON(http.StatusOK, dto.ToCemeteryListResponse(sites))
}

// getCemetery godoc
// @Summary Get a cemetery or crematorium
// @Tags catalog
// @Produce json
// @Param id path string true "Cemetery ID"
// @Success 200 {object} dto.CemeteryResponse
// @Failure 404 {object} ErrorResponse "Cemetery not found"
// @Security BearerAuth
// @Router /cemeteries/{id} [get]
func (h *catalogHandler) getCemetery(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	site, err := h.catalogService.GetCemeteryByID(c.Request.Context(), auth, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve cemetery")
		return
	}
	c.JSON(http.StatusOK, dto.ToCemeteryResponse(site))
}

// createCemetery godoc
// @Summary Register a cemetery or crematorium
// @Tags catalog
// @Accept json
// @Produce json
// @Param site body dto.CreateCemeteryRequest true "Site details"
// @Success 201 {object} dto.CemeteryResponse
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /cemeteries [post]
func (h *catalogHandler) createCemetery(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	var req dto.CreateCemeteryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	site, err := h.catalogService.CreateCemetery(c.Request.Context(), auth, req)
	if err != nil {
		respondError(c, err, "Failed to create cemetery")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCemeteryResponse(site))
}

// updateCemetery godoc
// @Summary Update a cemetery or crematorium
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "Cemetery ID"
// @Param site body dto.UpdateCemeteryRequest true "Fields to update"
// @Success 200 {object} dto.CemeteryResponse
// @Failure 404 {object} ErrorResponse "Cemetery not found"
// @Security BearerAuth
// @Router /cemeteries/{id} [put]
func (h *catalogHandler) updateCemetery(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	var req dto.UpdateCemeteryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	site, err := h.catalogService.UpdateCemetery(c.Request.Context(), auth, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update cemetery")
		return
	}
	c.JSON(http.StatusOK, dto.ToCemeteryResponse(site))
}

// deleteCemetery godoc
// @Summary Delete a cemetery or crematorium
// @Tags catalog
// @Produce json
// @Param id path string true "Cemetery ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Site in use"
// @Security BearerAuth
// @Router /cemeteries/{id} [delete]
func (h *catalogHandler) deleteCemetery(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	if err := h.catalogService.DeleteCemetery(c.Request.Context(), auth, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete cemetery")
		return
	}
	c.Status(http.StatusNoContent)
}

// listRooms godoc
// @Summary List wake rooms
// @Tags catalog
// @Produce json
// @Success 200 {array} dto.RoomResponse
// @Security BearerAuth
// @Router /rooms [get]
func (h *catalogHandler) listRooms(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	rooms, err := h.catalogService.ListRooms(c.Request.Context(), auth)
	if err != nil {
		respondError(c, err, "Failed to list rooms")
		return
	}
	c.JSON(http.StatusOK, dto.ToRoomListResponse(rooms))
}

// getRoom godoc
// @Summary Get a wake room
// @Tags catalog
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} dto.RoomResponse
// @Failure 404 {object} ErrorResponse "Room not found"
// @Security BearerAuth
// @Router /rooms/{id} [get]
func (h *catalogHandler) getRoom(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	room, err := h.catalogService.GetRoomByID(c.Request.Context(), auth, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve room")
		return
	}
	c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

// createRoom godoc
// @Summary Create a wake room
// @Tags catalog
// @Accept json
// @Produce json
// @Param room body dto.CreateRoomRequest true "Room details"
// @Success 201 {object} dto.RoomResponse
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /rooms [post]
func (h *catalogHandler) createRoom(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	room, err := h.catalogService.CreateRoom(c.Request.Context(), auth, req)
	if err != nil {
		respondError(c, err, "Failed to create room")
		return
	}
	c.JSON(http.StatusCreated, dto.ToRoomResponse(room))
}

// updateRoom godoc
// @Summary Update a wake room
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param room body dto.UpdateRoomRequest true "Fields to update"
// @Success 200 {object} dto.RoomResponse
// @Failure 404 {object} ErrorResponse "Room not found"
// @Security BearerAuth
// @Router /rooms/{id} [put]
func (h *catalogHandler) updateRoom(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	room, err := h.catalogService.UpdateRoom(c.Request.Context(), auth, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update room")
		return
	}
	c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

// deleteRoom godoc
// @Summary Delete a wake room
// @Tags catalog
// @Produce json
// @Param id path string true "Room ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Room in use"
// @Security BearerAuth
// @Router /rooms/{id} [delete]
func (h *catalogHandler) deleteRoom(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	if err := h.catalogService.DeleteRoom(c.Request.Context(), auth, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete room")
		return
	}
	c.Status(http.StatusNoContent)
}
