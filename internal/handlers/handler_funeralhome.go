package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/services"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/dto"
)

// funeralHomeHandler exposes the caller's own tenant and its branches.
type funeralHomeHandler struct {
	funeralHomeService portssvc.FuneralHomeSvcFacade
	branchService      portssvc.BranchSvcFacade
}

func newFuneralHomeHandler(fs portssvc.FuneralHomeSvcFacade, bs portssvc.BranchSvcFacade) *funeralHomeHandler {
	return &funeralHomeHandler{funeralHomeService: fs, branchService: bs}
}

// registerFuneralHomeRoutes registers tenant and branch routes.
func registerFuneralHomeRoutes(rg *gin.RouterGroup, fs portssvc.FuneralHomeSvcFacade, bs portssvc.BranchSvcFacade) {
	h := newFuneralHomeHandler(fs, bs)

	rg.GET("/funeral-home", h.getFuneralHome)

	branches := rg.Group("/branches")
	{
		branches.GET("", h.listBranches)
		branches.GET("/:id", h.getBranch)
		branches.POST("", h.createBranch)      // Admin only
		branches.PUT("/:id", h.updateBranch)   // Admin only
		branches.DELETE("/:id", h.deleteBranch) // Admin only, soft delete
	}
}

// getFuneralHome godoc
// @Summary Get the caller's funeral home
// @Tags funeral-home
// @Produce json
// @Success 200 {object} domain.FuneralHome
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /funeral-home [get]
func (h *funeralHomeHandler) getFuneralHome(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}

	home, err := h.funeralHomeService.GetFuneralHome(c.Request.Context(), auth)
	if err != nil {
		respondError(c, err, "Failed to retrieve funeral home")
		return
	}
	c.JSON(http.StatusOK, home)
}

// listBranches godoc
// @Summary List branches
// @Tags branches
// @Produce json
// @Success 200 {array} dto.BranchResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /branches [get]
func (h *funeralHomeHandler) listBranches(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}

	branches, err := h.branchService.ListBranches(c.Request.Context(), auth)
	if err != nil {
		respondError(c, err, "Failed to list branches")
		return
	}
	c.JSON(http.StatusOK, dto.ToBranchListResponse(branches))
}

// getBranch godoc
// @Summary Get a branch
// @Tags branches
// @Produce json
// @Param id path string true "Branch ID"
// @Success 200 {object} dto.BranchResponse
// @Failure 404 {object} ErrorResponse "Branch not found"
// @Security BearerAuth
// @Router /branches/{id} [get]
func (h *funeralHomeHandler) getBranch(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}

	branch, err := h.branchService.GetBranchByID(c.Request.Context(), auth, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve branch")
		return
	}
	c.JSON(http.StatusOK, dto.ToBranchResponse(branch))
}

// createBranch godoc
// @Summary Create a branch
// @Description Adds a branch to the caller's funeral home. Admin only.
// @Tags branches
// @Accept json
// @Produce json
// @Param branch body dto.CreateBranchRequest true "Branch details"
// @Success 201 {object} dto.BranchResponse
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /branches [post]
func (h *funeralHomeHandler) createBranch(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	var req dto.CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	branch, err := h.branchService.CreateBranch(c.Request.Context(), auth, req)
	if err != nil {
		respondError(c, err, "Failed to create branch")
		return
	}
	c.JSON(http.StatusCreated, dto.ToBranchResponse(branch))
}

// updateBranch godoc
// @Summary Update a branch
// @Description Updates a branch. Admin only.
// @Tags branches
// @Accept json
// @Produce json
// @Param id path string true "Branch ID"
// @Param branch body dto.UpdateBranchRequest true "Fields to update"
// @Success 200 {object} dto.BranchResponse
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Branch not found"
// @Security BearerAuth
// @Router /branches/{id} [put]
func (h *funeralHomeHandler) updateBranch(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	var req dto.UpdateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	branch, err := h.branchService.UpdateBranch(c.Request.Context(), auth, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update branch")
		return
	}
	c.JSON(http.StatusOK, dto.ToBranchResponse(branch))
}

// deleteBranch godoc
// @Summary Deactivate a branch
// @Description Marks a branch inactive (soft delete). Admin only.
// @Tags branches
// @Produce json
// @Param id path string true "Branch ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Branch not found"
// @Security BearerAuth
// @Router /branches/{id} [delete]
func (h *funeralHomeHandler) deleteBranch(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}

	if err := h.branchService.DeactivateBranch(c.Request.Context(), auth, c.Param("id")); err != nil {
		respondError(c, err, "Failed to deactivate branch")
		return
	}
	c.Status(http.StatusNoContent)
}
