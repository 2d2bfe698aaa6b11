package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/services"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/dto"
)

// payrollHandler handles monthly payroll batches. Admin only throughout.
type payrollHandler struct {
	payrollService portssvc.PayrollSvcFacade
}

func newPayrollHandler(ps portssvc.PayrollSvcFacade) *payrollHandler {
	return &payrollHandler{payrollService: ps}
}

// registerPayrollRoutes registers all payroll routes.
func registerPayrollRoutes(rg *gin.RouterGroup, ps portssvc.PayrollSvcFacade) {
	h := newPayrollHandler(ps)

	payroll := rg.Group("/payroll-periods")
	{
		payroll.GET("", h.listPeriods)
		payroll.GET("/:id", h.getPeriod)
		payroll.POST("", h.openPeriod)
		payroll.POST("/:id/receipts", h.generateReceipts)
		payroll.GET("/:id/receipts", h.listReceipts)
		payroll.POST("/:id/close", h.closePeriod)
		payroll.GET("/:id/receipts/:receiptID/pdf", h.receiptPDF)
	}
}

// listPeriods godoc
// @Summary List payroll periods
// @Tags payroll
// @Produce json
// @Success 200 {array} dto.PayrollPeriodResponse
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /payroll-periods [get]
func (h *payrollHandler) listPeriods(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}

	periods, err := h.payrollService.ListPeriods(c.Request.Context(), auth)
	if err != nil {
		respondError(c, err, "Failed to list payroll periods")
		return
	}
	c.JSON(http.StatusOK, dto.ToPayrollPeriodListResponse(periods))
}

// getPeriod godoc
// @Summary Get a payroll period
// @Tags payroll
// @Produce json
// @Param id path string true "Payroll period ID"
// @Success 200 {object} dto.PayrollPeriodResponse
// @Failure 404 {object} ErrorResponse "Period not found"
// @Security BearerAuth
// @Router /payroll-periods/{id} [get]
func (h *payrollHandler) getPeriod(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}

	period, err := h.payrollService.GetPeriodByID(c.Request.Context(), auth, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve payroll period")
		return
	}
	c.JSON(http.StatusOK, dto.ToPayrollPeriodResponse(period))
}

// openPeriod godoc
// @Summary Open a payroll period
// @Description Opens a monthly batch; fails when one exists for the month
// @Tags payroll
// @Accept json
// @Produce json
// @Param period body dto.OpenPayrollPeriodRequest true "Year and month"
// @Success 201 {object} dto.PayrollPeriodResponse
// @Failure 400 {object} ErrorResponse "Duplicate period"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /payroll-periods [post]
func (h *payrollHandler) openPeriod(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	var req dto.OpenPayrollPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	period, err := h.payrollService.OpenPeriod(c.Request.Context(), auth, req)
	if err != nil {
		respondError(c, err, "Failed to open payroll period")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPayrollPeriodResponse(period))
}

// generateReceipts godoc
// @Summary Generate the receipts of a period
// @Description Recomputes all receipts from active collaborators and assignment extras, replacing earlier ones
// @Tags payroll
// @Accept json
// @Produce json
// @Param id path string true "Payroll period ID"
// @Param deductions body dto.GenerateReceiptsRequest true "Deductions per collaborator"
// @Success 200 {array} dto.PaymentReceiptResponse
// @Failure 400 {object} ErrorResponse "Period is closed"
// @Failure 404 {object} ErrorResponse "Period not found"
// @Security BearerAuth
// @Router /payroll-periods/{id}/receipts [post]
func (h *payrollHandler) generateReceipts(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	var req dto.GenerateReceiptsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	receipts, err := h.payrollService.GenerateReceipts(c.Request.Context(), auth, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to generate receipts")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentReceiptListResponse(receipts))
}

// listReceipts godoc
// @Summary List the receipts of a period
// @Tags payroll
// @Produce json
// @Param id path string true "Payroll period ID"
// @Success 200 {array} dto.PaymentReceiptResponse
// @Failure 404 {object} ErrorResponse "Period not found"
// @Security BearerAuth
// @Router /payroll-periods/{id}/receipts [get]
func (h *payrollHandler) listReceipts(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}

	receipts, err := h.payrollService.ListReceipts(c.Request.Context(), auth, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list receipts")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentReceiptListResponse(receipts))
}

// closePeriod godoc
// @Summary Close a payroll period
// @Description Freezes the period; closed periods reject regeneration
// @Tags payroll
// @Produce json
// @Param id path string true "Payroll period ID"
// @Success 200 {object} dto.PayrollPeriodResponse
// @Failure 400 {object} ErrorResponse "Already closed"
// @Failure 404 {object} ErrorResponse "Period not found"
// @Security BearerAuth
// @Router /payroll-periods/{id}/close [post]
func (h *payrollHandler) closePeriod(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}

	period, err := h.payrollService.ClosePeriod(c.Request.Context(), auth, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to close payroll period")
		return
	}
	c.JSON(http.StatusOK, dto.ToPayrollPeriodResponse(period))
}

// receiptPDF godoc
// @Summary Download a receipt as PDF
// @Tags payroll
// @Produce application/pdf
// @Param id path string true "Payroll period ID"
// @Param receiptID path string true "Receipt ID"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse "Receipt not found"
// @Security BearerAuth
// @Router /payroll-periods/{id}/receipts/{receiptID}/pdf [get]
func (h *payrollHandler) receiptPDF(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}

	pdf, err := h.payrollService.ReceiptPDF(c.Request.Context(), auth, c.Param("id"), c.Param("receiptID"))
	if err != nil {
		respondError(c, err, "Failed to render receipt PDF")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="liquidacion.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
