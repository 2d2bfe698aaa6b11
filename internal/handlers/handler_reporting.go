package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/services"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/dto"
)

// reportingHandler serves the dashboard and financial rollups.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers all reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, rs portssvc.ReportingSvcFacade) {
	h := newReportingHandler(rs)

	reports := rg.Group("/reports")
	{
		reports.GET("/dashboard", h.dashboard)
		reports.GET("/revenue", h.revenueStats)
		reports.GET("/service-balances", h.serviceBalances)
		reports.GET("/payroll", h.payrollReport) // Admin only
	}
}

// dashboard godoc
// @Summary Tenant dashboard
// @Description KPI rollup for the current and previous month, recomputed per request
// @Tags reports
// @Produce json
// @Success 200 {object} domain.DashboardReport
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/dashboard [get]
func (h *reportingHandler) dashboard(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}

	report, err := h.reportingService.Dashboard(c.Request.Context(), auth, time.Now())
	if err != nil {
		respondError(c, err, "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, report)
}

// revenueStats godoc
// @Summary Revenue statistics
// @Description Billing and collection totals for an inclusive date window; omit both bounds for all time
// @Tags reports
// @Produce json
// @Param desde query string false "Window start (YYYY-MM-DD)"
// @Param hasta query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} domain.RevenueStats
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/revenue [get]
func (h *reportingHandler) revenueStats(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	var query dto.RevenueStatsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}

	stats, err := h.reportingService.RevenueStats(c.Request.Context(), auth, query.Desde, query.Hasta)
	if err != nil {
		respondError(c, err, "Failed to compute revenue stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// serviceBalances godoc
// @Summary Outstanding balances per case
// @Description Lists every non-closed case with its billed total, paid total and balance
// @Tags reports
// @Produce json
// @Success 200 {array} domain.ServiceBalance
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/service-balances [get]
func (h *reportingHandler) serviceBalances(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}

	balances, err := h.reportingService.ServiceBalances(c.Request.Context(), auth)
	if err != nil {
		respondError(c, err, "Failed to compute service balances")
		return
	}
	c.JSON(http.StatusOK, balances)
}

// payrollReport godoc
// @Summary Payroll report for a month
// @Description Per-collaborator totals of the period's receipts. Admin only.
// @Tags reports
// @Produce json
// @Param anio query int true "Year"
// @Param mes query int true "Month (1-12)"
// @Success 200 {array} domain.PayrollReportRow
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "No period for that month"
// @Security BearerAuth
// @Router /reports/payroll [get]
func (h *reportingHandler) payrollReport(c *gin.Context) {
	auth, ok := mustAuth(c)
	if !ok {
		return
	}
	var query dto.PayrollReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}

	rows, err := h.reportingService.PayrollReport(c.Request.Context(), auth, query.Anio, query.Mes)
	if err != nil {
		respondError(c, err, "Failed to build payroll report")
		return
	}
	c.JSON(http.StatusOK, rows)
}
