package dto

import "time"

// RevenueStatsQuery bounds the revenue report to an inclusive date window.
// Both ends optional; an empty query covers all time.
type RevenueStatsQuery struct {
	Desde *time.Time `form:"desde" time_format:"2006-01-02"`
	Hasta *time.Time `form:"hasta" time_format:"2006-01-02"`
}

// PayrollReportQuery selects the payroll period to report on.
type PayrollReportQuery struct {
	Anio int `form:"anio" binding:"required,min=2000,max=2100"`
	Mes  int `form:"mes" binding:"required,min=1,max=12"`
}
