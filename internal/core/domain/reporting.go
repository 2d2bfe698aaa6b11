package domain

import "github.com/shopspring/decimal"

// DashboardReport is the KPI rollup shown on the main dashboard. Everything
// is recomputed per request from tenant-scoped rows; there is no cache.
type DashboardReport struct {
	ServiciosPorEstado map[ServiceStatus]int `json:"serviciosPorEstado"`
	ServiciosMes       int                   `json:"serviciosMes"`
	IngresosMes        decimal.Decimal       `json:"ingresosMes"`
	IngresosMesPrevio  decimal.Decimal       `json:"ingresosMesPrevio"`
	VariacionMensual   decimal.Decimal       `json:"variacionMensual"` // percent vs previous month
	IngresosAnio       decimal.Decimal       `json:"ingresosAnio"`     // calendar-year-to-date
	GastosMes          decimal.Decimal       `json:"gastosMes"`
	CuotasPendientes   int                   `json:"cuotasPendientes"`
}

// RevenueStats aggregates billing and collection for a period.
type RevenueStats struct {
	TotalBilled    decimal.Decimal                       `json:"totalBilled"`
	TotalPaid      decimal.Decimal                       `json:"totalPaid"`
	TotalPending   decimal.Decimal                       `json:"totalPending"`
	CollectionRate decimal.Decimal                       `json:"collectionRate"` // percent, 0 when nothing billed
	PorMetodo      map[PaymentMethod]decimal.Decimal     `json:"porMetodo"`
	PorEstado      map[TransactionStatus]decimal.Decimal `json:"porEstado"`
}

// ServiceBalance is the outstanding amount of a single funeral case.
type ServiceBalance struct {
	ServiceID  string          `json:"serviceID"`
	TotalFinal decimal.Decimal `json:"totalFinal"`
	Pagado     decimal.Decimal `json:"pagado"`
	Balance    decimal.Decimal `json:"balance"`
}

// PayrollReportRow is a per-collaborator total for a payroll period.
type PayrollReportRow struct {
	CollaboratorID   string          `json:"collaboratorID"`
	CollaboratorName string          `json:"collaboratorName"`
	SueldoBase       decimal.Decimal `json:"sueldoBase"`
	Extras           decimal.Decimal `json:"extras"`
	Descuentos       decimal.Decimal `json:"descuentos"`
	TotalLiquido     decimal.Decimal `json:"totalLiquido"`
}
