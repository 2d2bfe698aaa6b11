package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
	portsrepo "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/services"
)

// ReportingService reduces tenant rows into dashboards and financial rollups.
// Everything is recomputed per request.
type ReportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	payrollRepo   portsrepo.PayrollRepositoryFacade
}

// NewReportingService creates a new ReportingService.
func NewReportingService(rr portsrepo.ReportingRepository, pr portsrepo.PayrollRepositoryFacade) portssvc.ReportingSvcFacade {
	return &ReportingService{reportingRepo: rr, payrollRepo: pr}
}

var _ portssvc.ReportingSvcFacade = (*ReportingService)(nil)

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func inMonth(t time.Time, start time.Time) bool {
	return !t.Before(start) && t.Before(start.AddDate(0, 1, 0))
}

// Dashboard returns the KPI rollup for the tenant as of now. Income figures
// come from paid transactions bucketed by their payment date.
func (s *ReportingService) Dashboard(ctx context.Context, authCtx domain.AuthContext, now time.Time) (*domain.DashboardReport, error) {
	services, err := s.reportingRepo.ListTenantServices(ctx, authCtx.FuneralHomeID, nil, nil)
	if err != nil {
		return nil, err
	}
	transactions, err := s.reportingRepo.ListTenantTransactions(ctx, authCtx.FuneralHomeID, nil, nil)
	if err != nil {
		return nil, err
	}

	thisMonth := monthStart(now)
	prevMonth := thisMonth.AddDate(0, -1, 0)
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())

	report := domain.DashboardReport{
		ServiciosPorEstado: map[domain.ServiceStatus]int{},
	}
	for _, svc := range services {
		report.ServiciosPorEstado[svc.Estado]++
		if inMonth(svc.CreatedAt, thisMonth) {
			report.ServiciosMes++
		}
	}

	for _, txn := range transactions {
		if txn.Estado != domain.TxnPagado || txn.PaidAt == nil {
			continue
		}
		paidAt := *txn.PaidAt
		if inMonth(paidAt, thisMonth) {
			report.IngresosMes = report.IngresosMes.Add(txn.Monto)
		}
		if inMonth(paidAt, prevMonth) {
			report.IngresosMesPrevio = report.IngresosMesPrevio.Add(txn.Monto)
		}
		if !paidAt.Before(yearStart) && !paidAt.After(now) {
			report.IngresosAnio = report.IngresosAnio.Add(txn.Monto)
		}
	}
	if report.IngresosMesPrevio.IsPositive() {
		report.VariacionMensual = report.IngresosMes.Sub(report.IngresosMesPrevio).
			Div(report.IngresosMesPrevio).
			Mul(decimal.NewFromInt(100))
	}

	monthEnd := thisMonth.AddDate(0, 1, -1)
	expenses, err := s.reportingRepo.ListTenantExpenses(ctx, authCtx.FuneralHomeID, &thisMonth, &monthEnd)
	if err != nil {
		return nil, err
	}
	for _, e := range expenses {
		report.GastosMes = report.GastosMes.Add(e.Monto)
	}

	pending, err := s.reportingRepo.CountQuotasByStatus(ctx, authCtx.FuneralHomeID, domain.QuotaIngresada)
	if err != nil {
		return nil, err
	}
	report.CuotasPendientes = pending

	return &report, nil
}

// RevenueStats aggregates billing against collection for the window. Billing
// is the final total of the cases opened in the window; collection comes from
// the transactions recorded in it.
func (s *ReportingService) RevenueStats(ctx context.Context, authCtx domain.AuthContext, desde, hasta *time.Time) (*domain.RevenueStats, error) {
	services, err := s.reportingRepo.ListTenantServices(ctx, authCtx.FuneralHomeID, desde, hasta)
	if err != nil {
		return nil, err
	}
	transactions, err := s.reportingRepo.ListTenantTransactions(ctx, authCtx.FuneralHomeID, desde, hasta)
	if err != nil {
		return nil, err
	}

	stats := domain.RevenueStats{
		PorMetodo: map[domain.PaymentMethod]decimal.Decimal{},
		PorEstado: map[domain.TransactionStatus]decimal.Decimal{},
	}
	for _, svc := range services {
		stats.TotalBilled = stats.TotalBilled.Add(svc.TotalFinal)
	}
	for _, txn := range transactions {
		stats.PorEstado[txn.Estado] = stats.PorEstado[txn.Estado].Add(txn.Monto)
		switch txn.Estado {
		case domain.TxnPagado:
			stats.TotalPaid = stats.TotalPaid.Add(txn.Monto)
			stats.PorMetodo[txn.Metodo] = stats.PorMetodo[txn.Metodo].Add(txn.Monto)
		case domain.TxnPendiente:
			stats.TotalPending = stats.TotalPending.Add(txn.Monto)
		}
	}
	if stats.TotalBilled.IsPositive() {
		stats.CollectionRate = stats.TotalPaid.Div(stats.TotalBilled).Mul(decimal.NewFromInt(100))
	}
	return &stats, nil
}

// ServiceBalances returns the outstanding amount of every non-closed case.
func (s *ReportingService) ServiceBalances(ctx context.Context, authCtx domain.AuthContext) ([]domain.ServiceBalance, error) {
	services, err := s.reportingRepo.ListTenantServices(ctx, authCtx.FuneralHomeID, nil, nil)
	if err != nil {
		return nil, err
	}
	transactions, err := s.reportingRepo.ListTenantTransactions(ctx, authCtx.FuneralHomeID, nil, nil)
	if err != nil {
		return nil, err
	}

	paidByService := map[string]decimal.Decimal{}
	for _, txn := range transactions {
		if txn.Estado == domain.TxnPagado {
			paidByService[txn.ServiceID] = paidByService[txn.ServiceID].Add(txn.Monto)
		}
	}

	balances := make([]domain.ServiceBalance, 0, len(services))
	for _, svc := range services {
		if svc.Estado == domain.ServiceCerrado {
			continue
		}
		pagado := paidByService[svc.ServiceID]
		balances = append(balances, domain.ServiceBalance{
			ServiceID:  svc.ServiceID,
			TotalFinal: svc.TotalFinal,
			Pagado:     pagado,
			Balance:    svc.TotalFinal.Sub(pagado),
		})
	}
	return balances, nil
}

// PayrollReport returns the per-collaborator totals of a period.
func (s *ReportingService) PayrollReport(ctx context.Context, authCtx domain.AuthContext, anio, mes int) ([]domain.PayrollReportRow, error) {
	if err := s.RequireRole(authCtx, domain.RoleAdmin); err != nil {
		return nil, err
	}

	period, err := s.payrollRepo.FindPeriodByMonth(ctx, authCtx.FuneralHomeID, anio, mes)
	if err != nil {
		return nil, err
	}
	receipts, err := s.payrollRepo.ListReceiptsByPeriod(ctx, authCtx.FuneralHomeID, period.PayrollPeriodID)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.PayrollReportRow, len(receipts))
	for i, r := range receipts {
		rows[i] = domain.PayrollReportRow{
			CollaboratorID:   r.CollaboratorID,
			CollaboratorName: r.CollaboratorName,
			SueldoBase:       r.SueldoBase,
			Extras:           r.Extras,
			Descuentos:       r.Descuentos,
			TotalLiquido:     r.TotalLiquido,
		}
	}
	return rows, nil
}
