package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/apperrors"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
	portssvc "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/services"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/services"
)

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	mockPayrollRepo   *MockPayrollRepository
	service           portssvc.ReportingSvcFacade
	adminCtx          domain.AuthContext
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.mockPayrollRepo = new(MockPayrollRepository)
	suite.service = services.NewReportingService(suite.mockReportingRepo, suite.mockPayrollRepo)
	suite.adminCtx = domain.AuthContext{
		UserID:        uuid.NewString(),
		FuneralHomeID: uuid.NewString(),
		Role:          domain.RoleAdmin,
	}
}

func paidTxn(monto int64, paidAt time.Time) domain.Transaction {
	return domain.Transaction{
		TransactionID: uuid.NewString(),
		Estado:        domain.TxnPagado,
		Monto:         decimal.NewFromInt(monto),
		PaidAt:        &paidAt,
	}
}

// --- Dashboard Tests ---

func (suite *ReportingServiceTestSuite) TestDashboard_BucketsPaidIncomeByMonth() {
	ctx := context.Background()
	fhID := suite.adminCtx.FuneralHomeID
	now := time.Date(2026, time.July, 15, 12, 0, 0, 0, time.UTC)

	caseServices := []domain.Service{
		{ServiceID: uuid.NewString(), Estado: domain.ServiceConfirmado, AuditFields: domain.AuditFields{CreatedAt: time.Date(2026, time.July, 3, 0, 0, 0, 0, time.UTC)}},
		{ServiceID: uuid.NewString(), Estado: domain.ServiceEnEjecucion, AuditFields: domain.AuditFields{CreatedAt: time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC)}},
		{ServiceID: uuid.NewString(), Estado: domain.ServiceCerrado, AuditFields: domain.AuditFields{CreatedAt: time.Date(2026, time.May, 2, 0, 0, 0, 0, time.UTC)}},
	}
	transactions := []domain.Transaction{
		paidTxn(200000, time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC)),
		paidTxn(100000, time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)),
		paidTxn(50000, time.Date(2026, time.January, 20, 0, 0, 0, 0, time.UTC)),
		// Pending payments never count as income.
		{TransactionID: uuid.NewString(), Estado: domain.TxnPendiente, Monto: decimal.NewFromInt(999999)},
	}
	expenses := []domain.Expense{
		{ExpenseID: uuid.NewString(), Monto: decimal.NewFromInt(50000)},
		{ExpenseID: uuid.NewString(), Monto: decimal.NewFromInt(25000)},
	}

	suite.mockReportingRepo.On("ListTenantServices", ctx, fhID, (*time.Time)(nil), (*time.Time)(nil)).
		Return(caseServices, nil).Once()
	suite.mockReportingRepo.On("ListTenantTransactions", ctx, fhID, (*time.Time)(nil), (*time.Time)(nil)).
		Return(transactions, nil).Once()
	suite.mockReportingRepo.On("ListTenantExpenses", ctx, fhID, mock.AnythingOfType("*time.Time"), mock.AnythingOfType("*time.Time")).
		Return(expenses, nil).Once()
	suite.mockReportingRepo.On("CountQuotasByStatus", ctx, fhID, domain.QuotaIngresada).
		Return(3, nil).Once()

	report, err := suite.service.Dashboard(ctx, suite.adminCtx, now)

	suite.Require().NoError(err)
	suite.Require().NotNil(report)
	suite.Equal(2, report.ServiciosMes)
	suite.Equal(1, report.ServiciosPorEstado[domain.ServiceConfirmado])
	suite.Equal(1, report.ServiciosPorEstado[domain.ServiceEnEjecucion])
	suite.Equal(1, report.ServiciosPorEstado[domain.ServiceCerrado])
	suite.True(report.IngresosMes.Equal(decimal.NewFromInt(200000)))
	suite.True(report.IngresosMesPrevio.Equal(decimal.NewFromInt(100000)))
	suite.True(report.IngresosAnio.Equal(decimal.NewFromInt(350000)))
	// (200000 - 100000) / 100000 * 100 = 100% month over month.
	suite.True(report.VariacionMensual.Equal(decimal.NewFromInt(100)))
	suite.True(report.GastosMes.Equal(decimal.NewFromInt(75000)))
	suite.Equal(3, report.CuotasPendientes)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestDashboard_IncludesPaymentStampedNow() {
	ctx := context.Background()
	fhID := suite.adminCtx.FuneralHomeID
	now := time.Date(2026, time.July, 15, 12, 0, 0, 0, time.UTC)

	// A transaction stamped exactly at the reporting instant still belongs
	// to the year to date.
	transactions := []domain.Transaction{
		paidTxn(80000, now),
	}

	suite.mockReportingRepo.On("ListTenantServices", ctx, fhID, (*time.Time)(nil), (*time.Time)(nil)).
		Return([]domain.Service{}, nil).Once()
	suite.mockReportingRepo.On("ListTenantTransactions", ctx, fhID, (*time.Time)(nil), (*time.Time)(nil)).
		Return(transactions, nil).Once()
	suite.mockReportingRepo.On("ListTenantExpenses", ctx, fhID, mock.AnythingOfType("*time.Time"), mock.AnythingOfType("*time.Time")).
		Return([]domain.Expense{}, nil).Once()
	suite.mockReportingRepo.On("CountQuotasByStatus", ctx, fhID, domain.QuotaIngresada).
		Return(0, nil).Once()

	report, err := suite.service.Dashboard(ctx, suite.adminCtx, now)

	suite.Require().NoError(err)
	suite.True(report.IngresosMes.Equal(decimal.NewFromInt(80000)))
	suite.True(report.IngresosAnio.Equal(decimal.NewFromInt(80000)))
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestDashboard_NoPreviousIncomeLeavesVariationZero() {
	ctx := context.Background()
	fhID := suite.adminCtx.FuneralHomeID
	now := time.Date(2026, time.July, 15, 12, 0, 0, 0, time.UTC)

	transactions := []domain.Transaction{
		paidTxn(200000, time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC)),
	}

	suite.mockReportingRepo.On("ListTenantServices", ctx, fhID, (*time.Time)(nil), (*time.Time)(nil)).
		Return([]domain.Service{}, nil).Once()
	suite.mockReportingRepo.On("ListTenantTransactions", ctx, fhID, (*time.Time)(nil), (*time.Time)(nil)).
		Return(transactions, nil).Once()
	suite.mockReportingRepo.On("ListTenantExpenses", ctx, fhID, mock.AnythingOfType("*time.Time"), mock.AnythingOfType("*time.Time")).
		Return([]domain.Expense{}, nil).Once()
	suite.mockReportingRepo.On("CountQuotasByStatus", ctx, fhID, domain.QuotaIngresada).
		Return(0, nil).Once()

	report, err := suite.service.Dashboard(ctx, suite.adminCtx, now)

	suite.Require().NoError(err)
	suite.True(report.VariacionMensual.IsZero())
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

// --- RevenueStats Tests ---

func (suite *ReportingServiceTestSuite) TestRevenueStats_AggregatesBillingAndCollection() {
	ctx := context.Background()
	fhID := suite.adminCtx.FuneralHomeID
	desde := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)
	hasta := time.Date(2026, time.July, 31, 0, 0, 0, 0, time.UTC)

	caseServices := []domain.Service{
		{ServiceID: uuid.NewString(), TotalFinal: decimal.NewFromInt(300000)},
		{ServiceID: uuid.NewString(), TotalFinal: decimal.NewFromInt(200000)},
	}
	paidAt := time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC)
	transactions := []domain.Transaction{
		{TransactionID: uuid.NewString(), Estado: domain.TxnPagado, Metodo: domain.MethodEfectivo, Monto: decimal.NewFromInt(200000), PaidAt: &paidAt},
		{TransactionID: uuid.NewString(), Estado: domain.TxnPendiente, Metodo: domain.MethodTransferencia, Monto: decimal.NewFromInt(150000)},
		{TransactionID: uuid.NewString(), Estado: domain.TxnRechazado, Metodo: domain.MethodCheque, Monto: decimal.NewFromInt(50000)},
	}

	suite.mockReportingRepo.On("ListTenantServices", ctx, fhID, &desde, &hasta).
		Return(caseServices, nil).Once()
	suite.mockReportingRepo.On("ListTenantTransactions", ctx, fhID, &desde, &hasta).
		Return(transactions, nil).Once()

	stats, err := suite.service.RevenueStats(ctx, suite.adminCtx, &desde, &hasta)

	suite.Require().NoError(err)
	suite.Require().NotNil(stats)
	suite.True(stats.TotalBilled.Equal(decimal.NewFromInt(500000)))
	suite.True(stats.TotalPaid.Equal(decimal.NewFromInt(200000)))
	suite.True(stats.TotalPending.Equal(decimal.NewFromInt(150000)))
	// 200000 / 500000 * 100 = 40% collected.
	suite.True(stats.CollectionRate.Equal(decimal.NewFromInt(40)))
	suite.True(stats.PorMetodo[domain.MethodEfectivo].Equal(decimal.NewFromInt(200000)))
	suite.True(stats.PorEstado[domain.TxnRechazado].Equal(decimal.NewFromInt(50000)))
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestRevenueStats_NothingBilledLeavesRateZero() {
	ctx := context.Background()
	fhID := suite.adminCtx.FuneralHomeID

	suite.mockReportingRepo.On("ListTenantServices", ctx, fhID, (*time.Time)(nil), (*time.Time)(nil)).
		Return([]domain.Service{}, nil).Once()
	suite.mockReportingRepo.On("ListTenantTransactions", ctx, fhID, (*time.Time)(nil), (*time.Time)(nil)).
		Return([]domain.Transaction{}, nil).Once()

	stats, err := suite.service.RevenueStats(ctx, suite.adminCtx, nil, nil)

	suite.Require().NoError(err)
	suite.True(stats.CollectionRate.IsZero())
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

// --- ServiceBalances Tests ---

func (suite *ReportingServiceTestSuite) TestServiceBalances_SkipsClosedCases() {
	ctx := context.Background()
	fhID := suite.adminCtx.FuneralHomeID
	openID := uuid.NewString()
	closedID := uuid.NewString()

	caseServices := []domain.Service{
		{ServiceID: openID, Estado: domain.ServiceEnEjecucion, TotalFinal: decimal.NewFromInt(500000)},
		{ServiceID: closedID, Estado: domain.ServiceCerrado, TotalFinal: decimal.NewFromInt(900000)},
	}
	paidAt := time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC)
	transactions := []domain.Transaction{
		{TransactionID: uuid.NewString(), ServiceID: openID, Estado: domain.TxnPagado, Monto: decimal.NewFromInt(200000), PaidAt: &paidAt},
		{TransactionID: uuid.NewString(), ServiceID: openID, Estado: domain.TxnPendiente, Monto: decimal.NewFromInt(100000)},
	}

	suite.mockReportingRepo.On("ListTenantServices", ctx, fhID, (*time.Time)(nil), (*time.Time)(nil)).
		Return(caseServices, nil).Once()
	suite.mockReportingRepo.On("ListTenantTransactions", ctx, fhID, (*time.Time)(nil), (*time.Time)(nil)).
		Return(transactions, nil).Once()

	balances, err := suite.service.ServiceBalances(ctx, suite.adminCtx)

	suite.Require().NoError(err)
	suite.Require().Len(balances, 1)
	suite.Equal(openID, balances[0].ServiceID)
	suite.True(balances[0].Pagado.Equal(decimal.NewFromInt(200000)))
	suite.True(balances[0].Balance.Equal(decimal.NewFromInt(300000)))
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

// --- PayrollReport Tests ---

func (suite *ReportingServiceTestSuite) TestPayrollReport_Success() {
	ctx := context.Background()
	fhID := suite.adminCtx.FuneralHomeID
	periodID := uuid.NewString()
	collaboratorID := uuid.NewString()

	period := &domain.PayrollPeriod{PayrollPeriodID: periodID, FuneralHomeID: fhID, Anio: 2026, Mes: 7}
	receipts := []domain.PaymentReceipt{
		{
			ReceiptID:        uuid.NewString(),
			PayrollPeriodID:  periodID,
			CollaboratorID:   collaboratorID,
			CollaboratorName: "Pedro Soto",
			SueldoBase:       decimal.NewFromInt(600000),
			Extras:           decimal.NewFromInt(50000),
			Descuentos:       decimal.NewFromInt(30000),
			TotalLiquido:     decimal.NewFromInt(620000),
		},
	}

	suite.mockPayrollRepo.On("FindPeriodByMonth", ctx, fhID, 2026, 7).Return(period, nil).Once()
	suite.mockPayrollRepo.On("ListReceiptsByPeriod", ctx, fhID, periodID).Return(receipts, nil).Once()

	rows, err := suite.service.PayrollReport(ctx, suite.adminCtx, 2026, 7)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.Equal(collaboratorID, rows[0].CollaboratorID)
	suite.Equal("Pedro Soto", rows[0].CollaboratorName)
	suite.True(rows[0].TotalLiquido.Equal(decimal.NewFromInt(620000)))
	suite.mockPayrollRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestPayrollReport_Forbidden() {
	ctx := context.Background()
	cajaCtx := suite.adminCtx
	cajaCtx.Role = domain.RoleCaja

	rows, err := suite.service.PayrollReport(ctx, cajaCtx, 2026, 7)

	suite.Require().Error(err)
	suite.Nil(rows)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ReportingServiceTestSuite) TestPayrollReport_PeriodNotFound() {
	ctx := context.Background()
	fhID := suite.adminCtx.FuneralHomeID

	suite.mockPayrollRepo.On("FindPeriodByMonth", ctx, fhID, 2026, 12).
		Return(nil, apperrors.ErrNotFound).Once()

	rows, err := suite.service.PayrollReport(ctx, suite.adminCtx, 2026, 12)

	suite.Require().Error(err)
	suite.Nil(rows)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPayrollRepo.AssertExpectations(suite.T())
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
