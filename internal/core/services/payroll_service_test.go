package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/apperrors"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
	portssvc "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/services"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/services"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/dto"
)

// --- Mock ReceiptPDFRenderer ---
type MockReceiptRenderer struct {
	mock.Mock
}

func (m *MockReceiptRenderer) Render(receipt domain.PaymentReceipt, period domain.PayrollPeriod, home domain.FuneralHome) ([]byte, error) {
	args := m.Called(receipt, period, home)
	var pdf []byte
	if args.Get(0) != nil {
		pdf = args.Get(0).([]byte)
	}
	return pdf, args.Error(1)
}

// --- Test Suite ---
type PayrollServiceTestSuite struct {
	suite.Suite
	mockPayrollRepo      *MockPayrollRepository
	mockCollaboratorRepo *MockCollaboratorRepository
	mockAssignmentRepo   *MockAssignmentRepository
	mockServiceRepo      *MockServiceRepository
	mockFuneralHomeRepo  *MockFuneralHomeRepository
	mockRenderer         *MockReceiptRenderer
	service              portssvc.PayrollSvcFacade
	adminCtx             domain.AuthContext
}

func (suite *PayrollServiceTestSuite) SetupTest() {
	suite.mockPayrollRepo = new(MockPayrollRepository)
	suite.mockCollaboratorRepo = new(MockCollaboratorRepository)
	suite.mockAssignmentRepo = new(MockAssignmentRepository)
	suite.mockServiceRepo = new(MockServiceRepository)
	suite.mockFuneralHomeRepo = new(MockFuneralHomeRepository)
	suite.mockRenderer = new(MockReceiptRenderer)
	suite.service = services.NewPayrollService(
		suite.mockPayrollRepo,
		suite.mockCollaboratorRepo,
		suite.mockAssignmentRepo,
		suite.mockServiceRepo,
		suite.mockFuneralHomeRepo,
		suite.mockRenderer,
	)
	suite.adminCtx = domain.AuthContext{
		UserID:        uuid.NewString(),
		FuneralHomeID: uuid.NewString(),
		Role:          domain.RoleAdmin,
	}
}

// --- OpenPeriod Tests ---

func (suite *PayrollServiceTestSuite) TestOpenPeriod_Success() {
	ctx := context.Background()
	req := dto.OpenPayrollPeriodRequest{Anio: 2026, Mes: 7}

	suite.mockPayrollRepo.On("FindPeriodByMonth", ctx, suite.adminCtx.FuneralHomeID, 2026, 7).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockPayrollRepo.On("SavePeriod", ctx, mock.MatchedBy(func(p domain.PayrollPeriod) bool {
		return p.Anio == 2026 && p.Mes == 7 &&
			p.Estado == domain.PayrollAbierto &&
			p.FuneralHomeID == suite.adminCtx.FuneralHomeID
	})).Return(nil).Once()

	period, err := suite.service.OpenPeriod(ctx, suite.adminCtx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(period)
	suite.Equal(2026, period.Anio)
	suite.Equal(7, period.Mes)
	suite.Equal(domain.PayrollAbierto, period.Estado)
	suite.NotEmpty(period.PayrollPeriodID)
	suite.Nil(period.ClosedAt)
	suite.mockPayrollRepo.AssertExpectations(suite.T())
}

func (suite *PayrollServiceTestSuite) TestOpenPeriod_DuplicateMonth() {
	ctx := context.Background()
	existing := &domain.PayrollPeriod{
		PayrollPeriodID: uuid.NewString(),
		FuneralHomeID:   suite.adminCtx.FuneralHomeID,
		Anio:            2026,
		Mes:             7,
		Estado:          domain.PayrollAbierto,
	}

	suite.mockPayrollRepo.On("FindPeriodByMonth", ctx, suite.adminCtx.FuneralHomeID, 2026, 7).
		Return(existing, nil).Once()

	period, err := suite.service.OpenPeriod(ctx, suite.adminCtx, dto.OpenPayrollPeriodRequest{Anio: 2026, Mes: 7})

	suite.Require().Error(err)
	suite.Nil(period)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPayrollRepo.AssertExpectations(suite.T())
}

func (suite *PayrollServiceTestSuite) TestOpenPeriod_Forbidden() {
	ctx := context.Background()
	cajaCtx := suite.adminCtx
	cajaCtx.Role = domain.RoleCaja

	period, err := suite.service.OpenPeriod(ctx, cajaCtx, dto.OpenPayrollPeriodRequest{Anio: 2026, Mes: 7})

	suite.Require().Error(err)
	suite.Nil(period)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockPayrollRepo.AssertExpectations(suite.T())
}

// --- GenerateReceipts Tests ---

func (suite *PayrollServiceTestSuite) TestGenerateReceipts_ComputesTotals() {
	ctx := context.Background()
	fhID := suite.adminCtx.FuneralHomeID
	periodID := uuid.NewString()
	driverID := uuid.NewString()
	sellerID := uuid.NewString()
	serviceID := uuid.NewString()

	period := &domain.PayrollPeriod{
		PayrollPeriodID: periodID,
		FuneralHomeID:   fhID,
		Anio:            2026,
		Mes:             7,
		Estado:          domain.PayrollAbierto,
	}
	collaborators := []domain.Collaborator{
		{CollaboratorID: driverID, FuneralHomeID: fhID, FullName: "Pedro Soto", SueldoBase: decimal.NewFromInt(600000)},
		{CollaboratorID: sellerID, FuneralHomeID: fhID, FullName: "Ana Rojas", SueldoBase: decimal.NewFromInt(550000)},
	}
	assignments := []domain.ServiceAssignment{
		{
			AssignmentID:   uuid.NewString(),
			ServiceID:      serviceID,
			CollaboratorID: driverID,
			FuneralHomeID:  fhID,
			ExtraPayType:   domain.ExtraPayFijo,
			ExtraPayAmount: decimal.NewFromInt(50000),
		},
		{
			AssignmentID:   uuid.NewString(),
			ServiceID:      serviceID,
			CollaboratorID: sellerID,
			FuneralHomeID:  fhID,
			ExtraPayType:   domain.ExtraPayPorcentaje,
			ExtraPayAmount: decimal.NewFromInt(10),
		},
	}
	funeralCase := &domain.Service{
		ServiceID:     serviceID,
		FuneralHomeID: fhID,
		TotalFinal:    decimal.NewFromInt(1200000),
	}

	suite.mockPayrollRepo.On("FindPeriodByID", ctx, fhID, periodID).Return(period, nil).Once()
	suite.mockCollaboratorRepo.On("ListCollaborators", ctx, fhID, domain.CollaboratorFilter{}).
		Return(collaborators, nil).Once()
	suite.mockAssignmentRepo.On("ListAssignmentsForMonth", ctx, fhID, 2026, 7).
		Return(assignments, nil).Once()
	suite.mockServiceRepo.On("FindServiceByID", ctx, fhID, serviceID).Return(funeralCase, nil).Once()
	suite.mockPayrollRepo.On("ReplaceReceipts", ctx, fhID, periodID, mock.AnythingOfType("[]domain.PaymentReceipt")).
		Return(nil).Once()

	req := dto.GenerateReceiptsRequest{
		Descuentos: map[string]decimal.Decimal{driverID: decimal.NewFromInt(30000)},
	}
	receipts, err := suite.service.GenerateReceipts(ctx, suite.adminCtx, periodID, req)

	suite.Require().NoError(err)
	suite.Require().Len(receipts, 2)

	// Driver: 600000 + 50000 fixed - 30000 deductions = 620000.
	suite.Equal(driverID, receipts[0].CollaboratorID)
	suite.True(receipts[0].Extras.Equal(decimal.NewFromInt(50000)))
	suite.True(receipts[0].TotalLiquido.Equal(decimal.NewFromInt(620000)))

	// Seller: 550000 + 10% of 1200000 = 670000.
	suite.Equal(sellerID, receipts[1].CollaboratorID)
	suite.True(receipts[1].Extras.Equal(decimal.NewFromInt(120000)))
	suite.True(receipts[1].TotalLiquido.Equal(decimal.NewFromInt(670000)))

	suite.mockPayrollRepo.AssertExpectations(suite.T())
	suite.mockCollaboratorRepo.AssertExpectations(suite.T())
	suite.mockAssignmentRepo.AssertExpectations(suite.T())
	suite.mockServiceRepo.AssertExpectations(suite.T())
}

func (suite *PayrollServiceTestSuite) TestGenerateReceipts_ClosedPeriod() {
	ctx := context.Background()
	periodID := uuid.NewString()
	closedAt := time.Now()
	period := &domain.PayrollPeriod{
		PayrollPeriodID: periodID,
		FuneralHomeID:   suite.adminCtx.FuneralHomeID,
		Estado:          domain.PayrollCerrado,
		ClosedAt:        &closedAt,
	}

	suite.mockPayrollRepo.On("FindPeriodByID", ctx, suite.adminCtx.FuneralHomeID, periodID).
		Return(period, nil).Once()

	receipts, err := suite.service.GenerateReceipts(ctx, suite.adminCtx, periodID, dto.GenerateReceiptsRequest{})

	suite.Require().Error(err)
	suite.Nil(receipts)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPayrollRepo.AssertExpectations(suite.T())
}

// --- ClosePeriod Tests ---

func (suite *PayrollServiceTestSuite) TestClosePeriod_Success() {
	ctx := context.Background()
	periodID := uuid.NewString()
	period := &domain.PayrollPeriod{
		PayrollPeriodID: periodID,
		FuneralHomeID:   suite.adminCtx.FuneralHomeID,
		Anio:            2026,
		Mes:             7,
		Estado:          domain.PayrollAbierto,
	}

	suite.mockPayrollRepo.On("FindPeriodByID", ctx, suite.adminCtx.FuneralHomeID, periodID).
		Return(period, nil).Once()
	suite.mockPayrollRepo.On("UpdatePeriod", ctx, mock.MatchedBy(func(p domain.PayrollPeriod) bool {
		return p.Estado == domain.PayrollCerrado && p.ClosedAt != nil
	})).Return(nil).Once()

	closed, err := suite.service.ClosePeriod(ctx, suite.adminCtx, periodID)

	suite.Require().NoError(err)
	suite.Require().NotNil(closed)
	suite.Equal(domain.PayrollCerrado, closed.Estado)
	suite.NotNil(closed.ClosedAt)
	suite.mockPayrollRepo.AssertExpectations(suite.T())
}

func (suite *PayrollServiceTestSuite) TestClosePeriod_AlreadyClosed() {
	ctx := context.Background()
	periodID := uuid.NewString()
	closedAt := time.Now()
	period := &domain.PayrollPeriod{
		PayrollPeriodID: periodID,
		FuneralHomeID:   suite.adminCtx.FuneralHomeID,
		Estado:          domain.PayrollCerrado,
		ClosedAt:        &closedAt,
	}

	suite.mockPayrollRepo.On("FindPeriodByID", ctx, suite.adminCtx.FuneralHomeID, periodID).
		Return(period, nil).Once()

	closed, err := suite.service.ClosePeriod(ctx, suite.adminCtx, periodID)

	suite.Require().Error(err)
	suite.Nil(closed)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPayrollRepo.AssertExpectations(suite.T())
}

// --- ReceiptPDF Tests ---

func (suite *PayrollServiceTestSuite) TestReceiptPDF_Success() {
	ctx := context.Background()
	fhID := suite.adminCtx.FuneralHomeID
	periodID := uuid.NewString()
	receiptID := uuid.NewString()

	period := &domain.PayrollPeriod{PayrollPeriodID: periodID, FuneralHomeID: fhID, Anio: 2026, Mes: 7}
	receipt := &domain.PaymentReceipt{
		ReceiptID:       receiptID,
		PayrollPeriodID: periodID,
		FuneralHomeID:   fhID,
		TotalLiquido:    decimal.NewFromInt(620000),
	}
	home := &domain.FuneralHome{FuneralHomeID: fhID, LegalName: "Funeraria San Jose SpA"}
	pdfBytes := []byte("%PDF-1.7")

	suite.mockPayrollRepo.On("FindPeriodByID", ctx, fhID, periodID).Return(period, nil).Once()
	suite.mockPayrollRepo.On("FindReceiptByID", ctx, fhID, receiptID).Return(receipt, nil).Once()
	suite.mockFuneralHomeRepo.On("FindFuneralHomeByID", ctx, fhID).Return(home, nil).Once()
	suite.mockRenderer.On("Render", *receipt, *period, *home).Return(pdfBytes, nil).Once()

	pdf, err := suite.service.ReceiptPDF(ctx, suite.adminCtx, periodID, receiptID)

	suite.Require().NoError(err)
	suite.Equal(pdfBytes, pdf)
	suite.mockPayrollRepo.AssertExpectations(suite.T())
	suite.mockFuneralHomeRepo.AssertExpectations(suite.T())
	suite.mockRenderer.AssertExpectations(suite.T())
}

func (suite *PayrollServiceTestSuite) TestReceiptPDF_ReceiptFromAnotherPeriod() {
	ctx := context.Background()
	fhID := suite.adminCtx.FuneralHomeID
	periodID := uuid.NewString()
	receiptID := uuid.NewString()

	period := &domain.PayrollPeriod{PayrollPeriodID: periodID, FuneralHomeID: fhID}
	receipt := &domain.PaymentReceipt{
		ReceiptID:       receiptID,
		PayrollPeriodID: uuid.NewString(),
		FuneralHomeID:   fhID,
	}

	suite.mockPayrollRepo.On("FindPeriodByID", ctx, fhID, periodID).Return(period, nil).Once()
	suite.mockPayrollRepo.On("FindReceiptByID", ctx, fhID, receiptID).Return(receipt, nil).Once()

	pdf, err := suite.service.ReceiptPDF(ctx, suite.adminCtx, periodID, receiptID)

	suite.Require().Error(err)
	suite.Nil(pdf)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPayrollRepo.AssertExpectations(suite.T())
}

// --- ListReceipts Tests ---

func (suite *PayrollServiceTestSuite) TestListReceipts_PeriodNotFound() {
	ctx := context.Background()
	periodID := uuid.NewString()

	suite.mockPayrollRepo.On("FindPeriodByID", ctx, suite.adminCtx.FuneralHomeID, periodID).
		Return(nil, apperrors.ErrNotFound).Once()

	receipts, err := suite.service.ListReceipts(ctx, suite.adminCtx, periodID)

	suite.Require().Error(err)
	suite.Nil(receipts)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPayrollRepo.AssertExpectations(suite.T())
}

func (suite *PayrollServiceTestSuite) TestListPeriods_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockPayrollRepo.On("ListPeriods", ctx, suite.adminCtx.FuneralHomeID).
		Return(nil, expectedErr).Once()

	periods, err := suite.service.ListPeriods(ctx, suite.adminCtx)

	suite.Require().Error(err)
	suite.Nil(periods)
	suite.ErrorIs(err, expectedErr)
	suite.mockPayrollRepo.AssertExpectations(suite.T())
}

func TestPayrollServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PayrollServiceTestSuite))
}
