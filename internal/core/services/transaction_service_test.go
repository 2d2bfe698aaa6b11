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
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/dto"
)

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockTransactionRepo *MockTransactionRepository
	mockServiceRepo     *MockServiceRepository
	service             portssvc.TransactionSvcFacade
	cajaCtx             domain.AuthContext
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTransactionRepo = new(MockTransactionRepository)
	suite.mockServiceRepo = new(MockServiceRepository)
	suite.service = services.NewTransactionService(suite.mockTransactionRepo, suite.mockServiceRepo)
	suite.cajaCtx = domain.AuthContext{
		UserID:        uuid.NewString(),
		FuneralHomeID: uuid.NewString(),
		Role:          domain.RoleCaja,
	}
}

// --- CreateTransaction Tests ---

func (suite *TransactionServiceTestSuite) TestCreateTransaction_DefaultsToPending() {
	ctx := context.Background()
	serviceID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		ServiceID: serviceID,
		Metodo:    domain.MethodTransferencia,
		Monto:     decimal.NewFromInt(350000),
	}

	suite.mockServiceRepo.On("FindServiceByID", ctx, suite.cajaCtx.FuneralHomeID, serviceID).
		Return(&domain.Service{ServiceID: serviceID}, nil).Once()
	suite.mockTransactionRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Estado == domain.TxnPendiente && t.PaidAt == nil && t.ServiceID == serviceID
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.cajaCtx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal(domain.TxnPendiente, txn.Estado)
	suite.Nil(txn.PaidAt)
	suite.mockTransactionRepo.AssertExpectations(suite.T())
	suite.mockServiceRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_PaidStampsPaidAt() {
	ctx := context.Background()
	serviceID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		ServiceID: serviceID,
		Metodo:    domain.MethodEfectivo,
		Estado:    domain.TxnPagado,
		Monto:     decimal.NewFromInt(100000),
	}

	suite.mockServiceRepo.On("FindServiceByID", ctx, suite.cajaCtx.FuneralHomeID, serviceID).
		Return(&domain.Service{ServiceID: serviceID}, nil).Once()
	suite.mockTransactionRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Estado == domain.TxnPagado && t.PaidAt != nil
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.cajaCtx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.NotNil(txn.PaidAt)
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		ServiceID: uuid.NewString(),
		Metodo:    domain.MethodEfectivo,
		Monto:     decimal.NewFromInt(-5000),
	}

	txn, err := suite.service.CreateTransaction(ctx, suite.cajaCtx, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Forbidden() {
	ctx := context.Background()
	opsCtx := suite.cajaCtx
	opsCtx.Role = domain.RoleOperaciones

	txn, err := suite.service.CreateTransaction(ctx, opsCtx, dto.CreateTransactionRequest{
		ServiceID: uuid.NewString(),
		Metodo:    domain.MethodEfectivo,
		Monto:     decimal.NewFromInt(100000),
	})

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// --- UpdateTransaction Tests ---

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_TransitionToPaidStampsPaidAt() {
	ctx := context.Background()
	txnID := uuid.NewString()
	existing := &domain.Transaction{
		TransactionID: txnID,
		FuneralHomeID: suite.cajaCtx.FuneralHomeID,
		ServiceID:     uuid.NewString(),
		Metodo:        domain.MethodTransferencia,
		Estado:        domain.TxnPendiente,
		Monto:         decimal.NewFromInt(350000),
	}
	pagado := domain.TxnPagado

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, suite.cajaCtx.FuneralHomeID, txnID).
		Return(existing, nil).Once()
	suite.mockTransactionRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Estado == domain.TxnPagado && t.PaidAt != nil
	})).Return(nil).Once()

	txn, err := suite.service.UpdateTransaction(ctx, suite.cajaCtx, txnID, dto.UpdateTransactionRequest{Estado: &pagado})

	suite.Require().NoError(err)
	suite.Equal(domain.TxnPagado, txn.Estado)
	suite.NotNil(txn.PaidAt)
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_LeavingPaidClearsPaidAt() {
	ctx := context.Background()
	txnID := uuid.NewString()
	paidAt := time.Now().AddDate(0, 0, -3)
	existing := &domain.Transaction{
		TransactionID: txnID,
		FuneralHomeID: suite.cajaCtx.FuneralHomeID,
		ServiceID:     uuid.NewString(),
		Metodo:        domain.MethodTarjeta,
		Estado:        domain.TxnPagado,
		Monto:         decimal.NewFromInt(350000),
		PaidAt:        &paidAt,
	}
	reembolsado := domain.TxnReembolsado

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, suite.cajaCtx.FuneralHomeID, txnID).
		Return(existing, nil).Once()
	suite.mockTransactionRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Estado == domain.TxnReembolsado && t.PaidAt == nil
	})).Return(nil).Once()

	txn, err := suite.service.UpdateTransaction(ctx, suite.cajaCtx, txnID, dto.UpdateTransactionRequest{Estado: &reembolsado})

	suite.Require().NoError(err)
	suite.Equal(domain.TxnReembolsado, txn.Estado)
	suite.Nil(txn.PaidAt)
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_AlreadyPaidKeepsOriginalPaidAt() {
	ctx := context.Background()
	txnID := uuid.NewString()
	paidAt := time.Now().AddDate(0, 0, -3)
	existing := &domain.Transaction{
		TransactionID: txnID,
		FuneralHomeID: suite.cajaCtx.FuneralHomeID,
		ServiceID:     uuid.NewString(),
		Metodo:        domain.MethodEfectivo,
		Estado:        domain.TxnPagado,
		Monto:         decimal.NewFromInt(100000),
		PaidAt:        &paidAt,
	}
	pagado := domain.TxnPagado
	referencia := "folio 1234"

	suite.mockTransactionRepo.On("FindTransactionByID", ctx, suite.cajaCtx.FuneralHomeID, txnID).
		Return(existing, nil).Once()
	suite.mockTransactionRepo.On("UpdateTransaction", ctx, mock.AnythingOfType("domain.Transaction")).
		Return(nil).Once()

	txn, err := suite.service.UpdateTransaction(ctx, suite.cajaCtx, txnID, dto.UpdateTransactionRequest{
		Estado:     &pagado,
		Referencia: &referencia,
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(txn.PaidAt)
	suite.Equal(paidAt, *txn.PaidAt)
	suite.Equal(referencia, txn.Referencia)
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

// --- DeleteTransaction Tests ---

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_Success() {
	ctx := context.Background()
	txnID := uuid.NewString()

	suite.mockTransactionRepo.On("DeleteTransaction", ctx, suite.cajaCtx.FuneralHomeID, txnID).
		Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, suite.cajaCtx, txnID)

	suite.Require().NoError(err)
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_Forbidden() {
	ctx := context.Background()
	colabCtx := suite.cajaCtx
	colabCtx.Role = domain.RoleColaborador

	err := suite.service.DeleteTransaction(ctx, colabCtx, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
