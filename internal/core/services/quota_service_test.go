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
type QuotaServiceTestSuite struct {
	suite.Suite
	mockQuotaRepo   *MockQuotaRepository
	mockServiceRepo *MockServiceRepository
	service         portssvc.QuotaSvcFacade
	authCtx         domain.AuthContext
}

func (suite *QuotaServiceTestSuite) SetupTest() {
	suite.mockQuotaRepo = new(MockQuotaRepository)
	suite.mockServiceRepo = new(MockServiceRepository)
	suite.service = services.NewQuotaService(suite.mockQuotaRepo, suite.mockServiceRepo)
	suite.authCtx = domain.AuthContext{
		UserID:        uuid.NewString(),
		FuneralHomeID: uuid.NewString(),
		Role:          domain.RoleEjecutivo,
	}
}

// --- CreateQuota Tests ---

func (suite *QuotaServiceTestSuite) TestCreateQuota_Success() {
	ctx := context.Background()
	serviceID := uuid.NewString()
	req := dto.CreateQuotaRequest{
		ServiceID:   serviceID,
		Institucion: "AFP Habitat",
		Monto:       decimal.NewFromInt(800000),
	}

	suite.mockServiceRepo.On("FindServiceByID", ctx, suite.authCtx.FuneralHomeID, serviceID).
		Return(&domain.Service{ServiceID: serviceID}, nil).Once()
	suite.mockQuotaRepo.On("SaveQuota", ctx, mock.MatchedBy(func(q domain.MortuaryQuota) bool {
		return q.ServiceID == serviceID &&
			q.Estado == domain.QuotaEnPreparacion &&
			q.Institucion == "AFP Habitat" &&
			q.FiledAt == nil
	})).Return(nil).Once()

	quota, err := suite.service.CreateQuota(ctx, suite.authCtx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(quota)
	suite.Equal(domain.QuotaEnPreparacion, quota.Estado)
	suite.NotEmpty(quota.QuotaID)
	suite.mockQuotaRepo.AssertExpectations(suite.T())
	suite.mockServiceRepo.AssertExpectations(suite.T())
}

func (suite *QuotaServiceTestSuite) TestCreateQuota_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateQuotaRequest{
		ServiceID:   uuid.NewString(),
		Institucion: "IPS",
		Monto:       decimal.Zero,
	}

	quota, err := suite.service.CreateQuota(ctx, suite.authCtx, req)

	suite.Require().Error(err)
	suite.Nil(quota)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockQuotaRepo.AssertExpectations(suite.T())
}

func (suite *QuotaServiceTestSuite) TestCreateQuota_UnknownService() {
	ctx := context.Background()
	serviceID := uuid.NewString()
	req := dto.CreateQuotaRequest{
		ServiceID:   serviceID,
		Institucion: "IPS",
		Monto:       decimal.NewFromInt(500000),
	}

	suite.mockServiceRepo.On("FindServiceByID", ctx, suite.authCtx.FuneralHomeID, serviceID).
		Return(nil, apperrors.ErrNotFound).Once()

	quota, err := suite.service.CreateQuota(ctx, suite.authCtx, req)

	suite.Require().Error(err)
	suite.Nil(quota)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockServiceRepo.AssertExpectations(suite.T())
}

func (suite *QuotaServiceTestSuite) TestCreateQuota_Forbidden() {
	ctx := context.Background()
	colabCtx := suite.authCtx
	colabCtx.Role = domain.RoleColaborador

	quota, err := suite.service.CreateQuota(ctx, colabCtx, dto.CreateQuotaRequest{
		ServiceID:   uuid.NewString(),
		Institucion: "IPS",
		Monto:       decimal.NewFromInt(500000),
	})

	suite.Require().Error(err)
	suite.Nil(quota)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// --- UpdateQuota Tests ---

func (suite *QuotaServiceTestSuite) TestUpdateQuota_FilingStampsFiledAt() {
	ctx := context.Background()
	quotaID := uuid.NewString()
	existing := &domain.MortuaryQuota{
		QuotaID:       quotaID,
		FuneralHomeID: suite.authCtx.FuneralHomeID,
		ServiceID:     uuid.NewString(),
		Institucion:   "AFP Habitat",
		Monto:         decimal.NewFromInt(800000),
		Estado:        domain.QuotaEnPreparacion,
	}
	ingresada := domain.QuotaIngresada

	suite.mockQuotaRepo.On("FindQuotaByID", ctx, suite.authCtx.FuneralHomeID, quotaID).
		Return(existing, nil).Once()
	suite.mockQuotaRepo.On("UpdateQuota", ctx, mock.MatchedBy(func(q domain.MortuaryQuota) bool {
		return q.Estado == domain.QuotaIngresada && q.FiledAt != nil && q.ResolvedAt == nil
	})).Return(nil).Once()

	quota, err := suite.service.UpdateQuota(ctx, suite.authCtx, quotaID, dto.UpdateQuotaRequest{Estado: &ingresada})

	suite.Require().NoError(err)
	suite.Require().NotNil(quota)
	suite.Equal(domain.QuotaIngresada, quota.Estado)
	suite.NotNil(quota.FiledAt)
	suite.Nil(quota.ResolvedAt)
	suite.mockQuotaRepo.AssertExpectations(suite.T())
}

func (suite *QuotaServiceTestSuite) TestUpdateQuota_ApprovalStampsResolvedAt() {
	ctx := context.Background()
	quotaID := uuid.NewString()
	filedAt := time.Now().AddDate(0, 0, -10)
	existing := &domain.MortuaryQuota{
		QuotaID:       quotaID,
		FuneralHomeID: suite.authCtx.FuneralHomeID,
		Estado:        domain.QuotaIngresada,
		Monto:         decimal.NewFromInt(800000),
		FiledAt:       &filedAt,
	}
	aprobada := domain.QuotaAprobada

	suite.mockQuotaRepo.On("FindQuotaByID", ctx, suite.authCtx.FuneralHomeID, quotaID).
		Return(existing, nil).Once()
	suite.mockQuotaRepo.On("UpdateQuota", ctx, mock.MatchedBy(func(q domain.MortuaryQuota) bool {
		return q.Estado == domain.QuotaAprobada && q.ResolvedAt != nil
	})).Return(nil).Once()

	quota, err := suite.service.UpdateQuota(ctx, suite.authCtx, quotaID, dto.UpdateQuotaRequest{Estado: &aprobada})

	suite.Require().NoError(err)
	suite.NotNil(quota.ResolvedAt)
	suite.Equal(filedAt, *quota.FiledAt) // filing date is preserved
	suite.mockQuotaRepo.AssertExpectations(suite.T())
}

func (suite *QuotaServiceTestSuite) TestUpdateQuota_ReopeningClearsResolvedAt() {
	ctx := context.Background()
	quotaID := uuid.NewString()
	filedAt := time.Now().AddDate(0, 0, -20)
	resolvedAt := time.Now().AddDate(0, 0, -5)
	existing := &domain.MortuaryQuota{
		QuotaID:       quotaID,
		FuneralHomeID: suite.authCtx.FuneralHomeID,
		Estado:        domain.QuotaRechazada,
		Monto:         decimal.NewFromInt(800000),
		FiledAt:       &filedAt,
		ResolvedAt:    &resolvedAt,
	}
	ingresada := domain.QuotaIngresada

	suite.mockQuotaRepo.On("FindQuotaByID", ctx, suite.authCtx.FuneralHomeID, quotaID).
		Return(existing, nil).Once()
	suite.mockQuotaRepo.On("UpdateQuota", ctx, mock.MatchedBy(func(q domain.MortuaryQuota) bool {
		return q.Estado == domain.QuotaIngresada && q.ResolvedAt == nil
	})).Return(nil).Once()

	quota, err := suite.service.UpdateQuota(ctx, suite.authCtx, quotaID, dto.UpdateQuotaRequest{Estado: &ingresada})

	suite.Require().NoError(err)
	suite.Nil(quota.ResolvedAt)
	suite.mockQuotaRepo.AssertExpectations(suite.T())
}

func (suite *QuotaServiceTestSuite) TestUpdateQuota_UnknownStatus() {
	ctx := context.Background()
	quotaID := uuid.NewString()
	existing := &domain.MortuaryQuota{
		QuotaID:       quotaID,
		FuneralHomeID: suite.authCtx.FuneralHomeID,
		Estado:        domain.QuotaEnPreparacion,
		Monto:         decimal.NewFromInt(800000),
	}
	bogus := domain.QuotaStatus("archivada")

	suite.mockQuotaRepo.On("FindQuotaByID", ctx, suite.authCtx.FuneralHomeID, quotaID).
		Return(existing, nil).Once()

	quota, err := suite.service.UpdateQuota(ctx, suite.authCtx, quotaID, dto.UpdateQuotaRequest{Estado: &bogus})

	suite.Require().Error(err)
	suite.Nil(quota)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockQuotaRepo.AssertExpectations(suite.T())
}

// --- DeleteQuota Tests ---

func (suite *QuotaServiceTestSuite) TestDeleteQuota_AdminOnly() {
	ctx := context.Background()
	quotaID := uuid.NewString()

	err := suite.service.DeleteQuota(ctx, suite.authCtx, quotaID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockQuotaRepo.AssertExpectations(suite.T())
}

func (suite *QuotaServiceTestSuite) TestDeleteQuota_Success() {
	ctx := context.Background()
	quotaID := uuid.NewString()
	adminCtx := suite.authCtx
	adminCtx.Role = domain.RoleAdmin

	suite.mockQuotaRepo.On("DeleteQuota", ctx, adminCtx.FuneralHomeID, quotaID).Return(nil).Once()

	err := suite.service.DeleteQuota(ctx, adminCtx, quotaID)

	suite.Require().NoError(err)
	suite.mockQuotaRepo.AssertExpectations(suite.T())
}

func TestQuotaServiceTestSuite(t *testing.T) {
	suite.Run(t, new(QuotaServiceTestSuite))
}
