package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/apperrors"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
	portssvc "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/services"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/services"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/dto"
)

// --- Test Suite ---
type VehicleServiceTestSuite struct {
	suite.Suite
	mockVehicleRepo *MockVehicleRepository
	mockBranchRepo  *MockBranchRepository
	service         portssvc.VehicleSvcFacade
	opsCtx          domain.AuthContext
}

func (suite *VehicleServiceTestSuite) SetupTest() {
	suite.mockVehicleRepo = new(MockVehicleRepository)
	suite.mockBranchRepo = new(MockBranchRepository)
	suite.service = services.NewVehicleService(suite.mockVehicleRepo, suite.mockBranchRepo)
	suite.opsCtx = domain.AuthContext{
		UserID:        uuid.NewString(),
		FuneralHomeID: uuid.NewString(),
		Role:          domain.RoleOperaciones,
	}
}

// --- CreateVehicle Tests ---

func (suite *VehicleServiceTestSuite) TestCreateVehicle_NormalizesPlate() {
	ctx := context.Background()
	req := dto.CreateVehicleRequest{
		Patente: " ab-cd 12 ",
		Marca:   "Mercedes-Benz",
		Modelo:  "Sprinter",
	}

	suite.mockVehicleRepo.On("SaveVehicle", ctx, mock.MatchedBy(func(v domain.Vehicle) bool {
		return v.Patente == "ABCD12" && v.Activo && v.FuneralHomeID == suite.opsCtx.FuneralHomeID
	})).Return(nil).Once()

	vehicle, err := suite.service.CreateVehicle(ctx, suite.opsCtx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(vehicle)
	suite.Equal("ABCD12", vehicle.Patente)
	suite.True(vehicle.Activo)
	suite.mockVehicleRepo.AssertExpectations(suite.T())
}

func (suite *VehicleServiceTestSuite) TestCreateVehicle_EmptyPlate() {
	ctx := context.Background()

	vehicle, err := suite.service.CreateVehicle(ctx, suite.opsCtx, dto.CreateVehicleRequest{Patente: " - "})

	suite.Require().Error(err)
	suite.Nil(vehicle)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockVehicleRepo.AssertExpectations(suite.T())
}

func (suite *VehicleServiceTestSuite) TestCreateVehicle_UnknownBranch() {
	ctx := context.Background()
	branchID := uuid.NewString()

	suite.mockBranchRepo.On("FindBranchByID", ctx, suite.opsCtx.FuneralHomeID, branchID).
		Return(nil, apperrors.ErrNotFound).Once()

	vehicle, err := suite.service.CreateVehicle(ctx, suite.opsCtx, dto.CreateVehicleRequest{
		BranchID: &branchID,
		Patente:  "ABCD12",
	})

	suite.Require().Error(err)
	suite.Nil(vehicle)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockBranchRepo.AssertExpectations(suite.T())
}

func (suite *VehicleServiceTestSuite) TestCreateVehicle_Forbidden() {
	ctx := context.Background()
	cajaCtx := suite.opsCtx
	cajaCtx.Role = domain.RoleCaja

	vehicle, err := suite.service.CreateVehicle(ctx, cajaCtx, dto.CreateVehicleRequest{Patente: "ABCD12"})

	suite.Require().Error(err)
	suite.Nil(vehicle)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// --- UpdateVehicle Tests ---

func (suite *VehicleServiceTestSuite) TestUpdateVehicle_NormalizesNewPlate() {
	ctx := context.Background()
	vehicleID := uuid.NewString()
	existing := &domain.Vehicle{
		VehicleID:     vehicleID,
		FuneralHomeID: suite.opsCtx.FuneralHomeID,
		Patente:       "ABCD12",
		Marca:         "Mercedes-Benz",
		Activo:        true,
	}
	newPlate := "ef-gh-34"

	suite.mockVehicleRepo.On("FindVehicleByID", ctx, suite.opsCtx.FuneralHomeID, vehicleID).
		Return(existing, nil).Once()
	suite.mockVehicleRepo.On("UpdateVehicle", ctx, mock.MatchedBy(func(v domain.Vehicle) bool {
		return v.Patente == "EFGH34"
	})).Return(nil).Once()

	vehicle, err := suite.service.UpdateVehicle(ctx, suite.opsCtx, vehicleID, dto.UpdateVehicleRequest{Patente: &newPlate})

	suite.Require().NoError(err)
	suite.Equal("EFGH34", vehicle.Patente)
	suite.mockVehicleRepo.AssertExpectations(suite.T())
}

func (suite *VehicleServiceTestSuite) TestUpdateVehicle_Deactivate() {
	ctx := context.Background()
	vehicleID := uuid.NewString()
	existing := &domain.Vehicle{
		VehicleID:     vehicleID,
		FuneralHomeID: suite.opsCtx.FuneralHomeID,
		Patente:       "ABCD12",
		Activo:        true,
	}
	inactive := false

	suite.mockVehicleRepo.On("FindVehicleByID", ctx, suite.opsCtx.FuneralHomeID, vehicleID).
		Return(existing, nil).Once()
	suite.mockVehicleRepo.On("UpdateVehicle", ctx, mock.MatchedBy(func(v domain.Vehicle) bool {
		return !v.Activo
	})).Return(nil).Once()

	vehicle, err := suite.service.UpdateVehicle(ctx, suite.opsCtx, vehicleID, dto.UpdateVehicleRequest{Activo: &inactive})

	suite.Require().NoError(err)
	suite.False(vehicle.Activo)
	suite.mockVehicleRepo.AssertExpectations(suite.T())
}

// --- DeleteVehicle Tests ---

func (suite *VehicleServiceTestSuite) TestDeleteVehicle_Success() {
	ctx := context.Background()
	vehicleID := uuid.NewString()

	suite.mockVehicleRepo.On("DeleteVehicle", ctx, suite.opsCtx.FuneralHomeID, vehicleID).
		Return(nil).Once()

	err := suite.service.DeleteVehicle(ctx, suite.opsCtx, vehicleID)

	suite.Require().NoError(err)
	suite.mockVehicleRepo.AssertExpectations(suite.T())
}

func TestVehicleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VehicleServiceTestSuite))
}
