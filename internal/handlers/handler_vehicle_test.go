package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/apperrors"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
	portssvc "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/services"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/dto"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/middleware"
)

// --- Mock VehicleService ---
type MockVehicleService struct {
	mock.Mock
}

func (m *MockVehicleService) ListVehicles(ctx context.Context, authCtx domain.AuthContext) ([]domain.Vehicle, error) {
	args := m.Called(ctx, authCtx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

func (m *MockVehicleService) GetVehicleByID(ctx context.Context, authCtx domain.AuthContext, vehicleID string) (*domain.Vehicle, error) {
	args := m.Called(ctx, authCtx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleService) CreateVehicle(ctx context.Context, authCtx domain.AuthContext, req dto.CreateVehicleRequest) (*domain.Vehicle, error) {
	args := m.Called(ctx, authCtx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleService) UpdateVehicle(ctx context.Context, authCtx domain.AuthContext, vehicleID string, req dto.UpdateVehicleRequest) (*domain.Vehicle, error) {
	args := m.Called(ctx, authCtx, vehicleID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleService) DeleteVehicle(ctx context.Context, authCtx domain.AuthContext, vehicleID string) error {
	return m.Called(ctx, authCtx, vehicleID).Error(0)
}

var _ portssvc.VehicleSvcFacade = (*MockVehicleService)(nil)

// --- Mock AuthContextResolver ---
type MockAuthResolver struct {
	mock.Mock
}

func (m *MockAuthResolver) ResolveAuthContext(ctx context.Context, userID string) (*domain.AuthContext, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthContext), args.Error(1)
}

var _ middleware.AuthContextResolver = (*MockAuthResolver)(nil)

// --- Test Suite ---
type VehicleHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockVehicleService *MockVehicleService
	mockResolver       *MockAuthResolver
	jwtSecret          string
	authCtx            domain.AuthContext
}

func (suite *VehicleHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *VehicleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockVehicleService = new(MockVehicleService)
	suite.mockResolver = new(MockAuthResolver)

	suite.authCtx = domain.AuthContext{
		UserID:        uuid.NewString(),
		FuneralHomeID: uuid.NewString(),
		Role:          domain.RoleAdmin,
	}
	suite.mockResolver.On("ResolveAuthContext", mock.Anything, suite.authCtx.UserID).
		Return(&suite.authCtx, nil)

	v1 := suite.router.Group("/api/v1",
		middleware.AuthMiddleware(suite.jwtSecret),
		middleware.TenantMiddleware(suite.mockResolver),
	)
	registerVehicleRoutes(v1, suite.mockVehicleService)
}

func (suite *VehicleHandlerTestSuite) doRequest(method, url string, body []byte) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.authCtx.UserID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *VehicleHandlerTestSuite) TestCreateVehicle_Success() {
	reqBody := dto.CreateVehicleRequest{Patente: "AB-CD-12", Marca: "Mercedes-Benz", Modelo: "Sprinter"}
	created := &domain.Vehicle{
		VehicleID:     uuid.NewString(),
		FuneralHomeID: suite.authCtx.FuneralHomeID,
		Patente:       "ABCD12",
		Marca:         "Mercedes-Benz",
		Modelo:        "Sprinter",
		Activo:        true,
	}

	suite.mockVehicleService.On("CreateVehicle", mock.Anything, suite.authCtx, reqBody).
		Return(created, nil).Once()

	body, _ := json.Marshal(reqBody)
	w := suite.doRequest(http.MethodPost, "/api/v1/vehicles", body)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.VehicleResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.VehicleID, resp.VehicleID)
	suite.Equal("ABCD12", resp.Patente)
	suite.mockVehicleService.AssertExpectations(suite.T())
}

func (suite *VehicleHandlerTestSuite) TestCreateVehicle_MissingPlate() {
	w := suite.doRequest(http.MethodPost, "/api/v1/vehicles", []byte(`{"marca":"Mercedes-Benz"}`))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockVehicleService.AssertNotCalled(suite.T(), "CreateVehicle", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *VehicleHandlerTestSuite) TestGetVehicle_NotFound() {
	vehicleID := uuid.NewString()

	suite.mockVehicleService.On("GetVehicleByID", mock.Anything, suite.authCtx, vehicleID).
		Return(nil, apperrors.NewNotFoundError("vehiculo no encontrado", nil)).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/vehicles/"+vehicleID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	var resp ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("vehiculo no encontrado", resp.Error)
	suite.mockVehicleService.AssertExpectations(suite.T())
}

func (suite *VehicleHandlerTestSuite) TestListVehicles_Success() {
	vehicles := []domain.Vehicle{
		{VehicleID: uuid.NewString(), Patente: "ABCD12", Activo: true},
		{VehicleID: uuid.NewString(), Patente: "EFGH34", Activo: true},
	}

	suite.mockVehicleService.On("ListVehicles", mock.Anything, suite.authCtx).
		Return(vehicles, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/vehicles", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.VehicleResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
	suite.mockVehicleService.AssertExpectations(suite.T())
}

func (suite *VehicleHandlerTestSuite) TestDeleteVehicle_Forbidden() {
	vehicleID := uuid.NewString()

	suite.mockVehicleService.On("DeleteVehicle", mock.Anything, suite.authCtx, vehicleID).
		Return(apperrors.NewForbiddenError("rol sin permiso para esta operacion", nil)).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/vehicles/"+vehicleID, nil)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockVehicleService.AssertExpectations(suite.T())
}

func (suite *VehicleHandlerTestSuite) TestRequests_WithoutToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/vehicles", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockVehicleService.AssertNotCalled(suite.T(), "ListVehicles", mock.Anything, mock.Anything)
}

func TestVehicleHandler(t *testing.T) {
	suite.Run(t, new(VehicleHandlerTestSuite))
}
