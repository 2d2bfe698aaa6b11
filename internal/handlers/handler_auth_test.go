package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
	portssvc "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/services"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/dto"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/platform/config"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, req dto.SignupRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (string, *domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.User), args.Error(2)
}

func (m *MockAuthService) GoogleLogin(ctx context.Context, req dto.GoogleLoginRequest) (string, *domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.User), args.Error(2)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Test Suite ---
type AuthHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockAuthService *MockAuthService
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	registerCustomValidations()

	suite.router = gin.New()
	suite.mockAuthService = new(MockAuthService)

	cfg := &config.Config{AuthRateLimit: "1-H"}
	registerAuthRoutes(suite.router, cfg, &portssvc.ServiceContainer{Auth: suite.mockAuthService})
}

func (suite *AuthHandlerTestSuite) postJSON(url string, body any) *httptest.ResponseRecorder {
	raw, err := json.Marshal(body)
	suite.Require().NoError(err)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *AuthHandlerTestSuite) TestSignup_ReturnsSuccessEnvelope() {
	reqBody := dto.SignupRequest{
		FullName:             "Maria Lopez",
		Email:                "maria@funerarialopez.cl",
		Password:             "super-secret",
		FuneralHomeLegalName: "Funeraria Lopez SpA",
		FuneralHomeRut:       "12.345.678-5",
	}
	created := &domain.User{UserID: uuid.NewString(), Email: reqBody.Email, Role: domain.RoleAdmin}

	suite.mockAuthService.On("Signup", mock.Anything, reqBody).Return(created, nil).Once()

	w := suite.postJSON("/api/auth/signup", reqBody)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.SignupResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.mockAuthService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestSignup_FieldLevelValidationDetails() {
	w := suite.postJSON("/api/auth/signup", gin.H{
		"fullName":             "Maria Lopez",
		"email":                "not-an-email",
		"password":             "super-secret",
		"funeralHomeLegalName": "Funeraria Lopez SpA",
		"funeralHomeRut":       "12.345.678-9",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp dto.APIError
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.NotEmpty(resp.Error)
	suite.Contains(resp.Details, "Email")
	suite.Contains(resp.Details, "FuneralHomeRut")
	suite.mockAuthService.AssertNotCalled(suite.T(), "Signup", mock.Anything, mock.Anything)
}

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	creds := dto.LoginRequest{Email: "maria@funerarialopez.cl", Password: "super-secret"}
	user := &domain.User{UserID: uuid.NewString(), Email: creds.Email, Role: domain.RoleAdmin, EstadoActivo: true}

	suite.mockAuthService.On("Login", mock.Anything, creds).Return("signed.jwt.token", user, nil).Once()

	w := suite.postJSON("/api/auth/login", creds)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("signed.jwt.token", resp.Token)
	suite.Equal(user.UserID, resp.User.UserID)
	suite.mockAuthService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestLogin_SecondAttemptRateLimited() {
	creds := dto.LoginRequest{Email: "maria@funerarialopez.cl", Password: "super-secret"}
	user := &domain.User{UserID: uuid.NewString(), Email: creds.Email, Role: domain.RoleAdmin, EstadoActivo: true}

	suite.mockAuthService.On("Login", mock.Anything, creds).Return("signed.jwt.token", user, nil).Once()

	first := suite.postJSON("/api/auth/login", creds)
	suite.Equal(http.StatusOK, first.Code)

	second := suite.postJSON("/api/auth/login", creds)
	suite.Equal(http.StatusTooManyRequests, second.Code)
	suite.mockAuthService.AssertExpectations(suite.T())
}

func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
