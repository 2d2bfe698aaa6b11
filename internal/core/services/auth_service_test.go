package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"google.golang.org/api/idtoken"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/apperrors"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
	portssvc "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/services"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/services"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/dto"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/utils"
)

// --- Test Suite ---
type AuthServiceTestSuite struct {
	suite.Suite
	mockFuneralHomeRepo *MockFuneralHomeRepository
	mockUserRepo        *MockUserRepository
	mockTokenSvc        *MockTokenService
	mockGoogleSvc       *MockGoogleOAuthService
	service             portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockFuneralHomeRepo = new(MockFuneralHomeRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockTokenSvc = new(MockTokenService)
	suite.mockGoogleSvc = new(MockGoogleOAuthService)
	suite.service = services.NewAuthService(
		suite.mockFuneralHomeRepo,
		suite.mockUserRepo,
		suite.mockTokenSvc,
		suite.mockGoogleSvc,
	)
}

// --- Signup Tests ---

func (suite *AuthServiceTestSuite) TestSignup_ProvisionsTenantAtomically() {
	ctx := context.Background()
	req := dto.SignupRequest{
		FullName:             "Juan Perez",
		Email:                "juan@funerariasanjose.cl",
		Password:             "supersecret1",
		FuneralHomeLegalName: "Funeraria San Jose SpA",
		FuneralHomeRut:       "12.345.678-5",
	}

	suite.mockFuneralHomeRepo.On("CreateTenant", ctx,
		mock.MatchedBy(func(home domain.FuneralHome) bool {
			return home.RUT == "12345678-5" &&
				home.LegalName == req.FuneralHomeLegalName &&
				home.TradeName == req.FuneralHomeLegalName && // defaults to legal name
				home.IsActive
		}),
		mock.MatchedBy(func(branch domain.Branch) bool {
			return branch.Name == "Casa Matriz" && branch.EstadoActivo
		}),
		mock.MatchedBy(func(admin domain.User) bool {
			return admin.Email == req.Email &&
				admin.Role == domain.RoleAdmin &&
				admin.AuthProvider == domain.ProviderLocal &&
				admin.PasswordHash != nil && *admin.PasswordHash != req.Password
		}),
		mock.AnythingOfType("domain.UserBranch"),
	).Run(func(args mock.Arguments) {
		// The three records and the branch assignment must reference each other.
		home := args.Get(1).(domain.FuneralHome)
		branch := args.Get(2).(domain.Branch)
		admin := args.Get(3).(domain.User)
		assignment := args.Get(4).(domain.UserBranch)
		suite.Equal(home.FuneralHomeID, branch.FuneralHomeID)
		suite.Equal(home.FuneralHomeID, admin.FuneralHomeID)
		suite.Equal(admin.UserID, assignment.UserID)
		suite.Equal(branch.BranchID, assignment.BranchID)
	}).Return(nil).Once()

	admin, err := suite.service.Signup(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(admin)
	suite.Equal(domain.RoleAdmin, admin.Role)
	suite.True(admin.EstadoActivo)
	suite.NotEmpty(admin.FuneralHomeID)
	suite.mockFuneralHomeRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestSignup_InvalidRUT() {
	ctx := context.Background()
	req := dto.SignupRequest{
		FullName:             "Juan Perez",
		Email:                "juan@funerariasanjose.cl",
		Password:             "supersecret1",
		FuneralHomeLegalName: "Funeraria San Jose SpA",
		FuneralHomeRut:       "12.345.678-9",
	}

	admin, err := suite.service.Signup(ctx, req)

	suite.Require().Error(err)
	suite.Nil(admin)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockFuneralHomeRepo.AssertNotCalled(suite.T(), "CreateTenant", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestSignup_DuplicateTenantLeavesNothingBehind() {
	ctx := context.Background()
	req := dto.SignupRequest{
		FullName:             "Juan Perez",
		Email:                "juan@funerariasanjose.cl",
		Password:             "supersecret1",
		FuneralHomeLegalName: "Funeraria San Jose SpA",
		FuneralHomeRut:       "12345678-5",
	}
	expectedErr := apperrors.NewConflictError("ya existe una funeraria con ese RUT", nil)

	suite.mockFuneralHomeRepo.On("CreateTenant", ctx,
		mock.AnythingOfType("domain.FuneralHome"),
		mock.AnythingOfType("domain.Branch"),
		mock.AnythingOfType("domain.User"),
		mock.AnythingOfType("domain.UserBranch"),
	).Return(expectedErr).Once()

	admin, err := suite.service.Signup(ctx, req)

	suite.Require().Error(err)
	suite.Nil(admin)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockFuneralHomeRepo.AssertExpectations(suite.T())
}

// --- Login Tests ---

func (suite *AuthServiceTestSuite) activeUser(password string) *domain.User {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return &domain.User{
		UserID:        uuid.NewString(),
		FuneralHomeID: uuid.NewString(),
		Email:         "juan@funerariasanjose.cl",
		FullName:      "Juan Perez",
		Role:          domain.RoleAdmin,
		PasswordHash:  &hash,
		AuthProvider:  domain.ProviderLocal,
		EstadoActivo:  true,
	}
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	password := "supersecret1"
	user := suite.activeUser(password)

	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()
	suite.mockTokenSvc.On("GenerateAccessToken", ctx, user).
		Return("signed.jwt.token", time.Now().Add(time.Hour), nil).Once()

	token, loggedIn, err := suite.service.Login(ctx, dto.LoginRequest{Email: user.Email, Password: password})

	suite.Require().NoError(err)
	suite.Equal("signed.jwt.token", token)
	suite.Equal(user.UserID, loggedIn.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockTokenSvc.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	user := suite.activeUser("supersecret1")

	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	token, loggedIn, err := suite.service.Login(ctx, dto.LoginRequest{Email: user.Email, Password: "wrongpassword"})

	suite.Require().Error(err)
	suite.Empty(token)
	suite.Nil(loggedIn)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownEmail() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByEmail", ctx, "nobody@example.com").
		Return(nil, apperrors.ErrNotFound).Once()

	token, loggedIn, err := suite.service.Login(ctx, dto.LoginRequest{Email: "nobody@example.com", Password: "whatever1"})

	suite.Require().Error(err)
	suite.Empty(token)
	suite.Nil(loggedIn)
	// Unknown emails surface as unauthorized, not as not found.
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_InactiveUser() {
	ctx := context.Background()
	user := suite.activeUser("supersecret1")
	user.EstadoActivo = false

	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	token, loggedIn, err := suite.service.Login(ctx, dto.LoginRequest{Email: user.Email, Password: "supersecret1"})

	suite.Require().Error(err)
	suite.Empty(token)
	suite.Nil(loggedIn)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- GoogleLogin Tests ---

func (suite *AuthServiceTestSuite) TestGoogleLogin_ByProviderIdentity() {
	ctx := context.Background()
	sub := "google-subject-123"
	user := suite.activeUser("irrelevant1")
	user.AuthProvider = domain.ProviderGoogle
	user.ProviderUserID = &sub

	payload := &idtoken.Payload{Subject: sub, Claims: map[string]interface{}{"email": user.Email}}

	suite.mockGoogleSvc.On("ValidateGoogleIDToken", ctx, "raw-id-token").Return(payload, nil).Once()
	suite.mockUserRepo.On("FindUserByProviderDetails", ctx, domain.ProviderGoogle, sub).Return(user, nil).Once()
	suite.mockTokenSvc.On("GenerateAccessToken", ctx, user).
		Return("signed.jwt.token", time.Now().Add(time.Hour), nil).Once()

	token, loggedIn, err := suite.service.GoogleLogin(ctx, dto.GoogleLoginRequest{IDToken: "raw-id-token"})

	suite.Require().NoError(err)
	suite.Equal("signed.jwt.token", token)
	suite.Equal(user.UserID, loggedIn.UserID)
	suite.mockGoogleSvc.AssertExpectations(suite.T())
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestGoogleLogin_LinksExistingAccountByEmail() {
	ctx := context.Background()
	sub := "google-subject-456"
	user := suite.activeUser("irrelevant1")

	payload := &idtoken.Payload{Subject: sub, Claims: map[string]interface{}{"email": user.Email}}

	suite.mockGoogleSvc.On("ValidateGoogleIDToken", ctx, "raw-id-token").Return(payload, nil).Once()
	suite.mockUserRepo.On("FindUserByProviderDetails", ctx, domain.ProviderGoogle, sub).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.UserID == user.UserID &&
			u.AuthProvider == domain.ProviderGoogle &&
			u.ProviderUserID != nil && *u.ProviderUserID == sub
	})).Return(nil).Once()
	suite.mockTokenSvc.On("GenerateAccessToken", ctx, mock.AnythingOfType("*domain.User")).
		Return("signed.jwt.token", time.Now().Add(time.Hour), nil).Once()

	token, loggedIn, err := suite.service.GoogleLogin(ctx, dto.GoogleLoginRequest{IDToken: "raw-id-token"})

	suite.Require().NoError(err)
	suite.Equal("signed.jwt.token", token)
	suite.Equal(domain.ProviderGoogle, loggedIn.AuthProvider)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestGoogleLogin_NoAccountForIdentity() {
	ctx := context.Background()
	sub := "google-subject-789"
	payload := &idtoken.Payload{Subject: sub, Claims: map[string]interface{}{"email": "nobody@example.com"}}

	suite.mockGoogleSvc.On("ValidateGoogleIDToken", ctx, "raw-id-token").Return(payload, nil).Once()
	suite.mockUserRepo.On("FindUserByProviderDetails", ctx, domain.ProviderGoogle, sub).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "nobody@example.com").
		Return(nil, apperrors.ErrNotFound).Once()

	token, loggedIn, err := suite.service.GoogleLogin(ctx, dto.GoogleLoginRequest{IDToken: "raw-id-token"})

	suite.Require().Error(err)
	suite.Empty(token)
	suite.Nil(loggedIn)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
