package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/jpcarvajal/funeraria_mgmt_app/internal/core/ports/services"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/dto"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/middleware"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/platform/config"
)

// authHandler handles the public authentication routes.
type authHandler struct {
	authService  portssvc.AuthSvcFacade
	tokenService portssvc.TokenSvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade, ts portssvc.TokenSvcFacade) *authHandler {
	return &authHandler{authService: as, tokenService: ts}
}

// registerAuthRoutes sets up the public authentication routes. Login routes
// are rate limited per client IP.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services.Auth, services.Token)

	rate, err := limiter.NewRateFromFormatted(cfg.AuthRateLimit)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("10-M")
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	auth := r.Group("/api/auth")
	{
		auth.POST("/signup", h.signup)
		auth.POST("/login", limitMiddleware, h.login)
		auth.POST("/google", limitMiddleware, h.googleLogin)
	}
}

// signup godoc
// @Summary Register a new funeral home
// @Description Creates the funeral home, its main branch and the admin user in one transaction
// @Tags auth
// @Accept json
// @Produce json
// @Param signup body dto.SignupRequest true "Tenant details"
// @Success 200 {object} dto.SignupResponse
// @Failure 400 {object} dto.APIError "Invalid input or duplicate RUT/email"
// @Failure 500 {object} ErrorResponse "Failed to register"
// @Router /api/auth/signup [post]
func (h *authHandler) signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if _, err := h.authService.Signup(c.Request.Context(), req); err != nil {
		respondError(c, err, "Failed to register funeral home")
		return
	}
	c.JSON(http.StatusOK, dto.SignupResponse{Success: true})
}

// login godoc
// @Summary Log in with email and password
// @Description Authenticates a user and returns a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Failure 429 {object} ErrorResponse "Too many attempts"
// @Router /api/auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to log in")
		return
	}
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, User: dto.ToUserResponse(user)})
}

// googleLogin godoc
// @Summary Log in with a Google ID token
// @Description Authenticates an existing user via Google Sign-In
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.GoogleLoginRequest true "Google ID token"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unknown or inactive user"
// @Failure 429 {object} ErrorResponse "Too many attempts"
// @Router /api/auth/google [post]
func (h *authHandler) googleLogin(c *gin.Context) {
	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	token, user, err := h.authService.GoogleLogin(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to log in with Google")
		return
	}
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, User: dto.ToUserResponse(user)})
}
