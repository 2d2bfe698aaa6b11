package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/jpcarvajal/funeraria_mgmt_app/internal/apperrors"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/core/domain"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/dto"
	"github.com/jpcarvajal/funeraria_mgmt_app/internal/middleware"
)

// ErrorResponse is the generic error payload of the API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// mustAuth pulls the resolved AuthContext out of the request, aborting with
// 401 when the tenant middleware did not run.
func mustAuth(c *gin.Context) (domain.AuthContext, bool) {
	auth, ok := middleware.GetAuthFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Auth context missing from request")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return domain.AuthContext{}, false
	}
	return auth, true
}

// respondError maps service errors onto HTTP statuses. AppError instances
// carry their own status and user-presentable message; anything else is a 500.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Code >= http.StatusInternalServerError {
			logger.Error(fallback, slog.String("error", err.Error()))
		} else {
			logger.Warn(fallback, slog.String("error", err.Error()))
		}
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Recurso no encontrado"})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Operacion no permitida"})
	case errors.Is(err, apperrors.ErrUnauthorized):
		logger.Warn(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Credenciales invalidas"})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, ErrorResponse{Error: "El recurso ya existe"})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}

// bindError rejects a request whose body or query failed binding. Validator
// failures carry a per-field detail map so forms can highlight the offending
// inputs.
func bindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Request binding failed", slog.String("error", err.Error()))

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		details := make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			details[fe.Field()] = fieldRuleMessage(fe)
		}
		c.JSON(http.StatusBadRequest, dto.APIError{Error: "Datos invalidos", Details: details})
		return
	}
	c.JSON(http.StatusBadRequest, dto.APIError{Error: "Invalid request format: " + err.Error()})
}

func fieldRuleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es obligatorio"
	case "email":
		return "debe ser un email valido"
	case "min":
		return "debe tener al menos " + fe.Param() + " caracteres"
	case "max":
		return "supera el largo maximo de " + fe.Param()
	case "rut":
		return "debe ser un RUT valido"
	case "oneof":
		return "debe ser uno de: " + fe.Param()
	default:
		return "no cumple la regla " + fe.Tag()
	}
}
