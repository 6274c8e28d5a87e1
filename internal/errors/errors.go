package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes
const (
	ErrCodeUnauthorized     = "UNAUTHORIZED"
	ErrCodeForbidden        = "FORBIDDEN"
	ErrCodeInvalidInput     = "INVALID_INPUT"
	ErrCodeMissingField     = "MISSING_FIELD"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeConflict         = "CONFLICT"
	ErrCodeInvalidOperation = "INVALID_OPERATION"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// APIError represents a standardized API error response
type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new APIError
func NewAPIError(code, message string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
	}
}

// NewAPIErrorWithDetails creates a new APIError with details
func NewAPIErrorWithDetails(code, message string, details interface{}) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// RespondWithError writes err and aborts the remaining handler chain.
func RespondWithError(c *gin.Context, statusCode int, err *APIError) {
	c.AbortWithStatusJSON(statusCode, err)
}

func orDefault(message, fallback string) string {
	if message == "" {
		return fallback
	}
	return message
}

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	RespondWithError(c, http.StatusUnauthorized, NewAPIError(ErrCodeUnauthorized, orDefault(message, "Autenticación requerida")))
}

// Forbidden sends a 403 response
func Forbidden(c *gin.Context, message string) {
	RespondWithError(c, http.StatusForbidden, NewAPIError(ErrCodeForbidden, orDefault(message, "Acceso denegado")))
}

// ForbiddenWithDetails sends a 403 response carrying details
func ForbiddenWithDetails(c *gin.Context, message string, details interface{}) {
	RespondWithError(c, http.StatusForbidden, NewAPIErrorWithDetails(ErrCodeForbidden, orDefault(message, "Acceso denegado"), details))
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	RespondWithError(c, http.StatusNotFound, NewAPIError(ErrCodeNotFound, orDefault(message, "Recurso no encontrado")))
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	RespondWithError(c, http.StatusBadRequest, NewAPIError(ErrCodeInvalidInput, orDefault(message, "Solicitud inválida")))
}

// MissingFields sends a 400 response naming the absent fields
func MissingFields(c *gin.Context, message string, fields []string) {
	RespondWithError(c, http.StatusBadRequest, NewAPIErrorWithDetails(ErrCodeMissingField, orDefault(message, "Faltan campos obligatorios"), gin.H{"fields": fields}))
}

// InvalidOperation sends a 400 response for a failed business precondition
func InvalidOperation(c *gin.Context, message string) {
	RespondWithError(c, http.StatusBadRequest, NewAPIError(ErrCodeInvalidOperation, orDefault(message, "Operación no permitida")))
}

// Conflict sends a 409 response
func Conflict(c *gin.Context, message string) {
	RespondWithError(c, http.StatusConflict, NewAPIError(ErrCodeConflict, orDefault(message, "Conflicto con el estado actual")))
}

// InternalError sends a 500 response
func InternalError(c *gin.Context, message string) {
	RespondWithError(c, http.StatusInternalServerError, NewAPIError(ErrCodeInternalError, orDefault(message, "Error interno del servidor")))
}
