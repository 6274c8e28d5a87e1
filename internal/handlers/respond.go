package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/empleo-joven-api/internal/auth"
	apierrors "github.com/yukikurage/empleo-joven-api/internal/errors"
	"github.com/yukikurage/empleo-joven-api/internal/middleware"
	"github.com/yukikurage/empleo-joven-api/internal/services"
)

// respondError maps service errors to API errors. Anything unrecognised is a
// storage failure: it is logged and reported as a generic 500 carrying
// fallback as the message.
func respondError(c *gin.Context, err error, fallback string) {
	var missing *services.MissingFieldsError
	switch {
	case errors.As(err, &missing):
		apierrors.MissingFields(c, "Faltan campos obligatorios", missing.Fields)
	case errors.Is(err, services.ErrUnknownRole):
		apierrors.BadRequest(c, "El tipo de usuario no existe")
	case errors.Is(err, services.ErrEmailTaken):
		apierrors.Conflict(c, "El correo ya está registrado")
	case errors.Is(err, services.ErrEmailNotFound),
		errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "Usuario no encontrado")
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.Unauthorized(c, "Contraseña no válida")
	case errors.Is(err, services.ErrRoleNotFound):
		apierrors.NotFound(c, "Rol no encontrado")
	case errors.Is(err, services.ErrCategoryNotFound):
		apierrors.NotFound(c, "Categoría no encontrada")
	case errors.Is(err, services.ErrRoleInUse):
		apierrors.Conflict(c, "El rol está asignado a usuarios")
	case errors.Is(err, services.ErrCategoryInUse):
		apierrors.Conflict(c, "La categoría tiene oportunidades asociadas")
	case errors.Is(err, services.ErrOpportunityNotFound):
		apierrors.NotFound(c, "Oportunidad no encontrada")
	case errors.Is(err, services.ErrPostulationNotFound):
		apierrors.NotFound(c, "Postulación no encontrada")
	case errors.Is(err, services.ErrExperienceNotFound):
		apierrors.NotFound(c, "Experiencia no encontrada")
	case errors.Is(err, services.ErrDuplicatePostulation):
		apierrors.Conflict(c, "Ya te has postulado a esta oportunidad")
	case errors.Is(err, services.ErrNoAcceptedPostulation):
		apierrors.InvalidOperation(c, "El joven no tiene una postulación aceptada para esta oportunidad")
	case errors.Is(err, auth.ErrNotOwner):
		apierrors.Forbidden(c, "No tienes acceso a esta oportunidad")
	case errors.Is(err, auth.ErrRoleNotAllowed):
		apierrors.Forbidden(c, "No tienes permisos")
	default:
		slog.ErrorContext(c.Request.Context(), fallback,
			slog.String("request_id", middleware.RequestID(c)),
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()),
		)
		apierrors.InternalError(c, fallback)
	}
}

// parseIDParam reads a numeric path parameter, answering 400 when malformed.
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Identificador inválido")
		return 0, false
	}
	return id, true
}

// currentIdentity returns the caller set by RequireAuth.
func currentIdentity(c *gin.Context) (auth.Identity, bool) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return auth.Identity{}, false
	}
	return identity, true
}
