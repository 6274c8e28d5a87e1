package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/empleo-joven-api/internal/auth"
	apierrors "github.com/yukikurage/empleo-joven-api/internal/errors"
	"github.com/yukikurage/empleo-joven-api/internal/models"
)

// RequireRoles admits only callers whose role is in roles. It must run after
// RequireAuth; a request without identity is rejected as forbidden.
func RequireRoles(roles ...models.RoleID) gin.HandlerFunc {
	allowed := auth.AllowRoles(roles...)

	return func(c *gin.Context) {
		identity, exists := GetIdentity(c)
		if !exists {
			apierrors.Forbidden(c, "No tienes permisos para esta acción")
			return
		}

		if err := allowed.RequireRole(identity); err != nil {
			apierrors.ForbiddenWithDetails(c, "No tienes permisos para acceder a este recurso", gin.H{
				"userRole":      identity.RoleID,
				"requiredRoles": allowed.Roles(),
			})
			return
		}

		c.Next()
	}
}
