package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/empleo-joven-api/internal/auth"
	apierrors "github.com/yukikurage/empleo-joven-api/internal/errors"
)

// RequireSelfOrAdmin checks that the user id in the URL parameter param is
// the caller's own, unless the caller is an administrator.
func RequireSelfOrAdmin(param, forbiddenMessage string) gin.HandlerFunc {
	return func(c *gin.Context) {
		targetID, err := strconv.ParseUint(c.Param(param), 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Identificador de usuario inválido")
			return
		}

		identity, exists := GetIdentity(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		if err := auth.RequireOwner(identity, targetID); err != nil {
			apierrors.Forbidden(c, forbiddenMessage)
			return
		}

		c.Next()
	}
}
