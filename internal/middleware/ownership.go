package middleware

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/empleo-joven-api/internal/auth"
	apierrors "github.com/yukikurage/empleo-joven-api/internal/errors"
)

// OwnerLookup returns the id of the user owning the resource identified by
// id. found is false when no such resource exists.
type OwnerLookup func(ctx context.Context, id uint64) (ownerID uint64, found bool, err error)

// OwnershipRule describes one owner-gated resource.
type OwnershipRule struct {
	Param            string
	Lookup           OwnerLookup
	NotFoundMessage  string
	ForbiddenMessage string
}

// RequireOwnership loads the resource named by the URL parameter and admits
// its owner or an administrator. A missing resource is reported before any
// authorization decision is made.
func RequireOwnership(rule OwnershipRule) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param(rule.Param), 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Identificador inválido")
			return
		}

		identity, exists := GetIdentity(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		ownerID, found, err := rule.Lookup(c.Request.Context(), id)
		if err != nil {
			slog.ErrorContext(c.Request.Context(), "ownership lookup failed",
				slog.String("request_id", RequestID(c)),
				slog.String("param", rule.Param),
				slog.Uint64("id", id),
				slog.String("error", err.Error()),
			)
			apierrors.InternalError(c, "")
			return
		}
		if !found {
			apierrors.NotFound(c, rule.NotFoundMessage)
			return
		}

		if err := auth.RequireOwner(identity, ownerID); err != nil {
			apierrors.Forbidden(c, rule.ForbiddenMessage)
			return
		}

		c.Next()
	}
}
