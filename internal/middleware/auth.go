package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/empleo-joven-api/internal/auth"
	"github.com/yukikurage/empleo-joven-api/internal/constants"
	apierrors "github.com/yukikurage/empleo-joven-api/internal/errors"
)

// TokenVerifier decodes a bearer token into the caller's identity.
type TokenVerifier interface {
	Verify(token string) (auth.Identity, error)
}

// RequireAuth checks the bearer token and stores the caller's identity in
// the request context.
func RequireAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader(constants.HeaderAuthorization))
		if !ok {
			apierrors.Unauthorized(c, "Token requerido")
			return
		}

		identity, err := verifier.Verify(token)
		if err != nil {
			apierrors.Unauthorized(c, "Token inválido o expirado")
			return
		}

		SetIdentity(c, identity)
		c.Next()
	}
}

// SetIdentity stores identity in the request context.
func SetIdentity(c *gin.Context, identity auth.Identity) {
	c.Set(constants.ContextKeyIdentity, identity)
}

// GetIdentity retrieves the authenticated caller from context
func GetIdentity(c *gin.Context) (auth.Identity, bool) {
	value, exists := c.Get(constants.ContextKeyIdentity)
	if !exists {
		return auth.Identity{}, false
	}
	identity, ok := value.(auth.Identity)
	return identity, ok
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, constants.BearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
