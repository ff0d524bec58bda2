package middleware

import (
	"context"
	"net/http"
	"strings"

	"billing_insurance/internal/domain/identity"
	"billing_insurance/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IdentityProvider resolves a bearer token into the calling user.
type IdentityProvider interface {
	Resolve(ctx context.Context, token string) (identity.Identity, error)
}

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication credentials were not provided or are invalid", http.StatusUnauthorized)

// Auth requires a valid bearer token and stores the caller identity in the request
// context. With a nil provider every request passes; a token, when present, is still
// kept so collaborator calls can forward it.
func Auth(provider IdentityProvider, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if provider == nil {
			if token != "" {
				ctx := identity.WithIdentity(c.Request.Context(), identity.Identity{Token: token})
				c.Request = c.Request.WithContext(ctx)
			}
			c.Next()
			return
		}

		if token == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		id, err := provider.Resolve(c.Request.Context(), token)
		if err != nil {
			log.Info("[auth][middleware] token rejected", zap.String("path", c.Request.URL.Path), zap.Error(err))
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		id.Token = token
		c.Request = c.Request.WithContext(identity.WithIdentity(c.Request.Context(), id))
		c.Next()
	}
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
