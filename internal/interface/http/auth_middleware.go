package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/comunidad/internal/domain/auth"
)

const adminClaimsKey = "admin_claims"

// authMiddleware guards admin routes with a bearer token. Without a configured
// secret the routes answer 503 instead of accepting anything.
func authMiddleware(svc auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !svc.Enabled() {
			abortWithError(c, NewHTTPError(http.StatusServiceUnavailable, "admin_disabled", "admin routes are disabled", nil))
			return
		}
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "missing or malformed bearer token", nil))
			return
		}
		claims, err := svc.ValidateToken(c.Request.Context(), token)
		if err != nil {
			abortWithError(c, fromDomainError(err, "auth_failed"))
			return
		}
		c.Set(adminClaimsKey, claims)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func getClaims(c *gin.Context) (auth.Claims, bool) {
	value, ok := c.Get(adminClaimsKey)
	if !ok {
		return auth.Claims{}, false
	}
	claims, ok := value.(auth.Claims)
	return claims, ok
}
