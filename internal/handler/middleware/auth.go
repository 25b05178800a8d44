package middleware

import (
	"log/slog"
	"strings"

	"turfbook/internal/domain/principal"
	"turfbook/internal/handler/httperr"
	"turfbook/internal/pkg/cookie"
	"turfbook/internal/pkg/errs"
	"turfbook/internal/usecase"

	"github.com/gin-gonic/gin"
)

var errInsufficientRole = errs.Mark(errs.New("insufficient role"), errs.ErrForbidden)

type AuthMiddleware struct {
	resolver usecase.PrincipalResolver
}

const (
	ctxPrincipalKey = "principal"
	ctxClaimsKey    = "jwt_claims"
)

func NewAuthMiddleware(resolver usecase.PrincipalResolver) *AuthMiddleware {
	return &AuthMiddleware{
		resolver: resolver,
	}
}

// RequireAuth accepts the session cookie or a bearer token and stores one principal.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := m.resolver.Resolve(c.Request.Context(), extractToken(c))
		if err != nil {
			slog.Warn("principal resolution failed", "error", err.Error())
			httperr.Abort(c, err, nil)
			return
		}

		setPrincipal(c, p)
		c.Next()
	}
}

// RequireRoleAtLeast must run after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole principal.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			httperr.Abort(c, usecase.ErrInvalidCredentials, nil)
			return
		}
		if !p.Role().AtLeast(minRole) {
			httperr.Abort(c, errInsufficientRole, nil)
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func setPrincipal(c *gin.Context, p principal.Principal) {
	c.Set(ctxPrincipalKey, p)
	c.Set(ctxClaimsKey, map[string]any{
		"user_id": p.ID().String(),
		"role":    p.Role().String(),
	})
}

func GetPrincipal(c *gin.Context) (principal.Principal, bool) {
	v, exists := c.Get(ctxPrincipalKey)
	if !exists {
		return principal.Principal{}, false
	}
	p, ok := v.(principal.Principal)
	return p, ok
}
