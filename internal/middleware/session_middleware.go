package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/collegehub/collegehub/internal/app/models/dto"
	"github.com/collegehub/collegehub/internal/app/services"
	"github.com/collegehub/collegehub/internal/session"
)

// ContextPrincipalKey is the gin context key under which the access gate
// stores the authenticated principal.
const ContextPrincipalKey = "principal"

// AccessGate resolves the session cookie to a principal and blocks
// anonymous requests. Browser navigations are redirected to the login
// page; API clients get a 401 body.
type AccessGate struct {
	authService services.AuthService
	cookieName  string
	loginPath   string
}

// NewAccessGate creates an access gate middleware backed by the given
// authentication service.
func NewAccessGate(authService services.AuthService, cookieName, loginPath string) *AccessGate {
	return &AccessGate{
		authService: authService,
		cookieName:  cookieName,
		loginPath:   loginPath,
	}
}

// RequireAdmin aborts the request unless the session cookie resolves to an
// authenticated principal.
func (g *AccessGate) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(g.cookieName)
		if err != nil {
			sessionID = ""
		}

		principal := g.authService.CurrentPrincipal(c.Request.Context(), sessionID)
		if principal == nil {
			if wantsHTML(c) {
				c.Redirect(http.StatusSeeOther, g.loginPath)
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
			return
		}

		c.Set(ContextPrincipalKey, principal)
		c.Next()
	}
}

// PrincipalFromContext returns the principal the access gate attached, or
// nil when the request is anonymous.
func PrincipalFromContext(c *gin.Context) *session.Principal {
	value, exists := c.Get(ContextPrincipalKey)
	if !exists {
		return nil
	}
	principal, ok := value.(*session.Principal)
	if !ok {
		return nil
	}
	return principal
}

func wantsHTML(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}
