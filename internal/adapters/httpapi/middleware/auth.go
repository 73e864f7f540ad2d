package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	userapp "scribe/internal/core/user/service"
)

// AuthCookie carries the signed session token.
const AuthCookie = "auth_token"

// TokenParser validates a session token. Satisfied by the user service.
type TokenParser interface {
	ParseToken(raw string) (*userapp.Claims, error)
}

// AuthRequired rejects anonymous requests by redirecting them to the login
// page with a return path, and puts the requester's id and username into the
// gin context for the handlers behind it.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(AuthCookie)
		if err != nil || raw == "" {
			redirectToLogin(c)
			return
		}

		claims, err := parser.ParseToken(raw)
		if err != nil {
			redirectToLogin(c)
			return
		}

		c.Set("userID", claims.Subject)
		c.Set("username", claims.Username)
		c.Next()
	}
}

func redirectToLogin(c *gin.Context) {
	// The full request URI comes along, query string included, so the login
	// flow can land the user back exactly where they were headed. Path
	// slashes stay literal; everything else is query-encoded.
	next := strings.ReplaceAll(url.QueryEscape(c.Request.URL.RequestURI()), "%2F", "/")
	c.Redirect(http.StatusFound, "/auth/login/?next="+next)
	c.Abort()
}
