package cookie

import (
	"strings"

	"studio-agenda/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const DefaultAccessTokenCookieName = "access_token"

// GetAccessToken reads the platform's access token cookie.
func GetAccessToken(c *gin.Context, cfg config.CookieConfig) string {
	name := cfg.AccessTokenName
	if name == "" {
		name = DefaultAccessTokenCookieName
	}
	token, _ := c.Cookie(name)
	return token
}

// BearerToken extracts the token of an "Authorization: Bearer" header.
func BearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}
