package middleware

import (
	"log/slog"
	"net/http"

	"studio-agenda/internal/handler/httperr"
	"studio-agenda/internal/pkg/config"
	"studio-agenda/internal/pkg/cookie"
	"studio-agenda/internal/pkg/errs"
	"studio-agenda/internal/usecase"
	"studio-agenda/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
	cookieCfg      config.CookieConfig
}

const ctxStudentIDKey = "student_id"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator, cfg config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		cookieCfg:      cfg.Cookie,
	}
}

// RequireAuth accepts the platform cookie or a bearer token, and forwards the token
// to the backend through the request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAccessToken(c, m.cookieCfg)
		if token == "" {
			token = cookie.BearerToken(c)
		}

		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrAuth, shared.MsgAuth, nil)
			return
		}

		studentID, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, shared.MsgAuth, nil)
			return
		}

		c.Set(ctxStudentIDKey, studentID)
		c.Request = c.Request.WithContext(shared.WithAccessToken(c.Request.Context(), token))
		c.Next()
	}
}

func GetStudentID(c *gin.Context) (string, bool) {
	studentID, exists := c.Get(ctxStudentIDKey)
	if !exists {
		return "", false
	}

	id, ok := studentID.(string)
	return id, ok && id != ""
}
