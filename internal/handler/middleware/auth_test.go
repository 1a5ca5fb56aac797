//go:build unit

package middleware_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"studio-agenda/internal/handler/middleware"
	"studio-agenda/internal/pkg/config"
	"studio-agenda/internal/pkg/jwt"
	"studio-agenda/internal/usecase"
	"studio-agenda/internal/usecase/shared"
	"studio-agenda/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router *gin.Engine
	jwt    *jwt.Service
	cfg    config.Config

	seenStudentID string
	seenToken     string
	seenRequestID string
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.cfg = config.NewTestConfig()
	s.jwt = jwt.NewService(s.cfg.JWT.Secret)
	s.seenStudentID, s.seenToken, s.seenRequestID = "", "", ""

	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(s.jwt), s.cfg)
	logger := middleware.NewLogger(s.cfg.Log)

	s.router = gin.New()
	s.router.Use(logger.LoggingMiddleware())
	s.router.Use(middleware.ErrorHandler())
	s.router.GET("/api/agenda", auth.RequireAuth(), func(c *gin.Context) {
		s.seenStudentID, _ = middleware.GetStudentID(c)
		s.seenToken = shared.AccessToken(c.Request.Context())
		s.seenRequestID = shared.RequestID(c.Request.Context())
		c.Status(http.StatusOK)
	})
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	s.Run("bearer token authenticates and is forwarded", func() {
		token, err := s.jwt.GenerateToken("42", time.Hour)
		s.Require().NoError(err)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/agenda", nil, token)

		s.Equal(http.StatusOK, rec.Code)
		s.Equal("42", s.seenStudentID)
		s.Equal(token, s.seenToken)
		s.NotEmpty(s.seenRequestID)
		s.Equal(s.seenRequestID, rec.Header().Get(middleware.RequestIDHeader))
	})

	s.Run("cookie takes precedence over the header", func() {
		cookieToken, err := s.jwt.GenerateToken("7", time.Hour)
		s.Require().NoError(err)
		headerToken, err := s.jwt.GenerateToken("8", time.Hour)
		s.Require().NoError(err)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/agenda", nil, headerToken,
			httptest.WithCookie(s.cfg.Cookie.AccessTokenName, cookieToken))

		s.Equal(http.StatusOK, rec.Code)
		s.Equal("7", s.seenStudentID)
		s.Equal(cookieToken, s.seenToken)
	})

	s.Run("missing token is rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/agenda", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, shared.MsgAuth)
	})

	s.Run("expired token is rejected", func() {
		token, err := s.jwt.GenerateToken("42", -time.Minute)
		s.Require().NoError(err)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/agenda", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, shared.MsgAuth)
	})

	s.Run("token signed with another secret is rejected", func() {
		token, err := jwt.NewService("other-secret").GenerateToken("42", time.Hour)
		s.Require().NoError(err)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/agenda", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, shared.MsgAuth)
	})
}

func (s *AuthMiddlewareTestSuite) TestRequestIDIsReused() {
	token, err := s.jwt.GenerateToken("42", time.Hour)
	s.Require().NoError(err)

	s.Run("short incoming id is kept", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/agenda", nil, token,
			httptest.WithHeader(middleware.RequestIDHeader, "req-from-web"))

		s.Equal("req-from-web", s.seenRequestID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{middleware.RequestIDHeader: "req-from-web"})
	})

	s.Run("oversized incoming id is replaced", func() {
		long := strings.Repeat("x", 200)
		httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/agenda", nil, token,
			httptest.WithHeader(middleware.RequestIDHeader, long))

		s.NotEqual(long, s.seenRequestID)
		s.NotEmpty(s.seenRequestID)
	})
}
