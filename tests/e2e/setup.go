//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"studio-agenda/cmd/bootstrap"
	"studio-agenda/cmd/bootstrap/components"
	"studio-agenda/internal/infra/gateway"
	"studio-agenda/internal/pkg/config"
	"studio-agenda/tests/e2e/common/backend"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// ------------------------------------------------------------
// Per-process environment: fake platform backend plus the fx app
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*backend.Server, *gin.Engine, config.Config) {
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	fake := backend.New(cfg.JWT.Secret)
	t.Cleanup(fake.Close)
	cfg.Backend.BaseURL = fake.URL

	router, cfg, app := buildE2EApp(cfg)
	require.NotNil(t, router, "router setup failed")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	return fake, router, cfg
}

// ------------------------------------------------------------
// Builds the application graph against the test config.
// Returns router, config, and fx.App for proper lifecycle management
// ------------------------------------------------------------
func buildE2EApp(testConfig config.Config) (*gin.Engine, config.Config, *fx.App) {
	var router *gin.Engine
	var cfg config.Config

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config { return testConfig }),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.GatewayModule,
		components.UseCaseModule,
		components.HandlerModule,

		// Each suite gets its own registry so collectors never collide.
		fx.Replace(gateway.NewMetrics(prometheus.NewRegistry())),

		fx.Populate(&router, &cfg),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}
	if router == nil {
		panic("fx app started without a router")
	}

	return router, cfg, app
}

// ------------------------------------------------------------
// Setup shared by every E2E suite
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router  *gin.Engine
	Backend *backend.Server
	Config  config.Config
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	fake, router, cfg := setupE2EEnvironment(t)
	s.Backend = fake
	s.Router = router
	s.Config = cfg
	require.NotNil(t, fake, "fake backend setup failed")
	require.NotEmpty(t, s.Config, "config not populated")
	require.NotNil(t, s.Router, "router setup failed")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

func (s *SharedSuite) SetupSubTest() {
	s.Backend.Reset()
}
