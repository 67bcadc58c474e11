package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"demoready/internal/core/domain/readiness"
)

type LoadersTestSuite struct {
	suite.Suite
}

func (s *LoadersTestSuite) SetupTest() {
	clearEnv(s.T(), baseEnvKeys...)
	clearEnv(s.T(),
		// alternate names envconfig falls back to
		"URL", "EMAIL", "PASSWORD", "TIMEOUT", "ROLES", "FILES", "CHANNEL", "THRESHOLD",
		"ENDPOINTS", "RESOLVER", "OUTPUT_FORMAT", "ITERATIONS", "RATE", "TITLE", "OUTPUT_PATH",
		"BACKEND_URL", "BACKEND_ANON_KEY", "BACKEND_TIMEOUT", "BACKEND_SIGN_IN_PATH", "BACKEND_SIGN_OUT_PATH",
		"CHECKS_REQUIRED_ENV", "CHECKS_REQUIRED_FILES", "CHECKS_REQUIRED_DIRS", "CHECKS_WORK_DIR",
		"APP_URL", "APP_ENDPOINTS", "DEMO_EMAIL", "DEMO_PASSWORD", "DEMO_ROLES",
		"DEMO_USERS_TABLE", "DEMO_ROLE_COLUMN", "DEMO_TABLES_TABLE",
		"REALTIME_CHANNEL", "REALTIME_TIMEOUT", "PERFORMANCE_THRESHOLD",
		"VOICE_API_KEY_ENV", "VOICE_FILES", "DNS_RESOLVER", "DNS_QUERY_TIMEOUT",
		"READINESS_OUTPUT_FORMAT", "PROBE_ITERATIONS", "PROBE_RATE",
		"PROBE_FAST_THRESHOLD", "PROBE_SLOW_THRESHOLD", "REPORT_TITLE", "REPORT_OUTPUT_PATH",
	)
}

func (s *LoadersTestSuite) TestLoadBackend_Defaults() {
	cfg, err := LoadBackend()

	s.Require().NoError(err)
	s.Assert().Empty(cfg.Backend.URL)
	s.Assert().False(cfg.Backend.Configured())
	s.Assert().Equal(10*time.Second, cfg.Backend.Timeout)
	s.Assert().Equal("/auth/v1/token?grant_type=password", cfg.Backend.SignInPath)
	s.Assert().Equal("/auth/v1/logout", cfg.Backend.SignOutPath)
}

func (s *LoadersTestSuite) TestLoadBackend_WithEnvironmentVariables() {
	setEnv(s.T(), map[string]string{
		"BACKEND_URL":      "https://project.backend.example.com",
		"BACKEND_ANON_KEY": "anon-key",
		"BACKEND_TIMEOUT":  "3s",
	})

	cfg, err := LoadBackend()

	s.Require().NoError(err)
	s.Assert().True(cfg.Backend.Configured())
	s.Assert().Equal("https://project.backend.example.com", cfg.Backend.URL)
	s.Assert().Equal("anon-key", cfg.Backend.AnonKey)
	s.Assert().Equal(3*time.Second, cfg.Backend.Timeout)
}

func (s *LoadersTestSuite) TestLoadChecks_Defaults() {
	cfg, err := LoadChecks()

	s.Require().NoError(err)
	s.Assert().Equal([]string{"BACKEND_URL", "BACKEND_ANON_KEY", "POSTGRES_HOST", "POSTGRES_PASSWORD", "TRANSCRIPTION_API_KEY"}, cfg.Required.Env)
	s.Assert().Equal([]string{"package.json", ".env.local"}, cfg.Required.Files)
	s.Assert().Equal([]string{"app", "components", "lib"}, cfg.Required.Dirs)
	s.Assert().Equal(".", cfg.Required.WorkDir)
	s.Assert().Equal("http://localhost:3000", cfg.App.URL)
	s.Assert().Equal([]string{"/", "/api/health"}, cfg.App.Endpoints)
	s.Assert().Empty(cfg.Demo.Email)
	s.Assert().Equal([]string{"admin", "server"}, cfg.Demo.Roles)
	s.Assert().Equal("users", cfg.Demo.UsersTable)
	s.Assert().Equal("role", cfg.Demo.RoleColumn)
	s.Assert().Equal("tables", cfg.Demo.TablesTable)
	s.Assert().Equal("demo_readiness", cfg.Realtime.Channel)
	s.Assert().Equal(5*time.Second, cfg.Realtime.Timeout)
	s.Assert().Equal(time.Second, cfg.Performance.Threshold)
	s.Assert().Equal("TRANSCRIPTION_API_KEY", cfg.Voice.APIKeyEnv)
	s.Assert().Len(cfg.Voice.Files, 2)
	s.Assert().Empty(cfg.DNS.Resolver)
	s.Assert().Equal(2*time.Second, cfg.DNS.Timeout)
	s.Assert().Equal(readiness.FormatText, cfg.Output.Format)
}

func (s *LoadersTestSuite) TestLoadChecks_WithEnvironmentVariables() {
	setEnv(s.T(), map[string]string{
		"CHECKS_REQUIRED_ENV":     "A,B",
		"DEMO_EMAIL":              "demo@example.com",
		"DEMO_PASSWORD":           "demo-pass",
		"DEMO_ROLES":              "manager",
		"REALTIME_TIMEOUT":        "750ms",
		"PERFORMANCE_THRESHOLD":   "250ms",
		"DNS_RESOLVER":            "1.1.1.1:53",
		"READINESS_OUTPUT_FORMAT": "yml",
	})

	cfg, err := LoadChecks()

	s.Require().NoError(err)
	s.Assert().Equal([]string{"A", "B"}, cfg.Required.Env)
	s.Assert().Equal("demo@example.com", cfg.Demo.Email)
	s.Assert().Equal("demo-pass", cfg.Demo.Password)
	s.Assert().Equal([]string{"manager"}, cfg.Demo.Roles)
	s.Assert().Equal(750*time.Millisecond, cfg.Realtime.Timeout)
	s.Assert().Equal(250*time.Millisecond, cfg.Performance.Threshold)
	s.Assert().Equal("1.1.1.1:53", cfg.DNS.Resolver)
	s.Assert().Equal(readiness.FormatYAML, cfg.Output.Format)
}

func (s *LoadersTestSuite) TestLoadChecks_InvalidOutputFormat() {
	s.T().Setenv("READINESS_OUTPUT_FORMAT", "xml")

	cfg, err := LoadChecks()

	s.Assert().Error(err)
	s.Assert().Nil(cfg)
}

func (s *LoadersTestSuite) TestLoadProbe() {
	cfg, err := LoadProbe()

	s.Require().NoError(err)
	s.Assert().Equal(3, cfg.Probe.Iterations)
	s.Assert().Equal(5.0, cfg.Probe.Rate)
	s.Assert().Equal(200*time.Millisecond, cfg.Probe.FastThreshold)
	s.Assert().Equal(time.Second, cfg.Probe.SlowThreshold)

	setEnv(s.T(), map[string]string{"PROBE_ITERATIONS": "10", "PROBE_RATE": "0.5"})

	cfg, err = LoadProbe()

	s.Require().NoError(err)
	s.Assert().Equal(10, cfg.Probe.Iterations)
	s.Assert().Equal(0.5, cfg.Probe.Rate)
}

func (s *LoadersTestSuite) TestLoadReport() {
	cfg, err := LoadReport()

	s.Require().NoError(err)
	s.Assert().Equal("Demo Readiness Test Report", cfg.Report.Title)
	s.Assert().Empty(cfg.Report.OutputPath)

	s.T().Setenv("REPORT_OUTPUT_PATH", "reports/demo.md")

	cfg, err = LoadReport()

	s.Require().NoError(err)
	s.Assert().Equal("reports/demo.md", cfg.Report.OutputPath)
}

func TestLoadersTestSuite(t *testing.T) {
	suite.Run(t, new(LoadersTestSuite))
}
