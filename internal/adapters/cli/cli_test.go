package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"

	"demoready/internal/core/domain/readiness"
	"demoready/internal/core/ports"
	"demoready/internal/core/usecase/probe"
	platformHealth "demoready/internal/platform/health"
)

type stubChecker struct {
	name   string
	result readiness.CheckResult
}

func (c stubChecker) Name() string                                { return c.name }
func (c stubChecker) Check(context.Context) readiness.CheckResult { return c.result }

func withCheckers(checkers ...platformHealth.Checker) fx.Option {
	return fx.Decorate(func(platformHealth.ManagerInterface) platformHealth.ManagerInterface {
		m := platformHealth.NewManager()
		for _, c := range checkers {
			m.Register(c)
		}
		return m
	})
}

func withSteps(steps ...ports.ProbeStep) fx.Option {
	return fx.Decorate(func([]ports.ProbeStep) []ports.ProbeStep {
		return steps
	})
}

type CLITestSuite struct {
	suite.Suite
}

func (s *CLITestSuite) SetupTest() {
	t := s.T()
	t.Setenv("DOTENV_FILES", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("ENV", "test")
	t.Setenv("LOGGER_LEVEL", "error")
	t.Setenv("BACKEND_URL", "")
	t.Setenv("READINESS_OUTPUT_FORMAT", "text")
	t.Setenv("REPORT_OUTPUT_PATH", "")
	t.Setenv("PROBE_ITERATIONS", "2")
	t.Setenv("PROBE_RATE", "1000")
}

func (s *CLITestSuite) execute(modules []fx.Option, args ...string) (string, error) {
	root := NewRootCmd(Options{Modules: modules})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func (s *CLITestSuite) TestReady_AllPass() {
	out, err := s.execute([]fx.Option{withCheckers(
		stubChecker{readiness.CheckDatabase, readiness.Pass("Connected", true)},
		stubChecker{readiness.CheckFileSystem, readiness.Pass("All present", true)},
	)}, "ready")

	require.NoError(s.T(), err)
	assert.Contains(s.T(), out, "DEMO READINESS REPORT")
	assert.Contains(s.T(), out, "database_connection: Connected")
	assert.Contains(s.T(), out, "READY FOR DEMO")
}

func (s *CLITestSuite) TestReady_CriticalFailureReturnsErrNotReady() {
	out, err := s.execute([]fx.Option{withCheckers(
		stubChecker{readiness.CheckEnvironment, readiness.Fail("Missing BACKEND_URL", true)},
		stubChecker{readiness.CheckRealtime, readiness.Warning("Timed out", false)},
	)}, "ready")

	require.Error(s.T(), err)
	assert.True(s.T(), errors.Is(err, ErrNotReady))
	assert.Contains(s.T(), out, "NOT READY")
}

func (s *CLITestSuite) TestReady_JSONFormat() {
	s.T().Setenv("READINESS_OUTPUT_FORMAT", "json")

	out, err := s.execute([]fx.Option{withCheckers(
		stubChecker{readiness.CheckRealtime, readiness.Warning("Timed out", false)},
	)}, "ready")
	require.NoError(s.T(), err)

	var decoded map[string]any
	require.NoError(s.T(), json.Unmarshal([]byte(out), &decoded))
	assert.Equal(s.T(), "warning", decoded["overall"])
	assert.Equal(s.T(), true, decoded["readyForDemo"])
}

func (s *CLITestSuite) TestReady_InvalidConfig() {
	s.T().Setenv("READINESS_OUTPUT_FORMAT", "xml")

	_, err := s.execute(nil, "ready")

	require.Error(s.T(), err)
	assert.False(s.T(), errors.Is(err, ErrNotReady))
	assert.Contains(s.T(), err.Error(), "failed to build application")
}

func (s *CLITestSuite) TestProbe() {
	out, err := s.execute([]fx.Option{withSteps(
		probe.NewStep("ping", func(context.Context) error { return nil }),
		probe.NewStep("auth_round_trip", func(context.Context) error { return errors.New("invalid credentials") }),
	)}, "probe")

	require.NoError(s.T(), err)
	assert.Contains(s.T(), out, "ping")
	assert.Contains(s.T(), out, "auth_round_trip: all 2 sample(s) failed")
}

func (s *CLITestSuite) TestReport_WritesFile() {
	path := filepath.Join(s.T().TempDir(), "report.md")
	s.T().Setenv("REPORT_OUTPUT_PATH", path)
	s.T().Setenv("REPORT_TITLE", "Friday Demo")

	_, err := s.execute([]fx.Option{
		withCheckers(stubChecker{readiness.CheckDatabase, readiness.Pass("Connected", true)}),
		withSteps(probe.NewStep("ping", func(context.Context) error { return nil })),
	}, "report")
	require.NoError(s.T(), err)

	content, err := os.ReadFile(path)
	require.NoError(s.T(), err)
	assert.Contains(s.T(), string(content), "# Friday Demo")
	assert.Contains(s.T(), string(content), "database_connection")
}

func (s *CLITestSuite) TestReport_Stdout() {
	out, err := s.execute([]fx.Option{
		withCheckers(stubChecker{readiness.CheckDatabase, readiness.Pass("Connected", true)}),
		withSteps(probe.NewStep("ping", func(context.Context) error { return nil })),
	}, "report")

	require.NoError(s.T(), err)
	assert.Contains(s.T(), out, "# Demo Readiness Test Report")
}

func (s *CLITestSuite) TestVersion() {
	out, err := s.execute(nil, "version")

	require.NoError(s.T(), err)
	assert.Contains(s.T(), out, "demoready dev")
}

func (s *CLITestSuite) TestUnknownCommand() {
	_, err := s.execute(nil, "deploy")
	assert.Error(s.T(), err)
}

func TestCLITestSuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}
