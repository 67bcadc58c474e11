package http

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"demoready/internal/config"
	"demoready/internal/platform/logger"
)

type ServerTestSuite struct {
	suite.Suite
	logger logger.Logger
}

func (s *ServerTestSuite) SetupTest() {
	s.logger = logger.NewNop()
}

func (s *ServerTestSuite) freePort() int {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)
	port := listener.Addr().(*net.TCPAddr).Port
	s.Require().NoError(listener.Close())
	return port
}

func (s *ServerTestSuite) TestNewServer() {
	cfg := &config.HttpConfig{
		Server: config.HttpServerConfig{
			Host:            "127.0.0.1",
			Port:            8089,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    90 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
	}
	handler := http.NewServeMux()

	server := NewServer(cfg, s.logger, handler)

	s.Equal("127.0.0.1:8089", server.Addr())
	s.Equal(handler, server.server.Handler)
	s.Equal(15*time.Second, server.server.ReadTimeout)
	s.Equal(90*time.Second, server.server.WriteTimeout)
	s.Equal(120*time.Second, server.server.IdleTimeout)
	s.Equal(30*time.Second, server.shutdownTimeout)
}

func (s *ServerTestSuite) TestStartServeStop() {
	port := s.freePort()
	cfg := &config.HttpConfig{Server: config.HttpServerConfig{Host: "127.0.0.1", Port: port, ShutdownTimeout: time.Second}}
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	server := NewServer(cfg, s.logger, handler)
	ctx := context.Background()

	s.Require().NoError(server.Start(ctx))

	s.Eventually(func() bool {
		resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/", port))
		if err != nil {
			return false
		}
		defer func() { _ = resp.Body.Close() }()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && string(body) == "ok"
	}, 2*time.Second, 20*time.Millisecond)

	s.Require().NoError(server.Stop(ctx))

	_, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/", port))
	s.Error(err)
}

func (s *ServerTestSuite) TestStart_InvalidPort() {
	cfg := &config.HttpConfig{Server: config.HttpServerConfig{Host: "127.0.0.1", Port: 99999}}

	err := NewServer(cfg, s.logger, http.NewServeMux()).Start(context.Background())

	s.Error(err)
}

func (s *ServerTestSuite) TestStart_CancelledContext() {
	cfg := &config.HttpConfig{Server: config.HttpServerConfig{Host: "127.0.0.1", Port: s.freePort()}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewServer(cfg, s.logger, http.NewServeMux()).Start(ctx)

	s.NoError(err)
}

func (s *ServerTestSuite) TestStop_NilServer() {
	server := &Server{logger: s.logger}

	s.NoError(server.Stop(context.Background()))
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}
