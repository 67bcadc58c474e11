package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	assert.Equal(t, "dev", Get(), "Default version should be 'dev'")
}

func TestGet_WithCustomVersion(t *testing.T) {
	originalVersion := Version
	defer func() {
		Version = originalVersion
	}()

	Version = "1.2.3"

	assert.Equal(t, "1.2.3", Get())
}

func TestInfo(t *testing.T) {
	info := Info()

	assert.Equal(t, "dev", info.Version)
	assert.Equal(t, "unknown", info.BuildTime)
	assert.Equal(t, "unknown", info.GitCommit)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
}

func TestBuildInfo_String(t *testing.T) {
	info := BuildInfo{
		Version:   "2.1.0",
		BuildTime: "2026-10-01T10:00:00Z",
		GitCommit: "abc123def456",
		GoVersion: "go1.24.0",
		Platform:  "linux/amd64",
	}

	assert.Equal(t, "demoready 2.1.0 (commit abc123def456, built 2026-10-01T10:00:00Z, go1.24.0 linux/amd64)", info.String())
}
