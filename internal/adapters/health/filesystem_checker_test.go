package health

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"demoready/internal/core/domain/readiness"
)

func writeTree(t *testing.T, files []string, dirs []string) string {
	t.Helper()
	root := t.TempDir()
	for _, dir := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
	}
	for _, file := range files {
		path := filepath.Join(root, file)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	}
	return root
}

func TestFileSystemChecker(t *testing.T) {
	files := []string{"package.json", ".env.local"}
	dirs := []string{"app", "components", "lib"}

	t.Run("everything present", func(t *testing.T) {
		root := writeTree(t, files, dirs)

		result := NewFileSystemChecker(root, files, dirs).Check(context.Background())

		assert.Equal(t, readiness.StatusPass, result.Status)
		assert.True(t, result.Critical)
	})

	t.Run("missing paths fail critically", func(t *testing.T) {
		root := writeTree(t, []string{"package.json"}, []string{"app"})

		result := NewFileSystemChecker(root, files, dirs).Check(context.Background())

		assert.True(t, result.IsCriticalFailure())
		assert.Equal(t, []string{".env.local", "components/", "lib/"}, result.Details["missing"])
	})

	t.Run("file where a directory is expected", func(t *testing.T) {
		root := writeTree(t, []string{"lib"}, nil)

		result := NewFileSystemChecker(root, nil, []string{"lib"}).Check(context.Background())

		assert.Equal(t, readiness.StatusFail, result.Status)
	})
}

func TestVoiceChecker(t *testing.T) {
	voiceFiles := []string{"components/voice/VoiceRecorder.tsx", "lib/voice/transcribe.ts"}
	withKey := readiness.LookupFromMap(map[string]string{"TRANSCRIPTION_API_KEY": "sk-test"})

	t.Run("key and files present", func(t *testing.T) {
		root := writeTree(t, voiceFiles, nil)

		result := NewVoiceChecker("TRANSCRIPTION_API_KEY", withKey, root, voiceFiles).Check(context.Background())

		assert.Equal(t, readiness.StatusPass, result.Status)
		assert.True(t, result.Critical)
	})

	t.Run("missing key fails critically", func(t *testing.T) {
		root := writeTree(t, voiceFiles, nil)
		lookup := readiness.LookupFromMap(map[string]string{})

		result := NewVoiceChecker("TRANSCRIPTION_API_KEY", lookup, root, voiceFiles).Check(context.Background())

		assert.True(t, result.IsCriticalFailure())
		assert.Contains(t, result.Message, "TRANSCRIPTION_API_KEY")
	})

	t.Run("missing files only warn", func(t *testing.T) {
		root := writeTree(t, voiceFiles[:1], nil)

		result := NewVoiceChecker("TRANSCRIPTION_API_KEY", withKey, root, voiceFiles).Check(context.Background())

		assert.Equal(t, readiness.StatusWarning, result.Status)
		assert.False(t, result.Critical)
		assert.Equal(t, []string{"lib/voice/transcribe.ts"}, result.Details["missing"])
	})
}
