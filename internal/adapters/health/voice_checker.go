package health

import (
	"context"
	"fmt"
	"os"
	"strings"

	"demoready/internal/core/domain/readiness"
	"demoready/internal/platform/health"
)

// VoiceChecker covers the voice ordering path: a transcription key is
// required, the client source files are nice to have.
type VoiceChecker struct {
	keyEnv string
	lookup readiness.LookupFunc
	root   string
	files  []string
}

// Compile-time interface check
var _ health.Checker = (*VoiceChecker)(nil)

func NewVoiceChecker(keyEnv string, lookup readiness.LookupFunc, root string, files []string) *VoiceChecker {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &VoiceChecker{keyEnv: keyEnv, lookup: lookup, root: root, files: files}
}

func (c *VoiceChecker) Name() string {
	return readiness.CheckVoice
}

func (c *VoiceChecker) Check(context.Context) readiness.CheckResult {
	if missing := readiness.MissingVariables([]string{c.keyEnv}, c.lookup); len(missing) > 0 {
		return readiness.Fail(fmt.Sprintf("Transcription API key %s is not set", c.keyEnv), true)
	}

	missing := make([]string, 0)
	for _, file := range c.files {
		if !pathExists(c.root, file, false) {
			missing = append(missing, file)
		}
	}
	if len(missing) > 0 {
		return readiness.Warning(
			fmt.Sprintf("Voice component file(s) missing: %s", strings.Join(missing, ", ")),
			false,
		).WithDetails(map[string]any{"missing": missing})
	}

	return readiness.Pass("Transcription key set and voice components present", true)
}
