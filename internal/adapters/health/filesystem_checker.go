package health

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"demoready/internal/core/domain/readiness"
	"demoready/internal/platform/health"
)

type FileSystemChecker struct {
	root  string
	files []string
	dirs  []string
}

// Compile-time interface check
var _ health.Checker = (*FileSystemChecker)(nil)

func NewFileSystemChecker(root string, files, dirs []string) *FileSystemChecker {
	return &FileSystemChecker{root: root, files: files, dirs: dirs}
}

func (c *FileSystemChecker) Name() string {
	return readiness.CheckFileSystem
}

func (c *FileSystemChecker) Check(context.Context) readiness.CheckResult {
	missing := make([]string, 0)
	for _, file := range c.files {
		if !pathExists(c.root, file, false) {
			missing = append(missing, file)
		}
	}
	for _, dir := range c.dirs {
		if !pathExists(c.root, dir, true) {
			missing = append(missing, dir+"/")
		}
	}

	if len(missing) > 0 {
		return readiness.Fail(
			fmt.Sprintf("Missing %d required path(s): %s", len(missing), strings.Join(missing, ", ")),
			true,
		).WithDetails(map[string]any{"missing": missing, "root": c.root})
	}

	return readiness.Pass(
		fmt.Sprintf("All %d required files and %d directories present", len(c.files), len(c.dirs)),
		true,
	)
}

func pathExists(root, name string, wantDir bool) bool {
	path := name
	if !filepath.IsAbs(name) {
		path = filepath.Join(root, name)
	}

	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir() == wantDir
}
