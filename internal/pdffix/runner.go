// internal/pdffix/runner.go
package pdffix

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/lc-cli/devtools/internal/logging"
)

// Run builds the full fixture set into dir. A builder failure is reported
// and the remaining builders still run; the only fatal conditions are an
// unusable fixtures directory and a run where nothing could be built.
func Run(logger *slog.Logger, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating fixtures directory: %w", err)
	}
	return runBuilders(logger, dir, Builders())
}

func runBuilders(logger *slog.Logger, dir string, builders []Builder) error {
	var failed int
	for _, b := range builders {
		blog := logging.WithFixture(logger, b.Name)
		if err := b.Fn(dir); err != nil {
			blog.Error("✗ fixture failed", "error", err)
			failed++
			continue
		}
		blog.Info("✓ created", "file", b.File)
	}

	if failed == len(builders) {
		return fmt.Errorf("all %d fixture builders failed", failed)
	}

	listFixtures(logger, dir)
	logger.Info("fixture run complete",
		"created", len(builders)-failed,
		"failed", failed,
		"dir", dir)
	return nil
}

// listFixtures logs the produced documents with their sizes.
func listFixtures(logger *slog.Logger, dir string) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.pdf"))
	if err != nil {
		return
	}
	sort.Strings(paths)
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			continue
		}
		logger.Info("fixture ready", "file", filepath.Base(p), "bytes", info.Size())
	}
}
