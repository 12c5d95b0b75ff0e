// internal/sanitize/pipeline.go
package sanitize

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lc-cli/devtools/internal/config"
	"github.com/lc-cli/devtools/internal/logging"
	"github.com/lc-cli/devtools/internal/redact"
	"github.com/lc-cli/devtools/internal/tomlenc"
)

// Report summarizes one sanitizer run.
type Report struct {
	MainFiles     []string // discovered inputs in the config directory
	ProviderFiles []string // discovered inputs in the providers subdirectory
	Processed     int
	Failed        []string
}

// Run sanitizes every TOML file under the configured directories and
// writes masked sample copies plus a README into the output directory.
// A file that fails to parse or write is reported and skipped; the run
// itself only fails on startup problems (unusable output directory).
func Run(logger *slog.Logger, cfg *config.SanitizerConfig) (*Report, error) {
	rep := &Report{}

	mainFiles, err := filepath.Glob(filepath.Join(cfg.ConfigDir, "*.toml"))
	if err != nil {
		return nil, fmt.Errorf("globbing config directory: %w", err)
	}
	sort.Strings(mainFiles)
	rep.MainFiles = mainFiles

	if info, statErr := os.Stat(cfg.ProvidersDir); statErr == nil && info.IsDir() {
		providerFiles, globErr := filepath.Glob(filepath.Join(cfg.ProvidersDir, "*.toml"))
		if globErr != nil {
			return nil, fmt.Errorf("globbing providers directory: %w", globErr)
		}
		sort.Strings(providerFiles)
		rep.ProviderFiles = providerFiles
	}

	if len(rep.MainFiles)+len(rep.ProviderFiles) == 0 {
		logger.Info("no TOML files found", "config_dir", cfg.ConfigDir)
		return rep, nil
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	providersOut := filepath.Join(cfg.OutputDir, "providers")
	if len(rep.ProviderFiles) > 0 {
		if err := os.MkdirAll(providersOut, 0755); err != nil {
			return nil, fmt.Errorf("creating providers output directory: %w", err)
		}
	}

	logger.Info("processing configuration files",
		"config_dir", cfg.ConfigDir,
		"providers_dir", cfg.ProvidersDir,
		"output_dir", cfg.OutputDir)

	for _, in := range rep.MainFiles {
		sanitizeOne(logger, rep, in, filepath.Join(cfg.OutputDir, sampleName(in, cfg.SampleSuffix)))
	}
	for _, in := range rep.ProviderFiles {
		sanitizeOne(logger, rep, in, filepath.Join(providersOut, sampleName(in, cfg.SampleSuffix)))
	}

	if err := writeReadme(cfg, rep); err != nil {
		// The samples themselves are already on disk; a README failure
		// is not worth losing the run over.
		logger.Error("writing README failed", "error", err)
	}

	logger.Info("sanitizer run complete",
		"main_files", len(rep.MainFiles),
		"provider_files", len(rep.ProviderFiles),
		"processed", rep.Processed,
		"failed", len(rep.Failed),
		"output_dir", cfg.OutputDir)

	return rep, nil
}

func sanitizeOne(logger *slog.Logger, rep *Report, in, out string) {
	flog := logging.WithFile(logger, filepath.Base(in))
	flog.Info("processing")

	if err := sanitizeFile(in, out); err != nil {
		flog.Error("✗ sanitizing failed", "error", err)
		rep.Failed = append(rep.Failed, in)
		return
	}

	rep.Processed++
	flog.Info("✓ created sample", "sample", filepath.Base(out))
}

// sanitizeFile parses one TOML file, masks it, and writes the annotated
// sample copy.
func sanitizeFile(in, out string) error {
	var data map[string]any
	if _, err := toml.DecodeFile(in, &data); err != nil {
		return fmt.Errorf("parsing toml: %w", err)
	}

	masked := redact.Tree(data)

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating sample file: %w", err)
	}
	defer f.Close()

	header := fmt.Sprintf("# Sample configuration file for %s\n", filepath.Base(in)) +
		"# This is a sanitized version with sensitive values masked\n" +
		"# Replace <your-*> placeholders with your actual values\n" +
		"# Comments below explain what each setting does\n\n"
	if _, err := f.WriteString(header); err != nil {
		return fmt.Errorf("writing sample header: %w", err)
	}

	if err := tomlenc.Encode(f, masked); err != nil {
		return fmt.Errorf("writing sample body: %w", err)
	}
	return nil
}

// sampleName maps config.toml to config_sample.toml.
func sampleName(in, suffix string) string {
	base := filepath.Base(in)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + suffix + ".toml"
}
