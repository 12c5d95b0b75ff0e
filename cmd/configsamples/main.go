// cmd/configsamples/main.go
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/lc-cli/devtools/internal/config"
	"github.com/lc-cli/devtools/internal/logging"
	"github.com/lc-cli/devtools/internal/sanitize"
)

var cli struct {
	Config    string `short:"c" help:"Settings file path" type:"path"`
	Verbose   bool   `short:"v" help:"Enable verbose logging"`
	ConfigDir string `help:"Directory holding the live TOML config files"`
	OutputDir string `short:"o" help:"Output directory for sanitized samples"`
}

func main() {
	kong.Parse(&cli,
		kong.Name("configsamples"),
		kong.Description("Generate sanitized sample copies of the local lc configuration files."))

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	if cli.ConfigDir != "" {
		cfg.Sanitizer.ConfigDir = cli.ConfigDir
		cfg.Sanitizer.ProvidersDir = filepath.Join(cli.ConfigDir, "providers")
	}
	if cli.OutputDir != "" {
		cfg.Sanitizer.OutputDir = cli.OutputDir
	}

	level := cfg.Logging.Level
	if cli.Verbose {
		level = "debug"
	}
	logger := logging.NewLogger(cfg.Logging.Format, level, os.Stdout)

	// Per-file failures are handled and logged inside the pipeline; only
	// startup problems propagate to the exit code.
	_, err = sanitize.Run(logger, &cfg.Sanitizer)
	return err
}

func loadSettings() (*config.Settings, error) {
	if cli.Config != "" {
		return config.Load(cli.Config)
	}
	return config.LoadDefault()
}
