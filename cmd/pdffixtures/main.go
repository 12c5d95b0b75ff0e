// cmd/pdffixtures/main.go
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/lc-cli/devtools/internal/config"
	"github.com/lc-cli/devtools/internal/logging"
	"github.com/lc-cli/devtools/internal/pdffix"
)

var cli struct {
	Config    string `short:"c" help:"Settings file path" type:"path"`
	Verbose   bool   `short:"v" help:"Enable verbose logging"`
	OutputDir string `short:"o" help:"Output directory for generated fixtures"`
}

func main() {
	kong.Parse(&cli,
		kong.Name("pdffixtures"),
		kong.Description("Generate the PDF test fixture set for reader tests."))

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var cfg *config.Settings
	var err error
	if cli.Config != "" {
		cfg, err = config.Load(cli.Config)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return err
	}

	if cli.OutputDir != "" {
		cfg.Fixtures.OutputDir = cli.OutputDir
	}

	level := cfg.Logging.Level
	if cli.Verbose {
		level = "debug"
	}
	logger := logging.NewLogger(cfg.Logging.Format, level, os.Stdout)

	return pdffix.Run(logger, cfg.Fixtures.OutputDir)
}
