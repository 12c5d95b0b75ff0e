// internal/sanitize/readme.go
package sanitize

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lc-cli/devtools/internal/config"
)

// writeReadme generates README.md in the output directory with usage
// instructions and an index of every produced sample.
func writeReadme(cfg *config.SanitizerConfig, rep *Report) error {
	var sb strings.Builder

	sb.WriteString("# Configuration Samples\n\n")
	sb.WriteString("This directory contains sanitized sample configuration files for the `lc` tool.\n\n")

	sb.WriteString("## Usage\n\n")
	fmt.Fprintf(&sb, "1. Copy the relevant sample file(s) to your `%s` directory\n", cfg.ConfigDir)
	fmt.Fprintf(&sb, "2. For provider files, copy them to `%s`\n", cfg.ProvidersDir)
	fmt.Fprintf(&sb, "3. Rename them by removing the `%s` suffix\n", cfg.SampleSuffix)
	sb.WriteString("4. Replace all `<your-*>` placeholders with your actual API keys and credentials\n\n")

	sb.WriteString("## Files\n\n")
	sb.WriteString("### Main Configuration Files\n\n")
	for _, in := range rep.MainFiles {
		fmt.Fprintf(&sb, "- `%s` - Sample for `%s`\n", sampleName(in, cfg.SampleSuffix), filepath.Base(in))
	}

	if len(rep.ProviderFiles) > 0 {
		sb.WriteString("\n### Provider Configuration Files\n\n")
		for _, in := range rep.ProviderFiles {
			fmt.Fprintf(&sb, "- `providers/%s` - Sample for `providers/%s`\n",
				sampleName(in, cfg.SampleSuffix), filepath.Base(in))
		}
	}

	sb.WriteString("\n## Directory Structure\n\n")
	sb.WriteString("```\n")
	fmt.Fprintf(&sb, "%s/\n", cfg.ConfigDir)
	for _, in := range rep.MainFiles {
		connector := "├──"
		if len(rep.ProviderFiles) == 0 && in == rep.MainFiles[len(rep.MainFiles)-1] {
			connector = "└──"
		}
		fmt.Fprintf(&sb, "%s %s\n", connector, filepath.Base(in))
	}
	if len(rep.ProviderFiles) > 0 {
		sb.WriteString("└── providers/\n")
		for i, in := range rep.ProviderFiles {
			connector := "├──"
			if i == len(rep.ProviderFiles)-1 {
				connector = "└──"
			}
			fmt.Fprintf(&sb, "    %s %s\n", connector, filepath.Base(in))
		}
	}
	sb.WriteString("```\n\n")

	sb.WriteString("## Security Note\n\n")
	sb.WriteString("⚠️ **Never commit actual API keys or credentials to version control!**\n\n")
	sb.WriteString("These sample files have all sensitive values masked with placeholders. ")
	sb.WriteString("Always keep your actual configuration files private and secure.\n")

	path := filepath.Join(cfg.OutputDir, "README.md")
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("writing README: %w", err)
	}
	return nil
}
