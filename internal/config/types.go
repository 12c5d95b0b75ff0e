// internal/config/types.go
package config

// Settings is the optional tool configuration loaded from samples.yaml
type Settings struct {
	Sanitizer SanitizerConfig `yaml:"sanitizer"`
	Fixtures  FixturesConfig  `yaml:"fixtures"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// SanitizerConfig controls the config-sample sanitizer pipeline
type SanitizerConfig struct {
	ConfigDir    string `yaml:"config_dir"`    // directory holding the live TOML config files
	ProvidersDir string `yaml:"providers_dir"` // provider TOML files, default <config_dir>/providers
	OutputDir    string `yaml:"output_dir"`    // where sanitized samples are written
	SampleSuffix string `yaml:"sample_suffix"` // appended to each input file stem
}

// FixturesConfig controls the PDF fixture generator
type FixturesConfig struct {
	OutputDir string `yaml:"output_dir"`
}

type LoggingConfig struct {
	Format string `yaml:"format"`
	Level  string `yaml:"level"`
}
