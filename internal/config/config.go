package config

import "github.com/spf13/viper"

// Config holds all runtime configuration for a skillgen invocation.
// Values are populated from .skillgen.yaml, SKILLGEN_* env vars, and CLI
// flags.
type Config struct {
	// Output names the default output renderer.
	Output string `mapstructure:"output"`
	// WordWrap bounds line width for terminal output.
	WordWrap int `mapstructure:"word_wrap"`
	// TemplateDir adds a directory of .tpl files on top of the built-ins.
	TemplateDir string `mapstructure:"template_dir"`
	// SkillDirs lists extra directories to scan for SKILL.md files.
	SkillDirs []string `mapstructure:"skill_dirs"`
	// Project is the default project name used in design briefs.
	Project string `mapstructure:"project"`
	// Verbose enables debug logging.
	Verbose bool `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("output", "markdown")
	viper.SetDefault("word_wrap", 80)
	viper.SetDefault("template_dir", "")
	viper.SetDefault("skill_dirs", []string{})
	viper.SetDefault("project", "")
	viper.SetDefault("verbose", false)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
