// Package config defines the application configuration structure, its default
// values, and validation. Values are populated by the CLI layer (flags,
// environment variables, optional config file) before the server starts.
package config

// file: internal/config/config.go

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/DiscreteTom/shinkuro-go/internal/template"
)

// Config is the root configuration for the server.
type Config struct {
	// ServerName is the name reported to clients in the initialize response.
	ServerName string `mapstructure:"server_name" yaml:"server_name"`

	// Folder is a local directory containing markdown prompt files. Either
	// Folder or GitURL must be set.
	Folder string `mapstructure:"folder" yaml:"folder"`

	// GitURL is a remote git repository containing prompt files. The
	// repository is cloned into CacheDir and scanned from there.
	GitURL string `mapstructure:"git_url" yaml:"git_url"`

	// CacheDir is where remote repositories are cloned. Supports '~' expansion.
	CacheDir string `mapstructure:"cache_dir" yaml:"cache_dir"`

	// AutoPull updates an already-cloned repository (fast-forward only)
	// before scanning.
	AutoPull bool `mapstructure:"auto_pull" yaml:"auto_pull"`

	// VariableFormat selects the template delimiter grammar: "brace" or "dollar".
	VariableFormat string `mapstructure:"variable_format" yaml:"variable_format"`

	// AutoDiscoverArgs builds each prompt's argument list from the variables
	// found in its content instead of declared frontmatter metadata.
	AutoDiscoverArgs bool `mapstructure:"auto_discover_args" yaml:"auto_discover_args"`

	// SkipFrontmatter disables frontmatter parsing; the whole file body
	// becomes the template and metadata is derived from the file name.
	SkipFrontmatter bool `mapstructure:"skip_frontmatter" yaml:"skip_frontmatter"`

	// Debug enables debug-level logging on stderr.
	Debug bool `mapstructure:"debug" yaml:"debug"`
}

// Default returns a configuration populated with default values.
func Default() *Config {
	return &Config{
		ServerName:     "shinkuro",
		CacheDir:       "~/.shinkuro/remote",
		VariableFormat: string(template.StyleBrace),
	}
}

// Validate checks that the configuration is usable: a prompt source must be
// configured and the variable format must name a known grammar.
func (c *Config) Validate() error {
	if c.Folder == "" && c.GitURL == "" {
		return errors.New("either folder or git-url must be provided")
	}
	switch template.Style(c.VariableFormat) {
	case template.StyleBrace, template.StyleDollar:
	default:
		return errors.Newf("unknown variable format: %q (want %q or %q)",
			c.VariableFormat, template.StyleBrace, template.StyleDollar)
	}
	return nil
}

// Formatter returns the template formatter selected by VariableFormat.
// Validate must have been called first.
func (c *Config) Formatter() (template.Formatter, error) {
	return template.New(template.Style(c.VariableFormat))
}

// ExpandHome expands a leading '~' in path to the user's home directory.
// Paths without a leading '~' are returned unchanged.
func ExpandHome(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory to expand path")
	}
	return filepath.Join(homeDir, path[1:]), nil
}
