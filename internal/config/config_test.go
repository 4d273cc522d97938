// Package config tests configuration defaults and validation.
package config

// file: internal/config/config_test.go

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefault_PopulatesExpectedValues verifies the default configuration.
func TestDefault_PopulatesExpectedValues(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "shinkuro", cfg.ServerName)
	assert.Equal(t, "~/.shinkuro/remote", cfg.CacheDir)
	assert.Equal(t, "brace", cfg.VariableFormat)
	assert.False(t, cfg.AutoPull)
	assert.False(t, cfg.AutoDiscoverArgs)
	assert.False(t, cfg.SkipFrontmatter)
}

// TestValidate_RequiresPromptSource verifies folder/git-url requirement.
func TestValidate_RequiresPromptSource(t *testing.T) {
	cfg := Default()
	err := cfg.Validate()
	require.Error(t, err, "A configuration without folder or git-url should be invalid.")
	assert.Contains(t, err.Error(), "either folder or git-url must be provided")

	cfg.Folder = "/prompts"
	assert.NoError(t, cfg.Validate(), "A local folder satisfies the source requirement.")

	cfg.Folder = ""
	cfg.GitURL = "https://github.com/user/repo.git"
	assert.NoError(t, cfg.Validate(), "A git URL satisfies the source requirement.")
}

// TestValidate_RejectsUnknownVariableFormat verifies the closed grammar set.
func TestValidate_RejectsUnknownVariableFormat(t *testing.T) {
	cfg := Default()
	cfg.Folder = "/prompts"
	cfg.VariableFormat = "percent"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown variable format")
}

// TestFormatter_ReturnsSelectedGrammar verifies formatter selection from config.
func TestFormatter_ReturnsSelectedGrammar(t *testing.T) {
	cfg := Default()
	cfg.VariableFormat = "dollar"

	f, err := cfg.Formatter()
	require.NoError(t, err)

	out := f.Format("Hello $user", map[string]string{"user": "Alice"})
	assert.Equal(t, "Hello Alice", out)
}

// TestExpandHome_ExpandsTildePrefix verifies '~' expansion.
func TestExpandHome_ExpandsTildePrefix(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	expanded, err := ExpandHome("~/prompts")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "prompts"), expanded)

	unchanged, err := ExpandHome("/absolute/path")
	require.NoError(t, err)
	assert.Equal(t, "/absolute/path", unchanged)

	empty, err := ExpandHome("")
	require.NoError(t, err)
	assert.Equal(t, "", empty)
}
