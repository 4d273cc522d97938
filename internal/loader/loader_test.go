// Package loader tests markdown scanning and frontmatter parsing.
package loader

// file: internal/loader/loader_test.go

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DiscreteTom/shinkuro-go/internal/logging"
	"github.com/DiscreteTom/shinkuro-go/internal/template"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// TestParseMarkdown_WithFrontmatter_UsesMetadata verifies full frontmatter parsing.
func TestParseMarkdown_WithFrontmatter_UsesMetadata(t *testing.T) {
	content := `---
name: greet
title: Greeting
description: Say hello
arguments:
  - name: user
    description: User name
  - name: tone
    description: Tone of voice
    default: friendly
---
Hello {user}, be {tone}.
`
	record, err := parseMarkdown("/prompts/greet.md", "/prompts", content, false)
	require.NoError(t, err)

	assert.Equal(t, "greet", record.Name)
	assert.Equal(t, "Greeting", record.Title)
	assert.Equal(t, "Say hello", record.Description)
	assert.Equal(t, "Hello {user}, be {tone}.", record.Content)

	require.Len(t, record.Arguments, 2)
	assert.Equal(t, "user", record.Arguments[0].Name)
	assert.Nil(t, record.Arguments[0].Default, "Argument without default should have nil Default.")
	assert.Equal(t, "tone", record.Arguments[1].Name)
	require.NotNil(t, record.Arguments[1].Default)
	assert.Equal(t, "friendly", *record.Arguments[1].Default)
}

// TestParseMarkdown_NoFrontmatter_DerivesMetadataFromPath verifies the defaults.
func TestParseMarkdown_NoFrontmatter_DerivesMetadataFromPath(t *testing.T) {
	record, err := parseMarkdown("/prompts/sub/task.md", "/prompts", "Do the thing.\n", false)
	require.NoError(t, err)

	assert.Equal(t, "task", record.Name)
	assert.Equal(t, "task", record.Title)
	assert.Equal(t, "Prompt from sub/task.md", record.Description)
	assert.Equal(t, "Do the thing.", record.Content)
	assert.Empty(t, record.Arguments)
}

// TestParseMarkdown_SkipFrontmatter_TreatsWholeFileAsContent verifies skip mode.
func TestParseMarkdown_SkipFrontmatter_TreatsWholeFileAsContent(t *testing.T) {
	content := "---\nname: ignored\n---\nBody text\n"
	record, err := parseMarkdown("/prompts/raw.md", "/prompts", content, true)
	require.NoError(t, err)

	assert.Equal(t, "raw", record.Name, "Metadata should derive from the file name in skip mode.")
	assert.Equal(t, content[:len(content)-1], record.Content, "The whole trimmed file should be the content.")
	assert.Empty(t, record.Arguments)
}

// TestParseMarkdown_UnterminatedFrontmatter_IsBody verifies an incomplete block is not metadata.
func TestParseMarkdown_UnterminatedFrontmatter_IsBody(t *testing.T) {
	content := "---\nname: broken\nno closing delimiter\n"
	record, err := parseMarkdown("/prompts/x.md", "/prompts", content, false)
	require.NoError(t, err)

	assert.Equal(t, "x", record.Name)
	assert.Contains(t, record.Content, "no closing delimiter")
}

// TestParseMarkdown_ScalarMetadata_Stringified verifies the lenient scalar handling.
func TestParseMarkdown_ScalarMetadata_Stringified(t *testing.T) {
	content := `---
name: 42
title: true
arguments:
  - name: user
    default: 7
---
Hello {user}
`
	record, err := parseMarkdown("/prompts/n.md", "/prompts", content, false)
	require.NoError(t, err)

	assert.Equal(t, "42", record.Name, "Numeric scalars should be kept as their literal text.")
	assert.Equal(t, "true", record.Title)
	require.Len(t, record.Arguments, 1)
	require.NotNil(t, record.Arguments[0].Default)
	assert.Equal(t, "7", *record.Arguments[0].Default)
}

// TestParseMarkdown_NonScalarMetadata_Fails verifies structured values are rejected.
func TestParseMarkdown_NonScalarMetadata_Fails(t *testing.T) {
	content := "---\nname:\n  nested: map\n---\nBody\n"
	_, err := parseMarkdown("/prompts/bad.md", "/prompts", content, false)
	require.Error(t, err, "A mapping where a scalar is expected should fail the file.")
}

// TestParseMarkdown_InvalidArgumentName_Fails verifies declared names are validated.
func TestParseMarkdown_InvalidArgumentName_Fails(t *testing.T) {
	content := `---
arguments:
  - name: bad-name
---
Body
`
	_, err := parseMarkdown("/prompts/bad.md", "/prompts", content, false)
	require.Error(t, err)

	nameErr, ok := template.AsInvalidNameError(err)
	require.True(t, ok, "Error should carry the InvalidNameError kind.")
	assert.Equal(t, "bad-name", nameErr.Name)
}

// TestParseMarkdown_NamelessArgument_Dropped verifies arguments without a name are skipped.
func TestParseMarkdown_NamelessArgument_Dropped(t *testing.T) {
	content := `---
arguments:
  - description: no name here
  - name: kept
---
Body {kept}
`
	record, err := parseMarkdown("/prompts/p.md", "/prompts", content, false)
	require.NoError(t, err)

	require.Len(t, record.Arguments, 1)
	assert.Equal(t, "kept", record.Arguments[0].Name)
}

// TestScan_WalksRecursivelyAndSkipsBadFiles verifies per-file isolation.
func TestScan_WalksRecursivelyAndSkipsBadFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.md", "Hello {user}")
	writeFile(t, dir, "nested/b.md", "---\nname: bee\n---\nBuzz")
	writeFile(t, dir, "broken.md", "---\nname: [not, scalar]\n---\nBody")
	writeFile(t, dir, "notes.txt", "not markdown")

	records, err := Scan(dir, false, logging.GetNoopLogger())
	require.NoError(t, err)
	require.Len(t, records, 2, "Only well-formed markdown files should yield records.")

	names := []string{records[0].Name, records[1].Name}
	assert.Contains(t, names, "a")
	assert.Contains(t, names, "bee")
}

// TestScan_MissingFolder_YieldsEmptyResult verifies a missing folder is not fatal.
func TestScan_MissingFolder_YieldsEmptyResult(t *testing.T) {
	records, err := Scan(filepath.Join(t.TempDir(), "absent"), false, logging.GetNoopLogger())
	require.NoError(t, err)
	assert.Empty(t, records)
}
