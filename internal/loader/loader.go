// Package loader produces template records for the prompt registry. It walks
// a folder of markdown files, splits optional YAML frontmatter from the
// template body, and resolves remote git repositories into a local cache.
// A malformed file is logged and skipped; it never prevents the rest of the
// registry from loading.
package loader

// file: internal/loader/loader.go

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/DiscreteTom/shinkuro-go/internal/logging"
	"github.com/DiscreteTom/shinkuro-go/internal/prompt"
	"github.com/DiscreteTom/shinkuro-go/internal/template"
)

// Scan walks folder recursively and parses every markdown file into a
// template record. Unreadable or malformed files are logged and skipped.
// A missing folder yields an empty result, not an error.
func Scan(folder string, skipFrontmatter bool, logger logging.Logger) ([]prompt.Record, error) {
	if logger == nil {
		logger = logging.GetNoopLogger()
	}
	log := logger.WithField("component", "loader")

	info, err := os.Stat(folder)
	if err != nil || !info.IsDir() {
		log.Warn("Prompt folder does not exist or is not a directory.", "folder", folder)
		return nil, nil
	}

	var records []prompt.Record
	walkErr := filepath.WalkDir(folder, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			log.Warn("Failed to access path during scan, skipping.", "path", path, "error", err)
			return nil
		}
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}

		data, readErr := os.ReadFile(path) // #nosec G304 -- Paths come from the configured prompt folder.
		if readErr != nil {
			log.Warn("Failed to read prompt file, skipping.", "path", path, "error", readErr)
			return nil
		}

		record, parseErr := parseMarkdown(path, folder, string(data), skipFrontmatter)
		if parseErr != nil {
			log.Warn("Failed to process prompt file, skipping.", "path", path, "error", parseErr)
			return nil
		}
		records = append(records, record)
		return nil
	})
	if walkErr != nil {
		return nil, errors.Wrapf(walkErr, "failed to scan prompt folder: %s", folder)
	}

	log.Info("Scanned prompt folder.", "folder", folder, "prompts", len(records))
	return records, nil
}

// frontmatter is the YAML metadata block at the top of a prompt file.
// String fields accept any YAML scalar (numbers and booleans are kept as
// their literal text); non-scalar values are rejected, failing the file.
type frontmatter struct {
	Name        scalarString   `yaml:"name"`
	Title       scalarString   `yaml:"title"`
	Description scalarString   `yaml:"description"`
	Arguments   []argumentYAML `yaml:"arguments"`
}

// argumentYAML is one declared argument in the frontmatter.
type argumentYAML struct {
	Name        scalarString  `yaml:"name"`
	Description scalarString  `yaml:"description"`
	Default     *scalarString `yaml:"default"`
}

// scalarString unmarshals any YAML scalar into its literal text form.
type scalarString string

// UnmarshalYAML implements yaml.Unmarshaler for scalarString.
func (s *scalarString) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return errors.Newf("expected a scalar value, got %s", yamlKindName(node.Kind))
	}
	*s = scalarString(node.Value)
	return nil
}

func yamlKindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}

const frontmatterDelimiter = "---\n"

// splitFrontmatter separates a leading frontmatter block from the body.
// When no complete block is present the whole content is the body.
func splitFrontmatter(content string) (meta string, body string, found bool) {
	if !strings.HasPrefix(content, frontmatterDelimiter) {
		return "", content, false
	}
	rest := content[len(frontmatterDelimiter):]
	end := strings.Index(rest, "\n---\n")
	if end < 0 {
		return "", content, false
	}
	return rest[:end], rest[end+len("\n---\n"):], true
}

// parseMarkdown converts one markdown file into a template record. Metadata
// defaults derive from the file name and its path relative to the scan root.
func parseMarkdown(path, root, content string, skipFrontmatter bool) (prompt.Record, error) {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	relPath, err := filepath.Rel(root, path)
	if err != nil {
		relPath = filepath.Base(path)
	}

	record := prompt.Record{
		Name:        stem,
		Title:       stem,
		Description: fmt.Sprintf("Prompt from %s", relPath),
	}

	if skipFrontmatter {
		record.Content = strings.TrimSpace(content)
		return record, nil
	}

	meta, body, found := splitFrontmatter(content)
	record.Content = strings.TrimSpace(body)
	if !found {
		return record, nil
	}

	var fm frontmatter
	if err := yaml.Unmarshal([]byte(meta), &fm); err != nil {
		return prompt.Record{}, errors.Wrap(err, "failed to parse frontmatter YAML")
	}

	if fm.Name != "" {
		record.Name = string(fm.Name)
	}
	if fm.Title != "" {
		record.Title = string(fm.Title)
	}
	if fm.Description != "" {
		record.Description = string(fm.Description)
	}

	for _, arg := range fm.Arguments {
		if arg.Name == "" {
			// An argument without a name cannot be referenced; drop it.
			continue
		}
		if !template.IsValidName(string(arg.Name)) {
			return prompt.Record{}, template.NewInvalidNameError(string(arg.Name))
		}
		spec := prompt.ArgumentSpec{
			Name:        string(arg.Name),
			Description: string(arg.Description),
		}
		if arg.Default != nil {
			value := string(*arg.Default)
			spec.Default = &value
		}
		record.Arguments = append(record.Arguments, spec)
	}

	return record, nil
}
