// Command shinkuro serves a folder of markdown prompt templates over the
// Model Context Protocol on stdio.
package main

// file: cmd/shinkuro/root.go

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/DiscreteTom/shinkuro-go/internal/config"
	"github.com/DiscreteTom/shinkuro-go/internal/loader"
	"github.com/DiscreteTom/shinkuro-go/internal/logging"
	"github.com/DiscreteTom/shinkuro-go/internal/mcp"
	"github.com/DiscreteTom/shinkuro-go/internal/prompt"
	"github.com/DiscreteTom/shinkuro-go/internal/schema"
	"github.com/DiscreteTom/shinkuro-go/internal/transport"
)

// Version is set during build via ldflags.
var Version = "0.1.0-dev"

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "shinkuro",
		Short: "Serve markdown prompt templates over MCP on stdio",
		Long: "Shinkuro loads prompt templates from a local folder or a git repository\n" +
			"and serves them to MCP clients over stdio. Prompt metadata comes from\n" +
			"YAML frontmatter; template variables use brace ({name}) or dollar\n" +
			"($name) syntax.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v, cmd)
			if err != nil {
				return err
			}
			return runServe(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	defaults := config.Default()
	flags.String("config", "", "Optional YAML config file")
	flags.StringP("folder", "f", "", "Local folder holding prompt templates, or a subfolder inside --git-url")
	flags.String("git-url", "", "Git repository to clone prompts from (HTTPS or SSH)")
	flags.String("cache-dir", defaults.CacheDir, "Cache directory for cloned repositories")
	flags.Bool("auto-pull", false, "Update the cached repository on startup")
	flags.String("variable-format", defaults.VariableFormat, "Template variable grammar: brace or dollar")
	flags.Bool("auto-discover-args", false, "Derive prompt arguments from template content instead of frontmatter")
	flags.Bool("skip-frontmatter", false, "Treat the whole file as content, ignoring frontmatter")
	flags.Bool("debug", false, "Enable debug logging on stderr")

	// Every flag is also settable through the environment.
	envNames := map[string]string{
		"folder":             "FOLDER",
		"git-url":            "GIT_URL",
		"cache-dir":          "CACHE_DIR",
		"auto-pull":          "AUTO_PULL",
		"variable-format":    "VARIABLE_FORMAT",
		"auto-discover-args": "AUTO_DISCOVER_ARGS",
		"skip-frontmatter":   "SKIP_FRONTMATTER",
		"debug":              "DEBUG",
	}
	for flagName, envName := range envNames {
		cobra.CheckErr(v.BindPFlag(flagName, flags.Lookup(flagName)))
		cobra.CheckErr(v.BindEnv(flagName, envName))
	}

	return cmd
}

// loadConfig merges defaults, an optional YAML config file, environment
// variables, and command-line flags (highest precedence last) into a
// validated configuration.
func loadConfig(v *viper.Viper, cmd *cobra.Command) (*config.Config, error) {
	if configPath, err := cmd.Flags().GetString("config"); err == nil && configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	cfg := config.Default()
	cfg.Folder = v.GetString("folder")
	cfg.GitURL = v.GetString("git-url")
	if s := v.GetString("cache-dir"); s != "" {
		cfg.CacheDir = s
	}
	cfg.AutoPull = v.GetBool("auto-pull")
	if s := v.GetString("variable-format"); s != "" {
		cfg.VariableFormat = s
	}
	cfg.AutoDiscoverArgs = v.GetBool("auto-discover-args")
	cfg.SkipFrontmatter = v.GetBool("skip-frontmatter")
	cfg.Debug = v.GetBool("debug")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runServe loads the prompt registry and serves it on stdio. Stdout carries
// the protocol, so all logging goes to stderr.
func runServe(cmd *cobra.Command, cfg *config.Config) error {
	logging.SetDefaultLogger(logging.NewStderrLogger(cfg.Debug))
	logger := logging.GetLogger("main")
	logger.Info("Starting server.", "version", Version, "variableFormat", cfg.VariableFormat)

	formatter, err := cfg.Formatter()
	if err != nil {
		return err
	}

	folder, err := loader.ResolveFolder(cfg, logger)
	if err != nil {
		return err
	}
	records, err := loader.Scan(folder, cfg.SkipFrontmatter, logger)
	if err != nil {
		return err
	}

	// Per-prompt isolation: a bad record is logged and skipped, never fatal.
	prompts := make([]*prompt.Prompt, 0, len(records))
	for _, record := range records {
		p, buildErr := prompt.New(record, formatter, cfg.AutoDiscoverArgs)
		if buildErr != nil {
			logger.Warn("Failed to build prompt, skipping.", "name", record.Name, "error", buildErr)
			continue
		}
		prompts = append(prompts, p)
	}
	registry := mcp.NewRegistry(prompts, logger)
	logger.Info("Prompt registry loaded.", "prompts", registry.Len())

	validator, err := schema.NewValidator(logger)
	if err != nil {
		return err
	}

	stdio := transport.NewNDJSONTransport(cmd.InOrStdin(), cmd.OutOrStdout(), nil, logger)
	server := mcp.NewServer(cfg.ServerName, Version, registry, validator, stdio, logger)

	if err := server.Run(cmd.Context()); err != nil {
		logger.Error("Server terminated with error.", "error", fmt.Sprintf("%+v", err))
		return err
	}
	logger.Info("Server stopped.")
	return nil
}
