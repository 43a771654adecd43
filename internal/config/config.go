// Package config provides configuration for the admonition test run. Values
// come from built-in defaults, optionally overridden by a YAML file and then by
// command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zoro11031/hugo-admonitions/admonition-check/internal/common"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the working directory
const DefaultFileName = ".admonition-check.yaml"

// Config holds the settings for one test run
type Config struct {
	// SiteDir is the Hugo test site that gets built
	SiteDir string `yaml:"site_dir"`

	// BuildDir is where Hugo writes its output. Relative paths are resolved
	// against SiteDir.
	BuildDir string `yaml:"build_dir"`

	// ContentDir holds the Markdown test cases. Relative paths are resolved
	// against SiteDir.
	ContentDir string `yaml:"content_dir"`

	// HugoBinary is the hugo executable
	HugoBinary string `yaml:"hugo_binary"`

	// MinHugoVersion triggers a warning when the installed Hugo is older
	MinHugoVersion string `yaml:"min_hugo_version"`

	// MarkupExt is the suffix of generated files whose content is checked
	MarkupExt string `yaml:"markup_ext"`

	// Clean removes the previous build output before building
	Clean bool `yaml:"clean"`

	// LogLevel sets the debug log verbosity (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	filePath string
}

// DefaultConfig returns a Config populated from the Defaults table
func DefaultConfig() *Config {
	return &Config{
		SiteDir:        Defaults[KeySiteDir],
		BuildDir:       Defaults[KeyBuildDir],
		ContentDir:     Defaults[KeyContentDir],
		HugoBinary:     Defaults[KeyHugoBinary],
		MinHugoVersion: Defaults[KeyMinHugoVersion],
		MarkupExt:      Defaults[KeyMarkupExt],
		Clean:          Defaults[KeyClean] == "true",
		LogLevel:       Defaults[KeyLogLevel],
	}
}

// Load reads configuration from path. If the file doesn't exist the defaults
// are returned without error; a malformed file is an error. An empty path
// uses DefaultFileName.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultFileName
	}

	cfg := DefaultConfig()
	cfg.filePath = path

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to its file path using a temp file and rename
func (c *Config) Save() error {
	path := c.FilePath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, ".admonition-check.yaml.tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath) // Cleanup on error

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file to config: %w", err)
	}

	return nil
}

// FilePath returns the configuration file path
func (c *Config) FilePath() string {
	if c.filePath == "" {
		return DefaultFileName
	}
	return c.filePath
}

// ResolvedBuildDir returns BuildDir, joined onto SiteDir when relative
func (c *Config) ResolvedBuildDir() string {
	return c.resolve(c.BuildDir)
}

// ResolvedContentDir returns ContentDir, joined onto SiteDir when relative
func (c *Config) ResolvedContentDir() string {
	return c.resolve(c.ContentDir)
}

func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(c.SiteDir, path)
}

// Validate checks every setting before a run starts
func (c *Config) Validate() error {
	if err := common.ValidateNotEmpty(c.SiteDir); err != nil {
		return fmt.Errorf("invalid %s: %w", KeySiteDir, err)
	}
	if err := common.ValidateNotEmpty(c.BuildDir); err != nil {
		return fmt.Errorf("invalid %s: %w", KeyBuildDir, err)
	}
	if err := common.ValidateNotEmpty(c.HugoBinary); err != nil {
		return fmt.Errorf("invalid %s: %w", KeyHugoBinary, err)
	}
	if err := common.ValidateExtension(c.MarkupExt); err != nil {
		return fmt.Errorf("invalid %s: %w", KeyMarkupExt, err)
	}
	if c.MinHugoVersion != "" {
		if err := common.ValidateVersion(c.MinHugoVersion); err != nil {
			return fmt.Errorf("invalid %s: %w", KeyMinHugoVersion, err)
		}
	}
	if err := common.ValidateLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid %s: %w", KeyLogLevel, err)
	}
	return nil
}
