// Package config loads and validates appledocsmcp configuration.
//
// Configuration is resolved in three layers: built-in defaults, an optional
// YAML file (~/.appledocsmcp/config.yaml), and environment variables
// (highest priority).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables recognized at load time.
const (
	// EnvDocPath overrides Xcode documentation discovery with a single root.
	EnvDocPath = "XCODE_DOC_PATH"
	// EnvLogLevel overrides the configured log level.
	EnvLogLevel = "APPLEDOCSMCP_LOG_LEVEL"
)

// Config represents the complete appledocsmcp configuration.
type Config struct {
	Locator LocatorConfig `yaml:"locator" json:"locator"`
	Search  SearchConfig  `yaml:"search" json:"search"`
	Fetch   FetchConfig   `yaml:"fetch" json:"fetch"`
	Server  ServerConfig  `yaml:"server" json:"server"`
}

// LocatorConfig configures discovery of Xcode documentation roots.
type LocatorConfig struct {
	// ApplicationsDir is the directory searched for Xcode installations.
	ApplicationsDir string `yaml:"applications_dir" json:"applications_dir"`

	// XcodePatterns are the glob patterns matched against entries in
	// ApplicationsDir (e.g., "Xcode*.app").
	XcodePatterns []string `yaml:"xcode_patterns" json:"xcode_patterns"`

	// DocSubpath is the relative path from an Xcode bundle to its
	// AdditionalDocumentation folder.
	DocSubpath string `yaml:"doc_subpath" json:"doc_subpath"`

	// OverridePath, when set, is used verbatim as the sole documentation
	// root. Normally populated from XCODE_DOC_PATH.
	OverridePath string `yaml:"override_path" json:"override_path"`
}

// SearchConfig configures the local documentation search engine.
type SearchConfig struct {
	// ContextWindow is the total number of bytes of surrounding text
	// captured around a content match, split evenly before and after.
	ContextWindow int `yaml:"context_window" json:"context_window"`

	// MaxMatchesPerDoc caps filename + content matches per document.
	MaxMatchesPerDoc int `yaml:"max_matches_per_doc" json:"max_matches_per_doc"`

	// MaxDocResults caps the number of documents in a search response.
	MaxDocResults int `yaml:"max_doc_results" json:"max_doc_results"`

	// MaxTopics caps the heading-derived topics stored per document.
	MaxTopics int `yaml:"max_topics" json:"max_topics"`

	// TopicPreviewBytes is how much of each document's prefix is scanned
	// for topic headings.
	TopicPreviewBytes int `yaml:"topic_preview_bytes" json:"topic_preview_bytes"`
}

// FetchConfig configures outbound HTTP fetches to documentation endpoints.
type FetchConfig struct {
	// Timeout is the per-request timeout (e.g., "15s").
	Timeout string `yaml:"timeout" json:"timeout"`

	// CacheTTL is how long fetched upstream payloads stay fresh (e.g., "1h").
	CacheTTL string `yaml:"cache_ttl" json:"cache_ttl"`

	// DocCacheSize bounds the Apple documentation JSON cache.
	DocCacheSize int `yaml:"doc_cache_size" json:"doc_cache_size"`

	// FileCacheSize bounds the fetched GitHub file cache.
	FileCacheSize int `yaml:"file_cache_size" json:"file_cache_size"`

	// UserAgent is sent on all upstream requests.
	UserAgent string `yaml:"user_agent" json:"user_agent"`
}

// ServerConfig configures the MCP server.
type ServerConfig struct {
	Name      string `yaml:"name" json:"name"`
	Transport string `yaml:"transport" json:"transport"`
	LogLevel  string `yaml:"log_level" json:"log_level"`
}

// xcodeDocSubpath is where Xcode hides its AdditionalDocumentation folder.
const xcodeDocSubpath = "Contents/PlugIns/IDEIntelligenceChat.framework/Versions/A/Resources/AdditionalDocumentation"

// NewConfig creates a new Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Locator: LocatorConfig{
			ApplicationsDir: "/Applications",
			XcodePatterns:   []string{"Xcode*.app", "Xcode.app"},
			DocSubpath:      xcodeDocSubpath,
		},
		Search: SearchConfig{
			ContextWindow:     100,
			MaxMatchesPerDoc:  5,
			MaxDocResults:     20,
			MaxTopics:         5,
			TopicPreviewBytes: 500,
		},
		Fetch: FetchConfig{
			Timeout:       "15s",
			CacheTTL:      "1h",
			DocCacheSize:  100,
			FileCacheSize: 50,
			UserAgent:     "appledocsmcp/1.0",
		},
		Server: ServerConfig{
			Name:      "xcode-doc-server",
			Transport: "stdio",
			LogLevel:  "info",
		},
	}
}

// DefaultConfigPath returns the default config file path
// (~/.appledocsmcp/config.yaml).
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".appledocsmcp", "config.yaml")
	}
	return filepath.Join(home, ".appledocsmcp", "config.yaml")
}

// Load reads configuration from the given file, merging it over defaults
// and applying environment overrides. A missing file is not an error; the
// defaults are returned.
func Load(path string) (*Config, error) {
	cfg := NewConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Fall through to defaults.
		case err != nil:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault loads configuration from the default path.
func LoadDefault() (*Config, error) {
	return Load(DefaultConfigPath())
}

// applyEnv applies environment variable overrides.
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDocPath); v != "" {
		c.Locator.OverridePath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Server.LogLevel = v
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Locator.ApplicationsDir == "" {
		return fmt.Errorf("locator.applications_dir must not be empty")
	}
	if len(c.Locator.XcodePatterns) == 0 {
		return fmt.Errorf("locator.xcode_patterns must not be empty")
	}
	if c.Search.ContextWindow < 0 {
		return fmt.Errorf("search.context_window must not be negative")
	}
	if c.Search.MaxMatchesPerDoc <= 0 {
		return fmt.Errorf("search.max_matches_per_doc must be positive")
	}
	if c.Search.MaxDocResults <= 0 {
		return fmt.Errorf("search.max_doc_results must be positive")
	}
	if _, err := time.ParseDuration(c.Fetch.Timeout); err != nil {
		return fmt.Errorf("fetch.timeout is not a valid duration: %w", err)
	}
	if _, err := time.ParseDuration(c.Fetch.CacheTTL); err != nil {
		return fmt.Errorf("fetch.cache_ttl is not a valid duration: %w", err)
	}
	return nil
}

// FetchTimeout returns the parsed per-request timeout.
func (c *Config) FetchTimeout() time.Duration {
	d, err := time.ParseDuration(c.Fetch.Timeout)
	if err != nil {
		return 15 * time.Second
	}
	return d
}

// CacheTTL returns the parsed upstream cache TTL.
func (c *Config) CacheTTL() time.Duration {
	d, err := time.ParseDuration(c.Fetch.CacheTTL)
	if err != nil {
		return time.Hour
	}
	return d
}
