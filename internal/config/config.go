// Package config resolves the site directory layout and site-level settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Conventional directory names under the site root.
const (
	PagesDirName     = "pages"
	PostsDirName     = "posts"
	TemplatesDirName = "templates"
	StaticDirName    = "static"
	OutputDirName    = "output"
)

// ConfigFileName is the optional site settings file at the site root.
const ConfigFileName = "site.yaml"

// Config represents the resolved site configuration.
type Config struct {
	Title   string `yaml:"title"`
	BaseURL string `yaml:"base_url,omitempty"`
	Output  string `yaml:"output,omitempty"`

	siteDir string
}

// Load resolves the site directory and loads site.yaml if present.
//
// Environment variables referenced in site.yaml are expanded; a .env or
// .env.local file next to it is loaded first without overwriting the process
// environment.
func Load(siteDir string) (*Config, error) {
	abs, err := filepath.Abs(siteDir)
	if err != nil {
		return nil, fmt.Errorf("resolve site dir: %w", err)
	}
	if st, err := os.Stat(abs); err != nil || !st.IsDir() {
		return nil, fmt.Errorf("site dir not found or not a directory: %s", abs)
	}

	// Best effort; a missing .env is not an error.
	for _, env := range []string{".env", ".env.local"} {
		_ = godotenv.Load(filepath.Join(abs, env))
	}

	cfg := &Config{siteDir: abs}

	configPath := filepath.Join(abs, ConfigFileName)
	if data, err := os.ReadFile(configPath); err == nil {
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", ConfigFileName, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read %s: %w", ConfigFileName, err)
	}

	if cfg.Title == "" {
		cfg.Title = "simpblog"
	}
	if cfg.Output == "" {
		cfg.Output = OutputDirName
	}

	return cfg, nil
}

// SiteDir returns the absolute site root.
func (c *Config) SiteDir() string { return c.siteDir }

// PagesDir returns the pages source directory.
func (c *Config) PagesDir() string { return filepath.Join(c.siteDir, PagesDirName) }

// PostsDir returns the posts source directory.
func (c *Config) PostsDir() string { return filepath.Join(c.siteDir, PostsDirName) }

// TemplatesDir returns the templates directory.
func (c *Config) TemplatesDir() string { return filepath.Join(c.siteDir, TemplatesDirName) }

// StaticDir returns the static assets directory.
func (c *Config) StaticDir() string { return filepath.Join(c.siteDir, StaticDirName) }

// OutputDir returns the output directory, honoring the site.yaml override.
func (c *Config) OutputDir() string {
	if filepath.IsAbs(c.Output) {
		return c.Output
	}
	return filepath.Join(c.siteDir, c.Output)
}
