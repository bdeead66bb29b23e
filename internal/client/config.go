// Package client holds the settings shared by the command line tools: where
// shared replays are hosted, which room messages go to and how to log.
package client

import (
	"errors"
	"fmt"
	"net/url"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joho/godotenv"

	"github.com/Estabir/hanabi-live/internal/export"
	"github.com/Estabir/hanabi-live/internal/game"
)

// Config represents the complete client configuration
type Config struct {
	Site   SiteSettings
	Chat   ChatSettings
	Export ExportSettings
	UI     UISettings
}

// SiteSettings contains the hanab.live deployment to link to
type SiteSettings struct {
	URL string `hcl:"url,optional"`
}

// ChatSettings contains where self messages are delivered
type ChatSettings struct {
	Room string `hcl:"room,optional"`
}

// ExportSettings contains how games are exported
type ExportSettings struct {
	PlayerNames      []string `hcl:"player_names,optional"`
	DisableClipboard bool     `hcl:"disable_clipboard,optional"`
	Output           string   `hcl:"output,optional"`
}

// UISettings contains logging and terminal settings
type UISettings struct {
	LogLevel string `hcl:"log_level,optional"`
	LogFile  string `hcl:"log_file,optional"`
	NoColor  bool   `hcl:"no_color,optional"`
}

// fileConfig mirrors Config with every block optional.
type fileConfig struct {
	Site   *SiteSettings   `hcl:"site,block"`
	Chat   *ChatSettings   `hcl:"chat,block"`
	Export *ExportSettings `hcl:"export,block"`
	UI     *UISettings     `hcl:"ui,block"`
}

// envConfig lists the settings that can be overridden from the environment.
type envConfig struct {
	SiteURL  string `env:"HANABI_SITE_URL"`
	Room     string `env:"HANABI_ROOM"`
	LogLevel string `env:"HANABI_LOG_LEVEL"`
}

// DefaultConfig returns default client configuration
func DefaultConfig() *Config {
	return &Config{
		Site: SiteSettings{URL: export.DefaultSiteURL},
		Chat: ChatSettings{Room: "lobby"},
		Export: ExportSettings{
			PlayerNames: append([]string(nil), export.DefaultPlayerNames...),
		},
		UI: UISettings{LogLevel: "warn"},
	}
}

// LoadConfig loads configuration from an HCL file. A missing file yields the
// defaults.
func LoadConfig(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(src, filename)
}

// ParseConfig decodes HCL source and fills in defaults for anything unset.
func ParseConfig(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &fc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config := DefaultConfig()
	defaults := DefaultConfig()

	if fc.Site != nil {
		config.Site = *fc.Site
	}
	if fc.Chat != nil {
		config.Chat = *fc.Chat
	}
	if fc.Export != nil {
		config.Export = *fc.Export
	}
	if fc.UI != nil {
		config.UI = *fc.UI
	}

	// Apply defaults for missing values
	if config.Site.URL == "" {
		config.Site.URL = defaults.Site.URL
	}
	if config.Chat.Room == "" {
		config.Chat.Room = defaults.Chat.Room
	}
	if len(config.Export.PlayerNames) == 0 {
		config.Export.PlayerNames = defaults.Export.PlayerNames
	}
	if config.UI.LogLevel == "" {
		config.UI.LogLevel = defaults.UI.LogLevel
	}

	return config, nil
}

// LoadDotEnv loads environment variables from a .env file if present.
// Variables that are already set are not overwritten.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

// ApplyEnv overrides settings from HANABI_* environment variables.
func (c *Config) ApplyEnv() error {
	var e envConfig
	if err := env.Parse(&e); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if e.SiteURL != "" {
		c.Site.URL = e.SiteURL
	}
	if e.Room != "" {
		c.Chat.Room = e.Room
	}
	if e.LogLevel != "" {
		c.UI.LogLevel = e.LogLevel
	}
	return nil
}

// Validate validates the client configuration
func (c *Config) Validate() error {
	u, err := url.Parse(c.Site.URL)
	if err != nil {
		return fmt.Errorf("invalid site URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("site URL must be an absolute http(s) URL: %s", c.Site.URL)
	}

	if c.Chat.Room == "" {
		return fmt.Errorf("chat room is required")
	}

	if len(c.Export.PlayerNames) < game.MaxPlayers {
		return fmt.Errorf("need at least %d player names, got %d", game.MaxPlayers, len(c.Export.PlayerNames))
	}
	seen := make(map[string]bool, len(c.Export.PlayerNames))
	for _, name := range c.Export.PlayerNames {
		if name == "" {
			return fmt.Errorf("player names cannot be empty")
		}
		if seen[name] {
			return fmt.Errorf("duplicate player name: %s", name)
		}
		seen[name] = true
	}

	if _, ok := logLevels[c.UI.LogLevel]; !ok {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	return nil
}

// ExportConfig returns the settings the exporter needs.
func (c *Config) ExportConfig() export.Config {
	return export.Config{
		SiteURL:     c.Site.URL,
		PlayerNames: c.Export.PlayerNames,
	}
}
