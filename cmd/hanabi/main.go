package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/Estabir/hanabi-live/internal/client"
)

// version is set by ldflags during build
var version = "dev"

// Globals are the flags shared by every command.
type Globals struct {
	Config   string `short:"c" default:"hanabi.hcl" help:"Path to HCL configuration file"`
	EnvFile  string `name:"env-file" default:".env" help:"Path to a .env file with HANABI_* variables"`
	LogLevel string `short:"l" help:"Log level (overrides config)"`
	NoColor  bool   `name:"no-color" help:"Disable coloured output"`
}

type CLI struct {
	Globals

	Version    kong.VersionFlag `short:"v" help:"Show version"`
	Export     ExportCmd        `cmd:"" help:"Export a finished game as a shared replay URL"`
	Characters CharactersCmd    `cmd:"" help:"List the detrimental characters"`
	Players    PlayersCmd       `cmd:"" help:"Describe a group of players from a replay"`
}

// setup loads the configuration in order of precedence: file, .env and
// environment, then flags. override applies command specific flags before
// the result is validated.
func (g *Globals) setup(override func(*client.Config)) (*client.Config, *log.Logger, func() error, error) {
	if err := client.LoadDotEnv(g.EnvFile); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load %s: %w", g.EnvFile, err)
	}

	cfg, err := client.LoadConfig(g.Config)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, nil, nil, err
	}

	if g.LogLevel != "" {
		cfg.UI.LogLevel = g.LogLevel
	}
	if g.NoColor {
		cfg.UI.NoColor = true
	}
	if override != nil {
		override(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	w, closeLog, err := cfg.UI.OpenLog()
	if err != nil {
		return nil, nil, nil, err
	}
	logger := client.NewLogger(w, cfg.UI.LogLevel)
	logger.Debug("Loaded configuration", "config", g.Config, "site", cfg.Site.URL, "room", cfg.Chat.Room)

	return cfg, logger, closeLog, nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("hanabi"),
		kong.Description("Export and inspect hanab.live replays"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
