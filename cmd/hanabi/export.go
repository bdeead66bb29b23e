package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"

	"github.com/muesli/termenv"

	"github.com/Estabir/hanabi-live/internal/chat"
	"github.com/Estabir/hanabi-live/internal/client"
	"github.com/Estabir/hanabi-live/internal/export"
	"github.com/Estabir/hanabi-live/internal/replay"
)

// ExportCmd builds a shared replay URL from a replay dump.
type ExportCmd struct {
	File        string `arg:"" name:"file" help:"Path to a replay JSON dump" type:"existingfile"`
	Room        string `help:"Room to report to (overrides config)"`
	SiteURL     string `name:"site-url" help:"Site to link to (overrides config)"`
	NoClipboard bool   `name:"no-clipboard" help:"Print the URL instead of copying it"`
	Output      string `short:"o" help:"Also save the uncompressed game JSON to this path"`
	Verify      bool   `help:"Expand the URL payload and check it matches the game JSON"`

	clipboard export.Clipboard `kong:"-"`
}

func (cmd *ExportCmd) Run(g *Globals, out io.Writer) error {
	cfg, logger, closeLog, err := g.setup(cmd.override)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	rc, err := replay.LoadFile(cmd.File)
	if err != nil {
		return err
	}

	var opts []chat.TerminalOption
	if cfg.UI.NoColor {
		opts = append(opts, chat.WithColorProfile(termenv.Ascii))
	}
	sender := chat.NewTerminalSender(out, logger, opts...)

	clip := cmd.clipboard
	switch {
	case cfg.Export.DisableClipboard:
		clip = export.DisabledClipboard{}
	case clip == nil:
		clip = export.SystemClipboard{}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	exporter := export.NewExporter(cfg.ExportConfig(), sender, logger, export.WithClipboard(clip))
	share, err := exporter.Export(ctx, rc, cfg.Chat.Room)
	if err != nil {
		return err
	}

	// The URL has already been printed when the clipboard is unavailable.
	if err := share.Wait(); err != nil && !errors.Is(err, export.ErrClipboardDisabled) {
		logger.Warn("Clipboard unavailable", "err", err)
	}

	if cmd.Verify {
		if err := verifyShare(cfg, share); err != nil {
			return err
		}
		logger.Info("Verified shared replay payload", "bytes", len(share.JSON))
	}

	if cfg.Export.Output != "" {
		if err := export.SaveJSON(cfg.Export.Output, share); err != nil {
			return fmt.Errorf("failed to save game JSON: %w", err)
		}
		logger.Info("Saved game JSON", "path", cfg.Export.Output)
	}

	return nil
}

func (cmd *ExportCmd) override(cfg *client.Config) {
	if cmd.Room != "" {
		cfg.Chat.Room = cmd.Room
	}
	if cmd.SiteURL != "" {
		cfg.Site.URL = cmd.SiteURL
	}
	if cmd.NoClipboard {
		cfg.Export.DisableClipboard = true
	}
	if cmd.Output != "" {
		cfg.Export.Output = cmd.Output
	}
}

// verifyShare checks that the URL payload expands back to the game JSON.
func verifyShare(cfg *client.Config, share *export.Share) error {
	prefix := strings.TrimSuffix(cfg.Site.URL, "/") + "/shared-replay-json/"
	payload, ok := strings.CutPrefix(share.URL, prefix)
	if !ok {
		return fmt.Errorf("unexpected shared replay URL: %s", share.URL)
	}

	expanded, err := export.Expand(payload)
	if err != nil {
		return fmt.Errorf("failed to verify payload: %w", err)
	}
	if expanded != share.JSON {
		return errors.New("payload does not match the game JSON")
	}

	if _, err := export.ParseJSONGame(expanded); err != nil {
		return fmt.Errorf("failed to verify payload: %w", err)
	}
	return nil
}
