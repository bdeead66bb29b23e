// Package export turns the game being reviewed into a shareable replay URL
// and tells the user about the result through self messages.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/Estabir/hanabi-live/internal/chat"
	"github.com/Estabir/hanabi-live/internal/game"
	"github.com/Estabir/hanabi-live/internal/replay"
)

const (
	DefaultSiteURL = "https://hanab.live"

	sharedReplayPath = "/shared-replay-json/"
)

// DefaultPlayerNames replace the real player names in exported games.
var DefaultPlayerNames = []string{"Alice", "Bob", "Cathy", "Donald", "Emily", "Frank"}

var (
	ErrNotInReview = errors.New("not reviewing a finished game")
	ErrNoActions   = errors.New("no actions to export")
	ErrCompress    = errors.New("failed to compress the game")
)

const (
	msgNotInReview = "You can only use the <code>/copy</code> command during the review of a game."
	msgNoActions   = "There are no actions in your hypothetical."
	msgCompress    = "Failed to compress the JSON data."
	msgCopied      = "The URL for this hypothetical is copied to your clipboard."
)

// Config controls how exported games are built.
type Config struct {
	SiteURL     string
	PlayerNames []string
}

// Exporter builds shared replay URLs.
type Exporter struct {
	cfg       Config
	sender    chat.Sender
	clipboard Clipboard
	shrink    Shrinker
	parser    replay.LogLineParser
	logger    *log.Logger
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithShrinker replaces FlateShrinker.
func WithShrinker(s Shrinker) Option {
	return func(e *Exporter) { e.shrink = s }
}

// WithClipboard replaces the system clipboard.
func WithClipboard(c Clipboard) Option {
	return func(e *Exporter) { e.clipboard = c }
}

// WithParser replaces the log line parser used for hypotheticals.
func WithParser(p replay.LogLineParser) Option {
	return func(e *Exporter) { e.parser = p }
}

// NewExporter creates an exporter that reports to sender.
func NewExporter(cfg Config, sender chat.Sender, logger *log.Logger, opts ...Option) *Exporter {
	if cfg.SiteURL == "" {
		cfg.SiteURL = DefaultSiteURL
	}
	cfg.SiteURL = strings.TrimSuffix(cfg.SiteURL, "/")
	if len(cfg.PlayerNames) == 0 {
		cfg.PlayerNames = DefaultPlayerNames
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	e := &Exporter{
		cfg:       cfg,
		sender:    sender,
		clipboard: SystemClipboard{},
		shrink:    FlateShrinker,
		logger:    logger.WithPrefix("export"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Share is the result of a successful export. The clipboard write continues
// after Export returns; Wait blocks until the user has been told how it went.
type Share struct {
	URL  string
	JSON string

	group errgroup.Group
}

// Wait returns the clipboard error, if any. The user has already been sent
// the URL as a fallback when it is non-nil.
func (s *Share) Wait() error {
	return s.group.Wait()
}

// Export builds the shared replay URL for the game in rc and copies it to the
// clipboard. Failures the user can act on are reported to room and returned
// as one of the package's sentinel errors. A hypothetical that cannot be
// reconstructed returns an error wrapping replay.ErrInvariant without
// notifying anyone.
func (e *Exporter) Export(ctx context.Context, rc *replay.Context, room string) (*Share, error) {
	if rc == nil || rc.State == nil || rc.Metadata == nil || !rc.State.Finished {
		e.sender.SendSelfPM(msgNotInReview, room, chat.Error)
		return nil, ErrNotInReview
	}

	actions, err := e.actions(rc)
	if err != nil {
		return nil, err
	}
	if len(actions) == 0 {
		e.sender.SendSelfPM(msgNoActions, room, chat.Error)
		return nil, ErrNoActions
	}

	g := &JSONGame{
		Players:    e.players(rc.Metadata),
		Deck:       deck(rc.State),
		Actions:    actions,
		Options:    JSONOptions{Variant: rc.Metadata.Options.VariantName},
		Notes:      [][]string{},
		Characters: []JSONCharacter{},
	}
	data, err := g.Marshal()
	if err != nil {
		return nil, err
	}

	payload, err := e.shrink(data)
	if err != nil || payload == "" {
		e.logger.Warn("Compression failed", "err", err, "size", len(data))
		e.sender.SendSelfPM(msgCompress, room, chat.Error)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCompress, err)
		}
		return nil, ErrCompress
	}

	share := &Share{
		URL:  e.cfg.SiteURL + sharedReplayPath + payload,
		JSON: data,
	}
	e.logger.Debug("Exported game", "actions", len(actions), "json", len(data), "payload", len(payload))

	share.group.Go(func() error {
		return e.deliver(ctx, share, room)
	})
	return share, nil
}

func (e *Exporter) actions(rc *replay.Context) ([]game.ClientAction, error) {
	rs := rc.State.Replay
	actions := replay.ActionsFromState(rs)

	lines, ok := rs.HypotheticalLog()
	if !ok {
		return actions, nil
	}
	hypo, err := replay.NewReconstructor(rc, e.parser, e.logger).ActionsFromLog(lines)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct hypothetical: %w", err)
	}
	return append(actions, hypo...), nil
}

func (e *Exporter) players(md *game.Metadata) []string {
	n := min(md.Options.NumPlayers, len(e.cfg.PlayerNames))
	players := make([]string, n)
	copy(players, e.cfg.PlayerNames[:n])
	return players
}

// deck returns the card identities with any hypothetical morph applied.
func deck(state *replay.State) []game.CardIdentity {
	cards := make([]game.CardIdentity, len(state.CardIdentities))
	for order, card := range state.CardIdentities {
		if morphed, ok := state.Replay.Hypothetical.Morph(order); ok {
			card = morphed
		}
		cards[order] = card
	}
	return cards
}

func (e *Exporter) deliver(ctx context.Context, share *Share, room string) error {
	if err := e.clipboard.WriteText(ctx, share.URL); err != nil {
		e.logger.Warn("Clipboard write failed", "err", err)
		e.sender.SendSelfPM(fmt.Sprintf("Failed to copy the URL to your clipboard: %v", err), room, chat.Error)
		e.sender.SendSelfPM(share.URL, room, chat.Default)
		return err
	}

	e.sender.SendSelfPM(msgCopied, room, chat.Info)
	e.sender.SendSelfPM(rawJSONMessage(share.JSON), room, chat.Info)
	return nil
}

// rawJSONMessage builds a chat message with a button that copies the raw game
// document. Double quotes are swapped for escaped single quotes to fit inside
// the onclick attribute and swapped back when clicked.
func rawJSONMessage(data string) string {
	quoted := strings.ReplaceAll(data, `"`, `\'`)
	here := `<button href="#" onclick="navigator.clipboard.writeText('` + quoted +
		`'.replace(/\'/g, String.fromCharCode(34)));return false;"><strong>here</strong></button>`
	return fmt.Sprintf("Click %s to copy the raw JSON data to your clipboard.", here)
}
