package chat

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"
	"golang.org/x/net/html"
)

// TerminalSender writes self messages to a terminal, one per line.
type TerminalSender struct {
	out    io.Writer
	clock  quartz.Clock
	logger *log.Logger
	styles styles

	mu sync.Mutex
}

type styles struct {
	timestamp lipgloss.Style
	room      lipgloss.Style
	text      map[MessageType]lipgloss.Style
}

// TerminalOption configures a TerminalSender.
type TerminalOption func(*terminalOptions)

type terminalOptions struct {
	clock   quartz.Clock
	profile *termenv.Profile
}

// WithClock sets the clock used to timestamp messages.
func WithClock(clock quartz.Clock) TerminalOption {
	return func(o *terminalOptions) { o.clock = clock }
}

// WithColorProfile forces a colour profile instead of detecting one from
// the output.
func WithColorProfile(profile termenv.Profile) TerminalOption {
	return func(o *terminalOptions) { o.profile = &profile }
}

// NewTerminalSender creates a sender that writes to out. A nil logger
// discards debug output.
func NewTerminalSender(out io.Writer, logger *log.Logger, opts ...TerminalOption) *TerminalSender {
	o := terminalOptions{clock: quartz.NewReal()}
	for _, opt := range opts {
		opt(&o)
	}

	if logger == nil {
		logger = log.New(io.Discard)
	}

	renderer := lipgloss.NewRenderer(out)
	if o.profile != nil {
		renderer.SetColorProfile(*o.profile)
	}

	return &TerminalSender{
		out:    out,
		clock:  o.clock,
		logger: logger.WithPrefix("chat"),
		styles: newStyles(renderer),
	}
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		timestamp: r.NewStyle().Foreground(lipgloss.Color("#626262")),
		room:      r.NewStyle().Foreground(lipgloss.Color("#96CEB4")),
		text: map[MessageType]lipgloss.Style{
			Default: r.NewStyle().Foreground(lipgloss.Color("#FAFAFA")),
			Info:    r.NewStyle().Foreground(lipgloss.Color("#FFD700")),
			Error:   r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		},
	}
}

// SendSelfPM implements Sender.
func (s *TerminalSender) SendSelfPM(text, room string, typ MessageType) {
	msg := Message{
		Room:     room,
		Text:     text,
		Type:     typ,
		Datetime: s.clock.Now(),
	}
	s.logger.Debug("Self message", "room", room, "type", typ)

	line := s.render(msg)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := fmt.Fprintln(s.out, line); err != nil {
		s.logger.Error("Failed to write chat message", "error", err)
	}
}

func (s *TerminalSender) render(msg Message) string {
	style, ok := s.styles.text[msg.Type]
	if !ok {
		style = s.styles.text[Default]
	}
	return fmt.Sprintf("%s %s %s",
		s.styles.timestamp.Render("["+msg.Datetime.Format("15:04:05")+"]"),
		s.styles.room.Render("#"+msg.Room),
		style.Render(PlainText(msg.Text)))
}

// PlainText drops HTML markup from a chat message and unescapes entities.
func PlainText(s string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(z.Text())
		}
	}
}
