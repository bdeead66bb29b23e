package export

import (
	"context"
	"errors"

	"github.com/atotto/clipboard"
)

var (
	ErrClipboardDisabled    = errors.New("clipboard access is disabled")
	ErrClipboardUnsupported = errors.New("no clipboard utility available")
)

// Clipboard writes text to the user's clipboard.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// SystemClipboard uses the platform clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}

// DisabledClipboard refuses every write.
type DisabledClipboard struct{}

func (DisabledClipboard) WriteText(context.Context, string) error {
	return ErrClipboardDisabled
}
