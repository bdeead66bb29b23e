package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Decode reads a replay dump. The metadata is required and validated; the
// state may be absent when no game was loaded. A negative segment is
// rejected.
func Decode(r io.Reader) (*Context, error) {
	var ctx Context
	if err := json.NewDecoder(r).Decode(&ctx); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	if ctx.Metadata == nil {
		return nil, errors.New("replay has no metadata")
	}
	if err := ctx.Metadata.Validate(); err != nil {
		return nil, fmt.Errorf("invalid replay metadata: %w", err)
	}
	if ctx.State != nil && ctx.State.Replay.Segment < 0 {
		return nil, fmt.Errorf("invalid replay segment: %d", ctx.State.Replay.Segment)
	}

	return &ctx, nil
}

// LoadFile reads a replay dump from disk.
func LoadFile(path string) (*Context, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ctx, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ctx, nil
}
