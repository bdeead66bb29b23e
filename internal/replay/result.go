package replay

import (
	"errors"
	"fmt"

	"github.com/Estabir/hanabi-live/internal/game"
)

// ErrInvariant is wrapped by errors caused by a log that the hypothetical
// engine could not have written, such as an unknown player name.
var ErrInvariant = errors.New("replay: invariant violated")

// ResultKind tells the log loop what to do with a line.
type ResultKind int

const (
	// Skip means the line is not an action.
	Skip ResultKind = iota
	// Resolved means the line produced an action.
	Resolved
	// Fatal means the line looked like an action but could not be resolved.
	Fatal
)

// String returns the string representation of a result kind
func (k ResultKind) String() string {
	switch k {
	case Skip:
		return "skip"
	case Resolved:
		return "resolved"
	case Fatal:
		return "fatal"
	default:
		return fmt.Sprintf("ResultKind(%d)", int(k))
	}
}

// Result is the outcome of reading one log line.
type Result struct {
	Kind   ResultKind
	Action game.ClientAction
	Reason string
}

func skip() Result {
	return Result{Kind: Skip}
}

func resolved(action game.ClientAction) Result {
	return Result{Kind: Resolved, Action: action}
}

func fatal(format string, args ...any) Result {
	return Result{Kind: Fatal, Reason: fmt.Sprintf(format, args...)}
}

// InvariantError reports the log line that could not be resolved.
type InvariantError struct {
	Entry  int
	Text   string
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("log entry %d %q: %s", e.Entry, e.Text, e.Reason)
}

func (e *InvariantError) Unwrap() error {
	return ErrInvariant
}
