package game

import "fmt"

// ActionType is the numeric action type used in shared replays.
type ActionType int

const (
	Play ActionType = iota
	Discard
	ColorClue
	RankClue
	GameOver
)

// String returns the string representation of an action type
func (t ActionType) String() string {
	switch t {
	case Play:
		return "play"
	case Discard:
		return "discard"
	case ColorClue:
		return "colorClue"
	case RankClue:
		return "rankClue"
	case GameOver:
		return "gameOver"
	default:
		return fmt.Sprintf("ActionType(%d)", int(t))
	}
}

// ClientAction is an action in the form a player would submit it. Target is
// a card order for plays and discards and a player index for clues. Value is
// only set for clues.
type ClientAction struct {
	Type   ActionType `json:"type"`
	Target int        `json:"target"`
	Value  *int       `json:"value,omitempty"`
}

// NewPlay returns a play of the card with the given order.
func NewPlay(order CardOrder) ClientAction {
	return ClientAction{Type: Play, Target: int(order)}
}

// NewDiscard returns a discard of the card with the given order.
func NewDiscard(order CardOrder) ClientAction {
	return ClientAction{Type: Discard, Target: int(order)}
}

// NewColorClue returns a colour clue to target.
func NewColorClue(target PlayerIndex, colorIndex int) ClientAction {
	return ClientAction{Type: ColorClue, Target: int(target), Value: &colorIndex}
}

// NewRankClue returns a rank clue to target.
func NewRankClue(target PlayerIndex, rank int) ClientAction {
	return ClientAction{Type: RankClue, Target: int(target), Value: &rank}
}

// String formats the action for logs.
func (a ClientAction) String() string {
	if a.Value != nil {
		return fmt.Sprintf("%s(%d, %d)", a.Type, a.Target, *a.Value)
	}
	return fmt.Sprintf("%s(%d)", a.Type, a.Target)
}
