package game

import "fmt"

// ClueType distinguishes colour clues from rank clues.
type ClueType int

const (
	ColorClueType ClueType = iota
	RankClueType
)

// String returns the string representation of a clue type
func (t ClueType) String() string {
	switch t {
	case ColorClueType:
		return "color"
	case RankClueType:
		return "rank"
	default:
		return fmt.Sprintf("ClueType(%d)", int(t))
	}
}

// Clue is the content of a clue. Value is a colour index for colour clues
// and a rank for rank clues.
type Clue struct {
	Type  ClueType `json:"type"`
	Value int      `json:"value"`
}
