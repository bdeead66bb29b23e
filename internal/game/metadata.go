package game

import (
	"fmt"
	"sort"
	"strings"
)

const (
	MinPlayers = 2
	MaxPlayers = 6
)

// Options are the settings a game was created with.
type Options struct {
	NumPlayers            int    `json:"numPlayers"`
	StartingPlayer        int    `json:"startingPlayer"`
	VariantName           string `json:"variantName"`
	Timed                 bool   `json:"timed"`
	TimeBase              int    `json:"timeBase"`
	TimePerTurn           int    `json:"timePerTurn"`
	Speedrun              bool   `json:"speedrun"`
	CardCycle             bool   `json:"cardCycle"`
	DeckPlays             bool   `json:"deckPlays"`
	EmptyClues            bool   `json:"emptyClues"`
	OneExtraCard          bool   `json:"oneExtraCard"`
	OneLessCard           bool   `json:"oneLessCard"`
	AllOrNothing          bool   `json:"allOrNothing"`
	DetrimentalCharacters bool   `json:"detrimentalCharacters"`
}

// Metadata is the data about a game that does not change once it starts.
type Metadata struct {
	OurUsername string   `json:"ourUsername"`
	Options     Options  `json:"options"`
	PlayerNames []string `json:"playerNames"`

	// OurPlayerIndex is our seat in a game, or the seat we are viewing from
	// when spectating or watching a replay.
	OurPlayerIndex PlayerIndex `json:"ourPlayerIndex"`

	CharacterAssignments []*int `json:"characterAssignments"`
	CharacterMetadata    []int  `json:"characterMetadata"`

	MinEfficiency float64 `json:"minEfficiency"`
	HardVariant   bool    `json:"hardVariant"`

	HasCustomSeed bool   `json:"hasCustomSeed"`
	Seed          string `json:"seed"`
}

// Validate checks the player list against the configured player count.
func (md *Metadata) Validate() error {
	n := md.Options.NumPlayers
	if n < MinPlayers || n > MaxPlayers {
		return fmt.Errorf("invalid number of players: %d", n)
	}
	if len(md.PlayerNames) != n {
		return fmt.Errorf("expected %d player names, got %d", n, len(md.PlayerNames))
	}
	if md.OurPlayerIndex < 0 || int(md.OurPlayerIndex) >= n {
		return fmt.Errorf("player index %d is out of range", md.OurPlayerIndex)
	}
	if len(md.CharacterAssignments) != 0 && len(md.CharacterAssignments) != n {
		return fmt.Errorf("expected %d character assignments, got %d", n, len(md.CharacterAssignments))
	}
	if len(md.CharacterMetadata) != 0 && len(md.CharacterMetadata) != n {
		return fmt.Errorf("expected %d character metadata values, got %d", n, len(md.CharacterMetadata))
	}
	return nil
}

// PlayerName returns the name of the player at index, or "[unknown]".
func PlayerName(index PlayerIndex, md *Metadata) string {
	if index < 0 || int(index) >= len(md.PlayerNames) {
		return "[unknown]"
	}
	return md.PlayerNames[index]
}

// PlayerNames describes a group of players for chat and log messages. A nil
// slice means everyone. Names are sorted alphabetically rather than by seat.
func PlayerNames(indices []PlayerIndex, md *Metadata) string {
	if indices == nil {
		return "The players"
	}

	names := make([]string, len(indices))
	for i, index := range indices {
		names[i] = PlayerName(index, md)
	}
	sort.Strings(names)

	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return fmt.Sprintf("%s and %s", names[0], names[1])
	}

	exceptLast := names[:len(names)-1]
	return fmt.Sprintf("%s, and %s", strings.Join(exceptLast, ", "), names[len(names)-1])
}

// PlayerIndexFromName finds a seat by exact, case-sensitive name.
func PlayerIndexFromName(name string, md *Metadata) (PlayerIndex, bool) {
	for i, playerName := range md.PlayerNames {
		if playerName == name {
			return PlayerIndex(i), true
		}
	}
	return 0, false
}
