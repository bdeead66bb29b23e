package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Estabir/hanabi-live/internal/game"
)

// JSONGame is the game document embedded in a shared replay URL. Field order
// is part of the format.
type JSONGame struct {
	Players    []string            `json:"players"`
	Deck       []game.CardIdentity `json:"deck"`
	Actions    []game.ClientAction `json:"actions"`
	Options    JSONOptions         `json:"options"`
	Notes      [][]string          `json:"notes"`
	Characters []JSONCharacter     `json:"characters"`
	ID         int                 `json:"id"`
	Seed       string              `json:"seed"`
}

// JSONOptions holds the game options the replay viewer needs.
type JSONOptions struct {
	Variant string `json:"variant"`
}

// JSONCharacter is a character assignment. Exports never include any.
type JSONCharacter struct {
	Name     string `json:"name"`
	Metadata int    `json:"metadata"`
}

// Marshal encodes the game without escaping HTML characters, so that player
// names and variant names survive as typed.
func (g *JSONGame) Marshal() (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(g); err != nil {
		return "", fmt.Errorf("failed to encode game: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// ParseJSONGame decodes a game document produced by Marshal.
func ParseJSONGame(data string) (*JSONGame, error) {
	var g JSONGame
	if err := json.Unmarshal([]byte(data), &g); err != nil {
		return nil, fmt.Errorf("failed to decode game: %w", err)
	}
	return &g, nil
}
