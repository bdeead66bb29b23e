package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Estabir/hanabi-live/internal/game"
)

func TestJSONGameMarshal(t *testing.T) {
	g := &JSONGame{
		Players:    []string{"Alice", "Bob"},
		Deck:       []game.CardIdentity{{SuitIndex: 2, Rank: 5}},
		Actions:    []game.ClientAction{game.NewPlay(0), game.NewColorClue(1, 0)},
		Options:    JSONOptions{Variant: "Rainbow & Black <6 Suits>"},
		Notes:      [][]string{},
		Characters: []JSONCharacter{},
	}

	data, err := g.Marshal()
	require.NoError(t, err)
	assert.Equal(t, `{"players":["Alice","Bob"],"deck":[{"suitIndex":2,"rank":5}],"actions":[{"type":0,"target":0},{"type":2,"target":1,"value":0}],"options":{"variant":"Rainbow & Black <6 Suits>"},"notes":[],"characters":[],"id":0,"seed":""}`, data)

	parsed, err := ParseJSONGame(data)
	require.NoError(t, err)
	assert.Equal(t, g, parsed)
}

func TestParseJSONGameError(t *testing.T) {
	_, err := ParseJSONGame(`{"players":`)
	assert.ErrorContains(t, err, "failed to decode game")
}
