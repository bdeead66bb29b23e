package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerName(t *testing.T) {
	md := NewTestMetadata()

	assert.Equal(t, "Alice", PlayerName(0, md))
	assert.Equal(t, "Cathy", PlayerName(2, md))
	assert.Equal(t, "[unknown]", PlayerName(3, md))
	assert.Equal(t, "[unknown]", PlayerName(-1, md))
}

func TestPlayerNames(t *testing.T) {
	tests := []struct {
		name    string
		players []string
		indices []PlayerIndex
		want    string
	}{
		{"nil means everyone", []string{"Zed", "Amy"}, nil, "The players"},
		{"two names sorted", []string{"Zed", "Amy"}, []PlayerIndex{0, 1}, "Amy and Zed"},
		{"two names reversed input", []string{"Bob", "Amy", "Cal"}, []PlayerIndex{2, 0}, "Bob and Cal"},
		{"three names", []string{"Cal", "Amy", "Bob"}, []PlayerIndex{0, 1, 2}, "Amy, Bob, and Cal"},
		{"four names", []string{"Dee", "Cal", "Amy", "Bob"}, []PlayerIndex{3, 2, 1, 0}, "Amy, Bob, Cal, and Dee"},
		{"single name", []string{"Zed", "Amy"}, []PlayerIndex{0}, "Zed"},
		{"unknown index", []string{"Zed", "Amy"}, []PlayerIndex{1, 5}, "Amy and [unknown]"},
		{"empty list", []string{"Zed", "Amy"}, []PlayerIndex{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md := NewTestMetadata(WithPlayerNames(tt.players...))
			assert.Equal(t, tt.want, PlayerNames(tt.indices, md))
		})
	}
}

func TestPlayerIndexFromName(t *testing.T) {
	md := NewTestMetadata()

	index, ok := PlayerIndexFromName("Bob", md)
	require.True(t, ok)
	assert.Equal(t, PlayerIndex(1), index)

	_, ok = PlayerIndexFromName("bob", md)
	assert.False(t, ok, "lookup is case sensitive")

	_, ok = PlayerIndexFromName("Donald", md)
	assert.False(t, ok)
}

func TestMetadataValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, NewTestMetadata().Validate())
	})

	t.Run("name count mismatch", func(t *testing.T) {
		md := NewTestMetadata()
		md.Options.NumPlayers = 4
		err := md.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected 4 player names")
	})

	t.Run("too many players", func(t *testing.T) {
		md := NewTestMetadata(WithPlayerNames("a", "b", "c", "d", "e", "f", "g"))
		assert.Error(t, md.Validate())
	})

	t.Run("player index out of range", func(t *testing.T) {
		md := NewTestMetadata(WithOurPlayerIndex(3))
		assert.Error(t, md.Validate())
	})

	t.Run("character assignments sized to players", func(t *testing.T) {
		md := NewTestMetadata()
		md.CharacterAssignments = []*int{nil}
		assert.Error(t, md.Validate())
	})
}

func TestCardNoteHasPossibility(t *testing.T) {
	note := CardNote{
		Possibilities: []SuitRankTuple{{SuitIndex: 0, Rank: 3}, {SuitIndex: 2, Rank: 5}},
		Finessed:      true,
		Text:          "r3, g5 f",
	}

	assert.True(t, note.HasPossibility(0, 3))
	assert.True(t, note.HasPossibility(2, 5))
	assert.False(t, note.HasPossibility(1, 3))
	assert.False(t, CardNote{}.HasPossibility(0, 1))
}
