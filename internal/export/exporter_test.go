package export

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Estabir/hanabi-live/internal/chat"
	"github.com/Estabir/hanabi-live/internal/game"
	"github.com/Estabir/hanabi-live/internal/replay"
)

const fixturePath = "../replay/testdata/hypothetical.json"

// fixtureJSON is the export of the fixture: real names replaced, card 10
// morphed into a red 2 and the hypothetical play and clue appended.
const fixtureJSON = `{"players":["Alice","Bob","Cathy"],"deck":[{"suitIndex":0,"rank":1},{"suitIndex":1,"rank":1},{"suitIndex":2,"rank":1},{"suitIndex":3,"rank":1},{"suitIndex":0,"rank":1},{"suitIndex":4,"rank":2},{"suitIndex":3,"rank":3},{"suitIndex":2,"rank":4},{"suitIndex":1,"rank":5},{"suitIndex":0,"rank":5},{"suitIndex":0,"rank":2},{"suitIndex":0,"rank":2},{"suitIndex":4,"rank":4},{"suitIndex":3,"rank":2},{"suitIndex":2,"rank":2},{"suitIndex":4,"rank":1},{"suitIndex":1,"rank":3},{"suitIndex":0,"rank":3}],"actions":[{"type":0,"target":4},{"type":3,"target":2,"value":1},{"type":0,"target":10},{"type":2,"target":1,"value":3}],"options":{"variant":"No Variant"},"notes":[],"characters":[],"id":0,"seed":""}`

type mockClipboard struct {
	mock.Mock
}

func (m *mockClipboard) WriteText(ctx context.Context, text string) error {
	args := m.Called(ctx, text)
	return args.Error(0)
}

type mockShrinker struct {
	mock.Mock
}

func (m *mockShrinker) Shrink(data string) (string, error) {
	args := m.Called(data)
	return args.String(0), args.Error(1)
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func loadFixture(t *testing.T) *replay.Context {
	t.Helper()
	rc, err := replay.LoadFile(fixturePath)
	require.NoError(t, err)
	return rc
}

// finishedContext is a finished two card game reviewed at the given segment
// with no hypothetical.
func finishedContext(segment int) *replay.Context {
	return &replay.Context{
		Metadata: game.NewTestMetadata(),
		Variant:  &game.Variant{Name: "No Variant"},
		State: &replay.State{
			Finished:       true,
			CardIdentities: []game.CardIdentity{{SuitIndex: 0, Rank: 1}, {SuitIndex: 1, Rank: 1}},
			Replay: replay.ReplayState{
				Actions: game.ActionList{game.TestPlay(0, 0, 0, 1), game.TestDiscard(1, 1, 1, 1, false)},
				Segment: segment,
			},
		},
	}
}

func TestExport(t *testing.T) {
	recorder := chat.NewRecorder(nil)
	clip := &mockClipboard{}
	clip.On("WriteText", mock.Anything, mock.Anything).Return(nil)

	e := NewExporter(Config{}, recorder, quietLogger(), WithClipboard(clip))
	share, err := e.Export(context.Background(), loadFixture(t), "table7")
	require.NoError(t, err)
	require.NoError(t, share.Wait())

	assert.Equal(t, fixtureJSON, share.JSON)

	payload, ok := strings.CutPrefix(share.URL, "https://hanab.live/shared-replay-json/")
	require.True(t, ok, share.URL)
	expanded, err := Expand(payload)
	require.NoError(t, err)
	assert.Equal(t, fixtureJSON, expanded)

	clip.AssertCalled(t, "WriteText", mock.Anything, share.URL)

	messages := recorder.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, chat.Info, messages[0].Type)
	assert.Equal(t, "table7", messages[0].Room)
	assert.Equal(t, "The URL for this hypothetical is copied to your clipboard.", messages[0].Text)
	assert.Equal(t, chat.Info, messages[1].Type)
	assert.Equal(t, rawJSONMessage(fixtureJSON), messages[1].Text)
}

func TestExportNotInReview(t *testing.T) {
	unfinished := finishedContext(1)
	unfinished.State.Finished = false

	noState := finishedContext(1)
	noState.State = nil

	tests := []struct {
		name string
		rc   *replay.Context
	}{
		{"no context", nil},
		{"no state", noState},
		{"game not finished", unfinished},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := chat.NewRecorder(nil)
			shrinker := &mockShrinker{}
			clip := &mockClipboard{}

			e := NewExporter(Config{}, recorder, quietLogger(), WithShrinker(shrinker.Shrink), WithClipboard(clip))
			share, err := e.Export(context.Background(), tt.rc, "lobby")
			assert.ErrorIs(t, err, ErrNotInReview)
			assert.Nil(t, share)

			messages := recorder.Messages()
			require.Len(t, messages, 1)
			assert.Equal(t, chat.Error, messages[0].Type)
			assert.Equal(t, "You can only use the <code>/copy</code> command during the review of a game.", messages[0].Text)

			shrinker.AssertNotCalled(t, "Shrink", mock.Anything)
			clip.AssertNotCalled(t, "WriteText", mock.Anything, mock.Anything)
		})
	}
}

func TestExportNoActions(t *testing.T) {
	recorder := chat.NewRecorder(nil)
	shrinker := &mockShrinker{}

	e := NewExporter(Config{}, recorder, quietLogger(), WithShrinker(shrinker.Shrink), WithClipboard(&mockClipboard{}))
	share, err := e.Export(context.Background(), finishedContext(0), "lobby")
	assert.ErrorIs(t, err, ErrNoActions)
	assert.Nil(t, share)

	messages := recorder.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, chat.Error, messages[0].Type)
	assert.Equal(t, "There are no actions in your hypothetical.", messages[0].Text)
	shrinker.AssertNotCalled(t, "Shrink", mock.Anything)
}

func TestExportCompressFailure(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name    string
		payload string
		err     error
	}{
		{"empty payload", "", nil},
		{"shrinker error", "", boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := chat.NewRecorder(nil)
			shrinker := &mockShrinker{}
			shrinker.On("Shrink", mock.Anything).Return(tt.payload, tt.err)
			clip := &mockClipboard{}

			e := NewExporter(Config{}, recorder, quietLogger(), WithShrinker(shrinker.Shrink), WithClipboard(clip))
			share, err := e.Export(context.Background(), finishedContext(2), "lobby")
			assert.ErrorIs(t, err, ErrCompress)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			}
			assert.Nil(t, share)

			messages := recorder.Messages()
			require.Len(t, messages, 1)
			assert.Equal(t, chat.Error, messages[0].Type)
			assert.Equal(t, "Failed to compress the JSON data.", messages[0].Text)

			shrinker.AssertNumberOfCalls(t, "Shrink", 1)
			clip.AssertNotCalled(t, "WriteText", mock.Anything, mock.Anything)
		})
	}
}

func TestExportClipboardFailure(t *testing.T) {
	recorder := chat.NewRecorder(nil)
	shrinker := &mockShrinker{}
	shrinker.On("Shrink", mock.Anything).Return("abc", nil)

	e := NewExporter(Config{SiteURL: "https://example.org/"}, recorder, quietLogger(),
		WithShrinker(shrinker.Shrink), WithClipboard(DisabledClipboard{}))
	share, err := e.Export(context.Background(), finishedContext(2), "lobby")
	require.NoError(t, err)
	assert.ErrorIs(t, share.Wait(), ErrClipboardDisabled)
	assert.Equal(t, "https://example.org/shared-replay-json/abc", share.URL)

	messages := recorder.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, chat.Error, messages[0].Type)
	assert.Equal(t, "Failed to copy the URL to your clipboard: clipboard access is disabled", messages[0].Text)
	assert.Equal(t, chat.Default, messages[1].Type)
	assert.Equal(t, share.URL, messages[1].Text)
}

func TestExportAnonymisesPlayers(t *testing.T) {
	shrinker := &mockShrinker{}
	shrinker.On("Shrink", mock.Anything).Return("abc", nil)
	clip := &mockClipboard{}
	clip.On("WriteText", mock.Anything, mock.Anything).Return(nil)

	cfg := Config{PlayerNames: []string{"P1", "P2", "P3", "P4"}}
	e := NewExporter(cfg, chat.NewRecorder(nil), quietLogger(), WithShrinker(shrinker.Shrink), WithClipboard(clip))
	rc := finishedContext(2)
	rc.Metadata = game.NewTestMetadata(game.WithVariantName("Rainbow & Pink (6 Suits)"))
	share, err := e.Export(context.Background(), rc, "lobby")
	require.NoError(t, err)
	require.NoError(t, share.Wait())
	assert.Contains(t, share.JSON, `"options":{"variant":"Rainbow & Pink (6 Suits)"}`)

	g, err := ParseJSONGame(share.JSON)
	require.NoError(t, err)
	assert.Equal(t, []string{"P1", "P2", "P3"}, g.Players)
	assert.Equal(t, []game.ClientAction{game.NewPlay(0), game.NewDiscard(1)}, g.Actions)
	assert.Equal(t, []game.CardIdentity{{SuitIndex: 0, Rank: 1}, {SuitIndex: 1, Rank: 1}}, g.Deck)
}

func TestExportBrokenHypothetical(t *testing.T) {
	rc := loadFixture(t)
	states := rc.State.Replay.Hypothetical.States
	last := &states[len(states)-1]
	last.Log = append(last.Log, replay.LogEntry{Text: "[Hypo] Zoe plays Red 1 from slot #1"})

	recorder := chat.NewRecorder(nil)
	shrinker := &mockShrinker{}
	clip := &mockClipboard{}

	e := NewExporter(Config{}, recorder, quietLogger(), WithShrinker(shrinker.Shrink), WithClipboard(clip))
	share, err := e.Export(context.Background(), rc, "lobby")
	assert.ErrorIs(t, err, replay.ErrInvariant)
	assert.Nil(t, share)

	assert.Empty(t, recorder.Messages())
	shrinker.AssertNotCalled(t, "Shrink", mock.Anything)
	clip.AssertNotCalled(t, "WriteText", mock.Anything, mock.Anything)
}

func TestRawJSONMessage(t *testing.T) {
	want := `Click <button href="#" onclick="navigator.clipboard.writeText('{\'id\':0}'.replace(/\'/g, String.fromCharCode(34)));return false;"><strong>here</strong></button> to copy the raw JSON data to your clipboard.`
	assert.Equal(t, want, rawJSONMessage(`{"id":0}`))
}

type silentParser struct{}

func (silentParser) MatchPlay(string) (replay.LineMatch, bool)    { return replay.LineMatch{}, false }
func (silentParser) MatchDiscard(string) (replay.LineMatch, bool) { return replay.LineMatch{}, false }
func (silentParser) MatchClue(string) (replay.LineMatch, bool)    { return replay.LineMatch{}, false }

func TestExportWithParser(t *testing.T) {
	clip := &mockClipboard{}
	clip.On("WriteText", mock.Anything, mock.Anything).Return(nil)

	e := NewExporter(Config{}, chat.NewRecorder(nil), quietLogger(), WithClipboard(clip), WithParser(silentParser{}))
	share, err := e.Export(context.Background(), loadFixture(t), "lobby")
	require.NoError(t, err)
	require.NoError(t, share.Wait())

	g, err := ParseJSONGame(share.JSON)
	require.NoError(t, err)
	assert.Equal(t, []game.ClientAction{game.NewPlay(4), game.NewRankClue(2, 1)}, g.Actions,
		"hypothetical lines the parser does not recognise are skipped")
}
