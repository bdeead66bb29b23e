package replay

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Estabir/hanabi-live/internal/game"
	"github.com/charmbracelet/log"
)

// ActionsFromState converts the replay's action log into client actions,
// stopping once rs.Segment segments have been produced. Only plays,
// discards and clues advance the segment. A failed discard is a misplay and
// is exported as a play.
func ActionsFromState(rs ReplayState) []game.ClientAction {
	currentSegment := 0
	actions := make([]game.ClientAction, 0, max(min(rs.Segment, len(rs.Actions)), 0))

	for i := 0; i < len(rs.Actions) && currentSegment < rs.Segment; i++ {
		switch a := rs.Actions[i].(type) {
		case game.ActionPlay:
			actions = append(actions, game.NewPlay(a.Order))
			currentSegment++

		case game.ActionDiscard:
			if a.Failed {
				actions = append(actions, game.NewPlay(a.Order))
			} else {
				actions = append(actions, game.NewDiscard(a.Order))
			}
			currentSegment++

		case game.ActionClue:
			switch a.Clue.Type {
			case game.ColorClueType:
				actions = append(actions, game.NewColorClue(a.Target, a.Clue.Value))
			case game.RankClueType:
				actions = append(actions, game.NewRankClue(a.Target, a.Clue.Value))
			}
			currentSegment++
		}
	}

	return actions
}

// Reconstructor turns hypothetical log lines back into client actions.
type Reconstructor struct {
	ctx    *Context
	parser LogLineParser
	logger *log.Logger
}

// NewReconstructor creates a reconstructor for the given context. A nil
// parser uses RegexParser.
func NewReconstructor(ctx *Context, parser LogLineParser, logger *log.Logger) *Reconstructor {
	if parser == nil {
		parser = RegexParser{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Reconstructor{
		ctx:    ctx,
		parser: parser,
		logger: logger.WithPrefix("replay"),
	}
}

// ActionsFromLog reads the given hypothetical log lines in order. Lines
// that are not actions are skipped; a line that matches but cannot be
// resolved aborts with an error wrapping ErrInvariant.
func (r *Reconstructor) ActionsFromLog(entries []LogEntry) ([]game.ClientAction, error) {
	actions := make([]game.ClientAction, 0, len(entries))

	for i, entry := range entries {
		result := r.ActionFromEntry(i, entry)
		switch result.Kind {
		case Skip:
			r.logger.Debug("Skipping log line", "entry", i, "text", entry.Text)
		case Resolved:
			r.logger.Debug("Resolved log line", "entry", i, "action", result.Action)
			actions = append(actions, result.Action)
		case Fatal:
			r.logger.Error("Failed to resolve log line", "entry", i, "text", entry.Text, "reason", result.Reason)
			return nil, &InvariantError{Entry: i, Text: entry.Text, Reason: result.Reason}
		}
	}

	return actions, nil
}

// ActionFromEntry reads log line i. The grammars are tried in the order
// play, discard, clue.
func (r *Reconstructor) ActionFromEntry(i int, entry LogEntry) Result {
	if m, ok := r.parser.MatchPlay(entry.Text); ok {
		return r.playOrDiscard(i, game.Play, m)
	}
	if m, ok := r.parser.MatchDiscard(entry.Text); ok {
		return r.playOrDiscard(i, game.Discard, m)
	}
	if m, ok := r.parser.MatchClue(entry.Text); ok {
		return r.clue(m)
	}
	return skip()
}

func (r *Reconstructor) playOrDiscard(i int, actionType game.ActionType, m LineMatch) Result {
	slot, err := strconv.Atoi(m.Token)
	if err != nil {
		return fatal("failed to parse the %s target: %s", actionType, m.Token)
	}

	playerIndex, ok := game.PlayerIndexFromName(m.Player, r.ctx.Metadata)
	if !ok {
		return fatal("failed to find the player index corresponding to: %s", m.Player)
	}

	cardsPerPlayer, ok := r.cardsPerPlayer()
	if !ok {
		return fatal("the replay has no starting hands")
	}

	// Slot 1 is the newest card, which is stored last.
	handPosition := cardsPerPlayer - slot

	// The card is looked up in the state before this line was written.
	order, reason := r.cardFromHypoState(i-1, playerIndex, handPosition)
	if reason != "" {
		return fatal("%s", reason)
	}

	return resolved(game.ClientAction{Type: actionType, Target: int(order)})
}

func (r *Reconstructor) clue(m LineMatch) Result {
	playerIndex, ok := game.PlayerIndexFromName(m.Player, r.ctx.Metadata)
	if !ok {
		return fatal("failed to find the player index corresponding to: %s", m.Player)
	}

	// "Odds and Evens" variants log rank clues as "Odd" and "Even".
	switch m.Token {
	case "Odd":
		return resolved(game.NewRankClue(playerIndex, 1))
	case "Even":
		return resolved(game.NewRankClue(playerIndex, 2))
	}

	if rank, err := strconv.Atoi(m.Token); err == nil {
		return resolved(game.NewRankClue(playerIndex, rank))
	}

	return resolved(game.NewColorClue(playerIndex, r.colorIndex(m.Token)))
}

// colorIndex resolves a colour clue token to an index into the variant's
// clue colours. Every matching colour overwrites the previous match, so the
// last match wins.
func (r *Reconstructor) colorIndex(token string) int {
	index := 0
	if r.ctx.Variant == nil {
		return index
	}
	for i, color := range r.ctx.Variant.ClueColors {
		// Matching also runs from the colour name to the token, so with
		// colours "Blue" and "Bluegreen" the token "Blue" resolves to
		// "Bluegreen" rather than "Blue".
		if strings.HasPrefix(token, color.Name) || strings.HasPrefix(color.Name, token) {
			index = i
		}
	}
	return index
}

func (r *Reconstructor) cardsPerPlayer() (int, bool) {
	if r.ctx.State == nil {
		return 0, false
	}
	states := r.ctx.State.Replay.States
	if len(states) == 0 || len(states[0].Hands) == 0 {
		return 0, false
	}
	return len(states[0].Hands[0]), true
}

func (r *Reconstructor) cardFromHypoState(previousStateIndex int, playerIndex game.PlayerIndex, handPosition int) (game.CardOrder, string) {
	hypo := r.ctx.State.Replay.Hypothetical
	if hypo == nil {
		return 0, ""
	}

	stateIndex := max(previousStateIndex, 0)
	if stateIndex >= len(hypo.States) {
		return 0, fmt.Sprintf("hypothetical state %d does not exist", stateIndex)
	}

	hands := hypo.States[stateIndex].Hands
	if int(playerIndex) >= len(hands) {
		return 0, fmt.Sprintf("hypothetical state %d has no hand for player %d", stateIndex, playerIndex)
	}

	hand := hands[playerIndex]
	if handPosition < 0 || handPosition >= len(hand) {
		return 0, fmt.Sprintf("hand position %d is out of range for player %d", handPosition, playerIndex)
	}

	return hand[handPosition], ""
}
